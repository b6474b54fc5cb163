package ai

import (
	"embed"
	"strings"
	"text/template"
)

//go:embed prompts/*.txt
var promptFiles embed.FS

// Parsed once at package init; reused on every request.
var promptTemplates = template.Must(template.ParseFS(promptFiles, "prompts/*.txt"))

// SummaryPrompt builds the instruction for improving or generating a CV
// summary. With a non-empty summary the instruction asks for an improved
// version (tailored to targetJob when given); with only a target job it asks
// for a summary from scratch. Pure: same inputs always yield the same text.
func SummaryPrompt(summary, targetJob string) string {
	summary = strings.TrimSpace(summary)
	targetJob = strings.TrimSpace(targetJob)

	if summary == "" {
		return renderPrompt("generate_summary.txt", map[string]string{
			"TargetJob": targetJob,
		})
	}
	return renderPrompt("improve_summary.txt", map[string]string{
		"Summary":   summary,
		"TargetJob": targetJob,
	})
}

// BulletPrompt builds the instruction for improving or generating a single
// experience bullet, optionally anchored to a role and company.
func BulletPrompt(bullet, jobTitle, company string) string {
	bullet = strings.TrimSpace(bullet)
	jobTitle = strings.TrimSpace(jobTitle)
	company = strings.TrimSpace(company)

	if bullet == "" {
		return renderPrompt("generate_bullet.txt", map[string]string{
			"JobTitle": jobTitle,
			"Company":  company,
		})
	}
	return renderPrompt("improve_bullet.txt", map[string]string{
		"Bullet":   bullet,
		"JobTitle": jobTitle,
		"Company":  company,
	})
}

// SkillsPrompt builds the instruction for skill suggestions. The response is
// expected to be the strict JSON object parsed by NormalizeSkills.
func SkillsPrompt(jobTitle, summary string, experience []string) string {
	cleaned := make([]string, 0, len(experience))
	for _, e := range experience {
		if trimmed := strings.TrimSpace(e); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	return renderPrompt("suggest_skills.txt", map[string]any{
		"JobTitle":   strings.TrimSpace(jobTitle),
		"Summary":    strings.TrimSpace(summary),
		"Experience": cleaned,
	})
}

func renderPrompt(name string, data any) string {
	var b strings.Builder
	// Templates are parsed at init and data is always a flat map; execution
	// cannot fail on well-formed templates.
	if err := promptTemplates.ExecuteTemplate(&b, name, data); err != nil {
		return ""
	}
	return b.String()
}
