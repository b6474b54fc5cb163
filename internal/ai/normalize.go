package ai

import (
	"encoding/json"
	"strings"
)

// SkillSuggestions is the fixed shape expected from the skills-suggestion
// completion. Slices are always non-nil.
type SkillSuggestions struct {
	Technical []string `json:"technical"`
	Soft      []string `json:"soft"`
	Languages []string `json:"languages"`
}

// EmptySuggestions is the fallback value used whenever the completion cannot
// be parsed. Degrading to empty lists here is intentional; the caller always
// receives a well-shaped result.
func EmptySuggestions() SkillSuggestions {
	return SkillSuggestions{
		Technical: []string{},
		Soft:      []string{},
		Languages: []string{},
	}
}

// NormalizeSkills strips an optional fenced-code wrapper from a raw
// completion and parses it as a SkillSuggestions object. Any parse failure
// yields EmptySuggestions, never an error.
func NormalizeSkills(raw string) SkillSuggestions {
	cleaned := stripCodeFence(strings.TrimSpace(raw))

	var out SkillSuggestions
	if err := json.Unmarshal([]byte(cleaned), &out); err != nil {
		return EmptySuggestions()
	}
	if out.Technical == nil {
		out.Technical = []string{}
	}
	if out.Soft == nil {
		out.Soft = []string{}
	}
	if out.Languages == nil {
		out.Languages = []string{}
	}
	return out
}

// stripCodeFence removes a leading ``` (with optional language tag) and a
// trailing ``` if present. Anything else passes through unchanged.
func stripCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	rest := strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(rest, '\n'); i >= 0 && !strings.ContainsAny(rest[:i], "{[") {
		rest = rest[i+1:]
	}
	rest = strings.TrimSpace(rest)
	rest = strings.TrimSuffix(rest, "```")
	return strings.TrimSpace(rest)
}
