package render

import (
	"net/url"
	"strconv"
	"strings"
)

// The builder form carries up to ten repeated groups for experience,
// education, and custom links, numbered from 1.
const maxFormEntries = 10

// FromForm assembles a Document from the /generate form submission.
// Experience entries require a title and education entries a degree; groups
// without one are skipped, which lets the form carry gaps.
func FromForm(form url.Values) Document {
	doc := Document{
		FirstName: strings.TrimSpace(form.Get("firstName")),
		LastName:  strings.TrimSpace(form.Get("lastName")),
		JobTitle:  strings.TrimSpace(form.Get("jobTitle")),
		Email:     strings.TrimSpace(form.Get("email")),
		Phone:     strings.TrimSpace(form.Get("phone")),
		Location:  strings.TrimSpace(form.Get("location")),
		LinkedIn:  strings.TrimSpace(form.Get("linkedin")),
		Website:   strings.TrimSpace(form.Get("website")),
		Summary:   strings.TrimSpace(form.Get("summary")),
		Template:  form.Get("template"),
	}
	if doc.Template == "" {
		doc.Template = DefaultTemplate
	}

	doc.Experience = make([]Experience, 0, maxFormEntries)
	for i := 1; i <= maxFormEntries; i++ {
		n := strconv.Itoa(i)
		title := strings.TrimSpace(form.Get("exp_title_" + n))
		if title == "" {
			continue
		}
		end := strings.TrimSpace(form.Get("exp_end_" + n))
		if end == "" {
			end = "Present"
		}
		doc.Experience = append(doc.Experience, Experience{
			Title:       title,
			Company:     strings.TrimSpace(form.Get("exp_company_" + n)),
			Start:       strings.TrimSpace(form.Get("exp_start_" + n)),
			End:         end,
			Description: strings.TrimSpace(form.Get("exp_desc_" + n)),
		})
	}

	doc.Education = make([]Education, 0, maxFormEntries)
	for i := 1; i <= maxFormEntries; i++ {
		n := strconv.Itoa(i)
		degree := strings.TrimSpace(form.Get("edu_degree_" + n))
		if degree == "" {
			continue
		}
		doc.Education = append(doc.Education, Education{
			Degree: degree,
			Field:  strings.TrimSpace(form.Get("edu_field_" + n)),
			School: strings.TrimSpace(form.Get("edu_school_" + n)),
			Start:  strings.TrimSpace(form.Get("edu_start_" + n)),
			End:    strings.TrimSpace(form.Get("edu_end_" + n)),
		})
	}

	for i := 1; i <= maxFormEntries; i++ {
		n := strconv.Itoa(i)
		linkURL := strings.TrimSpace(form.Get("link_url_" + n))
		if linkURL == "" {
			continue
		}
		label := strings.TrimSpace(form.Get("link_label_" + n))
		if label == "" {
			label = linkURL
		}
		doc.Links = append(doc.Links, Link{Label: label, URL: linkURL})
	}

	doc.Skills = Skills{
		Technical: splitList(form.Get("techSkills")),
		Soft:      splitList(form.Get("softSkills")),
		Languages: splitList(form.Get("languages")),
	}

	return doc
}

func splitList(raw string) []string {
	out := []string{}
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
