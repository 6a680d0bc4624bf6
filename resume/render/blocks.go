// Package render turns a resume document into its visual form. One builder
// produces an abstract block tree; the preview fragment and the printable
// document are thin template backends over that same tree, so the two
// surfaces cannot drift apart on section content or ordering.
package render

import (
	"strings"

	"resume-studio/resume/model"
)

// Document is the renderable form of a resume: the personal-info header,
// always first, followed by the section blocks in stored order with empty
// sections already dropped.
type Document struct {
	Header   Header
	Sections []SectionBlock
}

// Header carries the personal-info block.
type Header struct {
	Name     string
	Email    string
	Phone    string
	Location string
	Website  string
	LinkedIn string
	GitHub   string
}

// SectionBlock holds the content for exactly one section; only the fields
// for its Key are populated.
type SectionBlock struct {
	Key   model.Section
	Title string

	Summary     string
	Experiences []ExperienceBlock
	Education   []EducationBlock
	Projects    []ProjectBlock
	SkillRows   []SkillRow
	Interests   string
}

// ExperienceBlock is one work history entry, dates already formatted.
type ExperienceBlock struct {
	Position         string
	Company          string
	Location         string
	DateRange        string
	TechStack        []string
	Responsibilities []string
}

// EducationBlock is one education entry.
type EducationBlock struct {
	DegreeLine  string
	Institution string
	GPA         string
	Location    string
	DateRange   string
	Honors      string
	Activities  string
}

// ProjectBlock is one project entry.
type ProjectBlock struct {
	Name        string
	Link        string
	GitHub      string
	Description string
	TechStack   []string
	Highlights  []string
}

// SkillRow is one labeled bucket line inside the skills section.
type SkillRow struct {
	Label string
	Items string
}

// Build assembles the block tree for a resume. It never mutates data and is
// deterministic: the same document always yields the same tree.
func Build(data model.ResumeData) Document {
	doc := Document{
		Header: Header{
			Name:     fallback(data.PersonalInfo.FullName, "Your Name"),
			Email:    data.PersonalInfo.Email,
			Phone:    data.PersonalInfo.Phone,
			Location: data.PersonalInfo.Location,
			Website:  data.PersonalInfo.Website,
			LinkedIn: data.PersonalInfo.LinkedIn,
			GitHub:   data.PersonalInfo.GitHub,
		},
	}

	for _, key := range model.NormalizeSectionOrder(data.SectionOrder) {
		if block, ok := buildSection(key, data); ok {
			doc.Sections = append(doc.Sections, block)
		}
	}
	return doc
}

// buildSection produces the block for one section key, or ok=false when the
// section's backing data is empty and the whole section is omitted.
func buildSection(key model.Section, data model.ResumeData) (SectionBlock, bool) {
	block := SectionBlock{Key: key, Title: key.Title()}

	switch key {
	case model.SectionSummary:
		if data.Summary == "" {
			return SectionBlock{}, false
		}
		block.Summary = data.Summary

	case model.SectionWorkExperience:
		if len(data.WorkExperience) == 0 {
			return SectionBlock{}, false
		}
		for _, exp := range data.WorkExperience {
			block.Experiences = append(block.Experiences, ExperienceBlock{
				Position:         exp.Position,
				Company:          exp.Company,
				Location:         exp.Location,
				DateRange:        dateRange(exp.StartDate, exp.EndDate, exp.Current),
				TechStack:        exp.TechStack,
				Responsibilities: filterBlank(exp.Responsibilities),
			})
		}

	case model.SectionEducation:
		if len(data.Education) == 0 {
			return SectionBlock{}, false
		}
		for _, edu := range data.Education {
			block.Education = append(block.Education, EducationBlock{
				DegreeLine:  edu.Degree + " in " + edu.Field,
				Institution: edu.Institution,
				GPA:         edu.GPA,
				Location:    edu.Location,
				DateRange:   dateRange(edu.StartDate, edu.EndDate, false),
				Honors:      strings.Join(edu.Honors, ", "),
				Activities:  strings.Join(edu.Activities, ", "),
			})
		}

	case model.SectionProjects:
		if len(data.Projects) == 0 {
			return SectionBlock{}, false
		}
		for _, proj := range data.Projects {
			block.Projects = append(block.Projects, ProjectBlock{
				Name:        proj.Name,
				Link:        proj.Link,
				GitHub:      proj.GitHub,
				Description: proj.Description,
				TechStack:   proj.TechStack,
				Highlights:  filterBlank(proj.Highlights),
			})
		}

	case model.SectionSkills:
		rows := skillRows(data.Skills)
		if len(rows) == 0 {
			return SectionBlock{}, false
		}
		block.SkillRows = rows

	case model.SectionInterests:
		if len(data.Interests) == 0 {
			return SectionBlock{}, false
		}
		block.Interests = strings.Join(data.Interests, ", ")
	}

	return block, true
}

func skillRows(skills model.Skills) []SkillRow {
	var rows []SkillRow
	add := func(label string, items []string) {
		if len(items) > 0 {
			rows = append(rows, SkillRow{Label: label, Items: strings.Join(items, ", ")})
		}
	}
	add("Languages", skills.Languages)
	add("Frameworks & Libraries", skills.Frameworks)
	add("Tools & Technologies", skills.Tools)
	add("Databases", skills.Databases)
	return rows
}

// dateRange formats "{start} - {end}". A current position always shows
// "Present", whatever end date is stored.
func dateRange(start, end model.Date, current bool) string {
	to := end.Display()
	if current {
		to = "Present"
	}
	return start.Display() + " - " + to
}

// filterBlank drops entries that are empty after trimming. The kept entries
// retain their stored text; filtering is a display rule, not a storage rule.
func filterBlank(entries []string) []string {
	var out []string
	for _, entry := range entries {
		if strings.TrimSpace(entry) != "" {
			out = append(out, entry)
		}
	}
	return out
}

func fallback(value, def string) string {
	if value == "" {
		return def
	}
	return value
}
