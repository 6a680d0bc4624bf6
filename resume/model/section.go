package model

// Section identifies one of the six reorderable resume sections. Personal
// info is not a Section: it always renders first, outside the ordered loop.
type Section string

const (
	SectionSummary        Section = "summary"
	SectionWorkExperience Section = "workExperience"
	SectionEducation      Section = "education"
	SectionProjects       Section = "projects"
	SectionSkills         Section = "skills"
	SectionInterests      Section = "interests"
)

// DefaultSectionOrder returns the canonical section order for a new resume.
func DefaultSectionOrder() []Section {
	return []Section{
		SectionSummary,
		SectionWorkExperience,
		SectionEducation,
		SectionProjects,
		SectionSkills,
		SectionInterests,
	}
}

// Known reports whether s is one of the six section keys.
func (s Section) Known() bool {
	switch s {
	case SectionSummary, SectionWorkExperience, SectionEducation,
		SectionProjects, SectionSkills, SectionInterests:
		return true
	}
	return false
}

// Title returns the section heading shown in both renderers.
func (s Section) Title() string {
	switch s {
	case SectionSummary:
		return "Professional Summary"
	case SectionWorkExperience:
		return "Work Experience"
	case SectionEducation:
		return "Education"
	case SectionProjects:
		return "Projects"
	case SectionSkills:
		return "Technical Skills"
	case SectionInterests:
		return "Interests & Hobbies"
	}
	return ""
}

// NormalizeSectionOrder repairs an order loaded from storage or import so it
// is a permutation of the six section keys: unknown tokens and duplicates are
// dropped, missing sections are appended in canonical order.
func NormalizeSectionOrder(order []Section) []Section {
	out := make([]Section, 0, 6)
	seen := make(map[Section]struct{}, 6)
	for _, s := range order {
		if !s.Known() {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	for _, s := range DefaultSectionOrder() {
		if _, ok := seen[s]; !ok {
			out = append(out, s)
		}
	}
	return out
}
