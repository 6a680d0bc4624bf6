package model

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

// Clone returns a deep copy, so snapshots handed to renderers or writers
// cannot alias the live document's slices.
func (d ResumeData) Clone() ResumeData {
	out := d
	out.WorkExperience = make([]WorkExperience, len(d.WorkExperience))
	for i, exp := range d.WorkExperience {
		exp.Responsibilities = cloneStrings(exp.Responsibilities)
		exp.TechStack = cloneStrings(exp.TechStack)
		out.WorkExperience[i] = exp
	}
	out.Education = make([]Education, len(d.Education))
	for i, edu := range d.Education {
		edu.Honors = cloneStrings(edu.Honors)
		edu.Activities = cloneStrings(edu.Activities)
		out.Education[i] = edu
	}
	out.Projects = make([]Project, len(d.Projects))
	for i, proj := range d.Projects {
		proj.TechStack = cloneStrings(proj.TechStack)
		proj.Highlights = cloneStrings(proj.Highlights)
		out.Projects[i] = proj
	}
	out.Skills = Skills{
		Languages:  cloneStrings(d.Skills.Languages),
		Frameworks: cloneStrings(d.Skills.Frameworks),
		Tools:      cloneStrings(d.Skills.Tools),
		Databases:  cloneStrings(d.Skills.Databases),
	}
	out.Interests = cloneStrings(d.Interests)
	out.SectionOrder = make([]Section, len(d.SectionOrder))
	copy(out.SectionOrder, d.SectionOrder)
	return out
}
