package model

// PersonalInfo captures the contact block rendered at the top of the resume.
// All fields are free text; URLs are carried as-is without validation.
type PersonalInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Website  string `json:"website"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
}

// WorkExperience is one work history entry. When Current is true the end
// date is ignored by the renderers and shown as "Present", whatever EndDate
// holds.
type WorkExperience struct {
	ID               string   `json:"id"`
	Company          string   `json:"company"`
	Position         string   `json:"position"`
	Location         string   `json:"location"`
	StartDate        Date     `json:"startDate"`
	EndDate          Date     `json:"endDate"`
	Current          bool     `json:"current"`
	Responsibilities []string `json:"responsibilities"`
	TechStack        []string `json:"techStack,omitempty"`
}

// Education is one education entry. GPA is free text ("3.8/4.0" is fine);
// honors and activities are not de-duplicated.
type Education struct {
	ID          string   `json:"id"`
	Institution string   `json:"institution"`
	Degree      string   `json:"degree"`
	Field       string   `json:"field"`
	Location    string   `json:"location"`
	StartDate   Date     `json:"startDate"`
	EndDate     Date     `json:"endDate"`
	GPA         string   `json:"gpa,omitempty"`
	Honors      []string `json:"honors,omitempty"`
	Activities  []string `json:"activities,omitempty"`
}

// Project is one project entry.
type Project struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	TechStack   []string `json:"techStack"`
	Link        string   `json:"link,omitempty"`
	GitHub      string   `json:"github,omitempty"`
	Highlights  []string `json:"highlights"`
}

// Skills groups skills into four fixed buckets. The bucket set is closed;
// ordering inside a bucket is insertion order and duplicates are allowed.
type Skills struct {
	Languages  []string `json:"languages"`
	Frameworks []string `json:"frameworks"`
	Tools      []string `json:"tools"`
	Databases  []string `json:"databases"`
}

// ResumeData is the canonical document: the single unit of persistence and
// of import/export.
type ResumeData struct {
	PersonalInfo   PersonalInfo     `json:"personalInfo"`
	Summary        string           `json:"summary"`
	WorkExperience []WorkExperience `json:"workExperience"`
	Education      []Education      `json:"education"`
	Projects       []Project        `json:"projects"`
	Skills         Skills           `json:"skills"`
	Interests      []string         `json:"interests"`
	SectionOrder   []Section        `json:"sectionOrder"`
}

// DefaultResumeData returns the empty resume a session starts from.
func DefaultResumeData() ResumeData {
	return ResumeData{
		WorkExperience: []WorkExperience{},
		Education:      []Education{},
		Projects:       []Project{},
		Skills: Skills{
			Languages:  []string{},
			Frameworks: []string{},
			Tools:      []string{},
			Databases:  []string{},
		},
		Interests:    []string{},
		SectionOrder: DefaultSectionOrder(),
	}
}

// Normalize heals a ResumeData that arrived from storage or import: nil
// collections become empty and the section order becomes a valid permutation.
func (d *ResumeData) Normalize() {
	if d.WorkExperience == nil {
		d.WorkExperience = []WorkExperience{}
	}
	if d.Education == nil {
		d.Education = []Education{}
	}
	if d.Projects == nil {
		d.Projects = []Project{}
	}
	if d.Skills.Languages == nil {
		d.Skills.Languages = []string{}
	}
	if d.Skills.Frameworks == nil {
		d.Skills.Frameworks = []string{}
	}
	if d.Skills.Tools == nil {
		d.Skills.Tools = []string{}
	}
	if d.Skills.Databases == nil {
		d.Skills.Databases = []string{}
	}
	if d.Interests == nil {
		d.Interests = []string{}
	}
	d.SectionOrder = NormalizeSectionOrder(d.SectionOrder)
}

// SkillBucket names one of the four fixed skill buckets.
type SkillBucket string

const (
	BucketLanguages  SkillBucket = "languages"
	BucketFrameworks SkillBucket = "frameworks"
	BucketTools      SkillBucket = "tools"
	BucketDatabases  SkillBucket = "databases"
)

// ParseSkillBucket maps a bucket token to its SkillBucket, reporting whether
// the token is one of the four buckets.
func ParseSkillBucket(raw string) (SkillBucket, bool) {
	switch SkillBucket(raw) {
	case BucketLanguages, BucketFrameworks, BucketTools, BucketDatabases:
		return SkillBucket(raw), true
	}
	return "", false
}

// Bucket returns a pointer to the named bucket's list, or nil for an unknown
// bucket.
func (s *Skills) Bucket(bucket SkillBucket) *[]string {
	switch bucket {
	case BucketLanguages:
		return &s.Languages
	case BucketFrameworks:
		return &s.Frameworks
	case BucketTools:
		return &s.Tools
	case BucketDatabases:
		return &s.Databases
	}
	return nil
}
