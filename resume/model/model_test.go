package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2022, time.January, 1)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"2022-01-01"` {
		t.Fatalf("expected \"2022-01-01\", got %s", data)
	}

	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Valid || back.Display() != "Jan 2022" {
		t.Fatalf("expected Jan 2022, got valid=%v display=%q", back.Valid, back.Display())
	}
}

func TestDateUnmarshalNullAndTimestamp(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte("null"), &d); err != nil {
		t.Fatalf("unmarshal null: %v", err)
	}
	if d.Valid {
		t.Fatalf("null should be the unset date")
	}
	if d.Display() != "" {
		t.Fatalf("unset date should display as empty string, got %q", d.Display())
	}

	// Browser localStorage snapshots carry full ISO timestamps.
	if err := json.Unmarshal([]byte(`"2021-03-15T00:00:00.000Z"`), &d); err != nil {
		t.Fatalf("unmarshal timestamp: %v", err)
	}
	if d.Display() != "Mar 2021" {
		t.Fatalf("expected Mar 2021, got %q", d.Display())
	}
}

func TestDateUnmarshalRejectsGarbage(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"not-a-date"`), &d); err == nil {
		t.Fatalf("expected error for invalid date")
	}
}

func TestDefaultResumeDataShape(t *testing.T) {
	d := DefaultResumeData()
	if len(d.WorkExperience) != 0 || len(d.Education) != 0 || len(d.Projects) != 0 {
		t.Fatalf("default collections must be empty")
	}
	if len(d.SectionOrder) != 6 {
		t.Fatalf("expected 6 sections, got %d", len(d.SectionOrder))
	}
	if d.SectionOrder[0] != SectionSummary || d.SectionOrder[5] != SectionInterests {
		t.Fatalf("unexpected default order: %v", d.SectionOrder)
	}

	// Empty collections must serialize as [] so importers see arrays.
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if string(raw["workExperience"]) != "[]" {
		t.Fatalf("expected workExperience [], got %s", raw["workExperience"])
	}
	if string(raw["interests"]) != "[]" {
		t.Fatalf("expected interests [], got %s", raw["interests"])
	}
}

func TestNormalizeSectionOrder(t *testing.T) {
	cases := []struct {
		name string
		in   []Section
		want []Section
	}{
		{
			name: "valid permutation kept",
			in:   []Section{SectionInterests, SectionSkills, SectionProjects, SectionEducation, SectionWorkExperience, SectionSummary},
			want: []Section{SectionInterests, SectionSkills, SectionProjects, SectionEducation, SectionWorkExperience, SectionSummary},
		},
		{
			name: "duplicates and unknowns dropped, missing appended",
			in:   []Section{SectionSkills, SectionSkills, Section("certifications")},
			want: []Section{SectionSkills, SectionSummary, SectionWorkExperience, SectionEducation, SectionProjects, SectionInterests},
		},
		{
			name: "nil becomes canonical",
			in:   nil,
			want: DefaultSectionOrder(),
		},
	}

	for _, tc := range cases {
		got := NormalizeSectionOrder(tc.in)
		if len(got) != len(tc.want) {
			t.Fatalf("%s: expected %d sections, got %d", tc.name, len(tc.want), len(got))
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("%s: position %d: expected %q, got %q", tc.name, i, tc.want[i], got[i])
			}
		}
	}
}

func TestNormalizeFillsNilCollections(t *testing.T) {
	var d ResumeData
	d.Normalize()
	if d.WorkExperience == nil || d.Interests == nil || d.Skills.Languages == nil {
		t.Fatalf("normalize must replace nil collections")
	}
	if len(d.SectionOrder) != 6 {
		t.Fatalf("normalize must repair section order, got %v", d.SectionOrder)
	}
}

func TestThemeNormalize(t *testing.T) {
	theme := CustomTheme{Mode: ThemeMode("sepia")}
	theme.Normalize()
	def := DefaultTheme()
	if theme != def {
		t.Fatalf("expected defaults, got %+v", theme)
	}

	custom := CustomTheme{PrimaryColor: "tomato", AccentColor: "#000", HeadingFont: "Lora, serif", BodyFont: "Roboto, sans-serif", Mode: ModeDark}
	custom.Normalize()
	if custom.PrimaryColor != "tomato" || custom.Mode != ModeDark {
		t.Fatalf("normalize must not clobber set values: %+v", custom)
	}
}

func TestParseSkillBucket(t *testing.T) {
	if _, ok := ParseSkillBucket("languages"); !ok {
		t.Fatalf("languages should parse")
	}
	if _, ok := ParseSkillBucket("soft-skills"); ok {
		t.Fatalf("the bucket set is fixed; soft-skills must not parse")
	}
}
