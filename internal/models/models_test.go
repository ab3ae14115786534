package models

import (
	"reflect"
	"testing"
)

func TestStudentProfileReady(t *testing.T) {
	full := StudentProfile{Name: "Alex", TargetCareerExam: "GRE", ExperienceLevel: LevelBeginner}

	tests := []struct {
		name    string
		mutate  func(p *StudentProfile)
		want    bool
		missing []string
	}{
		{name: "complete", mutate: func(p *StudentProfile) {}, want: true},
		{name: "no name", mutate: func(p *StudentProfile) { p.Name = "" }, missing: []string{"Name"}},
		{name: "no target", mutate: func(p *StudentProfile) { p.TargetCareerExam = "" }, missing: []string{"TargetCareerExam"}},
		{name: "level unset", mutate: func(p *StudentProfile) { p.ExperienceLevel = LevelUnset }, missing: []string{"ExperienceLevel"}},
		{name: "unknown level", mutate: func(p *StudentProfile) { p.ExperienceLevel = "Guru" }, missing: []string{"ExperienceLevel"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := full
			tt.mutate(&p)
			if got := p.Ready(); got != tt.want {
				t.Errorf("Ready() = %v, want %v", got, tt.want)
			}
			if got := p.MissingFields(); !reflect.DeepEqual(got, tt.missing) {
				t.Errorf("MissingFields() = %v, want %v", got, tt.missing)
			}
		})
	}
}

func TestStudentProfileZeroValueNotReady(t *testing.T) {
	var p StudentProfile
	if p.Ready() {
		t.Fatal("empty profile should not be ready")
	}
	want := []string{"Name", "TargetCareerExam", "ExperienceLevel"}
	if got := p.MissingFields(); !reflect.DeepEqual(got, want) {
		t.Errorf("MissingFields() = %v, want %v", got, want)
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
	}{
		{"career", ModeCareer},
		{"Study Mode", ModeStudy},
		{"  SKILL ", ModeSkill},
		{"job mode", ModeJob},
		{"project", ModeProject},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if err != nil {
			t.Fatalf("ParseMode(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	if _, err := ParseMode("vacation"); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestModeTables(t *testing.T) {
	for _, m := range Modes {
		if !m.Valid() {
			t.Errorf("%q not valid", m)
		}
		if m.Label() == "" || m.Intent() == "" || m.Icon() == "" {
			t.Errorf("%q missing table entry", m)
		}
	}
	if Mode("x").Valid() {
		t.Error("unexpected valid mode")
	}
}

func TestSectionTable(t *testing.T) {
	seen := make(map[string]bool)
	for _, k := range SectionKeys {
		m := k.Marker()
		if m == "" {
			t.Fatalf("%s has no marker", k)
		}
		if seen[m] {
			t.Fatalf("marker %q reused", m)
		}
		seen[m] = true

		if k == SectionClarifyingNote {
			if k.Fallback() != "" {
				t.Errorf("clarifying note fallback = %q, want empty", k.Fallback())
			}
			continue
		}
		if k.Fallback() == "" {
			t.Errorf("%s has empty fallback", k)
		}
	}
}

func TestPlanSectionAccessors(t *testing.T) {
	var p MentorshipPlan
	for _, k := range SectionKeys {
		p.SetSection(k, string(k)+" body")
	}
	for _, k := range SectionKeys {
		if got := p.Section(k); got != string(k)+" body" {
			t.Errorf("Section(%s) = %q", k, got)
		}
	}
	if p.CareerPrep != "career_prep body" {
		t.Errorf("CareerPrep = %q", p.CareerPrep)
	}
}
