package mentor

import (
	"strings"
	"testing"

	"github.com/BerylCAtieno/edupath-mentor/internal/models"
)

func assertFallbacks(t *testing.T, plan models.MentorshipPlan, except ...models.SectionKey) {
	t.Helper()
	skip := make(map[models.SectionKey]bool)
	for _, k := range except {
		skip[k] = true
	}
	for _, k := range models.SectionKeys {
		if skip[k] {
			continue
		}
		if got := plan.Section(k); got != k.Fallback() {
			t.Errorf("%s = %q, want fallback %q", k, got, k.Fallback())
		}
	}
}

func TestParsePlan_TwoSections(t *testing.T) {
	raw := "📍 Summary A\n🎯 Paths B"
	plan := ParsePlan(raw)

	if plan.ProfileSummary != "Summary A" {
		t.Errorf("ProfileSummary = %q, want %q", plan.ProfileSummary, "Summary A")
	}
	if plan.CareerPaths != "Paths B" {
		t.Errorf("CareerPaths = %q, want %q", plan.CareerPaths, "Paths B")
	}
	if plan.ClarifyingNote != "" {
		t.Errorf("ClarifyingNote = %q, want empty", plan.ClarifyingNote)
	}
	assertFallbacks(t, plan, models.SectionProfileSummary, models.SectionCareerPaths)
	if plan.RawResponse != raw {
		t.Errorf("RawResponse changed: %q", plan.RawResponse)
	}
}

func TestParsePlan_ClarifyingNote(t *testing.T) {
	plan := ParsePlan("❓ Need more info\n📍 Summary X")

	if plan.ClarifyingNote != "Need more info" {
		t.Errorf("ClarifyingNote = %q", plan.ClarifyingNote)
	}
	if plan.ProfileSummary != "Summary X" {
		t.Errorf("ProfileSummary = %q", plan.ProfileSummary)
	}
}

func TestParsePlan_Empty(t *testing.T) {
	plan := ParsePlan("")

	assertFallbacks(t, plan)
	if plan.RawResponse != "" {
		t.Errorf("RawResponse = %q, want empty", plan.RawResponse)
	}
}

func TestParsePlan_NoMarkers(t *testing.T) {
	raw := "Here is some advice without any structure at all."
	plan := ParsePlan(raw)

	assertFallbacks(t, plan)
	if plan.RawResponse != raw {
		t.Errorf("RawResponse = %q", plan.RawResponse)
	}
}

func TestParsePlan_FallbackOutputReparses(t *testing.T) {
	first := ParsePlan("no markers here")

	var parts []string
	for _, k := range models.SectionKeys {
		parts = append(parts, first.Section(k))
	}
	second := ParsePlan(strings.Join(parts, "\n"))

	assertFallbacks(t, second)
}

func TestParsePlan_FullResponse(t *testing.T) {
	raw := `Intro chatter that should be dropped.
📍 Profile Summary
You are a motivated beginner.
🎯 Career Paths
- Data Analyst
- ML Engineer
🧠 Skill Roadmap
1. Python
📚 Study Plan
Daily: 2 hours
🚀 Project Ideas
Build a dashboard
💼 Career Preparation
Polish your resume
📈 Growth Strategy
Keep learning`

	plan := ParsePlan(raw)

	tests := []struct {
		key  models.SectionKey
		want string
	}{
		{models.SectionProfileSummary, "Profile Summary\nYou are a motivated beginner."},
		{models.SectionCareerPaths, "Career Paths\n- Data Analyst\n- ML Engineer"},
		{models.SectionSkillRoadmap, "Skill Roadmap\n1. Python"},
		{models.SectionStudyPlan, "Study Plan\nDaily: 2 hours"},
		{models.SectionProjectIdeas, "Project Ideas\nBuild a dashboard"},
		{models.SectionCareerPrep, "Career Preparation\nPolish your resume"},
		{models.SectionGrowthStrategy, "Growth Strategy\nKeep learning"},
		{models.SectionClarifyingNote, ""},
	}
	for _, tt := range tests {
		if got := plan.Section(tt.key); got != tt.want {
			t.Errorf("%s = %q, want %q", tt.key, got, tt.want)
		}
	}

	for _, k := range models.SectionKeys {
		if strings.Contains(plan.Section(k), "Intro chatter") {
			t.Errorf("%s contains text from before the first marker", k)
		}
	}
}

func TestParsePlan_DuplicateMarkerFirstWins(t *testing.T) {
	plan := ParsePlan("📍 first\n🎯 paths\n📍 second")

	if plan.ProfileSummary != "first" {
		t.Errorf("ProfileSummary = %q, want %q", plan.ProfileSummary, "first")
	}
}

func TestParsePlan_UnrecognizedEmojiStaysInBody(t *testing.T) {
	plan := ParsePlan("📍 Summary ✨ sparkle\n🎯 Paths")

	if plan.ProfileSummary != "Summary ✨ sparkle" {
		t.Errorf("ProfileSummary = %q", plan.ProfileSummary)
	}
}

func TestParsePlan_VariationSelector(t *testing.T) {
	plan := ParsePlan("❓\uFE0F Please share your goals\n📍 Summary")

	if plan.ClarifyingNote != "Please share your goals" {
		t.Errorf("ClarifyingNote = %q", plan.ClarifyingNote)
	}
}

func TestParsePlan_EmptyBodyFallsBack(t *testing.T) {
	plan := ParsePlan("📍   \n🎯 Paths")

	if plan.ProfileSummary != models.SectionProfileSummary.Fallback() {
		t.Errorf("ProfileSummary = %q, want fallback", plan.ProfileSummary)
	}
	if plan.CareerPaths != "Paths" {
		t.Errorf("CareerPaths = %q", plan.CareerPaths)
	}
}

func TestSplitAtMarkers(t *testing.T) {
	got := splitAtMarkers("lead📍a🎯b")
	want := []string{"lead", "📍a", "🎯b"}
	if len(got) != len(want) {
		t.Fatalf("got %d fragments %q, want %q", len(got), got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("fragment[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
