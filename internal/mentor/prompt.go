package mentor

import (
	"fmt"
	"strings"

	"github.com/BerylCAtieno/edupath-mentor/internal/models"
)

const notProvided = "(not provided)"

var adaptiveRules = []string{
	`IF CONFUSED/MISSING DATA: Prepend a "❓ Clarifying Note" section asking the user for specific missing details while giving your best available advice.`,
	"IF BEGINNER: Use simple language, simplify the roadmap, and focus heavily on core fundamentals.",
	"IF ADVANCED: Increase technical depth, suggest niche advanced topics, and focus on high-level strategy.",
	"IF LOW TIME: Optimize the plan for extreme efficiency. Prioritize high-impact tasks (Pareto principle).",
	"IF EXAM FOCUS: Prioritize academic concepts, testing strategies, and resource mastery.",
	"IF JOB FOCUS: Prioritize hands-on projects, skill validation, and career readiness.",
	"IF STARTUP FOCUS: Prioritize business thinking, MVP creation, and entrepreneurial mindset.",
}

const outputSettings = `OUTPUT UI SETTINGS:
- STYLE: Highly structured, clean formatting, and engaging.
- HEADINGS: Use bold sub-headings for sub-points within sections.
- EMOJIS: Use relevant emojis to make the content student-friendly.
- BULLET POINTS: Use bullet points for all lists and actionable steps.
- CLEAR SECTIONS: Strictly follow the header structure below. Start every section header on its own line.`

// BuildPrompt renders the full generation prompt for a profile and mode.
// Name, proficiency and target are written verbatim; other blank fields are
// marked as not provided so the model can apply the missing-data rule.
func BuildPrompt(profile models.StudentProfile, mode models.Mode) string {
	var sb strings.Builder

	sb.WriteString("You are EduPath AI, a professional AI education and career mentor.\n\n")

	fmt.Fprintf(&sb, "Current Selection: %s\n", mode.Label())
	fmt.Fprintf(&sb, "INTENT: %s\n\n", mode.Intent())

	sb.WriteString("STUDENT PROFILE:\n")
	fmt.Fprintf(&sb, "- Name: %s\n", profile.Name)
	fmt.Fprintf(&sb, "- Education: %s\n", orNotProvided(profile.EducationLevel))
	fmt.Fprintf(&sb, "- Proficiency: %s\n", profile.ExperienceLevel)
	fmt.Fprintf(&sb, "- Stream: %s\n", orNotProvided(profile.Stream))
	fmt.Fprintf(&sb, "- Current Skills: %s\n", orNotProvided(profile.CurrentSkills))
	fmt.Fprintf(&sb, "- Interests: %s\n", orNotProvided(profile.Interests))
	fmt.Fprintf(&sb, "- Strengths: %s\n", orNotProvided(profile.Strengths))
	fmt.Fprintf(&sb, "- Weaknesses: %s\n", orNotProvided(profile.Weaknesses))
	fmt.Fprintf(&sb, "- Goals: %s\n", orNotProvided(profile.Goals))
	fmt.Fprintf(&sb, "- Available Time: %s\n", orNotProvided(profile.DailyAvailableTime))
	fmt.Fprintf(&sb, "- Target: %s\n\n", profile.TargetCareerExam)

	sb.WriteString("ADAPTIVE RULES (MANDATORY):\n")
	for i, rule := range adaptiveRules {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, rule)
	}
	sb.WriteString("\n")

	sb.WriteString(outputSettings)
	sb.WriteString("\n\n")

	sb.WriteString("REQUIRED RESPONSE STRUCTURE:\n")
	for _, key := range models.SectionKeys {
		fmt.Fprintf(&sb, "%s %s", key.Marker(), key.Heading())
		if key == models.SectionClarifyingNote {
			sb.WriteString(" (Only if profile is confusing/missing details)")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\nAlways be motivational, practical, and provide specific actionable steps.\n")

	return sb.String()
}

func orNotProvided(v string) string {
	if strings.TrimSpace(v) == "" {
		return notProvided
	}
	return v
}
