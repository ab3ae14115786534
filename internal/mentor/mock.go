package mentor

import (
	"context"
	"fmt"
	"strings"
)

// MockClient returns a canned, marker-structured response built from the
// prompt. Used for local development without an API key.
type MockClient struct{}

func NewMockClient() *MockClient {
	return &MockClient{}
}

// GenerateText implements TextGenerator.
func (m *MockClient) GenerateText(_ context.Context, prompt string) (string, error) {
	target := promptField(prompt, "- Target: ")
	name := promptField(prompt, "- Name: ")
	selection := promptField(prompt, "Current Selection: ")

	var sb strings.Builder
	if strings.Contains(prompt, notProvided) {
		sb.WriteString("❓ Clarifying Note\nA few profile fields were left blank. Share them for a sharper plan.\n\n")
	}
	fmt.Fprintf(&sb, "📍 Profile Summary\n%s is preparing for **%s** (%s).\n\n", name, target, selection)
	sb.WriteString("🎯 Career Paths\n- Primary path toward " + target + "\n- Adjacent roles to keep open\n\n")
	sb.WriteString("🧠 Skill Roadmap\nFoundations:\n1. Core concepts\n2. Tooling\n\n")
	sb.WriteString("📚 Study Plan\n- Daily focused block\n- Weekly review\n\n")
	sb.WriteString("🚀 Project Ideas\n- One small portfolio project\n\n")
	sb.WriteString("💼 Career Preparation\n- Update resume\n- Practice interviews\n\n")
	sb.WriteString("📈 Growth Strategy\nSmall, consistent daily actions.\n")
	return sb.String(), nil
}

func promptField(prompt, prefix string) string {
	for _, line := range strings.Split(prompt, "\n") {
		if strings.HasPrefix(line, prefix) {
			return strings.TrimSpace(strings.TrimPrefix(line, prefix))
		}
	}
	return ""
}
