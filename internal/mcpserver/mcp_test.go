package mcpserver

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/BerylCAtieno/edupath-mentor/internal/mentor"
	"github.com/BerylCAtieno/edupath-mentor/internal/models"
)

// --- mocks ---

type mockGenerator struct {
	calls   int
	profile models.StudentProfile
	mode    models.Mode
	plan    models.MentorshipPlan
	err     error
}

func (m *mockGenerator) Generate(_ context.Context, p models.StudentProfile, mode models.Mode) (models.MentorshipPlan, error) {
	m.calls++
	m.profile = p
	m.mode = mode
	return m.plan, m.err
}

// --- helpers ---

func toolText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("no content in result")
	}
	tc, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected TextContent, got %T", result.Content[0])
	}
	return tc.Text
}

func makeCallToolRequest(name string, args map[string]interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

func readyArgs() map[string]interface{} {
	return map[string]interface{}{
		"mode":             "career",
		"name":             "Priya",
		"targetCareerExam": "Cloud Architect",
		"experienceLevel":  "Intermediate",
		"goals":            "Lead a platform team",
	}
}

// --- tests ---

func TestMCPTool_GeneratePlan_Text(t *testing.T) {
	gen := &mockGenerator{plan: mentor.ParsePlan("📍 Solid base\n🎯 Cloud paths")}
	handler := mcpGeneratePlan(gen)

	result, err := handler(context.Background(), makeCallToolRequest("generate_mentorship_plan", readyArgs()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected error: %s", toolText(t, result))
	}

	if gen.calls != 1 || gen.mode != models.ModeCareer {
		t.Fatalf("calls = %d mode = %q", gen.calls, gen.mode)
	}
	if gen.profile.Goals != "Lead a platform team" || gen.profile.ExperienceLevel != models.LevelIntermediate {
		t.Errorf("profile = %+v", gen.profile)
	}
	text := toolText(t, result)
	if !strings.Contains(text, "📍 Profile Analysis\nSolid base") {
		t.Errorf("unexpected text:\n%s", text)
	}
}

func TestMCPTool_GeneratePlan_Formats(t *testing.T) {
	raw := "📍 Solid base"
	gen := &mockGenerator{plan: mentor.ParsePlan(raw)}
	handler := mcpGeneratePlan(gen)

	args := readyArgs()
	args["format"] = "raw"
	result, _ := handler(context.Background(), makeCallToolRequest("generate_mentorship_plan", args))
	if got := toolText(t, result); got != raw {
		t.Errorf("raw = %q", got)
	}

	args["format"] = "json"
	result, _ = handler(context.Background(), makeCallToolRequest("generate_mentorship_plan", args))
	var plan models.MentorshipPlan
	if err := json.Unmarshal([]byte(toolText(t, result)), &plan); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if plan.ProfileSummary != "Solid base" {
		t.Errorf("plan = %+v", plan)
	}
}

func TestMCPTool_GeneratePlan_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(map[string]interface{})
		want   string
	}{
		{"missing mode", func(a map[string]interface{}) { delete(a, "mode") }, "mode must be"},
		{"bad mode", func(a map[string]interface{}) { a["mode"] = "vacation" }, "mode must be"},
		{"missing name", func(a map[string]interface{}) { delete(a, "name") }, "Name"},
		{"bad level", func(a map[string]interface{}) { a["experienceLevel"] = "Guru" }, "ExperienceLevel"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &mockGenerator{}
			args := readyArgs()
			tt.mutate(args)

			result, err := mcpGeneratePlan(gen)(context.Background(), makeCallToolRequest("generate_mentorship_plan", args))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !result.IsError {
				t.Fatal("expected tool error")
			}
			if text := toolText(t, result); !strings.Contains(text, tt.want) {
				t.Errorf("error %q missing %q", text, tt.want)
			}
			if gen.calls != 0 {
				t.Error("generator should not be called")
			}
		})
	}
}

func TestMCPTool_GeneratePlan_Unavailable(t *testing.T) {
	gen := &mockGenerator{err: mentor.ErrGenerationUnavailable}
	result, err := mcpGeneratePlan(gen)(context.Background(), makeCallToolRequest("generate_mentorship_plan", readyArgs()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError || toolText(t, result) != mentor.ErrGenerationUnavailable.Error() {
		t.Errorf("result = %+v", result)
	}
}

func TestMCPTool_PreviewPrompt(t *testing.T) {
	result, err := mcpPreviewPrompt()(context.Background(), makeCallToolRequest("preview_prompt", readyArgs()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text := toolText(t, result)
	if !strings.Contains(text, "Current Selection: Career Mode") || !strings.Contains(text, "Cloud Architect") {
		t.Errorf("unexpected prompt:\n%s", text)
	}
}

func TestNewMCPServer_ListsTools(t *testing.T) {
	s := NewMCPServer(&mockGenerator{}, "test")

	resp := s.HandleMessage(context.Background(), json.RawMessage(`{"jsonrpc":"2.0","id":1,"method":"tools/list"}`))
	b, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal response: %v", err)
	}
	for _, name := range []string{"generate_mentorship_plan", "preview_prompt"} {
		if !strings.Contains(string(b), `"name":"`+name+`"`) {
			t.Errorf("tool %q not listed: %s", name, b)
		}
	}
}
