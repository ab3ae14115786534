package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/BerylCAtieno/edupath-mentor/internal/app"
	"github.com/BerylCAtieno/edupath-mentor/internal/mentor"
	"github.com/BerylCAtieno/edupath-mentor/internal/models"
)

// NewMCPServer creates an MCP server exposing plan generation as tools.
func NewMCPServer(gen app.Generator, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"edupath-mentor",
		version,
		server.WithToolCapabilities(true),
		server.WithInstructions("EduPath AI mentor: turns a student profile into a personalized mentorship blueprint."),
		server.WithRecovery(),
	)

	modeKeys := make([]string, 0, len(models.Modes))
	for _, m := range models.Modes {
		modeKeys = append(modeKeys, string(m))
	}
	levels := make([]string, 0, len(models.ExperienceLevels))
	for _, l := range models.ExperienceLevels {
		levels = append(levels, string(l))
	}

	profileOpts := []mcp.ToolOption{
		mcp.WithString("mode", mcp.Description("Plan focus"), mcp.Enum(modeKeys...), mcp.Required()),
		mcp.WithString("name", mcp.Description("Student's full name"), mcp.Required()),
		mcp.WithString("targetCareerExam", mcp.Description("Target career, role or exam"), mcp.Required()),
		mcp.WithString("experienceLevel", mcp.Description("Current proficiency"), mcp.Enum(levels...), mcp.Required()),
		mcp.WithString("educationLevel", mcp.Description("e.g. Undergraduate / 12th Grade")),
		mcp.WithString("stream", mcp.Description("Academic stream")),
		mcp.WithString("currentSkills", mcp.Description("Skills and tools")),
		mcp.WithString("interests", mcp.Description("Interests")),
		mcp.WithString("strengths", mcp.Description("Strengths")),
		mcp.WithString("weaknesses", mcp.Description("Weaknesses")),
		mcp.WithString("goals", mcp.Description("Main goal summary")),
		mcp.WithString("dailyAvailableTime", mcp.Description("e.g. 1-2 Hours, 3-5 Hours, 5+ Hours")),
	}

	s.AddTool(
		mcp.NewTool("generate_mentorship_plan", append([]mcp.ToolOption{
			mcp.WithDescription("Generate a personalized mentorship plan (profile analysis, career paths, skill roadmap, study plan, projects, career prep, growth strategy)."),
			mcp.WithString("format", mcp.Description("text (default), json or raw"), mcp.Enum("text", "json", "raw")),
		}, profileOpts...)...),
		mcpGeneratePlan(gen),
	)

	s.AddTool(
		mcp.NewTool("preview_prompt", append([]mcp.ToolOption{
			mcp.WithDescription("Return the exact prompt that would be sent to the model, without calling it."),
		}, profileOpts...)...),
		mcpPreviewPrompt(),
	)

	return s
}

func mcpGeneratePlan(gen app.Generator) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		profile, mode, errMsg := profileFromRequest(req)
		if errMsg != "" {
			return mcpError(errMsg), nil
		}

		plan, err := gen.Generate(ctx, profile, mode)
		if err != nil {
			if errors.Is(err, mentor.ErrGenerationUnavailable) {
				return mcpError(err.Error()), nil
			}
			return mcpError(fmt.Sprintf("generation failed: %v", err)), nil
		}

		switch req.GetString("format", "text") {
		case "raw":
			return mcpText(plan.RawResponse), nil
		case "json":
			b, err := json.Marshal(plan)
			if err != nil {
				return mcpError(fmt.Sprintf("failed to marshal plan: %v", err)), nil
			}
			return mcpText(string(b)), nil
		default:
			return mcpText(mentor.RenderText(plan)), nil
		}
	}
}

func mcpPreviewPrompt() server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		profile, mode, errMsg := profileFromRequest(req)
		if errMsg != "" {
			return mcpError(errMsg), nil
		}
		return mcpText(mentor.BuildPrompt(profile, mode)), nil
	}
}

func profileFromRequest(req mcp.CallToolRequest) (models.StudentProfile, models.Mode, string) {
	mode, err := models.ParseMode(req.GetString("mode", ""))
	if err != nil {
		return models.StudentProfile{}, "", "mode must be one of career, study, skill, job, project"
	}

	p := models.StudentProfile{
		Name:               strings.TrimSpace(req.GetString("name", "")),
		EducationLevel:     req.GetString("educationLevel", ""),
		Stream:             req.GetString("stream", ""),
		CurrentSkills:      req.GetString("currentSkills", ""),
		Interests:          req.GetString("interests", ""),
		Strengths:          req.GetString("strengths", ""),
		Weaknesses:         req.GetString("weaknesses", ""),
		Goals:              req.GetString("goals", ""),
		DailyAvailableTime: req.GetString("dailyAvailableTime", ""),
		TargetCareerExam:   strings.TrimSpace(req.GetString("targetCareerExam", "")),
		ExperienceLevel:    models.ExperienceLevel(strings.TrimSpace(req.GetString("experienceLevel", ""))),
	}
	if missing := p.MissingFields(); len(missing) > 0 {
		return p, mode, "profile incomplete, missing: " + strings.Join(missing, ", ")
	}
	return p, mode, ""
}

func mcpText(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: text},
		},
	}
}

func mcpError(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: msg},
		},
		IsError: true,
	}
}
