package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/BerylCAtieno/edupath-mentor/internal/config"
	"github.com/BerylCAtieno/edupath-mentor/internal/logger"
	"github.com/BerylCAtieno/edupath-mentor/internal/mcpserver"
	"github.com/BerylCAtieno/edupath-mentor/internal/mentor"
	"github.com/BerylCAtieno/edupath-mentor/internal/models"
	"github.com/BerylCAtieno/edupath-mentor/internal/web"
)

// newService wires the configured backend. CLI logs go to stderr so stdout
// stays clean for the plan or the MCP transport.
func newService() (*mentor.Service, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	log, err := logger.New(cfg.Server.Mode)
	if err != nil {
		return nil, nil, err
	}
	gen, err := mentor.NewTextGenerator(cfg.LLM)
	if err != nil {
		return nil, nil, err
	}
	return mentor.NewService(gen, log), log, nil
}

// --- plan ---

var planFlags = []struct {
	name  string
	usage string
	set   func(p *models.StudentProfile, v string)
}{
	{"name", "full name (required)", func(p *models.StudentProfile, v string) { p.Name = v }},
	{"target", "target career, role or exam (required)", func(p *models.StudentProfile, v string) { p.TargetCareerExam = v }},
	{"level", "Beginner, Intermediate or Advanced (required)", func(p *models.StudentProfile, v string) { p.ExperienceLevel = models.ExperienceLevel(v) }},
	{"education", "education level", func(p *models.StudentProfile, v string) { p.EducationLevel = v }},
	{"stream", "academic stream", func(p *models.StudentProfile, v string) { p.Stream = v }},
	{"skills", "current skills and tools", func(p *models.StudentProfile, v string) { p.CurrentSkills = v }},
	{"interests", "interests", func(p *models.StudentProfile, v string) { p.Interests = v }},
	{"strengths", "strengths", func(p *models.StudentProfile, v string) { p.Strengths = v }},
	{"weaknesses", "weaknesses", func(p *models.StudentProfile, v string) { p.Weaknesses = v }},
	{"goals", "main goal summary", func(p *models.StudentProfile, v string) { p.Goals = v }},
	{"time", "daily available time, e.g. 3-5 Hours", func(p *models.StudentProfile, v string) { p.DailyAvailableTime = v }},
}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate a mentorship plan for a profile",
	Long: `Generate a mentorship plan for a profile and print it.

Examples:
  edupath plan --mode career --name "Alex" --target "AI Engineer" --level Beginner
  edupath plan --mode study --demo --raw
  edupath plan --mode job --demo --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, mode, err := profileFromFlags(cmd)
		if err != nil {
			return err
		}

		svc, log, err := newService()
		if err != nil {
			return err
		}
		defer log.Sync()

		plan, err := svc.Generate(cmd.Context(), profile, mode)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		raw, _ := cmd.Flags().GetBool("raw")
		asJSON, _ := cmd.Flags().GetBool("json")
		switch {
		case asJSON:
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(plan)
		case raw:
			fmt.Fprintln(out, plan.RawResponse)
		default:
			fmt.Fprintln(out, colorize(colorBold, mode.Icon()+" "+mode.Label()+" blueprint for "+profile.Name))
			fmt.Fprintln(out)
			fmt.Fprintln(out, mentor.RenderText(plan))
		}
		return nil
	},
}

func profileFromFlags(cmd *cobra.Command) (models.StudentProfile, models.Mode, error) {
	modeStr, _ := cmd.Flags().GetString("mode")
	mode, err := models.ParseMode(modeStr)
	if err != nil {
		return models.StudentProfile{}, "", fmt.Errorf("--mode: %w (use career, study, skill, job or project)", err)
	}

	var p models.StudentProfile
	if demo, _ := cmd.Flags().GetBool("demo"); demo {
		p = web.DemoProfile()
	}
	for _, f := range planFlags {
		if cmd.Flags().Changed(f.name) {
			v, _ := cmd.Flags().GetString(f.name)
			f.set(&p, strings.TrimSpace(v))
		}
	}

	if missing := p.MissingFields(); len(missing) > 0 {
		return p, mode, fmt.Errorf("profile incomplete, missing: %s", strings.Join(missing, ", "))
	}
	return p, mode, nil
}

func init() {
	planCmd.Flags().String("mode", "career", "plan focus: career, study, skill, job or project")
	for _, f := range planFlags {
		planCmd.Flags().String(f.name, "", f.usage)
	}
	planCmd.Flags().Bool("demo", false, "start from the demo profile; other flags override its fields")
	planCmd.Flags().Bool("raw", false, "print the raw model response")
	planCmd.Flags().Bool("json", false, "print the parsed plan as JSON")
}

// --- mcp ---

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the mentorship tools over MCP (stdio)",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, log, err := newService()
		if err != nil {
			return err
		}
		defer log.Sync()

		stdioSrv := server.NewStdioServer(mcpserver.NewMCPServer(svc, version))
		log.Info("MCP server started (stdio transport)")
		if err := stdioSrv.Listen(cmd.Context(), os.Stdin, os.Stdout); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("mcp stdio server: %w", err)
		}
		return nil
	},
}

// --- config ---

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration and the env vars that set it",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, k := range config.ShowAll(cfg) {
			fmt.Fprintf(out, "  %-24s %-32s %s\n", colorize(colorBold, k.Key), k.Value, colorize(colorCyan, k.EnvVar))
		}
		return nil
	},
}
