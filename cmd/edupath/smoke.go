package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/BerylCAtieno/edupath-mentor/internal/a2a"
	"github.com/BerylCAtieno/edupath-mentor/internal/models"
	"github.com/BerylCAtieno/edupath-mentor/internal/web"
)

// smokeClient exercises a running EduPath server over HTTP.
type smokeClient struct {
	baseURL string
	client  *http.Client
	out     io.Writer
}

func newSmokeClient(baseURL string, out io.Writer) *smokeClient {
	return &smokeClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 90 * time.Second},
		out:     out,
	}
}

var smokeCmd = &cobra.Command{
	Use:   "smoke",
	Short: "Run smoke tests against a running server",
	Long: `Run smoke tests against a running server.

Tests: all, health, agent-card, plan`,
	RunE: func(cmd *cobra.Command, args []string) error {
		baseURL, _ := cmd.Flags().GetString("url")
		test, _ := cmd.Flags().GetString("test")
		modeStr, _ := cmd.Flags().GetString("mode")

		mode, err := models.ParseMode(modeStr)
		if err != nil {
			return fmt.Errorf("--mode: %w", err)
		}

		sc := newSmokeClient(baseURL, cmd.OutOrStdout())
		fprintHeader(sc.out, "EduPath Mentor - Smoke Tests")
		fmt.Fprintf(sc.out, "%s %s\n\n", colorize(colorCyan, "Base URL:"), sc.baseURL)

		switch test {
		case "all":
			return sc.runAll(mode)
		case "health":
			return result(sc.testHealth())
		case "agent-card":
			return result(sc.testAgentCard())
		case "plan":
			return result(sc.testPlan(mode))
		default:
			return fmt.Errorf("unknown test %q (available: all, health, agent-card, plan)", test)
		}
	},
}

func init() {
	smokeCmd.Flags().String("url", "http://localhost:8080", "base URL of the server")
	smokeCmd.Flags().String("test", "all", "test to run: all, health, agent-card, plan")
	smokeCmd.Flags().String("mode", string(models.ModeCareer), "mode for the plan test")
}

func result(ok bool) error {
	if !ok {
		return fmt.Errorf("smoke test failed")
	}
	return nil
}

func (sc *smokeClient) runAll(mode models.Mode) error {
	tests := []struct {
		name string
		fn   func() bool
	}{
		{"Health Check", sc.testHealth},
		{"Agent Card", sc.testAgentCard},
		{"Plan Generation", func() bool { return sc.testPlan(mode) }},
	}

	passed, failed := 0, 0
	for _, t := range tests {
		if t.fn() {
			passed++
		} else {
			failed++
		}
		fmt.Fprintln(sc.out)
	}

	fprintHeader(sc.out, "Summary")
	fmt.Fprintln(sc.out, colorize(colorGreen, fmt.Sprintf("Passed: %d", passed)))
	fmt.Fprintln(sc.out, colorize(colorRed, fmt.Sprintf("Failed: %d", failed)))
	fmt.Fprintf(sc.out, "Total: %d\n", passed+failed)

	if failed > 0 {
		return fmt.Errorf("%d of %d smoke tests failed", failed, passed+failed)
	}
	return nil
}

func (sc *smokeClient) get(path string) (int, []byte, error) {
	url := sc.baseURL + path
	fmt.Fprintf(sc.out, "GET %s\n", url)
	resp, err := sc.client.Get(url)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	return resp.StatusCode, body, err
}

func (sc *smokeClient) testHealth() bool {
	fprintTestHeader(sc.out, "Health endpoint")

	code, body, err := sc.get("/health")
	if err != nil {
		fprintFailure(sc.out, "request failed: %v", err)
		return false
	}
	if code != http.StatusOK {
		fprintFailure(sc.out, "expected status 200, got %d", code)
		return false
	}
	if string(body) != "OK" {
		fprintFailure(sc.out, "expected body 'OK', got %q", string(body))
		return false
	}

	fprintSuccess(sc.out, "health check passed")
	return true
}

func (sc *smokeClient) testAgentCard() bool {
	fprintTestHeader(sc.out, "Agent card")

	code, body, err := sc.get(a2a.CardPath)
	if err != nil {
		fprintFailure(sc.out, "request failed: %v", err)
		return false
	}
	if code != http.StatusOK {
		fprintFailure(sc.out, "expected status 200, got %d", code)
		return false
	}

	var card a2a.AgentCard
	if err := json.Unmarshal(body, &card); err != nil {
		fprintFailure(sc.out, "invalid JSON: %v", err)
		return false
	}
	switch {
	case card.Name == "":
		fprintFailure(sc.out, "agent card has no name")
		return false
	case card.URL == "":
		fprintFailure(sc.out, "agent card has no url")
		return false
	case len(card.Skills) != len(models.Modes):
		fprintFailure(sc.out, "expected %d skills, got %d", len(models.Modes), len(card.Skills))
		return false
	}

	fprintSuccess(sc.out, "agent card is valid")
	fprintJSON(sc.out, "Response", body)
	return true
}

func (sc *smokeClient) testPlan(mode models.Mode) bool {
	fprintTestHeader(sc.out, "Plan generation ("+mode.Label()+")")

	part, err := a2a.DataPart(a2a.PlanRequest{Profile: web.DemoProfile(), Mode: string(mode)})
	if err != nil {
		fprintFailure(sc.out, "encoding request: %v", err)
		return false
	}
	params, _ := json.Marshal(a2a.MessageParams{
		Message: a2a.A2AMessage{
			Kind:  "message",
			Role:  a2a.RoleUser,
			Parts: []a2a.MessagePart{part},
		},
		Configuration: a2a.MessageConfiguration{
			Blocking:            true,
			AcceptedOutputModes: []string{"text", "data"},
		},
	})
	reqBody, _ := json.Marshal(a2a.JSONRPCRequest{
		JSONRPC: "2.0",
		ID:      fmt.Sprintf("smoke-%d", time.Now().Unix()),
		Method:  "message/send",
		Params:  params,
	})

	url := sc.baseURL + a2a.MentorPath
	fmt.Fprintf(sc.out, "POST %s\n", url)
	fprintJSON(sc.out, "Request", reqBody)

	resp, err := sc.client.Post(url, "application/json", bytes.NewReader(reqBody))
	if err != nil {
		fprintFailure(sc.out, "request failed: %v", err)
		return false
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fprintFailure(sc.out, "expected status 200, got %d", resp.StatusCode)
		fmt.Fprintf(sc.out, "Response: %s\n", body)
		return false
	}

	var rpc struct {
		Result *a2a.TaskResult   `json:"result"`
		Error  *a2a.JSONRPCError `json:"error"`
	}
	if err := json.Unmarshal(body, &rpc); err != nil {
		fprintFailure(sc.out, "invalid JSON: %v", err)
		return false
	}
	if rpc.Error != nil {
		fprintFailure(sc.out, "JSON-RPC error %d: %s", rpc.Error.Code, rpc.Error.Message)
		return false
	}
	if rpc.Result == nil {
		fprintFailure(sc.out, "response has no result")
		return false
	}
	if rpc.Result.Status.State != a2a.StateCompleted {
		fprintFailure(sc.out, "expected state %q, got %q", a2a.StateCompleted, rpc.Result.Status.State)
		if msg := rpc.Result.Status.Message; msg != nil {
			for _, p := range msg.Parts {
				fmt.Fprintln(sc.out, p.Text)
			}
		}
		return false
	}

	fprintSuccess(sc.out, "plan generated")
	if msg := rpc.Result.Status.Message; msg != nil {
		fmt.Fprintln(sc.out, colorize(colorGreen, "\nSummary:"))
		fmt.Fprintln(sc.out, strings.Repeat("=", 80))
		for _, p := range msg.Parts {
			if p.Text != "" {
				fmt.Fprintln(sc.out, p.Text)
			}
		}
		fmt.Fprintln(sc.out, strings.Repeat("=", 80))
	}
	if n := len(rpc.Result.Artifacts); n > 0 {
		fmt.Fprintln(sc.out, colorize(colorPurple, fmt.Sprintf("\nArtifacts: %d", n)))
		for _, a := range rpc.Result.Artifacts {
			fmt.Fprintf(sc.out, "  - %s\n", a.Name)
		}
	}
	return true
}
