package a2a

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BerylCAtieno/edupath-mentor/internal/app"
	"github.com/BerylCAtieno/edupath-mentor/internal/logger"
	"github.com/BerylCAtieno/edupath-mentor/internal/models"
)

const (
	AgentName   = "EduPath Mentor"
	MentorPath  = "/a2a/mentor"
	CardPath    = "/.well-known/agent.json"
	protocolVer = "0.3.0"
)

var errNoPlanRequest = errors.New(`send a data part shaped like {"profile": {...}, "mode": "career"}`)

type A2AHandler struct {
	gen     app.Generator
	log     *logger.Logger
	version string
}

func NewA2AHandler(gen app.Generator, log *logger.Logger, version string) *A2AHandler {
	if log == nil {
		log = logger.NewNop()
	}
	return &A2AHandler{gen: gen, log: log, version: version}
}

func (h *A2AHandler) Register(r gin.IRouter) {
	r.GET(CardPath, h.ServeAgentCard)
	r.POST(MentorPath, h.HandleMentor)
}

// HandleMentor processes A2A messages. Each message/send runs one stateless
// generation; the browser session state machine is not involved.
func (h *A2AHandler) HandleMentor(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.log.Error("reading request body", "error", err)
		h.sendErrorResponse(c, nil, "Failed to read request body", CodeParseError)
		return
	}

	var rpcReq JSONRPCRequest
	if err := json.Unmarshal(body, &rpcReq); err != nil {
		h.log.Warn("decoding JSON-RPC request", "error", err)
		h.sendErrorResponse(c, nil, "Parse error", CodeParseError)
		return
	}

	// Some clients post the message params without the JSON-RPC envelope.
	if rpcReq.JSONRPC == "" && rpcReq.Method == "" {
		h.handleDirectMessage(c, body)
		return
	}

	if rpcReq.JSONRPC != "2.0" {
		h.log.Warn("invalid JSON-RPC version", "version", rpcReq.JSONRPC)
		h.sendErrorResponse(c, rpcReq.ID, "Invalid JSON-RPC version", CodeInvalidRequest)
		return
	}

	switch rpcReq.Method {
	case "message/send", "agent/task":
		h.handleTask(c, rpcReq)
	default:
		h.log.Warn("unknown JSON-RPC method", "method", rpcReq.Method)
		h.sendErrorResponse(c, rpcReq.ID, fmt.Sprintf("Method not found: %s", rpcReq.Method), CodeMethodNotFound)
	}
}

func (h *A2AHandler) handleDirectMessage(c *gin.Context, body []byte) {
	var params MessageParams
	if err := json.Unmarshal(body, &params); err != nil || len(params.Message.Parts) == 0 {
		h.sendErrorResponse(c, nil, "Invalid request format", CodeInvalidRequest)
		return
	}
	h.sendSuccessResponse(c, nil, h.runTask(c, params.Message))
}

func (h *A2AHandler) handleTask(c *gin.Context, rpcReq JSONRPCRequest) {
	var params MessageParams
	if err := json.Unmarshal(rpcReq.Params, &params); err != nil {
		h.log.Warn("invalid message params", "error", err)
		h.sendErrorResponse(c, rpcReq.ID, "Invalid parameters", CodeInvalidParams)
		return
	}
	h.sendSuccessResponse(c, rpcReq.ID, h.runTask(c, params.Message))
}

func (h *A2AHandler) runTask(c *gin.Context, msg A2AMessage) TaskResult {
	taskID := msg.TaskID
	if taskID == "" {
		taskID = uuid.NewString()
	}
	contextID := msg.ContextID
	if contextID == "" {
		contextID = uuid.NewString()
	}

	req, err := extractPlanRequest(msg)
	if err != nil {
		return h.inputRequired(taskID, contextID, err.Error())
	}
	mode, err := models.ParseMode(req.Mode)
	if err != nil {
		return h.inputRequired(taskID, contextID,
			fmt.Sprintf("Unknown mode %q. Use one of: career, study, skill, job, project.", req.Mode))
	}
	if missing := req.Profile.MissingFields(); len(missing) > 0 {
		return h.inputRequired(taskID, contextID,
			"Profile incomplete. Missing: "+strings.Join(missing, ", "))
	}

	log := h.log.With("task_id", taskID, "mode", mode)
	log.Info("generating plan for A2A task")

	plan, err := h.gen.Generate(c.Request.Context(), req.Profile, mode)
	if err != nil {
		log.Warn("A2A generation failed", "error", err)
		return h.taskResult(taskID, contextID, StateFailed, err.Error(), nil)
	}
	return h.taskResult(taskID, contextID, StateCompleted, summaryText(plan, mode), planArtifacts(plan))
}

// extractPlanRequest takes the last part that decodes to a plan request.
// Data parts carry the object directly; text parts may carry it as JSON.
func extractPlanRequest(msg A2AMessage) (PlanRequest, error) {
	for i := len(msg.Parts) - 1; i >= 0; i-- {
		part := msg.Parts[i]
		var raw []byte
		switch part.Kind {
		case "data":
			raw = part.Data
		case "text":
			raw = []byte(strings.TrimSpace(part.Text))
		default:
			continue
		}
		if len(raw) == 0 {
			continue
		}

		var req PlanRequest
		if err := json.Unmarshal(raw, &req); err != nil {
			continue
		}
		if req.Mode == "" && req.Profile == (models.StudentProfile{}) {
			continue
		}
		return req, nil
	}
	return PlanRequest{}, errNoPlanRequest
}

func (h *A2AHandler) inputRequired(taskID, contextID, text string) TaskResult {
	h.log.Debug("A2A task needs input", "task_id", taskID, "reason", text)
	return h.taskResult(taskID, contextID, StateInputRequired, text, nil)
}

func (h *A2AHandler) taskResult(taskID, contextID, state, text string, artifacts []Artifact) TaskResult {
	return TaskResult{
		ID:        taskID,
		ContextID: contextID,
		Kind:      "task",
		Status: TaskStatus{
			State:     state,
			Timestamp: Timestamp(),
			Message: &A2AMessage{
				Kind:      "message",
				Role:      RoleAgent,
				MessageID: uuid.NewString(),
				TaskID:    taskID,
				ContextID: contextID,
				Parts:     []MessagePart{TextPart(text)},
			},
		},
		Artifacts: artifacts,
	}
}

// planArtifacts returns one text artifact per non-empty section, in section
// order, followed by the raw response and the structured plan.
func planArtifacts(plan models.MentorshipPlan) []Artifact {
	artifacts := make([]Artifact, 0, len(models.SectionKeys)+2)
	for _, k := range models.SectionKeys {
		content := plan.Section(k)
		if content == "" {
			continue
		}
		artifacts = append(artifacts, Artifact{
			ArtifactID: uuid.NewString(),
			Name:       k.Title(),
			Parts:      []MessagePart{TextPart(content)},
		})
	}
	artifacts = append(artifacts, Artifact{
		ArtifactID: uuid.NewString(),
		Name:       "Raw Response",
		Parts:      []MessagePart{TextPart(plan.RawResponse)},
	})
	if part, err := DataPart(plan); err == nil {
		artifacts = append(artifacts, Artifact{
			ArtifactID: uuid.NewString(),
			Name:       "Mentorship Plan",
			Parts:      []MessagePart{part},
		})
	}
	return artifacts
}

func summaryText(plan models.MentorshipPlan, mode models.Mode) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s blueprint ready.\n\n", mode.Label())
	if plan.ClarifyingNote != "" {
		b.WriteString("❓ " + plan.ClarifyingNote + "\n\n")
	}
	b.WriteString(models.SectionProfileSummary.Marker() + " " + plan.ProfileSummary)
	return b.String()
}

// ServeAgentCard describes this agent. The endpoint URL is derived from the
// incoming request so the card is correct behind a proxy.
func (h *A2AHandler) ServeAgentCard(c *gin.Context) {
	c.JSON(http.StatusOK, h.AgentCard(baseURL(c.Request)))
}

func (h *A2AHandler) AgentCard(base string) AgentCard {
	skills := make([]AgentSkill, 0, len(models.Modes))
	for _, m := range models.Modes {
		skills = append(skills, AgentSkill{
			ID:          string(m) + "-plan",
			Name:        m.Label(),
			Description: m.Intent(),
			Tags:        []string{"mentorship", "education", string(m)},
			Examples:    []string{fmt.Sprintf(`{"profile":{"name":"Alex","targetCareerExam":"GRE","experienceLevel":"Beginner"},"mode":"%s"}`, m)},
		})
	}
	return AgentCard{
		Name:               AgentName,
		Description:        "Adaptive AI mentor that turns a student profile into a personalized career and study blueprint.",
		URL:                strings.TrimRight(base, "/") + MentorPath,
		Version:            h.version,
		ProtocolVersion:    protocolVer,
		Capabilities:       AgentCapabilities{},
		DefaultInputModes:  []string{"application/json", "text/plain"},
		DefaultOutputModes: []string{"text/plain", "application/json"},
		Skills:             skills,
	}
}

func baseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if p := r.Header.Get("X-Forwarded-Proto"); p != "" {
		scheme = p
	}
	return scheme + "://" + r.Host
}

func (h *A2AHandler) sendSuccessResponse(c *gin.Context, id any, result TaskResult) {
	c.JSON(http.StatusOK, JSONRPCResponse{
		JSONRPC: "2.0",
		ID:      id,
		Result:  result,
	})
}

func (h *A2AHandler) sendErrorResponse(c *gin.Context, id any, message string, code int) {
	c.JSON(http.StatusOK, JSONRPCResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error:   &JSONRPCError{Code: code, Message: message},
	})
}
