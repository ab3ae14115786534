package mentor

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/BerylCAtieno/edupath-mentor/internal/config"
	"github.com/BerylCAtieno/edupath-mentor/internal/logger"
	"github.com/BerylCAtieno/edupath-mentor/internal/models"
)

type fakeGenerator struct {
	text   string
	err    error
	prompt string
	calls  int
}

func (f *fakeGenerator) GenerateText(_ context.Context, prompt string) (string, error) {
	f.calls++
	f.prompt = prompt
	return f.text, f.err
}

func TestGenerate_Success(t *testing.T) {
	gen := &fakeGenerator{text: "❓ Need more info\n📍 Summary X\n🎯 Paths"}
	svc := NewService(gen, nil)

	plan, err := svc.Generate(context.Background(), sampleProfile(), models.ModeCareer)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if gen.calls != 1 {
		t.Errorf("calls = %d, want 1", gen.calls)
	}
	if !strings.Contains(gen.prompt, "Career Mode") {
		t.Error("prompt was not built for the selected mode")
	}
	if plan.ClarifyingNote != "Need more info" || plan.ProfileSummary != "Summary X" || plan.CareerPaths != "Paths" {
		t.Errorf("unexpected plan: %+v", plan)
	}
	if plan.RawResponse != gen.text {
		t.Errorf("RawResponse = %q", plan.RawResponse)
	}
}

func TestGenerate_EmptyTextIsNotAnError(t *testing.T) {
	svc := NewService(&fakeGenerator{text: ""}, nil)

	plan, err := svc.Generate(context.Background(), sampleProfile(), models.ModeStudy)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if plan.ProfileSummary != models.SectionProfileSummary.Fallback() {
		t.Errorf("ProfileSummary = %q", plan.ProfileSummary)
	}
}

func TestGenerate_FailureIsNormalized(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	log := &logger.Logger{SugaredLogger: zap.New(core).Sugar()}

	providerErr := fmt.Errorf("googleapi: Error 403: API key not valid")
	svc := NewService(&fakeGenerator{err: providerErr}, log)

	plan, err := svc.Generate(context.Background(), sampleProfile(), models.ModeJob)
	if !errors.Is(err, ErrGenerationUnavailable) {
		t.Fatalf("err = %v, want ErrGenerationUnavailable", err)
	}
	if strings.Contains(err.Error(), "403") {
		t.Error("provider detail leaked into returned error")
	}
	if plan != (models.MentorshipPlan{}) {
		t.Errorf("expected zero plan on error, got %+v", plan)
	}

	entries := logs.FilterMessage("plan generation failed").All()
	if len(entries) != 1 {
		t.Fatalf("expected failure to be logged once, got %d", len(entries))
	}
	if got := fmt.Sprint(entries[0].ContextMap()["error"]); !strings.Contains(got, "403") {
		t.Errorf("logged error = %q, want provider detail", got)
	}
}

func TestMockClient(t *testing.T) {
	svc := NewService(NewMockClient(), nil)

	p := models.StudentProfile{Name: "Sam", TargetCareerExam: "GRE", ExperienceLevel: models.LevelBeginner}
	plan, err := svc.Generate(context.Background(), p, models.ModeStudy)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if plan.ClarifyingNote == "" {
		t.Error("mock should ask for blank fields")
	}
	if !strings.Contains(plan.ProfileSummary, "GRE") || !strings.Contains(plan.ProfileSummary, "Study Mode") {
		t.Errorf("ProfileSummary = %q", plan.ProfileSummary)
	}
	for _, k := range models.SectionKeys[1:] {
		if plan.Section(k) == k.Fallback() {
			t.Errorf("%s fell back", k)
		}
	}

	full, err := svc.Generate(context.Background(), sampleProfile(), models.ModeCareer)
	if err != nil {
		t.Fatal(err)
	}
	if full.ClarifyingNote != "" {
		t.Errorf("complete profile should not get a clarifying note, got %q", full.ClarifyingNote)
	}
}

func TestGeminiClient_MissingKey(t *testing.T) {
	c := NewGeminiClient(func() string { return "" }, "gemini-2.5-flash", DefaultSampling)
	if _, err := c.GenerateText(context.Background(), "hi"); err == nil {
		t.Fatal("expected error without api key")
	}
}

func TestResponseTextNil(t *testing.T) {
	if got := responseText(nil); got != "" {
		t.Errorf("responseText(nil) = %q", got)
	}
}

func TestVertexClient_GeminiAPIBackend(t *testing.T) {
	var gotPath, gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"candidates":[{"content":{"role":"model","parts":[{"text":"📍 Summary from genai"}]}}]}`)
	}))
	defer srv.Close()

	c := NewVertexClient(VertexConfig{
		APIKey:    func() string { return "test-key" },
		ModelName: "gemini-2.5-flash",
		Sampling:  DefaultSampling,
		BaseURL:   srv.URL,
	})

	text, err := c.GenerateText(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("GenerateText: %v", err)
	}
	if text != "📍 Summary from genai" {
		t.Errorf("text = %q", text)
	}
	if !strings.Contains(gotPath, "gemini-2.5-flash:generateContent") {
		t.Errorf("path = %q", gotPath)
	}
	if gotKey != "test-key" {
		t.Errorf("api key header = %q", gotKey)
	}
}

func TestNewTextGenerator(t *testing.T) {
	tests := []struct {
		backend config.Backend
		want    string
	}{
		{config.BackendGemini, "*mentor.GeminiClient"},
		{config.BackendVertex, "*mentor.VertexClient"},
		{config.BackendMock, "*mentor.MockClient"},
	}
	for _, tt := range tests {
		gen, err := NewTextGenerator(config.LLMConfig{Backend: tt.backend, Model: "m", Temperature: 0.7, TopP: 0.9})
		if err != nil {
			t.Fatalf("%s: %v", tt.backend, err)
		}
		if got := fmt.Sprintf("%T", gen); got != tt.want {
			t.Errorf("%s: got %s, want %s", tt.backend, got, tt.want)
		}
	}

	if _, err := NewTextGenerator(config.LLMConfig{Backend: "nope"}); err == nil {
		t.Error("expected error for unknown backend")
	}
}

type panickingTextGenerator struct{}

func (panickingTextGenerator) GenerateText(context.Context, string) (string, error) {
	panic("nil response from provider")
}

func TestGenerate_PanicIsNormalized(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	svc := NewService(panickingTextGenerator{}, &logger.Logger{SugaredLogger: zap.New(core).Sugar()})

	_, err := svc.Generate(context.Background(), models.StudentProfile{Name: "Ana"}, models.ModeJob)
	if !errors.Is(err, ErrGenerationUnavailable) {
		t.Fatalf("err = %v, want ErrGenerationUnavailable", err)
	}
	entries := logs.FilterMessage("plan generation failed").All()
	if len(entries) != 1 || !strings.Contains(fmt.Sprint(entries[0].ContextMap()["error"]), "panicked") {
		t.Errorf("expected one logged failure mentioning the panic, got %+v", entries)
	}
}
