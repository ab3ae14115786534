package mentor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/BerylCAtieno/edupath-mentor/internal/logger"
	"github.com/BerylCAtieno/edupath-mentor/internal/models"
)

// ErrGenerationUnavailable is the only error callers see from Generate.
// Provider detail is logged, never returned.
var ErrGenerationUnavailable = errors.New("EduPath AI is temporarily resting. Please try again in a moment.")

// TextGenerator sends one prompt to a hosted model and returns its text.
// A response without text is returned as "", not as an error.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Sampling holds the fixed sampling parameters sent with every request.
type Sampling struct {
	Temperature float32
	TopP        float32
}

// DefaultSampling is temperature 0.7, top-p 0.9.
var DefaultSampling = Sampling{Temperature: 0.7, TopP: 0.9}

// Service runs prompt building, the remote call and plan parsing.
type Service struct {
	gen TextGenerator
	log *logger.Logger
}

func NewService(gen TextGenerator, log *logger.Logger) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{gen: gen, log: log}
}

var tracer = otel.Tracer("github.com/BerylCAtieno/edupath-mentor/internal/mentor")

// Generate makes a single best-effort call for profile and mode. There are
// no retries and no timeout beyond what ctx carries.
func (s *Service) Generate(ctx context.Context, profile models.StudentProfile, mode models.Mode) (models.MentorshipPlan, error) {
	ctx, span := tracer.Start(ctx, "mentor.generate")
	defer span.End()
	span.SetAttributes(attribute.String("edupath.mode", string(mode)))

	prompt := BuildPrompt(profile, mode)

	start := time.Now()
	text, err := s.generateText(ctx, prompt)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "generation failed")
		s.log.Error("plan generation failed",
			"mode", mode,
			"duration_ms", time.Since(start).Milliseconds(),
			"error", err,
		)
		return models.MentorshipPlan{}, ErrGenerationUnavailable
	}

	plan := ParsePlan(text)
	span.SetAttributes(
		attribute.Int("edupath.response_bytes", len(text)),
		attribute.Bool("edupath.clarifying_note", plan.ClarifyingNote != ""),
	)
	s.log.Info("plan generated",
		"mode", mode,
		"duration_ms", time.Since(start).Milliseconds(),
		"response_bytes", len(text),
	)
	return plan, nil
}

func (s *Service) generateText(ctx context.Context, prompt string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("text generator panicked: %v", r)
		}
	}()
	return s.gen.GenerateText(ctx, prompt)
}
