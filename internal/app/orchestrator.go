package app

import (
	"context"
	"errors"
	"sync"

	"github.com/BerylCAtieno/edupath-mentor/internal/logger"
	"github.com/BerylCAtieno/edupath-mentor/internal/mentor"
	"github.com/BerylCAtieno/edupath-mentor/internal/models"
)

var (
	ErrProfileIncomplete = errors.New("profile is incomplete")
	ErrBusy              = errors.New("a plan is already being generated")
	ErrInvalidTransition = errors.New("reset the current plan before generating another")
)

// Status is the UI state of one Orchestrator.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	}
	return "unknown"
}

// Generator produces a plan for a profile and mode. mentor.Service
// implements it.
type Generator interface {
	Generate(ctx context.Context, profile models.StudentProfile, mode models.Mode) (models.MentorshipPlan, error)
}

// Snapshot is a point-in-time copy of an Orchestrator's state.
type Snapshot struct {
	Status     Status
	Profile    models.StudentProfile
	Plan       *models.MentorshipPlan
	Error      string
	ActiveMode models.Mode
}

// CanSubmit mirrors Orchestrator.CanSubmit for an already taken snapshot.
// Only Idle and Error accept a submission.
func (s Snapshot) CanSubmit() bool {
	return (s.Status == StatusIdle || s.Status == StatusError) && s.Profile.Ready()
}

// Orchestrator owns the profile and drives Idle -> Loading -> Success|Error.
type Orchestrator struct {
	gen Generator
	log *logger.Logger

	mu         sync.Mutex
	status     Status
	profile    models.StudentProfile
	plan       *models.MentorshipPlan
	errMsg     string
	activeMode models.Mode
}

func NewOrchestrator(gen Generator, log *logger.Logger) *Orchestrator {
	if log == nil {
		log = logger.NewNop()
	}
	return &Orchestrator{gen: gen, log: log}
}

// SetProfile replaces the profile. An in-flight submission keeps the
// profile it captured.
func (o *Orchestrator) SetProfile(p models.StudentProfile) {
	o.mu.Lock()
	o.profile = p
	o.mu.Unlock()
}

func (o *Orchestrator) CanSubmit() bool {
	return o.Snapshot().CanSubmit()
}

// Submit generates a plan for mode. Blocked submissions return an error
// and never reach the Generator.
func (o *Orchestrator) Submit(ctx context.Context, mode models.Mode) error {
	o.mu.Lock()
	switch {
	case o.status == StatusLoading:
		o.mu.Unlock()
		return ErrBusy
	case o.status == StatusSuccess:
		o.mu.Unlock()
		return ErrInvalidTransition
	case !o.profile.Ready():
		o.mu.Unlock()
		return ErrProfileIncomplete
	}
	profile := o.profile
	o.status = StatusLoading
	o.errMsg = ""
	o.plan = nil
	o.activeMode = mode
	o.mu.Unlock()

	o.log.Debug("submitting profile", "mode", mode)
	plan, err := o.generate(ctx, profile, mode)

	o.mu.Lock()
	defer o.mu.Unlock()
	if err != nil {
		o.status = StatusError
		o.errMsg = err.Error()
		o.plan = nil
		return err
	}
	o.status = StatusSuccess
	o.plan = &plan
	return nil
}

// generate calls the Generator, turning a panic into the generic failure
// so the state always leaves Loading.
func (o *Orchestrator) generate(ctx context.Context, profile models.StudentProfile, mode models.Mode) (plan models.MentorshipPlan, err error) {
	defer func() {
		if r := recover(); r != nil {
			o.log.Error("plan generation panicked", "mode", mode, "panic", r)
			plan, err = models.MentorshipPlan{}, mentor.ErrGenerationUnavailable
		}
	}()
	return o.gen.Generate(ctx, profile, mode)
}

// Reset returns to the form. The profile is kept.
func (o *Orchestrator) Reset() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	switch o.status {
	case StatusLoading:
		return ErrBusy
	case StatusIdle:
		return nil
	}
	o.status = StatusIdle
	o.plan = nil
	o.errMsg = ""
	o.activeMode = ""
	return nil
}

func (o *Orchestrator) Snapshot() Snapshot {
	o.mu.Lock()
	defer o.mu.Unlock()

	s := Snapshot{
		Status:     o.status,
		Profile:    o.profile,
		Error:      o.errMsg,
		ActiveMode: o.activeMode,
	}
	if o.plan != nil {
		p := *o.plan
		s.Plan = &p
	}
	return s
}
