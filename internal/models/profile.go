package models

import (
	"github.com/go-playground/validator/v10"
)

type ExperienceLevel string

const (
	LevelUnset        ExperienceLevel = ""
	LevelBeginner     ExperienceLevel = "Beginner"
	LevelIntermediate ExperienceLevel = "Intermediate"
	LevelAdvanced     ExperienceLevel = "Advanced"
)

// ExperienceLevels lists the selectable levels in display order.
var ExperienceLevels = []ExperienceLevel{LevelBeginner, LevelIntermediate, LevelAdvanced}

// StudentProfile is the self-reported input for a mentorship plan. It is
// replaced wholesale on every edit; no field is required at this level.
type StudentProfile struct {
	Name               string          `json:"name" form:"name" validate:"required"`
	EducationLevel     string          `json:"educationLevel" form:"educationLevel"`
	Stream             string          `json:"stream" form:"stream"`
	CurrentSkills      string          `json:"currentSkills" form:"currentSkills"`
	Interests          string          `json:"interests" form:"interests"`
	Strengths          string          `json:"strengths" form:"strengths"`
	Weaknesses         string          `json:"weaknesses" form:"weaknesses"`
	Goals              string          `json:"goals" form:"goals"`
	DailyAvailableTime string          `json:"dailyAvailableTime" form:"dailyAvailableTime"`
	TargetCareerExam   string          `json:"targetCareerExam" form:"targetCareerExam" validate:"required"`
	ExperienceLevel    ExperienceLevel `json:"experienceLevel" form:"experienceLevel" validate:"required,oneof=Beginner Intermediate Advanced"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Ready reports whether the fields needed before submission are filled in:
// name, target career or exam, and a known experience level.
func (p StudentProfile) Ready() bool {
	return validate.Struct(p) == nil
}

// MissingFields returns the names of required fields that fail validation,
// in declaration order.
func (p StudentProfile) MissingFields() []string {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return fields
}
