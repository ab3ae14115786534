package models

import (
	"fmt"
	"strings"
)

// Mode selects the focus of a generated plan. It only changes the prompt
// framing, never the shape of the profile or plan.
type Mode string

const (
	ModeCareer  Mode = "career"
	ModeStudy   Mode = "study"
	ModeSkill   Mode = "skill"
	ModeJob     Mode = "job"
	ModeProject Mode = "project"
)

// Modes lists every mode in display order.
var Modes = []Mode{ModeCareer, ModeStudy, ModeSkill, ModeJob, ModeProject}

type modeInfo struct {
	label  string
	icon   string
	blurb  string
	intent string
}

var modeTable = map[Mode]modeInfo{
	ModeCareer: {
		label:  "Career Mode",
		icon:   "🎯",
		blurb:  "Long-term strategy & growth.",
		intent: "Focus on long-term career growth, industry trends, and strategic positioning.",
	},
	ModeStudy: {
		label:  "Study Mode",
		icon:   "📚",
		blurb:  "Schedules & resources.",
		intent: "Focus on day-to-day study schedules, academic resources, and exam preparation.",
	},
	ModeSkill: {
		label:  "Skill Mode",
		icon:   "🚀",
		blurb:  "Technical & soft skills.",
		intent: "Focus on technical proficiency, specific toolsets, and mastery roadmaps.",
	},
	ModeJob: {
		label:  "Job Mode",
		icon:   "💼",
		blurb:  "Resumes & interview prep.",
		intent: "Focus on interview prep, resumes, networking, and immediate job market entry.",
	},
	ModeProject: {
		label:  "Project Mode",
		icon:   "🧪",
		blurb:  "Hands-on portfolio building.",
		intent: "Focus on hands-on building, portfolio development, and real-world application.",
	},
}

func (m Mode) Valid() bool {
	_, ok := modeTable[m]
	return ok
}

// Label is the human-readable name, e.g. "Career Mode".
func (m Mode) Label() string {
	if info, ok := modeTable[m]; ok {
		return info.label
	}
	return string(m)
}

func (m Mode) Icon() string { return modeTable[m].icon }

func (m Mode) Blurb() string { return modeTable[m].blurb }

// Intent is the one-sentence focus description injected into the prompt.
func (m Mode) Intent() string { return modeTable[m].intent }

// ParseMode accepts either the short key ("career") or the label
// ("Career Mode"), ignoring case and surrounding spaces.
func ParseMode(s string) (Mode, error) {
	s = strings.TrimSpace(s)
	for _, m := range Modes {
		if strings.EqualFold(s, string(m)) || strings.EqualFold(s, m.Label()) {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown mode %q", s)
}
