package models

// SectionKey names one section of a mentorship plan.
type SectionKey string

const (
	SectionClarifyingNote SectionKey = "clarifying_note"
	SectionProfileSummary SectionKey = "profile_summary"
	SectionCareerPaths    SectionKey = "career_paths"
	SectionSkillRoadmap   SectionKey = "skill_roadmap"
	SectionStudyPlan      SectionKey = "study_plan"
	SectionProjectIdeas   SectionKey = "project_ideas"
	SectionCareerPrep     SectionKey = "career_prep"
	SectionGrowthStrategy SectionKey = "growth_strategy"
)

// SectionKeys is the fixed order in which sections are requested from the
// model and rendered.
var SectionKeys = []SectionKey{
	SectionClarifyingNote,
	SectionProfileSummary,
	SectionCareerPaths,
	SectionSkillRoadmap,
	SectionStudyPlan,
	SectionProjectIdeas,
	SectionCareerPrep,
	SectionGrowthStrategy,
}

type sectionInfo struct {
	marker   string
	heading  string
	title    string
	fallback string
}

// heading is what the model is asked to print after the marker; title is
// what the display uses.
var sectionTable = map[SectionKey]sectionInfo{
	SectionClarifyingNote: {marker: "❓", heading: "Clarifying Note", title: "Clarifying Note", fallback: ""},
	SectionProfileSummary: {marker: "📍", heading: "Profile Summary", title: "Profile Analysis", fallback: "Summary unavailable."},
	SectionCareerPaths:    {marker: "🎯", heading: "Career Paths", title: "Career Paths", fallback: "Career paths unavailable."},
	SectionSkillRoadmap:   {marker: "🧠", heading: "Skill Roadmap", title: "Skill Roadmap", fallback: "Skill roadmap unavailable."},
	SectionStudyPlan:      {marker: "📚", heading: "Study Plan", title: "Study Plan", fallback: "Study plan unavailable."},
	SectionProjectIdeas:   {marker: "🚀", heading: "Project Ideas", title: "Project Ideas", fallback: "Project ideas unavailable."},
	SectionCareerPrep:     {marker: "💼", heading: "Career Preparation", title: "Career Preparation", fallback: "Career prep unavailable."},
	SectionGrowthStrategy: {marker: "📈", heading: "Growth Strategy", title: "Growth Strategy", fallback: "Growth strategy unavailable."},
}

// Marker is the emoji glyph that introduces the section in model output.
func (k SectionKey) Marker() string { return sectionTable[k].marker }

func (k SectionKey) Heading() string { return sectionTable[k].heading }

func (k SectionKey) Title() string { return sectionTable[k].title }

// Fallback is used when the section is missing from the response. It is
// empty only for the clarifying note.
func (k SectionKey) Fallback() string { return sectionTable[k].fallback }

// MentorshipPlan is the parsed result of one generation. Every field other
// than ClarifyingNote is always non-empty.
type MentorshipPlan struct {
	ClarifyingNote string `json:"clarifyingNote,omitempty"`
	ProfileSummary string `json:"profileSummary"`
	CareerPaths    string `json:"careerPaths"`
	SkillRoadmap   string `json:"skillRoadmap"`
	StudyPlan      string `json:"studyPlan"`
	ProjectIdeas   string `json:"projectIdeas"`
	CareerPrep     string `json:"careerPrep"`
	GrowthStrategy string `json:"growthStrategy"`
	RawResponse    string `json:"rawResponse"`
}

// Section returns the body stored for key.
func (p MentorshipPlan) Section(key SectionKey) string {
	switch key {
	case SectionClarifyingNote:
		return p.ClarifyingNote
	case SectionProfileSummary:
		return p.ProfileSummary
	case SectionCareerPaths:
		return p.CareerPaths
	case SectionSkillRoadmap:
		return p.SkillRoadmap
	case SectionStudyPlan:
		return p.StudyPlan
	case SectionProjectIdeas:
		return p.ProjectIdeas
	case SectionCareerPrep:
		return p.CareerPrep
	case SectionGrowthStrategy:
		return p.GrowthStrategy
	}
	return ""
}

// SetSection stores body under key.
func (p *MentorshipPlan) SetSection(key SectionKey, body string) {
	switch key {
	case SectionClarifyingNote:
		p.ClarifyingNote = body
	case SectionProfileSummary:
		p.ProfileSummary = body
	case SectionCareerPaths:
		p.CareerPaths = body
	case SectionSkillRoadmap:
		p.SkillRoadmap = body
	case SectionStudyPlan:
		p.StudyPlan = body
	case SectionProjectIdeas:
		p.ProjectIdeas = body
	case SectionCareerPrep:
		p.CareerPrep = body
	case SectionGrowthStrategy:
		p.GrowthStrategy = body
	}
}
