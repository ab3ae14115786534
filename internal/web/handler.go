package web

import (
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BerylCAtieno/edupath-mentor/internal/app"
	"github.com/BerylCAtieno/edupath-mentor/internal/logger"
	"github.com/BerylCAtieno/edupath-mentor/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

const SessionCookie = "edupath_session"

// Templates parses the embedded page templates.
func Templates() *template.Template {
	return template.Must(template.New("").ParseFS(templateFS, "templates/*.html"))
}

type Handler struct {
	sessions *app.Sessions
	log      *logger.Logger
	// secureCookie marks the session cookie Secure; on in prod mode.
	secureCookie bool
	cookieMaxAge int
}

func NewHandler(sessions *app.Sessions, log *logger.Logger, secureCookie bool, sessionTTL time.Duration) *Handler {
	if log == nil {
		log = logger.NewNop()
	}
	return &Handler{
		sessions:     sessions,
		log:          log,
		secureCookie: secureCookie,
		cookieMaxAge: int(sessionTTL.Seconds()),
	}
}

// Register mounts the browser routes. The engine must have Templates()
// installed.
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/", h.Index)
	r.POST("/generate", h.Generate)
	r.POST("/reset", h.Reset)
	r.POST("/demo", h.Demo)
	r.GET("/plan.txt", h.PlanText)
}

type modeOption struct {
	Mode  models.Mode
	Label string
	Icon  string
	Blurb string
}

type sectionView struct {
	Key    models.SectionKey
	Marker string
	Title  string
	Lines  []Line
}

type pageData struct {
	Snapshot   app.Snapshot
	CanSubmit  bool
	Loading    bool
	Error      string
	Missing    []string
	Modes      []modeOption
	Levels     []models.ExperienceLevel
	TimeSlots  []string
	ModeLabel  string
	Clarifying string
	Sections   []sectionView
}

var timeSlots = []string{"1-2 Hours", "3-5 Hours", "5+ Hours"}

// session returns the caller's Orchestrator, starting a session when there
// is none. Only state-changing routes call it.
func (h *Handler) session(c *gin.Context) *app.Orchestrator {
	cookie, _ := c.Cookie(SessionCookie)
	id, orch := h.sessions.Get(cookie)
	if id != cookie {
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(SessionCookie, id, h.cookieMaxAge, "/", "", h.secureCookie, true)
	}
	return orch
}

// existing returns the caller's Orchestrator if a live session exists.
func (h *Handler) existing(c *gin.Context) (*app.Orchestrator, bool) {
	cookie, err := c.Cookie(SessionCookie)
	if err != nil {
		return nil, false
	}
	return h.sessions.Lookup(cookie)
}

// snapshot is the caller's state, or a fresh Idle one when there is no
// session yet.
func (h *Handler) snapshot(c *gin.Context) app.Snapshot {
	if orch, ok := h.existing(c); ok {
		return orch.Snapshot()
	}
	return app.Snapshot{Status: app.StatusIdle}
}

func (h *Handler) Index(c *gin.Context) {
	h.render(c, http.StatusOK, h.snapshot(c), nil)
}

func (h *Handler) Generate(c *gin.Context) {
	orch := h.session(c)

	var profile models.StudentProfile
	if err := c.ShouldBind(&profile); err != nil {
		h.log.Warn("binding profile form", "error", err)
		c.String(http.StatusBadRequest, "invalid form submission")
		return
	}
	profile = trimProfile(profile)
	orch.SetProfile(profile)

	mode, err := models.ParseMode(c.PostForm("mode"))
	if err != nil {
		snap := orch.Snapshot()
		snap.Error = "Choose one of the blueprint modes."
		h.render(c, http.StatusBadRequest, snap, nil)
		return
	}

	err = orch.Submit(c.Request.Context(), mode)
	switch {
	case errors.Is(err, app.ErrProfileIncomplete):
		h.render(c, http.StatusUnprocessableEntity, orch.Snapshot(), profile.MissingFields())
		return
	case errors.Is(err, app.ErrBusy), errors.Is(err, app.ErrInvalidTransition):
		h.log.Debug("submission ignored", "reason", err)
	case err != nil:
		h.log.Warn("generation ended in error state", "mode", mode)
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) Reset(c *gin.Context) {
	if orch, ok := h.existing(c); ok {
		if err := orch.Reset(); err != nil {
			h.log.Debug("reset ignored", "reason", err)
		}
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// Demo fills the form with a sample profile.
func (h *Handler) Demo(c *gin.Context) {
	orch := h.session(c)
	orch.SetProfile(DemoProfile())
	c.Redirect(http.StatusSeeOther, "/")
}

// PlanText serves the raw model response for copying or saving.
func (h *Handler) PlanText(c *gin.Context) {
	snap := h.snapshot(c)
	if snap.Plan == nil {
		c.String(http.StatusNotFound, "no plan generated yet")
		return
	}
	c.Header("Content-Disposition", `inline; filename="edupath-plan.txt"`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(snap.Plan.RawResponse))
}

func (h *Handler) render(c *gin.Context, status int, snap app.Snapshot, missing []string) {
	data := pageData{
		Snapshot:  snap,
		CanSubmit: snap.CanSubmit(),
		Loading:   snap.Status == app.StatusLoading,
		Error:     snap.Error,
		Missing:   missing,
		Levels:    models.ExperienceLevels,
		TimeSlots: timeSlots,
	}
	for _, m := range models.Modes {
		data.Modes = append(data.Modes, modeOption{Mode: m, Label: m.Label(), Icon: m.Icon(), Blurb: m.Blurb()})
	}

	if snap.Status == app.StatusSuccess && snap.Plan != nil {
		data.ModeLabel = snap.ActiveMode.Label()
		data.Clarifying = snap.Plan.ClarifyingNote
		data.Sections = planSections(*snap.Plan)
		c.HTML(status, "plan.html", data)
		return
	}
	c.HTML(status, "form.html", data)
}

func planSections(plan models.MentorshipPlan) []sectionView {
	views := make([]sectionView, 0, len(models.SectionKeys))
	for _, k := range models.SectionKeys {
		if k == models.SectionClarifyingNote {
			continue
		}
		content := plan.Section(k)
		if strings.TrimSpace(content) == "" {
			continue
		}
		views = append(views, sectionView{
			Key:    k,
			Marker: k.Marker(),
			Title:  k.Title(),
			Lines:  FormatSection(content),
		})
	}
	return views
}

func trimProfile(p models.StudentProfile) models.StudentProfile {
	p.Name = strings.TrimSpace(p.Name)
	p.TargetCareerExam = strings.TrimSpace(p.TargetCareerExam)
	p.ExperienceLevel = models.ExperienceLevel(strings.TrimSpace(string(p.ExperienceLevel)))
	return p
}

// DemoProfile is the sample profile behind the auto-fill button.
func DemoProfile() models.StudentProfile {
	return models.StudentProfile{
		Name:               "Alex Rivera",
		EducationLevel:     "2nd Year Undergraduate",
		ExperienceLevel:    models.LevelBeginner,
		Stream:             "Computer Science",
		CurrentSkills:      "Python, basic blockchain",
		Interests:          "AI, Web3, startups",
		Strengths:          "Logical thinking, consistency",
		Weaknesses:         "Communication, time management",
		Goals:              "High paying tech job",
		DailyAvailableTime: "3-5 Hours",
		TargetCareerExam:   "AI Engineer / Product-based company",
	}
}
