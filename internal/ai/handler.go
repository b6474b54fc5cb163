package ai

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resumeforge-backend/internal/shared/server/respond"
	"resumeforge-backend/internal/shared/telemetry"
)

// Handler exposes the AI-assist endpoints. Provider failures are never
// surfaced as HTTP errors: the user's own text (or an empty result) comes
// back with a human-readable message instead.
type Handler struct {
	Client Completer
	Info   Status
}

// NewHandler constructs a Handler bound to the active provider.
func NewHandler(client *Client) *Handler {
	return &Handler{Client: client, Info: client.Status()}
}

// RegisterRoutes attaches the AI routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/improve-summary", h.improveSummary)
	rg.POST("/improve-bullet", h.improveBullet)
	rg.POST("/suggest-skills", h.suggestSkills)
	rg.GET("/ai-status", h.status)
}

type improveSummaryRequest struct {
	Summary   string `json:"summary"`
	TargetJob string `json:"targetJob"`
}

func (h *Handler) improveSummary(c *gin.Context) {
	var req improveSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	summary := strings.TrimSpace(req.Summary)
	targetJob := strings.TrimSpace(req.TargetJob)
	if summary == "" && targetJob == "" {
		respond.OK(c, gin.H{"improved": summary, "error": "No summary provided"})
		return
	}

	c.Set("aiProvider", h.Info.Provider)
	improved, err := h.Client.Complete(c.Request.Context(), SummaryPrompt(summary, targetJob))
	if err != nil {
		h.logFailure(c, "improve-summary", err)
		respond.OK(c, gin.H{"improved": summary, "error": h.Info.Provider + " unavailable"})
		return
	}

	respond.OK(c, gin.H{"improved": strings.TrimSpace(improved), "provider": h.Info.Provider})
}

type improveBulletRequest struct {
	Bullet   string `json:"bullet"`
	JobTitle string `json:"jobTitle"`
	Company  string `json:"company"`
}

func (h *Handler) improveBullet(c *gin.Context) {
	var req improveBulletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	bullet := strings.TrimSpace(req.Bullet)
	jobTitle := strings.TrimSpace(req.JobTitle)
	company := strings.TrimSpace(req.Company)
	if bullet == "" && jobTitle == "" && company == "" {
		respond.OK(c, gin.H{"improved": bullet, "error": "No text provided"})
		return
	}

	c.Set("aiProvider", h.Info.Provider)
	improved, err := h.Client.Complete(c.Request.Context(), BulletPrompt(bullet, jobTitle, company))
	if err != nil {
		h.logFailure(c, "improve-bullet", err)
		respond.OK(c, gin.H{"improved": bullet, "error": h.Info.Provider + " unavailable"})
		return
	}

	respond.OK(c, gin.H{"improved": strings.TrimSpace(improved), "provider": h.Info.Provider})
}

type suggestSkillsRequest struct {
	JobTitle   string   `json:"jobTitle"`
	Summary    string   `json:"summary"`
	Experience []string `json:"experience"`
}

func (h *Handler) suggestSkills(c *gin.Context) {
	var req suggestSkillsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	if strings.TrimSpace(req.JobTitle) == "" {
		empty := EmptySuggestions()
		respond.OK(c, gin.H{
			"technical": empty.Technical,
			"soft":      empty.Soft,
			"languages": empty.Languages,
			"error":     "Add a job title first so suggestions can match the role",
		})
		return
	}

	c.Set("aiProvider", h.Info.Provider)
	raw, err := h.Client.Complete(c.Request.Context(), SkillsPrompt(req.JobTitle, req.Summary, req.Experience))
	if err != nil {
		h.logFailure(c, "suggest-skills", err)
		empty := EmptySuggestions()
		respond.OK(c, gin.H{
			"technical": empty.Technical,
			"soft":      empty.Soft,
			"languages": empty.Languages,
			"error":     h.Info.Provider + " unavailable",
		})
		return
	}

	suggestions := NormalizeSkills(raw)
	respond.OK(c, gin.H{
		"technical": suggestions.Technical,
		"soft":      suggestions.Soft,
		"languages": suggestions.Languages,
		"provider":  h.Info.Provider,
	})
}

func (h *Handler) status(c *gin.Context) {
	respond.OK(c, h.Info)
}

func (h *Handler) logFailure(c *gin.Context, op string, err error) {
	telemetry.Error("ai.provider_failure", map[string]any{
		"op":       op,
		"provider": h.Info.Provider,
		"error":    err.Error(),
		"path":     c.Request.URL.Path,
	})
}
