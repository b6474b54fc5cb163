package drafts

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"resumeforge-backend/internal/shared/server/respond"
)

// Handler wires the draft CRUD endpoints to the service. Every response
// carries a success flag; the only non-200 statuses are 404 for missing
// drafts and 500 for storage failures.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the draft routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/save-cv", h.save)
	rg.GET("/load-cv/:id", h.load)
	rg.GET("/list-cvs", h.list)
	rg.PUT("/update-cv/:id", h.update)
	rg.DELETE("/delete-cv/:id", h.remove)
}

type saveRequest struct {
	Title    string          `json:"title"`
	Data     json.RawMessage `json:"data"`
	Template string          `json:"template"`
}

func (h *Handler) save(c *gin.Context) {
	var req saveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	id, err := h.Svc.Save(c.Request.Context(), req.Title, req.Data, req.Template)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.OK(c, gin.H{"success": false, "message": err.Error()})
			return
		}
		respond.JSON(c, http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to save CV"})
		return
	}

	c.Set("draftId", id)
	respond.OK(c, gin.H{"success": true, "id": id, "message": "CV saved successfully"})
}

func (h *Handler) load(c *gin.Context) {
	id, ok := draftID(c)
	if !ok {
		return
	}

	draft, err := h.Svc.Load(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.JSON(c, http.StatusNotFound, gin.H{"success": false, "message": "CV not found"})
			return
		}
		respond.JSON(c, http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to load CV"})
		return
	}

	c.Set("draftId", id)
	respond.OK(c, gin.H{"success": true, "cv": toResponse(draft)})
}

func (h *Handler) list(c *gin.Context) {
	summaries, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.JSON(c, http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to list CVs"})
		return
	}

	out := make([]SummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, toSummaryResponse(s))
	}
	respond.OK(c, gin.H{"success": true, "cvs": out})
}

func (h *Handler) update(c *gin.Context) {
	id, ok := draftID(c)
	if !ok {
		return
	}

	var req saveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	err := h.Svc.Update(c.Request.Context(), id, req.Title, req.Data, req.Template)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.JSON(c, http.StatusNotFound, gin.H{"success": false, "message": "CV not found"})
		case errors.Is(err, ErrInvalidInput):
			respond.OK(c, gin.H{"success": false, "message": err.Error()})
		default:
			respond.JSON(c, http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update CV"})
		}
		return
	}

	c.Set("draftId", id)
	respond.OK(c, gin.H{"success": true, "message": "CV updated successfully"})
}

func (h *Handler) remove(c *gin.Context) {
	id, ok := draftID(c)
	if !ok {
		return
	}

	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		respond.JSON(c, http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete CV"})
		return
	}

	c.Set("draftId", id)
	respond.OK(c, gin.H{"success": true, "message": "CV deleted successfully"})
}

// draftID parses the :id path parameter. A non-numeric id is answered like a
// missing draft.
func draftID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respond.JSON(c, http.StatusNotFound, gin.H{"success": false, "message": "CV not found"})
		return 0, false
	}
	return id, true
}
