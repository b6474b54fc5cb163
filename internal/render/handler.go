package render

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resumeforge-backend/internal/shared/server/respond"
)

// Handler serves the document generation endpoint.
type Handler struct{}

// NewHandler constructs a Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes attaches the generation route.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/generate", h.generate)
}

// generate accepts the form-encoded builder submission and responds with the
// printable HTML document, not JSON.
func (h *Handler) generate(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid form data", nil)
		return
	}

	doc := FromForm(c.Request.PostForm)
	html, err := Render(doc, doc.Template)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to render document", nil)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
