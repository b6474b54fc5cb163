package pages

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"resumeforge-backend/internal/render"
	"resumeforge-backend/internal/shared/server/respond"
)

//go:embed templates/*.html
var pageFiles embed.FS

var pageTemplates = template.Must(template.ParseFS(pageFiles, "templates/*.html"))

// Handler serves the static site pages.
type Handler struct{}

// NewHandler constructs a Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes attaches the page routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/", h.home)
	rg.GET("/create", h.create)
	rg.GET("/templates", h.templates)
}

func (h *Handler) home(c *gin.Context) {
	h.renderPage(c, "index.html", nil)
}

func (h *Handler) create(c *gin.Context) {
	selected := c.DefaultQuery("template", render.DefaultTemplate)
	if !render.Known(selected) {
		selected = render.DefaultTemplate
	}
	h.renderPage(c, "create.html", gin.H{"SelectedTemplate": selected})
}

func (h *Handler) templates(c *gin.Context) {
	h.renderPage(c, "templates.html", nil)
}

func (h *Handler) renderPage(c *gin.Context, name string, data any) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := pageTemplates.ExecuteTemplate(c.Writer, name, data); err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to render page", nil)
	}
}
