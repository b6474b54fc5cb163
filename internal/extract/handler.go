package extract

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"resumeforge-backend/internal/shared/server/respond"
)

const maxImportSize = 10 << 20 // 10MB

// Handler serves the résumé import endpoint, used to prefill the builder
// form from an existing PDF or DOCX file.
type Handler struct{}

// NewHandler constructs a Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes attaches the import route.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/import-cv", h.importCV)
}

func (h *Handler) importCV(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxImportSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}

	text, err := FromBytes(data, fileHeader.Header.Get("Content-Type"), fileHeader.Filename)
	if err != nil {
		if errors.Is(err, ErrUnsupported) {
			respond.Error(c, http.StatusBadRequest, "validation_error", "only PDF and DOCX files are supported", nil)
			return
		}
		respond.Error(c, http.StatusBadRequest, "validation_error", "could not extract text from the file", nil)
		return
	}

	respond.OK(c, gin.H{"success": true, "text": text})
}
