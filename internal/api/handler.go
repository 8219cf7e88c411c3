// Package api exposes the extraction pipeline over HTTP.
package api

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/oladipuporancho/bank-statement-json/internal/extractor"
	"github.com/oladipuporancho/bank-statement-json/internal/models"
	"github.com/oladipuporancho/bank-statement-json/internal/parser"
)

// Version is reported by the health endpoint.
const Version = "1.0.0"

// UploadResponse is the JSON envelope for the upload endpoint.
type UploadResponse struct {
	Success bool           `json:"success"`
	Data    *models.Result `json:"data,omitempty"`
	Error   string         `json:"error,omitempty"`
}

// Handler holds the HTTP handlers for the API.
type Handler struct {
	UploadDir string
	Log       zerolog.Logger
	Extractor *parser.Extractor
}

// RegisterRoutes sets up the API routes on the fiber app.
func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Get("/api/health", h.HandleHealth)
	app.Post("/api/pdf/upload", h.HandleUpload)
}

// HandleHealth reports service liveness.
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"version": Version,
	})
}

// HandleUpload accepts a bank-statement PDF as multipart field "pdf",
// stores it under the upload directory, converts it to text and runs the
// extraction pipeline. A pre-extracted "text" form value bypasses PDF
// decoding. Extraction failure maps to a 5xx response.
func (h *Handler) HandleUpload(c *fiber.Ctx) error {
	text := c.FormValue("text")

	if text == "" {
		file, err := c.FormFile("pdf")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "No file uploaded. Use form field 'pdf'.")
		}
		if !strings.HasSuffix(strings.ToLower(file.Filename), ".pdf") {
			return writeError(c, fiber.StatusBadRequest, "Only PDF files are supported.")
		}

		if err := os.MkdirAll(h.UploadDir, 0o755); err != nil {
			return writeError(c, fiber.StatusInternalServerError, "Failed to prepare upload directory.")
		}

		storedPath := filepath.Join(h.UploadDir, uuid.NewString()+"-"+filepath.Base(file.Filename))
		if err := c.SaveFile(file, storedPath); err != nil {
			return writeError(c, fiber.StatusInternalServerError, "Failed to save uploaded file.")
		}

		h.Log.Info().Str("file", storedPath).Msg("stored upload")

		text, err = extractor.ReadText(storedPath)
		if err != nil {
			return writeError(c, fiber.StatusUnprocessableEntity, fmt.Sprintf("PDF extraction failed: %v", err))
		}
	}

	result := h.Extractor.Extract(text)
	if result.Error {
		return writeError(c, fiber.StatusInternalServerError, result.Message)
	}

	return c.JSON(UploadResponse{
		Success: true,
		Data:    result,
	})
}

func writeError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(UploadResponse{
		Success: false,
		Error:   msg,
	})
}
