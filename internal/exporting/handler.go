// Package exporting serves the rendered views of the resume: the live
// preview fragment, the print document, PDF output, and the JSON
// export/import pair.
package exporting

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-studio/internal/shared/server/respond"
	"resume-studio/internal/store"
	"resume-studio/internal/transfer"
	"resume-studio/resume/editor"
	"resume-studio/resume/render"
)

// maxImportBytes bounds the uploaded document size.
const maxImportBytes = 2 << 20

// PDFRenderer turns a print document into PDF bytes.
type PDFRenderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

// Handler exposes the rendering and transfer endpoints.
type Handler struct {
	Session  *editor.Session
	Saver    *store.Saver
	Renderer PDFRenderer
}

// NewHandler constructs a Handler.
func NewHandler(session *editor.Session, saver *store.Saver, renderer PDFRenderer) *Handler {
	return &Handler{Session: session, Saver: saver, Renderer: renderer}
}

// RegisterRoutes attaches the export routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/preview", h.preview)
	rg.GET("/export/json", h.exportJSON)
	rg.POST("/import", h.importJSON)
	rg.GET("/export/print", h.exportPrint)
	rg.GET("/export/pdf", h.exportPDF)
	rg.GET("/save-status", h.saveStatus)
}

func (h *Handler) preview(c *gin.Context) {
	data, theme := h.Session.Snapshot()
	var buf bytes.Buffer
	if err := render.WriteFragment(&buf, render.Build(data), theme); err != nil {
		respond.Error(c, http.StatusInternalServerError, "render_failed", "could not render preview", nil)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func (h *Handler) exportJSON(c *gin.Context) {
	out, err := transfer.Export(h.Session.Data())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "export_failed", "could not serialize resume", nil)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+transfer.ExportFileName+`"`)
	c.Data(http.StatusOK, "application/json", out)
}

// importJSON replaces the working resume wholesale. The previous state is
// gone once this returns success, so validation happens before any mutation.
func (h *Handler) importJSON(c *gin.Context) {
	raw, err := readImportBody(c)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "could not read import payload", nil)
		return
	}

	data, err := transfer.Import(raw)
	if err != nil {
		if errors.Is(err, transfer.ErrInvalidImport) {
			respond.Error(c, http.StatusBadRequest, "invalid_import", err.Error(), nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "import_failed", "could not import resume", nil)
		return
	}

	h.Session.ReplaceData(data)
	respond.OK(c, h.Session.Data())
}

// readImportBody accepts either a multipart upload under "file" or a raw
// JSON body.
func readImportBody(c *gin.Context) ([]byte, error) {
	if file, err := c.FormFile("file"); err == nil {
		f, err := file.Open()
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return io.ReadAll(io.LimitReader(f, maxImportBytes))
	}
	return io.ReadAll(io.LimitReader(c.Request.Body, maxImportBytes))
}

func (h *Handler) exportPrint(c *gin.Context) {
	data, theme := h.Session.Snapshot()
	var buf bytes.Buffer
	if err := render.WritePrintDocument(&buf, render.Build(data), theme); err != nil {
		respond.Error(c, http.StatusInternalServerError, "render_failed", "could not render print document", nil)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func (h *Handler) exportPDF(c *gin.Context) {
	data, theme := h.Session.Snapshot()
	var buf bytes.Buffer
	if err := render.WritePrintDocument(&buf, render.Build(data), theme); err != nil {
		respond.Error(c, http.StatusInternalServerError, "render_failed", "could not render print document", nil)
		return
	}

	pdfBytes, err := h.Renderer.RenderHTMLToPDF(c.Request.Context(), buf.String())
	if err != nil {
		respond.Error(c, http.StatusBadGateway, "export_failed", "PDF generation failed", nil)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="resume.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

func (h *Handler) saveStatus(c *gin.Context) {
	status := gin.H{"dirty": h.Saver.Dirty()}
	if savedAt := h.Saver.SavedAt(); !savedAt.IsZero() {
		status["savedAt"] = savedAt
	} else {
		status["savedAt"] = nil
	}
	respond.OK(c, status)
}
