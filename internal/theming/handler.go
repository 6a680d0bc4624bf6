// Package theming exposes the appearance settings: the stored custom theme
// and the font/color catalogs the pickers are populated from.
package theming

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-studio/internal/shared/server/respond"
	"resume-studio/resume/editor"
	"resume-studio/resume/model"
)

// Handler exposes the theme endpoints.
type Handler struct {
	Session *editor.Session
}

// NewHandler constructs a Handler.
func NewHandler(session *editor.Session) *Handler {
	return &Handler{Session: session}
}

// RegisterRoutes attaches the theme routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/theme", h.getTheme)
	rg.PUT("/theme", h.putTheme)
	rg.PATCH("/theme", h.patchTheme)
	rg.GET("/theme/options", h.getOptions)
}

func (h *Handler) getTheme(c *gin.Context) {
	respond.OK(c, h.Session.Theme())
}

// putTheme replaces the theme wholesale. Free-form colors and font stacks
// are accepted as-is; only the mode is constrained.
func (h *Handler) putTheme(c *gin.Context) {
	var theme model.CustomTheme
	if err := c.ShouldBindJSON(&theme); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid theme payload", nil)
		return
	}
	h.Session.ReplaceTheme(theme)
	respond.OK(c, h.Session.Theme())
}

func (h *Handler) patchTheme(c *gin.Context) {
	var patch map[string]json.RawMessage
	if err := c.ShouldBindJSON(&patch); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid patch payload", nil)
		return
	}
	if len(patch) == 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "patch payload is empty", nil)
		return
	}

	for field, raw := range patch {
		var v string
		if err := json.Unmarshal(raw, &v); err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", field+" must be a string", nil)
			return
		}
		switch field {
		case "primaryColor":
			h.Session.SetPrimaryColor(v)
		case "accentColor":
			h.Session.SetAccentColor(v)
		case "headingFont":
			h.Session.SetHeadingFont(v)
		case "bodyFont":
			h.Session.SetBodyFont(v)
		case "mode":
			if !h.Session.SetMode(model.ThemeMode(v)) {
				respond.Error(c, http.StatusBadRequest, "validation_error", "mode must be light or dark", nil)
				return
			}
		default:
			respond.Error(c, http.StatusBadRequest, "validation_error", "unknown field "+field, nil)
			return
		}
	}
	respond.OK(c, h.Session.Theme())
}

func (h *Handler) getOptions(c *gin.Context) {
	respond.OK(c, gin.H{
		"bodyFonts":    model.BodyFontOptions(),
		"headingFonts": model.HeadingFontOptions(),
		"colorPresets": model.ColorPresets(),
	})
}
