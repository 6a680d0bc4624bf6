// Package editing binds the form surface to the editor session: one route
// per change callback, each invoking exactly one strongly-typed editor
// operation.
package editing

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-studio/internal/shared/server/respond"
	"resume-studio/resume/editor"
	"resume-studio/resume/model"
)

// Handler exposes the resume editing endpoints.
type Handler struct {
	Session *editor.Session
}

// NewHandler constructs a Handler.
func NewHandler(session *editor.Session) *Handler {
	return &Handler{Session: session}
}

// RegisterRoutes attaches the editing routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/resume", h.getResume)
	rg.PUT("/resume/personal", h.putPersonal)
	rg.PUT("/resume/summary", h.putSummary)

	rg.POST("/resume/experience", h.addExperience)
	rg.PATCH("/resume/experience/:id", h.patchExperience)
	rg.DELETE("/resume/experience/:id", h.removeExperience)
	rg.POST("/resume/experience/:id/responsibilities", h.addResponsibility)
	rg.DELETE("/resume/experience/:id/responsibilities/:index", h.removeResponsibility)
	rg.POST("/resume/experience/:id/tech", h.addExperienceTech)
	rg.DELETE("/resume/experience/:id/tech", h.removeExperienceTech)

	rg.POST("/resume/education", h.addEducation)
	rg.PATCH("/resume/education/:id", h.patchEducation)
	rg.DELETE("/resume/education/:id", h.removeEducation)
	rg.POST("/resume/education/:id/honors", h.addHonor)
	rg.DELETE("/resume/education/:id/honors", h.removeHonor)
	rg.POST("/resume/education/:id/activities", h.addActivity)
	rg.DELETE("/resume/education/:id/activities", h.removeActivity)

	rg.POST("/resume/projects", h.addProject)
	rg.PATCH("/resume/projects/:id", h.patchProject)
	rg.DELETE("/resume/projects/:id", h.removeProject)
	rg.POST("/resume/projects/:id/tech", h.addProjectTech)
	rg.DELETE("/resume/projects/:id/tech", h.removeProjectTech)
	rg.POST("/resume/projects/:id/highlights", h.addHighlight)
	rg.DELETE("/resume/projects/:id/highlights/:index", h.removeHighlight)

	rg.POST("/resume/skills/:bucket", h.addSkill)
	rg.DELETE("/resume/skills/:bucket", h.removeSkill)

	rg.POST("/resume/interests", h.addInterest)
	rg.DELETE("/resume/interests", h.removeInterest)

	rg.POST("/resume/sections/:index/up", h.moveSectionUp)
	rg.POST("/resume/sections/:index/down", h.moveSectionDown)
}

func (h *Handler) getResume(c *gin.Context) {
	respond.OK(c, h.Session.Data())
}

func (h *Handler) putPersonal(c *gin.Context) {
	var info model.PersonalInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid personal info payload", nil)
		return
	}
	h.Session.SetPersonalInfo(info)
	respond.OK(c, h.Session.Data().PersonalInfo)
}

func (h *Handler) putSummary(c *gin.Context) {
	var body struct {
		Summary string `json:"summary"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid summary payload", nil)
		return
	}
	h.Session.SetSummary(body.Summary)
	respond.OK(c, gin.H{"summary": body.Summary})
}

// textBody is the {"text": "..."} payload shared by the sub-list adds.
type textBody struct {
	Text string `json:"text"`
}

func bindText(c *gin.Context) (string, bool) {
	var body textBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid payload", nil)
		return "", false
	}
	if strings.TrimSpace(body.Text) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "text must not be blank", nil)
		return "", false
	}
	return body.Text, true
}

func valueQuery(c *gin.Context) (string, bool) {
	value := c.Query("value")
	if value == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "value query parameter is required", nil)
		return "", false
	}
	return value, true
}

func indexParam(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "index must be an integer", nil)
		return 0, false
	}
	return index, true
}

func notFound(c *gin.Context, what string) {
	respond.Error(c, http.StatusNotFound, "not_found", what+" not found", nil)
}

// --- work experience ---

func (h *Handler) addExperience(c *gin.Context) {
	respond.JSON(c, http.StatusCreated, h.Session.AddExperience())
}

// patchExperience applies one typed setter per present field. Unknown
// fields are rejected: the closed field set is the point of the redesign.
func (h *Handler) patchExperience(c *gin.Context) {
	id := c.Param("id")
	patch, ok := bindPatch(c)
	if !ok {
		return
	}

	for field, raw := range patch {
		var applied bool
		switch field {
		case "company":
			applied = applyString(c, raw, field, func(v string) bool { return h.Session.SetExperienceCompany(id, v) })
		case "position":
			applied = applyString(c, raw, field, func(v string) bool { return h.Session.SetExperiencePosition(id, v) })
		case "location":
			applied = applyString(c, raw, field, func(v string) bool { return h.Session.SetExperienceLocation(id, v) })
		case "startDate":
			applied = applyDate(c, raw, field, func(v model.Date) bool { return h.Session.SetExperienceStartDate(id, v) })
		case "endDate":
			applied = applyDate(c, raw, field, func(v model.Date) bool { return h.Session.SetExperienceEndDate(id, v) })
		case "current":
			applied = applyBool(c, raw, field, func(v bool) bool { return h.Session.SetExperienceCurrent(id, v) })
		default:
			respond.Error(c, http.StatusBadRequest, "validation_error", "unknown field "+field, nil)
			return
		}
		if c.IsAborted() {
			return
		}
		if !applied {
			notFound(c, "experience")
			return
		}
	}

	for _, exp := range h.Session.Data().WorkExperience {
		if exp.ID == id {
			respond.OK(c, exp)
			return
		}
	}
	notFound(c, "experience")
}

func (h *Handler) removeExperience(c *gin.Context) {
	if !h.Session.RemoveExperience(c.Param("id")) {
		notFound(c, "experience")
		return
	}
	respond.OK(c, gin.H{"removed": true})
}

func (h *Handler) addResponsibility(c *gin.Context) {
	text, ok := bindText(c)
	if !ok {
		return
	}
	if !h.Session.AddResponsibility(c.Param("id"), text) {
		notFound(c, "experience")
		return
	}
	respond.OK(c, gin.H{"added": true})
}

func (h *Handler) removeResponsibility(c *gin.Context) {
	index, ok := indexParam(c)
	if !ok {
		return
	}
	if !h.Session.RemoveResponsibility(c.Param("id"), index) {
		notFound(c, "responsibility")
		return
	}
	respond.OK(c, gin.H{"removed": true})
}

func (h *Handler) addExperienceTech(c *gin.Context) {
	text, ok := bindText(c)
	if !ok {
		return
	}
	if !h.Session.AddExperienceTech(c.Param("id"), text) {
		notFound(c, "experience")
		return
	}
	respond.OK(c, gin.H{"added": true})
}

func (h *Handler) removeExperienceTech(c *gin.Context) {
	value, ok := valueQuery(c)
	if !ok {
		return
	}
	if !h.Session.RemoveExperienceTech(c.Param("id"), value) {
		notFound(c, "tech tag")
		return
	}
	respond.OK(c, gin.H{"removed": true})
}

// --- education ---

func (h *Handler) addEducation(c *gin.Context) {
	respond.JSON(c, http.StatusCreated, h.Session.AddEducation())
}

func (h *Handler) patchEducation(c *gin.Context) {
	id := c.Param("id")
	patch, ok := bindPatch(c)
	if !ok {
		return
	}

	for field, raw := range patch {
		var applied bool
		switch field {
		case "institution":
			applied = applyString(c, raw, field, func(v string) bool { return h.Session.SetEducationInstitution(id, v) })
		case "degree":
			applied = applyString(c, raw, field, func(v string) bool { return h.Session.SetEducationDegree(id, v) })
		case "field":
			applied = applyString(c, raw, field, func(v string) bool { return h.Session.SetEducationField(id, v) })
		case "location":
			applied = applyString(c, raw, field, func(v string) bool { return h.Session.SetEducationLocation(id, v) })
		case "gpa":
			applied = applyString(c, raw, field, func(v string) bool { return h.Session.SetEducationGPA(id, v) })
		case "startDate":
			applied = applyDate(c, raw, field, func(v model.Date) bool { return h.Session.SetEducationStartDate(id, v) })
		case "endDate":
			applied = applyDate(c, raw, field, func(v model.Date) bool { return h.Session.SetEducationEndDate(id, v) })
		default:
			respond.Error(c, http.StatusBadRequest, "validation_error", "unknown field "+field, nil)
			return
		}
		if c.IsAborted() {
			return
		}
		if !applied {
			notFound(c, "education")
			return
		}
	}

	for _, edu := range h.Session.Data().Education {
		if edu.ID == id {
			respond.OK(c, edu)
			return
		}
	}
	notFound(c, "education")
}

func (h *Handler) removeEducation(c *gin.Context) {
	if !h.Session.RemoveEducation(c.Param("id")) {
		notFound(c, "education")
		return
	}
	respond.OK(c, gin.H{"removed": true})
}

func (h *Handler) addHonor(c *gin.Context) {
	text, ok := bindText(c)
	if !ok {
		return
	}
	if !h.Session.AddHonor(c.Param("id"), text) {
		notFound(c, "education")
		return
	}
	respond.OK(c, gin.H{"added": true})
}

func (h *Handler) removeHonor(c *gin.Context) {
	value, ok := valueQuery(c)
	if !ok {
		return
	}
	if !h.Session.RemoveHonor(c.Param("id"), value) {
		notFound(c, "honor")
		return
	}
	respond.OK(c, gin.H{"removed": true})
}

func (h *Handler) addActivity(c *gin.Context) {
	text, ok := bindText(c)
	if !ok {
		return
	}
	if !h.Session.AddActivity(c.Param("id"), text) {
		notFound(c, "education")
		return
	}
	respond.OK(c, gin.H{"added": true})
}

func (h *Handler) removeActivity(c *gin.Context) {
	value, ok := valueQuery(c)
	if !ok {
		return
	}
	if !h.Session.RemoveActivity(c.Param("id"), value) {
		notFound(c, "activity")
		return
	}
	respond.OK(c, gin.H{"removed": true})
}

// --- projects ---

func (h *Handler) addProject(c *gin.Context) {
	respond.JSON(c, http.StatusCreated, h.Session.AddProject())
}

func (h *Handler) patchProject(c *gin.Context) {
	id := c.Param("id")
	patch, ok := bindPatch(c)
	if !ok {
		return
	}

	for field, raw := range patch {
		var applied bool
		switch field {
		case "name":
			applied = applyString(c, raw, field, func(v string) bool { return h.Session.SetProjectName(id, v) })
		case "description":
			applied = applyString(c, raw, field, func(v string) bool { return h.Session.SetProjectDescription(id, v) })
		case "link":
			applied = applyString(c, raw, field, func(v string) bool { return h.Session.SetProjectLink(id, v) })
		case "github":
			applied = applyString(c, raw, field, func(v string) bool { return h.Session.SetProjectGitHub(id, v) })
		default:
			respond.Error(c, http.StatusBadRequest, "validation_error", "unknown field "+field, nil)
			return
		}
		if c.IsAborted() {
			return
		}
		if !applied {
			notFound(c, "project")
			return
		}
	}

	for _, proj := range h.Session.Data().Projects {
		if proj.ID == id {
			respond.OK(c, proj)
			return
		}
	}
	notFound(c, "project")
}

func (h *Handler) removeProject(c *gin.Context) {
	if !h.Session.RemoveProject(c.Param("id")) {
		notFound(c, "project")
		return
	}
	respond.OK(c, gin.H{"removed": true})
}

func (h *Handler) addProjectTech(c *gin.Context) {
	text, ok := bindText(c)
	if !ok {
		return
	}
	if !h.Session.AddProjectTech(c.Param("id"), text) {
		notFound(c, "project")
		return
	}
	respond.OK(c, gin.H{"added": true})
}

func (h *Handler) removeProjectTech(c *gin.Context) {
	value, ok := valueQuery(c)
	if !ok {
		return
	}
	if !h.Session.RemoveProjectTech(c.Param("id"), value) {
		notFound(c, "tech tag")
		return
	}
	respond.OK(c, gin.H{"removed": true})
}

func (h *Handler) addHighlight(c *gin.Context) {
	text, ok := bindText(c)
	if !ok {
		return
	}
	if !h.Session.AddHighlight(c.Param("id"), text) {
		notFound(c, "project")
		return
	}
	respond.OK(c, gin.H{"added": true})
}

func (h *Handler) removeHighlight(c *gin.Context) {
	index, ok := indexParam(c)
	if !ok {
		return
	}
	if !h.Session.RemoveHighlight(c.Param("id"), index) {
		notFound(c, "highlight")
		return
	}
	respond.OK(c, gin.H{"removed": true})
}

// --- skills ---

func (h *Handler) addSkill(c *gin.Context) {
	bucket, ok := model.ParseSkillBucket(c.Param("bucket"))
	if !ok {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unknown skill bucket", nil)
		return
	}
	text, ok := bindText(c)
	if !ok {
		return
	}
	h.Session.AddSkill(bucket, text)
	respond.OK(c, gin.H{"skills": h.Session.Data().Skills})
}

func (h *Handler) removeSkill(c *gin.Context) {
	bucket, ok := model.ParseSkillBucket(c.Param("bucket"))
	if !ok {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unknown skill bucket", nil)
		return
	}
	value, ok := valueQuery(c)
	if !ok {
		return
	}
	if !h.Session.RemoveSkill(bucket, value) {
		notFound(c, "skill")
		return
	}
	respond.OK(c, gin.H{"skills": h.Session.Data().Skills})
}

// --- interests ---

// addInterest reports duplicates as added=false rather than failing: the
// insertion no-op is part of the collection's contract.
func (h *Handler) addInterest(c *gin.Context) {
	text, ok := bindText(c)
	if !ok {
		return
	}
	added := h.Session.AddInterest(text)
	respond.OK(c, gin.H{"added": added, "interests": h.Session.Data().Interests})
}

func (h *Handler) removeInterest(c *gin.Context) {
	value, ok := valueQuery(c)
	if !ok {
		return
	}
	if !h.Session.RemoveInterest(value) {
		notFound(c, "interest")
		return
	}
	respond.OK(c, gin.H{"interests": h.Session.Data().Interests})
}

// --- section order ---

// The boundary no-op is not an error: the response carries the (possibly
// unchanged) order either way.
func (h *Handler) moveSectionUp(c *gin.Context) {
	index, ok := indexParam(c)
	if !ok {
		return
	}
	moved := h.Session.MoveSectionUp(index)
	respond.OK(c, gin.H{"moved": moved, "sectionOrder": h.Session.SectionOrder()})
}

func (h *Handler) moveSectionDown(c *gin.Context) {
	index, ok := indexParam(c)
	if !ok {
		return
	}
	moved := h.Session.MoveSectionDown(index)
	respond.OK(c, gin.H{"moved": moved, "sectionOrder": h.Session.SectionOrder()})
}

// --- patch plumbing ---

func bindPatch(c *gin.Context) (map[string]json.RawMessage, bool) {
	var patch map[string]json.RawMessage
	if err := c.ShouldBindJSON(&patch); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid patch payload", nil)
		return nil, false
	}
	if len(patch) == 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "patch payload is empty", nil)
		return nil, false
	}
	return patch, true
}

func applyString(c *gin.Context, raw json.RawMessage, field string, set func(string) bool) bool {
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", field+" must be a string", nil)
		return false
	}
	return set(v)
}

func applyBool(c *gin.Context, raw json.RawMessage, field string, set func(bool) bool) bool {
	var v bool
	if err := json.Unmarshal(raw, &v); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", field+" must be a boolean", nil)
		return false
	}
	return set(v)
}

func applyDate(c *gin.Context, raw json.RawMessage, field string, set func(model.Date) bool) bool {
	var v model.Date
	if err := json.Unmarshal(raw, &v); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", field+" must be an ISO date or null", nil)
		return false
	}
	return set(v)
}
