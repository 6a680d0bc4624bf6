package editing

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"resume-studio/resume/editor"
	"resume-studio/resume/model"
)

func newTestRouter() (*editor.Session, *gin.Engine) {
	gin.SetMode(gin.TestMode)
	session := editor.NewSession(model.DefaultResumeData(), model.DefaultTheme())
	router := gin.New()
	api := router.Group("/api/v1")
	NewHandler(session).RegisterRoutes(api)
	return session, router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestAddAndPatchExperience(t *testing.T) {
	_, router := newTestRouter()

	resp := doJSON(t, router, http.MethodPost, "/api/v1/resume/experience", "")
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
	var created model.WorkExperience
	if err := json.Unmarshal(resp.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode created experience: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated id")
	}

	patch := `{"company":"Acme Corp","position":"Engineer","startDate":"2022-01-15","current":true}`
	resp = doJSON(t, router, http.MethodPatch, "/api/v1/resume/experience/"+created.ID, patch)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var updated model.WorkExperience
	if err := json.Unmarshal(resp.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decode patched experience: %v", err)
	}
	if updated.Company != "Acme Corp" || updated.Position != "Engineer" {
		t.Fatalf("patch not applied: %+v", updated)
	}
	if !updated.Current {
		t.Fatal("expected current to be set")
	}
	if !updated.StartDate.Valid || updated.StartDate.Display() != "Jan 2022" {
		t.Fatalf("unexpected start date: %+v", updated.StartDate)
	}
}

func TestPatchExperienceClearsDateWithNull(t *testing.T) {
	session, router := newTestRouter()
	exp := session.AddExperience()
	session.SetExperienceStartDate(exp.ID, mustDate(t, "2020-06-01"))

	resp := doJSON(t, router, http.MethodPatch, "/api/v1/resume/experience/"+exp.ID, `{"startDate":null}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if session.Data().WorkExperience[0].StartDate.Valid {
		t.Fatal("expected start date to be unset")
	}
}

func TestPatchExperienceRejectsUnknownField(t *testing.T) {
	session, router := newTestRouter()
	exp := session.AddExperience()

	resp := doJSON(t, router, http.MethodPatch, "/api/v1/resume/experience/"+exp.ID, `{"salary":90000}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestPatchUnknownExperienceReturns404(t *testing.T) {
	_, router := newTestRouter()

	resp := doJSON(t, router, http.MethodPatch, "/api/v1/resume/experience/nope", `{"company":"Acme"}`)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}

func TestResponsibilityLifecycle(t *testing.T) {
	session, router := newTestRouter()
	exp := session.AddExperience()
	base := "/api/v1/resume/experience/" + exp.ID + "/responsibilities"

	resp := doJSON(t, router, http.MethodPost, base, `{"text":"   "}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for blank text, got %d", resp.Code)
	}

	resp = doJSON(t, router, http.MethodPost, base, `{"text":"Shipped the thing"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if got := session.Data().WorkExperience[0].Responsibilities; len(got) != 1 || got[0] != "Shipped the thing" {
		t.Fatalf("unexpected responsibilities: %v", got)
	}

	resp = doJSON(t, router, http.MethodDelete, base+"/5", "")
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for out-of-range index, got %d", resp.Code)
	}

	resp = doJSON(t, router, http.MethodDelete, base+"/0", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if got := session.Data().WorkExperience[0].Responsibilities; len(got) != 0 {
		t.Fatalf("expected empty responsibilities, got %v", got)
	}
}

func TestTechTagRemovedByValue(t *testing.T) {
	session, router := newTestRouter()
	exp := session.AddExperience()
	session.AddExperienceTech(exp.ID, "Go")
	session.AddExperienceTech(exp.ID, "Postgres")

	base := "/api/v1/resume/experience/" + exp.ID + "/tech"

	resp := doJSON(t, router, http.MethodDelete, base, "")
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without value param, got %d", resp.Code)
	}

	resp = doJSON(t, router, http.MethodDelete, base+"?value=Go", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if got := session.Data().WorkExperience[0].TechStack; len(got) != 1 || got[0] != "Postgres" {
		t.Fatalf("unexpected tech stack: %v", got)
	}

	resp = doJSON(t, router, http.MethodDelete, base+"?value=Rust", "")
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for absent value, got %d", resp.Code)
	}
}

func TestSkillBucketValidation(t *testing.T) {
	session, router := newTestRouter()

	resp := doJSON(t, router, http.MethodPost, "/api/v1/resume/skills/wizardry", `{"text":"Go"}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown bucket, got %d", resp.Code)
	}

	resp = doJSON(t, router, http.MethodPost, "/api/v1/resume/skills/languages", `{"text":"Go"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if got := session.Data().Skills.Languages; len(got) != 1 || got[0] != "Go" {
		t.Fatalf("unexpected languages: %v", got)
	}
}

func TestInterestDuplicateReportsNotAdded(t *testing.T) {
	session, router := newTestRouter()

	resp := doJSON(t, router, http.MethodPost, "/api/v1/resume/interests", `{"text":"Chess"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	resp = doJSON(t, router, http.MethodPost, "/api/v1/resume/interests", `{"text":"Chess"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var body struct {
		Added     bool     `json:"added"`
		Interests []string `json:"interests"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Added {
		t.Fatal("expected duplicate to report added=false")
	}
	if len(body.Interests) != 1 {
		t.Fatalf("expected one interest, got %v", body.Interests)
	}
	if len(session.Data().Interests) != 1 {
		t.Fatalf("session holds %d interests", len(session.Data().Interests))
	}
}

func TestSectionMoveEndpoints(t *testing.T) {
	session, router := newTestRouter()
	original := session.SectionOrder()

	resp := doJSON(t, router, http.MethodPost, "/api/v1/resume/sections/0/up", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var body struct {
		Moved        bool            `json:"moved"`
		SectionOrder []model.Section `json:"sectionOrder"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Moved {
		t.Fatal("expected boundary move to be a no-op")
	}
	if len(body.SectionOrder) != len(original) {
		t.Fatalf("unexpected order length: %v", body.SectionOrder)
	}

	resp = doJSON(t, router, http.MethodPost, "/api/v1/resume/sections/0/down", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	body.Moved = false
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !body.Moved {
		t.Fatal("expected move down to succeed")
	}
	if body.SectionOrder[0] != original[1] || body.SectionOrder[1] != original[0] {
		t.Fatalf("expected adjacent swap, got %v", body.SectionOrder)
	}

	resp = doJSON(t, router, http.MethodPost, "/api/v1/resume/sections/abc/up", "")
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric index, got %d", resp.Code)
	}
}

func TestPutPersonalAndSummary(t *testing.T) {
	session, router := newTestRouter()

	resp := doJSON(t, router, http.MethodPut, "/api/v1/resume/personal", `{"fullName":"Jane Doe","email":"jane@example.com"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if got := session.Data().PersonalInfo.FullName; got != "Jane Doe" {
		t.Fatalf("unexpected full name %q", got)
	}

	resp = doJSON(t, router, http.MethodPut, "/api/v1/resume/summary", `{"summary":"Seasoned engineer."}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if got := session.Data().Summary; got != "Seasoned engineer." {
		t.Fatalf("unexpected summary %q", got)
	}
}

func TestRemoveEducationNotFound(t *testing.T) {
	_, router := newTestRouter()

	resp := doJSON(t, router, http.MethodDelete, "/api/v1/resume/education/missing", "")
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func mustDate(t *testing.T, s string) model.Date {
	t.Helper()
	d, err := model.ParseDate(s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}
