package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"parish-liturgy-backend/internal/liturgy"
	"parish-liturgy-backend/internal/middleware"
	"parish-liturgy-backend/internal/models"
	"parish-liturgy-backend/internal/script"
	"parish-liturgy-backend/internal/service"
	"parish-liturgy-backend/pkg/validator"
)

type stubFields struct {
	createErr error
	created   *models.CreateFieldDefinitionRequest
}

func (s *stubFields) List(uuid.UUID) ([]models.InputFieldDefinition, error) {
	return []models.InputFieldDefinition{{Name: "Bride", PropertyName: "bride", Type: "person"}}, nil
}

func (s *stubFields) Create(eventTypeID uuid.UUID, req models.CreateFieldDefinitionRequest) (*models.InputFieldDefinition, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.created = &req
	return &models.InputFieldDefinition{ID: uuid.New(), EventTypeID: eventTypeID, Name: req.Name, PropertyName: req.PropertyName, Type: req.Type}, nil
}

func (s *stubFields) Update(uuid.UUID, models.UpdateFieldDefinitionRequest) (*models.InputFieldDefinition, error) {
	return nil, service.ErrFieldNotFound
}

func (s *stubFields) Delete(uuid.UUID) error { return nil }

type stubScripts struct{}

func (stubScripts) GetScript(uuid.UUID) (*models.Script, error) { return nil, service.ErrScriptNotFound }

func (stubScripts) CreateSection(uuid.UUID, models.CreateSectionRequest) (*models.Section, error) {
	return nil, fmt.Errorf("%w: %q", service.ErrInvalidSectionType, "hymn")
}

func (stubScripts) UpdateSection(uuid.UUID, models.UpdateSectionRequest) (*models.Section, error) {
	return nil, service.ErrSectionNotFound
}

func (stubScripts) DeleteSection(uuid.UUID) error { return nil }

func (stubScripts) ReorderSections(uuid.UUID, models.ReorderSectionsRequest) (*models.Script, error) {
	return nil, service.ErrInvalidSectionList
}

type stubRender struct {
	preview service.PreviewRequest
}

func (s *stubRender) Render(eventID, scriptID uuid.UUID) (*service.RenderedScript, error) {
	return &service.RenderedScript{EventID: eventID, ScriptID: scriptID, Sections: []script.ProcessedSection{{Name: "Welcome"}}}, nil
}

func (s *stubRender) ExportText(uuid.UUID, uuid.UUID) (*service.Export, error) {
	return &service.Export{Filename: "Smith-Wedding-Ceremony-20251225.txt", ContentType: "text/plain; charset=utf-8", Content: "CEREMONY\n"}, nil
}

func (s *stubRender) ExportHTML(uuid.UUID, uuid.UUID) (*service.Export, error) {
	return nil, fmt.Errorf("failed to load event: %w", fmt.Errorf("connection refused"))
}

func (s *stubRender) Segments(uuid.UUID, uuid.UUID) ([]script.SegmentedSection, error) {
	return nil, service.ErrEventNotFound
}

func (s *stubRender) Preview(req service.PreviewRequest) (*service.PreviewResult, error) {
	s.preview = req
	return &service.PreviewResult{HTML: "<p>ok</p>", Text: "ok"}, nil
}

type stubLiturgy struct{}

func (stubLiturgy) Templates(module string) ([]liturgy.TemplateInfo, error) {
	if module != "wedding" {
		return nil, service.ErrUnknownModule
	}
	return []liturgy.TemplateInfo{{ID: "wedding-full-script-english", Default: true}}, nil
}

func (stubLiturgy) Build(module, templateID string, payload []byte) (*liturgy.Document, error) {
	if module != "wedding" {
		return nil, service.ErrUnknownModule
	}
	if !json.Valid(payload) {
		return nil, service.ErrInvalidPayload
	}
	return &liturgy.Document{Type: module, Template: templateID, Title: "Smith Wedding", Sections: []liturgy.Section{}}, nil
}

func (stubLiturgy) EventDocument(uuid.UUID, string) (*liturgy.Document, error) {
	return nil, service.ErrEventNotFound
}

func (stubLiturgy) RenderHTML(doc *liturgy.Document) string { return "<h1>" + doc.Title + "</h1>" }

func (stubLiturgy) RenderText(doc *liturgy.Document) string { return doc.Title + "\n" }

func newTestRouter(fields *stubFields, render *stubRender) *gin.Engine {
	gin.SetMode(gin.TestMode)
	validator.Init()

	router := gin.New()
	router.Use(middleware.LanguageNegotiationMiddleware("en"))

	fieldHandler := NewFieldHandler(fields)
	scriptHandler := NewScriptHandler(stubScripts{})
	renderHandler := NewRenderHandler(render)
	liturgyHandler := NewLiturgyHandler(stubLiturgy{})

	api := router.Group("/api/v1")
	api.GET("/event-types/:id/fields", fieldHandler.List)
	api.POST("/event-types/:id/fields", fieldHandler.Create)
	api.PUT("/fields/:id", fieldHandler.Update)
	api.GET("/scripts/:id", scriptHandler.Get)
	api.POST("/scripts/:id/sections", scriptHandler.CreateSection)
	api.PUT("/scripts/:id/sections/order", scriptHandler.ReorderSections)
	api.GET("/events/:id/scripts/:script_id/render", renderHandler.Render)
	api.GET("/events/:id/scripts/:script_id/export/txt", renderHandler.ExportText)
	api.GET("/events/:id/scripts/:script_id/export/html", renderHandler.ExportHTML)
	api.GET("/events/:id/scripts/:script_id/segments", renderHandler.Segments)
	api.POST("/preview", renderHandler.Preview)
	api.GET("/liturgy/:module/templates", liturgyHandler.Templates)
	api.POST("/liturgy/:module", liturgyHandler.Build)
	api.GET("/events/:id/liturgy", liturgyHandler.EventDocument)
	return router
}

func perform(router *gin.Engine, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestErrorStatusMapping(t *testing.T) {
	router := newTestRouter(&stubFields{}, &stubRender{})
	eventID, scriptID := uuid.NewString(), uuid.NewString()

	cases := []struct {
		name   string
		method string
		path   string
		body   string
		status int
	}{
		{name: "invalid uuid", method: http.MethodGet, path: "/api/v1/scripts/not-a-uuid", status: http.StatusBadRequest},
		{name: "script not found", method: http.MethodGet, path: "/api/v1/scripts/" + scriptID, status: http.StatusNotFound},
		{name: "field not found", method: http.MethodPut, path: "/api/v1/fields/" + uuid.NewString(), body: `{"name":"Groom"}`, status: http.StatusNotFound},
		{name: "invalid section type", method: http.MethodPost, path: "/api/v1/scripts/" + scriptID + "/sections", body: `{"name":"Opening"}`, status: http.StatusBadRequest},
		{name: "mismatched reorder", method: http.MethodPut, path: "/api/v1/scripts/" + scriptID + "/sections/order", body: `{"section_ids":["` + uuid.NewString() + `"]}`, status: http.StatusBadRequest},
		{name: "empty reorder", method: http.MethodPut, path: "/api/v1/scripts/" + scriptID + "/sections/order", body: `{"section_ids":[]}`, status: http.StatusBadRequest},
		{name: "event not found", method: http.MethodGet, path: "/api/v1/events/" + eventID + "/scripts/" + scriptID + "/segments", status: http.StatusNotFound},
		{name: "storage failure", method: http.MethodGet, path: "/api/v1/events/" + eventID + "/scripts/" + scriptID + "/export/html", status: http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := perform(router, tc.method, tc.path, tc.body)
			if recorder.Code != tc.status {
				t.Fatalf("expected status %d, got %d: %s", tc.status, recorder.Code, recorder.Body.String())
			}
		})
	}
}

func TestCreateFieldValidation(t *testing.T) {
	fields := &stubFields{}
	router := newTestRouter(fields, &stubRender{})
	path := "/api/v1/event-types/" + uuid.NewString() + "/fields"

	recorder := perform(router, http.MethodPost, path, `{"name":"Bride","property_name":"Bride Name","type":"person"}`)
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected bad property name to be rejected, got %d", recorder.Code)
	}
	if fields.created != nil {
		t.Fatalf("expected service not to be called")
	}

	recorder = perform(router, http.MethodPost, path, `{"name":"Bride","property_name":"bride","type":"person"}`)
	if recorder.Code != http.StatusCreated {
		t.Fatalf("expected created, got %d: %s", recorder.Code, recorder.Body.String())
	}

	fields.createErr = service.ErrDuplicateProperty
	recorder = perform(router, http.MethodPost, path, `{"name":"Bride","property_name":"bride","type":"person"}`)
	if recorder.Code != http.StatusConflict {
		t.Fatalf("expected conflict for duplicate property, got %d", recorder.Code)
	}
}

func TestExportTextHeaders(t *testing.T) {
	router := newTestRouter(&stubFields{}, &stubRender{})
	path := fmt.Sprintf("/api/v1/events/%s/scripts/%s/export/txt", uuid.NewString(), uuid.NewString())

	recorder := perform(router, http.MethodGet, path, "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected ok, got %d", recorder.Code)
	}
	if got := recorder.Header().Get("Content-Type"); got != "text/plain; charset=utf-8" {
		t.Fatalf("unexpected content type %q", got)
	}
	if got := recorder.Header().Get("Content-Disposition"); got != `attachment; filename="Smith-Wedding-Ceremony-20251225.txt"` {
		t.Fatalf("unexpected content disposition %q", got)
	}
	if recorder.Body.String() != "CEREMONY\n" {
		t.Fatalf("unexpected body %q", recorder.Body.String())
	}
}

func TestPreviewUsesNegotiatedLanguage(t *testing.T) {
	render := &stubRender{}
	router := newTestRouter(&stubFields{}, render)

	recorder := perform(router, http.MethodPost, "/api/v1/preview", `{"content":"Hola {{bride}}"}`, "Accept-Language", "es-MX,es;q=0.9")
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected ok, got %d: %s", recorder.Code, recorder.Body.String())
	}
	if render.preview.Language != "es" {
		t.Fatalf("expected negotiated language es, got %q", render.preview.Language)
	}

	recorder = perform(router, http.MethodPost, "/api/v1/preview", `{"content":""}`)
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected empty content to be rejected, got %d", recorder.Code)
	}
}

func TestLiturgyFormats(t *testing.T) {
	router := newTestRouter(&stubFields{}, &stubRender{})

	cases := []struct {
		name        string
		path        string
		body        string
		status      int
		contentType string
		contains    string
	}{
		{name: "json", path: "/api/v1/liturgy/wedding?template=wedding-full-script-spanish", body: `{}`, status: http.StatusOK, contentType: "application/json", contains: `"template":"wedding-full-script-spanish"`},
		{name: "html", path: "/api/v1/liturgy/wedding?format=html", body: `{}`, status: http.StatusOK, contentType: "text/html", contains: "<h1>Smith Wedding</h1>"},
		{name: "txt", path: "/api/v1/liturgy/wedding?format=txt", body: `{}`, status: http.StatusOK, contentType: "text/plain", contains: "Smith Wedding"},
		{name: "bad format", path: "/api/v1/liturgy/wedding?format=pdf", body: `{}`, status: http.StatusBadRequest},
		{name: "unknown module", path: "/api/v1/liturgy/confirmation", body: `{}`, status: http.StatusNotFound},
		{name: "invalid payload", path: "/api/v1/liturgy/wedding", body: `{"bride":`, status: http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := perform(router, http.MethodPost, tc.path, tc.body)
			if recorder.Code != tc.status {
				t.Fatalf("expected status %d, got %d: %s", tc.status, recorder.Code, recorder.Body.String())
			}
			if tc.contentType != "" && !strings.HasPrefix(recorder.Header().Get("Content-Type"), tc.contentType) {
				t.Fatalf("unexpected content type %q", recorder.Header().Get("Content-Type"))
			}
			if tc.contains != "" && !strings.Contains(recorder.Body.String(), tc.contains) {
				t.Fatalf("expected body to contain %q, got %s", tc.contains, recorder.Body.String())
			}
		})
	}

	recorder := perform(router, http.MethodGet, "/api/v1/liturgy/wedding/templates", "")
	if recorder.Code != http.StatusOK || !strings.Contains(recorder.Body.String(), "wedding-full-script-english") {
		t.Fatalf("unexpected templates response %d: %s", recorder.Code, recorder.Body.String())
	}

	recorder = perform(router, http.MethodGet, "/api/v1/events/"+uuid.NewString()+"/liturgy", "")
	if recorder.Code != http.StatusNotFound {
		t.Fatalf("expected not found for missing event, got %d", recorder.Code)
	}
}
