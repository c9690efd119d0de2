package service

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"parish-liturgy-backend/internal/formatters"
	"parish-liturgy-backend/internal/models"
	"parish-liturgy-backend/internal/placeholders"
	"parish-liturgy-backend/internal/script"
	"parish-liturgy-backend/pkg/logger"
	"parish-liturgy-backend/pkg/utils"
)

const (
	renderTargetSections = "sections"
	renderTargetText     = "text"
	renderTargetHTML     = "html"
	renderTargetSegments = "segments"
	renderTargetPreview  = "preview"
	renderTargetLiturgy  = "liturgy"
)

var (
	renderMetricsOnce     sync.Once
	renderRequestsTotal   *prometheus.CounterVec
	renderDurationSeconds *prometheus.HistogramVec
)

func initRenderMetrics() {
	renderMetricsOnce.Do(func() {
		renderRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "parish_liturgy",
			Subsystem: "render",
			Name:      "requests_total",
			Help:      "Script and liturgy renders by target and outcome",
		}, []string{"target", "status"})

		renderDurationSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "parish_liturgy",
			Subsystem: "render",
			Name:      "duration_seconds",
			Help:      "Time spent loading and rendering a script",
			Buckets:   prometheus.DefBuckets,
		}, []string{"target"})
	})
}

func observeRender(target string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "failure"
	}
	renderRequestsTotal.WithLabelValues(target, status).Inc()
	renderDurationSeconds.WithLabelValues(target).Observe(time.Since(start).Seconds())
}

// RenderedScript is the JSON rendering of one script for one event.
type RenderedScript struct {
	EventID    uuid.UUID                 `json:"event_id"`
	ScriptID   uuid.UUID                 `json:"script_id"`
	EventName  string                    `json:"event_name"`
	ScriptName string                    `json:"script_name"`
	Sections   []script.ProcessedSection `json:"sections"`
}

// Export is a downloadable rendering.
type Export struct {
	Filename    string
	ContentType string
	Content     string
}

// PreviewRequest renders unsaved content against caller supplied fields.
type PreviewRequest struct {
	Content     string                      `json:"content" binding:"required"`
	SectionType string                      `json:"section_type" binding:"omitempty,oneof=text petition"`
	Fields      placeholders.ResolvedFields `json:"fields"`
	Parish      *placeholders.Parish        `json:"parish"`
	Language    string                      `json:"language"`
}

type PreviewResult struct {
	HTML string `json:"html"`
	Text string `json:"text"`
}

type RenderService struct {
	events    EventUseCase
	scripts   ScriptUseCase
	fields    FieldDefinitionUseCase
	resolver  *ResolutionService
	assembler *script.Assembler
}

func NewRenderService(events EventUseCase, scripts ScriptUseCase, fields FieldDefinitionUseCase, resolver *ResolutionService, assembler *script.Assembler) *RenderService {
	initRenderMetrics()

	if assembler == nil {
		assembler = script.NewAssembler()
	}
	return &RenderService{
		events:    events,
		scripts:   scripts,
		fields:    fields,
		resolver:  resolver,
		assembler: assembler,
	}
}

type renderInput struct {
	event  *models.Event
	script *models.Script
	ctx    *placeholders.Context
}

// load gathers everything a render needs. Any store failure aborts before
// the renderer runs.
func (s *RenderService) load(eventID, scriptID uuid.UUID) (*renderInput, error) {
	event, err := s.events.GetByID(eventID)
	if err != nil {
		return nil, err
	}

	loaded, err := s.scripts.GetScript(scriptID)
	if err != nil {
		return nil, err
	}
	if loaded.EventTypeID != event.EventTypeID {
		return nil, ErrScriptNotFound
	}

	definitions, err := s.fields.List(event.EventTypeID)
	if err != nil {
		return nil, err
	}

	ctx, err := s.resolver.Resolve(event, definitions)
	if err != nil {
		return nil, err
	}

	return &renderInput{event: event, script: loaded, ctx: ctx}, nil
}

func (s *RenderService) Render(eventID, scriptID uuid.UUID) (result *RenderedScript, err error) {
	start := time.Now()
	defer func() { observeRender(renderTargetSections, start, err) }()

	input, err := s.load(eventID, scriptID)
	if err != nil {
		return nil, err
	}

	return &RenderedScript{
		EventID:    input.event.ID,
		ScriptID:   input.script.ID,
		EventName:  input.event.Name,
		ScriptName: input.script.Name,
		Sections:   s.assembler.Process(input.script.Sections, input.ctx),
	}, nil
}

func (s *RenderService) ExportText(eventID, scriptID uuid.UUID) (export *Export, err error) {
	start := time.Now()
	defer func() { observeRender(renderTargetText, start, err) }()

	input, err := s.load(eventID, scriptID)
	if err != nil {
		return nil, err
	}

	content := s.assembler.RenderText(header(input), input.script.Sections, input.ctx)
	return &Export{
		Filename:    exportFilename(input, "txt"),
		ContentType: "text/plain; charset=utf-8",
		Content:     content,
	}, nil
}

func (s *RenderService) ExportHTML(eventID, scriptID uuid.UUID) (export *Export, err error) {
	start := time.Now()
	defer func() { observeRender(renderTargetHTML, start, err) }()

	input, err := s.load(eventID, scriptID)
	if err != nil {
		return nil, err
	}

	page, err := s.assembler.RenderHTMLPage(header(input), input.script.Sections, input.ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to render html: %w", err)
	}
	return &Export{
		Filename:    exportFilename(input, "html"),
		ContentType: "text/html; charset=utf-8",
		Content:     page,
	}, nil
}

func (s *RenderService) Segments(eventID, scriptID uuid.UUID) (segments []script.SegmentedSection, err error) {
	start := time.Now()
	defer func() { observeRender(renderTargetSegments, start, err) }()

	input, err := s.load(eventID, scriptID)
	if err != nil {
		return nil, err
	}
	return s.assembler.Segments(input.script.Sections, input.ctx), nil
}

// Preview renders content without touching the store.
func (s *RenderService) Preview(req PreviewRequest) (*PreviewResult, error) {
	start := time.Now()
	defer observeRender(renderTargetPreview, start, nil)

	ctx := &placeholders.Context{Fields: req.Fields, Parish: req.Parish, Language: req.Language}
	section := models.Section{Content: req.Content, SectionType: req.SectionType}

	processed := s.assembler.Process([]models.Section{section}, ctx)
	result := &PreviewResult{
		Text: strings.TrimSpace(s.assembler.RenderText(script.TextHeader{}, []models.Section{section}, ctx)),
	}
	if len(processed) > 0 {
		result.HTML = processed[0].HTMLContent
	}

	logger.Debug("Rendered preview", map[string]interface{}{"fields": len(req.Fields)})
	return result, nil
}

func header(input *renderInput) script.TextHeader {
	return script.TextHeader{Title: input.event.Name, Subtitle: input.script.Name}
}

// exportFilename names a download after the event, the script and the date
// of the primary occurrence, e.g. "Smith-Wedding-Ceremony-20251225.txt".
func exportFilename(input *renderInput, ext string) string {
	date := ""
	if primary := input.event.PrimaryCalendarEvent(); primary != nil {
		date = primary.StartDate
	}
	return utils.DocumentFilename(ext, input.event.Name, input.script.Name, formatters.DateForFilename(date))
}
