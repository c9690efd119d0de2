package service

import (
	"github.com/google/uuid"

	"parish-liturgy-backend/internal/liturgy"
	"parish-liturgy-backend/internal/models"
	"parish-liturgy-backend/internal/script"
)

type FieldDefinitionUseCase interface {
	List(eventTypeID uuid.UUID) ([]models.InputFieldDefinition, error)
	Create(eventTypeID uuid.UUID, req models.CreateFieldDefinitionRequest) (*models.InputFieldDefinition, error)
	Update(id uuid.UUID, req models.UpdateFieldDefinitionRequest) (*models.InputFieldDefinition, error)
	Delete(id uuid.UUID) error
}

type ScriptUseCase interface {
	GetScript(id uuid.UUID) (*models.Script, error)
	CreateSection(scriptID uuid.UUID, req models.CreateSectionRequest) (*models.Section, error)
	UpdateSection(id uuid.UUID, req models.UpdateSectionRequest) (*models.Section, error)
	DeleteSection(id uuid.UUID) error
	ReorderSections(scriptID uuid.UUID, req models.ReorderSectionsRequest) (*models.Script, error)
}

type EventUseCase interface {
	Create(req models.CreateEventRequest) (*models.Event, error)
	GetByID(id uuid.UUID) (*models.Event, error)
	UpdateFieldValues(id uuid.UUID, req models.UpdateFieldValuesRequest) (*models.Event, error)
}

type RenderUseCase interface {
	Render(eventID, scriptID uuid.UUID) (*RenderedScript, error)
	ExportText(eventID, scriptID uuid.UUID) (*Export, error)
	ExportHTML(eventID, scriptID uuid.UUID) (*Export, error)
	Segments(eventID, scriptID uuid.UUID) ([]script.SegmentedSection, error)
	Preview(req PreviewRequest) (*PreviewResult, error)
}

type LiturgyUseCase interface {
	Templates(module string) ([]liturgy.TemplateInfo, error)
	Build(module, templateID string, payload []byte) (*liturgy.Document, error)
	EventDocument(eventID uuid.UUID, templateID string) (*liturgy.Document, error)
	RenderHTML(doc *liturgy.Document) string
	RenderText(doc *liturgy.Document) string
}
