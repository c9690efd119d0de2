package seed

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"parish-liturgy-backend/internal/constants"
	"parish-liturgy-backend/internal/models"
	"parish-liturgy-backend/internal/repository"
	"parish-liturgy-backend/pkg/logger"
	"parish-liturgy-backend/pkg/utils"
)

// Repositories groups the stores the starter data is written through.
type Repositories struct {
	Parishes   repository.ParishRepository
	EventTypes repository.EventTypeRepository
	Fields     repository.FieldDefinitionRepository
	Scripts    repository.ScriptRepository
}

type fieldSeed struct {
	name, property, fieldType string
	required, keyPerson       bool
	primary                   bool
	tags                      []string
}

type sectionSeed struct {
	name, content, sectionType string
	pageBreak                  bool
}

type eventTypeSeed struct {
	name       string
	fields     []fieldSeed
	scriptName string
	sections   []sectionSeed
}

// SampleParishID is stable so repeated seeding finds the parish it created.
var SampleParishID = uuid.NewSHA1(uuid.NameSpaceURL, []byte("parish-liturgy/sample-parish"))

var starterEventTypes = []eventTypeSeed{
	{
		name: "Wedding",
		fields: []fieldSeed{
			{name: "Bride", property: "bride", fieldType: constants.FieldTypePerson, required: true, keyPerson: true},
			{name: "Groom", property: "groom", fieldType: constants.FieldTypePerson, required: true, keyPerson: true},
			{name: "---", property: "spacer_1", fieldType: constants.FieldTypeSpacer},
			{name: "Wedding Ceremony", property: "wedding_ceremony", fieldType: constants.FieldTypeCalendarEvent, required: true, primary: true},
			{name: "Presider", property: "presider", fieldType: constants.FieldTypePerson},
			{name: "Reception Location", property: "reception_location", fieldType: constants.FieldTypeLocation},
			{name: "Opening Prayer", property: "opening_prayer", fieldType: constants.FieldTypeContent, tags: []string{"wedding", "opening-prayer"}},
			{name: "First Reading", property: "first_reading", fieldType: constants.FieldTypeContent, tags: []string{"wedding", "first-reading"}},
			{name: "Prayers of the Faithful", property: "prayers_of_the_faithful", fieldType: constants.FieldTypePetition, tags: []string{"wedding", "prayers-of-the-faithful"}},
			{name: "Unity Candle", property: "unity_candle", fieldType: constants.FieldTypeYesNo},
			{name: "Special Instructions", property: "special_instructions", fieldType: constants.FieldTypeRichText},
		},
		scriptName: "English Wedding Program",
		sections: []sectionSeed{
			{
				name: "Welcome",
				content: "# Wedding Ceremony\n\nPlease join us in celebrating the marriage of\n\n" +
					"**{{bride.full_name}}** and **{{groom.full_name}}**\n\n{{wedding_ceremony.date}}\n\n{{parish.name}}, {{parish.city_state}}",
				pageBreak: true,
			},
			{
				name: "Opening Prayer",
				content: "{red}The priest invites all to pray.{/red}\n\n{{opening_prayer}}",
			},
			{
				name: "First Reading",
				content: "{red}The reader goes to the ambo.{/red}\n\n{{first_reading}}\n\n{red}The word of the Lord.{/red}",
			},
			{
				name:        "Prayers of the Faithful",
				content:     "{{prayers_of_the_faithful}}",
				sectionType: constants.SectionTypePetition,
			},
		},
	},
	{
		name: "Funeral",
		fields: []fieldSeed{
			{name: "Deceased", property: "deceased", fieldType: constants.FieldTypePerson, required: true, keyPerson: true},
			{name: "Family Contact", property: "family_contact", fieldType: constants.FieldTypePerson},
			{name: "Funeral Mass", property: "funeral_mass", fieldType: constants.FieldTypeCalendarEvent, required: true, primary: true},
			{name: "---", property: "spacer_1", fieldType: constants.FieldTypeSpacer},
			{name: "First Reading", property: "first_reading", fieldType: constants.FieldTypeContent, tags: []string{"funeral", "first-reading"}},
			{name: "Prayers of the Faithful", property: "prayers_of_the_faithful", fieldType: constants.FieldTypePetition, tags: []string{"funeral", "prayers-of-the-faithful"}},
			{name: "Special Instructions", property: "special_instructions", fieldType: constants.FieldTypeRichText},
		},
		scriptName: "Funeral Worship Aid",
		sections: []sectionSeed{
			{
				name: "Cover",
				content: "# Mass of Christian Burial\n\n**{{deceased.full_name}}**\n\n{{funeral_mass.date}}\n\n" +
					"Let us pray for {{deceased | him | her}} and for all who mourn.",
				pageBreak: true,
			},
			{
				name:    "First Reading",
				content: "{{first_reading}}\n\n{red}The word of the Lord.{/red}",
			},
			{
				name:        "Prayers of the Faithful",
				content:     "{{prayers_of_the_faithful}}",
				sectionType: constants.SectionTypePetition,
			},
		},
	},
}

// EnsureStarterData creates the sample parish and its starter event types.
// Event types that already exist for the parish are left untouched.
func EnsureStarterData(repos Repositories, parishName string) error {
	parish, err := repos.Parishes.GetByID(SampleParishID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		parish = &models.Parish{ID: SampleParishID, Name: parishName}
		if err := repos.Parishes.Create(parish); err != nil {
			return fmt.Errorf("failed to create sample parish: %w", err)
		}
		logger.Info("Created sample parish", map[string]interface{}{"id": parish.ID, "name": parish.Name})
	case err != nil:
		return fmt.Errorf("failed to load sample parish: %w", err)
	}

	existing, err := repos.EventTypes.GetAll(parish.ID)
	if err != nil {
		return fmt.Errorf("failed to list event types: %w", err)
	}
	present := make(map[string]bool, len(existing))
	for _, eventType := range existing {
		present[eventType.Slug] = true
	}

	for _, starter := range starterEventTypes {
		slug := utils.GenerateSlug(starter.name)
		if present[slug] {
			logger.Info("Starter event type already present", map[string]interface{}{"slug": slug})
			continue
		}
		if err := createEventType(repos, parish.ID, slug, starter); err != nil {
			return err
		}
	}

	return nil
}

func createEventType(repos Repositories, parishID uuid.UUID, slug string, starter eventTypeSeed) error {
	eventType := &models.EventType{ParishID: parishID, Name: starter.name, Slug: slug}
	if err := repos.EventTypes.Create(eventType); err != nil {
		return fmt.Errorf("failed to create %s event type: %w", starter.name, err)
	}

	for i, field := range starter.fields {
		definition := &models.InputFieldDefinition{
			EventTypeID:  eventType.ID,
			Name:         field.name,
			PropertyName: field.property,
			Type:         field.fieldType,
			Required:     field.required,
			IsKeyPerson:  field.keyPerson,
			IsPrimary:    field.primary,
			FilterTags:   models.StringList(field.tags),
			Order:        i,
		}
		if err := repos.Fields.Create(definition); err != nil {
			return fmt.Errorf("failed to create %s field %s: %w", starter.name, field.property, err)
		}
	}

	script := &models.Script{EventTypeID: eventType.ID, Name: starter.scriptName}
	for i, section := range starter.sections {
		sectionType := section.sectionType
		if sectionType == "" {
			sectionType = constants.SectionTypeText
		}
		script.Sections = append(script.Sections, models.Section{
			Name:           section.name,
			Content:        section.content,
			SectionType:    sectionType,
			PageBreakAfter: section.pageBreak,
			Order:          i,
		})
	}
	if err := repos.Scripts.Create(script); err != nil {
		return fmt.Errorf("failed to create %s script: %w", starter.name, err)
	}

	logger.Info("Created starter event type", map[string]interface{}{
		"slug":     slug,
		"fields":   len(starter.fields),
		"sections": len(starter.sections),
	})
	return nil
}
