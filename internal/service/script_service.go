package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"parish-liturgy-backend/internal/constants"
	"parish-liturgy-backend/internal/models"
	"parish-liturgy-backend/internal/repository"
	"parish-liturgy-backend/internal/sanitizer"
	"parish-liturgy-backend/internal/script"
	"parish-liturgy-backend/pkg/cache"
	"parish-liturgy-backend/pkg/logger"
	"parish-liturgy-backend/pkg/validator"
)

type ScriptService struct {
	scriptRepo repository.ScriptRepository
	cache      *cache.Cache
}

func NewScriptService(scriptRepo repository.ScriptRepository, cacheService *cache.Cache) *ScriptService {
	return &ScriptService{
		scriptRepo: scriptRepo,
		cache:      cacheService,
	}
}

// GetScript returns the script with its sections in render order.
func (s *ScriptService) GetScript(id uuid.UUID) (*models.Script, error) {
	if s.cache.Enabled() {
		var cached models.Script
		if err := s.cache.GetCachedScript(id, &cached); err == nil {
			return &cached, nil
		}
	}

	loaded, err := s.scriptRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrScriptNotFound
		}
		return nil, fmt.Errorf("failed to load script: %w", err)
	}
	loaded.Sections = script.SortSections(loaded.Sections)

	if s.cache.Enabled() {
		if err := s.cache.CacheScript(id, loaded); err != nil {
			logger.Warn("Failed to cache script", map[string]interface{}{"script_id": id.String(), "error": err.Error()})
		}
	}

	return loaded, nil
}

// CreateSection sanitizes the section and appends it after the existing
// sections unless an explicit order is given.
func (s *ScriptService) CreateSection(scriptID uuid.UUID, req models.CreateSectionRequest) (*models.Section, error) {
	if _, err := s.scriptRepo.GetByID(scriptID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrScriptNotFound
		}
		return nil, fmt.Errorf("failed to load script: %w", err)
	}

	sectionType, err := sectionTypeOf(req.SectionType)
	if err != nil {
		return nil, err
	}

	order := 0
	if req.Order != nil {
		order = *req.Order
	} else if order, err = s.scriptRepo.NextSectionOrder(scriptID); err != nil {
		return nil, fmt.Errorf("failed to compute section order: %w", err)
	}

	section := &models.Section{
		ScriptID:       scriptID,
		Name:           validator.NormalizeSpaces(sanitizer.TextInput(req.Name)),
		Content:        sanitizer.SectionContent(req.Content),
		SectionType:    sectionType,
		PageBreakAfter: req.PageBreakAfter,
		Order:          order,
	}

	if err := s.scriptRepo.CreateSection(section); err != nil {
		return nil, fmt.Errorf("failed to create section: %w", err)
	}

	s.invalidate(scriptID)
	return section, nil
}

func (s *ScriptService) UpdateSection(id uuid.UUID, req models.UpdateSectionRequest) (*models.Section, error) {
	section, err := s.scriptRepo.GetSection(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSectionNotFound
		}
		return nil, fmt.Errorf("failed to load section: %w", err)
	}

	if req.Name != nil {
		section.Name = validator.NormalizeSpaces(sanitizer.TextInput(*req.Name))
	}
	if req.Content != nil {
		section.Content = sanitizer.SectionContent(*req.Content)
	}
	if req.SectionType != nil {
		sectionType, err := sectionTypeOf(*req.SectionType)
		if err != nil {
			return nil, err
		}
		section.SectionType = sectionType
	}
	if req.PageBreakAfter != nil {
		section.PageBreakAfter = *req.PageBreakAfter
	}
	if req.Order != nil {
		section.Order = *req.Order
	}

	if err := s.scriptRepo.UpdateSection(section); err != nil {
		return nil, fmt.Errorf("failed to update section: %w", err)
	}

	s.invalidate(section.ScriptID)
	return section, nil
}

func (s *ScriptService) DeleteSection(id uuid.UUID) error {
	section, err := s.scriptRepo.GetSection(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrSectionNotFound
		}
		return fmt.Errorf("failed to load section: %w", err)
	}

	if err := s.scriptRepo.DeleteSection(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrSectionNotFound
		}
		return fmt.Errorf("failed to delete section: %w", err)
	}

	s.invalidate(section.ScriptID)
	return nil
}

// ReorderSections applies the order of req.SectionIDs. The list must name
// every section of the script exactly once.
func (s *ScriptService) ReorderSections(scriptID uuid.UUID, req models.ReorderSectionsRequest) (*models.Script, error) {
	current, err := s.scriptRepo.GetByID(scriptID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrScriptNotFound
		}
		return nil, fmt.Errorf("failed to load script: %w", err)
	}

	if !sameSectionSet(current.Sections, req.SectionIDs) {
		return nil, ErrInvalidSectionList
	}

	if err := s.scriptRepo.ReorderSections(scriptID, req.SectionIDs); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidSectionList
		}
		return nil, fmt.Errorf("failed to reorder sections: %w", err)
	}

	s.invalidate(scriptID)
	return s.GetScript(scriptID)
}

func (s *ScriptService) invalidate(scriptID uuid.UUID) {
	if err := s.cache.InvalidateScript(scriptID); err != nil {
		logger.Warn("Failed to invalidate script cache", map[string]interface{}{"script_id": scriptID.String(), "error": err.Error()})
	}
}

func sectionTypeOf(value string) (string, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	switch value {
	case "":
		return constants.SectionTypeText, nil
	case constants.SectionTypeText, constants.SectionTypePetition:
		return value, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSectionType, value)
}

func sameSectionSet(sections []models.Section, ids []uuid.UUID) bool {
	if len(sections) != len(ids) {
		return false
	}
	remaining := make(map[uuid.UUID]struct{}, len(sections))
	for _, section := range sections {
		remaining[section.ID] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := remaining[id]; !ok {
			return false
		}
		delete(remaining, id)
	}
	return len(remaining) == 0
}
