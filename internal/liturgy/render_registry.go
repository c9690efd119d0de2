package liturgy

import (
	"fmt"
	"strings"
	"sync"
)

// RenderContext exposes the capabilities element renderers rely on.
type RenderContext interface {
	// RenderMarkdown converts user-entered text into sanitized HTML.
	RenderMarkdown(input string) string
}

// ElementRenderer renders one element to HTML. Class names are derived from
// prefix.
type ElementRenderer func(ctx RenderContext, prefix string, element Element) string

// Registry maps element types to their HTML renderers.
type Registry struct {
	mu        sync.RWMutex
	renderers map[ElementType]ElementRenderer
}

func NewRegistry() *Registry {
	return &Registry{renderers: make(map[ElementType]ElementRenderer)}
}

// Register associates renderer with elementType.
func (r *Registry) Register(elementType ElementType, renderer ElementRenderer) error {
	if r == nil {
		return fmt.Errorf("registry is nil")
	}

	elementType = ElementType(strings.TrimSpace(strings.ToLower(string(elementType))))
	if elementType == "" {
		return fmt.Errorf("element type is empty")
	}
	if renderer == nil {
		return fmt.Errorf("renderer is nil for type %s", elementType)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.renderers == nil {
		r.renderers = make(map[ElementType]ElementRenderer)
	}
	r.renderers[elementType] = renderer
	return nil
}

func (r *Registry) MustRegister(elementType ElementType, renderer ElementRenderer) {
	if err := r.Register(elementType, renderer); err != nil {
		panic(err)
	}
}

func (r *Registry) Get(elementType ElementType) (ElementRenderer, bool) {
	if r == nil {
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	renderer, ok := r.renderers[elementType]
	return renderer, ok
}

// Clone copies the registry so callers can override renderers without
// affecting the original.
func (r *Registry) Clone() *Registry {
	if r == nil {
		return NewRegistry()
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	cloned := NewRegistry()
	for key, renderer := range r.renderers {
		cloned.renderers[key] = renderer
	}
	return cloned
}

// DefaultRegistry returns a registry with a renderer for every element type.
func DefaultRegistry() *Registry {
	reg := NewRegistry()
	reg.MustRegister(ElementEventTitle, renderEventTitle)
	reg.MustRegister(ElementEventDateTime, renderEventDateTime)
	reg.MustRegister(ElementSectionTitle, renderSectionTitle)
	reg.MustRegister(ElementText, renderText)
	reg.MustRegister(ElementInfoRow, renderInfoRow)
	reg.MustRegister(ElementInfoRowWithAvatar, renderInfoRowWithAvatar)
	reg.MustRegister(ElementSpacer, renderSpacer)
	reg.MustRegister(ElementReadingTitle, renderReadingTitle)
	reg.MustRegister(ElementPericope, renderPericope)
	reg.MustRegister(ElementReaderName, renderReaderName)
	reg.MustRegister(ElementReadingText, renderReadingText)
	reg.MustRegister(ElementResponse, renderResponse)
	reg.MustRegister(ElementPriestDialogue, renderPriestDialogue)
	reg.MustRegister(ElementPetition, renderPetition)
	return reg
}
