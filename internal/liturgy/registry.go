package liturgy

import (
	"fmt"
	"strings"
)

// Builder maps a module view to a document. Builders must not fail: missing
// relations are omitted from the output.
type Builder[T any] func(view T) *Document

// Template is one registered output variant of a module.
type Template[T any] struct {
	ID                 string
	Name               string
	Description        string
	SupportedLanguages []string
	Build              Builder[T]
}

// TemplateInfo describes a template without its builder.
type TemplateInfo struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Description        string   `json:"description"`
	SupportedLanguages []string `json:"supported_languages"`
	Default            bool     `json:"default"`
}

// TemplateRegistry is an immutable set of templates for one module. Lookups
// of unknown IDs fall back to the default template.
type TemplateRegistry[T any] struct {
	module    string
	defaultID string
	templates map[string]Template[T]
	order     []string
}

// NewTemplateRegistry validates the templates and returns a registry. The
// default ID must name one of them.
func NewTemplateRegistry[T any](module, defaultID string, templates ...Template[T]) (*TemplateRegistry[T], error) {
	module = strings.TrimSpace(module)
	if module == "" {
		return nil, fmt.Errorf("module is empty")
	}

	registry := &TemplateRegistry[T]{
		module:    module,
		defaultID: normaliseTemplateID(defaultID),
		templates: make(map[string]Template[T], len(templates)),
		order:     make([]string, 0, len(templates)),
	}

	for _, tmpl := range templates {
		id := normaliseTemplateID(tmpl.ID)
		if id == "" {
			return nil, fmt.Errorf("%s: template id is empty", module)
		}
		if tmpl.Build == nil {
			return nil, fmt.Errorf("%s: builder is nil for template %s", module, id)
		}
		if _, exists := registry.templates[id]; exists {
			return nil, fmt.Errorf("%s: duplicate template %s", module, id)
		}
		tmpl.ID = id
		tmpl.SupportedLanguages = append([]string(nil), tmpl.SupportedLanguages...)
		registry.templates[id] = tmpl
		registry.order = append(registry.order, id)
	}

	if _, ok := registry.templates[registry.defaultID]; !ok {
		return nil, fmt.Errorf("%s: default template %q is not registered", module, defaultID)
	}

	return registry, nil
}

// MustTemplateRegistry is NewTemplateRegistry for statically known templates.
func MustTemplateRegistry[T any](module, defaultID string, templates ...Template[T]) *TemplateRegistry[T] {
	registry, err := NewTemplateRegistry(module, defaultID, templates...)
	if err != nil {
		panic(err)
	}
	return registry
}

func (r *TemplateRegistry[T]) Module() string {
	return r.module
}

func (r *TemplateRegistry[T]) DefaultID() string {
	return r.defaultID
}

// Lookup reports whether id names a registered template.
func (r *TemplateRegistry[T]) Lookup(id string) (Template[T], bool) {
	tmpl, ok := r.templates[normaliseTemplateID(id)]
	return tmpl, ok
}

// Resolve returns the template for id, or the default template.
func (r *TemplateRegistry[T]) Resolve(id string) Template[T] {
	if tmpl, ok := r.Lookup(id); ok {
		return tmpl
	}
	return r.templates[r.defaultID]
}

// Build renders view with the resolved template and stamps the document with
// the module and the template actually used.
func (r *TemplateRegistry[T]) Build(view T, templateID string) *Document {
	tmpl := r.Resolve(templateID)
	doc := tmpl.Build(view)
	if doc == nil {
		doc = &Document{}
	}
	doc.Type = r.module
	doc.Template = tmpl.ID
	if doc.Sections == nil {
		doc.Sections = []Section{}
	}
	return doc
}

// Templates lists the registered templates in registration order.
func (r *TemplateRegistry[T]) Templates() []TemplateInfo {
	out := make([]TemplateInfo, 0, len(r.order))
	for _, id := range r.order {
		tmpl := r.templates[id]
		out = append(out, TemplateInfo{
			ID:                 tmpl.ID,
			Name:               tmpl.Name,
			Description:        tmpl.Description,
			SupportedLanguages: append([]string(nil), tmpl.SupportedLanguages...),
			Default:            id == r.defaultID,
		})
	}
	return out
}

func normaliseTemplateID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}
