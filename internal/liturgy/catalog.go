package liturgy

import "parish-liturgy-backend/internal/constants"

// Catalog groups the template registry of every module. It is built once and
// passed to whoever selects builders.
type Catalog struct {
	Weddings      *TemplateRegistry[*WeddingView]
	Funerals      *TemplateRegistry[*FuneralView]
	GroupBaptisms *TemplateRegistry[*GroupBaptismView]
	MassRosters   *TemplateRegistry[*MassRosterView]
	EventScripts  *TemplateRegistry[*EventScriptView]
}

func NewCatalog() *Catalog {
	return &Catalog{
		Weddings:      NewWeddingRegistry(),
		Funerals:      NewFuneralRegistry(),
		GroupBaptisms: NewGroupBaptismRegistry(),
		MassRosters:   NewMassRosterRegistry(),
		EventScripts:  NewEventScriptRegistry(),
	}
}

// Templates lists the templates of module.
func (c *Catalog) Templates(module string) ([]TemplateInfo, bool) {
	switch module {
	case constants.ModuleWedding:
		return c.Weddings.Templates(), true
	case constants.ModuleFuneral:
		return c.Funerals.Templates(), true
	case constants.ModuleGroupBaptism:
		return c.GroupBaptisms.Templates(), true
	case constants.ModuleMassRoster:
		return c.MassRosters.Templates(), true
	case constants.ModuleEvent:
		return c.EventScripts.Templates(), true
	}
	return nil, false
}

// Modules lists the module names known to the catalog.
func (c *Catalog) Modules() []string {
	return []string{
		constants.ModuleWedding,
		constants.ModuleFuneral,
		constants.ModuleGroupBaptism,
		constants.ModuleMassRoster,
		constants.ModuleEvent,
	}
}
