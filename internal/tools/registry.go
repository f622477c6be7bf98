package tools

import (
	"fmt"
	"os"
	"sort"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/go_away_boilerplate/pkg/misc"
	pub_models "github.com/baalimago/tooloop/pkg/text/models"
	"golang.org/x/exp/maps"
)

// Registry of the tools available during a run. Populated once at startup and
// read-only afterwards.
type Registry struct {
	tools map[string]pub_models.LLMTool
}

// NewRegistry with the given tools, keyed on their specification name.
func NewRegistry(tools ...pub_models.LLMTool) (*Registry, error) {
	r := &Registry{tools: make(map[string]pub_models.LLMTool, len(tools))}
	debug := misc.Truthy(os.Getenv("DEBUG"))
	for _, t := range tools {
		name := t.Specification().Name
		if name == "" {
			return nil, fmt.Errorf("tool of type: %T has no name", t)
		}
		if _, exists := r.tools[name]; exists {
			return nil, fmt.Errorf("tool: '%v' registered twice", name)
		}
		if debug {
			ancli.Okf("adding tool to registry, name: %v\n", name)
		}
		r.tools[name] = t
	}
	return r, nil
}

// Get returns the tool registered under name.
func (r *Registry) Get(name string) (pub_models.LLMTool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// Names of all registered tools, sorted
func (r *Registry) Names() []string {
	names := maps.Keys(r.tools)
	sort.Strings(names)
	return names
}

// All returns a copy of all registered tools keyed by name.
func (r *Registry) All() map[string]pub_models.LLMTool {
	return maps.Clone(r.tools)
}

// Specifications of all tools, ordered by name
func (r *Registry) Specifications() []pub_models.Specification {
	specs := make([]pub_models.Specification, 0, len(r.tools))
	for _, name := range r.Names() {
		specs = append(specs, r.tools[name].Specification())
	}
	return specs
}

func (r *Registry) Len() int {
	return len(r.tools)
}
