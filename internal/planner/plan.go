package planner

import (
	"fmt"
	"sort"

	"github.com/bayneri/siteconf/internal/export/sitexml"
	"github.com/bayneri/siteconf/internal/hadoop"
	"github.com/bayneri/siteconf/internal/siteconfig"
	"github.com/hashicorp/go-hclog"
)

type Plan struct {
	ExecutionID int
	Component   string
	Overrides   map[string]string
	Documents   []sitexml.Document
}

type Options struct {
	Overrides map[string]string
	Logger    hclog.Logger
}

// Build selects the component for executionID and maps its config onto the
// three site documents. Every site is decoded before the plan is returned,
// so a plan always holds a complete set of documents.
func Build(doc siteconfig.Document, executionID int, opts Options) (Plan, error) {
	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	component, err := doc.Select(executionID)
	if err != nil {
		return Plan{}, err
	}
	component = component.WithOverrides(opts.Overrides)
	logger.Debug("selected lightweight component",
		"execution_id", component.ExecutionID,
		"name", component.DisplayName(),
		"keys", len(component.Config),
		"overrides", len(opts.Overrides))

	sites, err := hadoop.DecodeAll(component.Config)
	if err != nil {
		return Plan{}, fmt.Errorf("execution_id %d: %w", executionID, err)
	}

	return Plan{
		ExecutionID: component.ExecutionID,
		Component:   component.DisplayName(),
		Overrides:   opts.Overrides,
		Documents:   sites.Documents(),
	}, nil
}

// Document returns the planned document with the given name.
func (p Plan) Document(name string) (sitexml.Document, error) {
	for _, doc := range p.Documents {
		if doc.Name == name {
			return doc, nil
		}
	}
	return sitexml.Document{}, fmt.Errorf("unknown site document %q", name)
}

func SortedOverrides(overrides map[string]string) []string {
	var out []string
	for k, v := range overrides {
		out = append(out, fmt.Sprintf("%s=%s", k, v))
	}
	sort.Strings(out)
	return out
}
