package siteconfig

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"
)

// Document is a compiled site level configuration file.
type Document struct {
	LightweightComponents []Component `yaml:"lightweight_components"`
}

// Component is one lightweight component. Config is left untyped here; each
// output document decodes the subset of keys it needs.
type Component struct {
	ExecutionID int            `yaml:"execution_id"`
	Name        string         `yaml:"name"`
	Config      map[string]any `yaml:"config"`
}

func (c *Component) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		ExecutionID *int           `yaml:"execution_id"`
		Name        string         `yaml:"name"`
		Config      map[string]any `yaml:"config"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	if raw.ExecutionID == nil {
		return fmt.Errorf("line %d: execution_id is required", value.Line)
	}
	c.ExecutionID = *raw.ExecutionID
	c.Name = raw.Name
	c.Config = raw.Config
	return nil
}

// Keys returns the config keys in sorted order.
func (c Component) Keys() []string {
	keys := make([]string, 0, len(c.Config))
	for k := range c.Config {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// DisplayName falls back to the execution id when no name is set.
func (c Component) DisplayName() string {
	if strings.TrimSpace(c.Name) != "" {
		return c.Name
	}
	return fmt.Sprintf("component-%d", c.ExecutionID)
}

func (d Document) Validate() error {
	var mErr *multierror.Error
	if len(d.LightweightComponents) == 0 {
		mErr = multierror.Append(mErr, errors.New("lightweight_components must list at least one component"))
	}

	seen := map[int]int{}
	for i, c := range d.LightweightComponents {
		prefix := fmt.Sprintf("lightweight_components[%d]", i)
		if c.Config == nil {
			mErr = multierror.Append(mErr, fmt.Errorf("%s.config is required", prefix))
		}
		if first, ok := seen[c.ExecutionID]; ok {
			mErr = multierror.Append(mErr, fmt.Errorf("%s: %w %d, first defined at lightweight_components[%d]", prefix, ErrDuplicateRecord, c.ExecutionID, first))
			continue
		}
		seen[c.ExecutionID] = i
	}

	if err := mErr.ErrorOrNil(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	return nil
}

// Select returns the single component whose execution_id equals id.
func (d Document) Select(id int) (Component, error) {
	var match Component
	found := 0
	for _, c := range d.LightweightComponents {
		if c.ExecutionID != id {
			continue
		}
		if found == 0 {
			match = c
		}
		found++
	}
	switch {
	case found == 0:
		return Component{}, fmt.Errorf("%w: execution_id %d", ErrRecordNotFound, id)
	case found > 1:
		return Component{}, fmt.Errorf("%w: %d matches %d components", ErrDuplicateRecord, id, found)
	}
	return match, nil
}

// IDs lists execution ids in input order.
func (d Document) IDs() []int {
	ids := make([]int, 0, len(d.LightweightComponents))
	for _, c := range d.LightweightComponents {
		ids = append(ids, c.ExecutionID)
	}
	return ids
}

func ParseExecutionID(input string) (int, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidExecutionID)
	}
	id, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidExecutionID, input)
	}
	return id, nil
}
