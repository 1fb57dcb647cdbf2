package siteconfig

import (
	"fmt"
	"maps"
	"strings"
)

// ParseOverrides turns key=value pairs into a map. Each input may itself hold
// several comma separated pairs, so a value can never contain a comma. Later
// pairs win over earlier ones for the same key.
func ParseOverrides(inputs []string) (map[string]string, error) {
	overrides := map[string]string{}
	for _, input := range inputs {
		if strings.TrimSpace(input) == "" {
			continue
		}
		for _, pair := range strings.Split(input, ",") {
			parts := strings.SplitN(strings.TrimSpace(pair), "=", 2)
			if len(parts) != 2 || strings.TrimSpace(parts[0]) == "" || parts[1] == "" {
				return nil, fmt.Errorf("%w %q, expected key=value", ErrInvalidOverride, pair)
			}
			overrides[strings.TrimSpace(parts[0])] = parts[1]
		}
	}
	return overrides, nil
}

// WithOverrides returns a copy of c whose config has the overrides applied.
// The receiver's config map is left untouched.
func (c Component) WithOverrides(overrides map[string]string) Component {
	if len(overrides) == 0 {
		return c
	}
	config := maps.Clone(c.Config)
	if config == nil {
		config = map[string]any{}
	}
	for k, v := range overrides {
		config[k] = v
	}
	c.Config = config
	return c
}
