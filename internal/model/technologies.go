package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Technologies is the comma-separated technology list of a project.
// On input it accepts either a string or a list of names.
type Technologies string

// NewTechnologies joins names into the stored comma-separated form.
func NewTechnologies(names []string) Technologies {
	cleaned := make([]string, 0, len(names))
	for _, name := range names {
		if name = strings.TrimSpace(name); name != "" {
			cleaned = append(cleaned, name)
		}
	}
	return Technologies(strings.Join(cleaned, ", "))
}

// List splits the value on commas and trims each name.
func (t Technologies) List() []string {
	parts := strings.Split(string(t), ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			names = append(names, p)
		}
	}
	return names
}

func (t *Technologies) UnmarshalJSON(b []byte) error {
	trimmed := strings.TrimSpace(string(b))
	if trimmed == "null" {
		*t = ""
		return nil
	}
	if strings.HasPrefix(trimmed, "[") {
		var names []string
		if err := json.Unmarshal(b, &names); err != nil {
			return fmt.Errorf("technologies: %w", err)
		}
		*t = NewTechnologies(names)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("technologies must be a string or a list: %w", err)
	}
	*t = Technologies(strings.TrimSpace(s))
	return nil
}
