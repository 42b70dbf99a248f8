// Package schema loads and validates the theme/sub-theme/keyword hierarchy
// that drives a screening run.
package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Schema is the full theme hierarchy, in file order.
type Schema struct {
	Meta   Meta    `yaml:"meta"`
	Themes []Theme `yaml:"themes"`
}

// Meta carries optional schema-level settings.
type Meta struct {
	// MatchFields names the corpus columns the schema was written against.
	// Used as the default text columns when the caller supplies none.
	MatchFields []string `yaml:"match_fields"`
}

// Theme is a top-level grouping of sub-themes.
type Theme struct {
	ID        string     `yaml:"theme_id"`
	Name      string     `yaml:"theme_name"`
	Subthemes []Subtheme `yaml:"subthemes"`
}

// Subtheme is a named concept defined by a literal keyword list.
type Subtheme struct {
	ID       string   `yaml:"subtheme_id"`
	Name     string   `yaml:"subtheme_name"`
	Keywords []string `yaml:"keywords"`
}

// Load reads and validates a schema YAML file.
func Load(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing schema: %w", err)
	}

	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// validate rejects malformed entries before any matching begins.
// A nil slice means the key was absent from the file and is an error; a
// present-but-empty list is allowed (an empty keyword list never matches).
func (s *Schema) validate() error {
	if s.Themes == nil {
		return fmt.Errorf("schema is missing the themes key")
	}

	for i, th := range s.Themes {
		if th.ID == "" {
			return fmt.Errorf("theme %d has no theme_id", i)
		}
		if th.Subthemes == nil {
			return fmt.Errorf("theme %q is missing the subthemes key", th.ID)
		}

		seen := make(map[string]bool, len(th.Subthemes))
		for j, st := range th.Subthemes {
			if st.ID == "" {
				return fmt.Errorf("theme %q: subtheme %d has no subtheme_id", th.ID, j)
			}
			if seen[st.ID] {
				return fmt.Errorf("theme %q: duplicate subtheme_id %q", th.ID, st.ID)
			}
			seen[st.ID] = true

			if st.Keywords == nil {
				return fmt.Errorf("subtheme %q is missing the keywords key", st.ID)
			}
			for k, kw := range st.Keywords {
				if kw == "" {
					return fmt.Errorf("subtheme %q: keyword %d is empty", st.ID, k)
				}
			}
		}
	}
	return nil
}

// NumSubthemes returns the total sub-theme count across all themes.
func (s *Schema) NumSubthemes() int {
	n := 0
	for _, th := range s.Themes {
		n += len(th.Subthemes)
	}
	return n
}
