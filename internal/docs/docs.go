// Package docs holds the static upstream API reference shown on the documentation screen.
package docs

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed reference.yaml
var referenceYAML []byte

type Param struct {
	Name        string `yaml:"name" json:"name"`
	In          string `yaml:"in" json:"in"`
	Required    bool   `yaml:"required" json:"required"`
	Description string `yaml:"description" json:"description"`
}

type Endpoint struct {
	Method      string  `yaml:"method" json:"method"`
	Path        string  `yaml:"path" json:"path"`
	Description string  `yaml:"description" json:"description"`
	Public      bool    `yaml:"public" json:"public"`
	Params      []Param `yaml:"params" json:"params,omitempty"`
	Example     string  `yaml:"example" json:"example"`
	Curl        string  `yaml:"-" json:"curl"`
}

type Section struct {
	ID        string     `yaml:"id" json:"id"`
	Title     string     `yaml:"title" json:"title"`
	Summary   string     `yaml:"summary" json:"summary"`
	Endpoints []Endpoint `yaml:"endpoints" json:"endpoints"`
}

// Summary is a section in its collapsed form.
type Summary struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Summary   string `json:"summary"`
	Endpoints int    `json:"endpoints"`
}

type Reference struct {
	BaseURL  string    `yaml:"-" json:"base_url"`
	Sections []Section `yaml:"sections" json:"sections"`
}

// Load parses the embedded reference and renders a curl snippet for every endpoint.
func Load(baseURL string) (*Reference, error) {
	return parse(referenceYAML, baseURL)
}

func parse(data []byte, baseURL string) (*Reference, error) {
	var ref Reference
	if err := yaml.Unmarshal(data, &ref); err != nil {
		return nil, fmt.Errorf("parse api reference: %w", err)
	}
	ref.BaseURL = strings.TrimSuffix(baseURL, "/")
	seen := make(map[string]struct{}, len(ref.Sections))
	for i := range ref.Sections {
		s := &ref.Sections[i]
		if _, dup := seen[s.ID]; dup || s.ID == "" {
			return nil, fmt.Errorf("api reference: bad section id %q", s.ID)
		}
		seen[s.ID] = struct{}{}
		for j := range s.Endpoints {
			s.Endpoints[j].Curl = curl(ref.BaseURL, s.Endpoints[j])
		}
	}
	return &ref, nil
}

func (r *Reference) Collapsed() []Summary {
	out := make([]Summary, 0, len(r.Sections))
	for _, s := range r.Sections {
		out = append(out, Summary{ID: s.ID, Title: s.Title, Summary: s.Summary, Endpoints: len(s.Endpoints)})
	}
	return out
}

func (r *Reference) Section(id string) (*Section, bool) {
	for i := range r.Sections {
		if r.Sections[i].ID == id {
			return &r.Sections[i], true
		}
	}
	return nil, false
}

func curl(baseURL string, e Endpoint) string {
	var (
		query []string
		body  []string
	)
	for _, p := range e.Params {
		placeholder := "<" + strings.ToUpper(p.Name) + ">"
		switch p.In {
		case "query":
			if p.Required {
				query = append(query, p.Name+"="+placeholder)
			}
		case "body":
			body = append(body, fmt.Sprintf("%q: %q", p.Name, placeholder))
		}
	}
	sort.Strings(body)

	url := baseURL + e.Path
	if len(query) > 0 {
		url += "?" + strings.Join(query, "&")
	}
	var b strings.Builder
	fmt.Fprintf(&b, "curl -X %s \"%s\"", e.Method, url)
	if !e.Public {
		b.WriteString(" \\\n  -H \"Authorization: Bearer <API_KEY>\"")
	}
	if len(body) > 0 {
		b.WriteString(" \\\n  -H \"Content-Type: application/json\"")
		fmt.Fprintf(&b, " \\\n  -d '{%s}'", strings.Join(body, ", "))
	}
	return b.String()
}
