// Package knowledge holds the structured profile the assistant answers from.
package knowledge

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed profile.yaml
var defaultProfile []byte

type Personal struct {
	Name      string `yaml:"name" json:"name"`
	Title     string `yaml:"title" json:"title"`
	Location  string `yaml:"location" json:"location"`
	Email     string `yaml:"email" json:"email"`
	Phone     string `yaml:"phone" json:"phone"`
	Education string `yaml:"education" json:"education"`
	GitHub    string `yaml:"github" json:"github"`
	LinkedIn  string `yaml:"linkedin" json:"linkedin"`
}

type Skills struct {
	ProgrammingLanguages []string `yaml:"programmingLanguages" json:"programmingLanguages"`
	WebDevelopment       []string `yaml:"webDevelopment" json:"webDevelopment"`
	DataScience          []string `yaml:"dataScience" json:"dataScience"`
	AIML                 []string `yaml:"aiMl" json:"aiMl"`
	Concepts             []string `yaml:"concepts" json:"concepts"`
}

type Project struct {
	Title        string   `yaml:"title" json:"title"`
	Description  string   `yaml:"description" json:"description"`
	Technologies []string `yaml:"technologies" json:"technologies"`
	Category     string   `yaml:"category" json:"category"`
	Features     []string `yaml:"features" json:"features"`
	GitHub       string   `yaml:"github" json:"github"`
}

type Experience struct {
	Title            string   `yaml:"title" json:"title"`
	Company          string   `yaml:"company" json:"company"`
	Duration         string   `yaml:"duration" json:"duration"`
	Responsibilities []string `yaml:"responsibilities" json:"responsibilities"`
}

// Base is the full profile. Treat it as read-only once loaded.
type Base struct {
	Personal       Personal     `yaml:"personal" json:"personal"`
	Skills         Skills       `yaml:"skills" json:"skills"`
	Projects       []Project    `yaml:"projects" json:"projects"`
	Experience     []Experience `yaml:"experience" json:"experience"`
	Achievements   []string     `yaml:"achievements" json:"achievements"`
	Certifications []string     `yaml:"certifications" json:"certifications"`
}

// Default returns the embedded profile.
func Default() Base {
	b, err := Parse(defaultProfile)
	if err != nil {
		panic(fmt.Sprintf("knowledge: embedded profile: %v", err))
	}
	return b
}

// Parse decodes a YAML profile. Unknown keys are rejected so a typo in an
// override does not silently drop a section.
func Parse(raw []byte) (Base, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return Base{}, errors.New("knowledge: profile is empty")
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)

	var b Base
	if err := dec.Decode(&b); err != nil {
		return Base{}, fmt.Errorf("knowledge: decode profile: %w", err)
	}
	if err := b.Validate(); err != nil {
		return Base{}, err
	}
	return b, nil
}

// Validate checks the fields the assistant depends on for contact and
// project answers.
func (b Base) Validate() error {
	if strings.TrimSpace(b.Personal.Name) == "" {
		return errors.New("knowledge: personal.name is required")
	}
	if strings.TrimSpace(b.Personal.Email) == "" {
		return errors.New("knowledge: personal.email is required")
	}
	for i, p := range b.Projects {
		if strings.TrimSpace(p.Title) == "" {
			return fmt.Errorf("knowledge: projects[%d].title is required", i)
		}
	}
	return nil
}

// ProjectTitles lists project titles in profile order.
func (b Base) ProjectTitles() []string {
	out := make([]string, 0, len(b.Projects))
	for _, p := range b.Projects {
		out = append(out, p.Title)
	}
	return out
}
