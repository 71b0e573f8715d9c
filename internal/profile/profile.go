// Package profile holds the site owner's static biographical record.
package profile

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed profile.yaml
var document []byte

type Basic struct {
	Name           string `yaml:"name" json:"name"`
	LatinName      string `yaml:"latin_name" json:"latin_name"`
	University     string `yaml:"university" json:"university"`
	Faculty        string `yaml:"faculty" json:"faculty"`
	Department     string `yaml:"department" json:"department"`
	Course         string `yaml:"course" json:"course"`
	Specialization string `yaml:"specialization" json:"specialization"`
	Location       string `yaml:"location" json:"location"`
	// Summary is markdown.
	Summary string `yaml:"summary" json:"summary"`
}

type Research struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
}

// SkillLevel drives one skill bar; Level is a percentage.
type SkillLevel struct {
	Name  string `yaml:"name" json:"name"`
	Level int    `yaml:"level" json:"level"`
}

type Skills struct {
	Languages  []string     `yaml:"languages" json:"languages"`
	Frameworks []string     `yaml:"frameworks" json:"frameworks"`
	Tools      []string     `yaml:"tools" json:"tools"`
	Levels     []SkillLevel `yaml:"levels" json:"levels"`
}

type Experience struct {
	Period       string   `yaml:"period" json:"period"`
	Organization string   `yaml:"organization" json:"organization"`
	Role         string   `yaml:"role" json:"role"`
	Description  string   `yaml:"description" json:"description"`
	Tech         []string `yaml:"tech" json:"tech"`
}

type Project struct {
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description" json:"description"`
	Tech        []string `yaml:"tech" json:"tech"`
}

type Achievement struct {
	Event       string `yaml:"event" json:"event"`
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
	Result      string `yaml:"result" json:"result"`
}

type Contact struct {
	Address string `yaml:"address" json:"address"`
	Email   string `yaml:"email" json:"email"`
	Phone   string `yaml:"phone,omitempty" json:"phone,omitempty"`
	GitHub  string `yaml:"github" json:"github"`
}

// Profile is never mutated after Parse returns.
type Profile struct {
	Basic        Basic         `yaml:"basic" json:"basic"`
	Research     Research      `yaml:"research" json:"research"`
	Skills       Skills        `yaml:"skills" json:"skills"`
	Experience   []Experience  `yaml:"experience" json:"experience"`
	Projects     []Project     `yaml:"projects" json:"projects"`
	Achievements []Achievement `yaml:"achievements" json:"achievements"`
	Contact      Contact       `yaml:"contact" json:"contact"`
}

var defaultProfile = mustParse(document)

// Default returns the embedded profile. Callers must treat it as read-only.
func Default() *Profile {
	return defaultProfile
}

// Parse decodes a profile document and checks the fields the site relies on.
func Parse(data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decoding profile: %w", err)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *Profile) validate() error {
	if p.Basic.Name == "" {
		return fmt.Errorf("profile: basic.name is required")
	}
	if p.Research.Description == "" {
		return fmt.Errorf("profile: research.description is required")
	}
	if p.Contact.Email == "" {
		return fmt.Errorf("profile: contact.email is required")
	}
	for _, s := range p.Skills.Levels {
		if s.Level < 0 || s.Level > 100 {
			return fmt.Errorf("profile: skill %q level %d out of range", s.Name, s.Level)
		}
	}
	return nil
}

// AllSkills returns languages, frameworks and tools in that order.
func (s Skills) AllSkills() []string {
	out := make([]string, 0, len(s.Languages)+len(s.Frameworks)+len(s.Tools))
	out = append(out, s.Languages...)
	out = append(out, s.Frameworks...)
	return append(out, s.Tools...)
}

func mustParse(data []byte) *Profile {
	p, err := Parse(data)
	if err != nil {
		panic(err)
	}
	return p
}
