package naming

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Settings maps every naming key to a user-editable pattern.
type Settings struct {
	// Version is the key-set revision the file was written with.
	Version int `json:"version" yaml:"version"`

	// Names holds the identifier patterns, one per generated artifact kind.
	Names map[Key]string `json:"names" yaml:"names"`

	// Descriptions holds the free-text comment templates.
	Descriptions map[Key]string `json:"descriptions" yaml:"descriptions"`
}

// DefaultSettings returns settings with every key at its default.
func DefaultSettings() *Settings {
	s := &Settings{}
	s.applyDefaults()
	return s
}

// applyDefaults fills in every key missing from s.
func (s *Settings) applyDefaults() {
	if s.Names == nil {
		s.Names = make(map[Key]string)
	}
	if s.Descriptions == nil {
		s.Descriptions = make(map[Key]string)
	}
	for _, d := range NameDefinitions() {
		if _, ok := s.Names[d.Key]; !ok {
			s.Names[d.Key] = d.Default
		}
	}
	for _, d := range DescriptionDefinitions() {
		if _, ok := s.Descriptions[d.Key]; !ok {
			s.Descriptions[d.Key] = d.Default
		}
	}
	s.Version = Version
}

// Clone returns a deep copy of s.
func (s *Settings) Clone() *Settings {
	c := &Settings{
		Version:      s.Version,
		Names:        make(map[Key]string, len(s.Names)),
		Descriptions: make(map[Key]string, len(s.Descriptions)),
	}
	for k, v := range s.Names {
		c.Names[k] = v
	}
	for k, v := range s.Descriptions {
		c.Descriptions[k] = v
	}
	return c
}

// LoadFile reads settings from a JSON or YAML file (chosen by extension) and
// completes missing keys with their defaults.
func LoadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading naming settings")
	}

	var s Settings
	if isYAML(path) {
		err = yaml.Unmarshal(data, &s)
	} else {
		err = json.Unmarshal(data, &s)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "parsing naming settings %s", path)
	}

	s.applyDefaults()
	return &s, nil
}

// Save writes s as JSON or YAML depending on the extension of path.
func (s *Settings) Save(path string) error {
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(s)
	} else {
		data, err = json.MarshalIndent(s, "", "  ")
	}
	if err != nil {
		return errors.Wrap(err, "marshaling naming settings")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(err, "writing naming settings")
	}
	return nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

// Unknown returns the keys in s that this version does not define, sorted.
// They are kept so that files written by newer versions survive a round
// trip, but they are never used.
func (s *Settings) Unknown() []Key {
	var unknown []Key
	names := NameDefinitions()
	for k := range s.Names {
		if _, ok := lookup(names, k); !ok {
			unknown = append(unknown, k)
		}
	}
	descs := DescriptionDefinitions()
	for k := range s.Descriptions {
		if _, ok := lookup(descs, k); !ok {
			unknown = append(unknown, "descriptions."+k)
		}
	}
	sort.Slice(unknown, func(i, j int) bool { return unknown[i] < unknown[j] })
	return unknown
}

// Validate checks every known pattern. The returned error lists all invalid
// keys.
func (s *Settings) Validate() error {
	_, err := s.Compile()
	return err
}

// Compile validates every known pattern and returns the compiled scheme.
func (s *Settings) Compile() (*Scheme, error) {
	scheme := &Scheme{
		names:        make(map[Key]*Pattern),
		descriptions: make(map[Key]*Description),
	}
	var problems []string

	for _, d := range NameDefinitions() {
		raw, ok := s.Names[d.Key]
		if !ok {
			raw = d.Default
		}
		p, err := ParsePattern(raw, d.Scope)
		if err != nil {
			problems = append(problems, string(d.Key)+": "+err.Error())
			continue
		}
		scheme.names[d.Key] = p
	}
	for _, d := range DescriptionDefinitions() {
		raw, ok := s.Descriptions[d.Key]
		if !ok {
			raw = d.Default
		}
		p, err := ParseDescription(raw, d.Scope)
		if err != nil {
			problems = append(problems, "descriptions."+string(d.Key)+": "+err.Error())
			continue
		}
		scheme.descriptions[d.Key] = p
	}

	if len(problems) > 0 {
		return nil, errors.Wrapf(ErrPattern, "%d invalid pattern(s):\n  %s", len(problems), strings.Join(problems, "\n  "))
	}
	return scheme, nil
}
