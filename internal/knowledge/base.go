package knowledge

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed knowledge.yaml
var defaultYAML []byte

// document is the on-disk layout of a knowledge base.
type document struct {
	Rules      []Rule            `yaml:"rules"`
	Treatments map[string]string `yaml:"treatments"`
}

// Base is an immutable rule and treatment table. Construct it with Default,
// Load or LoadFile; accessors hand out copies.
type Base struct {
	rules      []Rule
	treatments map[string]string
}

// Default returns the embedded knowledge base. The embedded document is
// validated by tests, so a failure here is a build defect.
func Default() *Base {
	b, err := Load(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("load embedded knowledge base: %v", err))
	}
	return b
}

// LoadFile reads a YAML knowledge base from path.
func LoadFile(path string) (*Base, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read knowledge base: %w", err)
	}
	b, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// Load parses and validates a YAML knowledge base.
func Load(data []byte) (*Base, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse knowledge base: %w", err)
	}
	return New(doc.Rules, doc.Treatments)
}

// New builds a Base from in-memory tables. Symptoms are normalized and
// the tables are copied, so later changes to the arguments have no effect.
func New(rules []Rule, treatments map[string]string) (*Base, error) {
	b := &Base{
		rules:      make([]Rule, 0, len(rules)),
		treatments: make(map[string]string, len(treatments)),
	}
	for _, r := range rules {
		symptoms := make([]string, 0, len(r.Symptoms))
		for _, s := range r.Symptoms {
			symptoms = append(symptoms, Normalize(s))
		}
		b.rules = append(b.rules, Rule{Symptoms: symptoms, Disease: r.Disease})
	}
	for disease, advice := range treatments {
		b.treatments[disease] = advice
	}

	if err := validate(b.rules, b.treatments); err != nil {
		return nil, err
	}
	return b, nil
}

// Rules returns the rule table in evaluation order.
func (b *Base) Rules() []Rule {
	out := make([]Rule, len(b.rules))
	for i, r := range b.rules {
		out[i] = Rule{
			Symptoms: append([]string(nil), r.Symptoms...),
			Disease:  r.Disease,
		}
	}
	return out
}

// Treatment returns the advice for disease.
func (b *Base) Treatment(disease string) (string, error) {
	advice, ok := b.treatments[disease]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownDisease, disease)
	}
	return advice, nil
}

// Entries returns every rule with its treatment, in evaluation order.
func (b *Base) Entries() []Entry {
	rules := b.Rules()
	entries := make([]Entry, 0, len(rules))
	for _, r := range rules {
		entries = append(entries, Entry{Rule: r, Treatment: b.treatments[r.Disease]})
	}
	return entries
}

// Len returns the number of rules.
func (b *Base) Len() int {
	return len(b.rules)
}
