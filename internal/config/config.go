// Package config holds the audit configuration: label spaces, keyword rules,
// escalation tables, and queue tuning. Everything here is data — the engine
// receives it at construction time and nothing reads it as global state.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the full audit configuration.
type Config struct {
	Labels     Labels     `yaml:"labels"`
	Rules      []Rule     `yaml:"rules"`
	Escalation Escalation `yaml:"escalation"`
	Weights    Weights    `yaml:"weights"`
	Queue      Queue      `yaml:"queue"`
}

// Labels defines the three ordered label spaces. Index 0 is the most
// severe/urgent value of each space.
type Labels struct {
	Intent  []string `yaml:"intent"`
	Urgency []string `yaml:"urgency"`
	Events  []string `yaml:"events"`
}

// Rule is one declarative keyword rule. Pattern is a regular expression
// matched case-insensitively against canonicalized text.
type Rule struct {
	Name          string   `yaml:"name"`
	Pattern       string   `yaml:"pattern"`
	SuggestEvents []string `yaml:"suggest_events"`
	MinIntent     string   `yaml:"min_intent"`
	MinUrgency    string   `yaml:"min_urgency"`
}

// Escalation configures the two rule-independent escalation sources.
type Escalation struct {
	// HeavyMinUrgency maps heavy events to the minimum urgency they imply.
	HeavyMinUrgency map[string]string `yaml:"heavy_min_urgency"`
	// PolicyHeavyEvents is the event subset that makes a least-severe-intent
	// record suspicious on its own.
	PolicyHeavyEvents []string `yaml:"policy_heavy_events"`
}

// Weights are the priority-score weights per reason category.
type Weights struct {
	Leakage    int `yaml:"leakage"`
	Problem    int `yaml:"problem"`
	Duplicate  int `yaml:"duplicate"`
	Policy     int `yaml:"policy"`
	Escalation int `yaml:"escalation"`
	Keyword    int `yaml:"keyword"`
}

// Queue holds output-queue tuning.
type Queue struct {
	// Max caps the sorted queue length. 0 = unlimited.
	Max int `yaml:"max"`
}

// Load returns the default configuration overlaid with the YAML file at
// path. An empty path returns the defaults unchanged. Each section present
// in the file replaces the corresponding default wholesale — a retuned rule
// list or escalation table never merges with the built-in one.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	var over Config
	if err := yaml.Unmarshal(data, &over); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.apply(over)
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// apply overlays the sections set in over onto c.
func (c *Config) apply(over Config) {
	if over.Labels.Intent != nil {
		c.Labels.Intent = over.Labels.Intent
	}
	if over.Labels.Urgency != nil {
		c.Labels.Urgency = over.Labels.Urgency
	}
	if over.Labels.Events != nil {
		c.Labels.Events = over.Labels.Events
	}
	if over.Rules != nil {
		c.Rules = over.Rules
	}
	if over.Escalation.HeavyMinUrgency != nil {
		c.Escalation.HeavyMinUrgency = over.Escalation.HeavyMinUrgency
	}
	if over.Escalation.PolicyHeavyEvents != nil {
		c.Escalation.PolicyHeavyEvents = over.Escalation.PolicyHeavyEvents
	}
	if over.Weights != (Weights{}) {
		c.Weights = over.Weights
	}
	if over.Queue.Max != 0 {
		c.Queue.Max = over.Queue.Max
	}
}

// Validate checks internal consistency: non-empty spaces and rule thresholds
// that reference defined labels. Pattern compilation is checked later, when
// the rule engine is built.
func (c Config) Validate() error {
	if len(c.Labels.Intent) == 0 || len(c.Labels.Urgency) == 0 {
		return fmt.Errorf("intent and urgency spaces must be non-empty")
	}
	intents := memberSet(c.Labels.Intent)
	urgencies := memberSet(c.Labels.Urgency)
	events := memberSet(c.Labels.Events)

	for _, r := range c.Rules {
		if r.Name == "" || r.Pattern == "" {
			return fmt.Errorf("rule %q: name and pattern are required", r.Name)
		}
		if r.MinIntent != "" && !intents[r.MinIntent] {
			return fmt.Errorf("rule %s: unknown min_intent %q", r.Name, r.MinIntent)
		}
		if r.MinUrgency != "" && !urgencies[r.MinUrgency] {
			return fmt.Errorf("rule %s: unknown min_urgency %q", r.Name, r.MinUrgency)
		}
		for _, ev := range r.SuggestEvents {
			if !events[ev] {
				return fmt.Errorf("rule %s: unknown suggest event %q", r.Name, ev)
			}
		}
	}
	for ev, min := range c.Escalation.HeavyMinUrgency {
		if !events[ev] {
			return fmt.Errorf("escalation: unknown heavy event %q", ev)
		}
		if !urgencies[min] {
			return fmt.Errorf("escalation: unknown urgency %q for event %s", min, ev)
		}
	}
	for _, ev := range c.Escalation.PolicyHeavyEvents {
		if !events[ev] {
			return fmt.Errorf("escalation: unknown policy heavy event %q", ev)
		}
	}
	return nil
}

func memberSet(labels []string) map[string]bool {
	m := make(map[string]bool, len(labels))
	for _, l := range labels {
		m[l] = true
	}
	return m
}
