package sieve

import "github.com/adiwarna/sieve/internal/config"

type options struct {
	configPath string
	mutators   []func(*config.Config)
	workers    int
}

// Option configures an Auditor.
type Option func(*options)

// WithConfigFile loads configuration from a YAML file before any other
// option is applied.
func WithConfigFile(path string) Option {
	return func(o *options) { o.configPath = path }
}

// WithLabelSpaces replaces the three ordered label spaces. Index 0 is the
// most severe value of each space.
func WithLabelSpaces(intent, urgency, events []string) Option {
	return func(o *options) {
		o.mutators = append(o.mutators, func(c *config.Config) {
			c.Labels = config.Labels{Intent: intent, Urgency: urgency, Events: events}
		})
	}
}

// WithRules replaces the keyword rule list.
func WithRules(rules ...Rule) Option {
	return func(o *options) {
		o.mutators = append(o.mutators, func(c *config.Config) {
			converted := make([]config.Rule, len(rules))
			for i, r := range rules {
				converted[i] = config.Rule{
					Name:          r.Name,
					Pattern:       r.Pattern,
					SuggestEvents: r.SuggestEvents,
					MinIntent:     r.MinIntent,
					MinUrgency:    r.MinUrgency,
				}
			}
			c.Rules = converted
		})
	}
}

// WithEscalation replaces the heavy-event escalation table and the event
// subset checked by the non-emergency policy.
func WithEscalation(heavyMinUrgency map[string]string, policyHeavyEvents []string) Option {
	return func(o *options) {
		o.mutators = append(o.mutators, func(c *config.Config) {
			c.Escalation = config.Escalation{
				HeavyMinUrgency:   heavyMinUrgency,
				PolicyHeavyEvents: policyHeavyEvents,
			}
		})
	}
}

// WithMaxQueue caps the queue length. 0 = unlimited.
func WithMaxQueue(n int) Option {
	return func(o *options) {
		o.mutators = append(o.mutators, func(c *config.Config) { c.Queue.Max = n })
	}
}

// WithWorkers sets the number of evaluation goroutines.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}
