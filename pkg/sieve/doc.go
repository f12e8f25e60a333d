// Package sieve is the embedding API for the label-quality audit engine.
//
// A host application (for example a row-by-row review GUI) hands sieve its
// records, receives a priority-ordered queue of suspect rows with suggested
// corrections, and applies whatever the reviewer accepts through a Store:
//
//	aud, err := sieve.New()
//	if err != nil { ... }
//	items, err := aud.Audit(ctx, records)
//
// Label spaces, rules, and escalation tables are configuration, not code —
// see the Option values for injecting synthetic spaces in tests or retuned
// rule sets in production.
package sieve
