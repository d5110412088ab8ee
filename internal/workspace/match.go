package workspace

import (
	"fmt"
	"sort"
	"strings"
)

// Outcome is the result kind of a tiered name match.
type Outcome int

const (
	// MatchFound means exactly one candidate matched.
	MatchFound Outcome = iota
	// MatchNone means no candidate matched at any tier.
	MatchNone
	// MatchAmbiguous means a tier produced several candidates and the
	// lookup refuses to guess.
	MatchAmbiguous
)

// resolveName runs the tiered matching pipeline over candidates:
// exact match, then case-insensitive exact match, then case-insensitive
// substring match. Each tier short-circuits on a definite or ambiguous
// outcome; a substring tier with several hits is ambiguous, never a guess.
// On MatchAmbiguous the returned slice lists the candidates, sorted.
func resolveName(candidates []string, query string) (string, []string, Outcome) {
	for _, c := range candidates {
		if c == query {
			return c, nil, MatchFound
		}
	}

	lower := strings.ToLower(query)

	var exact []string
	for _, c := range candidates {
		if strings.ToLower(c) == lower {
			exact = append(exact, c)
		}
	}
	if len(exact) == 1 {
		return exact[0], nil, MatchFound
	}
	if len(exact) > 1 {
		sort.Strings(exact)
		return "", exact, MatchAmbiguous
	}

	var partial []string
	for _, c := range candidates {
		if strings.Contains(strings.ToLower(c), lower) {
			partial = append(partial, c)
		}
	}
	switch len(partial) {
	case 0:
		return "", nil, MatchNone
	case 1:
		return partial[0], nil, MatchFound
	default:
		sort.Strings(partial)
		return "", partial, MatchAmbiguous
	}
}

// NotFoundError reports a lookup that matched nothing.
type NotFoundError struct {
	Entity    string
	Name      string
	Available []string
}

func (e *NotFoundError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("%s '%s' not found", e.Entity, e.Name)
	}
	return fmt.Sprintf("%s '%s' not found. Available: %s",
		e.Entity, e.Name, strings.Join(e.Available, ", "))
}

// AmbiguousError reports a partial match with several candidates, listing
// them so the caller can disambiguate.
type AmbiguousError struct {
	Entity     string
	Name       string
	Candidates []string
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("%s '%s' is ambiguous. Did you mean one of: %s?",
		e.Entity, e.Name, strings.Join(e.Candidates, ", "))
}

// pick applies resolveName and wraps the outcome into the shared error
// types used by every lookup accessor.
func pick(entity string, candidates []string, query string) (string, error) {
	name, others, outcome := resolveName(candidates, query)
	switch outcome {
	case MatchFound:
		return name, nil
	case MatchAmbiguous:
		return "", &AmbiguousError{Entity: entity, Name: query, Candidates: others}
	default:
		sorted := append([]string(nil), candidates...)
		sort.Strings(sorted)
		return "", &NotFoundError{Entity: entity, Name: query, Available: sorted}
	}
}
