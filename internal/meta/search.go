package meta

import (
	"errors"
	"strings"

	"github.com/sahilm/fuzzy"
)

// ErrEmptyTerm is returned when a search term is blank after trimming.
var ErrEmptyTerm = errors.New("search term cannot be empty")

// FilterWeapons returns the weapons whose name contains term,
// case-insensitively, in upstream order.
func FilterWeapons(weapons []Weapon, term string) ([]Weapon, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, ErrEmptyTerm
	}
	needle := strings.ToLower(term)
	var out []Weapon
	for _, w := range weapons {
		if strings.Contains(strings.ToLower(w.WeaponName), needle) {
			out = append(out, w)
		}
	}
	return out, nil
}

// FilterModules returns the modules whose name contains term,
// case-insensitively, in upstream order.
func FilterModules(modules []Module, term string) ([]Module, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, ErrEmptyTerm
	}
	needle := strings.ToLower(term)
	var out []Module
	for _, m := range modules {
		if strings.Contains(strings.ToLower(m.ModuleName), needle) {
			out = append(out, m)
		}
	}
	return out, nil
}

// Suggest ranks names against a partial term for autocomplete. Results are
// best-match first, capped at limit. A blank term yields no suggestions.
func Suggest(names []string, term string, limit int) []string {
	term = strings.TrimSpace(term)
	if term == "" || limit <= 0 {
		return nil
	}
	matches := fuzzy.Find(term, names)
	if len(matches) > limit {
		matches = matches[:limit]
	}
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, names[m.Index])
	}
	return out
}
