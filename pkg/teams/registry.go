package teams

import (
	"sort"
	"strings"
)

// League identifies the namespace an alias table belongs to. The same short
// code can mean different teams in different leagues (e.g. "NY"), so aliases
// are never flattened into one map.
type League string

const (
	LeagueMLB League = "mlb"
	LeagueNBA League = "nba"
	LeagueNFL League = "nfl"
)

type aliasEntry struct {
	alias     string // upper-cased
	canonical string
	league    League
}

// Registry maps team aliases to canonical full names. Lookups are
// case-insensitive and try an exact match before a substring match.
// Read-only after construction; safe for concurrent use without locking.
type Registry struct {
	leagues []League
	exact   map[League]map[string]string
	entries []aliasEntry // ordered for the substring pass
}

// NewRegistry builds the registry from the built-in league tables.
func NewRegistry() *Registry {
	r := &Registry{exact: map[League]map[string]string{}}
	r.addLeague(LeagueMLB, mlbTeams)
	r.addLeague(LeagueNBA, nbaTeams)
	r.addLeague(LeagueNFL, nflTeams)
	return r
}

func (r *Registry) addLeague(lg League, table map[string][]string) {
	if _, ok := r.exact[lg]; !ok {
		r.exact[lg] = map[string]string{}
		r.leagues = append(r.leagues, lg)
	}
	canonicals := make([]string, 0, len(table))
	for canonical := range table {
		canonicals = append(canonicals, canonical)
	}
	sort.Strings(canonicals) // deterministic substring ordering
	for _, canonical := range canonicals {
		r.addAlias(lg, canonical, canonical) // canonicalization must be idempotent
		for _, a := range table[canonical] {
			r.addAlias(lg, a, canonical)
		}
	}
}

func (r *Registry) addAlias(lg League, alias, canonical string) {
	key := strings.ToUpper(strings.TrimSpace(alias))
	if key == "" {
		return
	}
	if _, exists := r.exact[lg][key]; exists {
		return // first definition wins inside a league
	}
	r.exact[lg][key] = canonical
	r.entries = append(r.entries, aliasEntry{alias: key, canonical: canonical, league: lg})
}

// AddAlias registers an extra alias (e.g. from the slip config file). Must be
// called before the registry is shared across goroutines.
func (r *Registry) AddAlias(lg League, alias, canonical string) {
	if _, ok := r.exact[lg]; !ok {
		r.exact[lg] = map[string]string{}
		r.leagues = append(r.leagues, lg)
	}
	r.addAlias(lg, alias, canonical)
}

// LookupIn resolves an alias inside a single league namespace.
func (r *Registry) LookupIn(lg League, s string) (string, bool) {
	key := strings.ToUpper(strings.TrimSpace(s))
	if key == "" {
		return "", false
	}
	if canonical, ok := r.exact[lg][key]; ok {
		return canonical, true
	}
	for _, e := range r.entries {
		if e.league != lg {
			continue
		}
		if substringAlias(key, e.alias) {
			return e.canonical, true
		}
	}
	return "", false
}

// Lookup resolves an alias across all leagues, exact matches in every league
// before any substring match, leagues in registration order.
func (r *Registry) Lookup(s string) (string, bool) {
	key := strings.ToUpper(strings.TrimSpace(s))
	if key == "" {
		return "", false
	}
	for _, lg := range r.leagues {
		if canonical, ok := r.exact[lg][key]; ok {
			return canonical, true
		}
	}
	for _, e := range r.entries {
		if substringAlias(key, e.alias) {
			return e.canonical, true
		}
	}
	return "", false
}

// LookupExact resolves s only when it is a whole alias on its own, across all
// leagues in registration order. No substring pass.
func (r *Registry) LookupExact(s string) (string, bool) {
	key := strings.ToUpper(strings.TrimSpace(s))
	if key == "" {
		return "", false
	}
	for _, lg := range r.leagues {
		if canonical, ok := r.exact[lg][key]; ok {
			return canonical, true
		}
	}
	return "", false
}

// Canonicalize returns the canonical name for s, or s trimmed when no alias
// matches. Idempotent: canonical names resolve to themselves.
func (r *Registry) Canonicalize(s string) string {
	if canonical, ok := r.Lookup(s); ok {
		return canonical
	}
	return strings.TrimSpace(s)
}

// substringAlias reports whether alias appears in key as a whole token, so
// "SOX" does not fire inside "SOXHLET". Short aliases (<=3 chars) only match
// exactly to keep codes like "NY" from hijacking longer team phrases.
func substringAlias(key, alias string) bool {
	if len(alias) <= 3 {
		return key == alias
	}
	idx := strings.Index(key, alias)
	if idx < 0 {
		return false
	}
	if idx > 0 && isAliasRune(key[idx-1]) {
		return false
	}
	end := idx + len(alias)
	if end < len(key) && isAliasRune(key[end]) {
		return false
	}
	return true
}

func isAliasRune(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}
