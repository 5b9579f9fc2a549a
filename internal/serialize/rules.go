package serialize

import (
	"slices"
	"strings"

	"github.com/phrazzld/junction-api/internal/domain"
)

// Keys used in serialized output.
const (
	KeyHeroPowers = "hero_powers"
	KeyHero       = "hero"
	KeyPower      = "power"
)

// DefaultRules are the exclusions every entity of a kind carries.
var DefaultRules = map[domain.Kind][]string{
	domain.KindHero:      {"hero_powers.hero"},
	domain.KindPower:     {"hero_powers.power", "hero_powers.hero"},
	domain.KindHeroPower: {"hero.hero_powers", "power.hero_powers"},
}

// rules is a set of exclusion paths relative to one entity.
type rules map[string]struct{}

func newRules(kind domain.Kind, extra []string) rules {
	r := make(rules)
	for _, p := range DefaultRules[kind] {
		r[p] = struct{}{}
	}
	for _, p := range extra {
		r[strings.TrimPrefix(p, "-")] = struct{}{}
	}
	return r
}

// excludes reports whether key itself is dropped.
func (r rules) excludes(key string) bool {
	_, ok := r[key]
	return ok
}

// descend returns the rules that remain under key, without the defaults of
// the nested kind.
func (r rules) descend(key string) []string {
	prefix := key + "."
	var out []string
	for p := range r {
		if rest, ok := strings.CutPrefix(p, prefix); ok && rest != "" {
			out = append(out, rest)
		}
	}
	slices.Sort(out)
	return out
}
