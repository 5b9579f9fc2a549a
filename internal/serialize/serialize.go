package serialize

import (
	"slices"

	"github.com/phrazzld/junction-api/internal/domain"
)

// Hero serializes a hero. Extra rules are added to the hero's defaults;
// pass "hero_powers" to drop the association.
func Hero(h *domain.Hero, exclude ...string) Object {
	return hero(h, newRules(domain.KindHero, exclude), nil)
}

// Power serializes a power.
func Power(p *domain.Power, exclude ...string) Object {
	return power(p, newRules(domain.KindPower, exclude), nil)
}

// HeroPower serializes a hero power together with its hero and power.
func HeroPower(hp *domain.HeroPower, exclude ...string) Object {
	return heroPower(hp, newRules(domain.KindHeroPower, exclude), nil)
}

// Heroes serializes each hero with the same extra rules.
func Heroes(heroes []*domain.Hero, exclude ...string) []Object {
	out := make([]Object, 0, len(heroes))
	for _, h := range heroes {
		out = append(out, Hero(h, exclude...))
	}
	return out
}

// Powers serializes each power with the same extra rules.
func Powers(powers []*domain.Power, exclude ...string) []Object {
	out := make([]Object, 0, len(powers))
	for _, p := range powers {
		out = append(out, Power(p, exclude...))
	}
	return out
}

func hero(h *domain.Hero, r rules, ancestors []domain.Kind) Object {
	obj := scalars(r,
		Field{Key: "id", Value: h.ID},
		Field{Key: "name", Value: h.Name},
		Field{Key: "super_name", Value: h.SuperName},
	)
	path := append(slices.Clip(ancestors), domain.KindHero)
	if !r.excludes(KeyHeroPowers) && !slices.Contains(path, domain.KindHeroPower) {
		obj = append(obj, Field{Key: KeyHeroPowers, Value: heroPowerList(h.HeroPowers, r.descend(KeyHeroPowers), path)})
	}
	return obj
}

func power(p *domain.Power, r rules, ancestors []domain.Kind) Object {
	obj := scalars(r,
		Field{Key: "id", Value: p.ID},
		Field{Key: "name", Value: p.Name},
		Field{Key: "description", Value: p.Description},
	)
	path := append(slices.Clip(ancestors), domain.KindPower)
	if !r.excludes(KeyHeroPowers) && !slices.Contains(path, domain.KindHeroPower) {
		obj = append(obj, Field{Key: KeyHeroPowers, Value: heroPowerList(p.HeroPowers, r.descend(KeyHeroPowers), path)})
	}
	return obj
}

func heroPowerList(hps []*domain.HeroPower, inherited []string, path []domain.Kind) []Object {
	out := make([]Object, 0, len(hps))
	for _, hp := range hps {
		out = append(out, heroPower(hp, newRules(domain.KindHeroPower, inherited), path))
	}
	return out
}

func heroPower(hp *domain.HeroPower, r rules, ancestors []domain.Kind) Object {
	obj := scalars(r,
		Field{Key: "id", Value: hp.ID},
		Field{Key: "strength", Value: hp.Strength},
		Field{Key: "hero_id", Value: hp.HeroID},
		Field{Key: "power_id", Value: hp.PowerID},
	)
	path := append(slices.Clip(ancestors), domain.KindHeroPower)

	if !r.excludes(KeyHero) && !slices.Contains(path, domain.KindHero) {
		var v any
		if hp.Hero != nil {
			v = hero(hp.Hero, newRules(domain.KindHero, r.descend(KeyHero)), path)
		}
		obj = append(obj, Field{Key: KeyHero, Value: v})
	}
	if !r.excludes(KeyPower) && !slices.Contains(path, domain.KindPower) {
		var v any
		if hp.Power != nil {
			v = power(hp.Power, newRules(domain.KindPower, r.descend(KeyPower)), path)
		}
		obj = append(obj, Field{Key: KeyPower, Value: v})
	}
	return obj
}

// scalars keeps the fields r does not exclude.
func scalars(r rules, fields ...Field) Object {
	obj := make(Object, 0, len(fields)+2)
	for _, f := range fields {
		if !r.excludes(f.Key) {
			obj = append(obj, f)
		}
	}
	return obj
}
