// Package serialize turns entities of the heroes model into JSON objects
// under exclusion rules.
//
// A rule is a dotted path relative to the entity being serialized, such as
// "hero_powers.hero": while serializing a Hero, drop the "hero" key of every
// element under "hero_powers". Each kind has default rules, and callers may
// add more per call. When the serializer descends into a nested entity, the
// remaining suffixes of the parent's rules are combined with the nested
// kind's own defaults, so rules always apply relative to the entity they are
// declared on. A kind already on the path from the root is never entered
// again, which keeps output finite even if a rule set is incomplete.
package serialize
