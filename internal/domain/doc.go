// Package domain contains the entities of both junction-api data models
// (heroes/powers/hero_powers and vendors/sweets/vendor_sweets) together with
// the field-level rules that every write must satisfy. It is independent of
// any storage or delivery mechanism.
package domain
