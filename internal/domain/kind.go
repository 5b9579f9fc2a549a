package domain

// Kind identifies an entity type. It keys the field validators and the
// serialization rules.
type Kind string

// Entity kinds.
const (
	KindHero        Kind = "hero"
	KindPower       Kind = "power"
	KindHeroPower   Kind = "hero_power"
	KindVendor      Kind = "vendor"
	KindSweet       Kind = "sweet"
	KindVendorSweet Kind = "vendor_sweet"
)

// Field names shared by validators, serializers and request decoding.
const (
	FieldID          = "id"
	FieldName        = "name"
	FieldSuperName   = "super_name"
	FieldDescription = "description"
	FieldStrength    = "strength"
	FieldPrice       = "price"
	FieldHeroID      = "hero_id"
	FieldPowerID     = "power_id"
	FieldSweetID     = "sweet_id"
	FieldVendorID    = "vendor_id"
)

func (k Kind) String() string {
	return string(k)
}
