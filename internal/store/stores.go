package store

// Stores groups the stores of both data models so they can be handed to
// services and tooling as one unit, all bound to the same connection or
// transaction.
type Stores struct {
	Heroes       HeroStore
	Powers       PowerStore
	HeroPowers   HeroPowerStore
	Vendors      VendorStore
	Sweets       SweetStore
	VendorSweets VendorSweetStore
}
