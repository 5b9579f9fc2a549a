package domain

// Vendor is a primary entity of the vendors model.
type Vendor struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`

	// VendorSweets is populated only when the caller loads the association.
	VendorSweets []*VendorSweet `json:"-"`
}

// NewVendor creates a Vendor that has not been stored yet.
func NewVendor(name string) *Vendor {
	return &Vendor{Name: name}
}

// Validate checks if the Vendor has valid data.
func (v *Vendor) Validate() error {
	return nil
}
