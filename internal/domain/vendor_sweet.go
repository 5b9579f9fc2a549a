package domain

// VendorSweet is the join entity between Vendor and Sweet: the price one
// vendor charges for one sweet. Price is required and may not be negative.
type VendorSweet struct {
	ID       int64  `json:"id"`
	Price    *int64 `json:"price"`
	SweetID  int64  `json:"sweet_id"`
	VendorID int64  `json:"vendor_id"`

	// Sweet and Vendor are populated only when the caller loads them.
	Sweet  *Sweet  `json:"-"`
	Vendor *Vendor `json:"-"`
}

// NewVendorSweet creates a VendorSweet that has not been stored yet.
// Returns a validation error if price is absent or negative.
func NewVendorSweet(price any, sweetID, vendorID int64) (*VendorSweet, error) {
	vs := &VendorSweet{SweetID: sweetID, VendorID: vendorID}
	if err := vs.SetPrice(price); err != nil {
		return nil, err
	}
	return vs, nil
}

// SetPrice assigns the price after running its field rule.
func (vs *VendorSweet) SetPrice(value any) error {
	v, err := ValidateField(KindVendorSweet, FieldPrice, value)
	if err != nil {
		return err
	}
	n := v.(int64)
	vs.Price = &n
	return nil
}

// Validate checks if the VendorSweet has valid data.
func (vs *VendorSweet) Validate() error {
	_, err := ValidateField(KindVendorSweet, FieldPrice, vs.Price)
	return err
}
