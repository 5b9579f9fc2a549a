package domain

// Sweet is a primary entity of the vendors model.
type Sweet struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`

	VendorSweets []*VendorSweet `json:"-"`
}

// NewSweet creates a Sweet that has not been stored yet.
func NewSweet(name string) *Sweet {
	return &Sweet{Name: name}
}

// Validate checks if the Sweet has valid data.
func (s *Sweet) Validate() error {
	return nil
}
