package domain

// Power is a primary entity of the heroes model. Its description must be at
// least 20 characters long.
type Power struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`

	// HeroPowers is populated only when the caller loads the association.
	HeroPowers []*HeroPower `json:"-"`
}

// NewPower creates a Power that has not been stored yet.
// Returns a validation error if the description is invalid.
func NewPower(name string, description any) (*Power, error) {
	p := &Power{Name: name}
	if err := p.SetDescription(description); err != nil {
		return nil, err
	}
	return p, nil
}

// SetDescription assigns the description after running its field rule.
// On failure the power is left unchanged.
func (p *Power) SetDescription(value any) error {
	v, err := ValidateField(KindPower, FieldDescription, value)
	if err != nil {
		return err
	}
	p.Description = v.(string)
	return nil
}

// Validate checks if the Power has valid data.
func (p *Power) Validate() error {
	_, err := ValidateField(KindPower, FieldDescription, p.Description)
	return err
}
