package domain

// Hero is a primary entity of the heroes model. Its HeroPowers are owned by
// the hero: removing the hero removes them.
type Hero struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	SuperName string `json:"super_name"`

	// HeroPowers is populated only when the caller loads the association.
	HeroPowers []*HeroPower `json:"-"`
}

// NewHero creates a Hero that has not been stored yet.
func NewHero(name, superName string) *Hero {
	return &Hero{Name: name, SuperName: superName}
}

// Validate checks if the Hero has valid data. Heroes carry no field rules,
// the method exists so every entity can be validated the same way.
func (h *Hero) Validate() error {
	return nil
}
