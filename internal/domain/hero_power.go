package domain

// HeroPower is the join entity between Hero and Power. It records how strong a
// hero is with one power. Either reference may be unset until assigned.
type HeroPower struct {
	ID       int64  `json:"id"`
	Strength string `json:"strength"`
	HeroID   *int64 `json:"hero_id"`
	PowerID  *int64 `json:"power_id"`

	// Hero and Power are populated only when the caller loads them.
	Hero  *Hero  `json:"-"`
	Power *Power `json:"-"`
}

// NewHeroPower creates a HeroPower that has not been stored yet.
// Returns a validation error if strength is not one of Strong, Weak or Average.
func NewHeroPower(strength any, heroID, powerID *int64) (*HeroPower, error) {
	hp := &HeroPower{HeroID: heroID, PowerID: powerID}
	if err := hp.SetStrength(strength); err != nil {
		return nil, err
	}
	return hp, nil
}

// SetStrength assigns the strength after running its field rule.
func (hp *HeroPower) SetStrength(value any) error {
	v, err := ValidateField(KindHeroPower, FieldStrength, value)
	if err != nil {
		return err
	}
	hp.Strength = v.(string)
	return nil
}

// Validate checks if the HeroPower has valid data.
func (hp *HeroPower) Validate() error {
	_, err := ValidateField(KindHeroPower, FieldStrength, hp.Strength)
	return err
}
