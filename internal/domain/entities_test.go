package domain

import (
	"errors"
	"testing"
)

func TestNewHeroPower(t *testing.T) {
	t.Parallel()
	heroID, powerID := int64(1), int64(2)

	hp, err := NewHeroPower("Weak", &heroID, &powerID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if hp.Strength != "Weak" {
		t.Errorf("Expected strength Weak, got %s", hp.Strength)
	}
	if *hp.HeroID != heroID || *hp.PowerID != powerID {
		t.Errorf("Expected references %d/%d, got %d/%d", heroID, powerID, *hp.HeroID, *hp.PowerID)
	}

	if _, err := NewHeroPower("weak", &heroID, &powerID); !errors.Is(err, ErrValidation) {
		t.Errorf("Expected validation error, got %v", err)
	}

	// References stay unset until assigned.
	hp, err = NewHeroPower("Strong", nil, nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if hp.HeroID != nil || hp.PowerID != nil {
		t.Error("Expected nil references")
	}
}

func TestPowerSetDescription(t *testing.T) {
	t.Parallel()

	p, err := NewPower("flight", "gives the wielder the ability to fly")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if err := p.SetDescription("too short"); !errors.Is(err, ErrValidation) {
		t.Fatalf("Expected validation error, got %v", err)
	}
	if p.Description != "gives the wielder the ability to fly" {
		t.Errorf("Failed assignment must not change the description, got %q", p.Description)
	}

	if err := p.Validate(); err != nil {
		t.Errorf("Expected valid power, got %v", err)
	}
	p.Description = "short"
	if err := p.Validate(); !errors.Is(err, ErrValidation) {
		t.Errorf("Expected validation error, got %v", err)
	}
}

func TestNewVendorSweet(t *testing.T) {
	t.Parallel()

	vs, err := NewVendorSweet(0, 3, 4)
	if err != nil {
		t.Fatalf("Expected zero price to be valid, got %v", err)
	}
	if vs.Price == nil || *vs.Price != 0 {
		t.Errorf("Expected price 0, got %v", vs.Price)
	}
	if vs.SweetID != 3 || vs.VendorID != 4 {
		t.Errorf("Unexpected references %d/%d", vs.SweetID, vs.VendorID)
	}

	if _, err := NewVendorSweet(-1, 3, 4); !errors.Is(err, ErrValidation) {
		t.Errorf("Expected validation error for negative price, got %v", err)
	}
	if _, err := NewVendorSweet(nil, 3, 4); !errors.Is(err, ErrValidation) {
		t.Errorf("Expected validation error for absent price, got %v", err)
	}

	empty := &VendorSweet{SweetID: 1, VendorID: 1}
	if err := empty.Validate(); !errors.Is(err, ErrValidation) {
		t.Errorf("Expected validation error for unset price, got %v", err)
	}
}
