// Package seed fills the stores with a fixed demo data set. Existing rows
// are removed first.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/phrazzld/junction-api/internal/domain"
	"github.com/phrazzld/junction-api/internal/store"
)

type powerSeed struct {
	name        string
	description string
}

type heroSeed struct {
	name      string
	superName string
}

var powers = []powerSeed{
	{"super strength", "gives the wielder super-human strengths"},
	{"flight", "gives the wielder the ability to fly through the skies at supersonic speed"},
	{"super human senses", "allows the wielder to use her senses at a super-human level"},
	{"elasticity", "can stretch the human body to extreme lengths"},
}

var heroes = []heroSeed{
	{"Kamala Khan", "Ms. Marvel"},
	{"Doreen Green", "Squirrel Girl"},
	{"Gwen Stacy", "Spider-Gwen"},
	{"Janet Van Dyne", "The Wasp"},
	{"Wanda Maximoff", "Scarlet Witch"},
	{"Carol Danvers", "Captain Marvel"},
	{"Jean Grey", "Dark Phoenix"},
	{"Ororo Munroe", "Storm"},
	{"Kitty Pryde", "Shadowcat"},
	{"Elektra Natchios", "Elektra"},
}

var strengths = []string{domain.StrengthStrong, domain.StrengthWeak, domain.StrengthAverage}

var vendors = []string{
	"Insomnia Cookies",
	"Cookies Cream",
	"Carvel",
	"Dunkin'",
}

var sweets = []string{
	"Chocolate Chip Cookie",
	"Chocolate Chunk Cookie",
	"M&Ms Cookie",
	"White Chocolate Cookie",
	"Brownie",
	"Peanut Butter Icecream Cake",
}

// maxPrice bounds generated vendor sweet prices.
const maxPrice = 500

// Summary counts the rows Run created.
type Summary struct {
	Powers       int
	Heroes       int
	HeroPowers   int
	Vendors      int
	Sweets       int
	VendorSweets int
}

// Run clears every table reachable through stores and seeds the demo data.
// Every hero gets one hero power with a random power and strength; every
// vendor sells each sweet with probability one half. rng makes the choices
// reproducible.
func Run(ctx context.Context, stores store.Stores, rng *rand.Rand, logger *slog.Logger) (Summary, error) {
	var sum Summary

	logger.Info("clearing existing data")
	if err := clearAll(ctx, stores); err != nil {
		return sum, err
	}

	logger.Info("seeding powers")
	seededPowers := make([]*domain.Power, 0, len(powers))
	for _, p := range powers {
		power, err := domain.NewPower(p.name, p.description)
		if err != nil {
			return sum, fmt.Errorf("invalid seed power %q: %w", p.name, err)
		}
		if err := stores.Powers.Create(ctx, power); err != nil {
			return sum, fmt.Errorf("failed to create power %q: %w", p.name, err)
		}
		seededPowers = append(seededPowers, power)
	}
	sum.Powers = len(seededPowers)

	logger.Info("seeding heroes")
	seededHeroes := make([]*domain.Hero, 0, len(heroes))
	for _, h := range heroes {
		hero := domain.NewHero(h.name, h.superName)
		if err := stores.Heroes.Create(ctx, hero); err != nil {
			return sum, fmt.Errorf("failed to create hero %q: %w", h.name, err)
		}
		seededHeroes = append(seededHeroes, hero)
	}
	sum.Heroes = len(seededHeroes)

	logger.Info("adding powers to heroes")
	for _, hero := range seededHeroes {
		power := seededPowers[rng.Intn(len(seededPowers))]
		hp, err := domain.NewHeroPower(strengths[rng.Intn(len(strengths))], &hero.ID, &power.ID)
		if err != nil {
			return sum, err
		}
		if err := stores.HeroPowers.Create(ctx, hp); err != nil {
			return sum, fmt.Errorf("failed to create hero power for hero %d: %w", hero.ID, err)
		}
		sum.HeroPowers++
	}

	logger.Info("seeding vendors and sweets")
	seededVendors := make([]*domain.Vendor, 0, len(vendors))
	for _, name := range vendors {
		vendor := domain.NewVendor(name)
		if err := stores.Vendors.Create(ctx, vendor); err != nil {
			return sum, fmt.Errorf("failed to create vendor %q: %w", name, err)
		}
		seededVendors = append(seededVendors, vendor)
	}
	sum.Vendors = len(seededVendors)

	seededSweets := make([]*domain.Sweet, 0, len(sweets))
	for _, name := range sweets {
		sweet := domain.NewSweet(name)
		if err := stores.Sweets.Create(ctx, sweet); err != nil {
			return sum, fmt.Errorf("failed to create sweet %q: %w", name, err)
		}
		seededSweets = append(seededSweets, sweet)
	}
	sum.Sweets = len(seededSweets)

	for _, vendor := range seededVendors {
		for _, sweet := range seededSweets {
			if rng.Intn(2) == 0 {
				continue
			}
			vs, err := domain.NewVendorSweet(int64(rng.Intn(maxPrice+1)), sweet.ID, vendor.ID)
			if err != nil {
				return sum, err
			}
			if err := stores.VendorSweets.Create(ctx, vs); err != nil {
				return sum, fmt.Errorf("failed to create vendor sweet: %w", err)
			}
			sum.VendorSweets++
		}
	}

	logger.Info("done seeding",
		slog.Int("powers", sum.Powers),
		slog.Int("heroes", sum.Heroes),
		slog.Int("hero_powers", sum.HeroPowers),
		slog.Int("vendors", sum.Vendors),
		slog.Int("sweets", sum.Sweets),
		slog.Int("vendor_sweets", sum.VendorSweets))
	return sum, nil
}

// clearAll empties every table. Join rows are cleared first since a hero
// power with no hero and no power is never reached by a cascade.
func clearAll(ctx context.Context, stores store.Stores) error {
	if err := stores.HeroPowers.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to clear hero powers: %w", err)
	}
	if err := stores.VendorSweets.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to clear vendor sweets: %w", err)
	}

	existingHeroes, err := stores.Heroes.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list heroes: %w", err)
	}
	for _, h := range existingHeroes {
		if err := stores.Heroes.Delete(ctx, h.ID); err != nil {
			return fmt.Errorf("failed to delete hero %d: %w", h.ID, err)
		}
	}

	existingPowers, err := stores.Powers.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list powers: %w", err)
	}
	for _, p := range existingPowers {
		if err := stores.Powers.Delete(ctx, p.ID); err != nil {
			return fmt.Errorf("failed to delete power %d: %w", p.ID, err)
		}
	}

	existingVendors, err := stores.Vendors.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list vendors: %w", err)
	}
	for _, v := range existingVendors {
		if err := stores.Vendors.Delete(ctx, v.ID); err != nil {
			return fmt.Errorf("failed to delete vendor %d: %w", v.ID, err)
		}
	}

	existingSweets, err := stores.Sweets.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list sweets: %w", err)
	}
	for _, s := range existingSweets {
		if err := stores.Sweets.Delete(ctx, s.ID); err != nil {
			return fmt.Errorf("failed to delete sweet %d: %w", s.ID, err)
		}
	}
	return nil
}
