package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/junction-api/internal/api/shared"
)

// IndexHTML is served on GET /.
const IndexHTML = "<h1>Code challenge</h1>"

// RegisterRoutes mounts every resource endpoint on r.
func RegisterRoutes(r chi.Router, heroes *HeroHandler, vendors *VendorHandler) {
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithHTML(w, r, http.StatusOK, IndexHTML)
	})

	r.Route("/heroes", func(r chi.Router) {
		r.Get("/", heroes.ListHeroes)
		r.Post("/", heroes.CreateHeroPower)
		r.Get("/{id}", heroes.GetHero)
		r.Delete("/{id}", heroes.DeleteHero)
	})

	r.Route("/powers", func(r chi.Router) {
		r.Get("/", heroes.ListPowers)
		r.Get("/{id}", heroes.GetPower)
		r.Patch("/{id}", heroes.UpdatePower)
		r.Delete("/{id}", heroes.DeletePower)
	})

	r.Post("/hero_powers", heroes.CreateHeroPower)

	r.Route("/vendors", func(r chi.Router) {
		r.Get("/", vendors.ListVendors)
		r.Get("/{id}", vendors.GetVendor)
	})

	r.Route("/sweets", func(r chi.Router) {
		r.Get("/", vendors.ListSweets)
		r.Get("/{id}", vendors.GetSweet)
	})

	r.Route("/vendor_sweets", func(r chi.Router) {
		r.Post("/", vendors.CreateVendorSweet)
		r.Delete("/{id}", vendors.DeleteVendorSweet)
	})
}
