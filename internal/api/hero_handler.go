package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/junction-api/internal/api/shared"
	"github.com/phrazzld/junction-api/internal/platform/logger"
	"github.com/phrazzld/junction-api/internal/serialize"
	"github.com/phrazzld/junction-api/internal/service"
	"github.com/phrazzld/junction-api/internal/store"
)

// HeroHandler handles the heroes, powers and hero powers endpoints.
type HeroHandler struct {
	heroService service.HeroService
	logger      *slog.Logger
}

// NewHeroHandler creates a new HeroHandler
func NewHeroHandler(heroService service.HeroService, logger *slog.Logger) *HeroHandler {
	if heroService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("heroService cannot be nil for HeroHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for HeroHandler")
	}

	return &HeroHandler{
		heroService: heroService,
		logger:      logger.With(slog.String("component", "hero_handler")),
	}
}

// ListHeroes handles GET /heroes requests.
func (h *HeroHandler) ListHeroes(w http.ResponseWriter, r *http.Request) {
	heroes, err := h.heroService.ListHeroes(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, serialize.Heroes(heroes, serialize.KeyHeroPowers))
}

// GetHero handles GET /heroes/{id} requests.
// The hero is returned with its hero powers, each with its power attached.
func (h *HeroHandler) GetHero(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathID(r, "id")
	if err != nil {
		log.Debug("invalid hero ID", slog.String("error", err.Error()))
		HandleAPIError(w, r, fmt.Errorf("%w: %v", store.ErrHeroNotFound, err), "")
		return
	}

	hero, err := h.heroService.GetHero(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, serialize.Hero(hero))
}

// DeleteHero handles DELETE /heroes/{id} requests.
// The hero's hero powers are removed with it.
func (h *HeroHandler) DeleteHero(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathID(r, "id")
	if err != nil {
		log.Debug("invalid hero ID", slog.String("error", err.Error()))
		HandleAPIError(w, r, fmt.Errorf("%w: %v", store.ErrHeroNotFound, err), "")
		return
	}

	if err := h.heroService.DeleteHero(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Info("hero deleted", slog.Int64("hero_id", id))
	shared.RespondWithNoContent(w)
}

// ListPowers handles GET /powers requests.
func (h *HeroHandler) ListPowers(w http.ResponseWriter, r *http.Request) {
	powers, err := h.heroService.ListPowers(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, serialize.Powers(powers, serialize.KeyHeroPowers))
}

// GetPower handles GET /powers/{id} requests.
func (h *HeroHandler) GetPower(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathID(r, "id")
	if err != nil {
		log.Debug("invalid power ID", slog.String("error", err.Error()))
		HandleAPIError(w, r, fmt.Errorf("%w: %v", store.ErrPowerNotFound, err), "")
		return
	}

	power, err := h.heroService.GetPower(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, serialize.Power(power, serialize.KeyHeroPowers))
}

// UpdatePower handles PATCH /powers/{id} requests.
// Only the description is applied. An unknown power is reported before the
// body is looked at.
func (h *HeroHandler) UpdatePower(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathID(r, "id")
	if err != nil {
		log.Debug("invalid power ID", slog.String("error", err.Error()))
		HandleAPIError(w, r, fmt.Errorf("%w: %v", store.ErrPowerNotFound, err), "")
		return
	}

	if _, err := h.heroService.GetPower(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req UpdatePowerRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		HandleAPIError(w, r, errors.Join(ErrInvalidRequestFormat, err), "")
		return
	}

	power, err := h.heroService.UpdatePowerDescription(r.Context(), id, req.Description)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Info("power updated", slog.Int64("power_id", id))
	shared.RespondWithJSON(w, r, http.StatusOK, serialize.Power(power, serialize.KeyHeroPowers))
}

// DeletePower handles DELETE /powers/{id} requests.
// The power's hero powers are removed with it.
func (h *HeroHandler) DeletePower(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathID(r, "id")
	if err != nil {
		log.Debug("invalid power ID", slog.String("error", err.Error()))
		HandleAPIError(w, r, fmt.Errorf("%w: %v", store.ErrPowerNotFound, err), "")
		return
	}

	if err := h.heroService.DeletePower(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Info("power deleted", slog.Int64("power_id", id))
	shared.RespondWithNoContent(w)
}

// CreateHeroPower handles POST /hero_powers and POST /heroes requests.
// The stored hero power is returned with its hero and power.
func (h *HeroHandler) CreateHeroPower(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateHeroPowerRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		HandleAPIError(w, r, errors.Join(ErrInvalidRequestFormat, err), "")
		return
	}

	hp, err := h.heroService.CreateHeroPower(r.Context(), req.Strength, req.HeroID, req.PowerID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Info("hero power created", slog.Int64("hero_power_id", hp.ID))
	shared.RespondWithJSON(w, r, http.StatusOK, serialize.HeroPower(hp))
}
