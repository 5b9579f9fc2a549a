package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/junction-api/internal/api/shared"
	"github.com/phrazzld/junction-api/internal/domain"
	"github.com/phrazzld/junction-api/internal/platform/logger"
	"github.com/phrazzld/junction-api/internal/service"
	"github.com/phrazzld/junction-api/internal/store"
)

// VendorHandler handles the vendors, sweets and vendor sweets endpoints.
type VendorHandler struct {
	vendorService service.VendorService
	logger        *slog.Logger
}

// NewVendorHandler creates a new VendorHandler
func NewVendorHandler(vendorService service.VendorService, logger *slog.Logger) *VendorHandler {
	if vendorService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("vendorService cannot be nil for VendorHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for VendorHandler")
	}

	return &VendorHandler{
		vendorService: vendorService,
		logger:        logger.With(slog.String("component", "vendor_handler")),
	}
}

// ListVendors handles GET /vendors requests.
func (h *VendorHandler) ListVendors(w http.ResponseWriter, r *http.Request) {
	vendors, err := h.vendorService.ListVendors(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	response := make([]VendorResponse, 0, len(vendors))
	for _, v := range vendors {
		response = append(response, vendorToResponse(v))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// GetVendor handles GET /vendors/{id} requests.
func (h *VendorHandler) GetVendor(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathID(r, "id")
	if err != nil {
		log.Debug("invalid vendor ID", slog.String("error", err.Error()))
		HandleAPIError(w, r, fmt.Errorf("%w: %v", store.ErrVendorNotFound, err), "")
		return
	}

	vendor, err := h.vendorService.GetVendor(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, vendorToDetailResponse(vendor))
}

// ListSweets handles GET /sweets requests.
func (h *VendorHandler) ListSweets(w http.ResponseWriter, r *http.Request) {
	sweets, err := h.vendorService.ListSweets(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	response := make([]SweetResponse, 0, len(sweets))
	for _, s := range sweets {
		response = append(response, sweetToResponse(s))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// GetSweet handles GET /sweets/{id} requests.
func (h *VendorHandler) GetSweet(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathID(r, "id")
	if err != nil {
		log.Debug("invalid sweet ID", slog.String("error", err.Error()))
		HandleAPIError(w, r, fmt.Errorf("%w: %v", store.ErrSweetNotFound, err), "")
		return
	}

	sweet, err := h.vendorService.GetSweet(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, sweetToResponse(sweet))
}

// CreateVendorSweet handles POST /vendor_sweets requests.
func (h *VendorHandler) CreateVendorSweet(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateVendorSweetRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		HandleAPIError(w, r, errors.Join(ErrInvalidRequestFormat, err), "")
		return
	}

	// Missing references are reported with the same body as a bad price.
	if err := shared.ValidateRequest(&req); err != nil {
		HandleAPIError(w, r, domain.NewValidationError(domain.KindVendorSweet, "references", err), "")
		return
	}

	vs, err := h.vendorService.CreateVendorSweet(r.Context(), req.Price, req.SweetID, req.VendorID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Info("vendor sweet created", slog.Int64("vendor_sweet_id", vs.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, vendorSweetToDetailResponse(vs))
}

// DeleteVendorSweet handles DELETE /vendor_sweets/{id} requests.
func (h *VendorHandler) DeleteVendorSweet(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathID(r, "id")
	if err != nil {
		log.Debug("invalid vendor sweet ID", slog.String("error", err.Error()))
		HandleAPIError(w, r, fmt.Errorf("%w: %v", store.ErrVendorSweetNotFound, err), "")
		return
	}

	if err := h.vendorService.DeleteVendorSweet(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Info("vendor sweet deleted", slog.Int64("vendor_sweet_id", id))
	shared.RespondWithNoContent(w)
}
