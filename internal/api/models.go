package api

import "github.com/phrazzld/junction-api/internal/domain"

// CreateHeroPowerRequest is the body of POST /hero_powers. Strength is left
// untyped so a non-text value fails the strength rule instead of decoding.
type CreateHeroPowerRequest struct {
	Strength any    `json:"strength"`
	HeroID   *int64 `json:"hero_id"`
	PowerID  *int64 `json:"power_id"`
}

// UpdatePowerRequest is the body of PATCH /powers/{id}. Only the
// description is applied; other keys are ignored.
type UpdatePowerRequest struct {
	Description any `json:"description"`
}

// CreateVendorSweetRequest is the body of POST /vendor_sweets.
type CreateVendorSweetRequest struct {
	Price    any    `json:"price"`
	SweetID  *int64 `json:"sweet_id" validate:"required"`
	VendorID *int64 `json:"vendor_id" validate:"required"`
}

// VendorResponse is a vendor without its associations.
type VendorResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// VendorDetailResponse is a vendor with its vendor sweets.
type VendorDetailResponse struct {
	ID           int64                 `json:"id"`
	Name         string                `json:"name"`
	VendorSweets []VendorSweetResponse `json:"vendor_sweets"`
}

// SweetResponse is a sweet without its associations.
type SweetResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// VendorSweetResponse is a vendor sweet without nested entities.
type VendorSweetResponse struct {
	ID       int64  `json:"id"`
	Price    *int64 `json:"price"`
	SweetID  int64  `json:"sweet_id"`
	VendorID int64  `json:"vendor_id"`
}

// VendorSweetDetailResponse is a vendor sweet with its sweet and vendor.
type VendorSweetDetailResponse struct {
	ID       int64           `json:"id"`
	Price    *int64          `json:"price"`
	SweetID  int64           `json:"sweet_id"`
	VendorID int64           `json:"vendor_id"`
	Sweet    *SweetResponse  `json:"sweet"`
	Vendor   *VendorResponse `json:"vendor"`
}

func vendorToResponse(v *domain.Vendor) VendorResponse {
	return VendorResponse{ID: v.ID, Name: v.Name}
}

func vendorToDetailResponse(v *domain.Vendor) VendorDetailResponse {
	resp := VendorDetailResponse{
		ID:           v.ID,
		Name:         v.Name,
		VendorSweets: make([]VendorSweetResponse, 0, len(v.VendorSweets)),
	}
	for _, vs := range v.VendorSweets {
		resp.VendorSweets = append(resp.VendorSweets, vendorSweetToResponse(vs))
	}
	return resp
}

func sweetToResponse(s *domain.Sweet) SweetResponse {
	return SweetResponse{ID: s.ID, Name: s.Name}
}

func vendorSweetToResponse(vs *domain.VendorSweet) VendorSweetResponse {
	return VendorSweetResponse{
		ID:       vs.ID,
		Price:    vs.Price,
		SweetID:  vs.SweetID,
		VendorID: vs.VendorID,
	}
}

func vendorSweetToDetailResponse(vs *domain.VendorSweet) VendorSweetDetailResponse {
	resp := VendorSweetDetailResponse{
		ID:       vs.ID,
		Price:    vs.Price,
		SweetID:  vs.SweetID,
		VendorID: vs.VendorID,
	}
	if vs.Sweet != nil {
		sweet := sweetToResponse(vs.Sweet)
		resp.Sweet = &sweet
	}
	if vs.Vendor != nil {
		vendor := vendorToResponse(vs.Vendor)
		resp.Vendor = &vendor
	}
	return resp
}
