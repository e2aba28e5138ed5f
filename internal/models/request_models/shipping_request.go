package request_models

// ShippingRequest mirrors the backend's /shipping body. Every field is
// required; beyond non-empty there is no client-side format validation.
type ShippingRequest struct {
	FullName     string `form:"full_name" json:"full_name" binding:"required"`
	AddressLine1 string `form:"address_line1" json:"address_line1" binding:"required"`
	City         string `form:"city" json:"city" binding:"required"`
	State        string `form:"state" json:"state" binding:"required"`
	ZipCode      string `form:"zip_code" json:"zip_code" binding:"required"`
}
