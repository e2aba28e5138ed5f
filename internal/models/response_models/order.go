package response_models

// OrderDetails is the backend's /shipping response. Held in memory for the
// lifetime of the process only; the confirmation page is a pure read of it.
type OrderDetails struct {
	Message           string `json:"message"`
	ShippingID        string `json:"shipping_id"`
	EstimatedDelivery string `json:"estimated_delivery"`
}
