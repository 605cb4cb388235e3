package dto

type CheckoutRequest struct {
	Plan string `json:"plan" validate:"required,oneof=basic pro"`
}

type CheckoutResponse struct {
	URL string `json:"url"`
}
