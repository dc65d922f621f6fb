package models

type AddItemRequest struct {
	ID       string  `json:"id" binding:"required"`
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price" binding:"required"`
	Image    string  `json:"image" binding:"required"`
	Quantity int     `json:"quantity" binding:"required"`
}

type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type CheckoutSessionRequest struct {
	Items []CartLineEntry `json:"items" binding:"required"`
}

type CheckoutSessionResponse struct {
	ID string `json:"id"`
}

type CaptureRequest struct {
	OrderID string `json:"orderId"`
	PayerID string `json:"payerId"`
}

type ClientConfigResponse struct {
	PublishableKey string `json:"publishable_key"`
}

type CartResponse struct {
	Items       []CartLineEntry `json:"items"`
	Totals      CartTotals      `json:"totals"`
	CanCheckout bool            `json:"can_checkout"`
}
