package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"storefront/models"
	"storefront/services"
)

type PayPalController struct {
	paypalService *services.PayPalService
}

func NewPayPalController(paypalService *services.PayPalService) *PayPalController {
	return &PayPalController{paypalService: paypalService}
}

// @Summary Capture PayPal payment
// @Description Forward a payment capture for an approved PayPal order and relay the raw capture result
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body models.CaptureRequest true "Order and payer identifiers"
// @Success 200 {object} object "Provider capture result"
// @Failure 400 {string} string "Missing orderId or payerId"
// @Failure 500 {string} string "Payment capture failed"
// @Router /paypal-payment-success [post]
func (ctrl *PayPalController) CapturePayment(c *gin.Context) {
	var req models.CaptureRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.OrderID == "" || req.PayerID == "" {
		c.String(400, "Missing orderId or payerId")
		return
	}

	capture, err := ctrl.paypalService.Capture(c.Request.Context(), req.OrderID, req.PayerID)
	if err != nil {
		var rejected *services.ProviderRejectedError
		if errors.As(err, &rejected) {
			c.String(400, "Bad Request: "+rejected.Message)
			return
		}
		if errors.Is(err, services.ErrMissingCaptureField) {
			c.String(400, "Missing orderId or payerId")
			return
		}
		c.String(500, "Payment capture failed")
		return
	}

	c.JSON(200, capture)
}
