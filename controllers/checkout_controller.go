package controllers

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"

	"storefront/config"
	"storefront/models"
	"storefront/services"
)

type CheckoutController struct {
	checkoutService *services.CheckoutService
}

func NewCheckoutController(checkoutService *services.CheckoutService) *CheckoutController {
	return &CheckoutController{checkoutService: checkoutService}
}

// @Summary Create checkout session
// @Description Aggregate cart items and create a hosted checkout session with the payment provider
// @Tags Checkout
// @Accept json
// @Produce json
// @Param request body models.CheckoutSessionRequest true "Cart items"
// @Success 200 {object} models.CheckoutSessionResponse
// @Failure 400 {string} string "Invalid request body"
// @Failure 500 {string} string "Internal Server Error"
// @Router /create-checkout-session [post]
func (ctrl *CheckoutController) CreateCheckoutSession(c *gin.Context) {
	var req models.CheckoutSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(400, "items is required and must be an array")
		return
	}

	id, err := ctrl.checkoutService.CreateSession(c.Request.Context(), req.Items)
	if err != nil {
		if errors.Is(err, services.ErrInvalidItem) {
			c.String(400, err.Error())
			return
		}
		log.Println("Error creating session:", err)
		c.String(500, "Internal Server Error")
		return
	}

	c.JSON(200, models.CheckoutSessionResponse{ID: id})
}

// @Summary Client configuration
// @Description Expose the publishable payment key the storefront page needs. Secret keys never leave the server.
// @Tags Checkout
// @Produce json
// @Success 200 {object} models.ClientConfigResponse
// @Router /config [get]
func (ctrl *CheckoutController) GetClientConfig(c *gin.Context) {
	c.JSON(200, models.ClientConfigResponse{
		PublishableKey: config.AppConfig.StripePublishableKey,
	})
}
