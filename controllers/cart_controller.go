package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"storefront/models"
	"storefront/services"
)

type CartController struct {
	cartService *services.CartService
}

func NewCartController(cartService *services.CartService) *CartController {
	return &CartController{cartService: cartService}
}

func cartData(cart models.Cart) models.CartResponse {
	items := cart.Items
	if items == nil {
		items = []models.CartLineEntry{}
	}
	return models.CartResponse{
		Items:       items,
		Totals:      cart.Totals(),
		CanCheckout: cart.CanCheckout(),
	}
}

// @Summary Get cart
// @Description Get the cart with derived totals and checkout availability
// @Tags Cart
// @Produce json
// @Param cartId path string true "Cart ID"
// @Success 200 {object} models.Response
// @Router /cart/{cartId} [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	cart, err := ctrl.cartService.Get(c.Request.Context(), c.Param("cartId"))
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to load cart"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Cart retrieved", "data": cartData(cart)})
}

// @Summary Add item to cart
// @Description Add a product to the cart, or increment its quantity if already present
// @Tags Cart
// @Accept json
// @Produce json
// @Param cartId path string true "Cart ID"
// @Param item body models.AddItemRequest true "Product to add"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /cart/{cartId}/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Missing or invalid product data"})
		return
	}

	entry := models.CartLineEntry{
		ID:       req.ID,
		Name:     req.Name,
		Price:    req.Price,
		Image:    req.Image,
		Quantity: req.Quantity,
	}

	cart, err := ctrl.cartService.AddItem(c.Request.Context(), c.Param("cartId"), entry)
	if err != nil {
		if errors.Is(err, models.ErrInvalidPrice) || errors.Is(err, models.ErrInvalidQuantity) ||
			errors.Is(err, models.ErrMissingProductID) || errors.Is(err, models.ErrMissingName) ||
			errors.Is(err, models.ErrMissingImage) {
			c.JSON(400, gin.H{"success": false, "message": err.Error()})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to update cart"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Item added to cart", "data": cartData(cart)})
}

// @Summary Update item quantity
// @Description Replace the quantity of a cart entry. Non-positive quantities are rejected and the cart is returned unchanged so the client can re-display the prior value.
// @Tags Cart
// @Accept json
// @Produce json
// @Param cartId path string true "Cart ID"
// @Param productId path string true "Product ID"
// @Param quantity body models.SetQuantityRequest true "New quantity"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/{cartId}/items/{productId} [patch]
func (ctrl *CartController) UpdateQuantity(c *gin.Context) {
	var req models.SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	cart, err := ctrl.cartService.SetQuantity(c.Request.Context(), c.Param("cartId"), c.Param("productId"), req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidQuantity):
			c.JSON(400, gin.H{"success": false, "message": "Quantity must be a positive integer", "data": cartData(cart)})
		case errors.Is(err, services.ErrItemNotFound):
			c.JSON(404, gin.H{"success": false, "message": "Item not found in cart"})
		default:
			c.JSON(500, gin.H{"success": false, "message": "Failed to update cart"})
		}
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Quantity updated", "data": cartData(cart)})
}

// @Summary Remove item from cart
// @Description Drop a cart entry by product ID
// @Tags Cart
// @Produce json
// @Param cartId path string true "Cart ID"
// @Param productId path string true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/{cartId}/items/{productId} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	cart, err := ctrl.cartService.RemoveItem(c.Request.Context(), c.Param("cartId"), c.Param("productId"))
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Item not found in cart"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to update cart"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Item removed from cart", "data": cartData(cart)})
}
