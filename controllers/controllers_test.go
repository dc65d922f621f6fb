package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/plutov/paypal/v4"
	"github.com/stripe/stripe-go/v81"

	"storefront/config"
	"storefront/models"
	"storefront/repositories"
	"storefront/services"
)

type stubCapturer struct {
	calls int
	resp  *paypal.CaptureOrderResponse
	err   error
}

func (f *stubCapturer) CaptureOrder(ctx context.Context, orderID string, request paypal.CaptureOrderRequest) (*paypal.CaptureOrderResponse, error) {
	f.calls++
	return f.resp, f.err
}

type stubSessionCreator struct {
	calls int
	err   error
}

func (f *stubSessionCreator) create(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &stripe.CheckoutSession{ID: "cs_test_123"}, nil
}

type testEnv struct {
	router   *gin.Engine
	creator  *stubSessionCreator
	capturer *stubCapturer
}

func newTestEnv() *testEnv {
	gin.SetMode(gin.TestMode)
	config.AppConfig = &config.Config{
		StripePublishableKey: "pk_test_abc",
		Currency:             "usd",
		SuccessURL:           "https://shop.example.com/success.html",
		CancelURL:            "https://shop.example.com/cancel.html",
		AllowedCountries:     []string{"US", "CA"},
		AggregationPolicy:    services.PolicyFirstPrice,
	}

	creator := &stubSessionCreator{}
	capturer := &stubCapturer{resp: &paypal.CaptureOrderResponse{ID: "ORDER", Status: "COMPLETED"}}

	cartService := services.NewCartService(repositories.NewMemoryCartStore(), services.LogNotifier{})
	checkoutService := services.NewCheckoutService(creator.create, services.CheckoutOptions{
		Currency:          config.AppConfig.Currency,
		SuccessURL:        config.AppConfig.SuccessURL,
		CancelURL:         config.AppConfig.CancelURL,
		AllowedCountries:  config.AppConfig.AllowedCountries,
		AggregationPolicy: config.AppConfig.AggregationPolicy,
	})
	paypalService := services.NewPayPalService(capturer)

	cartCtrl := NewCartController(cartService)
	checkoutCtrl := NewCheckoutController(checkoutService)
	paypalCtrl := NewPayPalController(paypalService)

	router := gin.New()
	router.GET("/config", checkoutCtrl.GetClientConfig)
	router.POST("/create-checkout-session", checkoutCtrl.CreateCheckoutSession)
	router.POST("/paypal-payment-success", paypalCtrl.CapturePayment)
	cart := router.Group("/cart")
	{
		cart.GET("/:cartId", cartCtrl.GetCart)
		cart.POST("/:cartId/items", cartCtrl.AddItem)
		cart.PATCH("/:cartId/items/:productId", cartCtrl.UpdateQuantity)
		cart.DELETE("/:cartId/items/:productId", cartCtrl.RemoveItem)
	}

	return &testEnv{router: router, creator: creator, capturer: capturer}
}

func (e *testEnv) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func TestCreateCheckoutSessionEndpoint(t *testing.T) {
	t.Run("valid items return the session id", func(t *testing.T) {
		env := newTestEnv()
		rec := env.do("POST", "/create-checkout-session", gin.H{"items": []gin.H{
			{"id": "p1", "name": "Latte", "price": 4.5, "image": "latte.png", "quantity": 2},
		}})

		if rec.Code != 200 {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		var resp models.CheckoutSessionResponse
		json.Unmarshal(rec.Body.Bytes(), &resp)
		if resp.ID != "cs_test_123" {
			t.Fatalf("expected cs_test_123, got %q", resp.ID)
		}
	})

	t.Run("empty items array still reaches the provider", func(t *testing.T) {
		env := newTestEnv()
		rec := env.do("POST", "/create-checkout-session", gin.H{"items": []gin.H{}})

		if rec.Code != 200 {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if env.creator.calls != 1 {
			t.Fatalf("expected one provider call, got %d", env.creator.calls)
		}
	})

	t.Run("missing items is a 400", func(t *testing.T) {
		env := newTestEnv()
		rec := env.do("POST", "/create-checkout-session", gin.H{})

		if rec.Code != 400 {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		if env.creator.calls != 0 {
			t.Fatal("provider called for invalid request shape")
		}
	})

	t.Run("invalid item is a 400", func(t *testing.T) {
		env := newTestEnv()
		rec := env.do("POST", "/create-checkout-session", gin.H{"items": []gin.H{
			{"name": "No ID", "price": 4.5, "image": "x.png", "quantity": 2},
		}})

		if rec.Code != 400 {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("provider failure is a generic 500", func(t *testing.T) {
		env := newTestEnv()
		env.creator.err = errors.New("provider down")
		rec := env.do("POST", "/create-checkout-session", gin.H{"items": []gin.H{
			{"id": "p1", "name": "Latte", "price": 4.5, "image": "latte.png", "quantity": 2},
		}})

		if rec.Code != 500 {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
		if rec.Body.String() != "Internal Server Error" {
			t.Fatalf("expected generic message, got %q", rec.Body.String())
		}
	})
}

func TestCapturePaymentEndpoint(t *testing.T) {
	t.Run("empty orderId is a 400 and never reaches the provider", func(t *testing.T) {
		env := newTestEnv()
		rec := env.do("POST", "/paypal-payment-success", gin.H{"orderId": "", "payerId": "X"})

		if rec.Code != 400 {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		if rec.Body.String() != "Missing orderId or payerId" {
			t.Fatalf("unexpected body %q", rec.Body.String())
		}
		if env.capturer.calls != 0 {
			t.Fatalf("provider called %d times", env.capturer.calls)
		}
	})

	t.Run("successful capture relays the provider result", func(t *testing.T) {
		env := newTestEnv()
		rec := env.do("POST", "/paypal-payment-success", gin.H{"orderId": "ORDER", "payerId": "PAYER"})

		if rec.Code != 200 {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		var resp map[string]interface{}
		json.Unmarshal(rec.Body.Bytes(), &resp)
		if resp["status"] != "COMPLETED" {
			t.Fatalf("expected COMPLETED in relayed result, got %v", resp["status"])
		}
	})

	t.Run("provider 400 passes the provider message through", func(t *testing.T) {
		env := newTestEnv()
		env.capturer.err = &paypal.ErrorResponse{
			Response: &http.Response{StatusCode: http.StatusBadRequest},
			Message:  "ORDER_ALREADY_CAPTURED",
		}
		rec := env.do("POST", "/paypal-payment-success", gin.H{"orderId": "ORDER", "payerId": "PAYER"})

		if rec.Code != 400 {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		if rec.Body.String() != "Bad Request: ORDER_ALREADY_CAPTURED" {
			t.Fatalf("unexpected body %q", rec.Body.String())
		}
	})

	t.Run("other provider failures are a generic 500", func(t *testing.T) {
		env := newTestEnv()
		env.capturer.err = errors.New("network down")
		rec := env.do("POST", "/paypal-payment-success", gin.H{"orderId": "ORDER", "payerId": "PAYER"})

		if rec.Code != 500 {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
		if rec.Body.String() != "Payment capture failed" {
			t.Fatalf("unexpected body %q", rec.Body.String())
		}
	})
}

func TestCartEndpoints(t *testing.T) {
	item := gin.H{"id": "p1", "name": "Latte", "price": 4.5, "image": "latte.png", "quantity": 2}

	t.Run("add then add again merges and reports totals", func(t *testing.T) {
		env := newTestEnv()
		env.do("POST", "/cart/c1/items", item)
		rec := env.do("POST", "/cart/c1/items", item)

		if rec.Code != 200 {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		var resp struct {
			Data models.CartResponse `json:"data"`
		}
		json.Unmarshal(rec.Body.Bytes(), &resp)
		if len(resp.Data.Items) != 1 || resp.Data.Items[0].Quantity != 4 {
			t.Fatalf("expected one merged entry with quantity 4, got %+v", resp.Data.Items)
		}
		if resp.Data.Totals.TotalPrice != 18 {
			t.Fatalf("expected total 18, got %v", resp.Data.Totals.TotalPrice)
		}
		if !resp.Data.CanCheckout {
			t.Fatal("expected checkout to be available")
		}
	})

	t.Run("invalid quantity on add is a 400", func(t *testing.T) {
		env := newTestEnv()
		rec := env.do("POST", "/cart/c1/items", gin.H{"id": "p1", "name": "Latte", "price": 4.5, "image": "latte.png", "quantity": -1})
		if rec.Code != 400 {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("set quantity to zero is rejected with the unchanged cart", func(t *testing.T) {
		env := newTestEnv()
		env.do("POST", "/cart/c1/items", item)
		rec := env.do("PATCH", "/cart/c1/items/p1", gin.H{"quantity": 0})

		if rec.Code != 400 {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		var resp struct {
			Data models.CartResponse `json:"data"`
		}
		json.Unmarshal(rec.Body.Bytes(), &resp)
		if len(resp.Data.Items) != 1 || resp.Data.Items[0].Quantity != 2 {
			t.Fatalf("expected prior quantity 2 for re-display, got %+v", resp.Data.Items)
		}
	})

	t.Run("remove missing item is a 404", func(t *testing.T) {
		env := newTestEnv()
		rec := env.do("DELETE", "/cart/c1/items/ghost", nil)
		if rec.Code != 404 {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("empty cart disables checkout", func(t *testing.T) {
		env := newTestEnv()
		rec := env.do("GET", "/cart/c9", nil)

		if rec.Code != 200 {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		var resp struct {
			Data models.CartResponse `json:"data"`
		}
		json.Unmarshal(rec.Body.Bytes(), &resp)
		if resp.Data.CanCheckout {
			t.Fatal("empty cart must not allow checkout")
		}
	})
}

func TestClientConfigEndpoint(t *testing.T) {
	env := newTestEnv()
	rec := env.do("GET", "/config", nil)

	if rec.Code != 200 {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp models.ClientConfigResponse
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.PublishableKey != "pk_test_abc" {
		t.Fatalf("expected publishable key, got %q", resp.PublishableKey)
	}
}
