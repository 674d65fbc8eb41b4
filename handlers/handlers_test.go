package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Rashmika-Bandara/Save2Serve/engine"
	"github.com/Rashmika-Bandara/Save2Serve/identity"
	"github.com/Rashmika-Bandara/Save2Serve/middleware"
	"github.com/Rashmika-Bandara/Save2Serve/models"
	"github.com/Rashmika-Bandara/Save2Serve/store"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "api.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.FoodListing{},
		&models.Request{},
		&models.Feedback{},
	))

	provider := identity.NewJWTProvider("test-secret")
	eng := engine.New(
		store.NewListingStore(db),
		store.NewRequestStore(db),
		store.NewFeedbackStore(db),
	)

	authHandler := NewAuthHandler(db, provider, time.Hour)
	listingHandler := NewListingHandler(eng)
	requestHandler := NewRequestHandler(eng)
	feedbackHandler := NewFeedbackHandler(eng)

	app := fiber.New()

	app.Post("/signup", authHandler.Signup)
	app.Post("/login", authHandler.Login)
	app.Get("/listings", listingHandler.GetListings)

	auth := middleware.NewAuth(provider)
	app.Get("/my-listings", auth, listingHandler.GetMyListings)
	app.Post("/listings", auth, listingHandler.CreateListing)
	app.Put("/listings/:id", auth, listingHandler.UpdateListing)
	app.Delete("/listings/:id", auth, listingHandler.DeleteListing)
	app.Post("/requests", auth, requestHandler.CreateRequest)
	app.Get("/seller/requests", auth, requestHandler.GetSellerRequests)
	app.Get("/buyer/requests", auth, requestHandler.GetBuyerRequests)
	app.Put("/requests/:id", auth, requestHandler.UpdateRequestStatus)
	app.Post("/feedback", auth, feedbackHandler.CreateFeedback)
	app.Get("/seller/feedback", auth, feedbackHandler.GetSellerFeedback)

	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()

	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func signupAndLogin(t *testing.T, app *fiber.App, email, role string) string {
	t.Helper()

	resp := doRequest(t, app, "POST", "/signup", "", map[string]interface{}{
		"full_name": "Test User",
		"good_name": "Tester",
		"email":     email,
		"password":  "password123",
		"phone":     "0700000000",
		"dob":       "1990-01-01",
		"role":      role,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = doRequest(t, app, "POST", "/login", "", map[string]interface{}{
		"email":    email,
		"password": "password123",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func listingBody() map[string]interface{} {
	return map[string]interface{}{
		"name":        "Vegetable rice packets",
		"quantity":    "3 packets",
		"expiry_time": time.Now().Add(6 * time.Hour),
		"description": "Surplus lunch packets",
		"price_tier":  models.PriceTierFree,
		"price":       100,
		"location":    "Colombo 07",
	}
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	app := newTestApp(t)
	signupAndLogin(t, app, "seller@example.com", models.RoleSeller)

	resp := doRequest(t, app, "POST", "/signup", "", map[string]interface{}{
		"full_name": "Other User",
		"good_name": "Other",
		"email":     "seller@example.com",
		"password":  "password123",
		"role":      models.RoleBuyer,
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestSignupRejectsUnknownRole(t *testing.T) {
	app := newTestApp(t)

	resp := doRequest(t, app, "POST", "/signup", "", map[string]interface{}{
		"full_name": "Test User",
		"good_name": "Tester",
		"email":     "admin@example.com",
		"password":  "password123",
		"role":      "Admin",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestListingRoutesRequireToken(t *testing.T) {
	app := newTestApp(t)

	resp := doRequest(t, app, "POST", "/listings", "", listingBody())
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp = doRequest(t, app, "GET", "/my-listings", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestCreateAndBrowseListing(t *testing.T) {
	app := newTestApp(t)
	token := signupAndLogin(t, app, "seller@example.com", models.RoleSeller)

	resp := doRequest(t, app, "POST", "/listings", token, listingBody())
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	created, ok := body["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(0), created["price"]) // free tier forces price 0
	assert.Equal(t, "Tester", created["seller_name"])

	resp = doRequest(t, app, "GET", "/listings", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	data, ok := body["data"].([]interface{})
	require.True(t, ok)
	assert.Len(t, data, 1)
}

func TestCreateListingForbiddenForBuyer(t *testing.T) {
	app := newTestApp(t)
	token := signupAndLogin(t, app, "buyer@example.com", models.RoleBuyer)

	resp := doRequest(t, app, "POST", "/listings", token, listingBody())
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestUpdateListingByNonOwnerIs404(t *testing.T) {
	app := newTestApp(t)
	owner := signupAndLogin(t, app, "owner@example.com", models.RoleSeller)
	other := signupAndLogin(t, app, "other@example.com", models.RoleSeller)

	resp := doRequest(t, app, "POST", "/listings", owner, listingBody())
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	created := decodeBody(t, resp)["data"].(map[string]interface{})
	listingID := created["id"].(string)

	resp = doRequest(t, app, "PUT", "/listings/"+listingID, other, map[string]interface{}{
		"name": "Hijacked",
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestRequestAndFeedbackFlow(t *testing.T) {
	app := newTestApp(t)
	seller := signupAndLogin(t, app, "seller@example.com", models.RoleSeller)
	buyer := signupAndLogin(t, app, "buyer@example.com", models.RoleBuyer)

	resp := doRequest(t, app, "POST", "/listings", seller, listingBody())
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	created := decodeBody(t, resp)["data"].(map[string]interface{})
	listingID := created["id"].(string)
	sellerID := created["seller_id"].(string)

	// Buyer requests the listing.
	resp = doRequest(t, app, "POST", "/requests", buyer, map[string]interface{}{
		"listing_id": listingID,
		"seller_id":  sellerID,
		"message":    "Can I pick this up tonight?",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	request := decodeBody(t, resp)["data"].(map[string]interface{})
	requestID := request["id"].(string)
	assert.Equal(t, models.RequestPending, request["status"])

	// Seller sees it joined with the listing.
	resp = doRequest(t, app, "GET", "/seller/requests", seller, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data := decodeBody(t, resp)["data"].([]interface{})
	require.Len(t, data, 1)
	joined := data[0].(map[string]interface{})
	require.NotNil(t, joined["listing"])

	// Seller accepts; an unknown status is rejected.
	resp = doRequest(t, app, "PUT", "/requests/"+requestID, seller, map[string]interface{}{
		"status": models.RequestAccepted,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doRequest(t, app, "PUT", "/requests/"+requestID, seller, map[string]interface{}{
		"status": "approved",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// Buyer cannot move someone else's request.
	resp = doRequest(t, app, "PUT", "/requests/"+requestID, buyer, map[string]interface{}{
		"status": models.RequestCompleted,
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	// Buyer leaves feedback; the seller's view includes the average.
	resp = doRequest(t, app, "POST", "/feedback", buyer, map[string]interface{}{
		"listing_id": listingID,
		"seller_id":  sellerID,
		"rating":     5,
		"comment":    "Great seller",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = doRequest(t, app, "GET", "/seller/feedback", seller, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	entries := body["data"].([]interface{})
	require.Len(t, entries, 1)
	assert.Equal(t, float64(5), body["average_rating"])
}
