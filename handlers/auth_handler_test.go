package handlers

import (
	"net/http"
	"testing"

	"trusttrade_backend/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterLoginAndCompleteProfile(t *testing.T) {
	app, db := setupTestApp(t)

	resp := doRequest(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"name":     "Raju Chaat Corner",
		"email":    "raju@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// New accounts start without a role or trust score.
	var user models.User
	require.NoError(t, db.Where("email = ?", "raju@example.com").First(&user).Error)
	assert.Empty(t, user.Role)
	assert.Nil(t, user.TrustScore)
	assert.NotEqual(t, "secret123", user.Password)

	resp = doRequest(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    "raju@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var login struct {
		Token string `json:"token"`
		User  struct {
			ID   uint   `json:"id"`
			Role string `json:"role"`
		} `json:"user"`
	}
	decodeBody(t, resp, &login)
	require.NotEmpty(t, login.Token)
	assert.Equal(t, user.ID, login.User.ID)

	// Completing the profile picks a role and grants the default trust score.
	resp = doRequest(t, app, http.MethodPut, "/api/users/profile", login.Token, fiber.Map{
		"name": "Raju Chaat Corner",
		"role": models.RoleVendor,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, db.First(&user, user.ID).Error)
	assert.Equal(t, models.RoleVendor, user.Role)
	require.NotNil(t, user.TrustScore)
	assert.Equal(t, 100.0, *user.TrustScore)

	// A second update must not reset an existing trust score.
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", user.ID).Update("trust_score", 85.0).Error)
	resp = doRequest(t, app, http.MethodPut, "/api/users/profile", login.Token, fiber.Map{
		"name": "Raju's Famous Chaat",
		"role": models.RoleVendor,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, db.First(&user, user.ID).Error)
	require.NotNil(t, user.TrustScore)
	assert.Equal(t, 85.0, *user.TrustScore)
}

// A token minted at login carries no role yet; picking one through profile
// completion must take effect on that same token without a re-login.
func TestVendorEndpointsUsableRightAfterProfileCompletion(t *testing.T) {
	app, db := setupTestApp(t)

	resp := doRequest(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"name":     "Sanjay's Samosas",
		"email":    "sanjay@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doRequest(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    "sanjay@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var login struct {
		Token string `json:"token"`
	}
	decodeBody(t, resp, &login)
	require.NotEmpty(t, login.Token)

	resp = doRequest(t, app, http.MethodPut, "/api/users/profile", login.Token, fiber.Map{
		"name": "Sanjay's Samosas",
		"role": models.RoleVendor,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doRequest(t, app, http.MethodPost, "/api/loans", login.Token, fiber.Map{"amount": 10000})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var loan models.LoanRequest
	require.NoError(t, db.First(&loan).Error)
	assert.Equal(t, models.RepaymentStatusPending, loan.RepaymentStatus)

	// A wholesaler-gated endpoint still rejects the vendor.
	resp = doRequest(t, app, http.MethodPost, "/api/products", login.Token,
		fiber.Map{"name": "Samosa Trays", "bulk_price": 20, "stock": 100, "unit": models.UnitPieces})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	app, _ := setupTestApp(t)

	body := fiber.Map{"name": "First", "email": "dup@example.com", "password": "secret123"}
	resp := doRequest(t, app, http.MethodPost, "/api/auth/register", "", body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doRequest(t, app, http.MethodPost, "/api/auth/register", "", body)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	app, db := setupTestApp(t)
	user := createTestUser(t, db, "Priya", models.RoleVendor)

	resp := doRequest(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    user.Email,
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doRequest(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    "nobody@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestUpdateProfileRejectsUnknownRole(t *testing.T) {
	app, db := setupTestApp(t)
	user := createTestUser(t, db, "Priya", "")

	resp := doRequest(t, app, http.MethodPut, "/api/users/profile", tokenFor(t, user), fiber.Map{
		"name": "Priya",
		"role": "moderator",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetAllUsersExcludesCaller(t *testing.T) {
	app, db := setupTestApp(t)

	caller := createTestUser(t, db, "Caller", models.RoleVendor)
	createTestUser(t, db, "Someone Else", models.RoleWholesaler)

	resp := doRequest(t, app, http.MethodGet, "/api/users", tokenFor(t, caller), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Data []models.User `json:"data"`
	}
	decodeBody(t, resp, &body)
	require.Len(t, body.Data, 1)
	assert.Equal(t, "Someone Else", body.Data[0].Name)
}

func TestSearchUsers(t *testing.T) {
	app, db := setupTestApp(t)

	caller := createTestUser(t, db, "Caller", models.RoleVendor)
	createTestUser(t, db, "Anjali Investments", models.RoleInvestor)
	createTestUser(t, db, "Mumbai Masala Co.", models.RoleWholesaler)

	resp := doRequest(t, app, http.MethodGet, "/api/users/search?q=Anjali", tokenFor(t, caller), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Data []models.User `json:"data"`
	}
	decodeBody(t, resp, &body)
	require.Len(t, body.Data, 1)
	assert.Equal(t, "Anjali Investments", body.Data[0].Name)

	resp = doRequest(t, app, http.MethodGet, "/api/users/search", tokenFor(t, caller), nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
