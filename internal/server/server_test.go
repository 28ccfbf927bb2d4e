package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/responses"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, responses.APIResponse) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var resp responses.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec, resp
}

func createUserBody(email string) string {
	return fmt.Sprintf(`{"first_name":"John","last_name":"Doe","email":%q,"password":"secret"}`, email)
}

func TestHealthRoute(t *testing.T) {
	router := NewMemoryRouter()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestCreateUserEndpoint(t *testing.T) {
	router := NewMemoryRouter()

	rec, resp := doJSON(t, router, http.MethodPost, "/users", createUserBody("john@example.com"))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "success", resp.Status)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "john@example.com", data["email"])
	assert.NotEmpty(t, data["id"])
	// The hash must never appear on the wire.
	assert.NotContains(t, data, "hashed_password")

	rec, resp = doJSON(t, router, http.MethodPost, "/users", createUserBody("john@example.com"))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "error", resp.Status)

	rec, _ = doJSON(t, router, http.MethodPost, "/users", `{"first_name":"John"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestItemEndpoints(t *testing.T) {
	router := NewMemoryRouter()

	rec, resp := doJSON(t, router, http.MethodPost, "/items",
		`{"name":"Widget","description":"useful","price":"9.99","quantity":5}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "success", resp.Status)

	rec, resp = doJSON(t, router, http.MethodPost, "/items",
		`{"name":"Widget","price":"1.00","quantity":1}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec, resp = doJSON(t, router, http.MethodPost, "/items",
		`{"name":"Freebie","price":"-1.00","quantity":1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, resp = doJSON(t, router, http.MethodGet, "/items", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	items, ok := data["items"].([]interface{})
	require.True(t, ok)
	assert.Len(t, items, 1)
}

func TestCartEndpoints(t *testing.T) {
	router := NewMemoryRouter()

	_, userResp := doJSON(t, router, http.MethodPost, "/users", createUserBody("jane@example.com"))
	userData := userResp.Data.(map[string]interface{})
	userID := userData["id"].(string)

	_, itemResp := doJSON(t, router, http.MethodPost, "/items",
		`{"name":"Widget","price":"9.99","quantity":5}`)
	itemData := itemResp.Data.(map[string]interface{})
	itemID := itemData["id"].(string)

	cartPath := fmt.Sprintf("/users/%s/cart", userID)
	addBody := fmt.Sprintf(`{"item_id":%q,"quantity":2}`, itemID)

	rec, resp := doJSON(t, router, http.MethodPost, cartPath, addBody)
	assert.Equal(t, http.StatusCreated, rec.Code)
	data := resp.Data.(map[string]interface{})
	items := data["items"].([]interface{})
	require.Len(t, items, 1)

	// Same item twice is a conflict.
	rec, _ = doJSON(t, router, http.MethodPost, cartPath, addBody)
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Over-stock quantity is a conflict.
	rec, _ = doJSON(t, router, http.MethodPost, cartPath,
		fmt.Sprintf(`{"item_id":%q,"quantity":100}`, itemID))
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec, resp = doJSON(t, router, http.MethodGet, cartPath, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	data = resp.Data.(map[string]interface{})
	items = data["items"].([]interface{})
	require.Len(t, items, 1)
	entry := items[0].(map[string]interface{})
	assert.Equal(t, itemID, entry["item_id"])
	assert.Equal(t, float64(2), entry["quantity"])

	// Unknown users read back as empty carts.
	rec, resp = doJSON(t, router, http.MethodGet,
		"/users/00000000-0000-0000-0000-000000000001/cart", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	data = resp.Data.(map[string]interface{})
	assert.Empty(t, data["items"])

	// Unknown user on write is a conflict; malformed id is a bad request.
	rec, _ = doJSON(t, router, http.MethodPost,
		"/users/00000000-0000-0000-0000-000000000001/cart", addBody)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec, _ = doJSON(t, router, http.MethodPost, "/users/not-a-uuid/cart", addBody)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
