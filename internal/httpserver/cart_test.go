package httpserver

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/storeflow/storefront/internal/models"
)

func seedProduct(t *testing.T, env *testEnv) models.Product {
	t.Helper()
	p := models.Product{SKU: "SKU-1", Name: "Grinder", Price: 59.90, Stock: 30}
	require.NoError(t, env.DB.Create(&p).Error)
	return p
}

func TestCartRequiresToken(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSON(http.MethodGet, "/api/v1/cart", nil, "")
	requireStatus(t, rec, http.StatusUnauthorized)
}

func TestCartAddAccumulates(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser("shopper@example.com", models.RoleAuthenticated)
	p := seedProduct(t, env)
	token := env.accessToken(user)

	first := env.doJSON(http.MethodPost, "/api/v1/cart/items", map[string]any{
		"product_id": p.ID, "quantity": 2,
	}, token)
	requireStatus(t, first, http.StatusOK)
	require.EqualValues(t, 2, decodeBody[models.CartItem](t, first).Quantity)

	second := env.doJSON(http.MethodPost, "/api/v1/cart/items", map[string]any{
		"product_id": p.ID, "quantity": 3,
	}, token)
	requireStatus(t, second, http.StatusOK)
	require.EqualValues(t, 5, decodeBody[models.CartItem](t, second).Quantity)

	list := env.doJSON(http.MethodGet, "/api/v1/cart", nil, token)
	requireStatus(t, list, http.StatusOK)
	require.Len(t, decodeBody[[]models.CartItem](t, list), 1)
}

func TestCartAddUnknownProduct(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser("shopper@example.com", models.RoleAuthenticated)

	rec := env.doJSON(http.MethodPost, "/api/v1/cart/items", map[string]any{
		"product_id": 42, "quantity": 1,
	}, env.accessToken(user))
	requireStatus(t, rec, http.StatusBadRequest)
}

func TestCartAddZeroQuantity(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser("shopper@example.com", models.RoleAuthenticated)
	p := seedProduct(t, env)

	rec := env.doJSON(http.MethodPost, "/api/v1/cart/items", map[string]any{
		"product_id": p.ID, "quantity": 0,
	}, env.accessToken(user))
	requireStatus(t, rec, http.StatusBadRequest)
}

func TestCartUpdateQuantityZeroRemoves(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser("shopper@example.com", models.RoleAuthenticated)
	p := seedProduct(t, env)
	token := env.accessToken(user)

	add := env.doJSON(http.MethodPost, "/api/v1/cart/items", map[string]any{
		"product_id": p.ID, "quantity": 2,
	}, token)
	requireStatus(t, add, http.StatusOK)

	upd := env.doJSON(http.MethodPatch, "/api/v1/cart/items/1", map[string]any{
		"quantity": 0,
	}, token)
	requireStatus(t, upd, http.StatusNoContent)

	var count int64
	env.DB.Model(&models.CartItem{}).Count(&count)
	require.Zero(t, count)
}

func TestCartUpdateSetsQuantity(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser("shopper@example.com", models.RoleAuthenticated)
	p := seedProduct(t, env)
	token := env.accessToken(user)

	env.doJSON(http.MethodPost, "/api/v1/cart/items", map[string]any{
		"product_id": p.ID, "quantity": 2,
	}, token)

	upd := env.doJSON(http.MethodPatch, "/api/v1/cart/items/1", map[string]any{
		"quantity": 7,
	}, token)
	requireStatus(t, upd, http.StatusOK)
	require.EqualValues(t, 7, decodeBody[models.CartItem](t, upd).Quantity)
}

func TestCartScopedToUser(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser("alice@example.com", models.RoleAuthenticated)
	bob := env.createUser("bob@example.com", models.RoleAuthenticated)
	p := seedProduct(t, env)

	env.doJSON(http.MethodPost, "/api/v1/cart/items", map[string]any{
		"product_id": p.ID, "quantity": 1,
	}, env.accessToken(alice))

	rec := env.doJSON(http.MethodGet, "/api/v1/cart", nil, env.accessToken(bob))
	requireStatus(t, rec, http.StatusOK)
	require.Empty(t, decodeBody[[]models.CartItem](t, rec))
}

func TestCartClear(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser("shopper@example.com", models.RoleAuthenticated)
	p := seedProduct(t, env)
	token := env.accessToken(user)

	env.doJSON(http.MethodPost, "/api/v1/cart/items", map[string]any{
		"product_id": p.ID, "quantity": 2,
	}, token)

	rec := env.doJSON(http.MethodDelete, "/api/v1/cart", nil, token)
	requireStatus(t, rec, http.StatusNoContent)

	list := env.doJSON(http.MethodGet, "/api/v1/cart", nil, token)
	require.Empty(t, decodeBody[[]models.CartItem](t, list))
}

func TestWishlistAddIdempotent(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser("shopper@example.com", models.RoleAuthenticated)
	p := seedProduct(t, env)
	token := env.accessToken(user)

	for i := 0; i < 2; i++ {
		rec := env.doJSON(http.MethodPost, "/api/v1/wishlist/items", map[string]any{
			"product_id": p.ID,
		}, token)
		requireStatus(t, rec, http.StatusOK)
	}

	list := env.doJSON(http.MethodGet, "/api/v1/wishlist", nil, token)
	requireStatus(t, list, http.StatusOK)
	require.Len(t, decodeBody[[]models.WishlistItem](t, list), 1)
}

func TestWishlistRemoveAndClear(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser("shopper@example.com", models.RoleAuthenticated)
	p := seedProduct(t, env)
	token := env.accessToken(user)

	env.doJSON(http.MethodPost, "/api/v1/wishlist/items", map[string]any{"product_id": p.ID}, token)

	rec := env.doJSON(http.MethodDelete, "/api/v1/wishlist/items/1", nil, token)
	requireStatus(t, rec, http.StatusNoContent)

	missing := env.doJSON(http.MethodDelete, "/api/v1/wishlist/items/1", nil, token)
	requireStatus(t, missing, http.StatusNotFound)

	env.doJSON(http.MethodPost, "/api/v1/wishlist/items", map[string]any{"product_id": p.ID}, token)
	cleared := env.doJSON(http.MethodDelete, "/api/v1/wishlist", nil, token)
	requireStatus(t, cleared, http.StatusNoContent)
}
