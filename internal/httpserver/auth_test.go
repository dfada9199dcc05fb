package httpserver

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/storeflow/storefront/internal/models"
)

func TestRegister(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSON(http.MethodPost, "/api/v1/auth/register", map[string]string{
		"email":        "shopper@example.com",
		"password":     "password123",
		"display_name": "Shopper",
	}, "")
	requireStatus(t, rec, http.StatusCreated)

	resp := decodeBody[map[string]any](t, rec)
	require.NotEmpty(t, resp["access_token"])
	require.NotEmpty(t, resp["refresh_token"])

	user := resp["user"].(map[string]any)
	require.Equal(t, "shopper@example.com", user["email"])
	require.Equal(t, models.RoleAuthenticated, user["role"])

	require.Len(t, env.Events.events, 1)
	require.Equal(t, "user_registered", env.Events.events[0].Event["type"])
}

func TestRegisterValidation(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSON(http.MethodPost, "/api/v1/auth/register", map[string]string{
		"email":    "not-an-email",
		"password": "short",
	}, "")
	requireStatus(t, rec, http.StatusBadRequest)

	resp := decodeBody[map[string]any](t, rec)
	require.Equal(t, "Validation failed", resp["message"])
	require.Len(t, resp["issues"], 2)

	var count int64
	env.DB.Model(&models.User{}).Count(&count)
	require.Zero(t, count)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	env.createUser("taken@example.com", models.RoleAuthenticated)

	rec := env.doJSON(http.MethodPost, "/api/v1/auth/register", map[string]string{
		"email":    "taken@example.com",
		"password": "password123",
	}, "")
	requireStatus(t, rec, http.StatusConflict)
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	env.createUser("shopper@example.com", models.RoleAuthenticated)

	rec := env.doJSON(http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    "shopper@example.com",
		"password": "password123",
	}, "")
	requireStatus(t, rec, http.StatusOK)

	resp := decodeBody[map[string]any](t, rec)
	require.NotEmpty(t, resp["access_token"])
	require.NotEmpty(t, resp["refresh_token"])
}

func TestLoginWrongPassword(t *testing.T) {
	env := newTestEnv(t)
	env.createUser("shopper@example.com", models.RoleAuthenticated)

	rec := env.doJSON(http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    "shopper@example.com",
		"password": "wrong-password",
	}, "")
	requireStatus(t, rec, http.StatusUnauthorized)
}

func TestRefreshToken(t *testing.T) {
	env := newTestEnv(t)
	env.createUser("shopper@example.com", models.RoleAuthenticated)

	login := env.doJSON(http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    "shopper@example.com",
		"password": "password123",
	}, "")
	requireStatus(t, login, http.StatusOK)
	first := decodeBody[map[string]string](t, login)

	rec := env.doJSON(http.MethodPost, "/api/v1/auth/refresh-token", map[string]string{
		"refresh_token": first["refresh_token"],
	}, "")
	requireStatus(t, rec, http.StatusOK)

	pair := decodeBody[map[string]string](t, rec)
	require.NotEmpty(t, pair["access_token"])
	require.NotEmpty(t, pair["refresh_token"])
	require.NotEqual(t, first["refresh_token"], pair["refresh_token"])

	// the rotated-out token is revoked
	again := env.doJSON(http.MethodPost, "/api/v1/auth/refresh-token", map[string]string{
		"refresh_token": first["refresh_token"],
	}, "")
	requireStatus(t, again, http.StatusUnauthorized)
}

func TestRefreshTokenInvalid(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSON(http.MethodPost, "/api/v1/auth/refresh-token", map[string]string{
		"refresh_token": "definitely-not-a-jwt",
	}, "")
	requireStatus(t, rec, http.StatusUnauthorized)
}

func TestAccessTokenRejectedAsRefresh(t *testing.T) {
	env := newTestEnv(t)
	u := env.createUser("shopper@example.com", models.RoleAuthenticated)

	rec := env.doJSON(http.MethodPost, "/api/v1/auth/refresh-token", map[string]string{
		"refresh_token": env.accessToken(u),
	}, "")
	requireStatus(t, rec, http.StatusUnauthorized)
}
