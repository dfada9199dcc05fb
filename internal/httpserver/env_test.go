package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/storeflow/storefront/internal/db"
	"github.com/storeflow/storefront/internal/events"
	"github.com/storeflow/storefront/internal/hash"
	"github.com/storeflow/storefront/internal/logging"
	"github.com/storeflow/storefront/internal/models"
	"github.com/storeflow/storefront/internal/repo"
	"github.com/storeflow/storefront/internal/service"
	"github.com/storeflow/storefront/internal/tokens"
	"github.com/storeflow/storefront/internal/transport"
)

var (
	testAccessSecret  = []byte("test-access-secret")
	testRefreshSecret = []byte("test-refresh-secret")
)

type recordedEvent struct {
	Topic string
	Event map[string]any
}

type stubPublisher struct {
	events []recordedEvent
}

func (p *stubPublisher) PublishEvent(ctx context.Context, topic, key string, event any) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	p.events = append(p.events, recordedEvent{Topic: topic, Event: m})
	return nil
}

func (p *stubPublisher) Close() error { return nil }

type stubOrderStore struct {
	placed    [][]transport.OrderItemInput
	placeID   uint
	placeErr  error
	listErr   error
	listOrder []models.Order
}

func (s *stubOrderStore) PlaceOrder(ctx context.Context, userID uint, items []transport.OrderItemInput) (uint, error) {
	s.placed = append(s.placed, items)
	if s.placeErr != nil {
		return 0, s.placeErr
	}
	return s.placeID, nil
}

func (s *stubOrderStore) ListByUser(ctx context.Context, userID uint) ([]models.Order, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.listOrder, nil
}

type testEnv struct {
	T      *testing.T
	E      *echo.Echo
	DB     *gorm.DB
	Client *db.Client
	Events *stubPublisher
	Orders *stubOrderStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	client := db.NewWithHandles(gdb, nil)
	require.NoError(t, client.Migrate())

	pub := &stubPublisher{}
	orders := &stubOrderStore{placeID: 1}

	catalogRepo := &repo.CatalogRepo{Client: client}

	authSvc := &service.AuthService{
		Users:         &repo.UserRepo{Client: client},
		Tokens:        &repo.TokenRepo{Client: client},
		Events:        pub,
		AccessSecret:  testAccessSecret,
		RefreshSecret: testRefreshSecret,
		AccessTTL:     15 * time.Minute,
		RefreshTTL:    7 * 24 * time.Hour,
	}

	e := echo.New()
	e.HTTPErrorHandler = NewErrorHandler(logging.New("error"), &events.Tracker{}, false)

	deps := &Deps{
		AccessSecret: testAccessSecret,
		Auth:         &AuthHTTP{Svc: authSvc},
		Catalog:      &CatalogHTTP{Svc: &service.CatalogService{Repo: catalogRepo, Events: pub}},
		Cart:         &CartHTTP{Svc: &service.CartService{Repo: &repo.CartRepo{Client: client}, Products: catalogRepo, Events: pub}},
		Wishlist:     &WishlistHTTP{Svc: &service.WishlistService{Repo: &repo.WishlistRepo{Client: client}, Products: catalogRepo}},
		Orders:       &OrderHTTP{Svc: &service.OrderService{Store: orders, Events: pub}},
		Users:        &UserHTTP{Svc: &service.UserService{Repo: &repo.UserRepo{Client: client}}},
		Health:       &HealthHTTP{DB: client},
	}
	Register(e, deps)

	return &testEnv{T: t, E: e, DB: gdb, Client: client, Events: pub, Orders: orders}
}

func (env *testEnv) createUser(email, role string) *models.User {
	env.T.Helper()
	pw, err := hash.HashPassword("password123")
	require.NoError(env.T, err)
	u := &models.User{
		Email:        email,
		PasswordHash: pw,
		DisplayName:  "Test User",
		Role:         role,
	}
	require.NoError(env.T, env.DB.Create(u).Error)
	return u
}

func (env *testEnv) accessToken(u *models.User) string {
	env.T.Helper()
	tok, err := tokens.SignAccessToken(
		strconv.FormatUint(uint64(u.ID), 10), u.Email, u.Role,
		testAccessSecret, 15*time.Minute,
	)
	require.NoError(env.T, err)
	return tok
}

func (env *testEnv) doJSON(method, path string, body any, token string) *httptest.ResponseRecorder {
	env.T.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, rec.Code, "body: %s", rec.Body.String())
}
