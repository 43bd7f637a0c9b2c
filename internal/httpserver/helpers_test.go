package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/kijanigreens/storefront/internal/models"
	"github.com/kijanigreens/storefront/internal/service"
	"github.com/kijanigreens/storefront/internal/store/memstore"
)

type testEnv struct {
	T       *testing.T
	E       *echo.Echo
	Store   *memstore.Store
	Catalog *CatalogHTTP
	Cart    *CartHTTP
	Contact *ContactHTTP
}

func newTestEnv(t *testing.T) *testEnv {
	st := memstore.New()

	return &testEnv{
		T:       t,
		E:       echo.New(),
		Store:   st,
		Catalog: &CatalogHTTP{Svc: &service.CatalogService{Store: st}},
		Cart:    &CartHTTP{Svc: &service.CartService{Store: st}},
		Contact: &ContactHTTP{Svc: &service.ContactService{Store: st}},
	}
}

func (env *testEnv) doJSONRequest(method, path string, body interface{}) (*httptest.ResponseRecorder, echo.Context) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)
	return rec, c
}

func (env *testEnv) seededProducts() []models.Product {
	products, err := env.Store.ListProducts(context.Background())
	require.NoError(env.T, err)
	require.NotEmpty(env.T, products)
	return products
}

func requireHTTPError(t *testing.T, err error, status int) {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected *echo.HTTPError, got %T: %v", err, err)
	require.Equal(t, status, he.Code)
}
