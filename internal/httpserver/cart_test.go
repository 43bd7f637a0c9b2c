package httpserver

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/kijanigreens/storefront/internal/models"
	"github.com/kijanigreens/storefront/internal/transport"
)

func TestGetCartEmpty(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodGet, "/api/cart", nil)
	require.NoError(t, env.Cart.GetCart(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, "[]", rec.Body.String())
}

func TestAddToCart(t *testing.T) {
	env := newTestEnv(t)
	product := env.seededProducts()[0]

	payload := map[string]interface{}{
		"productId": product.ID,
		"quantity":  2,
	}
	rec, c := env.doJSONRequest(http.MethodPost, "/api/cart", payload)
	require.NoError(t, env.Cart.AddToCart(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.CartItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEqual(t, uuid.Nil, created.ID)
	require.Equal(t, product.ID, created.ProductID)
	require.Equal(t, 2, created.Quantity)

	// Adding the same product again merges into the existing line.
	payload["quantity"] = 3
	rec, c = env.doJSONRequest(http.MethodPost, "/api/cart", payload)
	require.NoError(t, env.Cart.AddToCart(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var merged models.CartItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &merged))
	require.Equal(t, created.ID, merged.ID)
	require.Equal(t, 5, merged.Quantity)
}

func TestAddToCartInvalidBody(t *testing.T) {
	env := newTestEnv(t)
	product := env.seededProducts()[0]

	cases := []map[string]interface{}{
		{"quantity": 2},
		{"productId": product.ID},
		{"productId": product.ID, "quantity": 0},
		{"productId": product.ID, "quantity": -1},
		{"productId": product.ID, "quantity": 1.5},
		{"productId": "not-a-uuid", "quantity": 2},
	}
	for _, payload := range cases {
		_, c := env.doJSONRequest(http.MethodPost, "/api/cart", payload)
		requireHTTPError(t, env.Cart.AddToCart(c), http.StatusBadRequest)
	}
}

func TestGetCartJoinsProducts(t *testing.T) {
	env := newTestEnv(t)
	product := env.seededProducts()[1]

	payload := map[string]interface{}{"productId": product.ID, "quantity": 4}
	_, c := env.doJSONRequest(http.MethodPost, "/api/cart", payload)
	require.NoError(t, env.Cart.AddToCart(c))

	// A line for a product nobody knows must not show up in the view.
	payload = map[string]interface{}{"productId": uuid.New(), "quantity": 1}
	_, c = env.doJSONRequest(http.MethodPost, "/api/cart", payload)
	require.NoError(t, env.Cart.AddToCart(c))

	rec, c := env.doJSONRequest(http.MethodGet, "/api/cart", nil)
	require.NoError(t, env.Cart.GetCart(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp []models.CartItemWithProduct
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	require.Equal(t, product.ID, resp[0].Product.ID)
	require.Equal(t, product.Price, resp[0].Product.Price)
	require.Equal(t, 4, resp[0].Quantity)
}

func TestUpdateCartItem(t *testing.T) {
	env := newTestEnv(t)
	product := env.seededProducts()[0]

	payload := map[string]interface{}{"productId": product.ID, "quantity": 2}
	rec, c := env.doJSONRequest(http.MethodPost, "/api/cart", payload)
	require.NoError(t, env.Cart.AddToCart(c))
	var item models.CartItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &item))

	rec, c = env.doJSONRequest(http.MethodPatch, "/api/cart/"+item.ID.String(), map[string]int{"quantity": 7})
	c.SetParamNames("id")
	c.SetParamValues(item.ID.String())
	require.NoError(t, env.Cart.UpdateCartItem(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var updated models.CartItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	require.Equal(t, 7, updated.Quantity)
}

func TestUpdateCartItemZeroQuantityDeletes(t *testing.T) {
	env := newTestEnv(t)
	product := env.seededProducts()[0]

	payload := map[string]interface{}{"productId": product.ID, "quantity": 2}
	rec, c := env.doJSONRequest(http.MethodPost, "/api/cart", payload)
	require.NoError(t, env.Cart.AddToCart(c))
	var item models.CartItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &item))

	rec, c = env.doJSONRequest(http.MethodPatch, "/api/cart/"+item.ID.String(), map[string]int{"quantity": 0})
	c.SetParamNames("id")
	c.SetParamValues(item.ID.String())
	require.NoError(t, env.Cart.UpdateCartItem(c))
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Empty(t, rec.Body.String())

	rec, c = env.doJSONRequest(http.MethodGet, "/api/cart", nil)
	require.NoError(t, env.Cart.GetCart(c))
	require.JSONEq(t, "[]", rec.Body.String())
}

func TestUpdateCartItemBadRequests(t *testing.T) {
	env := newTestEnv(t)
	product := env.seededProducts()[0]

	payload := map[string]interface{}{"productId": product.ID, "quantity": 2}
	rec, c := env.doJSONRequest(http.MethodPost, "/api/cart", payload)
	require.NoError(t, env.Cart.AddToCart(c))
	var item models.CartItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &item))

	// Missing quantity.
	_, c = env.doJSONRequest(http.MethodPatch, "/api/cart/"+item.ID.String(), map[string]string{})
	c.SetParamNames("id")
	c.SetParamValues(item.ID.String())
	requireHTTPError(t, env.Cart.UpdateCartItem(c), http.StatusBadRequest)

	// Negative quantity.
	_, c = env.doJSONRequest(http.MethodPatch, "/api/cart/"+item.ID.String(), map[string]int{"quantity": -1})
	c.SetParamNames("id")
	c.SetParamValues(item.ID.String())
	requireHTTPError(t, env.Cart.UpdateCartItem(c), http.StatusBadRequest)

	// Non-numeric quantity.
	_, c = env.doJSONRequest(http.MethodPatch, "/api/cart/"+item.ID.String(), map[string]string{"quantity": "two"})
	c.SetParamNames("id")
	c.SetParamValues(item.ID.String())
	requireHTTPError(t, env.Cart.UpdateCartItem(c), http.StatusBadRequest)
}

func TestUpdateCartItemNotFound(t *testing.T) {
	env := newTestEnv(t)

	id := uuid.New().String()
	_, c := env.doJSONRequest(http.MethodPatch, "/api/cart/"+id, map[string]int{"quantity": 5})
	c.SetParamNames("id")
	c.SetParamValues(id)
	requireHTTPError(t, env.Cart.UpdateCartItem(c), http.StatusNotFound)
}

func TestDeleteFromCart(t *testing.T) {
	env := newTestEnv(t)
	product := env.seededProducts()[0]

	payload := map[string]interface{}{"productId": product.ID, "quantity": 2}
	rec, c := env.doJSONRequest(http.MethodPost, "/api/cart", payload)
	require.NoError(t, env.Cart.AddToCart(c))
	var item models.CartItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &item))

	rec, c = env.doJSONRequest(http.MethodDelete, "/api/cart/"+item.ID.String(), nil)
	c.SetParamNames("id")
	c.SetParamValues(item.ID.String())
	require.NoError(t, env.Cart.DeleteFromCart(c))
	require.Equal(t, http.StatusNoContent, rec.Code)

	// The second delete finds nothing.
	_, c = env.doJSONRequest(http.MethodDelete, "/api/cart/"+item.ID.String(), nil)
	c.SetParamNames("id")
	c.SetParamValues(item.ID.String())
	requireHTTPError(t, env.Cart.DeleteFromCart(c), http.StatusNotFound)
}

func TestGetCartTotal(t *testing.T) {
	env := newTestEnv(t)
	products := env.seededProducts()

	payload := map[string]interface{}{"productId": products[0].ID, "quantity": 2}
	_, c := env.doJSONRequest(http.MethodPost, "/api/cart", payload)
	require.NoError(t, env.Cart.AddToCart(c))

	payload = map[string]interface{}{"productId": products[2].ID, "quantity": 1}
	_, c = env.doJSONRequest(http.MethodPost, "/api/cart", payload)
	require.NoError(t, env.Cart.AddToCart(c))

	rec, c := env.doJSONRequest(http.MethodGet, "/api/cart/total", nil)
	require.NoError(t, env.Cart.GetCartTotal(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp transport.CartTotalResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	// 2 * 80.00 + 1 * 75.00
	require.Equal(t, "235.00", resp.Total)
	require.Equal(t, 3, resp.Items)
}
