package httpserver

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/kijanigreens/storefront/internal/logging"
	"github.com/kijanigreens/storefront/internal/service"
	"github.com/kijanigreens/storefront/internal/transport"
)

type CartHTTP struct {
	Svc *service.CartService
}

func (h *CartHTTP) GetCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.get_cart")

	items, err := h.Svc.ListCartItemsWithProducts(ctx)
	if err != nil {
		l.Error("get_cart_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch cart items")
	}

	return c.JSON(http.StatusOK, items)
}

func (h *CartHTTP) GetCartTotal(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.get_total")

	total, count, err := h.Svc.CartTotal(ctx)
	if err != nil {
		l.Error("get_cart_total_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to compute cart total")
	}

	return c.JSON(http.StatusOK, transport.CartTotalResponse{Total: total, Items: count})
}

func (h *CartHTTP) AddToCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add_to_cart")

	var req transport.AddCartItemRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("add_to_cart_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid cart item data")
	}
	if req.ProductID == uuid.Nil || req.Quantity <= 0 {
		l.Warn("add_to_cart_error", "status", 400, "reason", "productId and positive quantity required")
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid cart item data")
	}

	item, err := h.Svc.AddCartItem(ctx, req.ProductID, req.Quantity)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("add_to_cart_error", "status", 400, "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid cart item data")
		}
		l.Error("add_to_cart_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to add cart item")
	}

	l.Info("cart_item_added", "id", item.ID, "quantity", item.Quantity)
	return c.JSON(http.StatusCreated, item)
}

func (h *CartHTTP) UpdateCartItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.update_item")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		l.Warn("update_cart_item_error", "status", 404, "reason", "id is not a uuid", "error", err)
		return echo.NewHTTPError(http.StatusNotFound, "Cart item not found")
	}

	var req transport.UpdateCartItemRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_cart_item_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid quantity")
	}
	if req.Quantity == nil || *req.Quantity < 0 {
		l.Warn("update_cart_item_error", "status", 400, "reason", "quantity must be a non-negative number")
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid quantity")
	}

	item, removed, err := h.Svc.UpdateCartItem(ctx, id, *req.Quantity)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("update_cart_item_error", "status", 404, "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "Cart item not found")
		}
		l.Error("update_cart_item_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update cart item")
	}

	if removed {
		l.Info("cart_item_removed_via_update", "id", id)
		return c.NoContent(http.StatusNoContent)
	}

	l.Info("cart_item_updated", "id", id, "quantity", item.Quantity)
	return c.JSON(http.StatusOK, item)
}

func (h *CartHTTP) DeleteFromCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.delete_item")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		l.Warn("delete_cart_item_error", "status", 404, "reason", "id is not a uuid", "error", err)
		return echo.NewHTTPError(http.StatusNotFound, "Cart item not found")
	}

	removed, err := h.Svc.DeleteCartItem(ctx, id)
	if err != nil {
		l.Error("delete_cart_item_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete cart item")
	}
	if !removed {
		l.Warn("delete_cart_item_error", "status", 404, "reason", "unknown id")
		return echo.NewHTTPError(http.StatusNotFound, "Cart item not found")
	}

	l.Info("cart_item_deleted", "id", id)
	return c.NoContent(http.StatusNoContent)
}
