// Package handler contains the HTTP handlers for the application.
package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"nexstock/internal/delivery/http/middleware"
	"nexstock/internal/delivery/http/response"
	"nexstock/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// InventoryHandler holds dependencies for inventory-related handlers.
type InventoryHandler struct {
	inventorySvc usecase.InventoryUsecase
	viewSvc      usecase.InventoryViewUsecase
	syncSvc      usecase.CollectionSyncUsecase
	logger       *slog.Logger
}

// InventoryHandlerParams holds dependencies for InventoryHandler, injected by Fx.
type InventoryHandlerParams struct {
	fx.In

	InventorySvc usecase.InventoryUsecase
	ViewSvc      usecase.InventoryViewUsecase
	SyncSvc      usecase.CollectionSyncUsecase
	Logger       *slog.Logger
}

// NewInventoryHandler is the constructor for InventoryHandler, injected by Fx.
func NewInventoryHandler(params InventoryHandlerParams) *InventoryHandler {
	return &InventoryHandler{
		inventorySvc: params.InventorySvc,
		viewSvc:      params.ViewSvc,
		syncSvc:      params.SyncSvc,
		logger:       params.Logger,
	}
}

type createItemRequest struct {
	Name         string `json:"name" validate:"required"`
	SKU          string `json:"sku" validate:"required"`
	Category     string `json:"category"`
	Quantity     int    `json:"quantity" validate:"gte=0"`
	MinThreshold int    `json:"minThreshold" validate:"gte=0"`
	ImageURL     string `json:"imageUrl"`
}

type updateItemRequest struct {
	Name         *string `json:"name"`
	SKU          *string `json:"sku"`
	Category     *string `json:"category"`
	Quantity     *int    `json:"quantity" validate:"omitempty,gte=0"`
	MinThreshold *int    `json:"minThreshold" validate:"omitempty,gte=0"`
	ImageURL     *string `json:"imageUrl"`
}

// ListItems returns one page of the derived inventory view.
func (h *InventoryHandler) ListItems(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Unauthorized(c, "AUTH_FAILED", "Authentication required")
	}

	ctx := c.Request().Context()
	items, err := h.syncSvc.Snapshot(ctx, user.OrganizationID)
	if err != nil {
		return errors.WithStack(err)
	}

	query := usecase.ItemQuery{
		Search:        c.QueryParam("search"),
		Category:      c.QueryParam("category"),
		SortKey:       c.QueryParam("sortKey"),
		SortDirection: usecase.SortDirection(c.QueryParam("direction")),
		Page:          1,
	}
	if page := c.QueryParam("page"); page != "" {
		parsed, err := strconv.Atoi(page)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "page must be an integer")
		}
		query.Page = parsed
	}

	return response.Success(c, http.StatusOK, h.viewSvc.Derive(items, query), "")
}

// LowStock returns every item below its alert boundary, ignoring all view
// state.
func (h *InventoryHandler) LowStock(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Unauthorized(c, "AUTH_FAILED", "Authentication required")
	}

	items, err := h.syncSvc.Snapshot(c.Request().Context(), user.OrganizationID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.viewSvc.LowStock(items), "")
}

// StreamItems pushes full inventory snapshots over server-sent events until
// the client disconnects.
func (h *InventoryHandler) StreamItems(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Unauthorized(c, "AUTH_FAILED", "Authentication required")
	}

	ctx := c.Request().Context()
	sub, err := h.syncSvc.Subscribe(ctx, user.OrganizationID)
	if err != nil {
		return errors.WithStack(err)
	}
	defer sub.Cancel()

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set(echo.HeaderCacheControl, "no-cache")
	res.Header().Set(echo.HeaderConnection, "keep-alive")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	for {
		select {
		case <-ctx.Done():
			return nil
		case items, open := <-sub.Snapshots():
			if !open {
				// Feed died upstream; the client reconnects on its own.
				return nil
			}

			payload, err := json.Marshal(items)
			if err != nil {
				return errors.WithStack(err)
			}

			if _, err := fmt.Fprintf(res, "data: %s\n\n", payload); err != nil {
				return nil
			}
			res.Flush()
		}
	}
}

// ItemHistory lists the audit trail of one item, newest first.
func (h *InventoryHandler) ItemHistory(c echo.Context) error {
	entries, err := h.inventorySvc.ItemHistory(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entries, "")
}

// CreateItem handles the item creation request.
func (h *InventoryHandler) CreateItem(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Unauthorized(c, "AUTH_FAILED", "Authentication required")
	}

	var req createItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid item input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	id, err := h.inventorySvc.CreateItem(c.Request().Context(), &usecase.CreateItemInput{
		Name:           req.Name,
		SKU:            req.SKU,
		Category:       req.Category,
		Quantity:       req.Quantity,
		MinThreshold:   req.MinThreshold,
		ImageURL:       req.ImageURL,
		OrganizationID: user.OrganizationID,
		ActedBy:        user.ID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"id": id}, "Item created successfully")
}

// UpdateItem handles the partial item update request.
func (h *InventoryHandler) UpdateItem(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Unauthorized(c, "AUTH_FAILED", "Authentication required")
	}

	var req updateItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid item input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	err := h.inventorySvc.UpdateItem(c.Request().Context(), c.Param("id"), &usecase.UpdateItemInput{
		Name:         req.Name,
		SKU:          req.SKU,
		Category:     req.Category,
		Quantity:     req.Quantity,
		MinThreshold: req.MinThreshold,
		ImageURL:     req.ImageURL,
		ActedBy:      user.ID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Item updated successfully")
}

// DeleteItem handles the item deletion request.
func (h *InventoryHandler) DeleteItem(c echo.Context) error {
	if err := h.inventorySvc.DeleteItem(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Item deleted successfully")
}
