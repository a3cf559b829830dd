package http

import (
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

func parseBodyUUID(name, value string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(value)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

// PlaceOrder handles POST /api/v1/orders - ingests an order from the storefront.
func (s *Server) PlaceOrder(c echo.Context) error {
	actor, err := ActorFrom(c)
	if err != nil {
		return err
	}

	var body PlaceOrderRequest
	if err = bindBody(c, &body); err != nil {
		return err
	}

	clientID, err := parseBodyUUID("client_id", body.ClientID)
	if err != nil {
		return err
	}
	storeID, err := parseBodyUUID("store_id", body.StoreID)
	if err != nil {
		return err
	}
	destination, err := kernel.NewLocation(body.Address.Latitude, body.Address.Longitude)
	if err != nil {
		return err
	}
	address, err := order.NewDeliveryAddress(body.Address.Street, body.Address.City, body.Address.State,
		body.Address.ZipCode, destination)
	if err != nil {
		return err
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(actor, orderID, clientID, storeID, address,
		body.TotalAmount, body.DeliveryFee, kernel.PaymentMethod(body.PaymentMethod))
	if err != nil {
		return err
	}

	number, err := s.handlers.PlaceOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, PlaceOrderResponse{ID: orderID.String(), Number: number})
}

// ListAvailableOrders handles GET /api/v1/orders/available - ready orders nobody has claimed.
func (s *Server) ListAvailableOrders(c echo.Context) error {
	actor, err := ActorFrom(c)
	if err != nil {
		return err
	}

	query, err := queries.NewListAvailableOrdersQuery(actor)
	if err != nil {
		return err
	}

	orders, err := s.handlers.ListAvailableOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toAvailableOrders(orders))
}

// ClaimOrder handles POST /api/v1/orders/{orderId}/claim.
func (s *Server) ClaimOrder(c echo.Context) error {
	actor, err := ActorFrom(c)
	if err != nil {
		return err
	}
	orderID, err := bindUUIDPathParam(c, "orderId")
	if err != nil {
		return err
	}

	cmd, err := commands.NewClaimOrderCommand(orderID, actor)
	if err != nil {
		return err
	}
	if err = s.handlers.ClaimOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// ChangeOrderStatus handles PUT /api/v1/orders/{orderId}/status.
func (s *Server) ChangeOrderStatus(c echo.Context) error {
	actor, err := ActorFrom(c)
	if err != nil {
		return err
	}
	orderID, err := bindUUIDPathParam(c, "orderId")
	if err != nil {
		return err
	}

	var body ChangeStatusRequest
	if err = bindBody(c, &body); err != nil {
		return err
	}
	status, err := order.StatusFromString(body.Status)
	if err != nil {
		return err
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, actor, status, body.Reason)
	if err != nil {
		return err
	}
	if err = s.handlers.ChangeOrderStatus.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// ReassignOrder handles POST /api/v1/orders/{orderId}/reassign - admin only.
func (s *Server) ReassignOrder(c echo.Context) error {
	actor, err := ActorFrom(c)
	if err != nil {
		return err
	}
	orderID, err := bindUUIDPathParam(c, "orderId")
	if err != nil {
		return err
	}

	var body ReassignOrderRequest
	if err = bindBody(c, &body); err != nil {
		return err
	}
	delivererID, err := parseBodyUUID("deliverer_id", body.DelivererID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewReassignOrderCommand(actor, orderID, delivererID, body.Reason)
	if err != nil {
		return err
	}
	if err = s.handlers.ReassignOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// GetLatestTracking handles GET /api/v1/orders/{orderId}/tracking.
func (s *Server) GetLatestTracking(c echo.Context) error {
	actor, err := ActorFrom(c)
	if err != nil {
		return err
	}
	orderID, err := bindUUIDPathParam(c, "orderId")
	if err != nil {
		return err
	}

	query, err := queries.NewGetLatestTrackingQuery(actor, orderID)
	if err != nil {
		return err
	}
	point, err := s.handlers.GetLatestTracking.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toTrackingPoint(point))
}

// GetTrackingHistory handles GET /api/v1/orders/{orderId}/tracking/history?limit=.
func (s *Server) GetTrackingHistory(c echo.Context) error {
	actor, err := ActorFrom(c)
	if err != nil {
		return err
	}
	orderID, err := bindUUIDPathParam(c, "orderId")
	if err != nil {
		return err
	}
	limit, err := bindOptionalQueryParam(c, "limit", queries.DefaultTrackingHistoryLimit)
	if err != nil {
		return err
	}

	query, err := queries.NewGetTrackingHistoryQuery(actor, orderID, limit)
	if err != nil {
		return err
	}
	points, err := s.handlers.GetTrackingHistory.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]TrackingPoint, len(points))
	for i, p := range points {
		response[i] = toTrackingPoint(p)
	}
	return c.JSON(http.StatusOK, response)
}

// TrackOrder handles GET /api/v1/orders/{orderId}/track - status, latest breadcrumb, the
// deliverer's position and recent history in one response.
func (s *Server) TrackOrder(c echo.Context) error {
	actor, err := ActorFrom(c)
	if err != nil {
		return err
	}
	orderID, err := bindUUIDPathParam(c, "orderId")
	if err != nil {
		return err
	}

	query, err := queries.NewTrackOrderQuery(actor, orderID)
	if err != nil {
		return err
	}
	view, err := s.handlers.TrackOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toOrderTrackingView(view))
}

// GetProblematicOrders handles GET /api/v1/orders/problematic - admin report of stuck orders.
func (s *Server) GetProblematicOrders(c echo.Context) error {
	actor, err := ActorFrom(c)
	if err != nil {
		return err
	}

	query, err := queries.NewGetProblematicOrdersQuery(actor, s.now())
	if err != nil {
		return err
	}
	stuck, err := s.handlers.GetProblematicOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]ProblematicOrder, len(stuck))
	for i, o := range stuck {
		response[i] = ProblematicOrder{
			ID:             o.ID.String(),
			Number:         o.Number,
			StoreID:        o.StoreID.String(),
			DelivererID:    optionalID(o.DelivererID),
			Status:         o.Status.String(),
			Kind:           string(o.Kind),
			MinutesElapsed: o.MinutesElapsed,
			UpdatedAt:      o.UpdatedAt,
		}
	}
	return c.JSON(http.StatusOK, response)
}

// SuspendStore handles POST /api/v1/stores/{storeId}/suspend - cancels the store's pending orders.
func (s *Server) SuspendStore(c echo.Context) error {
	actor, err := ActorFrom(c)
	if err != nil {
		return err
	}
	storeID, err := bindUUIDPathParam(c, "storeId")
	if err != nil {
		return err
	}

	var body SuspendStoreRequest
	if err = bindBody(c, &body); err != nil {
		return err
	}

	cmd, err := commands.NewCancelStorePendingOrdersCommand(actor, storeID, body.Reason)
	if err != nil {
		return err
	}
	cancelled, err := s.handlers.CancelStorePendingOrders.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, SuspendStoreResponse{CancelledOrders: cancelled})
}
