package http

import (
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/request"

	"github.com/labstack/echo/v4"
)

func toEndpoint(address string, loc *Location) (request.Endpoint, error) {
	endpoint := request.Endpoint{Address: address}
	if loc == nil {
		return endpoint, nil
	}
	l, err := kernel.NewLocation(loc.Latitude, loc.Longitude)
	if err != nil {
		return request.Endpoint{}, err
	}
	endpoint.Location = &l
	return endpoint, nil
}

// CreateDeliveryRequest handles POST /api/v1/delivery-requests.
func (s *Server) CreateDeliveryRequest(c echo.Context) error {
	actor, err := ActorFrom(c)
	if err != nil {
		return err
	}

	var body CreateDeliveryRequestRequest
	if err = bindBody(c, &body); err != nil {
		return err
	}
	pickup, err := toEndpoint(body.PickupAddress, body.PickupLocation)
	if err != nil {
		return err
	}
	dropoff, err := toEndpoint(body.DeliveryAddress, body.DeliveryLocation)
	if err != nil {
		return err
	}

	requestID := kernel.NewUUID()
	cmd, err := commands.NewCreateDeliveryRequestCommand(actor, requestID, pickup, dropoff,
		body.ItemDescription, kernel.PaymentMethod(body.PaymentMethod))
	if err != nil {
		return err
	}

	estimate, err := s.handlers.CreateDeliveryRequest.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, CreateDeliveryRequestResponse{
		ID:               requestID.String(),
		EstimatedPrice:   estimate.Price,
		EstimatedMinutes: estimate.Minutes,
	})
}

// ListAvailableDeliveryRequests handles GET /api/v1/delivery-requests/available.
func (s *Server) ListAvailableDeliveryRequests(c echo.Context) error {
	actor, err := ActorFrom(c)
	if err != nil {
		return err
	}

	query, err := queries.NewListAvailableDeliveryRequestsQuery(actor)
	if err != nil {
		return err
	}
	available, err := s.handlers.ListAvailableDeliveryRequests.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]AvailableDeliveryRequest, len(available))
	for i, r := range available {
		response[i] = AvailableDeliveryRequest{
			ID:               r.ID.String(),
			PickupAddress:    r.PickupAddress,
			PickupLocation:   toOptionalLocation(r.PickupLocation),
			DeliveryAddress:  r.DropoffAddress,
			DeliveryLocation: toOptionalLocation(r.DropoffLocation),
			ItemDescription:  r.ItemDescription,
			EstimatedPrice:   r.EstimatedPrice,
			EstimatedMinutes: r.EstimatedMinutes,
			CreatedAt:        r.CreatedAt,
		}
	}
	return c.JSON(http.StatusOK, response)
}

// ListMyDeliveryRequests handles GET /api/v1/delivery-requests/mine - requests the caller created
// as a client or claimed as a deliverer.
func (s *Server) ListMyDeliveryRequests(c echo.Context) error {
	actor, err := ActorFrom(c)
	if err != nil {
		return err
	}

	query, err := queries.NewListMyDeliveryRequestsQuery(actor)
	if err != nil {
		return err
	}
	mine, err := s.handlers.ListMyDeliveryRequests.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]MyDeliveryRequest, len(mine))
	for i, r := range mine {
		response[i] = MyDeliveryRequest{
			ID:               r.ID.String(),
			ClientID:         r.ClientID.String(),
			DelivererID:      optionalID(r.DelivererID),
			Status:           r.Status.String(),
			PickupAddress:    r.PickupAddress,
			PickupLocation:   toOptionalLocation(r.PickupLocation),
			DeliveryAddress:  r.DropoffAddress,
			DeliveryLocation: toOptionalLocation(r.DropoffLocation),
			ItemDescription:  r.ItemDescription,
			EstimatedPrice:   r.EstimatedPrice,
			EstimatedMinutes: r.EstimatedMinutes,
			PaymentMethod:    string(r.PaymentMethod),
			CreatedAt:        r.CreatedAt,
			UpdatedAt:        r.UpdatedAt,
		}
	}
	return c.JSON(http.StatusOK, response)
}

// ClaimDeliveryRequest handles POST /api/v1/delivery-requests/{requestId}/claim.
func (s *Server) ClaimDeliveryRequest(c echo.Context) error {
	actor, err := ActorFrom(c)
	if err != nil {
		return err
	}
	requestID, err := bindUUIDPathParam(c, "requestId")
	if err != nil {
		return err
	}

	cmd, err := commands.NewClaimDeliveryRequestCommand(requestID, actor)
	if err != nil {
		return err
	}
	if err = s.handlers.ClaimDeliveryRequest.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// ChangeDeliveryRequestStatus handles PUT /api/v1/delivery-requests/{requestId}/status.
func (s *Server) ChangeDeliveryRequestStatus(c echo.Context) error {
	actor, err := ActorFrom(c)
	if err != nil {
		return err
	}
	requestID, err := bindUUIDPathParam(c, "requestId")
	if err != nil {
		return err
	}

	var body ChangeStatusRequest
	if err = bindBody(c, &body); err != nil {
		return err
	}
	status, err := request.StatusFromString(body.Status)
	if err != nil {
		return err
	}

	cmd, err := commands.NewChangeDeliveryRequestStatusCommand(requestID, actor, status)
	if err != nil {
		return err
	}
	if err = s.handlers.ChangeDeliveryRequestStatus.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
