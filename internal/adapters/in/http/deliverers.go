package http

import (
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/deliverer"

	"github.com/labstack/echo/v4"
)

// RegisterDeliverer handles POST /api/v1/deliverers - the caller becomes a deliverer profile.
func (s *Server) RegisterDeliverer(c echo.Context) error {
	actor, err := ActorFrom(c)
	if err != nil {
		return err
	}

	var body RegisterDelivererRequest
	if err = bindBody(c, &body); err != nil {
		return err
	}

	cmd, err := commands.NewRegisterDelivererCommand(actor, deliverer.VehicleType(body.VehicleType), body.VehiclePlate)
	if err != nil {
		return err
	}
	if err = s.handlers.RegisterDeliverer.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, RegisterDelivererResponse{ID: actor.ID.String()})
}

// SetAvailability handles PUT /api/v1/deliverers/me/availability.
func (s *Server) SetAvailability(c echo.Context) error {
	actor, err := ActorFrom(c)
	if err != nil {
		return err
	}

	var body AvailabilityRequest
	if err = bindBody(c, &body); err != nil {
		return err
	}

	cmd, err := commands.NewSetDelivererAvailabilityCommand(actor, body.Online)
	if err != nil {
		return err
	}
	if err = s.handlers.SetDelivererAvailability.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// ApproveDeliverer handles POST /api/v1/deliverers/{delivererId}/approve. An empty body approves.
func (s *Server) ApproveDeliverer(c echo.Context) error {
	actor, err := ActorFrom(c)
	if err != nil {
		return err
	}
	delivererID, err := bindUUIDPathParam(c, "delivererId")
	if err != nil {
		return err
	}

	var body ApproveDelivererRequest
	if err = bindBody(c, &body); err != nil {
		return err
	}
	approved := body.Approved == nil || *body.Approved

	cmd, err := commands.NewApproveDelivererCommand(actor, delivererID, approved)
	if err != nil {
		return err
	}
	if err = s.handlers.ApproveDeliverer.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// ListDeliverers handles GET /api/v1/deliverers - admin overview with the busy flag.
func (s *Server) ListDeliverers(c echo.Context) error {
	actor, err := ActorFrom(c)
	if err != nil {
		return err
	}

	query, err := queries.NewListDeliverersQuery(actor)
	if err != nil {
		return err
	}
	summaries, err := s.handlers.ListDeliverers.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]DelivererSummary, len(summaries))
	for i, d := range summaries {
		response[i] = DelivererSummary{
			ID:              d.ID.String(),
			VehicleType:     string(d.VehicleType),
			VehiclePlate:    d.VehiclePlate,
			IsOnline:        d.IsOnline,
			IsApproved:      d.IsApproved,
			Rating:          d.Rating,
			TotalDeliveries: d.TotalDeliveries,
			Busy:            d.Busy,
		}
	}
	return c.JSON(http.StatusOK, response)
}

// UpdateLocation handles POST /api/v1/deliverers/me/location.
func (s *Server) UpdateLocation(c echo.Context) error {
	actor, err := ActorFrom(c)
	if err != nil {
		return err
	}

	var body UpdateLocationRequest
	if err = bindBody(c, &body); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateLocationCommand(actor, body.Latitude, body.Longitude, body.telemetry())
	if err != nil {
		return err
	}
	result, err := s.handlers.UpdateLocation.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	tracked := make([]string, len(result.Breadcrumbs))
	for i, crumb := range result.Breadcrumbs {
		tracked[i] = crumb.OrderID().String()
	}
	return c.JSON(http.StatusOK, UpdateLocationResponse{
		LocationID:    result.Location.ID().String(),
		RecordedAt:    result.Location.CreatedAt(),
		TrackedOrders: tracked,
	})
}

// GetCurrentLocation handles GET /api/v1/deliverers/{delivererId}/location.
func (s *Server) GetCurrentLocation(c echo.Context) error {
	actor, err := ActorFrom(c)
	if err != nil {
		return err
	}
	delivererID, err := bindUUIDPathParam(c, "delivererId")
	if err != nil {
		return err
	}

	query, err := queries.NewGetCurrentLocationQuery(actor, delivererID, 0)
	if err != nil {
		return err
	}
	current, err := s.handlers.GetCurrentLocation.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toCurrentLocation(current))
}

// FindNearbyDeliverers handles GET /api/v1/deliverers/nearby?latitude=&longitude=&radius_km=.
func (s *Server) FindNearbyDeliverers(c echo.Context) error {
	actor, err := ActorFrom(c)
	if err != nil {
		return err
	}
	center, err := bindLocationQuery(c, "latitude", "longitude")
	if err != nil {
		return err
	}
	radiusKm, err := bindOptionalQueryParam(c, "radius_km", queries.DefaultNearbyRadiusKm)
	if err != nil {
		return err
	}

	query, err := queries.NewFindNearbyDeliverersQuery(actor, center, radiusKm, s.nearbyFreshness)
	if err != nil {
		return err
	}
	nearby, err := s.handlers.FindNearbyDeliverers.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]NearbyDeliverer, len(nearby))
	for i, d := range nearby {
		response[i] = NearbyDeliverer{
			DelivererID:      d.DelivererID.String(),
			VehicleType:      string(d.VehicleType),
			Rating:           d.Rating,
			Location:         toLocation(d.Location),
			DistanceKm:       d.DistanceKm,
			EstimatedArrival: d.EstimatedArrival,
			LastSeenAt:       d.LastSeenAt,
		}
	}
	return c.JSON(http.StatusOK, response)
}

// GetDelivererStats handles GET /api/v1/deliverers/me/stats - the caller's delivered counts and earnings.
func (s *Server) GetDelivererStats(c echo.Context) error {
	actor, err := ActorFrom(c)
	if err != nil {
		return err
	}

	query, err := queries.NewGetDelivererStatsQuery(actor, s.now())
	if err != nil {
		return err
	}
	stats, err := s.handlers.GetDelivererStats.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, DelivererStats{
		Today:           PeriodStats(stats.Today),
		Week:            PeriodStats(stats.Week),
		Month:           PeriodStats(stats.Month),
		ActiveOrders:    stats.ActiveOrders,
		TotalDeliveries: stats.TotalDeliveries,
		Rating:          stats.Rating,
		IsOnline:        stats.IsOnline,
	})
}

// ListDelivererHistory handles GET /api/v1/deliverers/me/history?page=&per_page=.
func (s *Server) ListDelivererHistory(c echo.Context) error {
	actor, err := ActorFrom(c)
	if err != nil {
		return err
	}
	page, err := bindOptionalQueryParam(c, "page", 1)
	if err != nil {
		return err
	}
	perPage, err := bindOptionalQueryParam(c, "per_page", queries.DefaultHistoryPerPage)
	if err != nil {
		return err
	}

	query, err := queries.NewListDelivererHistoryQuery(actor, page, perPage)
	if err != nil {
		return err
	}
	history, err := s.handlers.ListDelivererHistory.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	response := DelivererHistory{
		Orders:      make([]HistoryOrder, len(history.Orders)),
		Total:       history.Total,
		CurrentPage: history.Page,
		PerPage:     history.PerPage,
		Pages:       history.Pages,
	}
	for i, o := range history.Orders {
		response.Orders[i] = HistoryOrder{
			ID:          o.ID.String(),
			Number:      o.Number,
			StoreID:     o.StoreID.String(),
			Status:      o.Status.String(),
			Street:      o.Street,
			City:        o.City,
			TotalAmount: o.TotalAmount,
			DeliveryFee: o.DeliveryFee,
			CreatedAt:   o.CreatedAt,
			UpdatedAt:   o.UpdatedAt,
		}
	}
	return c.JSON(http.StatusOK, response)
}
