package http

import (
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/geofence"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// EstimateFee handles GET /api/v1/pricing/fee?distance_km=&city_id=.
func (s *Server) EstimateFee(c echo.Context) error {
	var distanceKm float64
	if err := bindQueryParam(c, "distance_km", true, &distanceKm); err != nil {
		return err
	}
	cityID, err := bindOptionalUUIDQueryParam(c, "city_id")
	if err != nil {
		return err
	}

	query, err := queries.NewEstimateFeeQuery(distanceKm, cityID)
	if err != nil {
		return err
	}
	quote, err := s.handlers.EstimateFee.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toFeeQuote(quote))
}

// GetOrderLimits handles GET /api/v1/pricing/limits?city_id=.
func (s *Server) GetOrderLimits(c echo.Context) error {
	cityID, err := bindOptionalUUIDQueryParam(c, "city_id")
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderLimitsQuery(cityID)
	if err != nil {
		return err
	}
	limits, err := s.handlers.GetOrderLimits.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, OrderLimits{
		MinimumOrderValue:       limits.MinimumOrderValue,
		MaximumDeliveryDistance: limits.MaximumDeliveryDistance,
	})
}

// EstimateDelivery handles POST /api/v1/pricing/estimate-delivery.
func (s *Server) EstimateDelivery(c echo.Context) error {
	var body EstimateDeliveryRequest
	if err := bindBody(c, &body); err != nil {
		return err
	}
	if body.Pickup == nil {
		return errs.NewValueIsRequiredError("pickup")
	}
	if body.Dropoff == nil {
		return errs.NewValueIsRequiredError("dropoff")
	}
	pickup, err := kernel.NewLocation(body.Pickup.Latitude, body.Pickup.Longitude)
	if err != nil {
		return err
	}
	dropoff, err := kernel.NewLocation(body.Dropoff.Latitude, body.Dropoff.Longitude)
	if err != nil {
		return err
	}

	query, err := queries.NewEstimateDeliveryQuery(pickup, dropoff)
	if err != nil {
		return err
	}
	estimate, err := s.handlers.EstimateDelivery.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, DeliveryEstimate{
		DistanceKm:       estimate.DistanceKm,
		EstimatedMinutes: estimate.EstimatedMinutes,
		EstimatedPrice:   estimate.EstimatedPrice,
		EstimatedArrival: estimate.EstimatedArrival,
		Pickup:           toLocation(estimate.Pickup),
		Dropoff:          toLocation(estimate.Dropoff),
	})
}

// GetDeliveryZones handles GET /api/v1/zones?latitude=&longitude=.
func (s *Server) GetDeliveryZones(c echo.Context) error {
	point, err := bindLocationQuery(c, "latitude", "longitude")
	if err != nil {
		return err
	}

	query, err := queries.NewGetDeliveryZonesQuery(point)
	if err != nil {
		return err
	}
	zones, err := s.handlers.GetDeliveryZones.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	response := DeliveryZones{Zones: make([]DeliveryZone, len(zones.Zones)), Restricted: zones.Restricted}
	for i, z := range zones.Zones {
		response.Zones[i] = DeliveryZone{
			ID:           z.ID.String(),
			Name:         z.Name,
			Center:       toLocation(z.Center),
			RadiusMeters: z.RadiusMeters,
		}
	}
	return c.JSON(http.StatusOK, response)
}

// CreateZone handles POST /api/v1/zones - admins register store areas, delivery zones and restricted areas.
func (s *Server) CreateZone(c echo.Context) error {
	actor, err := ActorFrom(c)
	if err != nil {
		return err
	}

	var body CreateZoneRequest
	if err = bindBody(c, &body); err != nil {
		return err
	}
	if body.Center == nil {
		return errs.NewValueIsRequiredError("center")
	}
	center, err := kernel.NewLocation(body.Center.Latitude, body.Center.Longitude)
	if err != nil {
		return err
	}

	areaID := kernel.NewUUID()
	cmd, err := commands.NewCreateGeofenceAreaCommand(actor, areaID, body.Name, center, body.RadiusMeters,
		geofence.AreaType(body.AreaType))
	if err != nil {
		return err
	}
	if err = s.handlers.CreateGeofenceArea.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, CreateZoneResponse{ID: areaID.String()})
}
