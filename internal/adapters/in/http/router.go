package http

import (
	"context"
	"log/slog"
	"net/http"

	"marketplace/internal/core/ports"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Rate limited route names, used in limiter keys.
const (
	RouteClaim          = "claim"
	RouteLocationUpdate = "location"
)

type RouterConfig struct {
	JWTSecret []byte
	// Limiter guards the claim and location routes; nil disables rate limiting.
	Limiter ports.RateLimiter
	Logger  *slog.Logger
}

// NewRouter builds the echo instance with middleware, the API document and every route.
func NewRouter(s *Server, cfg RouterConfig) (*echo.Echo, error) {
	doc, err := LoadOpenAPI(context.Background())
	if err != nil {
		return nil, err
	}
	docJSON, err := doc.MarshalJSON()
	if err != nil {
		return nil, err
	}
	registerSwaggerDoc(docJSON)

	logger := cfg.Logger.With("component", "http")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = s.HTTPErrorHandler

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(requestLoggerConfig(logger)))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/openapi.json", func(c echo.Context) error {
		return c.JSONBlob(http.StatusOK, docJSON)
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	public := e.Group("/api/v1")
	public.GET("/pricing/fee", s.EstimateFee)
	public.GET("/pricing/limits", s.GetOrderLimits)
	public.POST("/pricing/estimate-delivery", s.EstimateDelivery)
	public.GET("/zones", s.GetDeliveryZones)

	api := e.Group("/api/v1", JWTAuth(cfg.JWTSecret))
	claimLimit := RateLimit(cfg.Limiter, RouteClaim, logger)
	locationLimit := RateLimit(cfg.Limiter, RouteLocationUpdate, logger)

	api.POST("/orders", s.PlaceOrder)
	api.GET("/orders/available", s.ListAvailableOrders)
	api.GET("/orders/problematic", s.GetProblematicOrders)
	api.POST("/orders/:orderId/claim", s.ClaimOrder, claimLimit)
	api.PUT("/orders/:orderId/status", s.ChangeOrderStatus)
	api.POST("/orders/:orderId/reassign", s.ReassignOrder)
	api.GET("/orders/:orderId/tracking", s.GetLatestTracking)
	api.GET("/orders/:orderId/tracking/history", s.GetTrackingHistory)
	api.GET("/orders/:orderId/track", s.TrackOrder)

	api.POST("/stores/:storeId/suspend", s.SuspendStore)
	api.POST("/zones", s.CreateZone)

	api.POST("/delivery-requests", s.CreateDeliveryRequest)
	api.GET("/delivery-requests/available", s.ListAvailableDeliveryRequests)
	api.GET("/delivery-requests/mine", s.ListMyDeliveryRequests)
	api.POST("/delivery-requests/:requestId/claim", s.ClaimDeliveryRequest, claimLimit)
	api.PUT("/delivery-requests/:requestId/status", s.ChangeDeliveryRequestStatus)

	api.POST("/deliverers", s.RegisterDeliverer)
	api.GET("/deliverers", s.ListDeliverers)
	api.GET("/deliverers/nearby", s.FindNearbyDeliverers)
	api.PUT("/deliverers/me/availability", s.SetAvailability)
	api.POST("/deliverers/me/location", s.UpdateLocation, locationLimit)
	api.GET("/deliverers/me/stats", s.GetDelivererStats)
	api.GET("/deliverers/me/history", s.ListDelivererHistory)
	api.POST("/deliverers/:delivererId/approve", s.ApproveDeliverer)
	api.GET("/deliverers/:delivererId/location", s.GetCurrentLocation)

	return e, nil
}

func requestLoggerConfig(logger *slog.Logger) middleware.RequestLoggerConfig {
	return middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("remote_ip", v.RemoteIP),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			logger.LogAttrs(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	}
}
