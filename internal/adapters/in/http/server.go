package http

import (
	"context"
	"log/slog"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/request"
	"marketplace/internal/core/domain/services"
)

// Handler is the shape shared by every command and query handler of the application layer.
type Handler[In, Out any] interface {
	Handle(ctx context.Context, in In) (Out, error)
}

// CommandHandler is a Handler without a result.
type CommandHandler[In any] interface {
	Handle(ctx context.Context, in In) error
}

// Handlers lists the use cases the server exposes.
type Handlers struct {
	// Command handlers
	PlaceOrder                  Handler[commands.PlaceOrderCommand, string]
	ClaimOrder                  CommandHandler[commands.ClaimOrderCommand]
	ChangeOrderStatus           CommandHandler[commands.ChangeOrderStatusCommand]
	ReassignOrder               CommandHandler[commands.ReassignOrderCommand]
	CancelStorePendingOrders    Handler[commands.CancelStorePendingOrdersCommand, int]
	CreateDeliveryRequest       Handler[commands.CreateDeliveryRequestCommand, request.Estimate]
	ClaimDeliveryRequest        CommandHandler[commands.ClaimDeliveryRequestCommand]
	ChangeDeliveryRequestStatus CommandHandler[commands.ChangeDeliveryRequestStatusCommand]
	RegisterDeliverer           CommandHandler[commands.RegisterDelivererCommand]
	SetDelivererAvailability    CommandHandler[commands.SetDelivererAvailabilityCommand]
	ApproveDeliverer            CommandHandler[commands.ApproveDelivererCommand]
	UpdateLocation              Handler[commands.UpdateLocationCommand, commands.UpdateLocationResult]
	CreateGeofenceArea          CommandHandler[commands.CreateGeofenceAreaCommand]

	// Query handlers
	ListAvailableOrders           Handler[queries.ListAvailableOrdersQuery, []queries.AvailableOrder]
	GetLatestTracking             Handler[queries.GetLatestTrackingQuery, queries.TrackingPoint]
	GetTrackingHistory            Handler[queries.GetTrackingHistoryQuery, []queries.TrackingPoint]
	GetProblematicOrders          Handler[queries.GetProblematicOrdersQuery, []queries.ProblematicOrder]
	ListAvailableDeliveryRequests Handler[queries.ListAvailableDeliveryRequestsQuery, []queries.AvailableDeliveryRequest]
	ListDeliverers                Handler[queries.ListDeliverersQuery, []queries.DelivererSummary]
	GetCurrentLocation            Handler[queries.GetCurrentLocationQuery, queries.CurrentLocation]
	FindNearbyDeliverers          Handler[queries.FindNearbyDeliverersQuery, []queries.NearbyDeliverer]
	EstimateFee                   Handler[queries.EstimateFeeQuery, services.FeeQuote]
	GetOrderLimits                Handler[queries.GetOrderLimitsQuery, queries.OrderLimits]
	EstimateDelivery              Handler[queries.EstimateDeliveryQuery, services.DeliveryEstimate]
	GetDeliveryZones              Handler[queries.GetDeliveryZonesQuery, queries.DeliveryZones]
	GetDelivererStats             Handler[queries.GetDelivererStatsQuery, queries.DelivererStats]
	ListDelivererHistory          Handler[queries.ListDelivererHistoryQuery, queries.DelivererHistory]
	ListMyDeliveryRequests        Handler[queries.ListMyDeliveryRequestsQuery, []queries.MyDeliveryRequest]
	TrackOrder                    Handler[queries.TrackOrderQuery, queries.OrderTrackingView]
}

// Server maps HTTP requests onto application use cases.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers        Handlers
	nearbyFreshness time.Duration
	now             func() time.Time
	logger          *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
// A non-positive nearbyFreshness leaves the window to the caller role's default.
func NewServer(handlers Handlers, nearbyFreshness time.Duration, logger *slog.Logger) *Server {
	return &Server{
		handlers:        handlers,
		nearbyFreshness: nearbyFreshness,
		now:             func() time.Time { return time.Now().UTC() },
		logger:          logger.With("component", "http_server"),
	}
}
