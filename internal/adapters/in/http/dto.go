package http

import (
	"time"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/tracking"
	"marketplace/internal/core/domain/services"
)

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func toLocation(l kernel.Location) Location {
	return Location{Latitude: l.Latitude(), Longitude: l.Longitude()}
}

func toOptionalLocation(l *kernel.Location) *Location {
	if l == nil {
		return nil
	}
	loc := toLocation(*l)
	return &loc
}

func optionalID(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

// Orders

type DeliveryAddress struct {
	Street    string  `json:"street"`
	City      string  `json:"city"`
	State     string  `json:"state"`
	ZipCode   string  `json:"zip_code"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type PlaceOrderRequest struct {
	ClientID      string          `json:"client_id"`
	StoreID       string          `json:"store_id"`
	Address       DeliveryAddress `json:"delivery_address"`
	TotalAmount   float64         `json:"total_amount"`
	DeliveryFee   float64         `json:"delivery_fee"`
	PaymentMethod string          `json:"payment_method"`
}

type PlaceOrderResponse struct {
	ID     string `json:"id"`
	Number string `json:"order_number"`
}

type ChangeStatusRequest struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

type ReassignOrderRequest struct {
	DelivererID string `json:"deliverer_id"`
	Reason      string `json:"reason"`
}

type SuspendStoreRequest struct {
	Reason string `json:"reason"`
}

type SuspendStoreResponse struct {
	CancelledOrders int `json:"cancelled_orders"`
}

type AvailableOrder struct {
	ID          string    `json:"id"`
	Number      string    `json:"order_number"`
	StoreID     string    `json:"store_id"`
	Street      string    `json:"street"`
	City        string    `json:"city"`
	Destination Location  `json:"destination"`
	TotalAmount float64   `json:"total_amount"`
	DeliveryFee float64   `json:"delivery_fee"`
	CreatedAt   time.Time `json:"created_at"`
}

func toAvailableOrders(orders []queries.AvailableOrder) []AvailableOrder {
	response := make([]AvailableOrder, len(orders))
	for i, o := range orders {
		response[i] = AvailableOrder{
			ID:          o.ID.String(),
			Number:      o.Number,
			StoreID:     o.StoreID.String(),
			Street:      o.Street,
			City:        o.City,
			Destination: toLocation(o.Destination),
			TotalAmount: o.TotalAmount,
			DeliveryFee: o.DeliveryFee,
			CreatedAt:   o.CreatedAt,
		}
	}
	return response
}

type TrackingPoint struct {
	ID                  string    `json:"id"`
	OrderID             string    `json:"order_id"`
	DelivererID         string    `json:"deliverer_id"`
	Location            Location  `json:"location"`
	Stage               string    `json:"stage"`
	EstimatedArrival    time.Time `json:"estimated_arrival"`
	DistanceRemainingKm float64   `json:"distance_remaining_km"`
	RecordedAt          time.Time `json:"recorded_at"`
}

func toTrackingPoint(p queries.TrackingPoint) TrackingPoint {
	return TrackingPoint{
		ID:                  p.ID.String(),
		OrderID:             p.OrderID.String(),
		DelivererID:         p.DelivererID.String(),
		Location:            toLocation(p.Location),
		Stage:               string(p.Stage),
		EstimatedArrival:    p.EstimatedArrival,
		DistanceRemainingKm: p.DistanceRemainingKm,
		RecordedAt:          p.RecordedAt,
	}
}

type OrderTrackingView struct {
	OrderID           string           `json:"order_id"`
	Status            string           `json:"status"`
	DelivererID       *string          `json:"deliverer_id,omitempty"`
	Latest            *TrackingPoint   `json:"latest_tracking,omitempty"`
	DelivererLocation *CurrentLocation `json:"deliverer_location,omitempty"`
	History           []TrackingPoint  `json:"history"`
}

func toOrderTrackingView(v queries.OrderTrackingView) OrderTrackingView {
	response := OrderTrackingView{
		OrderID:     v.OrderID.String(),
		Status:      v.Status.String(),
		DelivererID: optionalID(v.DelivererID),
		History:     make([]TrackingPoint, len(v.History)),
	}
	for i, p := range v.History {
		response.History[i] = toTrackingPoint(p)
	}
	if v.Latest != nil {
		latest := toTrackingPoint(*v.Latest)
		response.Latest = &latest
	}
	if v.DelivererLocation != nil {
		current := toCurrentLocation(*v.DelivererLocation)
		response.DelivererLocation = &current
	}
	return response
}

type ProblematicOrder struct {
	ID             string    `json:"id"`
	Number         string    `json:"order_number"`
	StoreID        string    `json:"store_id"`
	DelivererID    *string   `json:"deliverer_id,omitempty"`
	Status         string    `json:"status"`
	Kind           string    `json:"problem"`
	MinutesElapsed int       `json:"minutes_elapsed"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Delivery requests

type CreateDeliveryRequestRequest struct {
	PickupAddress    string    `json:"pickup_address"`
	PickupLocation   *Location `json:"pickup_location,omitempty"`
	DeliveryAddress  string    `json:"delivery_address"`
	DeliveryLocation *Location `json:"delivery_location,omitempty"`
	ItemDescription  string    `json:"item_description"`
	PaymentMethod    string    `json:"payment_method"`
}

type CreateDeliveryRequestResponse struct {
	ID               string  `json:"id"`
	EstimatedPrice   float64 `json:"estimated_price"`
	EstimatedMinutes int     `json:"estimated_minutes"`
}

type AvailableDeliveryRequest struct {
	ID               string    `json:"id"`
	PickupAddress    string    `json:"pickup_address"`
	PickupLocation   *Location `json:"pickup_location,omitempty"`
	DeliveryAddress  string    `json:"delivery_address"`
	DeliveryLocation *Location `json:"delivery_location,omitempty"`
	ItemDescription  string    `json:"item_description"`
	EstimatedPrice   float64   `json:"estimated_price"`
	EstimatedMinutes int       `json:"estimated_minutes"`
	CreatedAt        time.Time `json:"created_at"`
}

type MyDeliveryRequest struct {
	ID               string    `json:"id"`
	ClientID         string    `json:"client_id"`
	DelivererID      *string   `json:"deliverer_id,omitempty"`
	Status           string    `json:"status"`
	PickupAddress    string    `json:"pickup_address"`
	PickupLocation   *Location `json:"pickup_location,omitempty"`
	DeliveryAddress  string    `json:"delivery_address"`
	DeliveryLocation *Location `json:"delivery_location,omitempty"`
	ItemDescription  string    `json:"item_description"`
	EstimatedPrice   float64   `json:"estimated_price"`
	EstimatedMinutes int       `json:"estimated_minutes"`
	PaymentMethod    string    `json:"payment_method"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Deliverers

type RegisterDelivererRequest struct {
	VehicleType  string `json:"vehicle_type"`
	VehiclePlate string `json:"vehicle_plate,omitempty"`
}

type RegisterDelivererResponse struct {
	ID string `json:"id"`
}

type AvailabilityRequest struct {
	Online bool `json:"online"`
}

type ApproveDelivererRequest struct {
	Approved *bool `json:"approved,omitempty"`
}

type DelivererSummary struct {
	ID              string  `json:"id"`
	VehicleType     string  `json:"vehicle_type"`
	VehiclePlate    string  `json:"vehicle_plate,omitempty"`
	IsOnline        bool    `json:"is_online"`
	IsApproved      bool    `json:"is_approved"`
	Rating          float64 `json:"rating"`
	TotalDeliveries int     `json:"total_deliveries"`
	Busy            bool    `json:"busy"`
}

type UpdateLocationRequest struct {
	Latitude       float64  `json:"latitude"`
	Longitude      float64  `json:"longitude"`
	AccuracyMeters *float64 `json:"accuracy_meters,omitempty"`
	SpeedKmh       *float64 `json:"speed_kmh,omitempty"`
	HeadingDegrees *float64 `json:"heading_degrees,omitempty"`
}

func (r UpdateLocationRequest) telemetry() tracking.Telemetry {
	return tracking.Telemetry{
		AccuracyMeters: r.AccuracyMeters,
		SpeedKmh:       r.SpeedKmh,
		HeadingDegrees: r.HeadingDegrees,
	}
}

type UpdateLocationResponse struct {
	LocationID    string    `json:"location_id"`
	RecordedAt    time.Time `json:"recorded_at"`
	TrackedOrders []string  `json:"tracked_orders"`
}

type CurrentLocation struct {
	DelivererID    string    `json:"deliverer_id"`
	Location       Location  `json:"location"`
	AccuracyMeters *float64  `json:"accuracy_meters,omitempty"`
	SpeedKmh       *float64  `json:"speed_kmh,omitempty"`
	HeadingDegrees *float64  `json:"heading_degrees,omitempty"`
	RecordedAt     time.Time `json:"recorded_at"`
}

func toCurrentLocation(l queries.CurrentLocation) CurrentLocation {
	return CurrentLocation{
		DelivererID:    l.DelivererID.String(),
		Location:       toLocation(l.Location),
		AccuracyMeters: l.Telemetry.AccuracyMeters,
		SpeedKmh:       l.Telemetry.SpeedKmh,
		HeadingDegrees: l.Telemetry.HeadingDegrees,
		RecordedAt:     l.RecordedAt,
	}
}

type PeriodStats struct {
	Deliveries int     `json:"deliveries"`
	Earnings   float64 `json:"earnings"`
}

type DelivererStats struct {
	Today           PeriodStats `json:"today"`
	Week            PeriodStats `json:"week"`
	Month           PeriodStats `json:"month"`
	ActiveOrders    int         `json:"active_orders"`
	TotalDeliveries int         `json:"total_deliveries"`
	Rating          float64     `json:"rating"`
	IsOnline        bool        `json:"is_online"`
}

type HistoryOrder struct {
	ID          string    `json:"id"`
	Number      string    `json:"order_number"`
	StoreID     string    `json:"store_id"`
	Status      string    `json:"status"`
	Street      string    `json:"street"`
	City        string    `json:"city"`
	TotalAmount float64   `json:"total_amount"`
	DeliveryFee float64   `json:"delivery_fee"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type DelivererHistory struct {
	Orders      []HistoryOrder `json:"orders"`
	Total       int            `json:"total"`
	CurrentPage int            `json:"current_page"`
	PerPage     int            `json:"per_page"`
	Pages       int            `json:"pages"`
}

type NearbyDeliverer struct {
	DelivererID      string    `json:"deliverer_id"`
	VehicleType      string    `json:"vehicle_type"`
	Rating           float64   `json:"rating"`
	Location         Location  `json:"location"`
	DistanceKm       float64   `json:"distance_km"`
	EstimatedArrival time.Time `json:"estimated_arrival"`
	LastSeenAt       time.Time `json:"last_seen_at"`
}

// Pricing and zones

type FeeQuote struct {
	DistanceKm    float64 `json:"distance_km"`
	FeePerKm      float64 `json:"fee_per_km"`
	CalculatedFee float64 `json:"calculated_fee"`
	MinimumFee    float64 `json:"minimum_fee"`
	FinalFee      float64 `json:"final_fee"`
}

func toFeeQuote(q services.FeeQuote) FeeQuote {
	return FeeQuote{
		DistanceKm:    q.DistanceKm,
		FeePerKm:      q.FeePerKm,
		CalculatedFee: q.CalculatedFee,
		MinimumFee:    q.MinimumFee,
		FinalFee:      q.FinalFee,
	}
}

type OrderLimits struct {
	MinimumOrderValue       float64 `json:"minimum_order_value"`
	MaximumDeliveryDistance float64 `json:"maximum_delivery_distance_km"`
}

type EstimateDeliveryRequest struct {
	Pickup  *Location `json:"pickup"`
	Dropoff *Location `json:"dropoff"`
}

type DeliveryEstimate struct {
	DistanceKm       float64   `json:"distance_km"`
	EstimatedMinutes int       `json:"estimated_minutes"`
	EstimatedPrice   float64   `json:"estimated_price"`
	EstimatedArrival time.Time `json:"estimated_arrival"`
	Pickup           Location  `json:"pickup"`
	Dropoff          Location  `json:"dropoff"`
}

type DeliveryZone struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Center       Location `json:"center"`
	RadiusMeters float64  `json:"radius_meters"`
}

type CreateZoneRequest struct {
	Name         string    `json:"name"`
	Center       *Location `json:"center"`
	RadiusMeters float64   `json:"radius_meters"`
	AreaType     string    `json:"area_type,omitempty"`
}

type CreateZoneResponse struct {
	ID string `json:"id"`
}

type DeliveryZones struct {
	Zones      []DeliveryZone `json:"zones"`
	Restricted bool           `json:"restricted"`
}
