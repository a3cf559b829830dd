package tracking

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var ErrDelivererLocationIsNotConstructed = errors.New(
	"DelivererLocation must be created via NewDelivererLocation constructor")

// Telemetry is the optional device data sent with a position sample.
type Telemetry struct {
	AccuracyMeters *float64
	SpeedKmh       *float64
	HeadingDegrees *float64
}

func (t Telemetry) Validate() error {
	var errList []error
	if t.AccuracyMeters != nil && *t.AccuracyMeters < 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("accuracy", *t.AccuracyMeters, 0, "unbounded"))
	}
	if t.SpeedKmh != nil && *t.SpeedKmh < 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("speed", *t.SpeedKmh, 0, "unbounded"))
	}
	if t.HeadingDegrees != nil && (*t.HeadingDegrees < 0 || *t.HeadingDegrees >= 360) {
		errList = append(errList, errs.NewValueIsOutOfRangeError("heading", *t.HeadingDegrees, 0, 360))
	}
	return errors.Join(errList...)
}

// DelivererLocation is one position sample. The history is append-only; exactly one
// sample per deliverer is active, the rest are kept for audit.
type DelivererLocation struct {
	id          kernel.UUID
	delivererID kernel.UUID
	location    kernel.Location
	telemetry   Telemetry
	isActive    bool
	createdAt   time.Time

	isConstructed bool
}

// NewDelivererLocation builds a new active sample.
func NewDelivererLocation(
	id kernel.UUID,
	delivererID kernel.UUID,
	location kernel.Location,
	telemetry Telemetry,
	now time.Time,
) (*DelivererLocation, error) {
	return RestoreDelivererLocation(id, delivererID, location, telemetry, true, now)
}

func RestoreDelivererLocation(
	id kernel.UUID,
	delivererID kernel.UUID,
	location kernel.Location,
	telemetry Telemetry,
	isActive bool,
	createdAt time.Time,
) (*DelivererLocation, error) {
	if err := errors.Join(
		id.Validate(),
		delivererID.Validate(),
		location.Validate(),
		telemetry.Validate(),
	); err != nil {
		return nil, err
	}

	return &DelivererLocation{
		id:            id,
		delivererID:   delivererID,
		location:      location,
		telemetry:     telemetry,
		isActive:      isActive,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

func (l *DelivererLocation) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrDelivererLocationIsNotConstructed
	}
	return nil
}

func (l *DelivererLocation) ID() kernel.UUID          { return l.id }
func (l *DelivererLocation) DelivererID() kernel.UUID { return l.delivererID }
func (l *DelivererLocation) Location() kernel.Location {
	return l.location
}
func (l *DelivererLocation) Telemetry() Telemetry { return l.telemetry }
func (l *DelivererLocation) IsActive() bool       { return l.isActive }
func (l *DelivererLocation) CreatedAt() time.Time { return l.createdAt }

// IsFresh reports whether the sample was recorded within window before now.
func (l *DelivererLocation) IsFresh(now time.Time, window time.Duration) bool {
	return !l.createdAt.Before(now.Add(-window))
}
