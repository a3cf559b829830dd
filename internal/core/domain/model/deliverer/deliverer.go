package deliverer

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

const (
	// DefaultRating is the rating every new deliverer starts with.
	DefaultRating = 5.0
	// MaxRating is the upper bound of the five-star scale.
	MaxRating = 5.0
)

var (
	// ErrDelivererIsNotConstructed is returned when using an improperly initialized Deliverer.
	ErrDelivererIsNotConstructed = errors.New("Deliverer must be created via NewDeliverer constructor")
	// ErrDelivererIsOffline is the reason carried by ObjectIsNotEligible for deliverers that are not online.
	ErrDelivererIsOffline = errors.New("deliverer is offline")
	// ErrDelivererIsNotApproved is the reason carried by ObjectIsNotEligible for deliverers awaiting approval.
	ErrDelivererIsNotApproved = errors.New("deliverer is not approved")
)

// Deliverer is the dispatch-facing profile of an independent deliverer.
// Its identifier is the user reference issued by the identity collaborator.
//
// Business rules:
//   - A deliverer is eligible for dispatch and location updates only while online AND approved
//   - New deliverers start offline, unapproved, with DefaultRating and no deliveries
//   - TotalDeliveries only grows, one step per completed job
//
// Example usage:
//
//	d, err := deliverer.NewDeliverer(userID, deliverer.VehicleMotorcycle, "ABC1D23")
//	if err != nil {
//	    // Handle construction error
//	}
//	d.Approve()
//	d.GoOnline()
//	err = d.ValidateEligible() // nil
type Deliverer struct {
	// id is the user reference of the deliverer
	id kernel.UUID
	// vehicleType and vehiclePlate describe the vehicle used for deliveries
	vehicleType  VehicleType
	vehiclePlate string
	// isOnline is toggled by the deliverer's device session
	isOnline bool
	// isApproved is granted by an administrator
	isApproved bool
	// rating is the average client rating on a five-star scale
	rating float64
	// totalDeliveries counts delivered orders and delivery requests
	totalDeliveries int

	guard guard.ConstructorGuard
}

// NewDeliverer registers a new deliverer profile.
//
// Parameters:
//   - id: user reference (must be a valid UUID)
//   - vehicleType: motorcycle, bicycle or car
//   - vehiclePlate: free text, may be empty for bicycles
//
// Returns:
//   - *Deliverer: offline, unapproved profile with DefaultRating
//   - error: aggregated validation errors
func NewDeliverer(id kernel.UUID, vehicleType VehicleType, vehiclePlate string) (*Deliverer, error) {
	return RestoreDeliverer(id, vehicleType, vehiclePlate, false, false, DefaultRating, 0)
}

// RestoreDeliverer reconstructs a Deliverer from persistent storage.
func RestoreDeliverer(
	id kernel.UUID,
	vehicleType VehicleType,
	vehiclePlate string,
	isOnline bool,
	isApproved bool,
	rating float64,
	totalDeliveries int,
) (*Deliverer, error) {
	d := &Deliverer{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setVehicle(vehicleType, vehiclePlate),
		d.setRating(rating),
		d.setTotalDeliveries(totalDeliveries),
	); err != nil {
		return nil, err
	}

	d.isOnline = isOnline
	d.isApproved = isApproved
	return d, nil
}

// Validate checks that the Deliverer was built through NewDeliverer or RestoreDeliverer.
func (d *Deliverer) Validate() error {
	if d == nil {
		return ErrDelivererIsNotConstructed
	}
	return d.guard.Validate(ErrDelivererIsNotConstructed)
}

func (d *Deliverer) ID() kernel.UUID {
	return d.id
}

func (d *Deliverer) VehicleType() VehicleType {
	return d.vehicleType
}

func (d *Deliverer) VehiclePlate() string {
	return d.vehiclePlate
}

func (d *Deliverer) IsOnline() bool {
	return d.isOnline
}

func (d *Deliverer) IsApproved() bool {
	return d.isApproved
}

func (d *Deliverer) Rating() float64 {
	return d.rating
}

func (d *Deliverer) TotalDeliveries() int {
	return d.totalDeliveries
}

// ValidateEligible reports whether the deliverer may claim jobs and publish locations.
//
// Returns:
//   - error: ObjectIsNotEligible naming the first failing condition, nil if eligible
//
// Example:
//
//	if err := d.ValidateEligible(); errors.Is(err, errs.ErrObjectIsNotEligible) {
//	    // reject the claim
//	}
func (d *Deliverer) ValidateEligible() error {
	if err := d.Validate(); err != nil {
		return err
	}
	if !d.isApproved {
		return errs.NewObjectIsNotEligibleError("deliverer", d.id.String(), ErrDelivererIsNotApproved.Error())
	}
	if !d.isOnline {
		return errs.NewObjectIsNotEligibleError("deliverer", d.id.String(), ErrDelivererIsOffline.Error())
	}
	return nil
}

func (d *Deliverer) GoOnline() {
	d.isOnline = true
}

func (d *Deliverer) GoOffline() {
	d.isOnline = false
}

func (d *Deliverer) Approve() {
	d.isApproved = true
}

// Revoke withdraws approval and takes the deliverer offline.
func (d *Deliverer) Revoke() {
	d.isApproved = false
	d.isOnline = false
}

// RecordDelivery counts one completed job.
func (d *Deliverer) RecordDelivery() {
	d.totalDeliveries++
}

func (d *Deliverer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Deliverer) setVehicle(vehicleType VehicleType, plate string) error {
	if err := vehicleType.Validate(); err != nil {
		return err
	}
	d.vehicleType = vehicleType
	d.vehiclePlate = plate
	return nil
}

func (d *Deliverer) setRating(rating float64) error {
	if rating < 0 || rating > MaxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, 0, MaxRating)
	}
	d.rating = rating
	return nil
}

func (d *Deliverer) setTotalDeliveries(total int) error {
	if total < 0 {
		return errs.NewValueIsOutOfRangeError("total deliveries", total, 0, "unbounded")
	}
	d.totalDeliveries = total
	return nil
}
