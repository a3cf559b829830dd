package services

import (
	"time"

	"marketplace/internal/core/domain/model/order"
)

// ProblemKind names how an order is stuck.
type ProblemKind string

const (
	ProblemStuckAccepted   ProblemKind = "stuck_accepted"
	ProblemStuckPreparing  ProblemKind = "stuck_preparing"
	ProblemStuckReady      ProblemKind = "stuck_ready"
	ProblemStuckDelivering ProblemKind = "stuck_delivering"
)

// StuckThresholds is how long an order may stay in a status before it needs attention.
type StuckThresholds map[order.Status]time.Duration

func DefaultStuckThresholds() StuckThresholds {
	return StuckThresholds{
		order.Accepted:   2 * time.Hour,
		order.Preparing:  time.Hour,
		order.Ready:      30 * time.Minute,
		order.Delivering: time.Hour,
	}
}

type ProblematicOrder struct {
	Order          *order.Order
	Kind           ProblemKind
	MinutesElapsed int
}

// ProblemDetector flags orders whose last status change is at least the threshold old.
type ProblemDetector struct {
	thresholds StuckThresholds
}

func NewProblemDetector(thresholds StuckThresholds) ProblemDetector {
	if thresholds == nil {
		thresholds = DefaultStuckThresholds()
	}
	return ProblemDetector{thresholds: thresholds}
}

// Cutoff returns the latest updated_at that counts as stuck for status, and false if the
// status is never checked.
func (d ProblemDetector) Cutoff(status order.Status, now time.Time) (time.Time, bool) {
	threshold, ok := d.thresholds[status]
	if !ok {
		return time.Time{}, false
	}
	return now.Add(-threshold), true
}

func (d ProblemDetector) Detect(orders []*order.Order, now time.Time) []ProblematicOrder {
	var result []ProblematicOrder
	for _, o := range orders {
		kind, minutes, stuck := d.Check(o.Status(), o.UpdatedAt(), now)
		if !stuck {
			continue
		}
		result = append(result, ProblematicOrder{
			Order:          o,
			Kind:           kind,
			MinutesElapsed: minutes,
		})
	}
	return result
}

// Check classifies a single status that was last changed at updatedAt.
func (d ProblemDetector) Check(status order.Status, updatedAt, now time.Time) (ProblemKind, int, bool) {
	cutoff, ok := d.Cutoff(status, now)
	if !ok || updatedAt.After(cutoff) {
		return "", 0, false
	}
	return problemKindOf(status), int(now.Sub(updatedAt).Minutes()), true
}

func (d ProblemDetector) WatchedStatuses() []order.Status {
	statuses := make([]order.Status, 0, len(d.thresholds))
	for _, s := range []order.Status{order.Accepted, order.Preparing, order.Ready, order.Delivering} {
		if _, ok := d.thresholds[s]; ok {
			statuses = append(statuses, s)
		}
	}
	return statuses
}

func problemKindOf(status order.Status) ProblemKind {
	switch status { //nolint:exhaustive // only watched statuses reach here
	case order.Accepted:
		return ProblemStuckAccepted
	case order.Preparing:
		return ProblemStuckPreparing
	case order.Ready:
		return ProblemStuckReady
	case order.Delivering:
		return ProblemStuckDelivering
	}
	return ProblemKind("stuck_" + status.String())
}
