// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"marketplace/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	DeliveryRequestRepoFactory interface {
		DeliveryRequestRepository() ports.DeliveryRequestRepository
	}

	DelivererRepoFactory interface {
		DelivererRepository() ports.DelivererRepository
	}

	LocationRepoFactory interface {
		LocationRepository() ports.LocationRepository
	}

	TrackingRepoFactory interface {
		TrackingRepository() ports.TrackingRepository
	}

	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	PricingRepoFactory interface {
		PricingRepository() ports.PricingRepository
	}

	GeofenceRepoFactory interface {
		GeofenceRepository() ports.GeofenceRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// DelivererUoW manages transactions for deliverer profile operations.
	DelivererUoW interface {
		TxManager
		DelivererRepoFactory
	}

	DelivererUoWFactory interface {
		Create() DelivererUoW
	}

	// OutboxUoW manages transactions for the outbox relay.
	OutboxUoW interface {
		TxManager
		OutboxRepoFactory
	}

	OutboxUoWFactory interface {
		Create() OutboxUoW
	}

	// GeofenceUoW manages transactions for admin area maintenance.
	GeofenceUoW interface {
		TxManager
		GeofenceRepoFactory
	}

	GeofenceUoWFactory interface {
		Create() GeofenceUoW
	}

	// UoW manages transactions across every aggregate and the outbox.
	// Used for commands that coordinate jobs, deliverers and events.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   delivererRepo := uow.DelivererRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		DeliveryRequestRepoFactory
		DelivererRepoFactory
		LocationRepoFactory
		TrackingRepoFactory
		OutboxRepoFactory
		PricingRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
