package queries

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// authorizeOrderTracking lets the order's client, store and assigned deliverer through,
// and admins for any order.
func authorizeOrderTracking(ctx context.Context, db *gorm.DB, actor kernel.Actor, orderID kernel.UUID) error {
	var row struct {
		ClientID    uuid.UUID
		StoreID     uuid.UUID
		DelivererID *uuid.UUID
	}
	err := db.WithContext(ctx).Raw(
		"SELECT client_id, store_id, deliverer_id FROM orders WHERE id = ?", orderID.Bytes(),
	).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundError("order", orderID.String())
		}
		return err
	}

	actorID := actor.ID.Bytes()
	switch actor.Role { //nolint:exhaustive // unknown roles are rejected below
	case kernel.RoleAdmin:
		return nil
	case kernel.RoleClient:
		if row.ClientID == actorID {
			return nil
		}
	case kernel.RoleStore:
		if row.StoreID == actorID {
			return nil
		}
	case kernel.RoleDeliverer:
		if row.DelivererID != nil && *row.DelivererID == actorID {
			return nil
		}
	}
	return errs.NewActionIsForbiddenError(actor.Role.String(), "track this order")
}
