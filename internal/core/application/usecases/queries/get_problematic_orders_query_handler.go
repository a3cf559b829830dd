package queries

import (
	"context"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetProblematicOrdersQueryHandler struct {
	db       *gorm.DB
	detector services.ProblemDetector
}

func NewGetProblematicOrdersQueryHandler(db *gorm.DB, detector services.ProblemDetector) GetProblematicOrdersQueryHandler {
	return GetProblematicOrdersQueryHandler{db: db, detector: detector}
}

// Handle returns the stuck orders, longest stuck first.
func (h GetProblematicOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetProblematicOrdersQuery,
) ([]ProblematicOrder, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	statuses := h.detector.WatchedStatuses()
	if len(statuses) == 0 {
		return []ProblematicOrder{}, nil
	}

	conditions := make([]string, 0, len(statuses))
	args := make([]any, 0, len(statuses)*2)
	for _, s := range statuses {
		cutoff, _ := h.detector.Cutoff(s, query.Now())
		conditions = append(conditions, "(status = ? AND updated_at <= ?)")
		args = append(args, s.String(), cutoff)
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, number, store_id, deliverer_id, status, updated_at
		FROM orders
		WHERE `+strings.Join(conditions, " OR ")+`
		ORDER BY updated_at ASC
	`, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]ProblematicOrder, 0)
	for rows.Next() {
		var (
			item        ProblematicOrder
			id, storeID uuid.UUID
			delivererID *uuid.UUID
			status      string
			updatedAt   time.Time
		)
		if err = rows.Scan(&id, &item.Number, &storeID, &delivererID, &status, &updatedAt); err != nil {
			return nil, err
		}

		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if item.StoreID, err = kernel.UUIDFromBytes(storeID[:]); err != nil {
			return nil, err
		}
		if delivererID != nil {
			dID, idErr := kernel.UUIDFromBytes((*delivererID)[:])
			if idErr != nil {
				return nil, idErr
			}
			item.DelivererID = &dID
		}
		if item.Status, err = order.StatusFromString(status); err != nil {
			return nil, err
		}

		kind, minutes, stuck := h.detector.Check(item.Status, updatedAt, query.Now())
		if !stuck {
			continue
		}
		item.Kind = kind
		item.MinutesElapsed = minutes
		item.UpdatedAt = updatedAt.UTC()
		result = append(result, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
