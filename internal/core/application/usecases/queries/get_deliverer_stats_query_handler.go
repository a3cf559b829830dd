package queries

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetDelivererStatsQueryHandler struct {
	db *gorm.DB
}

func NewGetDelivererStatsQueryHandler(db *gorm.DB) GetDelivererStatsQueryHandler {
	return GetDelivererStatsQueryHandler{db: db}
}

// Handle returns errs.ErrObjectNotFound when the caller has no deliverer profile.
func (h GetDelivererStatsQueryHandler) Handle(ctx context.Context, query GetDelivererStatsQuery) (DelivererStats, error) {
	if err := query.Validate(); err != nil {
		return DelivererStats{}, err
	}

	var profile struct {
		Rating          float64
		TotalDeliveries int
		IsOnline        bool
	}
	err := h.db.WithContext(ctx).Raw(
		"SELECT rating, total_deliveries, is_online FROM deliverers WHERE id = ?", query.DelivererID().Bytes(),
	).Take(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DelivererStats{}, errs.NewObjectNotFoundError("deliverer", query.DelivererID().String())
		}
		return DelivererStats{}, err
	}

	day, week, month := StatsPeriods(query.Now())
	delivered := order.Delivered.String()

	var totals struct {
		DayCount      int
		DayEarnings   float64
		WeekCount     int
		WeekEarnings  float64
		MonthCount    int
		MonthEarnings float64
		Active        int
	}
	err = h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) FILTER (WHERE status = @delivered AND updated_at >= @day) AS day_count,
			COALESCE(SUM(delivery_fee) FILTER (WHERE status = @delivered AND updated_at >= @day), 0) AS day_earnings,
			COUNT(*) FILTER (WHERE status = @delivered AND updated_at >= @week) AS week_count,
			COALESCE(SUM(delivery_fee) FILTER (WHERE status = @delivered AND updated_at >= @week), 0) AS week_earnings,
			COUNT(*) FILTER (WHERE status = @delivered AND updated_at >= @month) AS month_count,
			COALESCE(SUM(delivery_fee) FILTER (WHERE status = @delivered AND updated_at >= @month), 0) AS month_earnings,
			COUNT(*) FILTER (WHERE status = @delivering) AS active
		FROM orders
		WHERE deliverer_id = @deliverer
	`, map[string]any{
		"delivered":  delivered,
		"delivering": order.Delivering.String(),
		"day":        day,
		"week":       week,
		"month":      month,
		"deliverer":  query.DelivererID().Bytes(),
	}).Take(&totals).Error
	if err != nil {
		return DelivererStats{}, err
	}

	return DelivererStats{
		Today:           PeriodStats{Deliveries: totals.DayCount, Earnings: totals.DayEarnings},
		Week:            PeriodStats{Deliveries: totals.WeekCount, Earnings: totals.WeekEarnings},
		Month:           PeriodStats{Deliveries: totals.MonthCount, Earnings: totals.MonthEarnings},
		ActiveOrders:    totals.Active,
		TotalDeliveries: profile.TotalDeliveries,
		Rating:          profile.Rating,
		IsOnline:        profile.IsOnline,
	}, nil
}
