package jobs

import (
	"context"
	"log/slog"
	"time"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// ProblematicOrdersSchedule runs the sweep at the top of every minute.
const ProblematicOrdersSchedule = "0 * * * * *"

type ProblematicOrdersReader interface {
	Handle(ctx context.Context, query queries.GetProblematicOrdersQuery) ([]queries.ProblematicOrder, error)
}

// ProblematicOrdersJob logs a warning for every order stuck past its status threshold.
type ProblematicOrdersJob struct {
	handler ProblematicOrdersReader
	actor   kernel.Actor
	now     func() time.Time
	cron    *cron.Cron
	logger  *slog.Logger
}

func NewProblematicOrdersJob(handler ProblematicOrdersReader, logger *slog.Logger) *ProblematicOrdersJob {
	return &ProblematicOrdersJob{
		handler: handler,
		actor:   kernel.Actor{ID: kernel.NewUUID(), Role: kernel.RoleAdmin},
		now:     func() time.Time { return time.Now().UTC() },
		cron:    cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:  logger.With("component", "problematic_orders_job"),
	}
}

func (j *ProblematicOrdersJob) Start() error {
	if _, err := j.cron.AddFunc(ProblematicOrdersSchedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Problematic orders job started", "schedule", ProblematicOrdersSchedule)
	return nil
}

// Run returns how many stuck orders were reported.
func (j *ProblematicOrdersJob) Run(ctx context.Context) int {
	query, err := queries.NewGetProblematicOrdersQuery(j.actor, j.now())
	if err != nil {
		j.logger.ErrorContext(ctx, "Problematic orders job misconfigured", "error", err)
		return 0
	}

	stuck, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Problematic orders job failed", "error", err)
		return 0
	}

	for _, o := range stuck {
		attrs := []any{
			"order_id", o.ID.String(),
			"order_number", o.Number,
			"status", o.Status.String(),
			"kind", string(o.Kind),
			"minutes_elapsed", o.MinutesElapsed,
		}
		if o.DelivererID != nil {
			attrs = append(attrs, "deliverer_id", o.DelivererID.String())
		}
		j.logger.WarnContext(ctx, "Order needs attention", attrs...)
	}
	return len(stuck)
}

func (j *ProblematicOrdersJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Problematic orders job stopped")
}
