package jobs

import (
	"context"
	"log/slog"

	"marketplace/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// EventRelaySchedule runs the relay every five seconds.
const EventRelaySchedule = "*/5 * * * * *"

type OutboxRelayer interface {
	Handle(ctx context.Context, cmd commands.PublishOutboxMessagesCommand) (int, error)
}

// EventRelayJob drains the outbox into the broker, one batch per tick.
type EventRelayJob struct {
	handler   OutboxRelayer
	batchSize int
	cron      *cron.Cron
	logger    *slog.Logger
}

func NewEventRelayJob(handler OutboxRelayer, batchSize int, logger *slog.Logger) *EventRelayJob {
	return &EventRelayJob{
		handler:   handler,
		batchSize: batchSize,
		cron:      cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:    logger.With("component", "event_relay_job"),
	}
}

func (j *EventRelayJob) Start() error {
	if _, err := j.cron.AddFunc(EventRelaySchedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Event relay job started", "schedule", EventRelaySchedule)
	return nil
}

// Run relays a single batch. Failures are logged; the batch is retried on the next tick.
func (j *EventRelayJob) Run(ctx context.Context) {
	cmd, err := commands.NewPublishOutboxMessagesCommand(j.batchSize)
	if err != nil {
		j.logger.ErrorContext(ctx, "Event relay job misconfigured", "error", err)
		return
	}

	published, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Event relay job failed", "error", err)
		return
	}
	if published > 0 {
		j.logger.InfoContext(ctx, "Outbox messages relayed", "count", published)
	}
}

func (j *EventRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Event relay job stopped")
}
