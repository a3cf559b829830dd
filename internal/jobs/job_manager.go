package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	eventRelayJob        *EventRelayJob
	problematicOrdersJob *ProblematicOrdersJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes handlers as dependencies to wire up the job execution.
func NewJobManager(
	relayHandler OutboxRelayer,
	relayBatchSize int,
	problematicOrdersHandler ProblematicOrdersReader,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		eventRelayJob:        NewEventRelayJob(relayHandler, relayBatchSize, logger),
		problematicOrdersJob: NewProblematicOrdersJob(problematicOrdersHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.eventRelayJob.Start(); err != nil {
		return fmt.Errorf("failed to start event relay job: %w", err)
	}

	if err := jm.problematicOrdersJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.eventRelayJob.Stop()
		return fmt.Errorf("failed to start problematic orders job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs and waits for running ticks to finish.
func (jm *JobManager) StopAll() {
	jm.problematicOrdersJob.Stop()
	jm.eventRelayJob.Stop()
}
