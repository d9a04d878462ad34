package worker

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/osse101/MindQuest_Go/internal/logger"
	"github.com/osse101/MindQuest_Go/internal/metrics"
	"github.com/osse101/MindQuest_Go/internal/progression"
)

// Rebalancer is the slice of the progression service the daily job needs
type Rebalancer interface {
	ListUserIDs(ctx context.Context) ([]string, error)
	Rebalance(ctx context.Context, userID string) (*progression.SnapshotResult, error)
}

// RebalanceSummary reports one pass over every stored user
type RebalanceSummary struct {
	Users    int
	Adjusted int
	Failed   int
	Duration time.Duration
}

// RebalanceJob recomputes reward multipliers for every user from their stored snapshots.
// A failure for one user is logged and counted; the pass continues.
type RebalanceJob struct {
	svc         Rebalancer
	concurrency int
	onComplete  func(RebalanceSummary)
}

// NewRebalanceJob creates the daily rebalance job
func NewRebalanceJob(svc Rebalancer, concurrency int) *RebalanceJob {
	if concurrency < 1 {
		concurrency = DefaultRebalanceConcurrency
	}
	return &RebalanceJob{svc: svc, concurrency: concurrency}
}

// OnComplete registers a callback invoked with the summary of each finished pass
func (j *RebalanceJob) OnComplete(fn func(RebalanceSummary)) {
	j.onComplete = fn
}

// Process runs one rebalance pass
func (j *RebalanceJob) Process(ctx context.Context) error {
	summary, err := j.Run(ctx)
	if j.onComplete != nil {
		j.onComplete(summary)
	}
	return err
}

// Run rebalances every user with bounded concurrency and returns the summary
func (j *RebalanceJob) Run(ctx context.Context) (RebalanceSummary, error) {
	log := logger.FromContext(ctx)
	start := time.Now()
	log.Info(LogMsgRebalanceStarting, "concurrency", j.concurrency)

	ids, err := j.svc.ListUserIDs(ctx)
	if err != nil {
		metrics.RebalanceRuns.WithLabelValues(metrics.OutcomeFailure).Inc()
		log.Error(LogMsgRebalanceFailed, "error", err)
		return RebalanceSummary{}, fmt.Errorf("failed to list users for rebalance: %w", err)
	}

	var adjusted, failed atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(j.concurrency)

	for _, id := range ids {
		if gctx.Err() != nil {
			break
		}
		id := id
		g.Go(func() error {
			result, err := j.svc.Rebalance(gctx, id)
			if err != nil {
				failed.Add(1)
				log.Warn(LogMsgRebalanceUserError, "user_id", id, "error", err)
				return nil
			}
			if result.Changed {
				adjusted.Add(1)
			}
			return nil
		})
	}
	_ = g.Wait()

	summary := RebalanceSummary{
		Users:    len(ids),
		Adjusted: int(adjusted.Load()),
		Failed:   int(failed.Load()),
		Duration: time.Since(start),
	}

	if err := ctx.Err(); err != nil {
		metrics.RebalanceRuns.WithLabelValues(metrics.OutcomeFailure).Inc()
		log.Error(LogMsgRebalanceFailed, "error", err, "users", summary.Users)
		return summary, fmt.Errorf("rebalance interrupted: %w", err)
	}

	outcome := metrics.OutcomeSuccess
	if summary.Failed > 0 {
		outcome = metrics.OutcomeFailure
	}
	metrics.RebalanceRuns.WithLabelValues(outcome).Inc()

	log.Info(LogMsgRebalanceCompleted,
		"users", summary.Users,
		"adjusted", summary.Adjusted,
		"failed", summary.Failed,
		"duration", summary.Duration)
	return summary, nil
}
