package processor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"killfeed/internal/db"
	"killfeed/internal/live"
	"killfeed/internal/logging"
	"killfeed/internal/match"
	"killfeed/internal/metrics"
)

// Job kinds. Final jobs reference canonical rows by match id; live jobs carry
// the polled snapshot inline because in-progress games have no canonical rows.
const (
	JobKindFinal = "final"
	JobKindLive  = "live"
)

// JobPayload represents an incoming job from the Redis queue.
type JobPayload struct {
	MatchID  string          `json:"match_id"`
	Kind     string          `json:"kind,omitempty"` // defaults to final
	Seq      int64           `json:"seq,omitempty"`  // live poll sequence
	Snapshot *match.Snapshot `json:"snapshot,omitempty"`
}

// FeedProcessor handles kill-feed classification jobs.
type FeedProcessor struct {
	ctx       context.Context
	reader    *db.MatchReader
	writer    *db.FeedWriter
	liveStore *live.Store
	refresher *db.ViewRefresher
}

// NewFeedProcessor creates a feed processor. refresher may be nil to disable
// materialized view refreshes.
func NewFeedProcessor(ctx context.Context, reader *db.MatchReader, writer *db.FeedWriter, liveStore *live.Store, refresher *db.ViewRefresher) *FeedProcessor {
	return &FeedProcessor{
		ctx:       ctx,
		reader:    reader,
		writer:    writer,
		liveStore: liveStore,
		refresher: refresher,
	}
}

// Handle processes a single job from the queue.
func (p *FeedProcessor) Handle(payload []byte) error {
	logger := logging.Logger()
	startTime := time.Now()

	var job JobPayload
	if err := json.Unmarshal(payload, &job); err != nil {
		return fmt.Errorf("unmarshal job payload: %w", err)
	}

	matchID, err := uuid.Parse(job.MatchID)
	if err != nil {
		return fmt.Errorf("parse match_id: %w", err)
	}

	kind := job.Kind
	if kind == "" {
		kind = JobKindFinal
	}

	switch kind {
	case JobKindFinal:
		err = p.handleFinal(matchID)
	case JobKindLive:
		err = p.handleLive(matchID, job)
	default:
		return fmt.Errorf("unknown job kind %q", job.Kind)
	}
	if err != nil {
		metrics.JobsFailed.WithLabelValues(kind).Inc()
		return err
	}

	elapsed := time.Since(startTime)
	metrics.JobsProcessed.WithLabelValues(kind).Inc()
	metrics.JobDuration.WithLabelValues(kind).Observe(elapsed.Seconds())
	logger.Infof("%s job completed for match %s in %v", kind, matchID, elapsed)

	return nil
}

// handleFinal re-runs the engine on the canonical snapshot of a completed
// match and replaces the stored feed and placements.
func (p *FeedProcessor) handleFinal(matchID uuid.UUID) error {
	logger := logging.Logger()

	exists, err := p.reader.MatchExists(p.ctx, matchID)
	if err != nil {
		return fmt.Errorf("check match exists: %w", err)
	}
	if !exists {
		logger.Warnf("match %s not found, skipping", matchID)
		metrics.JobsSkipped.Inc()
		return nil
	}

	snap, err := p.reader.GetMatchSnapshot(p.ctx, matchID)
	if err != nil {
		return fmt.Errorf("get match snapshot: %w", err)
	}

	logger.Infof("loaded snapshot for match %s: %d participants, %d kill events",
		matchID, len(snap.Participants), len(snap.KillEvents))

	result := match.Build(snap)

	if err := p.writer.WriteAll(p.ctx, result); err != nil {
		return fmt.Errorf("write match result: %w", err)
	}

	if p.refresher != nil {
		if err := p.refresher.RefreshAll(p.ctx); err != nil {
			// The result is already written; a failed rollup refresh only
			// stales the profile pages, so warn and move on.
			logger.Warnf("view refresh failed for match %s: %v", matchID, err)
		}
	}

	return nil
}

// handleLive runs the engine on an inline poll snapshot and publishes the
// result under the poll-sequence guard. A stale result is a normal outcome of
// out-of-order tick processing, not a failure.
func (p *FeedProcessor) handleLive(matchID uuid.UUID, job JobPayload) error {
	logger := logging.Logger()

	if job.Snapshot == nil {
		return fmt.Errorf("live job for match %s has no snapshot", matchID)
	}

	snap := job.Snapshot
	snap.MatchID = matchID

	result := match.Build(snap)

	encoded, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal live result: %w", err)
	}

	if err := p.liveStore.PublishFeed(p.ctx, matchID, job.Seq, encoded); err != nil {
		if errors.Is(err, live.ErrStale) {
			logger.Debugf("discarding stale live result for match %s (seq %d)", matchID, job.Seq)
			metrics.JobsStale.Inc()
			return nil
		}
		return fmt.Errorf("publish live result: %w", err)
	}

	return nil
}
