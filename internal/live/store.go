package live

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	feedKeyPrefix = "live_feed:"
	seqKeyPrefix  = "live_feed_seq:"
)

// ErrStale is returned when a publish loses to a newer poll sequence.
var ErrStale = errors.New("live result superseded by a newer poll")

// publishScript implements last-write-wins atomically: the result is stored
// only if the incoming poll sequence is greater than the stored one. Live
// ticks can be processed out of order by the worker pool, so the guard has
// to live server-side.
var publishScript = redis.NewScript(`
local cur = tonumber(redis.call('GET', KEYS[1]) or '-1')
local seq = tonumber(ARGV[1])
if seq <= cur then
  return 0
end
redis.call('SET', KEYS[1], ARGV[1], 'PX', ARGV[3])
redis.call('SET', KEYS[2], ARGV[2], 'PX', ARGV[3])
return 1
`)

// Store keeps live-tick engine results in Redis with a TTL. Live matches have
// no canonical rows; their latest classified result lives here until the next
// poll replaces it or the match goes final.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore builds a live result store. Results expire after ttl so abandoned
// spectator sessions clean themselves up.
func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

// PublishFeed stores the serialized engine result for a live match under the
// given poll sequence. Returns ErrStale when a newer sequence has already
// published — the caller should discard its result, not retry.
func (s *Store) PublishFeed(ctx context.Context, matchID uuid.UUID, seq int64, result []byte) error {
	keys := []string{seqKey(matchID), feedKey(matchID)}
	ok, err := publishScript.Run(ctx, s.client, keys, seq, result, s.ttl.Milliseconds()).Int()
	if err != nil {
		return fmt.Errorf("publish live feed: %w", err)
	}
	if ok == 0 {
		return ErrStale
	}
	return nil
}

// GetFeed returns the latest published result for a live match, or found=false
// when nothing is stored (never published, or TTL expired).
func (s *Store) GetFeed(ctx context.Context, matchID uuid.UUID) ([]byte, bool, error) {
	raw, err := s.client.Get(ctx, feedKey(matchID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get live feed: %w", err)
	}
	return raw, true, nil
}

func feedKey(matchID uuid.UUID) string {
	return feedKeyPrefix + matchID.String()
}

func seqKey(matchID uuid.UUID) string {
	return seqKeyPrefix + matchID.String()
}
