package processor

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandle_MalformedPayload(t *testing.T) {
	p := NewFeedProcessor(context.Background(), nil, nil, nil, nil)

	err := p.Handle([]byte("{not json"))
	assert.ErrorContains(t, err, "unmarshal job payload")
}

func TestHandle_BadMatchID(t *testing.T) {
	p := NewFeedProcessor(context.Background(), nil, nil, nil, nil)

	payload, err := json.Marshal(JobPayload{MatchID: "not-a-uuid"})
	require.NoError(t, err)

	err = p.Handle(payload)
	assert.ErrorContains(t, err, "parse match_id")
}

func TestHandle_UnknownKind(t *testing.T) {
	p := NewFeedProcessor(context.Background(), nil, nil, nil, nil)

	payload, err := json.Marshal(JobPayload{
		MatchID: "3df9b652-9a9f-4f0e-b2f0-1b6a2e4f0c11",
		Kind:    "replay",
	})
	require.NoError(t, err)

	err = p.Handle(payload)
	assert.ErrorContains(t, err, "unknown job kind")
}

func TestHandle_LiveWithoutSnapshot(t *testing.T) {
	p := NewFeedProcessor(context.Background(), nil, nil, nil, nil)

	payload, err := json.Marshal(JobPayload{
		MatchID: "3df9b652-9a9f-4f0e-b2f0-1b6a2e4f0c11",
		Kind:    JobKindLive,
		Seq:     3,
	})
	require.NoError(t, err)

	err = p.Handle(payload)
	assert.ErrorContains(t, err, "no snapshot")
}
