package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeScore(t *testing.T) {
	tests := []struct {
		name string
		in   ScoreInput
		want float64
	}{
		{
			name: "spec reference snapshot",
			in:   ScoreInput{Kills: 10, Deaths: 2, Assists: 5, CreepScore: 150},
			want: 36.9, // 30 + 7.5 - 2.4 + 1.8
		},
		{
			name: "zero snapshot",
			in:   ScoreInput{},
			want: 0,
		},
		{
			name: "deaths only go negative",
			in:   ScoreInput{Deaths: 5},
			want: -6,
		},
		{
			name: "farm only",
			in:   ScoreInput{CreepScore: 250},
			want: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ComputeScore(tt.in), 1e-9)
		})
	}
}

func TestComputeBreakdown_TermsSumToTotal(t *testing.T) {
	in := ScoreInput{Kills: 7, Deaths: 3, Assists: 11, CreepScore: 212}
	b := ComputeBreakdown(in)

	assert.InDelta(t, 21.0, b.Kills, 1e-9)
	assert.InDelta(t, 16.5, b.Assists, 1e-9)
	assert.InDelta(t, -3.6, b.Deaths, 1e-9)
	assert.InDelta(t, 2.544, b.CreepScore, 1e-9)
	assert.InDelta(t, ComputeScore(in), b.Kills+b.Assists+b.Deaths+b.CreepScore, 1e-9)
}

func TestComputeScore_LiveAndFinalIdentical(t *testing.T) {
	// Same snapshot, same score: the engine has no per-call state.
	in := ScoreInput{Kills: 4, Deaths: 1, Assists: 9, CreepScore: 98}
	assert.Equal(t, ComputeScore(in), ComputeScore(in))
}
