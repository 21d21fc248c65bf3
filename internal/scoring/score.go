package scoring

// MVP score weights. The composite is a display-ranking statistic, not an
// authoritative match record, so the weights are fixed rather than tunable.
const (
	KillWeight       = 3.0
	AssistWeight     = 1.5
	DeathWeight      = 1.2
	CreepScoreWeight = 0.012
)

// ScoreInput is a player's box-score snapshot, either final (completed match)
// or partial (live poll tick). CreepScore counts lane minions plus neutral
// monsters.
type ScoreInput struct {
	Kills      int
	Deaths     int
	Assists    int
	CreepScore int
}

// Breakdown exposes each weighted term of the MVP score so the presentation
// layer can show where a score came from. The terms sum to Total.
type Breakdown struct {
	Kills      float64 `json:"kills"`
	Assists    float64 `json:"assists"`
	Deaths     float64 `json:"deaths"` // negative contribution
	CreepScore float64 `json:"creepScore"`
}

// Total sums the weighted terms.
func (b Breakdown) Total() float64 {
	return b.Kills + b.Assists + b.Deaths + b.CreepScore
}

// ComputeBreakdown computes the weighted terms of the MVP score.
func ComputeBreakdown(in ScoreInput) Breakdown {
	return Breakdown{
		Kills:      float64(in.Kills) * KillWeight,
		Assists:    float64(in.Assists) * AssistWeight,
		Deaths:     -float64(in.Deaths) * DeathWeight,
		CreepScore: float64(in.CreepScore) * CreepScoreWeight,
	}
}

// ComputeScore computes the MVP score for a box-score snapshot. Pure and
// stateless; completed-match and live snapshots score identically.
func ComputeScore(in ScoreInput) float64 {
	return ComputeBreakdown(in).Total()
}
