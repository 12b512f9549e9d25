package spadl

import (
	"sort"

	"github.com/fieldline/spadl/internal/domain/pitch"
)

// Action is one row of the canonical action table. Locations are in
// the metric coordinate space; team, player and locations stay nil
// when the source event did not carry them.
type Action struct {
	GameID          string
	OriginalEventID string
	ActionID        int
	PeriodID        int
	TimeSeconds     float64

	TeamID   *string
	PlayerID *string

	Start *pitch.Point
	End   *pitch.Point

	Type     ActionType
	Result   Result
	BodyPart BodyPart
}

// SortTable puts a table in canonical order: by game, period and
// clock. The sort is stable, so actions on the same clock keep their
// relative order.
func SortTable(actions []Action) {
	sort.SliceStable(actions, func(i, j int) bool {
		a, b := actions[i], actions[j]
		if a.GameID != b.GameID {
			return a.GameID < b.GameID
		}
		if a.PeriodID != b.PeriodID {
			return a.PeriodID < b.PeriodID
		}
		return a.TimeSeconds < b.TimeSeconds
	})
}

// Renumber reassigns dense zero-based action ids in slice order.
func Renumber(actions []Action) {
	for i := range actions {
		actions[i].ActionID = i
	}
}
