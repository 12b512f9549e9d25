package spadl

import (
	"fmt"

	"github.com/fieldline/spadl/internal/domain/pitch"
)

// ValidateTable checks a finished action table against the schema:
// dense zero-based action ids, periods 1 through 5, non-negative
// clocks, ids inside the closed vocabularies, no leftover non-action
// rows and locations on the pitch. The first violation is reported,
// wrapped in ErrSchema.
func ValidateTable(actions []Action) error {
	for i, a := range actions {
		if a.ActionID != i {
			return fmt.Errorf("%w: row %d: action_id %d, want %d", ErrSchema, i, a.ActionID, i)
		}
		if a.PeriodID < 1 || a.PeriodID > 5 {
			return fmt.Errorf("%w: row %d: period_id %d out of range", ErrSchema, i, a.PeriodID)
		}
		if a.TimeSeconds < 0 {
			return fmt.Errorf("%w: row %d: negative time_seconds %g", ErrSchema, i, a.TimeSeconds)
		}
		if !a.Type.Valid() {
			return fmt.Errorf("%w: row %d: unknown type_id %d", ErrSchema, i, int(a.Type))
		}
		if a.Type == TypeNonAction {
			return fmt.Errorf("%w: row %d: non_action row in finished table", ErrSchema, i)
		}
		if !a.Result.Valid() {
			return fmt.Errorf("%w: row %d: unknown result_id %d", ErrSchema, i, int(a.Result))
		}
		if !a.BodyPart.Valid() {
			return fmt.Errorf("%w: row %d: unknown bodypart_id %d", ErrSchema, i, int(a.BodyPart))
		}
		if err := checkLocation(i, "start", a.Start); err != nil {
			return err
		}
		if err := checkLocation(i, "end", a.End); err != nil {
			return err
		}
	}
	return nil
}

func checkLocation(row int, label string, p *pitch.Point) error {
	if p == nil {
		return nil
	}
	if p.X < 0 || p.X > FieldLength || p.Y < 0 || p.Y > FieldWidth {
		return fmt.Errorf("%w: row %d: %s location (%g, %g) off the pitch", ErrSchema, row, label, p.X, p.Y)
	}
	return nil
}
