// Package export writes finished action tables to flat files. Both
// writers emit one row per action with ordinal and name columns for
// the type, result and body part; unknown team, player or location
// fields come out empty in CSV and null in JSON.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/fieldline/spadl/internal/domain/pitch"
	"github.com/fieldline/spadl/internal/domain/spadl"
)

// Format selects an output encoding.
type Format string

// Supported output formats.
const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// ParseFormat maps a format name to its value.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case FormatCSV:
		return FormatCSV, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Write writes the table to w in the given format.
func Write(w io.Writer, format Format, actions []spadl.Action) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, actions)
	case FormatJSON:
		return WriteJSON(w, actions)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

var columns = []string{
	"game_id",
	"original_event_id",
	"action_id",
	"period_id",
	"time_seconds",
	"team_id",
	"player_id",
	"start_x",
	"start_y",
	"end_x",
	"end_y",
	"type_id",
	"type_name",
	"result_id",
	"result_name",
	"bodypart_id",
	"bodypart_name",
}

// WriteCSV writes the table as CSV with a header row.
func WriteCSV(w io.Writer, actions []spadl.Action) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	for _, a := range actions {
		startX, startY := splitPoint(a.Start)
		endX, endY := splitPoint(a.End)
		record := []string{
			a.GameID,
			a.OriginalEventID,
			strconv.Itoa(a.ActionID),
			strconv.Itoa(a.PeriodID),
			formatFloat(a.TimeSeconds),
			deref(a.TeamID),
			deref(a.PlayerID),
			formatOptFloat(startX),
			formatOptFloat(startY),
			formatOptFloat(endX),
			formatOptFloat(endY),
			strconv.Itoa(int(a.Type)),
			a.Type.String(),
			strconv.Itoa(int(a.Result)),
			a.Result.String(),
			strconv.Itoa(int(a.BodyPart)),
			a.BodyPart.String(),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

type row struct {
	GameID          string   `json:"game_id"`
	OriginalEventID string   `json:"original_event_id"`
	ActionID        int      `json:"action_id"`
	PeriodID        int      `json:"period_id"`
	TimeSeconds     float64  `json:"time_seconds"`
	TeamID          *string  `json:"team_id"`
	PlayerID        *string  `json:"player_id"`
	StartX          *float64 `json:"start_x"`
	StartY          *float64 `json:"start_y"`
	EndX            *float64 `json:"end_x"`
	EndY            *float64 `json:"end_y"`
	TypeID          int      `json:"type_id"`
	TypeName        string   `json:"type_name"`
	ResultID        int      `json:"result_id"`
	ResultName      string   `json:"result_name"`
	BodypartID      int      `json:"bodypart_id"`
	BodypartName    string   `json:"bodypart_name"`
}

// WriteJSON writes the table as one JSON array of rows.
func WriteJSON(w io.Writer, actions []spadl.Action) error {
	rows := make([]row, 0, len(actions))
	for _, a := range actions {
		startX, startY := splitPoint(a.Start)
		endX, endY := splitPoint(a.End)
		rows = append(rows, row{
			GameID:          a.GameID,
			OriginalEventID: a.OriginalEventID,
			ActionID:        a.ActionID,
			PeriodID:        a.PeriodID,
			TimeSeconds:     a.TimeSeconds,
			TeamID:          a.TeamID,
			PlayerID:        a.PlayerID,
			StartX:          startX,
			StartY:          startY,
			EndX:            endX,
			EndY:            endY,
			TypeID:          int(a.Type),
			TypeName:        a.Type.String(),
			ResultID:        int(a.Result),
			ResultName:      a.Result.String(),
			BodypartID:      int(a.BodyPart),
			BodypartName:    a.BodyPart.String(),
		})
	}
	enc := json.NewEncoder(w)
	if err := enc.Encode(rows); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

func splitPoint(p *pitch.Point) (x, y *float64) {
	if p == nil {
		return nil, nil
	}
	return &p.X, &p.Y
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatOptFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return formatFloat(*v)
}
