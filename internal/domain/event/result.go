package event

import (
	"encoding/json"
	"fmt"
)

// Result is the provider-level outcome attached to an event.
// The zero value means the provider recorded no outcome.
type Result uint8

// Event results understood by the converter.
const (
	ResultNone Result = iota
	ResultComplete
	ResultIncomplete
	ResultOut
	ResultOffside
	ResultGoal
	ResultOwnGoal
	ResultSaved
	ResultBlocked
	ResultPost
	ResultOffTarget
)

var resultNames = map[Result]string{
	ResultNone:       "none",
	ResultComplete:   "complete",
	ResultIncomplete: "incomplete",
	ResultOut:        "out",
	ResultOffside:    "offside",
	ResultGoal:       "goal",
	ResultOwnGoal:    "own_goal",
	ResultSaved:      "saved",
	ResultBlocked:    "blocked",
	ResultPost:       "post",
	ResultOffTarget:  "off_target",
}

func (r Result) String() string {
	if name, ok := resultNames[r]; ok {
		return name
	}
	return fmt.Sprintf("result(%d)", uint8(r))
}

// ParseResult maps a stable result name back to its value. The empty
// string parses as ResultNone.
func ParseResult(name string) (Result, error) {
	if name == "" {
		return ResultNone, nil
	}
	for r, n := range resultNames {
		if n == name {
			return r, nil
		}
	}
	return ResultNone, fmt.Errorf("unknown event result: %q", name)
}

// MarshalJSON encodes the result as its stable name.
func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// UnmarshalJSON decodes the result from its stable name. Unknown
// names decode as ResultNone rather than failing the feed.
func (r *Result) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, err := ParseResult(name)
	if err != nil {
		*r = ResultNone
		return nil
	}
	*r = parsed
	return nil
}
