package event

import (
	"encoding/json"
	"fmt"
)

// Qualifier is a flag a provider attaches to an event: the set piece
// it restarts, the body part that touched the ball, or the style of
// a pass.
type Qualifier uint8

// Qualifiers understood by the converter. The full set must stay
// within 64 values so a QualifierSet fits one machine word.
const (
	// Set pieces.
	QualifierFreeKick Qualifier = iota
	QualifierCornerKick
	QualifierGoalKick
	QualifierThrowIn
	QualifierPenalty
	QualifierKickOff

	// Body parts.
	QualifierRightFoot
	QualifierLeftFoot
	QualifierHead
	QualifierChest
	QualifierOtherBodyPart
	QualifierDropKick
	QualifierKeeperArm

	// Pass styles.
	QualifierCross
	QualifierChippedPass
	QualifierHighPass
	QualifierHandPass
	QualifierHeadPass
	QualifierLaunch
	QualifierSimplePass
	QualifierSmartPass
	QualifierLongBall
	QualifierThroughBall
	QualifierFlickOn
)

var qualifierNames = map[Qualifier]string{
	QualifierFreeKick:      "free_kick",
	QualifierCornerKick:    "corner_kick",
	QualifierGoalKick:      "goal_kick",
	QualifierThrowIn:       "throw_in",
	QualifierPenalty:       "penalty",
	QualifierKickOff:       "kick_off",
	QualifierRightFoot:     "right_foot",
	QualifierLeftFoot:      "left_foot",
	QualifierHead:          "head",
	QualifierChest:         "chest",
	QualifierOtherBodyPart: "other",
	QualifierDropKick:      "drop_kick",
	QualifierKeeperArm:     "keeper_arm",
	QualifierCross:         "cross",
	QualifierChippedPass:   "chipped_pass",
	QualifierHighPass:      "high_pass",
	QualifierHandPass:      "hand_pass",
	QualifierHeadPass:      "head_pass",
	QualifierLaunch:        "launch",
	QualifierSimplePass:    "simple_pass",
	QualifierSmartPass:     "smart_pass",
	QualifierLongBall:      "long_ball",
	QualifierThroughBall:   "through_ball",
	QualifierFlickOn:       "flick_on",
}

func (q Qualifier) String() string {
	if name, ok := qualifierNames[q]; ok {
		return name
	}
	return fmt.Sprintf("qualifier(%d)", uint8(q))
}

// ParseQualifier maps a stable qualifier name back to its value.
func ParseQualifier(name string) (Qualifier, error) {
	for q, n := range qualifierNames {
		if n == name {
			return q, nil
		}
	}
	return 0, fmt.Errorf("unknown qualifier: %q", name)
}

// QualifierSet is the set of qualifiers attached to one event,
// packed as a bitset.
type QualifierSet uint64

// Qualifiers builds a set from individual qualifiers.
func Qualifiers(qs ...Qualifier) QualifierSet {
	var s QualifierSet
	for _, q := range qs {
		s = s.With(q)
	}
	return s
}

// With returns the set extended by q.
func (s QualifierSet) With(q Qualifier) QualifierSet {
	return s | 1<<uint64(q)
}

// Has reports whether q is in the set.
func (s QualifierSet) Has(q Qualifier) bool {
	return s&(1<<uint64(q)) != 0
}

// HasAny reports whether at least one of the given qualifiers is in
// the set.
func (s QualifierSet) HasAny(qs ...Qualifier) bool {
	for _, q := range qs {
		if s.Has(q) {
			return true
		}
	}
	return false
}

// Names lists the qualifiers in the set in declaration order.
func (s QualifierSet) Names() []string {
	names := make([]string, 0)
	for q := Qualifier(0); uint64(q) < 64; q++ {
		if !s.Has(q) {
			continue
		}
		if name, ok := qualifierNames[q]; ok {
			names = append(names, name)
		}
	}
	return names
}

// MarshalJSON encodes the set as an array of qualifier names.
func (s QualifierSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Names())
}

// UnmarshalJSON decodes the set from an array of qualifier names.
// Unknown names are dropped; providers attach plenty of flags the
// converter has no use for.
func (s *QualifierSet) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return err
	}
	var out QualifierSet
	for _, name := range names {
		q, err := ParseQualifier(name)
		if err != nil {
			continue
		}
		out = out.With(q)
	}
	*s = out
	return nil
}
