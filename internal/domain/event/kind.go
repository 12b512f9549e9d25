package event

import (
	"encoding/json"
	"fmt"
)

// Kind is the provider-level classification of an event.
type Kind uint8

// Event kinds understood by the converter. Kinds without a dedicated
// mapping (cards, substitutions and the like) drop out of conversion
// as non-actions.
const (
	KindGeneric Kind = iota
	KindPass
	KindShot
	KindTakeOn
	KindCarry
	KindRecovery
	KindFoulCommitted
	KindBallOut
	KindCard
	KindSubstitution
	KindFormationChange
)

var kindNames = map[Kind]string{
	KindGeneric:         "generic",
	KindPass:            "pass",
	KindShot:            "shot",
	KindTakeOn:          "take_on",
	KindCarry:           "carry",
	KindRecovery:        "recovery",
	KindFoulCommitted:   "foul_committed",
	KindBallOut:         "ball_out",
	KindCard:            "card",
	KindSubstitution:    "substitution",
	KindFormationChange: "formation_change",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// ParseKind maps a stable kind name back to its value.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return KindGeneric, fmt.Errorf("unknown event kind: %q", name)
}

// MarshalJSON encodes the kind as its stable name.
func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON decodes the kind from its stable name. Unknown names
// decode as Generic so unrecognized provider events degrade to
// non-actions instead of failing the whole feed.
func (k *Kind) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, err := ParseKind(name)
	if err != nil {
		*k = KindGeneric
		return nil
	}
	*k = parsed
	return nil
}
