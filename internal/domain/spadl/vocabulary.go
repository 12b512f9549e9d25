// Package spadl defines the canonical action vocabulary and the
// action table schema.
//
// Action types, results and body parts are closed enumerations with
// pinned integer ids. The ids are a wire contract shared with
// downstream consumers of exported tables and must never be
// renumbered; new entries may only be appended.
package spadl

import (
	"fmt"

	"github.com/fieldline/spadl/internal/domain/pitch"
)

// Pitch extent of the metric coordinate space actions are expressed
// in, in meters.
const (
	FieldLength = pitch.StandardLength
	FieldWidth  = pitch.StandardWidth
)

// ActionType identifies what a player did.
type ActionType int

// Canonical action types in pinned id order.
const (
	TypePass ActionType = iota
	TypeCross
	TypeThrowIn
	TypeFreekickCrossed
	TypeFreekickShort
	TypeCornerCrossed
	TypeCornerShort
	TypeTakeOn
	TypeFoul
	TypeTackle
	TypeInterception
	TypeShot
	TypeShotPenalty
	TypeShotFreekick
	TypeKeeperSave
	TypeKeeperClaim
	TypeKeeperPunch
	TypeKeeperPickUp
	TypeClearance
	TypeBadTouch
	TypeNonAction
	TypeDribble
	TypeGoalkick
)

var actionTypeNames = [...]string{
	TypePass:            "pass",
	TypeCross:           "cross",
	TypeThrowIn:         "throw_in",
	TypeFreekickCrossed: "freekick_crossed",
	TypeFreekickShort:   "freekick_short",
	TypeCornerCrossed:   "corner_crossed",
	TypeCornerShort:     "corner_short",
	TypeTakeOn:          "take_on",
	TypeFoul:            "foul",
	TypeTackle:          "tackle",
	TypeInterception:    "interception",
	TypeShot:            "shot",
	TypeShotPenalty:     "shot_penalty",
	TypeShotFreekick:    "shot_freekick",
	TypeKeeperSave:      "keeper_save",
	TypeKeeperClaim:     "keeper_claim",
	TypeKeeperPunch:     "keeper_punch",
	TypeKeeperPickUp:    "keeper_pick_up",
	TypeClearance:       "clearance",
	TypeBadTouch:        "bad_touch",
	TypeNonAction:       "non_action",
	TypeDribble:         "dribble",
	TypeGoalkick:        "goalkick",
}

// Valid reports whether t is one of the canonical action types.
func (t ActionType) Valid() bool {
	return t >= 0 && int(t) < len(actionTypeNames)
}

func (t ActionType) String() string {
	if t.Valid() {
		return actionTypeNames[t]
	}
	return fmt.Sprintf("actiontype(%d)", int(t))
}

// Result identifies how an action ended.
type Result int

// Canonical action results in pinned id order.
const (
	ResultFail Result = iota
	ResultSuccess
	ResultOffside
	ResultOwnGoal
	ResultYellowCard
	ResultRedCard
)

var resultNames = [...]string{
	ResultFail:       "fail",
	ResultSuccess:    "success",
	ResultOffside:    "offside",
	ResultOwnGoal:    "owngoal",
	ResultYellowCard: "yellow_card",
	ResultRedCard:    "red_card",
}

// Valid reports whether r is one of the canonical results.
func (r Result) Valid() bool {
	return r >= 0 && int(r) < len(resultNames)
}

func (r Result) String() string {
	if r.Valid() {
		return resultNames[r]
	}
	return fmt.Sprintf("result(%d)", int(r))
}

// BodyPart identifies what the player used.
type BodyPart int

// Canonical body parts in pinned id order. BodyPartHeadOther exists
// for sources that cannot tell head and chest apart; the foot sides
// for sources that can tell left from right. This converter emits
// only the first three.
const (
	BodyPartFoot BodyPart = iota
	BodyPartHead
	BodyPartOther
	BodyPartHeadOther
	BodyPartFootLeft
	BodyPartFootRight
)

var bodyPartNames = [...]string{
	BodyPartFoot:      "foot",
	BodyPartHead:      "head",
	BodyPartOther:     "other",
	BodyPartHeadOther: "head/other",
	BodyPartFootLeft:  "foot_left",
	BodyPartFootRight: "foot_right",
}

// Valid reports whether b is one of the canonical body parts.
func (b BodyPart) Valid() bool {
	return b >= 0 && int(b) < len(bodyPartNames)
}

func (b BodyPart) String() string {
	if b.Valid() {
		return bodyPartNames[b]
	}
	return fmt.Sprintf("bodypart(%d)", int(b))
}
