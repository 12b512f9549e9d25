package convert

import (
	"github.com/fieldline/spadl/internal/domain/event"
	"github.com/fieldline/spadl/internal/domain/spadl"
)

// classification is the canonical triple a mapper assigns to one event.
type classification struct {
	Type     spadl.ActionType
	Result   spadl.Result
	BodyPart spadl.BodyPart
}

// classify assigns the canonical triple for a single event. It is
// total: kinds without a dedicated mapper come back as non-actions
// and are dropped later in the pipeline.
func classify(ev event.Event) classification {
	switch ev.Kind {
	case event.KindPass:
		return classifyPass(ev)
	case event.KindShot:
		return classifyShot(ev)
	case event.KindTakeOn:
		return classifyTakeOn(ev)
	case event.KindCarry:
		return classifyCarry(ev)
	case event.KindRecovery:
		return classifyRecovery(ev)
	default:
		return nonAction()
	}
}

func nonAction() classification {
	return classification{
		Type:     spadl.TypeNonAction,
		Result:   spadl.ResultSuccess,
		BodyPart: spadl.BodyPartFoot,
	}
}

// crossedQualifiers mark a restart that was played long into the box
// rather than short.
var crossedQualifiers = []event.Qualifier{
	event.QualifierChippedPass,
	event.QualifierCross,
	event.QualifierHighPass,
}

func classifyPass(ev event.Event) classification {
	var t spadl.ActionType
	switch {
	case ev.Qualifiers.Has(event.QualifierFreeKick):
		if ev.Qualifiers.HasAny(crossedQualifiers...) {
			t = spadl.TypeFreekickCrossed
		} else {
			t = spadl.TypeFreekickShort
		}
	case ev.Qualifiers.Has(event.QualifierCornerKick):
		if ev.Qualifiers.HasAny(crossedQualifiers...) {
			t = spadl.TypeCornerCrossed
		} else {
			t = spadl.TypeCornerShort
		}
	case ev.Qualifiers.Has(event.QualifierGoalKick):
		t = spadl.TypeGoalkick
	case ev.Qualifiers.Has(event.QualifierThrowIn):
		t = spadl.TypeThrowIn
	case ev.Qualifiers.Has(event.QualifierCross):
		t = spadl.TypeCross
	default:
		t = spadl.TypePass
	}

	var r spadl.Result
	switch ev.Result {
	case event.ResultIncomplete, event.ResultOut:
		r = spadl.ResultFail
	case event.ResultOffside:
		r = spadl.ResultOffside
	default:
		r = spadl.ResultSuccess
	}

	var b spadl.BodyPart
	switch {
	case ev.Qualifiers.Has(event.QualifierHead):
		b = spadl.BodyPartHead
	case ev.Qualifiers.HasAny(event.QualifierRightFoot, event.QualifierLeftFoot):
		b = spadl.BodyPartFoot
	case ev.Qualifiers.HasAny(event.QualifierChest, event.QualifierOtherBodyPart):
		b = spadl.BodyPartOther
	default:
		b = spadl.BodyPartFoot
	}

	return classification{Type: t, Result: r, BodyPart: b}
}

func classifyShot(ev event.Event) classification {
	var t spadl.ActionType
	switch {
	case ev.Qualifiers.Has(event.QualifierFreeKick):
		t = spadl.TypeShotFreekick
	case ev.Qualifiers.Has(event.QualifierPenalty):
		t = spadl.TypeShotPenalty
	default:
		t = spadl.TypeShot
	}

	var b spadl.BodyPart
	switch {
	case ev.Qualifiers.Has(event.QualifierHead):
		b = spadl.BodyPartHead
	case ev.Qualifiers.HasAny(event.QualifierRightFoot, event.QualifierLeftFoot, event.QualifierDropKick):
		b = spadl.BodyPartFoot
	default:
		b = spadl.BodyPartOther
	}

	// An own goal stops being a shot: the touch itself was the
	// mistake, so type and result change together.
	switch ev.Result {
	case event.ResultGoal:
		return classification{Type: t, Result: spadl.ResultSuccess, BodyPart: b}
	case event.ResultOwnGoal:
		return classification{Type: spadl.TypeBadTouch, Result: spadl.ResultOwnGoal, BodyPart: b}
	default:
		return classification{Type: t, Result: spadl.ResultFail, BodyPart: b}
	}
}

func classifyTakeOn(ev event.Event) classification {
	r := spadl.ResultFail
	if ev.Result == event.ResultComplete {
		r = spadl.ResultSuccess
	}
	return classification{Type: spadl.TypeTakeOn, Result: r, BodyPart: spadl.BodyPartFoot}
}

func classifyCarry(event.Event) classification {
	return classification{Type: spadl.TypeDribble, Result: spadl.ResultSuccess, BodyPart: spadl.BodyPartFoot}
}

// classifyRecovery marks loose-ball recoveries as interceptions.
// Providers expose no outcome for a recovery, so it always succeeds.
func classifyRecovery(event.Event) classification {
	return classification{Type: spadl.TypeInterception, Result: spadl.ResultSuccess, BodyPart: spadl.BodyPartFoot}
}
