package grammar

import (
	"context"

	"braces.dev/errtrace"
	"github.com/qmuntal/stateless"

	"github.com/ghettovoice/httphdr/internal/util"
)

type lineState uint8

const (
	stateNormal lineState = iota
	stateSawCR
	stateSawLF
)

func (s lineState) String() string {
	switch s {
	case stateNormal:
		return "NORMAL"
	case stateSawCR:
		return "SAW_CR"
	case stateSawLF:
		return "SAW_LF"
	default:
		return "UNKNOWN"
	}
}

type lineTrigger uint8

const (
	triggerCR lineTrigger = iota
	triggerLF
	triggerWSP
	triggerOther
)

func (t lineTrigger) String() string {
	switch t {
	case triggerCR:
		return "CR"
	case triggerLF:
		return "LF"
	case triggerWSP:
		return "WSP"
	default:
		return "OTHER"
	}
}

func triggerOf(r rune) lineTrigger {
	switch r {
	case '\r':
		return triggerCR
	case '\n':
		return triggerLF
	case ' ', '\t':
		return triggerWSP
	default:
		return triggerOther
	}
}

type lineStateKey struct{}

// lineMachine holds only the transition table. The current state of a scan lives
// in the scan's context, so the machine is shared by concurrent scans.
var lineMachine = newLineMachine()

func newLineMachine() *stateless.StateMachine {
	sm := stateless.NewStateMachineWithExternalStorage(
		func(ctx context.Context) (stateless.State, error) {
			return *ctx.Value(lineStateKey{}).(*lineState), nil //nolint:forcetypeassert
		},
		func(ctx context.Context, s stateless.State) error {
			*ctx.Value(lineStateKey{}).(*lineState) = s.(lineState) //nolint:forcetypeassert
			return nil
		},
		stateless.FiringImmediate,
	)

	sm.Configure(stateNormal).
		Permit(triggerCR, stateSawCR).
		Permit(triggerLF, stateSawLF)
	sm.Configure(stateSawCR).
		Permit(triggerLF, stateSawLF)
	sm.Configure(stateSawLF).
		Permit(triggerWSP, stateNormal)

	return sm
}

// ScanFieldValue checks value against the field-value character rules and
// reports whether it contains obsolete line folding.
//
// Every character must be in ISO-8859-1, VT and FF are never allowed.
// CR must be followed by LF, LF must be followed by SP or HTAB,
// and the value must not end in CR or LF.
func ScanFieldValue(value string) (folded bool, err error) {
	var (
		state = stateNormal
		ctx   context.Context
		last  rune
	)
	for i, r := range value {
		last = r
		switch {
		case r > 0xFF:
			return false, errtrace.Wrap(&CharError{ErrNotLatin1, r, i})
		case r == '\v' || r == '\f':
			return false, errtrace.Wrap(&CharError{ErrFormControl, r, i})
		}

		trig := triggerOf(r)
		if state == stateNormal && (trig == triggerWSP || trig == triggerOther) {
			continue
		}

		if ctx == nil {
			ctx = context.WithValue(context.Background(), lineStateKey{}, &state)
		}
		from := state
		if err := lineMachine.FireCtx(ctx, trig); err != nil {
			if from == stateSawCR {
				return false, errtrace.Wrap(&CharError{ErrBareCR, r, i})
			}
			return false, errtrace.Wrap(&CharError{ErrBareLF, r, i})
		}
		if from == stateSawLF {
			folded = true
		}
	}

	if state != stateNormal {
		return false, errtrace.Wrap(&CharError{ErrTrailingEOL, last, len(value) - 1})
	}
	return folded, nil
}

// CollapseObsFold replaces every obs-fold, an optional CR, LF and the whole run
// of SP/HTAB after it, with a single SP. Whitespace before the CR is kept.
// The value is expected to have passed [ScanFieldValue].
func CollapseObsFold(value string) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	sb.Grow(len(value))
	for i := 0; i < len(value); {
		c := value[i]
		if c != '\r' && c != '\n' {
			sb.WriteByte(c)
			i++
			continue
		}

		if c == '\r' {
			i++
		}
		if i < len(value) && value[i] == '\n' {
			i++
		}
		for i < len(value) && (value[i] == ' ' || value[i] == '\t') {
			i++
		}
		sb.WriteByte(' ')
	}
	return sb.String()
}

// NormalizeFieldValue validates value with [ScanFieldValue] and collapses
// obs-folds when there are any. A value without folds is returned as is.
func NormalizeFieldValue(value string) (string, error) {
	folded, err := ScanFieldValue(value)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	if !folded {
		return value, nil
	}
	return CollapseObsFold(value), nil
}
