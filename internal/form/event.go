package form

// Event is a user action on the form.
type Event interface {
	isEvent()
}

// SetName is dispatched on every edit of the name field.
type SetName struct{ Text string }

// SetAge is dispatched when the age slider moves.
type SetAge struct{ Value int }

// SetGender is dispatched when a gender option is selected.
type SetGender struct{ Value Gender }

// SetSubscribed is dispatched when the subscription box is toggled.
type SetSubscribed struct{ Value bool }

// Submit is dispatched by the send action.
type Submit struct{}

func (SetName) isEvent()       {}
func (SetAge) isEvent()        {}
func (SetGender) isEvent()     {}
func (SetSubscribed) isEvent() {}
func (Submit) isEvent()        {}

// OutcomeKind classifies the result of an event.
type OutcomeKind int

// Outcome kinds. Only Submit produces something other than OutcomeNone.
const (
	OutcomeNone OutcomeKind = iota
	OutcomeSubmitted
	OutcomeValidationFailed
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSubmitted:
		return "submitted"
	case OutcomeValidationFailed:
		return "validation_failed"
	default:
		return "none"
	}
}

// Outcome is the signal produced by an event.
type Outcome struct {
	Kind     OutcomeKind
	Snapshot Snapshot
}

// Err returns ErrBlankName for a failed validation, nil otherwise.
func (o Outcome) Err() error {
	if o.Kind == OutcomeValidationFailed {
		return ErrBlankName
	}
	return nil
}

// Apply runs one event against s.
func Apply(s State, e Event) (State, Outcome) {
	switch e := e.(type) {
	case SetName:
		return s.SetName(e.Text), Outcome{}
	case SetAge:
		return s.SetAge(e.Value), Outcome{}
	case SetGender:
		return s.SetGender(e.Value), Outcome{}
	case SetSubscribed:
		return s.SetSubscribed(e.Value), Outcome{}
	case Submit:
		return s.Submit()
	default:
		return s, Outcome{}
	}
}

// Reduce runs one event and drops the outcome.
func Reduce(s State, e Event) State {
	next, _ := Apply(s, e)
	return next
}

// Replay folds events over the initial state and returns the last non-empty outcome.
func Replay(events ...Event) (State, Outcome) {
	s := New()
	var last Outcome
	for _, e := range events {
		var out Outcome
		s, out = Apply(s, e)
		if out.Kind != OutcomeNone {
			last = out
		}
	}
	return s, last
}
