// Package form holds the profile form state and its transitions.
package form

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Age bounds enforced on every update.
const (
	MinAge     = 1
	MaxAge     = 100
	DefaultAge = 18
)

// ErrBlankName is reported when a submit is attempted with a blank name.
var ErrBlankName = errors.New("name must not be blank")

// Gender is the selectable gender value.
type Gender int

// Supported genders.
const (
	Male Gender = iota
	Female
)

func (g Gender) String() string {
	if g == Female {
		return "female"
	}
	return "male"
}

// MarshalText implements encoding.TextMarshaler.
func (g Gender) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (g *Gender) UnmarshalText(text []byte) error {
	parsed, err := ParseGender(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// ParseGender maps "male"/"female" (any case) to a Gender.
func ParseGender(s string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male":
		return Male, nil
	case "female":
		return Female, nil
	default:
		return Male, fmt.Errorf("unknown gender %q (want male or female)", s)
	}
}

// Phase is the visible state of the screen.
type Phase int

// Screen phases.
const (
	PhaseInitial Phase = iota
	PhaseErrorShown
	PhaseSummaryShown
)

func (p Phase) String() string {
	switch p {
	case PhaseErrorShown:
		return "error"
	case PhaseSummaryShown:
		return "summary"
	default:
		return "initial"
	}
}

// State is an immutable value; every transition returns a new State.
type State struct {
	Name        string
	Age         int
	Gender      Gender
	Subscribed  bool
	NameError   bool
	ShowSummary bool
}

// Snapshot is the submitted subset of State.
type Snapshot struct {
	Name       string `yaml:"name" toml:"name"`
	Age        int    `yaml:"age" toml:"age"`
	Gender     Gender `yaml:"gender" toml:"gender"`
	Subscribed bool   `yaml:"subscribed" toml:"subscribed"`
}

// New returns the initial form state.
func New() State {
	return State{Age: DefaultAge, Gender: Male}
}

// ClampAge constrains v to [MinAge, MaxAge].
func ClampAge(v int) int {
	if v < MinAge {
		return MinAge
	}
	if v > MaxAge {
		return MaxAge
	}
	return v
}

// IsBlank reports whether s is empty or whitespace only.
func IsBlank(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return !unicode.IsSpace(r) }) < 0
}

// SetName replaces the name and clears any name error.
func (s State) SetName(text string) State {
	s.Name = text
	s.NameError = false
	return s
}

// SetAge replaces the age, clamped to the allowed range.
func (s State) SetAge(v int) State {
	s.Age = ClampAge(v)
	return s
}

// SetGender replaces the gender.
func (s State) SetGender(g Gender) State {
	if g != Female {
		g = Male
	}
	s.Gender = g
	return s
}

// SetSubscribed replaces the subscription flag.
func (s State) SetSubscribed(v bool) State {
	s.Subscribed = v
	return s
}

// Submit validates the name. A success leaves NameError as it was.
func (s State) Submit() (State, Outcome) {
	if IsBlank(s.Name) {
		s.NameError = true
		s.ShowSummary = false
		return s, Outcome{Kind: OutcomeValidationFailed}
	}
	s.ShowSummary = true
	return s, Outcome{Kind: OutcomeSubmitted, Snapshot: s.Snapshot()}
}

// Snapshot copies the submitted fields.
func (s State) Snapshot() Snapshot {
	return Snapshot{Name: s.Name, Age: s.Age, Gender: s.Gender, Subscribed: s.Subscribed}
}

// Phase derives the screen phase from the flags.
func (s State) Phase() Phase {
	switch {
	case s.NameError:
		return PhaseErrorShown
	case s.ShowSummary:
		return PhaseSummaryShown
	default:
		return PhaseInitial
	}
}
