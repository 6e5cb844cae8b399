// Package prompt runs the profile form as a sequence of terminal questions.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/verte-zerg/profileform/internal/form"
	"github.com/verte-zerg/profileform/internal/i18n"
)

// ErrAborted is returned when the user interrupts a prompt.
var ErrAborted = errors.New("prompt aborted")

// Asker asks single questions. Implementations return an error when the
// user aborts.
type Asker interface {
	Input(message, def string, validate func(string) error) (string, error)
	Select(message string, options []string, def int) (int, error)
	Confirm(message string, def bool) (bool, error)
	Notice(text string)
}

// Run asks every field, then submits, re-asking the name until the submit
// succeeds. It returns the final state and the successful outcome.
func Run(a Asker, cat i18n.Catalog) (form.State, form.Outcome, error) {
	s := form.New()

	name, err := a.Input(cat.Text(i18n.EnterName), s.Name, nil)
	if err != nil {
		return s, form.Outcome{}, err
	}
	s = form.Reduce(s, form.SetName{Text: name})

	ageText, err := a.Input(
		fmt.Sprintf("%s (%d-%d)", cat.Text(i18n.Age), form.MinAge, form.MaxAge),
		strconv.Itoa(s.Age),
		validateAge,
	)
	if err != nil {
		return s, form.Outcome{}, err
	}
	age, err := parseAge(ageText)
	if err != nil {
		return s, form.Outcome{}, err
	}
	s = form.Reduce(s, form.SetAge{Value: age})

	options := []string{cat.Text(i18n.Male), cat.Text(i18n.Female)}
	choice, err := a.Select(cat.Text(i18n.Gender), options, int(s.Gender))
	if err != nil {
		return s, form.Outcome{}, err
	}
	gender := form.Male
	if choice == 1 {
		gender = form.Female
	}
	s = form.Reduce(s, form.SetGender{Value: gender})

	subscribed, err := a.Confirm(cat.Text(i18n.Subscribe), s.Subscribed)
	if err != nil {
		return s, form.Outcome{}, err
	}
	s = form.Reduce(s, form.SetSubscribed{Value: subscribed})

	for {
		var out form.Outcome
		s, out = form.Apply(s, form.Submit{})
		if out.Kind == form.OutcomeSubmitted {
			return s, out, nil
		}
		a.Notice(cat.Text(i18n.ErrorName))
		name, err := a.Input(cat.Text(i18n.EnterName), s.Name, nil)
		if err != nil {
			return s, out, err
		}
		s = form.Reduce(s, form.SetName{Text: name})
	}
}

func parseAge(text string) (int, error) {
	age, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("invalid age %q: %w", text, err)
	}
	return form.ClampAge(age), nil
}

func validateAge(text string) error {
	_, err := parseAge(text)
	return err
}

// SurveyAsker asks questions on a terminal using survey prompts.
type SurveyAsker struct {
	opts []survey.AskOpt
	out  io.Writer
}

// NewSurveyAsker binds prompts to the given terminal streams.
func NewSurveyAsker(in terminal.FileReader, out terminal.FileWriter, errOut io.Writer) *SurveyAsker {
	return &SurveyAsker{
		opts: []survey.AskOpt{survey.WithStdio(in, out, errOut)},
		out:  errOut,
	}
}

// Input implements Asker.
func (s *SurveyAsker) Input(message, def string, validate func(string) error) (string, error) {
	opts := append([]survey.AskOpt(nil), s.opts...)
	if validate != nil {
		opts = append(opts, survey.WithValidator(func(ans interface{}) error {
			text, _ := ans.(string)
			return validate(text)
		}))
	}
	var answer string
	if err := survey.AskOne(&survey.Input{Message: message, Default: def}, &answer, opts...); err != nil {
		return "", translateSurveyErr(err)
	}
	return answer, nil
}

// Select implements Asker.
func (s *SurveyAsker) Select(message string, options []string, def int) (int, error) {
	var answer int
	p := &survey.Select{Message: message, Options: options}
	if def >= 0 && def < len(options) {
		p.Default = options[def]
	}
	if err := survey.AskOne(p, &answer, s.opts...); err != nil {
		return 0, translateSurveyErr(err)
	}
	return answer, nil
}

// Confirm implements Asker.
func (s *SurveyAsker) Confirm(message string, def bool) (bool, error) {
	var answer bool
	if err := survey.AskOne(&survey.Confirm{Message: message, Default: def}, &answer, s.opts...); err != nil {
		return false, translateSurveyErr(err)
	}
	return answer, nil
}

// Notice implements Asker.
func (s *SurveyAsker) Notice(text string) {
	_, _ = fmt.Fprintln(s.out, text)
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}
