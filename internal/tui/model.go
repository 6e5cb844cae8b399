// Package tui provides the Bubble Tea profile form.
package tui

import (
	"context"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/verte-zerg/profileform/internal/form"
	"github.com/verte-zerg/profileform/internal/i18n"
	"github.com/verte-zerg/profileform/internal/model"
	"github.com/verte-zerg/profileform/internal/statestore"
)

type field int

const (
	fieldName field = iota
	fieldAge
	fieldGender
	fieldSubscribe
	fieldSend
	fieldCount
)

const (
	ageStep    = 1
	ageBigStep = 10
)

// Model implements the Bubble Tea form screen.
type Model struct {
	catalog  i18n.Catalog
	store    *statestore.Store
	logger   *zap.Logger
	screenID string
	styles   styles

	copyToClipboard func(string) error

	state  form.State
	status string

	nameInput textinput.Model
	ageBar    progress.Model
	help      help.Model
	keys      keyMap
	focus     field

	width       int
	height      int
	sized       bool
	portrait    bool
	recreations int
}

// NewModel constructs the form screen. store may be nil, in which case
// recreation keeps state in memory only.
func NewModel(cfg model.Config, store *statestore.Store, logger *zap.Logger) *Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &Model{
		catalog:         i18n.Lookup(cfg.Locale),
		store:           store,
		logger:          logger,
		screenID:        uuid.NewString(),
		styles:          newStyles(cfg.Accent),
		copyToClipboard: clipboard.WriteAll,
		keys:            defaultKeyMap(),
	}
	m.create(form.New().Save())
	m.logger.Debug("screen created",
		zap.String("screen", m.screenID),
		zap.String("locale", m.catalog.Locale()),
	)
	return m
}

// State returns the current form state.
func (m *Model) State() form.State {
	return m.state
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		portrait := isPortrait(msg.Width, msg.Height)
		rotated := m.sized && portrait != m.portrait
		m.width = msg.Width
		m.height = msg.Height
		m.portrait = portrait
		m.sized = true
		if rotated {
			m.recreate()
		}
		m.resize()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		if m.focus == fieldName {
			var cmd tea.Cmd
			m.nameInput, cmd = m.nameInput.Update(msg)
			return m, cmd
		}
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.teardown()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Submit):
		m.dispatch(form.Submit{})
		return m, nil
	case key.Matches(msg, m.keys.Copy):
		m.copySummary()
		return m, nil
	case key.Matches(msg, m.keys.Next):
		return m, m.setFocus((m.focus + 1) % fieldCount)
	case key.Matches(msg, m.keys.Prev):
		return m, m.setFocus((m.focus + fieldCount - 1) % fieldCount)
	}

	switch m.focus {
	case fieldName:
		return m.handleNameKey(msg)
	case fieldAge:
		m.handleAgeKey(msg)
	case fieldGender:
		m.handleGenderKey(msg)
	case fieldSubscribe:
		if key.Matches(msg, m.keys.Toggle) || key.Matches(msg, m.keys.Activate) {
			m.dispatch(form.SetSubscribed{Value: !m.state.Subscribed})
		}
	case fieldSend:
		if key.Matches(msg, m.keys.Activate) {
			m.dispatch(form.Submit{})
		}
	}
	return m, nil
}

func (m *Model) handleNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		return m, m.setFocus(fieldAge)
	}
	before := m.nameInput.Value()
	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	if after := m.nameInput.Value(); after != before {
		m.dispatch(form.SetName{Text: after})
	}
	return m, cmd
}

func (m *Model) handleAgeKey(msg tea.KeyMsg) {
	age := m.state.Age
	switch {
	case key.Matches(msg, m.keys.StepDown):
		age -= ageBigStep
	case key.Matches(msg, m.keys.StepUp):
		age += ageBigStep
	case key.Matches(msg, m.keys.Left):
		age -= ageStep
	case key.Matches(msg, m.keys.Right):
		age += ageStep
	case key.Matches(msg, m.keys.Min):
		age = form.MinAge
	case key.Matches(msg, m.keys.Max):
		age = form.MaxAge
	default:
		return
	}
	m.dispatch(form.SetAge{Value: age})
}

func (m *Model) handleGenderKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Left):
		m.dispatch(form.SetGender{Value: form.Male})
	case key.Matches(msg, m.keys.Right):
		m.dispatch(form.SetGender{Value: form.Female})
	case key.Matches(msg, m.keys.Toggle):
		next := form.Female
		if m.state.Gender == form.Female {
			next = form.Male
		}
		m.dispatch(form.SetGender{Value: next})
	}
}

// dispatch applies e and clears the status line.
func (m *Model) dispatch(e form.Event) {
	next, out := form.Apply(m.state, e)
	m.state = next
	m.status = ""
	switch out.Kind {
	case form.OutcomeSubmitted:
		m.logger.Info("form submitted",
			zap.String("screen", m.screenID),
			zap.Int("age", out.Snapshot.Age),
			zap.Stringer("gender", out.Snapshot.Gender),
			zap.Bool("subscribed", out.Snapshot.Subscribed),
		)
	case form.OutcomeValidationFailed:
		m.logger.Debug("form rejected", zap.String("screen", m.screenID), zap.Error(out.Err()))
	}
}

func (m *Model) setFocus(f field) tea.Cmd {
	m.focus = f
	if f == fieldName {
		return m.nameInput.Focus()
	}
	m.nameInput.Blur()
	return nil
}

// create builds the widgets and restores state saved under the screen id,
// using fallback when the store has nothing.
func (m *Model) create(fallback form.Saved) {
	m.nameInput = newNameInput(m.catalog)
	m.ageBar = progress.New(
		progress.WithSolidFill(string(m.styles.accent)),
		progress.WithoutPercentage(),
	)
	m.help = help.New()
	m.state = form.Restore(m.loadState(fallback))
	m.nameInput.SetValue(m.state.Name)
	m.focus = fieldName
	m.nameInput.Focus()
	m.resize()
}

// recreate rebuilds the screen as after a rotation: everything but the
// name error survives.
func (m *Model) recreate() {
	m.recreations++
	saved := m.state.Save()
	if m.store != nil {
		if err := m.store.SaveState(context.Background(), m.screenID, saved); err != nil {
			m.logger.Warn("failed to save screen state", zap.String("screen", m.screenID), zap.Error(err))
		}
	}
	m.create(saved)
	m.logger.Debug("screen recreated",
		zap.String("screen", m.screenID),
		zap.Bool("portrait", m.portrait),
		zap.Int("recreations", m.recreations),
	)
}

func (m *Model) loadState(fallback form.Saved) form.Saved {
	if m.store == nil {
		return fallback
	}
	sv, ok, err := m.store.LoadState(context.Background(), m.screenID)
	if err != nil {
		m.logger.Warn("failed to load screen state", zap.String("screen", m.screenID), zap.Error(err))
		return fallback
	}
	if !ok {
		return fallback
	}
	fields := []zap.Field{zap.String("screen", m.screenID)}
	if at, found, err := m.store.SavedAt(context.Background(), m.screenID); err == nil && found {
		fields = append(fields, zap.Time("saved_at", at))
	}
	m.logger.Debug("screen state restored", fields...)
	return sv
}

func (m *Model) teardown() {
	if m.store == nil {
		return
	}
	if err := m.store.DeleteState(context.Background(), m.screenID); err != nil {
		m.logger.Warn("failed to drop screen state", zap.String("screen", m.screenID), zap.Error(err))
	}
}

func (m *Model) copySummary() {
	sum, ok := form.SummaryFor(m.state, m.catalog)
	if !ok {
		return
	}
	if err := m.copyToClipboard(FormatSummary(sum)); err != nil {
		m.logger.Warn("failed to copy summary", zap.Error(err))
		m.status = m.catalog.Text(i18n.StatusClipboardUnavailable)
		return
	}
	m.status = m.catalog.Text(i18n.StatusCopied)
}

func (m *Model) resize() {
	width := m.contentWidth()
	m.nameInput.Width = width - 4
	m.ageBar.Width = width
	m.help.Width = m.width
}

func (m *Model) contentWidth() int {
	const maxWidth = 48
	if m.width == 0 {
		return maxWidth
	}
	width := m.width - 4
	if width > maxWidth {
		width = maxWidth
	}
	if width < 10 {
		width = 10
	}
	return width
}

func newNameInput(cat i18n.Catalog) textinput.Model {
	input := textinput.New()
	input.Placeholder = cat.Text(i18n.EnterName)
	input.Prompt = ""
	return input
}

// Terminal cells are roughly twice as tall as wide.
func isPortrait(width, height int) bool {
	return width < height*2
}
