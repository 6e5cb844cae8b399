package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/verte-zerg/profileform/internal/form"
	"github.com/verte-zerg/profileform/internal/model"
	"github.com/verte-zerg/profileform/internal/statestore"
)

func newTestModel(t *testing.T, locale string) (*Model, *statestore.Store) {
	t.Helper()
	st, err := statestore.Open()
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	m := NewModel(model.Config{Locale: locale}, st, zap.NewNop())
	m.copyToClipboard = func(string) error { return errors.New("no clipboard in tests") }
	return m, st
}

func send(t *testing.T, m *Model, msgs ...tea.Msg) *Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(*Model)
		require.True(t, ok, "Update must return *Model")
	}
	return m
}

func keyOf(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func typed(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func lineContaining(t *testing.T, view, needle string) string {
	t.Helper()
	for _, line := range strings.Split(view, "\n") {
		if strings.Contains(line, needle) {
			return line
		}
	}
	t.Fatalf("no line containing %q in view:\n%s", needle, view)
	return ""
}

func TestInitialState(t *testing.T) {
	m, _ := newTestModel(t, "en")
	require.Equal(t, form.New(), m.State())
	require.Equal(t, fieldName, m.focus)
	require.NotNil(t, m.Init())

	view := m.View()
	require.Contains(t, view, "Age: 18")
	require.Contains(t, view, "(•) Male")
	require.Contains(t, view, "[ ] Subscribe")
	require.NotContains(t, view, "Summary")
}

func TestBlankSubmitShowsError(t *testing.T) {
	m, _ := newTestModel(t, "en")
	m = send(t, m, keyOf(tea.KeyCtrlS))

	s := m.State()
	require.True(t, s.NameError)
	require.False(t, s.ShowSummary)
	require.Contains(t, m.View(), "Name must not be empty")
}

func TestTypingClearsError(t *testing.T) {
	m, _ := newTestModel(t, "en")
	m = send(t, m, keyOf(tea.KeyCtrlS))
	require.True(t, m.State().NameError)

	m = send(t, m, typed("Bob"))
	require.False(t, m.State().NameError)
	require.Equal(t, "Bob", m.State().Name)
	require.NotContains(t, m.View(), "Name must not be empty")

	m = send(t, m, keyOf(tea.KeyCtrlS))
	require.True(t, m.State().ShowSummary)
}

func TestWhitespaceNameRejected(t *testing.T) {
	m, _ := newTestModel(t, "en")
	space := tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	m = send(t, m, space, space, keyOf(tea.KeyCtrlS))
	require.Equal(t, "  ", m.State().Name)
	require.True(t, m.State().NameError)
}

func TestFullFormThroughKeys(t *testing.T) {
	m, _ := newTestModel(t, "en")
	m = send(t, m,
		typed("Anna"),
		keyOf(tea.KeyEnter), // to age
		keyOf(tea.KeyPgUp),  // 28
		keyOf(tea.KeyLeft), keyOf(tea.KeyLeft), keyOf(tea.KeyLeft), // 25
		keyOf(tea.KeyTab), // to gender
		keyOf(tea.KeyRight),
		keyOf(tea.KeyTab), // to subscribe
		keyOf(tea.KeySpace),
		keyOf(tea.KeyTab), // to send
		keyOf(tea.KeyEnter),
	)

	s := m.State()
	require.Equal(t, form.Snapshot{Name: "Anna", Age: 25, Gender: form.Female, Subscribed: true}, s.Snapshot())
	require.True(t, s.ShowSummary)
	require.False(t, s.NameError)

	view := m.View()
	require.Contains(t, view, "Summary")
	require.Contains(t, lineContaining(t, view, "Name:"), "Anna")
	require.Contains(t, lineContaining(t, view, "Age:"), "25")
	require.Contains(t, lineContaining(t, view, "Gender:"), "Female")
	require.Contains(t, lineContaining(t, view, "Subscription:"), "yes")
}

func TestAgeSliderBounds(t *testing.T) {
	m, _ := newTestModel(t, "en")
	m = send(t, m, keyOf(tea.KeyTab), keyOf(tea.KeyEnd), keyOf(tea.KeyRight), keyOf(tea.KeyPgUp))
	require.Equal(t, 100, m.State().Age)

	m = send(t, m, keyOf(tea.KeyHome), keyOf(tea.KeyLeft), keyOf(tea.KeyPgDown))
	require.Equal(t, 1, m.State().Age)
}

func TestGenderToggle(t *testing.T) {
	m, _ := newTestModel(t, "en")
	m = send(t, m, keyOf(tea.KeyTab), keyOf(tea.KeyTab), keyOf(tea.KeySpace))
	require.Equal(t, form.Female, m.State().Gender)
	m = send(t, m, keyOf(tea.KeySpace))
	require.Equal(t, form.Male, m.State().Gender)
	m = send(t, m, keyOf(tea.KeyRight), keyOf(tea.KeyLeft))
	require.Equal(t, form.Male, m.State().Gender)
}

func TestFocusWraps(t *testing.T) {
	m, _ := newTestModel(t, "en")
	m = send(t, m, keyOf(tea.KeyShiftTab))
	require.Equal(t, fieldSend, m.focus)
	m = send(t, m, keyOf(tea.KeyTab))
	require.Equal(t, fieldName, m.focus)
	require.True(t, m.nameInput.Focused())
}

func TestLettersOutsideNameDoNotEdit(t *testing.T) {
	m, _ := newTestModel(t, "en")
	m = send(t, m, keyOf(tea.KeyTab), typed("q"))
	require.Equal(t, "", m.State().Name)
	require.Equal(t, form.DefaultAge, m.State().Age)
}

func TestRotationDropsOnlyNameError(t *testing.T) {
	m, st := newTestModel(t, "en")
	m = send(t, m,
		tea.WindowSizeMsg{Width: 120, Height: 30},
		keyOf(tea.KeyTab), keyOf(tea.KeyPgUp),
		keyOf(tea.KeyTab), keyOf(tea.KeyRight),
		keyOf(tea.KeyTab), keyOf(tea.KeySpace),
		keyOf(tea.KeyCtrlS),
	)
	require.True(t, m.State().NameError)
	require.Equal(t, 0, m.recreations)

	m = send(t, m, tea.WindowSizeMsg{Width: 40, Height: 40})
	require.Equal(t, 1, m.recreations)
	s := m.State()
	require.False(t, s.NameError)
	require.Equal(t, 28, s.Age)
	require.Equal(t, form.Female, s.Gender)
	require.True(t, s.Subscribed)

	n, err := st.Count(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestRotationKeepsSummaryAndName(t *testing.T) {
	m, _ := newTestModel(t, "en")
	m = send(t, m, tea.WindowSizeMsg{Width: 40, Height: 40}, typed("Anna"), keyOf(tea.KeyCtrlS))
	require.True(t, m.State().ShowSummary)

	m = send(t, m, tea.WindowSizeMsg{Width: 45, Height: 41})
	require.Equal(t, 0, m.recreations, "resize without orientation change keeps the screen")

	m = send(t, m, tea.WindowSizeMsg{Width: 160, Height: 40})
	require.Equal(t, 1, m.recreations)
	require.True(t, m.State().ShowSummary)
	require.Equal(t, "Anna", m.nameInput.Value())
	require.Contains(t, m.View(), "Summary")
}

func TestRotationWithoutStore(t *testing.T) {
	m := NewModel(model.Config{}, nil, nil)
	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 20}, typed("Zoe"), keyOf(tea.KeyCtrlS))
	m = send(t, m, tea.WindowSizeMsg{Width: 30, Height: 40})
	require.Equal(t, "Zoe", m.State().Name)
	require.True(t, m.State().ShowSummary)
}

func TestQuitDropsSavedState(t *testing.T) {
	m, st := newTestModel(t, "en")
	m = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 30}, tea.WindowSizeMsg{Width: 40, Height: 40})
	n, err := st.Count(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, n)

	_, cmd := m.Update(keyOf(tea.KeyCtrlC))
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())

	n, err = st.Count(context.Background())
	require.NoError(t, err)
	require.Equal(t, 0, n)
}

func TestCopySummary(t *testing.T) {
	m, _ := newTestModel(t, "en")
	var copied []string
	m.copyToClipboard = func(s string) error {
		copied = append(copied, s)
		return nil
	}

	m = send(t, m, keyOf(tea.KeyCtrlY))
	require.Empty(t, copied, "nothing to copy before submit")

	m = send(t, m, typed("Anna"), keyOf(tea.KeyCtrlS), keyOf(tea.KeyCtrlY))
	require.Len(t, copied, 1)
	require.True(t, strings.HasPrefix(copied[0], "Summary\n"))
	require.Contains(t, copied[0], "Anna")
	require.Contains(t, m.View(), "summary copied")
}

func TestCopySummaryFailure(t *testing.T) {
	m, _ := newTestModel(t, "en")
	m = send(t, m, typed("Anna"), keyOf(tea.KeyCtrlS), keyOf(tea.KeyCtrlY))
	require.Equal(t, "clipboard unavailable", m.status)

	m = send(t, m, keyOf(tea.KeyCtrlS))
	require.Empty(t, m.status)
}

func TestCopyStatusIsLocalizedAndClearedOnEdit(t *testing.T) {
	m, _ := newTestModel(t, "ru")
	m.copyToClipboard = func(string) error { return nil }
	m = send(t, m, typed("Анна"), keyOf(tea.KeyCtrlS), keyOf(tea.KeyCtrlY))
	require.Equal(t, "итог скопирован", m.status)
	require.Contains(t, m.View(), "итог скопирован")

	m = send(t, m, typed("x"))
	require.Equal(t, "Аннаx", m.State().Name)
	require.Empty(t, m.status)
	require.NotContains(t, m.View(), "итог скопирован")

	m.copyToClipboard = func(string) error { return errors.New("no clipboard") }
	m = send(t, m, keyOf(tea.KeyCtrlY))
	require.Equal(t, "буфер обмена недоступен", m.status)
	m = send(t, m, keyOf(tea.KeyTab), keyOf(tea.KeyRight))
	require.Empty(t, m.status)
}

func TestLongPastedNameIsKeptWhole(t *testing.T) {
	m, _ := newTestModel(t, "en")
	long := strings.Repeat("a", 200)
	m = send(t, m,
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(long), Paste: true},
		keyOf(tea.KeyCtrlS),
	)
	require.Equal(t, long, m.State().Name)
	require.True(t, m.State().ShowSummary)

	sum, ok := form.SummaryFor(m.State(), m.catalog)
	require.True(t, ok)
	require.Equal(t, long, sum.Lines[0].Value)
}

func TestRestoreLogsSavedAt(t *testing.T) {
	st, err := statestore.Open()
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	core, logs := observer.New(zap.DebugLevel)
	m := NewModel(model.Config{}, st, zap.New(core))

	require.Zero(t, logs.FilterMessage("screen state restored").Len())
	m = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 30}, tea.WindowSizeMsg{Width: 40, Height: 40})
	restored := logs.FilterMessage("screen state restored").All()
	require.Len(t, restored, 1)
	fields := restored[0].ContextMap()
	require.Equal(t, m.screenID, fields["screen"])
	require.Contains(t, fields, "saved_at")
}

func TestRussianLabels(t *testing.T) {
	m, _ := newTestModel(t, "ru_RU.UTF-8")
	m = send(t, m, keyOf(tea.KeyCtrlS))
	view := m.View()
	require.Contains(t, view, "Возраст: 18")
	require.Contains(t, view, "Имя не может быть пустым")

	m = send(t, m, typed("Борис"), keyOf(tea.KeyCtrlS))
	view = m.View()
	require.Contains(t, lineContaining(t, view, "Подписка:"), "нет")
	require.Contains(t, lineContaining(t, view, "Пол:"), "Мужской")
}

func TestViewPlacesFooter(t *testing.T) {
	m, _ := newTestModel(t, "en")
	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	view := m.View()
	lines := strings.Split(view, "\n")
	require.Len(t, lines, 40)
	require.Contains(t, lines[len(lines)-1], "quit")
}
