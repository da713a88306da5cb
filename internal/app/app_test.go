package app

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/abhisek/tensequiz/internal/catalog"
	"github.com/abhisek/tensequiz/internal/quiz"
	"github.com/abhisek/tensequiz/internal/router"
)

func testOptions() Options {
	return Options{
		Catalog:     catalog.Default(),
		Rand:        quiz.NewRand(1),
		Logger:      zerolog.Nop(),
		SkipWelcome: true,
	}
}

// send runs msg through the model and feeds back any router message
// the resulting command produces.
func send(t *testing.T, m AppModel, msg tea.Msg) AppModel {
	t.Helper()
	updated, cmd := m.Update(msg)
	m = updated.(AppModel)
	if cmd == nil {
		return m
	}
	switch out := cmd().(type) {
	case router.PushScreenMsg, router.PopScreenMsg, router.ReplaceScreenMsg:
		updated, _ = m.Update(out)
		m = updated.(AppModel)
	}
	return m
}

func TestNewAppModel_EmptyCatalog(t *testing.T) {
	_, err := newAppModel(Options{Catalog: catalog.New(nil)})
	if !errors.Is(err, catalog.ErrEmpty) {
		t.Errorf("expected ErrEmpty, got %v", err)
	}
}

func TestStartsOnWelcome(t *testing.T) {
	opts := testOptions()
	opts.SkipWelcome = false
	m, err := newAppModel(opts)
	if err != nil {
		t.Fatal(err)
	}
	if m.router.Active().Title() != "" {
		t.Errorf("expected welcome screen, got %q", m.router.Active().Title())
	}

	m = send(t, m, tea.KeyPressMsg{Code: ' ', Text: " "})
	if got := m.router.Active().Title(); got != "Home" {
		t.Errorf("expected Home after keypress, got %q", got)
	}
	if m.router.Depth() != 1 {
		t.Errorf("welcome should be replaced, depth = %d", m.router.Depth())
	}
}

func TestStartQuizAndEscapeHome(t *testing.T) {
	m, err := newAppModel(testOptions())
	if err != nil {
		t.Fatal(err)
	}

	m = send(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if got := m.router.Active().Title(); got != "Quiz" {
		t.Fatalf("expected Quiz, got %q", got)
	}

	m = send(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if got := m.router.Active().Title(); got != "Home" {
		t.Errorf("expected Home after esc, got %q", got)
	}
}

func TestEscapeAtRootIsNoop(t *testing.T) {
	m, _ := newAppModel(testOptions())
	updated, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd != nil {
		t.Error("esc at the root should not produce a command")
	}
	if updated.(AppModel).router.Depth() != 1 {
		t.Error("esc at the root should keep the home screen")
	}
}

func TestCtrlCQuits(t *testing.T) {
	m, _ := newAppModel(testOptions())
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestViewShowsQuizStatus(t *testing.T) {
	m, _ := newAppModel(testOptions())
	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	m = send(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})

	content := m.render()
	if !strings.Contains(content, "Word 1 / 19") {
		t.Error("expected progress status in header")
	}
	if !strings.Contains(content, "Check") {
		t.Error("expected quiz key hints in footer")
	}
}

func TestViewTooSmall(t *testing.T) {
	m, _ := newAppModel(testOptions())
	m = send(t, m, tea.WindowSizeMsg{Width: 30, Height: 10})
	if !strings.Contains(m.render(), "Terminal too small") {
		t.Error("expected min size message")
	}
}
