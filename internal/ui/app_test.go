package ui

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/kpumuk/quickplt/internal/timeaxis"
)

func testConfig() Config {
	base := time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC)
	return Config{
		Title:  "data.txt",
		XLabel: "time",
		YLabel: "RH (m)",
		Layers: []Layer{
			{
				Name: "data.txt",
				Series: timeaxis.Series{
					Mode:  timeaxis.ModifiedJulianDate,
					Times: []time.Time{base, base.AddDate(0, 0, 5), base.AddDate(0, 0, 10)},
					Y:     []float64{2.1, 2.3, 2.2},
				},
			},
			{
				Name: "other.txt",
				Series: timeaxis.Series{
					Mode:  timeaxis.ModifiedJulianDate,
					Times: []time.Time{base.AddDate(0, 0, 2)},
					Y:     []float64{2.25},
				},
				Secondary: true,
			},
		},
	}
}

func TestAppQuitKeys(t *testing.T) {
	t.Parallel()

	for _, msg := range []tea.KeyPressMsg{
		tea.KeyPressMsg(tea.Key{Text: "q", Code: 'q'}),
		tea.KeyPressMsg(tea.Key{Code: tea.KeyEscape}),
	} {
		_, cmd := New(testConfig()).Update(msg)
		if cmd == nil {
			t.Fatalf("key %q: expected quit command", msg.String())
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("key %q: expected tea.QuitMsg", msg.String())
		}
	}
}

func TestAppIgnoresOtherKeys(t *testing.T) {
	t.Parallel()

	_, cmd := New(testConfig()).Update(tea.KeyPressMsg(tea.Key{Text: "x", Code: 'x'}))
	if cmd != nil {
		t.Fatal("expected no command for unbound key")
	}
}

func TestAppViewBeforeResize(t *testing.T) {
	t.Parallel()

	app := New(testConfig())
	if app.ready {
		t.Fatal("app must not be ready before the first resize")
	}
	if !app.View().AltScreen {
		t.Fatal("preview must use the alternate screen")
	}
}

func TestAppRenderFitsWindow(t *testing.T) {
	t.Parallel()

	model, _ := New(testConfig()).Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	app := model.(App)

	view := app.render()
	lines := strings.Split(view, "\n")
	if len(lines) != 20 {
		t.Fatalf("rendered %d lines, want 20", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w > 60 {
			t.Fatalf("line %d is %d cells wide, want <= 60", i, w)
		}
	}

	plain := ansi.Strip(view)
	for _, want := range []string{"data.txt", "mjd", "x: time", "y: RH (m)", "quit", "other.txt"} {
		if !strings.Contains(plain, want) {
			t.Fatalf("render missing %q:\n%s", want, plain)
		}
	}
}

func TestAppEmptyLayers(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Layers = []Layer{{Name: "none", Series: timeaxis.Series{Mode: timeaxis.Raw}}}
	model, _ := New(cfg).Update(tea.WindowSizeMsg{Width: 40, Height: 12})

	plain := ansi.Strip(model.(App).render())
	if !strings.Contains(plain, "No points to plot") {
		t.Fatalf("expected empty message:\n%s", plain)
	}
}
