package ui

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mbwilding/steam-achievement-manager/internal/testutil"
)

func TestBrowseNavigationKeys(t *testing.T) {
	h, _ := newTestHarness(t, 440, nil)
	cursor := func() int { return h.Model().List().Cursor }

	h.Press("k")
	if cursor() != 4 {
		t.Fatalf("expected wrap to 4, got %d", cursor())
	}
	h.Press("down")
	if cursor() != 0 {
		t.Fatalf("expected wrap to 0, got %d", cursor())
	}
	h.Press("G")
	if cursor() != 4 {
		t.Fatalf("expected bottom, got %d", cursor())
	}
	h.Press("g")
	if cursor() != 0 {
		t.Fatalf("expected top, got %d", cursor())
	}
	h.Press("pgdown")
	if cursor() != 4 {
		t.Fatalf("expected page down to clamp at 4, got %d", cursor())
	}
	h.Press("ctrl+p")
	if cursor() != 0 {
		t.Fatalf("expected page up to clamp at 0, got %d", cursor())
	}
	h.Press("ctrl+n")
	if cursor() != 4 {
		t.Fatalf("expected ctrl+n to page down, got %d", cursor())
	}
	h.Press("up", "pgup")
	if cursor() != 0 {
		t.Fatalf("expected pgup to reach 0, got %d", cursor())
	}
}

func TestSelectionKeys(t *testing.T) {
	h, _ := newTestHarness(t, 440, nil)
	items := func() []bool {
		out := []bool{}
		for _, item := range h.Model().List().Items {
			out = append(out, item.Selected)
		}
		return out
	}
	h.Press("a")
	for i, sel := range items() {
		if !sel {
			t.Fatalf("expected item %d selected", i)
		}
	}
	h.Press("d")
	for i, sel := range items() {
		if sel {
			t.Fatalf("expected item %d deselected", i)
		}
	}
	h.Press(" ")
	if !items()[0] {
		t.Fatalf("expected space to toggle the current item")
	}
}

func TestViewportFollowsCursor(t *testing.T) {
	fake := testutil.NewFakeCatalog()
	n := 40
	names := make([]string, n)
	unlocked := make([]bool, n)
	pcts := make([]float32, n)
	for i := range names {
		names[i] = fmt.Sprintf("Achievement %02d", i)
		pcts[i] = float32(n - i)
	}
	fake.AddApp(1, names, unlocked, pcts)
	h := NewHarness(NewModel(Options{AppID: 1, Catalog: fake}))
	h.Send(tea.WindowSizeMsg{Width: 60, Height: 12})

	view := h.View()
	if lines := strings.Split(view, "\n"); len(lines) != 12 {
		t.Fatalf("expected 12 lines, got %d:\n%s", len(lines), view)
	}
	if strings.Contains(view, "Achievement 39") {
		t.Fatalf("expected last row off screen initially")
	}
	h.Press("G")
	view = h.View()
	if !strings.Contains(view, "▌") || !strings.Contains(view, "Achievement 39") {
		t.Fatalf("expected cursor row visible after G, got:\n%s", view)
	}
	if strings.Contains(view, "Achievement 00") {
		t.Fatalf("expected first row scrolled away, got:\n%s", view)
	}
}

func TestHelpToggle(t *testing.T) {
	h, _ := newTestHarness(t, 440, nil)
	if strings.Contains(h.View(), "sort by name") {
		t.Fatalf("expected short help by default")
	}
	h.Press("?")
	if !strings.Contains(h.View(), "sort by name") {
		t.Fatalf("expected full help after ?, got:\n%s", h.View())
	}
}
