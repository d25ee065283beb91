package view

import (
	"strings"
	"testing"

	"github.com/Iron-Ham/mobilepane/internal/pane"
	"github.com/charmbracelet/lipgloss"
)

func TestPaneViews_Identity(t *testing.T) {
	tests := []struct {
		name string
		view PaneView
		want pane.Pane
	}{
		{"home", NewHomePane(15), pane.Home},
		{"navigation", NewNavigationPane(15), pane.Navigation},
		{"settings", NewSettingsPane(15, nil), pane.Settings},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.view.Pane(); got != tt.want {
				t.Errorf("Pane() = %q, want %q", got, tt.want)
			}
			if got := tt.view.ImageWidth(); got != 15 {
				t.Errorf("ImageWidth() = %d, want 15", got)
			}
			if out := tt.view.Render(20); !strings.Contains(out, tt.want.Title()) {
				t.Errorf("Render() should contain title %q, got:\n%s", tt.want.Title(), out)
			}
		})
	}
}

func TestEffectiveImageWidth(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{-25, MinImageWidth},
		{0, MinImageWidth},
		{MinImageWidth - 1, MinImageWidth},
		{MinImageWidth, MinImageWidth},
		{35, 35},
	}

	for _, tt := range tests {
		if got := EffectiveImageWidth(tt.in); got != tt.want {
			t.Errorf("EffectiveImageWidth(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestImageHeight(t *testing.T) {
	tests := []struct {
		paneHeight int
		want       int
	}{
		{0, MinImageHeight},
		{8, MinImageHeight},
		{12, 6},
		{100, MaxImageHeight},
	}

	for _, tt := range tests {
		if got := imageHeight(tt.paneHeight); got != tt.want {
			t.Errorf("imageHeight(%d) = %d, want %d", tt.paneHeight, got, tt.want)
		}
	}
}

func TestHomePane_Render(t *testing.T) {
	v := NewHomePane(20)
	out := v.Render(20)

	for _, want := range []string{"first person", "scene map"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in home pane, got:\n%s", want, out)
		}
	}

	// Two frames of imageWidth plus borders and the gap between them
	wantWidth := 2*(20+2) + imageGap
	if got := lipgloss.Width(out); got != wantWidth {
		t.Errorf("home pane width = %d, want %d", got, wantWidth)
	}
}

func TestHomePane_RenderNarrow(t *testing.T) {
	// Negative widths come from terminals narrower than 50 columns
	v := NewHomePane(-5)
	out := v.Render(10)

	if v.ImageWidth() != -5 {
		t.Errorf("ImageWidth() = %d, want the stored -5", v.ImageWidth())
	}
	wantWidth := 2*(MinImageWidth+2) + imageGap
	if got := lipgloss.Width(out); got != wantWidth {
		t.Errorf("narrow home pane width = %d, want %d", got, wantWidth)
	}
}

func TestNavigationPane_Render(t *testing.T) {
	out := NewNavigationPane(15).Render(20)

	for _, want := range []string{"first person", "▲", "▼", "◀", "▶"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in navigation pane, got:\n%s", want, out)
		}
	}
}

func TestSettingsPane_Render(t *testing.T) {
	settings := []Setting{
		{Key: "viewport width", Value: "100"},
		{Key: "image width", Value: "25"},
		{Key: "log level", Value: "info"},
	}

	t.Run("lists every setting", func(t *testing.T) {
		out := NewSettingsPane(25, settings).Render(20)
		for _, s := range settings {
			if !strings.Contains(out, s.Key) || !strings.Contains(out, s.Value) {
				t.Errorf("expected %q = %q in output, got:\n%s", s.Key, s.Value, out)
			}
		}
	})

	t.Run("limits rows to height", func(t *testing.T) {
		out := NewSettingsPane(25, settings).Render(paneChromeLines + 1)
		if !strings.Contains(out, "viewport width") {
			t.Errorf("expected first row, got:\n%s", out)
		}
		if strings.Contains(out, "log level") {
			t.Errorf("expected rows past the height to be dropped, got:\n%s", out)
		}
	})

	t.Run("no rows when only the chrome fits", func(t *testing.T) {
		for _, height := range []int{paneChromeLines, 2, 0} {
			out := NewSettingsPane(25, settings).Render(height)
			for _, s := range settings {
				if strings.Contains(out, s.Key) {
					t.Errorf("Render(%d) should drop every row, got:\n%s", height, out)
				}
			}
			if !strings.Contains(out, "Settings") {
				t.Errorf("Render(%d) should keep the title, got:\n%s", height, out)
			}
		}
	})

	t.Run("truncates long values", func(t *testing.T) {
		long := []Setting{{Key: "config", Value: strings.Repeat("x", 80)}}
		out := NewSettingsPane(10, long).Render(20)
		if strings.Contains(out, strings.Repeat("x", 11)) {
			t.Errorf("expected value truncated to image width, got:\n%s", out)
		}
		if !strings.Contains(out, "...") {
			t.Errorf("expected truncation marker, got:\n%s", out)
		}
	})

	t.Run("empty", func(t *testing.T) {
		out := NewSettingsPane(10, nil).Render(20)
		if !strings.Contains(out, "Settings") {
			t.Errorf("expected title with no settings, got:\n%s", out)
		}
	})
}
