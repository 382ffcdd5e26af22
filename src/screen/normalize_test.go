package screen

import (
	"errors"
	"testing"

	"screen-topology/src/geometry"
)

func monitorsEqual(t *testing.T, got, want []Monitor) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("Expected %d monitors, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("monitor[%d]: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func same(primary bool, r geometry.Rect) Monitor {
	return NewMonitor(primary, r, r)
}

func TestFlipSingleMonitor(t *testing.T) {
	got := NormalizeWithBound([]RawMonitor{frame(0, 0, 100, 100)}, BottomLeft, 100)
	monitorsEqual(t, got, []Monitor{same(true, geometry.NewRect(0, 0, 100, 100))})
}

func TestFlipHorizontalLayoutKeepsOrder(t *testing.T) {
	got := NormalizeWithBound([]RawMonitor{
		frame(0, 0, 100, 100),
		frame(100, 0, 200, 100),
	}, BottomLeft, 100)
	monitorsEqual(t, got, []Monitor{
		same(true, geometry.NewRect(0, 0, 100, 100)),
		same(false, geometry.NewRect(100, 0, 200, 100)),
	})
}

func TestFlipVerticalStackGoesNegative(t *testing.T) {
	got := NormalizeWithBound([]RawMonitor{
		frame(0, 0, 100, 100),
		frame(0, 100, 0, 200),
	}, BottomLeft, 100)
	monitorsEqual(t, got, []Monitor{
		same(true, geometry.NewRect(0, 0, 100, 100)),
		same(false, geometry.NewRect(0, -100, 0, 0)),
	})
}

func TestNormalizeComputesBoundFirst(t *testing.T) {
	// Primary with a monitor stacked above it: the axis is the upper monitor's
	// top edge, so the primary lands below it.
	got := Normalize([]RawMonitor{
		frame(0, 0, 100, 100),
		frame(0, 100, 100, 200),
	}, BottomLeft)
	monitorsEqual(t, got, []Monitor{
		same(true, geometry.NewRect(0, 100, 100, 200)),
		same(false, geometry.NewRect(0, 0, 100, 100)),
	})
}

func TestFlipMonitorBelowPrimary(t *testing.T) {
	got := Normalize([]RawMonitor{
		frame(0, 0, 100, 100),
		frame(0, -80, 100, 0),
	}, BottomLeft)
	monitorsEqual(t, got, []Monitor{
		same(true, geometry.NewRect(0, 0, 100, 100)),
		same(false, geometry.NewRect(0, 100, 100, 180)),
	})
}

func TestFlipWorkArea(t *testing.T) {
	raw := RawMonitor{
		Frame:   geometry.NewRect(0, 0, 1440, 900),
		Work:    geometry.NewRect(0, 80, 1440, 875),
		HasWork: true,
	}
	got := Normalize([]RawMonitor{raw}, BottomLeft)
	want := NewMonitor(true, geometry.NewRect(0, 0, 1440, 900), geometry.NewRect(0, 25, 1440, 820))
	monitorsEqual(t, got, []Monitor{want})
}

func TestTopLeftIsIdentity(t *testing.T) {
	raws := []RawMonitor{
		{Frame: geometry.FromOriginSize(-1920, 0, 1920, 1080), Work: geometry.FromOriginSize(-1920, 0, 1920, 1040), HasWork: true},
		{Frame: geometry.FromOriginSize(0, 0, 2560, 1440), Primary: true},
	}
	got := Normalize(raws, TopLeft)
	monitorsEqual(t, got, []Monitor{
		NewMonitor(false, raws[0].Frame, raws[0].Work),
		NewMonitor(true, raws[1].Frame, raws[1].Frame),
	})
	for _, r := range []geometry.Rect{raws[0].Frame, raws[1].Frame} {
		if TopLeft.Rect(r, 12345) != r {
			t.Errorf("TopLeft.Rect should not change %v", r)
		}
	}
}

func TestVirtualDesktopBound(t *testing.T) {
	tests := []struct {
		name string
		raws []RawMonitor
		want float64
	}{
		{"empty", nil, 0},
		{"single", []RawMonitor{frame(0, 0, 100, 100)}, 100},
		{"stacked above", []RawMonitor{frame(0, 0, 100, 100), frame(0, 100, 100, 250)}, 250},
		{"below only", []RawMonitor{frame(0, -200, 100, -100)}, -100},
		{"failed slots ignored", []RawMonitor{frame(0, 0, 100, 100), {Frame: geometry.NewRect(0, 0, 0, 900), Err: errors.New("boom")}}, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VirtualDesktopBound(tt.raws); got != tt.want {
				t.Errorf("Expected %g, got %g", tt.want, got)
			}
		})
	}
}

func TestPrimaryElection(t *testing.T) {
	failed := errors.New("GetMonitorInfo failed")
	tests := []struct {
		name string
		raws []RawMonitor
		want int
	}{
		{"no flags picks first", []RawMonitor{frame(0, 0, 1, 1), frame(1, 0, 2, 1)}, 0},
		{"explicit flag wins", []RawMonitor{frame(0, 0, 1, 1), {Frame: geometry.NewRect(1, 0, 2, 1), Primary: true}}, 1},
		{"first of several flags", []RawMonitor{{Primary: true}, {Primary: true}}, 0},
		{"failed first slot skipped", []RawMonitor{{Err: failed}, frame(1, 0, 2, 1)}, 1},
		{"all failed", []RawMonitor{{Err: failed}, {Err: failed}}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.raws, TopLeft)
			primaries := 0
			for i, m := range got {
				if m.IsPrimary() {
					primaries++
					if i != tt.want {
						t.Errorf("Expected primary at %d, got %d", tt.want, i)
					}
				}
			}
			if primaries != 1 {
				t.Errorf("Expected exactly one primary, got %d", primaries)
			}
		})
	}
}

func TestFailedSlotBecomesZeroPlaceholder(t *testing.T) {
	got := Normalize([]RawMonitor{
		frame(0, 0, 100, 100),
		{Frame: geometry.NewRect(5, 5, 6, 6), Err: errors.New("boom")},
		frame(100, 0, 200, 100),
	}, TopLeft)
	if len(got) != 3 {
		t.Fatalf("Expected the failed slot to be kept, got %d monitors", len(got))
	}
	if got[1] != (Monitor{}) {
		t.Errorf("Expected zero placeholder, got %v", got[1])
	}
	if got[2].FullArea() != geometry.NewRect(100, 0, 200, 100) {
		t.Errorf("Later slots should keep their position, got %v", got[2])
	}
}

func TestParseConvention(t *testing.T) {
	for in, want := range map[string]Convention{"": TopLeft, "top-left": TopLeft, "Bottom-Left": BottomLeft} {
		got, err := ParseConvention(in)
		if err != nil || got != want {
			t.Errorf("ParseConvention(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseConvention("diagonal"); err == nil {
		t.Error("Expected error for unknown convention")
	}
}

func TestParsePointerFlip(t *testing.T) {
	if f, err := ParsePointerFlip(""); err != nil || f != FlipFromMonitor {
		t.Errorf("Expected default monitor flip, got %v, %v", f, err)
	}
	if f, err := ParsePointerFlip("desktop"); err != nil || f != FlipFromDesktop {
		t.Errorf("Expected desktop flip, got %v, %v", f, err)
	}
	if _, err := ParsePointerFlip("sideways"); err == nil {
		t.Error("Expected error for unknown mode")
	}
}
