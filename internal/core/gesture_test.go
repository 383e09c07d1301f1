package core

import "testing"

func TestClassifySwipe(t *testing.T) {
	tests := []struct {
		name           string
		sx, sy, ex, ey int
		want           Action
		ok             bool
	}{
		{"left swipe", 100, 50, 40, 55, ActionLeft, true},
		{"right swipe", 40, 50, 100, 45, ActionRight, true},
		{"up swipe", 50, 100, 55, 20, ActionUp, true},
		{"down swipe", 50, 20, 45, 100, ActionDown, true},
		{"below threshold", 50, 50, 25, 50, ActionNone, false},
		{"exactly threshold", 50, 50, 20, 50, ActionNone, false},
		{"diagonal picks dominant axis", 0, 0, 80, -40, ActionRight, true},
		{"tie goes to vertical axis", 0, 0, 40, 40, ActionDown, true},
		{"no movement", 10, 10, 10, 10, ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ClassifySwipe(tc.sx, tc.sy, tc.ex, tc.ey, 30)
			if got != tc.want || ok != tc.ok {
				t.Errorf("ClassifySwipe(%d,%d -> %d,%d) = (%v, %v), want (%v, %v)",
					tc.sx, tc.sy, tc.ex, tc.ey, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestActionString(t *testing.T) {
	if ActionLeft.String() != "Left" || ActionRestart.String() != "Restart" {
		t.Errorf("unexpected action names %q %q", ActionLeft, ActionRestart)
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q, want Unknown", Action(99))
	}
}
