package utils

import (
	"reflect"
	"testing"
)

func TestGenerateTimeGrid(t *testing.T) {
	tests := []struct {
		name      string
		open      int
		close     int
		step      int
		wantFirst string
		wantLast  string
		wantLen   int
	}{
		{"standard clinic day", 9, 17, 30, "09:00", "16:30", 16},
		{"hourly", 9, 12, 60, "09:00", "11:00", 3},
		{"single slot", 9, 10, 60, "09:00", "09:00", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := GenerateTimeGrid(tt.open, tt.close, tt.step)
			if len(grid) != tt.wantLen {
				t.Fatalf("len = %d, want %d", len(grid), tt.wantLen)
			}
			if grid[0] != tt.wantFirst {
				t.Errorf("first = %q, want %q", grid[0], tt.wantFirst)
			}
			if grid[len(grid)-1] != tt.wantLast {
				t.Errorf("last = %q, want %q", grid[len(grid)-1], tt.wantLast)
			}
		})
	}
}

func TestGenerateTimeGridDegenerateInputs(t *testing.T) {
	if got := GenerateTimeGrid(17, 9, 30); got != nil {
		t.Errorf("inverted hours: got %v, want nil", got)
	}
	if got := GenerateTimeGrid(9, 17, 0); got != nil {
		t.Errorf("zero step: got %v, want nil", got)
	}
}

func TestGenerateTimeGridZeroPadding(t *testing.T) {
	want := []string{"08:00", "08:45", "09:30"}
	got := GenerateTimeGrid(8, 10, 45)
	// 09:30 + 45 would be 10:15, past close.
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
