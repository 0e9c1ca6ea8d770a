package entity

import "testing"

func TestSessionProgress(t *testing.T) {
	tests := []struct {
		name      string
		completed int
		total     int
		want      float64
	}{
		{name: "zero total", completed: 0, total: 0, want: 0},
		{name: "half done", completed: 2, total: 4, want: 0.5},
		{name: "complete", completed: 3, total: 3, want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Session{CompletedUnits: tt.completed, TotalUnits: tt.total}
			if got := s.Progress(); got != tt.want {
				t.Errorf("Progress() = %v, want %v", got, tt.want)
			}
		})
	}
}
