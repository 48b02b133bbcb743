package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProduct_ActiveAt(t *testing.T) {
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	p := &Product{StartDate: start, Duration: 7}

	end := start.AddDate(0, 0, 7)
	assert.Equal(t, end, p.EndDate())

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"before the window", start.Add(-time.Second), false},
		{"at start, inclusive", start, true},
		{"mid window", start.AddDate(0, 0, 3), true},
		{"at end, inclusive", end, true},
		{"after the window", end.Add(time.Second), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.ActiveAt(tt.at))
		})
	}
}
