package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestLeaveOverlaps(t *testing.T) {
	existing := Leave{FromDate: day("2026-03-10"), ToDate: day("2026-03-14")}

	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{"contained", "2026-03-11", "2026-03-12", true},
		{"covering", "2026-03-01", "2026-03-31", true},
		{"partial front", "2026-03-08", "2026-03-10", true},
		{"partial back", "2026-03-14", "2026-03-20", true},
		{"shared single day", "2026-03-14", "2026-03-14", true},
		{"identical", "2026-03-10", "2026-03-14", true},
		{"before", "2026-03-01", "2026-03-09", false},
		{"after", "2026-03-15", "2026-03-20", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, existing.Overlaps(day(tt.from), day(tt.to)))
		})
	}
}
