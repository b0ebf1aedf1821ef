package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthWindowUTC(t *testing.T) {
	tests := []struct {
		name      string
		now       time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "mid month",
			now:       time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC),
			wantStart: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, time.March, 31, 23, 59, 59, 0, time.UTC),
		},
		{
			name:      "leap february",
			now:       time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
			wantStart: time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, time.February, 29, 23, 59, 59, 0, time.UTC),
		},
		{
			name:      "december rolls into next year",
			now:       time.Date(2023, time.December, 31, 23, 59, 59, 0, time.UTC),
			wantStart: time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2023, time.December, 31, 23, 59, 59, 0, time.UTC),
		},
		{
			name:      "non utc clock pinned to utc",
			now:       time.Date(2024, time.July, 1, 3, 0, 0, 0, time.FixedZone("UTC+5", 5*60*60)),
			wantStart: time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, time.June, 30, 23, 59, 59, 0, time.UTC),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			start, end := monthWindowUTC(test.now)
			assert.True(t, start.Equal(test.wantStart), "start: got %v want %v", start, test.wantStart)
			assert.True(t, end.Equal(test.wantEnd), "end: got %v want %v", end, test.wantEnd)
		})
	}
}
