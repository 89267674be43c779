package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateTime(t *testing.T) {
	ts := time.Date(2024, 3, 7, 9, 5, 0, 0, time.Local)
	assert.Equal(t, "7/3/24, 9:05", DateTime(ts))

	ts = time.Date(2023, 12, 25, 23, 59, 0, 0, time.Local)
	assert.Equal(t, "25/12/23, 23:59", DateTime(ts))
}

func TestDate(t *testing.T) {
	ts := time.Date(2024, 3, 7, 9, 5, 0, 0, time.Local)
	assert.Equal(t, "7/3/24", Date(ts))
}

func TestRelTime(t *testing.T) {
	now := time.Now()

	assert.Equal(t, "just now", Time(now))
	assert.Equal(t, "5m ago", Time(now.Add(-5*time.Minute)))
	assert.Equal(t, "3h ago", Time(now.Add(-3*time.Hour)))
	assert.Equal(t, "1d ago", Time(now.Add(-25*time.Hour)))
	assert.Equal(t, "2w ago", Time(now.Add(-15*24*time.Hour)))

	// beyond a month it falls back to the full date
	old := now.Add(-60 * 24 * time.Hour)
	assert.Equal(t, old.Local().Format("Jan 2 2006"), Time(old))
}
