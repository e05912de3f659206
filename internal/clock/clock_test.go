package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFakeClock(t *testing.T) {
	start := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	c := Fake(start)

	assert.Equal(t, start, c.Now())

	c.Advance(90 * time.Minute)
	assert.Equal(t, start.Add(90*time.Minute), c.Now())

	other := time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC)
	c.Set(other)
	assert.Equal(t, other, c.Now())
}

func TestRealClockIsUTC(t *testing.T) {
	assert.Equal(t, time.UTC, Real().Now().Location())
}
