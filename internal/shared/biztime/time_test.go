package biztime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonotonic_FrozenClock(t *testing.T) {
	frozen := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	m := NewMonotonic(func() time.Time { return frozen })

	first := m.Now()
	second := m.Now()
	third := m.Now()

	assert.Equal(t, frozen, first)
	assert.True(t, second.After(first))
	assert.True(t, third.After(second))
}

func TestMonotonic_ClockStepsBack(t *testing.T) {
	times := []time.Time{
		time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		time.Date(2024, 5, 1, 11, 0, 0, 0, time.UTC),
	}
	i := 0
	m := NewMonotonic(func() time.Time {
		v := times[i]
		i++
		return v
	})

	first := m.Now()
	assert.True(t, m.Now().After(first))
}

func TestAfter(t *testing.T) {
	prev := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	same := After(prev, func() time.Time { return prev })
	assert.True(t, same.After(prev))

	later := prev.Add(time.Hour)
	assert.Equal(t, later, After(prev, func() time.Time { return later }))
}

func TestNowUTC(t *testing.T) {
	assert.Equal(t, time.UTC, NowUTC().Location())
}
