package money

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{888.4878867, 888.49},
		{1000, 1000},
		{0.005, 0.01},
		{2.675, 2.68},
		{-1.005, -1.01},
		{0, 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Round2(c.in), "Round2(%v)", c.in)
	}
}

func TestAddSub_AreExactForCents(t *testing.T) {
	assert.Equal(t, 0.3, Add(0.1, 0.2))
	assert.Equal(t, 0.1, Sub(0.3, 0.2))
	assert.Equal(t, 1000.0, Add(Sub(1000, 0.07), 0.07))
	assert.Equal(t, 0.6, Sum(0.1, 0.2, 0.3))
	assert.Equal(t, 0.0, Sum())
}

func TestGuards(t *testing.T) {
	assert.True(t, Positive(0.01))
	assert.False(t, Positive(0))
	assert.False(t, Positive(-5))

	assert.True(t, NonNegative(0))
	assert.False(t, NonNegative(-0.01))

	assert.True(t, InRange(MaxAmount))
	assert.True(t, InRange(-MaxAmount))
	assert.False(t, InRange(MaxAmount+1))
	assert.False(t, InRange(1e308))
	assert.False(t, InRange(math.Inf(1)))
	assert.False(t, InRange(math.NaN()))

	assert.True(t, HasCents(12.34))
	assert.True(t, HasCents(100))
	assert.False(t, HasCents(1.234))
}
