package loan

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestDefaultConfiguration_IsValid(t *testing.T) {
	require.NoError(t, DefaultConfiguration().Validate())
}

func TestCheckApplication(t *testing.T) {
	c := DefaultConfiguration()

	rate, err := c.CheckApplication(5000, 12, nil)
	require.NoError(t, err)
	assert.Equal(t, 7.5, rate)

	rate, err = c.CheckApplication(100, 1, ptr(1.0))
	require.NoError(t, err)
	assert.Equal(t, 1.0, rate)

	rate, err = c.CheckApplication(1_000_000, 360, ptr(25.0))
	require.NoError(t, err)
	assert.Equal(t, 25.0, rate)

	_, err = c.CheckApplication(99.99, 12, nil)
	assert.ErrorIs(t, err, ErrAmountOutOfRange)
	_, err = c.CheckApplication(1_000_000.01, 12, nil)
	assert.ErrorIs(t, err, ErrAmountOutOfRange)
	_, err = c.CheckApplication(5000, 0, nil)
	assert.ErrorIs(t, err, ErrTermOutOfRange)
	_, err = c.CheckApplication(5000, 361, nil)
	assert.ErrorIs(t, err, ErrTermOutOfRange)
	_, err = c.CheckApplication(5000, 12, ptr(0.0))
	assert.ErrorIs(t, err, ErrRateOutOfRange)
	_, err = c.CheckApplication(5000, 12, ptr(25.5))
	assert.ErrorIs(t, err, ErrRateOutOfRange)
}

func TestCheckApplication_AmountCheckedFirst(t *testing.T) {
	_, err := DefaultConfiguration().CheckApplication(1, 0, ptr(99.0))
	assert.ErrorIs(t, err, ErrAmountOutOfRange)
}

func TestConfigStore_PartialUpdate(t *testing.T) {
	s := NewConfigStore(DefaultConfiguration())

	got, err := s.Update(ConfigUpdate{MaxInterestRate: ptr(30.0), MaxTermMonths: ptr(480)})
	require.NoError(t, err)

	want := DefaultConfiguration()
	want.MaxInterestRate = 30
	want.MaxTermMonths = 480
	assert.Equal(t, want, got)
	assert.Equal(t, want, s.Get())
}

func TestConfigStore_RejectsInconsistentUpdate(t *testing.T) {
	s := NewConfigStore(DefaultConfiguration())

	for name, u := range map[string]ConfigUpdate{
		"min rate above max":    {MinInterestRate: ptr(26.0)},
		"default outside range": {DefaultInterestRate: ptr(0.5)},
		"min amount above max":  {MinLoanAmount: ptr(2_000_000.0)},
		"max amount too large":  {MaxLoanAmount: ptr(1e308)},
		"zero min term":         {MinTermMonths: ptr(0)},
	} {
		_, err := s.Update(u)
		assert.ErrorIs(t, err, ErrInvalidConfig, name)
	}
	assert.Equal(t, DefaultConfiguration(), s.Get())
}

func TestConfigStore_GetReturnsCopy(t *testing.T) {
	s := NewConfigStore(DefaultConfiguration())
	c := s.Get()
	c.MaxLoanAmount = 1
	assert.Equal(t, 1_000_000.0, s.Get().MaxLoanAmount)
}

func TestConfigStore_ConcurrentAccess(t *testing.T) {
	s := NewConfigStore(DefaultConfiguration())
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_, _ = s.Update(ConfigUpdate{MaxTermMonths: ptr(360 + i)})
		}(i)
		go func() {
			defer wg.Done()
			_ = s.Get()
		}()
	}
	wg.Wait()
	assert.GreaterOrEqual(t, s.Get().MaxTermMonths, 360)
}
