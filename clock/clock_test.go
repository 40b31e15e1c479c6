package clock

import (
	"math"
	"testing"

	"github.com/matryer/is"
)

func TestSubtractSaturates(t *testing.T) {
	is := is.New(t)
	c := New(1000)
	is.Equal(c.RemainingMs(), uint32(1000))

	c.Subtract(400)
	is.Equal(c.RemainingMs(), uint32(600))
	is.True(!c.Expired())

	c.Subtract(math.MaxUint32)
	is.Equal(c.RemainingMs(), uint32(0))
	is.True(c.Expired())

	c.Subtract(1)
	is.Equal(c.RemainingMs(), uint32(0))
}

func TestReset(t *testing.T) {
	is := is.New(t)
	c := New(250)
	c.Subtract(250)
	is.True(c.Expired())
	c.Reset()
	is.Equal(c.RemainingMs(), uint32(250))
	is.Equal(c.MaxMs(), uint32(250))
}

func TestZeroClock(t *testing.T) {
	is := is.New(t)
	c := New(0)
	is.True(c.Expired())
	c.Reset()
	is.True(c.Expired())
}
