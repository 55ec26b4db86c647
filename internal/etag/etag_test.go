package etag

import (
	"math"
	"testing"

	"github.com/dmitrijs2005/fuelcost/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	assert.Equal(t, `W/"5"`, Of(5).String())
	assert.Equal(t, `W/"0"`, Format(0))
}

func TestParse_Ok(t *testing.T) {
	e, err := Parse(`W/"5"`)
	require.NoError(t, err)
	assert.Equal(t, int64(5), e.Version())
}

func TestParse_RoundTrip(t *testing.T) {
	for _, v := range []int64{0, 1, 2, 99, 1 << 40, math.MaxInt64} {
		e, err := Parse(Format(v))
		require.NoError(t, err)
		assert.Equal(t, v, e.Version())
	}
}

func TestParse_Fail(t *testing.T) {
	bad := []string{
		``,
		`W/"abc"`,
		`"5"`,
		`W/5`,
		`w/"5"`,
		`W/"-1"`,
		`W/"5" `,
		` W/"5"`,
		`W/""`,
		`W/"99999999999999999999"`,
		`W/"５"`,
	}
	for _, s := range bad {
		_, err := Parse(s)
		assert.ErrorIs(t, err, common.ErrInvalidArgument, s)
	}
}

func TestParseOptional(t *testing.T) {
	_, ok, err := ParseOptional("")
	require.NoError(t, err)
	assert.False(t, ok)

	e, ok, err := ParseOptional(`W/"7"`)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, Of(7), e)

	_, _, err = ParseOptional(`W/"abc"`)
	assert.ErrorIs(t, err, common.ErrInvalidArgument)
}

func TestParseOptionalVersion(t *testing.T) {
	v, err := ParseOptionalVersion(`W/"5"`)
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, int64(5), *v)

	v, err = ParseOptionalVersion("")
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = ParseOptionalVersion(`W/"abc"`)
	assert.ErrorIs(t, err, common.ErrInvalidArgument)
}

func TestTryParseVersion(t *testing.T) {
	v := TryParseVersion(`W/"5"`)
	require.NotNil(t, v)
	assert.Equal(t, int64(5), *v)

	assert.Nil(t, TryParseVersion(""))

	v = TryParseVersion(`W/"abc"`)
	require.NotNil(t, v)
	assert.Equal(t, InvalidVersion, *v)
}

func TestIncrement(t *testing.T) {
	e := Of(1)
	assert.Equal(t, Of(2), e.Increment())
	assert.Equal(t, int64(1), e.Version())
}
