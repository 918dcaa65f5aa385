package pitch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDimensionValidate(t *testing.T) {
	tests := []struct {
		name    string
		dim     Dimension
		wantErr bool
	}{
		{name: "normal", dim: Dimension{Min: 0, Max: 100}},
		{name: "negative range", dim: Dimension{Min: -52.5, Max: 52.5}},
		{name: "min equals max", dim: Dimension{Min: 5, Max: 5}, wantErr: true},
		{name: "min above max", dim: Dimension{Min: 10, Max: 0}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.dim.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrDegenerateDimensions)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDimensionReflect(t *testing.T) {
	d := Dimension{Min: 0, Max: 120}

	assert.Equal(t, 110.0, d.Reflect(10))
	assert.Equal(t, 60.0, d.Reflect(60))
	assert.Equal(t, 120.0, d.Reflect(0))

	// reflecting twice is the identity
	assert.Equal(t, 10.0, d.Reflect(d.Reflect(10)))
}

func TestDimensionRescale(t *testing.T) {
	tests := []struct {
		name string
		from Dimension
		to   Dimension
		in   float64
		want float64
	}{
		{name: "to unit interval", from: Dimension{0, 120}, to: Dimension{0, 1}, in: 60, want: 0.5},
		{name: "identity", from: Dimension{0, 100}, to: Dimension{0, 100}, in: 37, want: 37},
		{name: "centered target", from: Dimension{0, 100}, to: Dimension{-52.5, 52.5}, in: 0, want: -52.5},
		{name: "below range extrapolates", from: Dimension{0, 10}, to: Dimension{0, 100}, in: -1, want: -10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.from.Rescale(tt.in, tt.to), 1e-9)
		})
	}
}

func TestNewPitchDimensions(t *testing.T) {
	pd, err := NewPitchDimensions(Dimension{0, 120}, Dimension{0, 80})
	require.NoError(t, err)
	assert.Equal(t, 120.0, pd.X.Width())
	assert.Equal(t, 80.0, pd.Y.Width())

	_, err = NewPitchDimensions(Dimension{0, 0}, Dimension{0, 80})
	assert.ErrorIs(t, err, ErrDegenerateDimensions)
}

func TestPitchDimensionsContains(t *testing.T) {
	pd, err := NewPitchDimensions(Dimension{0, 1}, Dimension{0, 1})
	require.NoError(t, err)

	assert.True(t, pd.Contains(Point{X: 0.5, Y: 0.5}))
	assert.True(t, pd.Contains(Point{X: 0, Y: 1}))
	assert.False(t, pd.Contains(Point{X: 1.5, Y: 0.5}))
}

func TestPitchDimensionsEnvelope(t *testing.T) {
	pd, err := NewPitchDimensions(Dimension{0, 120}, Dimension{0, 80})
	require.NoError(t, err)

	env := pd.Envelope()
	mn, ok := env.Min().XY()
	require.True(t, ok)
	mx, ok := env.Max().XY()
	require.True(t, ok)
	assert.Equal(t, 0.0, mn.X)
	assert.Equal(t, 0.0, mn.Y)
	assert.Equal(t, 120.0, mx.X)
	assert.Equal(t, 80.0, mx.Y)
}
