package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoise_RangeAndDeterminism(t *testing.T) {
	a := NewNoise(42)
	b := NewNoise(42)
	assert.Equal(t, int64(42), a.Seed())

	for x := 0; x < 20; x++ {
		for y := 0; y < 20; y++ {
			fx, fy := float64(x)*0.13, float64(y)*0.17
			v := a.Noise2D(fx, fy)
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 1.0)
			assert.Equal(t, v, b.Noise2D(fx, fy), "одинаковый сид даёт одинаковый шум")
		}
	}
}

func TestNoise_SeedsDiffer(t *testing.T) {
	a, b := NewNoise(1), NewNoise(2)

	differ := false
	for x := 0; x < 10 && !differ; x++ {
		differ = a.Noise2D(float64(x)*0.3+0.1, 0.7) != b.Noise2D(float64(x)*0.3+0.1, 0.7)
	}
	assert.True(t, differ)
}
