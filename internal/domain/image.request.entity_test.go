package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSizeToPixels_TableDriven(t *testing.T) {
	tests := []struct {
		name   string
		size   Size
		scale  float64
		expect PixelSize
	}{
		{name: "rounds up", size: Size{Width: 10.2, Height: 20}, scale: 1, expect: PixelSize{Width: 11, Height: 20}},
		{name: "applies scale", size: Size{Width: 50, Height: 40}, scale: 2, expect: PixelSize{Width: 100, Height: 80}},
		{name: "non positive scale is one", size: Size{Width: 5, Height: 6}, scale: 0, expect: PixelSize{Width: 5, Height: 6}},
		{name: "nan scale is one", size: Size{Width: 5, Height: 6}, scale: math.NaN(), expect: PixelSize{Width: 5, Height: 6}},
		{name: "infinite scale is one", size: Size{Width: 5, Height: 6}, scale: math.Inf(1), expect: PixelSize{Width: 5, Height: 6}},
		{name: "nan width", size: Size{Width: math.NaN(), Height: 6}, scale: 1, expect: PixelSize{Width: 0, Height: 6}},
		{name: "infinite height", size: Size{Width: 5, Height: math.Inf(1)}, scale: 1, expect: PixelSize{Width: 5, Height: 0}},
		{name: "huge width", size: Size{Width: 1e300, Height: 6}, scale: 1, expect: PixelSize{Width: 0, Height: 6}},
		{name: "beyond int32", size: Size{Width: 3e18, Height: 6}, scale: 1, expect: PixelSize{Width: 0, Height: 6}},
		{name: "negative height", size: Size{Width: 5, Height: -1}, scale: 1, expect: PixelSize{Width: 5, Height: 0}},
		{name: "largest dimension", size: Size{Width: MaxPixelDimension, Height: 1}, scale: 1, expect: PixelSize{Width: MaxPixelDimension, Height: 1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.size.ToPixels(tc.scale)
			assert.Equal(t, tc.expect, got)
			assert.Equal(t, tc.expect.Width <= 0 || tc.expect.Height <= 0, got.IsZero())
		})
	}
}
