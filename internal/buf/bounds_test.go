package buf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddOverflowSafe(t *testing.T) {
	sum, ok := AddOverflowSafe(10, 5)
	assert.True(t, ok)
	assert.Equal(t, 15, sum)

	_, ok = AddOverflowSafe(math.MaxInt, 1)
	assert.False(t, ok, "overflow past MaxInt")
	_, ok = AddOverflowSafe(math.MinInt, -1)
	assert.False(t, ok, "underflow past MinInt")
}

func TestSliceAndHas(t *testing.T) {
	stream := []byte{0x30, 0x04, 0x00, 0x00, 0x03}

	run, ok := Slice(stream, 1, 3)
	assert.True(t, ok)
	assert.Equal(t, []byte{0x04, 0x00, 0x00}, run)

	tests := []struct {
		name   string
		off, n int
		want   bool
	}{
		{"whole stream", 0, 5, true},
		{"empty at end", 5, 0, true},
		{"past the end", 4, 2, false},
		{"offset past the end", 6, 0, false},
		{"negative offset", -1, 1, false},
		{"negative length", 1, -1, false},
		{"overflowing length", 1, math.MaxInt, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := Slice(stream, tt.off, tt.n)
			assert.Equal(t, tt.want, ok)
			assert.Equal(t, tt.want, Has(stream, tt.off, tt.n))
		})
	}
}
