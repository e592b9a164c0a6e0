package paging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStepSize(t *testing.T) {
	tests := []struct {
		current, delta, want int
	}{
		{10, 1, 12},
		{12, 1, 25},
		{100, 1, 100},
		{5, -1, 5},
		{25, -1, 12},
		{10, 2, 25},
		{20, 1, 25},  // snaps up
		{20, -1, 12}, // snaps down
		{500, 1, 100},
		{1, -1, 5},
		{20, 0, 20},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, StepSize(tt.current, tt.delta), "StepSize(%d, %d)", tt.current, tt.delta)
	}
}
