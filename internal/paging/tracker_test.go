package paging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrackerLatestTokenWins(t *testing.T) {
	var tr Tracker

	first := tr.Issue()
	second := tr.Issue()

	assert.True(t, second > first)
	assert.False(t, tr.IsCurrent(first))
	assert.True(t, tr.IsCurrent(second))
	assert.Equal(t, second, tr.Latest())
}

func TestTrackerZeroTokenNeverCurrent(t *testing.T) {
	var tr Tracker
	assert.False(t, tr.IsCurrent(0))
	assert.Equal(t, Token(0), tr.Latest())
}
