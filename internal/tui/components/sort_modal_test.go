package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortModalChooseField(t *testing.T) {
	m := NewSortModal()
	m.Show(ArtworkSortOptions(), SortSelection{Field: SortDefault})

	handled, sel := m.HandleKey("j")
	assert.True(t, handled)
	assert.Nil(t, sel)

	_, sel = m.HandleKey("enter")
	require.NotNil(t, sel)
	assert.Equal(t, SortTitle, sel.Field)
	assert.Equal(t, SortAsc, sel.Direction)
	assert.False(t, m.IsVisible())
}

func TestSortModalReselectFlipsDirection(t *testing.T) {
	m := NewSortModal()
	m.Show(ArtworkSortOptions(), SortSelection{Field: SortArtist, Direction: SortAsc})

	_, sel := m.HandleKey("enter")
	require.NotNil(t, sel)
	assert.Equal(t, SortArtist, sel.Field)
	assert.Equal(t, SortDesc, sel.Direction)
}

func TestSortModalEscCloses(t *testing.T) {
	m := NewSortModal()
	m.Show(ArtworkSortOptions(), SortSelection{})

	handled, sel := m.HandleKey("esc")
	assert.True(t, handled)
	assert.Nil(t, sel)
	assert.False(t, m.IsVisible())

	handled, _ = m.HandleKey("j")
	assert.False(t, handled, "closed modal ignores keys")
}

func TestSortModalCursorBounds(t *testing.T) {
	m := NewSortModal()
	m.Show(ArtworkSortOptions(), SortSelection{})

	m.HandleKey("k")
	_, sel := m.HandleKey("enter")
	require.NotNil(t, sel)
	assert.Equal(t, SortDefault, sel.Field)
}
