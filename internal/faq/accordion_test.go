package faq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccordion_Toggle(t *testing.T) {
	a := New(4)
	assert.False(t, a.State().Open)
	assert.False(t, a.State().IsOpen(0), "zero value does not open the first item")

	require.NoError(t, a.Toggle(2))
	assert.True(t, a.State().IsOpen(2))

	require.NoError(t, a.Toggle(0))
	assert.True(t, a.State().IsOpen(0))
	assert.False(t, a.State().IsOpen(2), "only one item is expanded")

	require.NoError(t, a.Toggle(0))
	assert.Equal(t, State{}, a.State())
}

func TestAccordion_OutOfRange(t *testing.T) {
	a := New(2)
	require.NoError(t, a.Toggle(1))

	for _, i := range []int{-1, 2, 10} {
		err := a.Toggle(i)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
	}
	assert.True(t, a.State().IsOpen(1), "rejected toggles leave the state alone")
	assert.Equal(t, 2, a.Len())
}
