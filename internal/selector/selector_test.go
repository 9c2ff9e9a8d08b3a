package selector

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_EmptyChoicesReturnsImmediately(t *testing.T) {
	var out bytes.Buffer
	s := New(strings.NewReader(""), &out, Options{NoColor: true})

	got, err := s.Select("Select a task", nil)

	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Empty(t, out.String(), "nothing should be rendered for an empty list")
}

func TestSelect_ReadsKeysFromInput(t *testing.T) {
	var out bytes.Buffer
	s := New(strings.NewReader("j\r"), &out, Options{NoColor: true})

	got, err := s.Select("Select a service", []string{"billing-svc", "checkout-svc"})

	require.NoError(t, err)
	assert.Equal(t, "checkout-svc", got)
}

func TestSelect_EscapeCancels(t *testing.T) {
	var out bytes.Buffer
	s := New(strings.NewReader("q"), &out, Options{NoColor: true})

	got, err := s.Select("Select a service", []string{"billing-svc", "checkout-svc"})

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestNew_DefaultPageSize(t *testing.T) {
	s := New(strings.NewReader(""), &bytes.Buffer{}, Options{})

	assert.Equal(t, DefaultPageSize, s.pageSize)
}
