package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNonEmptyReasks(t *testing.T) {
	var out bytes.Buffer
	p := newPrompter(strings.NewReader("\n   \nhello\n"), &out)

	val, err := p.nonEmpty("Title: ")
	require.NoError(t, err)
	assert.Equal(t, "hello", val)
	assert.Contains(t, out.String(), "Input cannot be empty.")
}

func TestNonEmptyStopsWhenInputCloses(t *testing.T) {
	var out bytes.Buffer
	p := newPrompter(strings.NewReader("\n\n"), &out)

	_, err := p.nonEmpty("Title: ")
	assert.ErrorIs(t, err, errInputClosed)
	// two blank answers, then the closed input ends the re-ask loop
	assert.Equal(t, 2, strings.Count(out.String(), "Input cannot be empty."))
}

func TestReadLineAcceptsFinalLineWithoutNewline(t *testing.T) {
	var out bytes.Buffer
	p := newPrompter(strings.NewReader("hello"), &out)

	val, err := p.readLine("Title: ")
	require.NoError(t, err)
	assert.Equal(t, "hello", val)

	_, err = p.readLine("Title: ")
	assert.ErrorIs(t, err, errInputClosed)
}

func TestOptionalKeepsCurrent(t *testing.T) {
	var out bytes.Buffer
	p := newPrompter(strings.NewReader("\n"), &out)
	val, err := p.optional("New title: ", "current")
	require.NoError(t, err)
	assert.Equal(t, "current", val)

	p = newPrompter(strings.NewReader("fresh\n"), &out)
	val, err = p.optional("New title: ", "current")
	require.NoError(t, err)
	assert.Equal(t, "fresh", val)
}

func TestIntInRangeRejectsOutOfBounds(t *testing.T) {
	var out bytes.Buffer
	p := newPrompter(strings.NewReader("abc\n0\n9\n3\n"), &out)

	val, err := p.intInRange("Select 1-5: ", 1, 5)
	require.NoError(t, err)
	assert.Equal(t, 3, val)
	assert.Contains(t, out.String(), "Enter a number between 1 and 5.")
}

func TestIntInRangeStopsWhenInputCloses(t *testing.T) {
	var out bytes.Buffer
	p := newPrompter(strings.NewReader("abc\n"), &out)

	_, err := p.intInRange("Select 1-5: ", 1, 5)
	assert.ErrorIs(t, err, errInputClosed)
}

func TestConfirm(t *testing.T) {
	var out bytes.Buffer

	ok, err := newPrompter(strings.NewReader("y\n"), &out).confirm("Are you sure")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = newPrompter(strings.NewReader("YES\n"), &out).confirm("Are you sure")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = newPrompter(strings.NewReader("n\n"), &out).confirm("Are you sure")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = newPrompter(strings.NewReader("\n"), &out).confirm("Are you sure")
	require.NoError(t, err)
	assert.False(t, ok)
}
