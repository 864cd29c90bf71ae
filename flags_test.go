package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPopFlagWithVal(t *testing.T) {
	t.Run("separate value", func(t *testing.T) {
		rest, val := popFlagWithVal([]string{"-name", "baseline", "extra"}, "name")
		assert.Equal(t, "baseline", val)
		assert.Equal(t, []string{"extra"}, rest)
	})

	t.Run("single dash equals", func(t *testing.T) {
		rest, val := popFlagWithVal([]string{"-name=baseline"}, "name")
		assert.Equal(t, "baseline", val)
		assert.Empty(t, rest)
	})

	t.Run("double dash equals", func(t *testing.T) {
		rest, val := popFlagWithVal([]string{"--name=baseline"}, "name")
		assert.Equal(t, "baseline", val)
		assert.Empty(t, rest)
	})

	t.Run("absent flag", func(t *testing.T) {
		args := []string{"something"}
		rest, val := popFlagWithVal(args, "name")
		assert.Equal(t, "", val)
		assert.Equal(t, args, rest)
	})
}

func TestPopIntFlag(t *testing.T) {
	t.Run("valid value", func(t *testing.T) {
		rest, n, err := popIntFlag([]string{"-samples", "50"}, "samples")
		require.NoError(t, err)
		assert.Equal(t, 50, n)
		assert.Empty(t, rest)
	})

	t.Run("absent flag defaults to zero", func(t *testing.T) {
		_, n, err := popIntFlag([]string{}, "samples")
		require.NoError(t, err)
		assert.Equal(t, 0, n)
	})

	t.Run("non-numeric value", func(t *testing.T) {
		_, _, err := popIntFlag([]string{"-samples=many"}, "samples")
		assert.Error(t, err)
	})

	t.Run("non-positive value", func(t *testing.T) {
		_, _, err := popIntFlag([]string{"-samples=0"}, "samples")
		assert.Error(t, err)
	})
}
