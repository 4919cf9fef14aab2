package main

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseWorkers(t *testing.T) {
	n, err := parseWorkers("full")
	require.NoError(t, err)
	require.Equal(t, runtime.NumCPU(), n)

	n, err = parseWorkers("3")
	require.NoError(t, err)
	require.Equal(t, 3, n)

	_, err = parseWorkers("0")
	require.Error(t, err)

	_, err = parseWorkers("banana")
	require.Error(t, err)
}
