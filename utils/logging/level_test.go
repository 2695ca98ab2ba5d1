// Copyright (C) 2022-2026, StreamKit, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevelRoundTrip(t *testing.T) {
	require := require.New(t)

	for _, level := range []Level{Off, Fatal, Error, Warn, Info, Trace, Debug, Verbo} {
		parsed, err := ToLevel(level.String())
		require.NoError(err)
		require.Equal(level, parsed)
	}
}

func TestToLevelCaseInsensitive(t *testing.T) {
	require := require.New(t)

	parsed, err := ToLevel("debug")
	require.NoError(err)
	require.Equal(Debug, parsed)
}

func TestToLevelUnknown(t *testing.T) {
	require := require.New(t)

	_, err := ToLevel("loud")
	require.Error(err)
}

func TestLevelOrdering(t *testing.T) {
	require := require.New(t)

	// More verbose levels must compare lower so that zap core filtering
	// keeps messages at or above the configured level.
	require.Less(Verbo, Debug)
	require.Less(Debug, Trace)
	require.Less(Trace, Info)
	require.Less(Info, Warn)
	require.Less(Warn, Error)
	require.Less(Error, Fatal)
	require.Less(Fatal, Off)
}
