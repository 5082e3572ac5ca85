// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2023-present Datadog, Inc.

package log

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetupLogger(t *testing.T) {
	require.NoError(t, SetupLogger("debug"))
	Debugf("debug line %d", 1)
	Infof("info line")
	Flush()
}

func TestSetupLoggerUnknownLevelFallsBack(t *testing.T) {
	require.NoError(t, SetupLogger("chatty"))
	Infof("still works")
	Flush()
}

func TestLoggingBeforeSetupIsSafe(t *testing.T) {
	mu.Lock()
	old := logger
	logger = nil
	mu.Unlock()
	defer func() {
		mu.Lock()
		logger = old
		mu.Unlock()
	}()

	Warnf("dropped but must not panic")
	Flush()
}
