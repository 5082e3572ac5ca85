// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2023-present Datadog, Inc.

//go:build windows

package servicedetector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsRunningAsWindowsServiceUnderTestHarness(t *testing.T) {
	// The test binary is launched by the go tool, never by the SCM.
	isService, err := IsRunningAsWindowsService()
	require.NoError(t, err)
	assert.False(t, isService)
}
