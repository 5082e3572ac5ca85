// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2023-present Datadog, Inc.

package servicedetector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DataDog/windows-service-detector/pkg/winutil"
)

func newTestDetector(parentPid func() (uint64, error), findProcess func(uint64) (winutil.ProcessEntry, bool, error)) *detector {
	return &detector{
		parentPid:    parentPid,
		findProcess:  findProcess,
		serviceImage: serviceManagerImage,
	}
}

func TestClassify(t *testing.T) {
	d := &detector{serviceImage: serviceManagerImage}

	tests := []struct {
		name     string
		entry    winutil.ProcessEntry
		found    bool
		expected bool
	}{
		{"scm parent", winutil.ProcessEntry{PID: 700, SessionID: 0, ImageName: "services.exe"}, true, true},
		{"parent not found", winutil.ProcessEntry{}, false, false},
		{"interactive session", winutil.ProcessEntry{PID: 700, SessionID: 1, ImageName: "services.exe"}, true, false},
		{"case mismatch", winutil.ProcessEntry{PID: 700, SessionID: 0, ImageName: "Services.exe"}, true, false},
		{"trailing space", winutil.ProcessEntry{PID: 700, SessionID: 0, ImageName: "services.exe "}, true, false},
		{"other system process", winutil.ProcessEntry{PID: 700, SessionID: 0, ImageName: "svchost.exe"}, true, false},
		{"missing image name", winutil.ProcessEntry{PID: 700, SessionID: 0, ImageName: winutil.MissingImageName}, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, d.classify(tt.entry, tt.found))
		})
	}
}

func TestDetectParentAbsent(t *testing.T) {
	// The parent exited between the two queries: not a service, no error.
	d := newTestDetector(
		func() (uint64, error) { return 1234, nil },
		func(pid uint64) (winutil.ProcessEntry, bool, error) {
			return winutil.ProcessEntry{}, false, nil
		},
	)

	isService, err := d.detect()
	require.NoError(t, err)
	assert.False(t, isService)
}

func TestDetectSessionMismatch(t *testing.T) {
	d := newTestDetector(
		func() (uint64, error) { return 1234, nil },
		func(pid uint64) (winutil.ProcessEntry, bool, error) {
			return winutil.ProcessEntry{PID: pid, SessionID: 1, ImageName: "services.exe"}, true, nil
		},
	)

	isService, err := d.detect()
	require.NoError(t, err)
	assert.False(t, isService)
}

func TestDetectServiceParent(t *testing.T) {
	d := newTestDetector(
		func() (uint64, error) { return 1234, nil },
		func(pid uint64) (winutil.ProcessEntry, bool, error) {
			return winutil.ProcessEntry{PID: pid, SessionID: 0, ImageName: "services.exe"}, true, nil
		},
	)

	isService, err := d.detect()
	require.NoError(t, err)
	assert.True(t, isService)
}

func TestDetectParentQueryFailure(t *testing.T) {
	// A failed parent resolution must propagate and skip enumeration.
	queryErr := &winutil.QueryError{Op: "NtQueryInformationProcess", Status: 0xC0000022}
	var enumerated bool
	d := newTestDetector(
		func() (uint64, error) { return 0, queryErr },
		func(pid uint64) (winutil.ProcessEntry, bool, error) {
			enumerated = true
			return winutil.ProcessEntry{}, false, nil
		},
	)

	isService, err := d.detect()
	require.Error(t, err)
	assert.False(t, isService)
	assert.False(t, enumerated)

	var qerr *winutil.QueryError
	require.ErrorAs(t, err, &qerr)
	assert.True(t, qerr.AccessDenied())
}

func TestDetectEnumerationFailure(t *testing.T) {
	queryErr := &winutil.QueryError{Op: "NtQuerySystemInformation", Status: 0xC0000023}
	d := newTestDetector(
		func() (uint64, error) { return 1234, nil },
		func(pid uint64) (winutil.ProcessEntry, bool, error) {
			return winutil.ProcessEntry{}, false, queryErr
		},
	)

	_, err := d.detect()
	var qerr *winutil.QueryError
	require.ErrorAs(t, err, &qerr)
	assert.True(t, qerr.BufferTooSmall())
}

func TestDetectIdempotent(t *testing.T) {
	d := newTestDetector(
		func() (uint64, error) { return 1234, nil },
		func(pid uint64) (winutil.ProcessEntry, bool, error) {
			return winutil.ProcessEntry{PID: pid, SessionID: 0, ImageName: "services.exe"}, true, nil
		},
	)

	first, err := d.detect()
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := d.detect()
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
