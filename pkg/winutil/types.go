// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2023-present Datadog, Inc.

// Package winutil owns all direct interaction with the native process
// introspection calls and translates their raw buffers into plain value
// types. Nothing outside this package touches a handle or an unsafe
// pointer.
package winutil

// MissingImageName is substituted for the image name of process entries
// whose name buffer is not populated. Some system processes (Idle, the
// kernel) legitimately carry no image name.
const MissingImageName = "<null>"

// ProcessEntry is one decoded record from a system process snapshot.
type ProcessEntry struct {
	// PID is the process identifier. Only unique at a point in time;
	// the system reuses identifiers after a process exits.
	PID uint64

	// SessionID is the terminal services session the process runs in.
	// Session 0 is reserved for services and system processes.
	SessionID uint32

	// ImageName is the executable image name, or MissingImageName when
	// the record carries none.
	ImageName string
}
