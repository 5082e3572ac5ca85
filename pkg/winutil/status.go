// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2023-present Datadog, Inc.

package winutil

import "fmt"

// NTSTATUS values surfaced by the process queries. Mirrored here so the
// portable code and tests do not depend on golang.org/x/sys/windows.
const (
	statusUnsuccessful       = 0xC0000001
	statusInfoLengthMismatch = 0xC0000004
	statusAccessDenied       = 0xC0000022
	statusBufferTooSmall     = 0xC0000023
	statusNotSupported       = 0xC00000BB
)

// Operation names used in QueryError messages.
const (
	opProcessQuery = "NtQueryInformationProcess"
	opSystemQuery  = "NtQuerySystemInformation"
)

// QueryError reports a failed native introspection call. The underlying
// NTSTATUS is preserved verbatim for diagnostics.
type QueryError struct {
	Op     string
	Status uint32
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("%s failed with status 0x%08X", e.Op, e.Status)
}

// AccessDenied reports whether the query was rejected with
// STATUS_ACCESS_DENIED.
func (e *QueryError) AccessDenied() bool {
	return e.Status == statusAccessDenied
}

// Unsupported reports whether the query is not supported by the running
// system.
func (e *QueryError) Unsupported() bool {
	return e.Status == statusNotSupported
}

// BufferTooSmall reports whether the enumeration gave up because the
// snapshot never fit the buffer the system asked for.
func (e *QueryError) BufferTooSmall() bool {
	return e.Status == statusBufferTooSmall
}
