// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2023-present Datadog, Inc.

//go:build windows

package winutil

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// GetParentPid returns the identifier of the process that created the
// current one, as recorded by the kernel in the process basic information
// block. The pseudo-handle from CurrentProcess is closed on every path;
// closing it is a no-op but keeps the acquisition scoped.
func GetParentPid() (uint64, error) {
	handle := windows.CurrentProcess()
	defer windows.CloseHandle(handle) //nolint:errcheck

	var pbi windows.PROCESS_BASIC_INFORMATION
	var retLen uint32
	err := windows.NtQueryInformationProcess(
		handle,
		windows.ProcessBasicInformation,
		unsafe.Pointer(&pbi),
		uint32(unsafe.Sizeof(pbi)),
		&retLen,
	)
	if err != nil {
		return 0, ntError(opProcessQuery, err)
	}
	return uint64(pbi.InheritedFromUniqueProcessId), nil
}

// FindProcess materializes a fresh system process snapshot and returns the
// entry matching pid, if any. The snapshot buffer only lives for the
// duration of the call. When several entries share pid (possible after
// identifier reuse) the first one in snapshot order wins.
func FindProcess(pid uint64) (ProcessEntry, bool, error) {
	buf, err := querySnapshot(systemProcessQuery)
	if err != nil {
		return ProcessEntry{}, false, err
	}
	entry, found := findEntry(buf, decodeProcessEntry, pid)
	return entry, found, nil
}

// systemProcessQuery is the real systemQueryFunc, backed by
// NtQuerySystemInformation(SystemProcessInformation).
func systemProcessQuery(buf []byte) (uint32, error) {
	var base unsafe.Pointer
	if len(buf) > 0 {
		base = unsafe.Pointer(&buf[0])
	}
	var retLen uint32
	err := windows.NtQuerySystemInformation(
		windows.SystemProcessInformation,
		base,
		uint32(len(buf)),
		&retLen,
	)
	if err != nil {
		return retLen, ntError(opSystemQuery, err)
	}
	return retLen, nil
}

// decodeProcessEntry reinterprets the head of buf as a
// SYSTEM_PROCESS_INFORMATION record. The caller guarantees buf starts at a
// record boundary; decoding refuses buffers shorter than the fixed-size
// part of the record.
func decodeProcessEntry(buf []byte) (ProcessEntry, uint32, bool) {
	if uintptr(len(buf)) < unsafe.Sizeof(windows.SYSTEM_PROCESS_INFORMATION{}) {
		return ProcessEntry{}, 0, false
	}
	info := (*windows.SYSTEM_PROCESS_INFORMATION)(unsafe.Pointer(&buf[0]))
	entry := ProcessEntry{
		PID:       uint64(info.UniqueProcessID),
		SessionID: info.SessionID,
		ImageName: MissingImageName,
	}
	if info.ImageName.Buffer != nil {
		entry.ImageName = info.ImageName.String()
	}
	return entry, info.NextEntryOffset, true
}

// ntError converts a failed native call into a QueryError, preserving the
// NTSTATUS when the error carries one.
func ntError(op string, err error) error {
	if status, ok := err.(windows.NTStatus); ok {
		return &QueryError{Op: op, Status: uint32(status)}
	}
	return &QueryError{Op: op, Status: statusUnsuccessful}
}
