// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2023-present Datadog, Inc.

package winutil

import "errors"

// systemQueryFunc issues the system-wide process enumeration against buf
// and returns the length the system reported: bytes required when buf is
// too small, bytes written on success. A nil or undersized buf fails with
// a QueryError carrying STATUS_INFO_LENGTH_MISMATCH.
type systemQueryFunc func(buf []byte) (uint32, error)

// entryDecoder decodes the snapshot record at the start of buf, returning
// the decoded entry and the byte offset to the next record (0 for the last
// one). ok is false when buf is too short to hold a record.
type entryDecoder func(buf []byte) (entry ProcessEntry, next uint32, ok bool)

// snapshotQueryAttempts bounds the resize-and-retry protocol. One query to
// learn the required size and one to fetch the data is enough in practice;
// the snapshot can only outgrow the reported size if the process table
// churns heavily between the two calls.
const snapshotQueryAttempts = 2

// maxSnapshotEntries caps the number of records visited in one traversal.
// Purely defensive: typical systems run a few hundred processes, and the
// cap keeps a corrupted offset chain from looping forever.
const maxSnapshotEntries = 1024

// querySnapshot drives the two-pass buffer protocol and returns the raw
// snapshot buffer. The first query runs with no buffer so the system
// reports the required size; the retry runs with a buffer of exactly that
// capacity.
func querySnapshot(query systemQueryFunc) ([]byte, error) {
	var buf []byte
	for attempt := 0; attempt < snapshotQueryAttempts; attempt++ {
		retLen, err := query(buf)
		if err == nil {
			if retLen == 0 {
				return nil, &QueryError{Op: opSystemQuery, Status: statusBufferTooSmall}
			}
			return buf, nil
		}
		var qerr *QueryError
		if !errors.As(err, &qerr) || qerr.Status != statusInfoLengthMismatch {
			return nil, err
		}
		if retLen == 0 {
			return nil, &QueryError{Op: opSystemQuery, Status: statusBufferTooSmall}
		}
		buf = make([]byte, retLen)
	}
	return nil, &QueryError{Op: opSystemQuery, Status: statusBufferTooSmall}
}

// findEntry walks the offset chain of a snapshot buffer looking for pid.
// Every advance is validated against the buffer length before the record
// is decoded, and the walk visits at most maxSnapshotEntries records, so a
// malformed chain terminates the search instead of faulting. An unmatched
// pid is not an error: the process may simply have exited between queries.
func findEntry(buf []byte, decode entryDecoder, pid uint64) (ProcessEntry, bool) {
	offset := uint64(0)
	for visited := 0; visited < maxSnapshotEntries; visited++ {
		if offset >= uint64(len(buf)) {
			break
		}
		entry, next, ok := decode(buf[offset:])
		if !ok {
			break
		}
		if entry.PID == pid {
			return entry, true
		}
		if next == 0 {
			break
		}
		offset += uint64(next)
	}
	return ProcessEntry{}, false
}
