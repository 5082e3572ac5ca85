// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2023-present Datadog, Inc.

// Package servicedetector reports whether the current process was started
// by the Windows Service Control Manager rather than interactively. This
// is useful for binaries that are run from a command line for development
// and under the service manager in production.
//
// Windows exposes no direct "am I a service" flag, so the answer is
// inferred the same way the .NET hosting extensions and
// golang.org/x/sys/windows/svc do it: resolve the parent process and check
// that it is services.exe running in session 0.
package servicedetector

import "github.com/DataDog/windows-service-detector/pkg/winutil"

// serviceManagerImage is the image name of the Service Control Manager
// process. The comparison is exact and case-sensitive, and assumes the
// executable is not renamed or localized; this is a known limitation
// shared with the detectors in other ecosystems.
const serviceManagerImage = "services.exe"

// detector holds the three steps of the detection pipeline. The function
// fields exist so tests can drive the pipeline without native calls; the
// production wiring lives in the platform entry point.
type detector struct {
	parentPid    func() (uint64, error)
	findProcess  func(pid uint64) (winutil.ProcessEntry, bool, error)
	serviceImage string
}

// detect resolves the parent process, locates it in a fresh process table
// snapshot, and classifies it. Every failure of the underlying queries is
// propagated verbatim; an absent parent (it may have exited already) is a
// plain "not a service".
func (d *detector) detect() (bool, error) {
	ppid, err := d.parentPid()
	if err != nil {
		return false, err
	}
	parent, found, err := d.findProcess(ppid)
	if err != nil {
		return false, err
	}
	return d.classify(parent, found), nil
}

// classify applies the service heuristic to the located parent entry. It
// is total: no input combination fails.
func (d *detector) classify(parent winutil.ProcessEntry, found bool) bool {
	return found && parent.SessionID == 0 && parent.ImageName == d.serviceImage
}
