// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2023-present Datadog, Inc.

//go:build windows

package servicedetector

import "github.com/DataDog/windows-service-detector/pkg/winutil"

// IsRunningAsWindowsService returns whether the current process is running
// as a Windows Service. Each call queries fresh process state; nothing is
// cached, so concurrent calls are independent. A failure of either native
// query is returned as a *winutil.QueryError.
func IsRunningAsWindowsService() (bool, error) {
	d := &detector{
		parentPid:    winutil.GetParentPid,
		findProcess:  winutil.FindProcess,
		serviceImage: serviceManagerImage,
	}
	return d.detect()
}
