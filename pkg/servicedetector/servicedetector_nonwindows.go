// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2023-present Datadog, Inc.

//go:build !windows

package servicedetector

// IsRunningAsWindowsService returns whether the current process is running
// as a Windows Service. On non-Windows platforms this always returns
// false.
func IsRunningAsWindowsService() (bool, error) {
	return false, nil
}
