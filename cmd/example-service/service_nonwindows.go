// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2023-present Datadog, Inc.

//go:build !windows

package main

import "github.com/pkg/errors"

// runService is unreachable off Windows because the detector always
// reports false there, but it keeps the binary buildable everywhere.
func runService(cfg *Config) error {
	return errors.New("running as a service is only supported on Windows")
}
