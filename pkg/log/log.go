// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2023-present Datadog, Inc.

// Package log exposes a seelog-backed logging singleton for the example
// binaries. The detector library itself never logs; failures are returned
// to the caller instead.
package log

import (
	"fmt"
	"strings"
	"sync"

	"github.com/cihub/seelog"
)

var (
	mu     sync.RWMutex
	logger seelog.LoggerInterface
)

const seelogConfigTemplate = `
<seelog minlevel="%s">
    <outputs formatid="common">
        <console />
    </outputs>
    <formats>
        <format id="common" format="%%Date(2006-01-02 15:04:05 MST) | %%LEVEL | %%Msg%%n" />
    </formats>
</seelog>`

// SetupLogger configures the package singleton with a console logger at
// the given minimum level. Unknown levels fall back to "info".
func SetupLogger(level string) error {
	lvl := strings.ToLower(level)
	if _, ok := seelog.LogLevelFromString(lvl); !ok {
		lvl = "info"
	}
	l, err := seelog.LoggerFromConfigAsString(fmt.Sprintf(seelogConfigTemplate, lvl))
	if err != nil {
		return err
	}
	l.SetAdditionalStackDepth(1) //nolint:errcheck

	mu.Lock()
	defer mu.Unlock()
	if logger != nil {
		logger.Flush()
	}
	logger = l
	return nil
}

// Debugf formats message according to format specifier and logs it with
// the debug severity.
func Debugf(format string, params ...interface{}) {
	mu.RLock()
	defer mu.RUnlock()
	if logger != nil {
		logger.Debugf(format, params...)
	}
}

// Infof formats message according to format specifier and logs it with
// the info severity.
func Infof(format string, params ...interface{}) {
	mu.RLock()
	defer mu.RUnlock()
	if logger != nil {
		logger.Infof(format, params...)
	}
}

// Warnf formats message according to format specifier and logs it with
// the warn severity.
func Warnf(format string, params ...interface{}) {
	mu.RLock()
	defer mu.RUnlock()
	if logger != nil {
		logger.Warnf(format, params...) //nolint:errcheck
	}
}

// Errorf formats message according to format specifier and logs it with
// the error severity.
func Errorf(format string, params ...interface{}) {
	mu.RLock()
	defer mu.RUnlock()
	if logger != nil {
		logger.Errorf(format, params...) //nolint:errcheck
	}
}

// Flush flushes any buffered log entries.
func Flush() {
	mu.RLock()
	defer mu.RUnlock()
	if logger != nil {
		logger.Flush()
	}
}
