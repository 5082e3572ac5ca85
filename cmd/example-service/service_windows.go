// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2023-present Datadog, Inc.

//go:build windows

package main

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/sys/windows/svc"
	"golang.org/x/sys/windows/svc/debug"
	"golang.org/x/sys/windows/svc/eventlog"
)

var elog debug.Log

type exampleService struct {
	cfg *Config
}

func (s *exampleService) Execute(args []string, r <-chan svc.ChangeRequest, changes chan<- svc.Status) (ssec bool, errno uint32) {
	const cmdsAccepted = svc.AcceptStop | svc.AcceptShutdown
	changes <- svc.Status{State: svc.StartPending}

	if err := writeServiceMarker(s.cfg.Service.OutputFile); err != nil {
		elog.Error(1, fmt.Sprintf("unable to write the service marker file: %v", err))
		changes <- svc.Status{State: svc.Stopped}
		return false, 1
	}

	changes <- svc.Status{State: svc.Running, Accepts: cmdsAccepted}
	elog.Info(1, fmt.Sprintf("%s is running", s.cfg.Service.Name))

loop:
	for {
		c := <-r
		switch c.Cmd {
		case svc.Interrogate:
			changes <- c.CurrentStatus
			// Testing deadlock from https://code.google.com/p/winsvc/issues/detail?id=4
			time.Sleep(100 * time.Millisecond)
			changes <- c.CurrentStatus
		case svc.Stop, svc.Shutdown:
			elog.Info(1, fmt.Sprintf("%s is stopping", s.cfg.Service.Name))
			break loop
		default:
			elog.Warning(1, fmt.Sprintf("unexpected control request #%d", c.Cmd))
		}
	}

	changes <- svc.Status{State: svc.StopPending}
	changes <- svc.Status{State: svc.Stopped}
	return false, 0
}

// runService hands the process over to the service control dispatcher. It
// only ever runs after the detector reported a service execution context.
func runService(cfg *Config) error {
	var err error
	elog, err = eventlog.Open(cfg.Service.Name)
	if err != nil {
		// The event source may not be registered; log to the debugger
		// output instead of failing to start.
		elog = debug.New(cfg.Service.Name)
	}
	defer elog.Close()

	elog.Info(1, fmt.Sprintf("starting the %s service control handler", cfg.Service.Name))
	if err := svc.Run(cfg.Service.Name, &exampleService{cfg: cfg}); err != nil {
		elog.Error(1, fmt.Sprintf("service failed: %v", err))
		return err
	}
	elog.Info(1, fmt.Sprintf("%s stopped", cfg.Service.Name))
	return nil
}

// writeServiceMarker records the service start so a tester can verify the
// service path actually ran.
func writeServiceMarker(path string) error {
	content := fmt.Sprintf("service ran at time: %d", time.Now().Unix())
	return os.WriteFile(path, []byte(content), 0o644)
}
