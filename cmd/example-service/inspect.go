// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2023-present Datadog, Inc.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/v3/process"
	"github.com/spf13/cobra"

	"github.com/DataDog/windows-service-detector/pkg/servicedetector"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print the parent process and the detection verdict",
	Long:  "inspect shows which process launched this one, to help understand what the detector will decide.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return inspect(os.Stdout)
	},
	SilenceUsage: true,
}

func inspect(w io.Writer) error {
	ppid := os.Getppid()
	fmt.Fprintf(w, "parent pid: %d\n", ppid)

	parent, err := process.NewProcess(int32(ppid))
	if err != nil {
		return errors.Wrapf(err, "unable to inspect parent process %d", ppid)
	}
	// Metadata lookups can fail individually on restricted processes;
	// print what is available.
	if name, err := parent.Name(); err == nil {
		fmt.Fprintf(w, "parent name: %s\n", name)
	}
	if exe, err := parent.Exe(); err == nil {
		fmt.Fprintf(w, "parent executable: %s\n", exe)
	}
	if user, err := parent.Username(); err == nil {
		fmt.Fprintf(w, "parent user: %s\n", user)
	}

	isService, err := servicedetector.IsRunningAsWindowsService()
	if err != nil {
		return err
	}
	verdict := color.YellowString("not started by the service control manager")
	if isService {
		verdict = color.GreenString("started by the service control manager")
	}
	fmt.Fprintf(w, "verdict: %s\n", verdict)
	return nil
}
