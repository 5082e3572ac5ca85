// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2023-present Datadog, Inc.

// example-service demonstrates the use of the detector. Run from a
// command line it prints "this is not a service"; started by the Service
// Control Manager it registers a control handler and records the start
// time in a marker file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/DataDog/windows-service-detector/pkg/log"
	"github.com/DataDog/windows-service-detector/pkg/servicedetector"
	"github.com/DataDog/windows-service-detector/pkg/version"
)

var confPath string

var rootCmd = &cobra.Command{
	Use:   "example-service",
	Short: "Example binary that branches on the Windows service execution context",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version info",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("example-service %s", version.Version)
		if version.Commit != "" {
			fmt.Printf(" - Commit: %s", version.Commit)
		}
		fmt.Println()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&confPath, "config", "c", "", "path to the example-service config file")
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(inspectCmd)
}

func run() error {
	cfg, err := loadConfig(confPath)
	if err != nil {
		return err
	}
	if err := log.SetupLogger(cfg.LogLevel); err != nil {
		return err
	}
	defer log.Flush()

	// Any detection failure is fatal at startup: without the answer we
	// cannot know which mode to run in.
	isService, err := servicedetector.IsRunningAsWindowsService()
	if err != nil {
		return err
	}

	if isService {
		log.Infof("service execution context detected, handing over to the service control dispatcher")
		return runService(cfg)
	}

	fmt.Println("this is not a service")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
