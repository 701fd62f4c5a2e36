// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/MKhiriev/go-selection-sync/internal/client"
	"github.com/MKhiriev/go-selection-sync/internal/config"
	"github.com/MKhiriev/go-selection-sync/internal/logger"
	"github.com/MKhiriev/go-selection-sync/models"
	"github.com/fatih/color"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

var (
	label = color.New(color.Bold).SprintFunc()
	value = color.New(color.FgCyan).SprintFunc()
	fail  = color.New(color.FgRed).SprintFunc()
)

func main() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(info)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, fail("error getting configs:"), err)
		os.Exit(1)
	}

	log := logger.NewFileLogger("selectsync", cfg.Log.Level, cfg.Log.File)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := client.NewApp(cfg, info, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(log.WithContext(ctx)); err != nil {
		log.Error().Err(err).Msg("client run error")
		fmt.Fprintln(os.Stderr, fail("selectsync:"), err)
		stop()
		os.Exit(1)
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	for _, f := range info.Fields() {
		fmt.Printf("%s %s\n", label("Build "+strings.ToLower(f.Label)+":"), value(f.Value))
	}
}
