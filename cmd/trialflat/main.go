// Package main provides the CLI entry point for trialflat.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
