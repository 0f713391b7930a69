package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/budget-tracker/cmd/add"
	"fjacquet/budget-tracker/cmd/budget"
	"fjacquet/budget-tracker/cmd/categories"
	"fjacquet/budget-tracker/cmd/export"
	"fjacquet/budget-tracker/cmd/list"
	"fjacquet/budget-tracker/cmd/remove"
	"fjacquet/budget-tracker/cmd/root"
	"fjacquet/budget-tracker/cmd/summary"
	"fjacquet/budget-tracker/cmd/yearly"
	"fjacquet/budget-tracker/cmd/years"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func init() {
	// Environment first, without logging
	loadEnvSilently()

	// The level must be set before any logger is created
	configureLogLevelDirectly()

	root.Init()

	root.Cmd.AddCommand(add.Cmd)
	root.Cmd.AddCommand(remove.Cmd)
	root.Cmd.AddCommand(list.Cmd)
	root.Cmd.AddCommand(summary.Cmd)
	root.Cmd.AddCommand(yearly.Cmd)
	root.Cmd.AddCommand(years.Cmd)
	root.Cmd.AddCommand(export.Cmd)
	root.Cmd.AddCommand(budget.Cmd)
	root.Cmd.AddCommand(categories.Cmd)
}

// loadEnvSilently loads environment variables without logging anything
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}
	_ = godotenv.Load(envFile)
}

// configureLogLevelDirectly sets the global logrus level from LOG_LEVEL and
// returns it
func configureLogLevelDirectly() logrus.Level {
	logLevelStr := os.Getenv("LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info"
	}

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.SetOutput(os.Stderr)

	return logLevel
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
