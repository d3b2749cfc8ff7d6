// Command bookshelf-tui is the interactive book catalog.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/handiism/book-catalog/internal/config"
	"github.com/handiism/book-catalog/internal/logging"
	"github.com/handiism/book-catalog/internal/tui"
)

func main() {
	var (
		configFlag  = flag.String("config", "", "Path to config file (JSON or YAML)")
		logFileFlag = flag.String("log-file", "", "Append logs to this file (the terminal belongs to the UI)")
	)
	flag.Parse()

	settings, err := config.Resolve(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	level, err := logging.ParseLevel(settings.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger, closeLog, err := logging.OpenFile(*logFileFlag, level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	if err := tui.Run(settings, logger); err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
