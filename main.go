package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"workout-tracker/internal/config"
	"workout-tracker/internal/display"
	"workout-tracker/internal/training"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Load configuration, falling back to the built-in packages
	cfg, err := config.Load()
	if errors.Is(err, config.ErrNoConfig) {
		defaults := config.DefaultConfig()
		cfg = &defaults
	} else if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		configDir, _ := config.GetConfigDir()
		return fmt.Errorf("validating config at %s/config.json: %w", configDir, err)
	}

	return report(os.Stdout, cfg)
}

// report prints the optional header followed by every package summary
func report(w io.Writer, cfg *config.Config) error {
	printer := display.NewPrinter(w)
	if cfg.Display.Header {
		if err := printer.Header(len(cfg.Packages)); err != nil {
			return err
		}
	}

	return processPackages(printer, cfg.Packages)
}

// processPackages dispatches each package and prints its summary.
// Unknown workout codes are reported and skipped; malformed data stops processing.
func processPackages(printer *display.Printer, packages []config.Package) error {
	for i, pkg := range packages {
		t, err := training.ReadPackage(pkg.Code, pkg.Data)
		if errors.Is(err, training.ErrUnknownWorkout) {
			if err := printer.NotFound(pkg.Code, training.Codes()); err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return fmt.Errorf("package %d: %w", i, err)
		}

		if err := printer.Summary(training.ShowTrainingInfo(t)); err != nil {
			return fmt.Errorf("printing summary: %w", err)
		}
	}
	return nil
}
