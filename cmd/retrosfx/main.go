// SPDX-License-Identifier: EPL-2.0

// Command retrosfx generates the full retro sound effect library as
// WAV files, one subdirectory per category.
//
// Usage:
//
//	retrosfx [options]
//
// Options:
//
//	-config    Path to a YAML configuration file
//	-category  Limit generation or verification to the named category
//	-list      List available categories and exit
//	-verify    Render the selection in memory and report signal stats
//	-verbose   Enable debug logging
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/ik5/retrosfx"
	"github.com/ik5/retrosfx/config"
	"github.com/ik5/retrosfx/export"
	"github.com/ik5/retrosfx/recipes"
	"github.com/ik5/retrosfx/spectrum"
)

var (
	configPath = flag.String("config", "", "Path to a YAML configuration file")
	category   = flag.String("category", "", "Limit generation or verification to the named category")
	list       = flag.Bool("list", false, "List available categories and exit")
	verify     = flag.Bool("verify", false, "Render the selection in memory and report signal stats")
	verbose    = flag.Bool("verbose", false, "Enable debug logging")
)

func main() {
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("run failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	if *list {
		for _, cat := range recipes.Categories() {
			fmt.Printf("%-14s %2d sounds  %s\n", cat.Name, len(cat.Sounds), cat.Description)
		}
		return nil
	}

	cats := recipes.Categories()
	if *category != "" {
		cat, found := recipes.Find(*category)
		if !found {
			return fmt.Errorf("unknown category %q", *category)
		}
		cats = []recipes.Category{cat}
	}

	if *verify {
		return runVerify(logger, cats, cfg.SampleRate)
	}

	exp := export.New(cfg.OutputDir)
	start := time.Now()
	generated := 0
	failed := 0

	for _, cat := range cats {
		catStart := time.Now()

		paths, err := retrosfx.GenerateCategory(cat, cfg.SampleRate, exp)
		generated += len(paths)
		if err != nil {
			failed++
			logger.Error("category failed",
				slog.String("category", cat.Name),
				slog.Int("written", len(paths)),
				slog.Any("error", err))
			continue
		}

		logger.Info("category done",
			slog.String("category", cat.Name),
			slog.Int("sounds", len(paths)),
			slog.Duration("elapsed", time.Since(catStart)))
	}

	logger.Info("generation complete",
		slog.Int("categories", len(cats)),
		slog.Int("failed_categories", failed),
		slog.Int("files", generated),
		slog.String("output", exp.Root()),
		slog.Duration("elapsed", time.Since(start)))

	if failed > 0 {
		return fmt.Errorf("%d of %d categories failed", failed, len(cats))
	}
	return nil
}

func runVerify(logger *slog.Logger, cats []recipes.Category, rate int) error {
	verified := 0
	for _, cat := range cats {
		buffers, err := retrosfx.RenderCategory(cat, rate)
		if err != nil {
			return fmt.Errorf("verification render: %w", err)
		}

		for name, buf := range buffers {
			peakFreq, err := spectrum.PeakFrequency(buf, rate)
			if err != nil {
				return fmt.Errorf("analyzing %q: %w", name, err)
			}

			logger.Info("verified",
				slog.String("sound", name),
				slog.Int("samples", len(buf)),
				slog.Float64("peak", buf.Peak()),
				slog.Float64("peak_freq_hz", peakFreq))
		}
		verified += len(buffers)
	}

	logger.Info("verification complete",
		slog.Int("categories", len(cats)),
		slog.Int("sounds", verified))
	return nil
}
