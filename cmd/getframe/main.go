package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/caarlos0/env/v11"

	frameextract "github.com/e7canasta/frame-extract"
)

// Version information
const version = "v0.1.0"

// Exit codes. Usage problems are distinguishable from pipeline failures
// so batch scripts can tell a bad invocation from a missing frame.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// envDefaults are read before flag parsing so batch jobs can configure
// logging once instead of repeating flags on every invocation.
type envDefaults struct {
	LogLevel string `env:"GETFRAME_LOG_LEVEL" envDefault:"info"`
	LogJSON  bool   `env:"GETFRAME_LOG_JSON" envDefault:"false"`
	Stats    bool   `env:"GETFRAME_STATS" envDefault:"false"`
}

func main() {
	os.Exit(run())
}

func run() int {
	// Environment defaults first, flags override
	var defaults envDefaults
	if err := env.Parse(&defaults); err != nil {
		fmt.Fprintf(os.Stderr, "getframe: invalid environment: %v\n", err)
		return exitUsage
	}

	// Parse command-line flags
	debug := flag.Bool("debug", defaults.LogLevel == "debug", "Enable debug logging")
	jsonLog := flag.Bool("json", defaults.LogJSON, "Log in JSON format")
	showStats := flag.Bool("stats", defaults.Stats, "Print source statistics after extraction")
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.Usage = usage
	flag.Parse()

	// Show version
	if *showVersion {
		fmt.Printf("getframe %s\n", version)
		return exitOK
	}

	if flag.NArg() != 3 {
		usage()
		return exitUsage
	}

	inputPath := flag.Arg(0)
	outputPath := flag.Arg(2)

	// Validate the ordinal before touching the input file
	index, err := strconv.Atoi(flag.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "getframe: frame-index must be an integer, got %q\n", flag.Arg(1))
		return exitUsage
	}
	if index < 0 {
		fmt.Fprintf(os.Stderr, "getframe: frame-index must be non-negative, got %d\n", index)
		return exitUsage
	}

	// Set up logging
	logLevel := slog.LevelInfo
	if *debug {
		logLevel = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: logLevel}
	var handler slog.Handler = slog.NewTextHandler(os.Stderr, opts)
	if *jsonLog {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))

	src, err := frameextract.NewFileSource(frameextract.Config{Path: inputPath})
	if err != nil {
		return fail(err)
	}
	if err := src.Open(); err != nil {
		return fail(err)
	}
	defer src.Close()

	pic, err := frameextract.Nth(src, index)
	if err != nil {
		return fail(err)
	}
	defer pic.Close()

	raster, err := frameextract.ToRGB(pic)
	if err != nil {
		return fail(err)
	}

	if err := frameextract.SavePPM(outputPath, raster); err != nil {
		return fail(err)
	}

	fmt.Printf("frame %d saved to %s\n", index, outputPath)

	if *showStats {
		printStats(src.Stats())
	}

	return exitOK
}

// fail reports a pipeline failure as a single diagnostic line on stderr.
func fail(err error) int {
	fmt.Fprintf(os.Stderr, "getframe: %v\n", err)
	return exitError
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: getframe [flags] <input> <frame-index> <output>\n\n")
	fmt.Fprintf(os.Stderr, "Extracts the frame-index-th decoded frame (0-based) from the input\n")
	fmt.Fprintf(os.Stderr, "video and writes it as a binary PPM (P6) image.\n\n")
	fmt.Fprintf(os.Stderr, "Usage example:\n")
	fmt.Fprintf(os.Stderr, "  getframe clip.mp4 0 first.ppm\n")
	fmt.Fprintf(os.Stderr, "  getframe -stats recording.mkv 120 still.ppm\n\n")
	flag.PrintDefaults()
}

// printStats renders the source counters after a successful extraction.
func printStats(stats frameextract.SourceStats) {
	fmt.Printf("\n")
	fmt.Printf("╭─────────────────────────────────────────────────────────╮\n")
	fmt.Printf("│ Source Statistics\n")
	fmt.Printf("├─────────────────────────────────────────────────────────┤\n")
	fmt.Printf("│ Units Read:         %6d\n", stats.UnitsRead)
	fmt.Printf("│ Units Skipped:      %6d\n", stats.UnitsSkipped)
	fmt.Printf("│ Units Rejected:     %6d\n", stats.UnitsRejected)
	fmt.Printf("│ Bytes Read:         %6.2f MB\n", float64(stats.BytesRead)/1024/1024)
	fmt.Printf("│ Pictures Decoded:   %6d\n", stats.Decoded)
	fmt.Printf("│ Pictures Flushed:   %6d\n", stats.Flushed)
	fmt.Printf("│ Final State:        %s\n", stats.State)
	fmt.Printf("╰─────────────────────────────────────────────────────────╯\n")
}
