// Command cavegen generates a single dungeon level from a YAML config file
// and prints it as a plain-text stat summary plus an ASCII map dump.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dshills/cavegen/pkg/director"
	"github.com/dshills/cavegen/pkg/profiles"
)

const version = "1.0.0"

var (
	configPath = flag.String("config", "", "Path to YAML configuration file (required)")
	seedFlag   = flag.Uint64("seed", 0, "Override the seed from config (0 = use config seed)")
	verbose    = flag.Bool("verbose", false, "Enable verbose output")
	versionF   = flag.Bool("version", false, "Print version and exit")
	help       = flag.Bool("help", false, "Show help message")
)

func main() {
	flag.Parse()

	if *versionF {
		fmt.Printf("cavegen version %s\n", version)
		os.Exit(0)
	}
	if *help {
		printHelp()
		os.Exit(0)
	}
	if *configPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -config flag is required")
		printUsage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if *verbose {
		fmt.Printf("Loading configuration from %s\n", *configPath)
	}

	cliCfg, err := LoadCLIConfig(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if *seedFlag != 0 {
		if *verbose {
			fmt.Printf("Overriding seed from %d to %d\n", cliCfg.Seed, *seedFlag)
		}
		cliCfg.Seed = *seedFlag
	}

	cfg := cliCfg.toDirectorConfig()
	if *verbose {
		fmt.Printf("Using seed: %d\n", cfg.Seed)
		fmt.Printf("Depth: %d\n", cfg.Depth)
		if cfg.ForceProfile != "" {
			fmt.Printf("Forced profile: %s\n", cfg.ForceProfile)
		}
		if len(cfg.QuestRaces) > 0 {
			fmt.Printf("Quest races: %v\n", cfg.QuestRaces)
		}
	}

	tables, err := profiles.Default()
	if err != nil {
		return fmt.Errorf("failed to load data tables: %w", err)
	}

	logger := newCLILogger(*verbose)
	d := director.New(tables, logger, nil)

	if *verbose {
		fmt.Println("Generating level...")
	}
	out, err := d.Generate(cfg)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	printStats(out)
	fmt.Println()
	fmt.Println(RenderASCII(out.Level))
	return nil
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "\nUsage: cavegen -config <config.yaml> [options]")
	fmt.Fprintln(os.Stderr, "\nRun 'cavegen -help' for detailed help")
}

func printHelp() {
	fmt.Printf("cavegen version %s\n\n", version)
	fmt.Println("A command-line tool for generating procedural dungeon levels.")
	fmt.Println("\nUsage:")
	fmt.Println("  cavegen -config <config.yaml> [options]")
	fmt.Println("\nRequired Flags:")
	fmt.Println("  -config string")
	fmt.Println("        Path to YAML configuration file")
	fmt.Println("\nOptional Flags:")
	fmt.Println("  -seed uint")
	fmt.Println("        Override the seed from config (0 = use config seed) (default: 0)")
	fmt.Println("  -verbose")
	fmt.Println("        Enable verbose output")
	fmt.Println("  -version")
	fmt.Println("        Print version and exit")
	fmt.Println("  -help")
	fmt.Println("        Show this help message")
	fmt.Println("\nExamples:")
	fmt.Println("  cavegen -config level.yaml")
	fmt.Println("  cavegen -config level.yaml -seed 12345 -verbose")
	fmt.Println("\nConfiguration File:")
	fmt.Println("  The YAML configuration file specifies generation parameters:")
	fmt.Println("  - seed (uint64, for deterministic generation)")
	fmt.Println("  - depth (int, 0 == town)")
	fmt.Println("  - isDay (bool, town resident/lighting schedule)")
	fmt.Println("  - forceProfile (string, bypass normal profile selection)")
	fmt.Println("  - questRaces ([]string, races forced onto the level)")
	fmt.Println("  - retries (int, attempt budget before giving up, default 100)")
}

func printStats(out director.Output) {
	fmt.Println("Level Statistics:")
	fmt.Printf("  Profile: %s\n", out.Profile)
	fmt.Printf("  Depth: %d\n", out.Level.Depth)
	fmt.Printf("  Dimensions: %dx%d\n", out.Level.Width, out.Level.Height)
	fmt.Printf("  Rooms: %d\n", out.RoomCount)

	less, more := out.Level.CountStairs()
	fmt.Printf("  Stairs: %d up, %d down\n", less, more)
	fmt.Printf("  Monsters: %d\n", len(out.Registry.Monsters()))
	fmt.Printf("  Objects: %d\n", len(out.Registry.Objects()))
	fmt.Printf("  Object feeling: %d (rating %d)\n", out.Feeling.Object, out.Feeling.ObjectRating)
	fmt.Printf("  Monster feeling: %d (rating %d)\n", out.Feeling.Monster, out.Feeling.MonsterRating)
}
