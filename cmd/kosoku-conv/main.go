package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"kosoku-conv/internal/config"
	"kosoku-conv/internal/exporter"
	"kosoku-conv/internal/logger"
	"kosoku-conv/internal/model"
	"kosoku-conv/internal/source"
	"kosoku-conv/internal/transform"
	"kosoku-conv/internal/ui"
)

const (
	appName    = "Kosoku Conv"
	appVersion = "1.0.0"
	appDesc    = "Converts 拘束時間管理表 CSV exports into formatted Excel workbooks"
)

var (
	configPath  string
	verbose     bool
	showVersion bool
	outputDir   string
	formats     string
	inputPath   string
	inputURL    string
)

func init() {
	flag.StringVar(&configPath, "config", "config.yaml", "Path to configuration file")
	flag.StringVar(&configPath, "c", "config.yaml", "Path to configuration file (shorthand)")
	flag.BoolVar(&verbose, "verbose", false, "Enable verbose logging (DEBUG level)")
	flag.BoolVar(&verbose, "v", false, "Enable verbose logging (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.StringVar(&outputDir, "output", "", "Override output directory from config")
	flag.StringVar(&formats, "format", "excel,html,word,json", "Comma-separated output formats (excel,html,word,json)")
	flag.StringVar(&inputPath, "input", "", "Override input CSV path from config")
	flag.StringVar(&inputURL, "url", "", "Fetch the CSV from a remote endpoint instead of a local file")
}

func main() {
	// CRITICAL: Ensure "Press Enter to Exit" runs even on panic or error
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("\n❌ PANIC: %v\n", r)
		}
		waitForEnter()
	}()

	exitCode := run()
	os.Exit(exitCode)
}

func run() int {
	flag.Parse()

	if showVersion {
		fmt.Printf("%s v%s\n%s\n", appName, appVersion, appDesc)
		return 0
	}

	printBanner()

	// 1. Initialize
	logger.Info("Loading configuration...")
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("❌ Failed to load configuration: %v\n", err)
		return 1
	}

	if outputDir != "" {
		cfg.Output.Dir = outputDir
		cfg.EnsureOutputDir()
	}
	if inputPath != "" {
		abs, _ := filepath.Abs(inputPath)
		cfg.Input.Path = abs
	}
	if inputURL != "" {
		cfg.Input.URL = inputURL
	}

	if err := cfg.Validate(); err != nil {
		fmt.Printf("❌ Invalid configuration: %v\n", err)
		return 1
	}

	logPath := filepath.Join(cfg.Output.Dir, "kosoku_conv.log")
	if err := logger.Init(os.Stdout, logPath, verbose); err != nil {
		fmt.Printf("❌ Failed to initialize logger: %v\n", err)
		return 1
	}
	defer logger.Close()

	if err := runConversion(cfg); err != nil {
		logger.Error("Conversion failed: %v", err)
		return 1
	}

	logger.Info("✅ Conversion Complete. Check [%s] directory.", cfg.Output.Dir)
	return 0
}

// waitForEnter pauses execution and waits for user to press Enter
// This prevents the console window from closing immediately when double-clicked
func waitForEnter() {
	fmt.Println("\n==========================================")
	fmt.Println("Execution Finished. Press 'Enter' to exit.")
	fmt.Println("==========================================")
	bufio.NewReader(os.Stdin).ReadBytes('\n')
}

func runConversion(cfg *config.Config) error {
	pipeline := ui.NewPipeline([]ui.Phase{
		ui.PhaseFetching,
		ui.PhaseNormalizing,
		ui.PhaseTransforming,
		ui.PhaseGenerating,
	})

	// --- Phase 1: Acquisition ---
	logger.Info("Phase 1: Reading input...")
	fetchBar := pipeline.NextPhase(1)

	text, err := acquire(cfg)
	if err != nil {
		// Hard failure: the pipeline never runs on partial input.
		return err
	}
	fetchBar.Increment()
	fetchBar.Finish()

	// --- Phase 2: Normalization ---
	logger.Info("Phase 2: Parsing CSV...")
	normBar := pipeline.NextPhase(1)

	grid, err := source.ParseCSV(text)
	if err != nil {
		return err
	}
	normBar.Increment()
	normBar.Finish()
	logger.Info("Read %d grid rows from %s", len(grid), cfg.SourceLabel())

	// --- Phase 3: Transformation ---
	logger.Info("Phase 3: Transforming...")
	transformBar := pipeline.NextPhase(1)

	records := transform.Transform(grid, cfg.Input.GridWidth)
	transformBar.Increment()
	transformBar.Finish()

	summary := model.BuildSummary(cfg.SourceLabel(), len(grid), records)
	summary.GeneratedAt = time.Now().Format("2006-01-02 15:04")
	logger.Info("Transformed %d rows into %d records (%d drivers)",
		summary.RowsRead, summary.RecordCount, summary.DriverCount)

	if clock, hours, err := transform.Aggregate(records, "拘束時間合計"); err == nil {
		logger.Info("Total restraint time: %s (%.2f h)", clock, hours)
	}

	// --- Phase 4: Reporting ---
	logger.Info("Phase 4: Generating Reports...")
	targetFormats := strings.Split(formats, ",")
	exporters := exporter.GetExporters(targetFormats)

	genBar := pipeline.NextPhase(len(exporters))

	var exportErrors []error
	for _, exp := range exporters {
		// A render failure never invalidates the records; the other
		// formats still get their chance.
		if err := exp.Export(summary, records, cfg); err != nil {
			logger.Error("Export failed: %v", err)
			exportErrors = append(exportErrors, err)
		}
		genBar.Increment()
	}
	genBar.Finish()

	pipeline.Finish()

	if len(exportErrors) > 0 {
		return fmt.Errorf("one or more exports failed: %d errors", len(exportErrors))
	}

	return nil
}

// acquire reads the CSV text from the configured source. The remote path
// is one blocking call with a timeout, no retry.
func acquire(cfg *config.Config) (string, error) {
	if cfg.UseRemote() {
		fetcher := source.NewFetcher(cfg.FetchTimeout())
		return fetcher.Fetch(context.Background(), cfg.Input.URL)
	}
	return source.ReadFile(cfg.Input.Path)
}

func printBanner() {
	banner := `
╔═══════════════════════════════════════════════════════════╗
║                     KOSOKU CONV v1.0.0                    ║
║        拘束時間管理表 CSV → Excel Conversion Tool         ║
╚═══════════════════════════════════════════════════════════╝
`
	fmt.Println(banner)
}
