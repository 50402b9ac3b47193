package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/savannahghi/mentorship-xls-form/internal/config"
	"github.com/savannahghi/mentorship-xls-form/internal/loader"
	"github.com/savannahghi/mentorship-xls-form/internal/loader/excelloader"
	"github.com/savannahghi/mentorship-xls-form/internal/loader/jsonloader"
	"github.com/savannahghi/mentorship-xls-form/internal/logger"
	"github.com/savannahghi/mentorship-xls-form/internal/lowering"
	"github.com/savannahghi/mentorship-xls-form/internal/report"
	"github.com/savannahghi/mentorship-xls-form/internal/ui"
	"github.com/savannahghi/mentorship-xls-form/internal/writer"
	"github.com/savannahghi/mentorship-xls-form/internal/xlsform"
)

const (
	appName    = "Mentorship XLSForm Compiler"
	appVersion = "1.0.0"
	appDesc    = "Compiles a mentorship checklist and facility registry into an ODK/Enketo/Kobo XLSForm"
)

var (
	configPath  string
	verbose     bool
	showVersion bool
	outputDir   string
	writeReport bool
)

func init() {
	flag.StringVar(&configPath, "config", "config.yaml", "Path to configuration file")
	flag.StringVar(&configPath, "c", "config.yaml", "Path to configuration file (shorthand)")
	flag.BoolVar(&verbose, "verbose", false, "Enable verbose logging (DEBUG level)")
	flag.BoolVar(&verbose, "v", false, "Enable verbose logging (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.StringVar(&outputDir, "output", "", "Override output directory from config")
	flag.BoolVar(&writeReport, "report", false, "Also emit a .docx narrative compilation summary")
}

func main() {
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
	if writeReport {
		cfg.Output.WriteReport = true
	}

	logPath := filepath.Join(cfg.Output.Dir, "mentorship_xlsform.log")
	if err := logger.Init(os.Stdout, logPath, verbose); err != nil {
		fmt.Printf("❌ Failed to initialize logger: %v\n", err)
		return 1
	}
	defer logger.Close()

	if err := compile(cfg); err != nil {
		logger.Error("Compilation failed: %v", err)
		return 1
	}

	logger.Info("✅ Compilation complete. Check [%s] directory.", cfg.Output.Dir)
	return 0
}

func waitForEnter() {
	fmt.Println("\n==========================================")
	fmt.Println("Execution Finished. Press 'Enter' to exit.")
	fmt.Println("==========================================")
	bufio.NewReader(os.Stdin).ReadBytes('\n')
}

func compile(cfg *config.Config) error {
	phases := []ui.Phase{ui.PhaseLoading, ui.PhaseCompiling, ui.PhaseWriting}
	if cfg.Output.WriteReport {
		phases = append(phases, ui.PhaseReporting)
	}
	pipeline := ui.NewPipeline(phases)

	var checklistLoader loader.ChecklistLoader = excelloader.Loader{Path: cfg.Input.ChecklistWorkbook}
	var facilityLoader loader.FacilityLoader = jsonloader.Loader{Path: cfg.Input.FacilityRegistry}

	loadBar := pipeline.NextPhase(2)
	logger.Info("Phase 1: %s...", pipeline.CurrentPhase().Describe())

	checklist, err := checklistLoader.LoadChecklist()
	if err != nil {
		return fmt.Errorf("loading checklist workbook: %w", err)
	}
	loadBar.Increment()

	facilities, err := facilityLoader.LoadFacilities()
	if err != nil {
		return fmt.Errorf("loading facility registry: %w", err)
	}
	loadBar.Increment()
	loadBar.Finish()

	compileBar := pipeline.NextPhase(1)
	logger.Info("Phase 2: %s...", pipeline.CurrentPhase().Describe())
	form, err := lowering.Compile(checklist, facilities)
	if err != nil {
		logger.LogCompileError(checklist.ID, err)
		return fmt.Errorf("compiling checklist: %w", err)
	}
	compileBar.Increment()
	compileBar.Finish()
	applyFormSettings(form, cfg)

	writeBar := pipeline.NextPhase(1)
	logger.Info("Phase 3: %s...", pipeline.CurrentPhase().Describe())
	if err := writer.Write(form, cfg.GetOutputPath()); err != nil {
		return fmt.Errorf("writing XLSForm workbook: %w", err)
	}
	writeBar.Increment()
	writeBar.Finish()

	if cfg.Output.WriteReport {
		reportBar := pipeline.NextPhase(1)
		logger.Info("Phase 4: %s...", pipeline.CurrentPhase().Describe())
		if err := report.Write(checklist, form, cfg.GetReportPath()); err != nil {
			return fmt.Errorf("writing compilation report: %w", err)
		}
		reportBar.Increment()
		reportBar.Finish()
	}

	pipeline.Finish()
	return nil
}

// applyFormSettings overrides the compiled settings sheet's configurable
// fields with the CLI's config, keeping lowering.Compile a pure function
// of (Checklist, Facilities) with no config dependency of its own.
func applyFormSettings(form *xlsform.XLSForm, cfg *config.Config) {
	if cfg.Form.DefaultLanguage != "" {
		form.Settings.DefaultLanguage = cfg.Form.DefaultLanguage
	}
	if cfg.Form.Style != "" {
		form.Settings.Style = cfg.Form.Style
	}
	if cfg.Form.Version != "" {
		form.Settings.Version = cfg.Form.Version
	}
}

func printBanner() {
	banner := `
╔═══════════════════════════════════════════════════════════╗
║              MENTORSHIP XLSFORM COMPILER v1.0.0            ║
║      Checklist + Facility Registry → ODK/Enketo XLSForm    ║
╚═══════════════════════════════════════════════════════════╝
`
	fmt.Println(banner)
}
