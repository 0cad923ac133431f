package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aleister1102/rtfcompare/internal/common"
	"github.com/aleister1102/rtfcompare/internal/comparer"
	"github.com/aleister1102/rtfcompare/internal/config"
	"github.com/aleister1102/rtfcompare/internal/exporter"
	"github.com/aleister1102/rtfcompare/internal/extractor"
	"github.com/aleister1102/rtfcompare/internal/logger"
	"github.com/aleister1102/rtfcompare/internal/reporter"
	"github.com/rs/zerolog"
)

func main() {
	flags := parseFlags()

	if flags.sourceFile == "" {
		log.Fatalln("[FATAL] --source argument is required")
	}

	gCfg, err := config.LoadGlobalConfig(flags.configFile, zerolog.Nop())
	if err != nil {
		log.Fatalf("[FATAL] Main: Could not load global config using path '%s': %v", flags.configFile, err)
	}
	applyFlagOverrides(gCfg, flags)

	if gCfg.ReporterConfig.OutputDir != "" {
		if err := os.MkdirAll(gCfg.ReporterConfig.OutputDir, 0755); err != nil {
			log.Fatalf("[FATAL] Main: Could not create report output directory '%s': %v", gCfg.ReporterConfig.OutputDir, err)
		}
	}

	if err := config.ValidateConfig(gCfg); err != nil {
		log.Fatalf("[FATAL] Main: Configuration validation failed: %v", err)
	}

	zLogger, err := logger.New(gCfg.LogConfig)
	if err != nil {
		log.Fatalf("[FATAL] Main: Could not initialize logger: %v", err)
	}

	if err := run(gCfg, flags, zLogger); err != nil {
		zLogger.Fatal().Err(err).Msg("Comparison run failed")
	}
}

func run(gCfg *config.GlobalConfig, flags cliFlags, zLogger zerolog.Logger) error {
	source, err := loadDocument(flags.sourceFile)
	if err != nil {
		return common.WrapError(err, "failed to load source file")
	}

	comparisons, err := collectComparisons(flags)
	if err != nil {
		return err
	}

	service, err := comparer.NewServiceBuilder(zLogger).
		WithDiffConfig(gCfg.DiffConfig).
		WithExtractorConfig(gCfg.ExtractorConfig).
		Build()
	if err != nil {
		return common.WrapError(err, "failed to build comparer service")
	}

	opts := comparer.OptionsFromConfig(gCfg.DiffConfig, gCfg.ExtractorConfig)
	batch, err := service.CompareAll(source, comparisons, opts)
	if err != nil {
		if errors.Is(err, common.ErrContentTooLarge) {
			return fmt.Errorf("input too large for diffing: reduce the document size or raise diff_config limits: %w", err)
		}
		return err
	}

	reportPath, err := writeOutputs(gCfg, flags, batch, zLogger)
	if err != nil {
		return err
	}

	zLogger.Info().
		Int("compared_files", len(batch.Results)).
		Int("changed_files", batch.ChangedCount()).
		Str("report", reportPath).
		Msg("Comparison finished")
	fmt.Printf("Compared %d file(s) against %s: %d with differences.\nReport: %s\n",
		len(batch.Results), batch.SourceFilename, batch.ChangedCount(), reportPath)
	return nil
}

// applyFlagOverrides lets command line flags take precedence over the
// config file
func applyFlagOverrides(gCfg *config.GlobalConfig, flags cliFlags) {
	if flags.granularity != "" {
		gCfg.DiffConfig.Granularity = flags.granularity
	}
	if flags.outputDir != "" {
		gCfg.ReporterConfig.OutputDir = flags.outputDir
	}
	if flags.ignoreCase {
		gCfg.DiffConfig.IgnoreCase = true
	}
	if flags.ignorePunct {
		gCfg.DiffConfig.IgnorePunctuation = true
	}
	if flags.keepBoiler {
		gCfg.ExtractorConfig.IgnoreBoilerplate = false
	}
	if flags.rawWhitespace {
		gCfg.ExtractorConfig.NormalizeWhitespace = false
	}
}

func loadDocument(path string) (comparer.Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return comparer.Document{}, err
	}

	filename := filepath.Base(path)
	if err := extractor.ValidateDocument(filename, content); err != nil {
		return comparer.Document{}, common.WrapErrorf(err, "'%s' is not a supported document", path)
	}
	return comparer.Document{Filename: filename, Content: content}, nil
}

// collectComparisons resolves comparison documents from positional
// arguments, falling back to supported files in --compare-dir
func collectComparisons(flags cliFlags) ([]comparer.Document, error) {
	paths := flags.comparisonList
	if len(paths) == 0 {
		if flags.comparisonDir == "" {
			return nil, common.NewError("no comparison files given: pass file paths or --compare-dir")
		}

		entries, err := os.ReadDir(flags.comparisonDir)
		if err != nil {
			return nil, common.WrapError(err, "failed to scan comparison directory")
		}
		for _, entry := range entries {
			if entry.IsDir() || !extractor.IsSupportedExtension(entry.Name()) {
				continue
			}
			paths = append(paths, filepath.Join(flags.comparisonDir, entry.Name()))
		}
		sort.Strings(paths)
	}

	var docs []comparer.Document
	for _, path := range paths {
		doc, err := loadDocument(path)
		if err != nil {
			return nil, common.WrapErrorf(err, "failed to load comparison file '%s'", path)
		}
		docs = append(docs, doc)
	}
	if len(docs) == 0 {
		return nil, common.NewError("no comparison files found")
	}
	return docs, nil
}

// writeOutputs renders the consolidated report (and optionally the CSV
// summary) into the configured output directory
func writeOutputs(gCfg *config.GlobalConfig, flags cliFlags, batch *comparer.BatchResult, zLogger zerolog.Logger) (string, error) {
	reportBuilder, err := reporter.NewConsolidatedReportBuilder(gCfg.ReporterConfig, zLogger)
	if err != nil {
		return "", common.WrapError(err, "failed to build report builder")
	}

	report, err := reportBuilder.Build(batch.SourceFilename, batch.Results, batch.Timestamp)
	if err != nil {
		return "", common.WrapError(err, "failed to build consolidated report")
	}

	stamp := batch.Timestamp.Format("20060102_150405")
	fm := common.NewFileManager(zLogger)

	reportPath := filepath.Join(gCfg.ReporterConfig.OutputDir, fmt.Sprintf("rtf_comparison_report_%s.html", stamp))
	if err := fm.WriteFile(reportPath, []byte(report), 0o644); err != nil {
		return "", common.WrapError(err, "failed to write report")
	}

	if flags.csvSummary {
		csvPath := filepath.Join(gCfg.ReporterConfig.OutputDir, fmt.Sprintf("rtf_comparison_summary_%s.csv", stamp))
		var sb strings.Builder
		csvExporter := exporter.NewSummaryExporter(zLogger)
		if err := csvExporter.Write(&sb, batch.SourceFilename, batch.Results, batch.Timestamp); err != nil {
			return "", common.WrapError(err, "failed to build CSV summary")
		}
		if err := fm.WriteFile(csvPath, []byte(sb.String()), 0o644); err != nil {
			return "", common.WrapError(err, "failed to write CSV summary")
		}
	}

	return reportPath, nil
}
