package main

import (
	"flag"
	"fmt"
	"os"
)

// cliFlags holds the parsed command line arguments
type cliFlags struct {
	configFile     string
	sourceFile     string
	comparisonDir  string
	comparisonList []string
	outputDir      string
	granularity    string
	ignoreCase     bool
	ignorePunct    bool
	keepBoiler     bool
	rawWhitespace  bool
	csvSummary     bool
}

func parseFlags() cliFlags {
	var f cliFlags

	configFile := flag.String("globalconfig", "", "Path to the global YAML/JSON configuration file. If not set, searches default locations.")
	configFileAlias := flag.String("gc", "", "Alias for --globalconfig")

	sourceFile := flag.String("source", "", "Path to the source/reference RTF file.")
	sourceFileAlias := flag.String("s", "", "Alias for --source")

	comparisonDir := flag.String("compare-dir", "", "Directory of RTF files to compare against the source. Ignored when comparison files are given as positional arguments.")
	comparisonDirAlias := flag.String("cd", "", "Alias for --compare-dir")

	outputDir := flag.String("output-dir", "", "Directory for the generated report and CSV summary (overrides config file if set).")
	outputDirAlias := flag.String("o", "", "Alias for --output-dir")

	flag.StringVar(&f.granularity, "granularity", "", "Diff granularity: word or line (overrides config file if set)")
	flag.BoolVar(&f.ignoreCase, "ignore-case", false, "Ignore letter case when comparing")
	flag.BoolVar(&f.ignorePunct, "ignore-punctuation", false, "Ignore punctuation when comparing")
	flag.BoolVar(&f.keepBoiler, "keep-boilerplate", false, "Keep boilerplate lines instead of filtering them")
	flag.BoolVar(&f.rawWhitespace, "raw-whitespace", false, "Skip whitespace normalization")
	flag.BoolVar(&f.csvSummary, "csv", true, "Also write a CSV summary next to the report")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [comparison files...]\n\nCompares one or more RTF documents against a source/reference document\nand writes a consolidated HTML diff report.\n\nFlags:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	// Consolidate alias flags
	f.configFile = firstNonEmpty(*configFile, *configFileAlias)
	f.sourceFile = firstNonEmpty(*sourceFile, *sourceFileAlias)
	f.comparisonDir = firstNonEmpty(*comparisonDir, *comparisonDirAlias)
	f.outputDir = firstNonEmpty(*outputDir, *outputDirAlias)
	f.comparisonList = flag.Args()

	return f
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
