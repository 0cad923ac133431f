package reporter

const (
	// DefaultReportTitle is used when no title is configured
	DefaultReportTitle = "RTF Comparison Report"

	// maxRenderedLineLength bounds how many characters of a context line
	// are rendered before truncation
	maxRenderedLineLength = 100

	// contextSubLines is how many non-blank sub-lines are shown at each
	// edge of an unchanged span
	contextSubLines = 3
)

// reportCSS is embedded into every rendered report so diff output is
// self-contained
const reportCSS = `<style>
.diff-container { font-family: 'Courier New', monospace; font-size: 14px; }
.diff-table { width: 100%; border-collapse: collapse; margin: 20px 0; }
.diff-table th, .diff-table td { padding: 8px; border: 1px solid #ddd; vertical-align: top; }
.diff-table th { background-color: #f5f5f5; font-weight: bold; }
.line-number { background-color: #f0f0f0; color: #666; text-align: right; width: 50px; }
.diff-added { background-color: #d4edda; }
.diff-deleted { background-color: #f8d7da; }
.diff-changed { background-color: #fff3cd; }
.word-added { background-color: #28a745; color: white; padding: 2px 4px; border-radius: 3px; }
.word-deleted { background-color: #dc3545; color: white; padding: 2px 4px; border-radius: 3px; text-decoration: line-through; }
.summary-box { background-color: #e9ecef; padding: 15px; border-radius: 5px; margin: 20px 0; }
.stats { display: flex; gap: 20px; margin: 10px 0; }
.stat-item { padding: 10px; border-radius: 5px; text-align: center; }
.stat-added { background-color: #d4edda; color: #155724; }
.stat-deleted { background-color: #f8d7da; color: #721c24; }
.stat-unchanged { background-color: #d1ecf1; color: #0c5460; }
.legend { background-color: #f8f9fa; padding: 10px; border-radius: 5px; margin: 10px 0; }
.legend-item { display: inline-block; margin-right: 15px; }
.diff-unchanged { color: #666; }
.file-header { background-color: #007bff; color: white; padding: 15px; border-radius: 5px; margin: 20px 0; }
.context-line { background-color: #f8f9fa; }
.char-added { background-color: #9be9a8; }
.char-deleted { background-color: #f5b7bd; }
</style>`
