package reporter

import (
	"html/template"
	"time"
)

// GetReportTemplateFunctions returns the functions available to report templates
func GetReportTemplateFunctions() template.FuncMap {
	return template.FuncMap{
		"safeHTML": func(s string) template.HTML {
			return template.HTML(s)
		},
		"statusLabel": func(hasDifferences bool) string {
			if hasDifferences {
				return "Differences Found"
			}
			return "No Differences"
		},
		"statusClass": func(hasDifferences bool) string {
			if hasDifferences {
				return "diff-changed"
			}
			return "diff-unchanged"
		},
		"formatTime": func(t time.Time, layout string) string {
			if t.IsZero() {
				return "N/A"
			}
			return t.Format(layout)
		},
		"inc": func(i int) int {
			return i + 1
		},
	}
}
