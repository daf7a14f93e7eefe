package render

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/dlclint/dlclint/internal/schema"
)

type markdownRenderer struct{}

var mdTemplate = template.Must(template.New("result").Parse(`# Compliance Analysis

**Overall risk:** {{ .OverallRisk }}
{{ if .Meta.Tier }}**Tier:** {{ .Meta.Tier }}
{{ end }}
{{ .Summary }}
{{ if .Issues }}
---

## Issues
{{ range .Issues }}
### {{ .ID }} · {{ .Severity }} · {{ .Category }}
**{{ .Title }}**

{{ .Description }}
{{ if .AffectedDocuments }}
*Affected documents:* {{ range $i, $d := .AffectedDocuments }}{{ if $i }}, {{ end }}{{ $d }}{{ end }}
{{ end }}**Recommendation:** {{ .Recommendation }}
{{ end }}{{ end }}{{ if .ChecksPassed }}
---

## Checks Passed
{{ range .ChecksPassed }}
- {{ .ID }}: {{ .Title }}
{{ end }}{{ end }}{{ if .ChecksSkipped }}
---

## Checks Skipped
{{ range .ChecksSkipped }}
- {{ .ID }}: {{ .Title }}
{{ end }}{{ end }}
---
*{{ .Meta.Tool }} {{ .Meta.Version }}*
`))

func (r *markdownRenderer) Render(result *schema.AnalysisResult) ([]byte, error) {
	var buf bytes.Buffer
	if err := mdTemplate.Execute(&buf, result); err != nil {
		return nil, fmt.Errorf("rendering markdown: %w", err)
	}
	return buf.Bytes(), nil
}
