package render

import (
	"encoding/json"

	"github.com/dlclint/dlclint/internal/schema"
)

type jsonRenderer struct{}

func (r *jsonRenderer) Render(result *schema.AnalysisResult) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}
