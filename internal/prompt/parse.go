package prompt

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/visionbridge/visionbridge/internal/models"
)

// CleanModelJSON strips code-fence backticks and a leading language-tag line
// ("json" or "```json") from a raw model response.
func CleanModelJSON(raw string) string {
	cleaned := strings.TrimSpace(strings.Trim(strings.TrimSpace(raw), "`"))
	lines := strings.Split(cleaned, "\n")
	if len(lines) > 0 {
		switch strings.ToLower(strings.TrimSpace(lines[0])) {
		case "json", "```json":
			lines = lines[1:]
		}
	}
	return strings.Join(lines, "\n")
}

// ParseAnalysis decodes the initial-analysis response into ArtworkData and
// validates the required fields for the given schema variant. Any deviation
// from the expected shape is a hard error; there is no partial recovery.
func ParseAnalysis(raw string, kind models.PaletteKind) (models.ArtworkData, error) {
	var data models.ArtworkData
	if err := json.Unmarshal([]byte(CleanModelJSON(raw)), &data); err != nil {
		return models.ArtworkData{}, fmt.Errorf("decode analysis response: %w", err)
	}
	if data.Description == "" {
		return models.ArtworkData{}, fmt.Errorf("analysis response missing description")
	}
	if data.ArtisticConception == "" {
		return models.ArtworkData{}, fmt.Errorf("analysis response missing artistic_conception")
	}
	switch kind {
	case models.PaletteObjects:
		if len(data.Objects) == 0 {
			return models.ArtworkData{}, fmt.Errorf("analysis response missing object field")
		}
	default:
		if len(data.Colors) == 0 {
			return models.ArtworkData{}, fmt.Errorf("analysis response missing color field")
		}
	}
	return data, nil
}
