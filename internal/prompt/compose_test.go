package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/visionbridge/visionbridge/internal/models"
)

func TestCleanModelJSON(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"bare", `{"a":1}`, `{"a":1}`},
		{"fenced", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"lang tag line", "json\n{\"a\":1}", `{"a":1}`},
		{"backticks only", "`{\"a\":1}`", `{"a":1}`},
		{"surrounding whitespace", "  \n```json\n{\"a\":1}\n```\n ", `{"a":1}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, strings.TrimSpace(CleanModelJSON(tc.raw)))
		})
	}
}

func TestParseAnalysisObjectVariant(t *testing.T) {
	raw := "```json\n{\"description\":\"一幅描繪湖景的畫\",\"artistic_conception\":\"寧靜\",\"object\":{\"天空\":\"藍色\"}}\n```"
	data, err := ParseAnalysis(raw, models.PaletteObjects)
	require.NoError(t, err)
	assert.Equal(t, "一幅描繪湖景的畫", data.Description)
	assert.Equal(t, "寧靜", data.ArtisticConception)
	assert.Equal(t, "藍色", data.Objects["天空"])
}

func TestParseAnalysisColorVariant(t *testing.T) {
	raw := `{"description":"d","artistic_conception":"c","color":["紅色","藍色"]}`
	data, err := ParseAnalysis(raw, models.PaletteColors)
	require.NoError(t, err)
	assert.Equal(t, []string{"紅色", "藍色"}, data.Colors)
}

func TestParseAnalysisHardErrors(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		kind models.PaletteKind
	}{
		{"invalid json", "not json", models.PaletteObjects},
		{"missing description", `{"artistic_conception":"c","object":{"a":"b"}}`, models.PaletteObjects},
		{"missing conception", `{"description":"d","object":{"a":"b"}}`, models.PaletteObjects},
		{"missing object", `{"description":"d","artistic_conception":"c"}`, models.PaletteObjects},
		{"missing color", `{"description":"d","artistic_conception":"c"}`, models.PaletteColors},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseAnalysis(tc.raw, tc.kind)
			assert.Error(t, err)
		})
	}
}

func TestAnalysisTemplatePerVariant(t *testing.T) {
	obj := Analysis(models.PaletteObjects)
	assert.Contains(t, obj, "口述影像原則")
	assert.Contains(t, obj, `"object"`)
	assert.NotContains(t, obj, `3. "color"`)

	col := Analysis(models.PaletteColors)
	assert.Contains(t, col, `"color"`)
	assert.NotContains(t, col, `3. "object"`)
}

func TestStripColorSuffix(t *testing.T) {
	assert.Equal(t, "紅", StripColorSuffix("紅色"))
	assert.Equal(t, "藍", StripColorSuffix("藍"))
}

// Given artwork colors 紅色/藍色 and lookup results keyed by stripped color
// names, the personalization prompt carries both cultural phrases.
func TestPersonalizationPromptCulturalPhrases(t *testing.T) {
	art := models.ArtworkData{
		Description:        "一幅描繪日出的畫",
		ArtisticConception: "熱烈",
		ArtworkPalette:     models.ArtworkPalette{Colors: []string{"紅色", "藍色"}},
	}
	cultural := map[string][]string{
		"紅": {"熱情"},
		"藍": {"寧靜"},
	}

	p := Personalization(art, "日本", nil, cultural)
	assert.Contains(t, p, "日本")
	assert.Contains(t, p, "紅：熱情")
	assert.Contains(t, p, "藍：寧靜")
	assert.Contains(t, p, "一幅描繪日出的畫")
}

func TestPersonalizationPromptImpressions(t *testing.T) {
	art := models.ArtworkData{
		Description:        "d",
		ArtisticConception: "c",
		ArtworkPalette:     models.ArtworkPalette{Objects: map[string]string{"天空": "藍色"}},
	}
	p := Personalization(art, "台灣", map[string]string{"藍色": "海洋的自由", "紅色": ""}, nil)
	assert.Contains(t, p, "藍色：海洋的自由")
	// Empty impressions are skipped.
	assert.NotContains(t, p, "紅色：")
	// Object palette rendered as JSON.
	assert.Contains(t, p, "天空")
}

func TestFollowUpPromptWindow(t *testing.T) {
	history := []models.Message{
		{Role: models.RoleUser, Content: "seed intent"},
		{Role: models.RoleAssistant, Content: "seed summary"},
		{Role: models.RoleUser, Content: "第一個問題"},
		{Role: models.RoleAssistant, Content: "第一個回答"},
		{Role: models.RoleUser, Content: "最新的問題"}, // just appended
	}

	p := FollowUp("基本描述", "寧靜", history, "最新的問題", false)
	assert.Contains(t, p, "# 畫作描述")
	assert.Contains(t, p, "問題：第一個問題")
	assert.Contains(t, p, "回答：第一個回答")
	// Seeds and the just-appended question stay out of the excerpt.
	assert.NotContains(t, p, "seed intent")
	assert.NotContains(t, p, "問題：最新的問題")
	assert.Contains(t, p, "# 我的問題是\n最新的問題")
}

func TestFollowUpPromptNoHistoryWindow(t *testing.T) {
	history := []models.Message{
		{Role: models.RoleUser, Content: "seed intent"},
		{Role: models.RoleAssistant, Content: "seed summary"},
		{Role: models.RoleUser, Content: "第一個問題"},
	}
	p := FollowUp("個人化描述", "寧靜", history, "第一個問題", true)
	assert.Contains(t, p, "# 畫作個人化描述")
	assert.NotContains(t, p, "# 先前的對話內容")
}

func TestSeedSummaryEmbedsAnalysis(t *testing.T) {
	s := SeedSummary("描述文字", "意境文字")
	assert.Contains(t, s, "描述文字")
	assert.Contains(t, s, "意境：意境文字")
}
