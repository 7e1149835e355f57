package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaletteKind(t *testing.T) {
	obj := ArtworkPalette{Objects: map[string]string{"樹木": "綠色"}}
	assert.Equal(t, PaletteObjects, obj.Kind())

	col := ArtworkPalette{Colors: []string{"紅色", "藍色"}}
	assert.Equal(t, PaletteColors, col.Kind())
	assert.False(t, col.Empty())
	assert.True(t, ArtworkPalette{}.Empty())
}

func TestColorNamesOrderAndDedupe(t *testing.T) {
	col := ArtworkPalette{Colors: []string{"紅色", "藍色", "紅色", ""}}
	assert.Equal(t, []string{"紅色", "藍色"}, col.ColorNames())

	obj := ArtworkPalette{Objects: map[string]string{
		"天空": "藍色",
		"山":  "綠色",
		"湖":  "藍色",
	}}
	// Entity-key order, duplicates collapsed.
	assert.Equal(t, []string{"藍色", "綠色"}, obj.ColorNames())
}

func TestArtworkDataJSONShape(t *testing.T) {
	data := ArtworkData{
		Description:        "一幅描繪湖景的畫",
		ArtisticConception: "寧靜",
		ArtworkPalette:     ArtworkPalette{Colors: []string{"藍色"}},
	}
	b, err := json.Marshal(data)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	assert.Contains(t, m, "description")
	assert.Contains(t, m, "artistic_conception")
	assert.Contains(t, m, "color")
	assert.NotContains(t, m, "object")
}

func TestGroundingText(t *testing.T) {
	rec := &ConversationRecord{
		ArtworkData:             ArtworkData{Description: "基本描述"},
		PersonalizedDescription: "個人化描述",
	}

	text, personalized := rec.GroundingText("", false)
	assert.Equal(t, "基本描述", text)
	assert.False(t, personalized)

	text, personalized = rec.GroundingText("", true)
	assert.Equal(t, "個人化描述", text)
	assert.True(t, personalized)

	text, personalized = rec.GroundingText("客戶端提供的描述", true)
	assert.Equal(t, "客戶端提供的描述", text)
	assert.True(t, personalized)

	// No personalized variant stored yet: fall back to base.
	bare := &ConversationRecord{ArtworkData: ArtworkData{Description: "基本描述"}}
	text, personalized = bare.GroundingText("", true)
	assert.Equal(t, "基本描述", text)
	assert.False(t, personalized)
}

func TestAppendQuestionAnswerOrdering(t *testing.T) {
	rec := &ConversationRecord{ConversationHistory: []Message{
		{Role: RoleUser, Content: "seed"},
		{Role: RoleAssistant, Content: "seed"},
	}}
	rec.AppendQuestion("這幅畫的主色是什麼？")
	rec.AppendAnswer("主色是藍色。")

	require.Len(t, rec.ConversationHistory, 4)
	assert.Equal(t, RoleUser, rec.ConversationHistory[2].Role)
	assert.Equal(t, RoleAssistant, rec.ConversationHistory[3].Role)
}
