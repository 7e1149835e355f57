package prompt

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/visionbridge/visionbridge/internal/models"
)

// Analysis renders the initial-analysis template for the configured schema
// variant. The model is asked for a literal JSON document.
func Analysis(kind models.PaletteKind) string {
	var b strings.Builder
	b.WriteString(styleGuide)
	b.WriteString("\n\n")
	if kind == models.PaletteObjects {
		b.WriteString(objectSection)
	} else {
		b.WriteString(colorSection)
	}
	b.WriteString("\n\n")
	b.WriteString(commonRequirements)
	b.WriteString("\n")
	if kind == models.PaletteObjects {
		b.WriteString(objectJSONFields)
	} else {
		b.WriteString(colorJSONFields)
	}
	return b.String()
}

// SeedSummary is the assistant seed turn embedding the analysis result.
func SeedSummary(description, conception string) string {
	return fmt.Sprintf(seedSummaryFormat, description, conception)
}

// StripColorSuffix normalizes a palette color name to its lookup key,
// e.g. "紅色" → "紅".
func StripColorSuffix(color string) string {
	return strings.ReplaceAll(color, "色", "")
}

// Personalization renders the re-interpretation template: substitute the
// color adjectives of the base description according to the caller's
// cultural color semantics and personal impressions, keeping the original
// narrative structure and producing one flowing paragraph.
func Personalization(art models.ArtworkData, label string, impressions map[string]string, cultural map[string][]string) string {
	var b strings.Builder
	b.WriteString("請根據用戶的文化背景與對顏色的個人印象，重新解讀這幅畫作。\n\n")

	b.WriteString("# 畫作基本資訊\n## 基本描述\n")
	b.WriteString(art.Description)
	b.WriteString("\n\n## 意境\n")
	b.WriteString(art.ArtisticConception)
	b.WriteString("\n\n")

	if art.Kind() == models.PaletteObjects {
		b.WriteString("## 畫中物件與顏色\n")
		if enc, err := json.Marshal(art.Objects); err == nil {
			b.Write(enc)
		}
	} else {
		b.WriteString("## 畫面顏色\n")
		if enc, err := json.Marshal(art.Colors); err == nil {
			b.Write(enc)
		}
	}
	b.WriteString("\n\n# 用戶的文化背景\n")
	b.WriteString(label)
	b.WriteString("\n")

	if len(cultural) > 0 {
		b.WriteString("\n## 此文化中的顏色意涵\n")
		for _, color := range art.ColorNames() {
			key := StripColorSuffix(color)
			descs, ok := cultural[key]
			if !ok || len(descs) == 0 {
				continue
			}
			b.WriteString("- ")
			b.WriteString(key)
			b.WriteString("：")
			b.WriteString(strings.Join(descs, "、"))
			b.WriteString("\n")
		}
	}

	if colorInfo := impressionLines(impressions); colorInfo != "" {
		b.WriteString("\n# 用戶對顏色的個人印象\n")
		b.WriteString(colorInfo)
	}

	b.WriteString(`
# 任務
請根據上述文化背景與個人印象，對畫作的基本描述做修改，並保留基本描述的架構，使描述更加個人化
- 請將基本描述中所有顏色形容詞，依照文化意涵與個人印象替換
- 不需要列點式描述，請用語意通順的一個段落描述畫面
- 描述應當流暢自然，有個人風格，不要過於生硬或機械
`)
	return b.String()
}

func impressionLines(impressions map[string]string) string {
	if len(impressions) == 0 {
		return ""
	}
	var b strings.Builder
	for _, color := range sortedKeys(impressions) {
		impression := impressions[color]
		if impression == "" {
			continue
		}
		fmt.Fprintf(&b, "- %s色：%s\n", StripColorSuffix(color), impression)
	}
	return b.String()
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// FollowUp renders the grounded question template. history must already
// contain the just-appended question as its last entry; the excerpt window
// skips the two seed turns and that trailing question.
func FollowUp(grounding, conception string, history []models.Message, question string, personalized bool) string {
	var b strings.Builder
	b.WriteString(followUpPreamble)
	if personalized {
		b.WriteString("\n# 畫作個人化描述\n")
	} else {
		b.WriteString("\n# 畫作描述\n")
	}
	b.WriteString(grounding)
	b.WriteString("\n\n# 畫作意境\n")
	b.WriteString(conception)
	b.WriteString("\n")

	if len(history) > 3 {
		b.WriteString("# 先前的對話內容：\n")
		for i := 2; i < len(history)-1; i++ {
			msg := history[i]
			prefix := "問題："
			if msg.Role == models.RoleAssistant {
				prefix = "回答："
			}
			b.WriteString(prefix)
			b.WriteString(msg.Content)
			b.WriteString("\n\n")
		}
	}

	b.WriteString("# 我的問題是\n")
	b.WriteString(question)
	return b.String()
}
