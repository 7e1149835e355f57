// Package prompt renders every piece of model-input text. Keeping the
// narration style guide and the safety constraints in one place keeps tone
// consistent across calls even though the model itself is stateless.
package prompt

// styleGuide is the versioned audio-description style guide shared by the
// initial analysis. Objective, spatially anchored, sensory, third person;
// no speculation, no second-person address, color words preserved.
const styleGuide = `請依照口述影像原則來描述這幅畫的內容，目標是要依照文字就能讓聽者想像此畫作。

# 畫作描述
## 口述影像原則
- 描述應該是客觀的，避免主觀情緒或詮釋性用語。
- 使用簡單明瞭的語言，避免使用專業術語或難懂的詞彙。
- 描述的長度應該適中，既要詳細又不冗長，讓讀者能夠快速理解畫作的內容。
- 提到畫面中的物件時，請用上、下、左、右、遠、近來描述該物件在畫面中的絕對位置。
- 使用更具象化、可觸知的描述，用比喻與觸覺可想像的形容，讓讀者能夠在腦海中形成清晰的畫面。
- 適度引導聽者想像畫面可能的場景或情境，但避免主觀臆測。

## 口述影像描述順序
1. 完形與整體印象
    - 先提供畫面的整體視覺印象，例如色調、構圖、氛圍等。
    - 描述主要物件的位置關係、整體結構與視覺風格（如筆觸、材質感、光線等）。
    - 可適度引導聽者想像畫面可能的場景或情境
2. 區域與構成分析
    - 將畫面劃分為數個區塊（如左／中／右、上／下、前景／背景），有邏輯地描述各區塊。
    - 說明主體與背景、人物與物件、動靜對比、空間深度、顏色對比等構造特徵。
3. 結語與情感總結
    - 在結尾整理畫面的整體印象，重申主體與畫面特徵。
    - 可指出畫面可能營造的情緒氛圍（如寧靜、壓迫、歡愉），但避免主觀臆測。
    - 若畫面有敘事性，可引導「可能的事件」或「未說出口的情境」，例如：「彷彿畫中人正準備轉身離去」等。

## 觀畫重點
- 畫面的主題：畫作的主題是什麼？是人物、風景、靜物還是抽象？
- 色彩與光線：畫面中使用了哪些顏色？是否有顏色上的對比？光線的來源和強度如何？
- 筆觸與質感：筆觸是細膩柔和、光滑精緻，還是粗獷有力、充滿動感？
- 人物的特徵：如果畫面中有人物，請描述它們的姿態、表情。

# 畫作意境
- 請用關鍵字來描述意境
- 畫面給人的第一感覺是什麼？是寧靜的、壓抑的、歡快的、神祕的？`

// commonRequirements closes the analysis prompt; the JSON field list is
// appended per schema variant.
const commonRequirements = `# 要求
- 請勿用不確定的口吻描述，不確定的細節不必提到
- 請保留顏色的描述，例如「紅色的花朵」或「藍色的天空」，而不是「花朵」或「天空」。
- 請直接輸出繁體中文的描述內容，不需要列點式描述，請用語意通順的一個段落描述畫面。
- 請不要提到「觀者」等詞彙，請用第三人稱的方式描述畫面。`

// objectSection asks for an entity→color mapping (object schema variant).
const objectSection = `# 畫作物件
- 請列出畫面中的物件，並附上一種主要顏色就好。
- 請使用常見的基本色系
- 格式：{"實體":"顏色"}，例如:{"樹木":"綠色"}，{"天空":"藍色"}`

const objectJSONFields = `- 請回傳JSON格式輸出，包含以下欄位：
    1. "description": "畫作描述"
    2. "artistic_conception": "畫作意境"
    3. "object": {"實體":"顏色"}`

// colorSection asks for a flat list of dominant colors (color schema variant).
const colorSection = `# 畫作顏色
- 請列出畫面中使用的主要顏色，依據在畫面中的份量排序。
- 請使用常見的基本色系
- 格式：["顏色1","顏色2"]，例如:["綠色","藍色"]`

const colorJSONFields = `- 請回傳JSON格式輸出，包含以下欄位：
    1. "description": "畫作描述"
    2. "artistic_conception": "畫作意境"
    3. "color": ["顏色1","顏色2"]`

// followUpPreamble grounds follow-up answers and tells the model to decline
// anything not inferable from the artwork.
const followUpPreamble = `基於我們之前的對話和畫作圖像，不需要列點式描述，請用語意通順的一個段落回答問題。
請只回答與畫作的畫面直接相關的內容，如畫中的細節、技術、內容。
如果無法從畫面中判斷，請誠實說明，如果與畫作無關的問題，請告知「與畫作內容無關」。`

// Seed turn texts for a freshly analyzed conversation.
const (
	SeedSystemIntent = "你是一個藝術評論專家，專門解析畫作細節。請基於畫面內容回答問題，避免臆測。請用繁體中文回答。"

	seedSummaryFormat = "我已經分析了這幅畫作，以下是基本描述：\n\n%s\n\n意境：%s\n\n你可以問我關於這幅畫的任何細節。"
)
