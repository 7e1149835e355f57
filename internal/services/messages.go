package services

// User-facing messages surfaced through the {"error": ...} response shape.
const (
	MsgUploadFirst       = "請先上傳和分析圖片"
	MsgRecordExpired     = "對話記錄已失效，請重新上傳圖片"
	MsgLabelRequired     = "請提供個人化資訊"
	MsgQuestionRequired  = "請提供問題"
	MsgAnalyzeFailed     = "分析圖片時發生錯誤"
	MsgPersonalizeFailed = "生成個人化描述時發生錯誤"
	MsgAskFailed         = "處理請求時發生錯誤"
)

// Creativity levels per pipeline: the initial analysis runs hot for richer
// narration, personalization slightly cooler, follow-up answers near-literal
// to stay grounded in the artwork.
const (
	analysisTemperature    float32 = 1.0
	personalizeTemperature float32 = 0.7
	followUpTemperature    float32 = 0.2
)
