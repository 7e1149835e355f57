package models

import "time"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single turn in a conversation history.
type Message struct {
	Role    string `json:"role"` // "user" | "assistant"
	Content string `json:"content"`
}

// ArtworkData holds the structured result of the initial image analysis.
// Description and ArtisticConception are immutable once the record exists.
// The embedded palette keeps the model's own field names ("object"/"color")
// in the persisted document.
type ArtworkData struct {
	Description        string `json:"description"`
	ArtisticConception string `json:"artistic_conception"`
	ArtworkPalette
}

// ConversationRecord is the full persisted state for one analyzed artwork
// and its dialogue. One record per uploaded image; the image binding never
// changes after creation.
type ConversationRecord struct {
	ID          string      `json:"id"`
	ArtworkData ArtworkData `json:"artwork_data"`
	ImagePath   string      `json:"image_path"`
	CreatedAt   time.Time   `json:"created_at"`

	// Mutable personalization state.
	PersonalizedData        string            `json:"personalized_data,omitempty"`
	ColorImpressions        map[string]string `json:"color_impressions,omitempty"`
	PersonalizedDescription string            `json:"personalized_description,omitempty"`

	// Append-only; the first two entries are seed turns.
	ConversationHistory []Message `json:"conversation_history"`
}

// SeedTurns is the number of synthetic turns a record starts with.
const SeedTurns = 2

// AppendQuestion records a user question. It is written before the model is
// called, so a failed call leaves the question dangling in history.
func (r *ConversationRecord) AppendQuestion(question string) {
	r.ConversationHistory = append(r.ConversationHistory, Message{Role: RoleUser, Content: question})
}

// AppendAnswer records the assistant answer paired with the last question.
func (r *ConversationRecord) AppendAnswer(answer string) {
	r.ConversationHistory = append(r.ConversationHistory, Message{Role: RoleAssistant, Content: answer})
}

// GroundingText selects the description variant follow-up answers are
// grounded against: the personalized rendering when one is asked for (or
// stored), otherwise the base description.
func (r *ConversationRecord) GroundingText(clientPersonalized string, usePersonalized bool) (text string, personalized bool) {
	if usePersonalized && clientPersonalized != "" {
		return clientPersonalized, true
	}
	if usePersonalized && r.PersonalizedDescription != "" {
		return r.PersonalizedDescription, true
	}
	return r.ArtworkData.Description, false
}
