package services

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/visionbridge/visionbridge/internal/models"
	"github.com/visionbridge/visionbridge/internal/prompt"
	"github.com/visionbridge/visionbridge/internal/providers/llm"
	"github.com/visionbridge/visionbridge/internal/storage"
	"github.com/visionbridge/visionbridge/internal/store"
	"github.com/visionbridge/visionbridge/internal/utils"
)

// DialogueService answers follow-up questions grounded in the analyzed
// artwork and the accumulated history.
type DialogueService interface {
	Ask(ctx context.Context, conversationID, question string, usePersonalized bool, clientPersonalized string) (answer string, history []models.Message, err error)
	History(ctx context.Context, conversationID string) ([]models.Message, error)
}

type dialogueService struct {
	model   llm.Provider
	records store.RecordStore
	images  storage.ImageStore
	log     *logrus.Logger
}

func NewDialogueService(model llm.Provider, records store.RecordStore, images storage.ImageStore, log *logrus.Logger) DialogueService {
	return &dialogueService{model: model, records: records, images: images, log: log}
}

func (s *dialogueService) Ask(ctx context.Context, conversationID, question string, usePersonalized bool, clientPersonalized string) (string, []models.Message, error) {
	const op = "DialogueService.Ask"

	if conversationID == "" {
		return "", nil, utils.E(utils.CodeNotFound, op, MsgUploadFirst, nil)
	}
	if question == "" {
		return "", nil, utils.E(utils.CodeInvalidArgument, op, MsgQuestionRequired, nil)
	}

	rec, err := s.records.Load(ctx, conversationID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return "", nil, utils.E(utils.CodeNotFound, op, MsgRecordExpired, err)
		}
		return "", nil, utils.E(utils.CodeInternal, op, MsgRecordExpired, err)
	}

	// The question is recorded before the model call, so a failed call
	// leaves it dangling in history. Fail-open, kept on purpose.
	rec.AppendQuestion(question)
	if err := s.records.Save(ctx, rec); err != nil {
		return "", nil, utils.E(utils.CodeInternal, op, MsgAskFailed, err)
	}

	grounding, personalized := rec.GroundingText(clientPersonalized, usePersonalized)
	text := prompt.FollowUp(grounding, rec.ArtworkData.ArtisticConception, rec.ConversationHistory, question, personalized)

	data, format, err := s.images.Open(ctx, rec.ImagePath)
	if err != nil {
		return "", nil, utils.E(utils.CodeInternal, op, MsgAskFailed, err)
	}

	answer, err := s.model.Generate(ctx, text, llm.Image{Format: format, Data: data}, llm.Options{
		Temperature: followUpTemperature,
	})
	if err != nil {
		return "", nil, utils.E(utils.CodeUnavailable, op, MsgAskFailed, err)
	}

	rec.AppendAnswer(answer)
	if err := s.records.Save(ctx, rec); err != nil {
		return "", nil, utils.E(utils.CodeInternal, op, MsgAskFailed, err)
	}

	s.log.WithFields(logrus.Fields{
		"conversation_id": conversationID,
		"personalized":    personalized,
		"history_len":     len(rec.ConversationHistory),
	}).Info("follow-up answered")

	return answer, rec.ConversationHistory, nil
}

func (s *dialogueService) History(ctx context.Context, conversationID string) ([]models.Message, error) {
	const op = "DialogueService.History"

	if conversationID == "" {
		return nil, utils.E(utils.CodeNotFound, op, MsgUploadFirst, nil)
	}
	rec, err := s.records.Load(ctx, conversationID)
	if err != nil {
		return nil, utils.E(utils.CodeNotFound, op, MsgRecordExpired, err)
	}
	return rec.ConversationHistory, nil
}
