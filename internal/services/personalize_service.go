package services

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/visionbridge/visionbridge/internal/prompt"
	"github.com/visionbridge/visionbridge/internal/providers/llm"
	mongorepo "github.com/visionbridge/visionbridge/internal/repositories/mongo"
	"github.com/visionbridge/visionbridge/internal/storage"
	"github.com/visionbridge/visionbridge/internal/store"
	"github.com/visionbridge/visionbridge/internal/utils"
)

// PersonalizeService re-renders the base description through a cultural and
// personal color-association lens.
type PersonalizeService interface {
	Personalize(ctx context.Context, conversationID, label string, colorImpressions map[string]string) (string, error)
}

type personalizeService struct {
	model   llm.Provider
	records store.RecordStore
	colors  mongorepo.ColorRepository
	images  storage.ImageStore
	log     *logrus.Logger
}

func NewPersonalizeService(model llm.Provider, records store.RecordStore, colors mongorepo.ColorRepository, images storage.ImageStore, log *logrus.Logger) PersonalizeService {
	return &personalizeService{model: model, records: records, colors: colors, images: images, log: log}
}

func (s *personalizeService) Personalize(ctx context.Context, conversationID, label string, colorImpressions map[string]string) (string, error) {
	const op = "PersonalizeService.Personalize"

	if conversationID == "" {
		return "", utils.E(utils.CodeNotFound, op, MsgUploadFirst, nil)
	}
	if label == "" {
		return "", utils.E(utils.CodeInvalidArgument, op, MsgLabelRequired, nil)
	}

	rec, err := s.records.Load(ctx, conversationID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return "", utils.E(utils.CodeNotFound, op, MsgRecordExpired, err)
		}
		return "", utils.E(utils.CodeInternal, op, MsgRecordExpired, err)
	}

	// Persist the supplied context first so it survives a failed model
	// call. Impressions are replaced wholesale.
	rec.PersonalizedData = label
	rec.ColorImpressions = colorImpressions
	if err := s.records.Save(ctx, rec); err != nil {
		return "", utils.E(utils.CodeInternal, op, MsgPersonalizeFailed, err)
	}

	cultural, err := s.colors.Descriptions(ctx, label, rec.ArtworkData.ColorNames())
	if err != nil {
		// Lookup failure degrades to "no cultural data found".
		s.log.WithError(err).WithField("locale", label).Warn("color lookup failed")
		cultural = map[string][]string{}
	}

	data, format, err := s.images.Open(ctx, rec.ImagePath)
	if err != nil {
		return "", utils.E(utils.CodeInternal, op, MsgPersonalizeFailed, err)
	}

	text, err := s.model.Generate(ctx,
		prompt.Personalization(rec.ArtworkData, label, colorImpressions, cultural),
		llm.Image{Format: format, Data: data},
		llm.Options{Temperature: personalizeTemperature},
	)
	if err != nil {
		return "", utils.E(utils.CodeUnavailable, op, MsgPersonalizeFailed, err)
	}

	rec.PersonalizedDescription = text
	if err := s.records.Save(ctx, rec); err != nil {
		return "", utils.E(utils.CodeInternal, op, MsgPersonalizeFailed, err)
	}

	s.log.WithFields(logrus.Fields{
		"conversation_id": conversationID,
		"locale":          label,
		"cultural_colors": len(cultural),
	}).Info("personalized description generated")

	return text, nil
}
