package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/visionbridge/visionbridge/internal/models"
	"github.com/visionbridge/visionbridge/internal/prompt"
	"github.com/visionbridge/visionbridge/internal/providers/llm"
	"github.com/visionbridge/visionbridge/internal/store"
	"github.com/visionbridge/visionbridge/internal/utils"
)

// AnalysisService turns an uploaded artwork image into a structured
// description and a freshly seeded conversation record.
type AnalysisService interface {
	Analyze(ctx context.Context, img llm.Image, imagePath string, colorImpressions map[string]string) (*models.ConversationRecord, error)
}

type analysisService struct {
	model   llm.Provider
	records store.RecordStore
	variant models.PaletteKind
	log     *logrus.Logger
}

func NewAnalysisService(model llm.Provider, records store.RecordStore, variant models.PaletteKind, log *logrus.Logger) AnalysisService {
	return &analysisService{model: model, records: records, variant: variant, log: log}
}

func (s *analysisService) Analyze(ctx context.Context, img llm.Image, imagePath string, colorImpressions map[string]string) (*models.ConversationRecord, error) {
	const op = "AnalysisService.Analyze"

	raw, err := s.model.Generate(ctx, prompt.Analysis(s.variant), img, llm.Options{
		Temperature: analysisTemperature,
		JSONOutput:  true,
	})
	if err != nil {
		return nil, utils.E(utils.CodeUnavailable, op, MsgAnalyzeFailed, err)
	}

	// Any deviation from the expected shape is a hard error for this
	// request; nothing is persisted on failure.
	data, err := prompt.ParseAnalysis(raw, s.variant)
	if err != nil {
		s.log.WithError(err).Warn("analysis response unparseable")
		return nil, utils.E(utils.CodeInternal, op, MsgAnalyzeFailed, err)
	}

	rec := &models.ConversationRecord{
		ID:               uuid.NewString(),
		ArtworkData:      data,
		ImagePath:        imagePath,
		CreatedAt:        time.Now().UTC(),
		ColorImpressions: colorImpressions,
		ConversationHistory: []models.Message{
			{Role: models.RoleUser, Content: prompt.SeedSystemIntent},
			{Role: models.RoleAssistant, Content: prompt.SeedSummary(data.Description, data.ArtisticConception)},
		},
	}

	if err := s.records.Save(ctx, rec); err != nil {
		return nil, utils.E(utils.CodeInternal, op, MsgAnalyzeFailed, err)
	}

	s.log.WithFields(logrus.Fields{
		"conversation_id": rec.ID,
		"palette_kind":    string(data.Kind()),
		"colors":          len(data.ColorNames()),
	}).Info("artwork analyzed")

	return rec, nil
}
