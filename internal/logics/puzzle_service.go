package logics

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"saturn-server/internal/catalog"
	"saturn-server/internal/logics/answer_engine"
	"saturn-server/internal/models"
)

// URLSigner resolves a media object key to a time-limited URL. Implemented
// by MediaService; stubbed in tests.
type URLSigner interface {
	PresignedURL(ctx context.Context, key string) (string, error)
}

// PuzzleService serves stage presentation payloads and runs submitted
// answers through the validation engine, recording every attempt.
type PuzzleService struct {
	cat      *catalog.Catalog
	engine   *answer_engine.Engine
	sessions SessionRepository
	attempts AttemptRepository
	media    URLSigner
	logger   *zap.Logger
}

func NewPuzzleService(
	cat *catalog.Catalog,
	engine *answer_engine.Engine,
	sessions SessionRepository,
	attempts AttemptRepository,
	media URLSigner,
	logger *zap.Logger,
) *PuzzleService {
	return &PuzzleService{
		cat:      cat,
		engine:   engine,
		sessions: sessions,
		attempts: attempts,
		media:    media,
		logger:   logger,
	}
}

// CheckAnswer validates one submission. Every evaluated submission appends
// exactly one attempt log row, malformed input included. A correct verdict
// advances the session's stage counter by one; it never sets completion,
// only an explicit advance past the last stage does.
func (ps *PuzzleService) CheckAnswer(ctx context.Context, sessionID uuid.UUID, stage int, answer string) (*PuzzleResult, error) {
	session, err := ps.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	stageDef, ok := ps.cat.Lookup(stage)
	if !ok {
		return nil, ErrStageNotFound
	}

	verdict := ps.engine.Evaluate(stageDef, answer)

	attempt := &models.AttemptLog{
		SessionID: session.ID,
		Stage:     stage,
		Answer:    answer,
		Correct:   verdict.Correct,
	}
	if err := ps.attempts.Append(ctx, attempt); err != nil {
		return nil, err
	}

	result := &PuzzleResult{Correct: verdict.Correct, Message: verdict.Message}
	if verdict.Correct {
		nextStage := stage + 1
		session.CurrentStage = nextStage
		if err := ps.sessions.Update(ctx, session); err != nil {
			return nil, err
		}
		result.NextStage = &nextStage
		ps.logger.Info("stage solved",
			zap.String("session_id", session.ID.String()),
			zap.Int("stage", stage),
		)
	}
	return result, nil
}

// PuzzleData builds the presentation payload for a stage, resolving media
// keys to presigned URLs where the stage type needs them.
func (ps *PuzzleService) PuzzleData(ctx context.Context, stage int) (*PuzzleData, error) {
	stageDef, ok := ps.cat.Lookup(stage)
	if !ok {
		return nil, ErrStageNotFound
	}

	data := &PuzzleData{
		Stage:       stage,
		Title:       stageDef.Title,
		Description: stageDef.Description,
		Type:        string(stageDef.Type),
		PhotoURLs:   []string{},
		Options:     []string{},
	}

	switch stageDef.Type {
	case catalog.TypeColorTrick, catalog.TypeChoosePerson:
		// Presentation-only stages need no media resolution.
		return data, nil

	case catalog.TypeAudio:
		if len(stageDef.PhotoKeys) > 0 {
			url, err := ps.media.PresignedURL(ctx, stageDef.PhotoKeys[0])
			if err != nil {
				return nil, err
			}
			data.AudioURL = &url
		}
		return data, nil

	case catalog.TypeComplexCaptcha:
		complexData, err := ps.complexData(ctx, stageDef.Complex)
		if err != nil {
			return nil, err
		}
		data.ComplexData = complexData
		return data, nil
	}

	for _, key := range stageDef.PhotoKeys {
		url, err := ps.media.PresignedURL(ctx, key)
		if err != nil {
			return nil, err
		}
		data.PhotoURLs = append(data.PhotoURLs, url)
	}

	if stageDef.Type == catalog.TypeCaptcha {
		for _, q := range stageDef.Captcha.Questions {
			data.Options = append(data.Options, q.Text)
		}
	}
	return data, nil
}

// CaptchaData builds the dedicated captcha payload of
// GET /puzzle/:stage/captcha. Non-captcha stages are treated as unknown.
func (ps *PuzzleService) CaptchaData(ctx context.Context, stage int) (*CaptchaPayload, error) {
	stageDef, ok := ps.cat.Lookup(stage)
	if !ok {
		return nil, ErrStageNotFound
	}

	switch stageDef.Type {
	case catalog.TypeCaptcha:
		payload := &CaptchaPayload{}
		for i, q := range stageDef.Captcha.Questions {
			view := CaptchaQuestionView{Text: q.Text, Options: q.Options}
			if i < len(stageDef.PhotoKeys) {
				url, err := ps.media.PresignedURL(ctx, stageDef.PhotoKeys[i])
				if err != nil {
					return nil, err
				}
				view.PhotoURL = &url
			}
			payload.Questions = append(payload.Questions, view)
		}
		return payload, nil

	case catalog.TypeComplexCaptcha:
		complexData, err := ps.complexData(ctx, stageDef.Complex)
		if err != nil {
			return nil, err
		}
		return &CaptchaPayload{PartA: &complexData.PartA, PartB: &complexData.PartB}, nil
	}

	return nil, ErrStageNotFound
}

func (ps *PuzzleService) complexData(ctx context.Context, spec *catalog.ComplexSpec) (*ComplexData, error) {
	data := &ComplexData{}

	for _, q := range spec.PartA {
		view := ComplexQuestionView{Text: q.Text}
		for _, opt := range q.Options {
			url, err := ps.media.PresignedURL(ctx, opt.PhotoKey)
			if err != nil {
				return nil, err
			}
			view.Options = append(view.Options, ComplexOptionView{Label: opt.Label, PhotoURL: url})
		}
		data.PartA.Questions = append(data.PartA.Questions, view)
	}

	for _, r := range spec.PartB {
		view := ComplexRoundView{Instruction: r.Instruction}
		for _, key := range r.GridKeys {
			url, err := ps.media.PresignedURL(ctx, key)
			if err != nil {
				return nil, err
			}
			view.GridURLs = append(view.GridURLs, url)
		}
		data.PartB.Rounds = append(data.PartB.Rounds, view)
	}

	return data, nil
}
