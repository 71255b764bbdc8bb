package ai

import (
	"context"
	"time"

	"feedback-coach/internal/domain"
	"go.uber.org/zap"
)

// Completer sends one prompt to a text-completion backend.
type Completer interface {
	Complete(ctx context.Context, chatID, prompt string) (string, error)
}

// Gateway renders task prompts and dispatches each as exactly one request.
type Gateway struct {
	completer Completer
	logger    *zap.Logger
}

func NewGateway(completer Completer, logger *zap.Logger) *Gateway {
	return &Gateway{completer: completer, logger: logger}
}

func (g *Gateway) RefineFeedback(ctx context.Context, sessionID, draft string) (string, error) {
	return g.dispatch(ctx, "refine", sessionID, RefinePrompt(draft))
}

func (g *Gateway) SuggestQuestions(ctx context.Context, sessionID, stage, situation string) (string, error) {
	return g.dispatch(ctx, "suggest", sessionID, GrowPrompt(stage, situation))
}

func (g *Gateway) AnalyzeGap(ctx context.Context, sessionID string, input domain.GapInput) (string, error) {
	return g.dispatch(ctx, "analyze", sessionID, GapPrompt(input))
}

func (g *Gateway) dispatch(ctx context.Context, task, sessionID, prompt string) (string, error) {
	start := time.Now()
	text, err := g.completer.Complete(ctx, sessionID, prompt)
	if err != nil {
		g.logger.Warn("ai request failed",
			zap.String("task", task),
			zap.String("kind", Kind(err)),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return "", err
	}
	g.logger.Info("ai request completed",
		zap.String("task", task),
		zap.Int("chars", len(text)),
		zap.Duration("elapsed", time.Since(start)))
	return text, nil
}
