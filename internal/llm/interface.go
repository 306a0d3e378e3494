package llm

import (
	"context"
	"errors"
)

// ErrEmptyResponse is returned when the model answers with no text.
var ErrEmptyResponse = errors.New("model returned an empty response")

// Client sends one prompt to a hosted model and returns the generated text.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Name() string
}

// Stage labels what a model call is for. It only feeds logs and metrics.
type Stage string

const (
	StageMap       Stage = "map"
	StageReduce    Stage = "reduce"
	StageTranslate Stage = "translate"
	StageUnknown   Stage = "unknown"
)

type stageKey struct{}

// WithStage tags ctx with the pipeline stage issuing the call.
func WithStage(ctx context.Context, stage Stage) context.Context {
	return context.WithValue(ctx, stageKey{}, stage)
}

// StageFrom returns the stage stored in ctx, or StageUnknown.
func StageFrom(ctx context.Context) Stage {
	if s, ok := ctx.Value(stageKey{}).(Stage); ok {
		return s
	}
	return StageUnknown
}
