package repository

import "context"

// IInsightGenerator is the generative-text collaborator. The reply is opaque
// free text; failures are recoverable at the pipeline level.
type IInsightGenerator interface {
	GenerateInsights(ctx context.Context, prompt string) (string, error)
}
