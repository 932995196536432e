package inbound

import (
	"context"

	"github.com/saransathish/Video-language-converter/domain"
)

type StartDubParams struct {
	LocalPath      string
	Source         domain.StorageRef
	SourceLanguage string
	TargetLanguage string
}

type DubPipelineOrchestrator interface {
	Run(ctx context.Context, request StartDubParams) (domain.StorageRef, error)
}
