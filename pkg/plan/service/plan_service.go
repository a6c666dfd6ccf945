package service

import (
	"context"

	"contentplanner/entities"
	"contentplanner/pkg/plan/types"
)

type PlanService interface {
	// Generate asks the provider for a plan, retrying once on a rate limit.
	// Progress and failure messages go to notify.
	Generate(ctx context.Context, cred entities.RealCredential, summary string, notify func(entities.Notice)) types.Generation
	// Submit handles one form submission against the session's last result.
	Submit(ctx context.Context, sess entities.Session, in entities.Submission) (entities.Session, Report)
}

// Path names the branch a submission took.
type Path string

const (
	PathRejected Path = ""
	PathGenerate Path = "generate"
	PathMock     Path = "mock"
)

// Report describes what happened to a submission.
type Report struct {
	Notices []entities.Notice
	Path    Path
	// Generation is set on PathGenerate.
	Generation *types.Generation
}
