package service

import (
	"context"

	"contentplanner/entities"
)

type ModelService interface {
	// Select never fails; discovery errors fall back to the default model.
	Select(ctx context.Context, cred entities.RealCredential) string
	// ListAvailable returns the generation-capable models visible to cred.
	ListAvailable(ctx context.Context, cred entities.RealCredential) ([]string, error)
}
