package serviceImp

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"contentplanner/entities"
	"contentplanner/pkg/ai"
)

type ModelSvc struct {
	clients    ai.Factory
	priorities []string
	fallback   string
	logger     *logrus.Logger
}

func NewModelService(clients ai.Factory, priorities []string, fallback string, logger *logrus.Logger) *ModelSvc {
	return &ModelSvc{clients: clients, priorities: priorities, fallback: fallback, logger: logger}
}

func (s *ModelSvc) Select(ctx context.Context, cred entities.RealCredential) string {
	available, err := s.ListAvailable(ctx, cred)
	if err != nil {
		s.logger.WithError(err).WithField("default", s.fallback).Warn("[model] discovery failed, using default")
		return s.fallback
	}
	model := SelectModel(available, s.priorities, s.fallback)
	s.logger.WithFields(logrus.Fields{"model": model, "available": len(available)}).Debug("[model] selected")
	return model
}

func (s *ModelSvc) ListAvailable(ctx context.Context, cred entities.RealCredential) ([]string, error) {
	models, err := s.clients(cred.Key).ListModels(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(models))
	for _, m := range models {
		if m.Supports(ai.GenerateContentMethod) {
			names = append(names, m.Name)
		}
	}
	return names, nil
}

// SelectModel scans priorities in order and, for each, the available models
// in received order. The first priority that matches any model wins, even
// when a later priority would match an earlier model. With no match it
// returns the first available model, and fallback when none are available.
func SelectModel(available, priorities []string, fallback string) string {
	for _, p := range priorities {
		for _, m := range available {
			if strings.Contains(m, p) {
				return m
			}
		}
	}
	if len(available) > 0 {
		return available[0]
	}
	return fallback
}
