package testresults

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type service struct {
	repository Repository
	logger     *zap.SugaredLogger
}

var _ Service = &service{}

func NewService(repository Repository, logger *zap.SugaredLogger) (Service, error) {
	return &service{
		repository: repository,
		logger:     logger,
	}, nil
}

func (s *service) Create(ctx context.Context, create *TestResult) (*TestResult, error) {
	now := time.Now().UTC()
	if create.Components == nil {
		create.Components = []Component{}
	}
	if create.ResultDate.IsZero() {
		create.ResultDate = now
	}
	create.IsAbnormal = ComputeAbnormal(create.Components)
	create.CreatedTime = now

	s.logger.Infow("recording test result",
		"patientId", create.PatientId,
		"testId", create.TestId,
		"isAbnormal", create.IsAbnormal,
	)
	return s.repository.Create(ctx, create)
}

func (s *service) ListRecent(ctx context.Context, patientId string, limit int) ([]TestResult, error) {
	return s.repository.ListRecent(ctx, patientId, limit)
}
