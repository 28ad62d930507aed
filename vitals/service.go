package vitals

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type service struct {
	repository Repository
	logger     *zap.SugaredLogger
	now        func() time.Time
}

var _ Service = &service{}

func NewService(repository Repository, logger *zap.SugaredLogger) (Service, error) {
	return &service{
		repository: repository,
		logger:     logger,
		now:        time.Now,
	}, nil
}

func (s *service) Record(ctx context.Context, create *Vitals) (*Vitals, error) {
	now := s.now().UTC()
	if create.Type == "" {
		create.Type = TypeGeneral
	}
	if create.RecordedTime.IsZero() {
		create.RecordedTime = now
	}
	create.CreatedTime = now

	s.logger.Infow("recording vitals", "patientId", create.PatientId, "type", create.Type)
	return s.repository.Create(ctx, create)
}

func (s *service) GetLatest(ctx context.Context, patientId string) (*Vitals, error) {
	return s.repository.GetLatest(ctx, patientId, TypeGeneral)
}
