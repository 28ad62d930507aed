package predictions

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

func (s *service) Create(ctx context.Context, create *Prediction) (*Prediction, error) {
	if err := create.Validate(); err != nil {
		return nil, err
	}
	if create.Factors == nil {
		create.Factors = []Factor{}
	}
	if create.Recommendations == nil {
		create.Recommendations = []string{}
	}
	create.CreatedTime = time.Now().UTC()

	info, err := create.ModelMetadata.Info()
	if err != nil {
		s.logger.Warnw("unable to read model metadata", "patientId", create.PatientId, zap.Error(err))
	}
	s.logger.Infow("recording prediction",
		"patientId", create.PatientId,
		"condition", create.Condition,
		"model", info.Name,
		"modelVersion", info.Version,
	)

	return s.repository.Create(ctx, create)
}

func (s *service) ListByPatient(ctx context.Context, patientId string) ([]Prediction, error) {
	return s.repository.ListByPatient(ctx, patientId)
}
