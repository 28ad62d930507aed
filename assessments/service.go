package assessments

import (
	"context"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/wellspring-health/clinic/outbox"
	"github.com/wellspring-health/clinic/store"
)

type service struct {
	repository Repository
	outbox     outbox.Repository
	classifier *Classifier
	logger     *zap.SugaredLogger
	now        func() time.Time
}

var _ Service = &service{}

type Params struct {
	fx.In

	Repository       Repository
	OutboxRepository outbox.Repository
	Classifier       *Classifier
	Logger           *zap.SugaredLogger
}

func NewService(p Params) (Service, error) {
	return &service{
		repository: p.Repository,
		outbox:     p.OutboxRepository,
		classifier: p.Classifier,
		logger:     p.Logger,
		now:        time.Now,
	}, nil
}

func (s *service) Submit(ctx context.Context, create *Assessment) (*Assessment, error) {
	create.RiskAssessment = s.classifier.Classify(create.Intake())
	create.CreatedTime = s.now().UTC()

	created, err := s.repository.Create(ctx, create)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("assessment submitted",
		"assessmentId", created.IdHex(),
		"patientId", created.PatientId,
		"doctorId", created.DoctorId,
		"cancerRiskLevel", created.RiskAssessment.CancerRiskLevel,
	)
	s.notifyPatient(ctx, created)

	return created, nil
}

// notifyPatient enqueues the notification of the patient. Failures are logged and
// don't affect the submission.
func (s *service) notifyPatient(ctx context.Context, assessment *Assessment) {
	event, err := outbox.NewEvent(outbox.EventTypeAssessmentCompleted, outbox.AssessmentCompletedPayload{
		PatientId:       assessment.PatientId,
		DoctorId:        assessment.DoctorId,
		AssessmentId:    assessment.IdHex(),
		CancerRiskLevel: string(assessment.RiskAssessment.CancerRiskLevel),
	})
	if err == nil {
		err = s.outbox.Create(ctx, event)
	}
	if err != nil {
		s.logger.Warnw("unable to enqueue assessment notification",
			"assessmentId", assessment.IdHex(),
			"patientId", assessment.PatientId,
			zap.Error(err),
		)
	}
}

func (s *service) Get(ctx context.Context, id string) (*Assessment, error) {
	return s.repository.Get(ctx, id)
}

func (s *service) ListByPatient(ctx context.Context, patientId string, pagination store.Pagination) ([]Assessment, error) {
	return s.repository.ListByPatient(ctx, patientId, pagination)
}

func (s *service) Classify(intake Intake) RiskAssessment {
	return s.classifier.Classify(intake)
}
