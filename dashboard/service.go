package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/wellspring-health/clinic/appointments"
	"github.com/wellspring-health/clinic/config"
	"github.com/wellspring-health/clinic/predictions"
	"github.com/wellspring-health/clinic/risk"
	"github.com/wellspring-health/clinic/testresults"
	"github.com/wellspring-health/clinic/users"
	"github.com/wellspring-health/clinic/vitals"
)

type service struct {
	vitals       vitals.Repository
	predictions  predictions.Repository
	appointments appointments.Repository
	testResults  testresults.Repository
	directory    users.Directory
	deriver      *risk.Deriver
	logger       *zap.SugaredLogger

	appointmentWindow int
	recentTests       int
	timeout           time.Duration
	now               func() time.Time
}

var _ Service = &service{}

type Params struct {
	fx.In

	Vitals       vitals.Repository
	Predictions  predictions.Repository
	Appointments appointments.Repository
	TestResults  testresults.Repository
	Directory    users.Directory
	Deriver      *risk.Deriver
	Config       *config.Config
	Logger       *zap.SugaredLogger

	Clock func() time.Time `optional:"true"`
}

func NewService(p Params) (Service, error) {
	now := p.Clock
	if now == nil {
		now = time.Now
	}

	return &service{
		vitals:            p.Vitals,
		predictions:       p.Predictions,
		appointments:      p.Appointments,
		testResults:       p.TestResults,
		directory:         p.Directory,
		deriver:           p.Deriver,
		logger:            p.Logger,
		appointmentWindow: p.Config.AppointmentWindowSize,
		recentTests:       p.Config.RecentTestResultsLimit,
		timeout:           p.Config.DashboardTimeout,
		now:               now,
	}, nil
}

type reads struct {
	vitals       *vitals.Vitals
	predictions  []predictions.Prediction
	appointments []appointments.Appointment
	tests        []testresults.TestResult
}

func (s *service) Get(ctx context.Context, patientId string) (*Dashboard, error) {
	now := s.now().UTC()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	r, err := s.read(ctx, patientId, now)
	if err != nil {
		s.logger.Errorw("unable to read dashboard data", "patientId", patientId, zap.Error(err))
		return nil, ErrUnavailable
	}

	doctors, err := s.directory.Resolve(ctx, doctorIds(r))
	if err != nil {
		s.logger.Errorw("unable to resolve doctors", "patientId", patientId, zap.Error(err))
		return nil, ErrUnavailable
	}

	return &Dashboard{
		RecentMetrics: NewMetrics(r.vitals),
		Predictions: lo.Map(r.predictions, func(p predictions.Prediction, _ int) Prediction {
			return Prediction{
				Id:          hex(p.Id),
				Condition:   p.Condition,
				RiskLevel:   p.RiskLevel,
				Probability: p.Probability,
				CreatedAt:   p.CreatedTime,
				Doctor:      Doctor{Name: doctors.DisplayName(p.DoctorId)},
			}
		}),
		Appointments: lo.Map(r.appointments, func(a appointments.Appointment, _ int) Appointment {
			return Appointment{
				Id:   hex(a.Id),
				Date: a.Date,
				Doctor: Doctor{
					Name:           doctors.DisplayName(&a.DoctorId),
					Specialization: doctors.Specialization(&a.DoctorId),
				},
				Type:     a.Type,
				Location: a.Location,
				Reason:   a.Reason,
				Status:   a.Status,
			}
		}),
		Tests:       r.tests,
		RiskFactors: s.deriver.Derive(r.vitals, r.predictions),
	}, nil
}

// read issues the four reads concurrently. The first failure cancels the remaining reads.
func (s *service) read(ctx context.Context, patientId string, now time.Time) (reads, error) {
	r := reads{}
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		latest, err := s.vitals.GetLatest(ctx, patientId, vitals.TypeGeneral)
		if errors.Is(err, vitals.ErrNotFound) {
			return nil
		} else if err != nil {
			return fmt.Errorf("unable to get latest vitals: %w", err)
		}
		r.vitals = latest
		return nil
	})
	g.Go(func() error {
		list, err := s.predictions.ListByPatient(ctx, patientId)
		if err != nil {
			return fmt.Errorf("unable to list predictions: %w", err)
		}
		r.predictions = list
		return nil
	})
	g.Go(func() error {
		list, err := s.appointments.ListUpcoming(ctx, patientId, now, s.appointmentWindow)
		if err != nil {
			return fmt.Errorf("unable to list upcoming appointments: %w", err)
		}
		r.appointments = appointments.Upcoming(list, now, s.appointmentWindow)
		return nil
	})
	g.Go(func() error {
		list, err := s.testResults.ListRecent(ctx, patientId, s.recentTests)
		if err != nil {
			return fmt.Errorf("unable to list recent test results: %w", err)
		}
		r.tests = list
		return nil
	})

	if err := g.Wait(); err != nil {
		return reads{}, err
	}

	if r.predictions == nil {
		r.predictions = []predictions.Prediction{}
	}
	if r.tests == nil {
		r.tests = []testresults.TestResult{}
	}
	return r, nil
}

func hex(id *primitive.ObjectID) string {
	if id == nil {
		return ""
	}
	return id.Hex()
}

func doctorIds(r reads) []string {
	ids := make([]string, 0, len(r.predictions)+len(r.appointments))
	for _, p := range r.predictions {
		if p.DoctorId != nil {
			ids = append(ids, *p.DoctorId)
		}
	}
	for _, a := range r.appointments {
		ids = append(ids, a.DoctorId)
	}
	return lo.Uniq(ids)
}
