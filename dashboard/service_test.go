package dashboard_test

import (
	"context"
	"fmt"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/wellspring-health/clinic/appointments"
	appointmentsTest "github.com/wellspring-health/clinic/appointments/test"
	"github.com/wellspring-health/clinic/config"
	"github.com/wellspring-health/clinic/dashboard"
	"github.com/wellspring-health/clinic/pointer"
	"github.com/wellspring-health/clinic/predictions"
	predictionsTest "github.com/wellspring-health/clinic/predictions/test"
	"github.com/wellspring-health/clinic/risk"
	"github.com/wellspring-health/clinic/test"
	"github.com/wellspring-health/clinic/testresults"
	testresultsTest "github.com/wellspring-health/clinic/testresults/test"
	"github.com/wellspring-health/clinic/users"
	usersTest "github.com/wellspring-health/clinic/users/test"
	"github.com/wellspring-health/clinic/vitals"
	vitalsTest "github.com/wellspring-health/clinic/vitals/test"
)

func withId[T any](v *T, set func(*T, *primitive.ObjectID)) T {
	id := primitive.NewObjectID()
	set(v, &id)
	return *v
}

var _ = Describe("Dashboard Service", func() {
	var ctrl *gomock.Controller
	var vitalsRepo *vitalsTest.MockRepository
	var predictionsRepo *predictionsTest.MockRepository
	var appointmentsRepo *appointmentsTest.MockRepository
	var testResultsRepo *testresultsTest.MockRepository
	var directory *usersTest.MockDirectory
	var service dashboard.Service

	var now time.Time
	var patientId string
	var doctor *users.User

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		vitalsRepo = vitalsTest.NewMockRepository(ctrl)
		predictionsRepo = predictionsTest.NewMockRepository(ctrl)
		appointmentsRepo = appointmentsTest.NewMockRepository(ctrl)
		testResultsRepo = testresultsTest.NewMockRepository(ctrl)
		directory = usersTest.NewMockDirectory(ctrl)

		now = time.Date(2024, 5, 10, 9, 30, 0, 0, time.UTC)
		patientId = test.Faker.UUID().V4()
		doctor = usersTest.RandomDoctor()

		var err error
		service, err = dashboard.NewService(dashboard.Params{
			Vitals:       vitalsRepo,
			Predictions:  predictionsRepo,
			Appointments: appointmentsRepo,
			TestResults:  testResultsRepo,
			Directory:    directory,
			Deriver:      risk.NewDeriver(risk.DefaultThresholds()),
			Config: &config.Config{
				AppointmentWindowSize:  5,
				RecentTestResultsLimit: 5,
				DashboardTimeout:       time.Second,
			},
			Logger: zap.NewNop().Sugar(),
			Clock:  func() time.Time { return now },
		})
		Expect(err).ToNot(HaveOccurred())
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	setId := func(p *predictions.Prediction, id *primitive.ObjectID) { p.Id = id }
	setAppointmentId := func(a *appointments.Appointment, id *primitive.ObjectID) { a.Id = id }

	Describe("Get", func() {
		var latest *vitals.Vitals
		var prediction predictions.Prediction
		var appointment appointments.Appointment
		var unknownAppointment appointments.Appointment
		var result testresults.TestResult

		BeforeEach(func() {
			latest = vitalsTest.RandomVitals(patientId)
			latest.Height = pointer.FromAny(180.0)
			latest.Weight = pointer.FromAny(100.44)
			latest.BloodPressure = &vitals.BloodPressure{Systolic: pointer.FromAny(165.0), Diastolic: pointer.FromAny(95.0)}

			p := predictionsTest.RandomPrediction(patientId)
			p.DoctorId = &doctor.UserId
			p.Factors = []predictions.Factor{
				{Name: risk.FactorBMI, Weight: 0.1},
				{Name: "Smoking", Weight: 0.8},
			}
			prediction = withId(p, setId)

			a := appointmentsTest.RandomAppointment(patientId, doctor.UserId)
			a.Date = now.Add(48 * time.Hour)
			appointment = withId(a, setAppointmentId)

			u := appointmentsTest.RandomAppointment(patientId, test.Faker.UUID().V4())
			u.Date = now.Add(72 * time.Hour)
			unknownAppointment = withId(u, setAppointmentId)

			result = *testresultsTest.RandomTestResult(patientId, doctor.UserId)
		})

		It("composes the dashboard from all sources", func() {
			vitalsRepo.EXPECT().GetLatest(gomock.Any(), patientId, vitals.TypeGeneral).Return(latest, nil)
			predictionsRepo.EXPECT().ListByPatient(gomock.Any(), patientId).Return([]predictions.Prediction{prediction}, nil)
			appointmentsRepo.EXPECT().ListUpcoming(gomock.Any(), patientId, now, 5).Return([]appointments.Appointment{appointment, unknownAppointment}, nil)
			testResultsRepo.EXPECT().ListRecent(gomock.Any(), patientId, 5).Return([]testresults.TestResult{result}, nil)
			directory.EXPECT().
				Resolve(gomock.Any(), gomock.Eq([]string{doctor.UserId, unknownAppointment.DoctorId})).
				Return(users.Doctors{doctor.UserId: {Name: doctor.Name, Specialization: doctor.Specialization}}, nil)

			d, err := service.Get(context.Background(), patientId)
			Expect(err).ToNot(HaveOccurred())

			Expect(d.RecentMetrics).ToNot(BeNil())
			Expect(d.RecentMetrics.BloodPressure.Systolic).To(Equal(pointer.FromAny(165.0)))
			Expect(d.RecentMetrics.BloodPressure.Diastolic).To(Equal(pointer.FromAny(95.0)))
			Expect(d.RecentMetrics.HeartRate).To(Equal(latest.HeartRate))
			Expect(d.RecentMetrics.BloodSugar).To(Equal(latest.BloodSugar))
			Expect(d.RecentMetrics.Weight).To(Equal(latest.Weight))

			Expect(d.Predictions).To(HaveLen(1))
			Expect(d.Predictions[0].Id).To(Equal(prediction.Id.Hex()))
			Expect(d.Predictions[0].Condition).To(Equal(prediction.Condition))
			Expect(d.Predictions[0].Doctor.Name).To(Equal(doctor.Name))

			Expect(d.Appointments).To(HaveLen(2))
			Expect(d.Appointments[0].Id).To(Equal(appointment.Id.Hex()))
			Expect(d.Appointments[0].Doctor.Name).To(Equal(doctor.Name))
			Expect(d.Appointments[0].Doctor.Specialization).To(Equal(doctor.Specialization))
			Expect(d.Appointments[1].Doctor.Name).To(Equal(users.UnknownDoctorName))
			Expect(d.Appointments[1].Doctor.Specialization).To(BeNil())

			Expect(d.Tests).To(Equal([]testresults.TestResult{result}))

			Expect(d.RiskFactors).To(HaveLen(3))
			Expect(d.RiskFactors[0].Name()).To(Equal(risk.FactorBloodPressure))
			Expect(d.RiskFactors[0].Severity()).To(Equal(risk.SeverityHigh))
			Expect(d.RiskFactors[1].Name()).To(Equal(risk.FactorBMI))
			Expect(d.RiskFactors[1].Source()).To(Equal(risk.SourceVitals))
			Expect(d.RiskFactors[2].Name()).To(Equal("Smoking"))
			Expect(d.RiskFactors[2].Source()).To(Equal(risk.SourcePrediction))
		})

		It("returns empty collections and no metrics for a new patient", func() {
			vitalsRepo.EXPECT().GetLatest(gomock.Any(), patientId, vitals.TypeGeneral).Return(nil, vitals.ErrNotFound)
			predictionsRepo.EXPECT().ListByPatient(gomock.Any(), patientId).Return(nil, nil)
			appointmentsRepo.EXPECT().ListUpcoming(gomock.Any(), patientId, now, 5).Return(nil, nil)
			testResultsRepo.EXPECT().ListRecent(gomock.Any(), patientId, 5).Return(nil, nil)
			directory.EXPECT().Resolve(gomock.Any(), gomock.Len(0)).Return(users.Doctors{}, nil)

			d, err := service.Get(context.Background(), patientId)
			Expect(err).ToNot(HaveOccurred())
			Expect(d.RecentMetrics).To(BeNil())
			Expect(d.Predictions).ToNot(BeNil())
			Expect(d.Predictions).To(BeEmpty())
			Expect(d.Appointments).ToNot(BeNil())
			Expect(d.Appointments).To(BeEmpty())
			Expect(d.Tests).ToNot(BeNil())
			Expect(d.Tests).To(BeEmpty())
			Expect(d.RiskFactors).ToNot(BeNil())
			Expect(d.RiskFactors).To(BeEmpty())
		})

		It("shows unknown for a prediction without a doctor", func() {
			prediction.DoctorId = nil
			vitalsRepo.EXPECT().GetLatest(gomock.Any(), patientId, vitals.TypeGeneral).Return(nil, vitals.ErrNotFound)
			predictionsRepo.EXPECT().ListByPatient(gomock.Any(), patientId).Return([]predictions.Prediction{prediction}, nil)
			appointmentsRepo.EXPECT().ListUpcoming(gomock.Any(), patientId, now, 5).Return(nil, nil)
			testResultsRepo.EXPECT().ListRecent(gomock.Any(), patientId, 5).Return(nil, nil)
			directory.EXPECT().Resolve(gomock.Any(), gomock.Len(0)).Return(users.Doctors{}, nil)

			d, err := service.Get(context.Background(), patientId)
			Expect(err).ToNot(HaveOccurred())
			Expect(d.Predictions[0].Doctor.Name).To(Equal(users.UnknownDoctorName))
			Expect(d.RiskFactors).To(HaveLen(2))
			Expect(d.RiskFactors[0].Name()).To(Equal(risk.FactorBMI))
			Expect(d.RiskFactors[0].Source()).To(Equal(risk.SourcePrediction))
		})

		It("drops appointments which are not upcoming", func() {
			cancelled := appointment
			cancelled.Status = appointments.StatusCancelled
			past := unknownAppointment
			past.Date = now.Add(-time.Hour)

			vitalsRepo.EXPECT().GetLatest(gomock.Any(), patientId, vitals.TypeGeneral).Return(nil, vitals.ErrNotFound)
			predictionsRepo.EXPECT().ListByPatient(gomock.Any(), patientId).Return(nil, nil)
			appointmentsRepo.EXPECT().ListUpcoming(gomock.Any(), patientId, now, 5).Return([]appointments.Appointment{cancelled, past}, nil)
			testResultsRepo.EXPECT().ListRecent(gomock.Any(), patientId, 5).Return(nil, nil)
			directory.EXPECT().Resolve(gomock.Any(), gomock.Len(0)).Return(users.Doctors{}, nil)

			d, err := service.Get(context.Background(), patientId)
			Expect(err).ToNot(HaveOccurred())
			Expect(d.Appointments).To(BeEmpty())
		})

		It("fails without a partial dashboard when a read fails", func() {
			vitalsRepo.EXPECT().GetLatest(gomock.Any(), patientId, vitals.TypeGeneral).Return(latest, nil).AnyTimes()
			predictionsRepo.EXPECT().ListByPatient(gomock.Any(), patientId).Return(nil, fmt.Errorf("socket closed")).AnyTimes()
			appointmentsRepo.EXPECT().ListUpcoming(gomock.Any(), patientId, now, 5).Return(nil, nil).AnyTimes()
			testResultsRepo.EXPECT().ListRecent(gomock.Any(), patientId, 5).Return(nil, nil).AnyTimes()

			d, err := service.Get(context.Background(), patientId)
			Expect(err).To(MatchError(dashboard.ErrUnavailable))
			Expect(d).To(BeNil())
		})

		It("fails when the vitals cannot be read", func() {
			vitalsRepo.EXPECT().GetLatest(gomock.Any(), patientId, vitals.TypeGeneral).Return(nil, fmt.Errorf("timeout")).AnyTimes()
			predictionsRepo.EXPECT().ListByPatient(gomock.Any(), patientId).Return(nil, nil).AnyTimes()
			appointmentsRepo.EXPECT().ListUpcoming(gomock.Any(), patientId, now, 5).Return(nil, nil).AnyTimes()
			testResultsRepo.EXPECT().ListRecent(gomock.Any(), patientId, 5).Return(nil, nil).AnyTimes()

			_, err := service.Get(context.Background(), patientId)
			Expect(err).To(MatchError(dashboard.ErrUnavailable))
		})

		It("fails when the doctors cannot be resolved", func() {
			vitalsRepo.EXPECT().GetLatest(gomock.Any(), patientId, vitals.TypeGeneral).Return(latest, nil)
			predictionsRepo.EXPECT().ListByPatient(gomock.Any(), patientId).Return([]predictions.Prediction{prediction}, nil)
			appointmentsRepo.EXPECT().ListUpcoming(gomock.Any(), patientId, now, 5).Return(nil, nil)
			testResultsRepo.EXPECT().ListRecent(gomock.Any(), patientId, 5).Return(nil, nil)
			directory.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("no reachable servers"))

			_, err := service.Get(context.Background(), patientId)
			Expect(err).To(MatchError(dashboard.ErrUnavailable))
		})
	})
})
