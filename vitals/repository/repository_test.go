package repository_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"

	dbTest "github.com/wellspring-health/clinic/store/test"
	"github.com/wellspring-health/clinic/test"
	"github.com/wellspring-health/clinic/vitals"
	"github.com/wellspring-health/clinic/vitals/repository"
	vitalsTest "github.com/wellspring-health/clinic/vitals/test"
)

var _ = Describe("Vitals Repository", func() {
	var repo vitals.Repository
	var collection *mongo.Collection
	var patientId string

	BeforeEach(func() {
		database := dbTest.GetTestDatabase()
		collection = database.Collection(vitals.CollectionName)
		lifecycle := fxtest.NewLifecycle(GinkgoT())

		var err error
		repo, err = repository.NewRepository(database, zap.NewNop().Sugar(), lifecycle)
		Expect(err).ToNot(HaveOccurred())
		lifecycle.RequireStart()

		patientId = test.Faker.UUID().V4()
	})

	AfterEach(func() {
		_ = collection.Drop(context.Background())
	})

	Describe("Create", func() {
		It("assigns an id to the snapshot", func() {
			result, err := repo.Create(context.Background(), vitalsTest.RandomVitals(patientId))
			Expect(err).ToNot(HaveOccurred())
			Expect(result.Id).ToNot(BeNil())
			Expect(result.PatientId).To(Equal(patientId))
		})
	})

	Describe("GetLatest", func() {
		It("returns the most recently recorded general snapshot", func() {
			now := time.Now().UTC().Truncate(time.Millisecond)
			for i := 3; i >= 1; i-- {
				v := vitalsTest.RandomVitals(patientId)
				v.RecordedTime = now.Add(-time.Duration(i) * time.Hour)
				_, err := repo.Create(context.Background(), v)
				Expect(err).ToNot(HaveOccurred())
			}

			other := vitalsTest.RandomVitals(patientId)
			other.Type = vitals.Type("home")
			other.RecordedTime = now
			_, err := repo.Create(context.Background(), other)
			Expect(err).ToNot(HaveOccurred())

			otherPatient := vitalsTest.RandomVitals(test.Faker.UUID().V4())
			otherPatient.RecordedTime = now
			_, err = repo.Create(context.Background(), otherPatient)
			Expect(err).ToNot(HaveOccurred())

			result, err := repo.GetLatest(context.Background(), patientId, vitals.TypeGeneral)
			Expect(err).ToNot(HaveOccurred())
			Expect(result.PatientId).To(Equal(patientId))
			Expect(result.Type).To(Equal(vitals.TypeGeneral))
			Expect(result.RecordedTime.Equal(now.Add(-time.Hour))).To(BeTrue())
		})

		It("breaks ties by insertion order", func() {
			recorded := time.Now().UTC().Truncate(time.Millisecond)
			first := vitalsTest.RandomVitals(patientId)
			first.RecordedTime = recorded
			_, err := repo.Create(context.Background(), first)
			Expect(err).ToNot(HaveOccurred())

			second := vitalsTest.RandomVitals(patientId)
			second.RecordedTime = recorded
			created, err := repo.Create(context.Background(), second)
			Expect(err).ToNot(HaveOccurred())

			result, err := repo.GetLatest(context.Background(), patientId, vitals.TypeGeneral)
			Expect(err).ToNot(HaveOccurred())
			Expect(result.Id).To(Equal(created.Id))
		})

		It("keeps missing measurements absent", func() {
			v := vitalsTest.RandomVitals(patientId)
			v.Height = nil
			v.BloodPressure = nil
			_, err := repo.Create(context.Background(), v)
			Expect(err).ToNot(HaveOccurred())

			result, err := repo.GetLatest(context.Background(), patientId, vitals.TypeGeneral)
			Expect(err).ToNot(HaveOccurred())
			Expect(result.Height).To(BeNil())
			Expect(result.Systolic()).To(BeNil())
			Expect(result.Weight).ToNot(BeNil())
		})

		It("returns not found when the patient has no snapshots", func() {
			_, err := repo.GetLatest(context.Background(), patientId, vitals.TypeGeneral)
			Expect(err).To(MatchError(vitals.ErrNotFound))
		})
	})
})
