package users_test

import (
	"context"
	"fmt"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/wellspring-health/clinic/pointer"
	"github.com/wellspring-health/clinic/test"
	"github.com/wellspring-health/clinic/users"
	usersTest "github.com/wellspring-health/clinic/users/test"
)

var _ = Describe("Directory", func() {
	var directory users.Directory
	var repo *usersTest.MockRepository
	var ctrl *gomock.Controller
	var doctor *users.User

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		repo = usersTest.NewMockRepository(ctrl)
		doctor = usersTest.RandomDoctor()

		var err error
		directory, err = users.NewDirectory(repo, users.DirectoryConfig{CacheSize: 10, CacheExpiration: time.Minute}, zap.NewNop().Sugar())
		Expect(err).ToNot(HaveOccurred())
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	It("resolves all references with a single query", func() {
		other := usersTest.RandomDoctor()
		repo.EXPECT().
			ListByIds(gomock.Any(), test.Match(func(ids []string) bool {
				return len(ids) == 2
			})).
			Return([]users.User{*doctor, *other}, nil)

		doctors, err := directory.Resolve(context.Background(), []string{doctor.UserId, other.UserId, doctor.UserId})
		Expect(err).ToNot(HaveOccurred())
		Expect(doctors.DisplayName(&doctor.UserId)).To(Equal(doctor.Name))
		Expect(doctors.DisplayName(&other.UserId)).To(Equal(other.Name))
		Expect(doctors.Specialization(&doctor.UserId)).To(Equal(doctor.Specialization))
	})

	It("serves repeated references from the cache", func() {
		repo.EXPECT().
			ListByIds(gomock.Any(), gomock.Eq([]string{doctor.UserId})).
			Return([]users.User{*doctor}, nil).
			Times(1)

		_, err := directory.Resolve(context.Background(), []string{doctor.UserId})
		Expect(err).ToNot(HaveOccurred())

		doctors, err := directory.Resolve(context.Background(), []string{doctor.UserId})
		Expect(err).ToNot(HaveOccurred())
		Expect(doctors.DisplayName(&doctor.UserId)).To(Equal(doctor.Name))
	})

	It("does not query the repository without references", func() {
		doctors, err := directory.Resolve(context.Background(), []string{"", ""})
		Expect(err).ToNot(HaveOccurred())
		Expect(doctors).To(BeEmpty())
	})

	It("returns unresolved references as unknown", func() {
		missing := test.Faker.UUID().V4()
		repo.EXPECT().
			ListByIds(gomock.Any(), gomock.Eq([]string{missing})).
			Return([]users.User{}, nil)

		doctors, err := directory.Resolve(context.Background(), []string{missing})
		Expect(err).ToNot(HaveOccurred())
		Expect(doctors.DisplayName(&missing)).To(Equal(users.UnknownDoctorName))
		Expect(doctors.Specialization(&missing)).To(BeNil())
	})

	It("returns repository errors", func() {
		repo.EXPECT().
			ListByIds(gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("connection refused"))

		_, err := directory.Resolve(context.Background(), []string{doctor.UserId})
		Expect(err).To(MatchError(ContainSubstring("connection refused")))
	})
})

var _ = Describe("Doctors", func() {
	It("falls back to unknown for a missing reference", func() {
		doctors := users.Doctors{"a": {Name: "Dr. Who"}}
		Expect(doctors.DisplayName(nil)).To(Equal(users.UnknownDoctorName))
		Expect(doctors.DisplayName(pointer.FromAny("b"))).To(Equal(users.UnknownDoctorName))
		Expect(doctors.DisplayName(pointer.FromAny("a"))).To(Equal("Dr. Who"))
	})

	It("falls back to unknown for a doctor without a name", func() {
		doctors := users.Doctors{"a": {}}
		Expect(doctors.DisplayName(pointer.FromAny("a"))).To(Equal(users.UnknownDoctorName))
	})
})
