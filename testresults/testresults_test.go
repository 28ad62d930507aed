package testresults_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/wellspring-health/clinic/testresults"
	testresultsTest "github.com/wellspring-health/clinic/testresults/test"
)

var _ = Describe("ComputeAbnormal", func() {
	It("is false without components", func() {
		Expect(testresults.ComputeAbnormal(nil)).To(BeFalse())
	})

	It("is false when all components are normal", func() {
		components := []testresults.Component{
			testresultsTest.RandomComponent(testresults.InterpretationNormal),
			testresultsTest.RandomComponent(testresults.InterpretationNormal),
		}
		Expect(testresults.ComputeAbnormal(components)).To(BeFalse())
	})

	It("ignores components without an interpretation", func() {
		components := []testresults.Component{testresultsTest.RandomComponent("")}
		Expect(testresults.ComputeAbnormal(components)).To(BeFalse())
	})

	DescribeTable("is true when any component is not normal",
		func(interpretation testresults.Interpretation) {
			components := []testresults.Component{
				testresultsTest.RandomComponent(testresults.InterpretationNormal),
				testresultsTest.RandomComponent(interpretation),
			}
			Expect(testresults.ComputeAbnormal(components)).To(BeTrue())
		},
		Entry("abnormal", testresults.InterpretationAbnormal),
		Entry("low", testresults.InterpretationLow),
		Entry("high", testresults.InterpretationHigh),
		Entry("critical", testresults.InterpretationCritical),
	)
})
