package risk_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/wellspring-health/clinic/pointer"
	"github.com/wellspring-health/clinic/predictions"
	"github.com/wellspring-health/clinic/risk"
	"github.com/wellspring-health/clinic/vitals"
)

func bloodPressure(systolic, diastolic *float64) *vitals.Vitals {
	return &vitals.Vitals{
		PatientId: "patient",
		Type:      vitals.TypeGeneral,
		BloodPressure: &vitals.BloodPressure{
			Systolic:  systolic,
			Diastolic: diastolic,
		},
	}
}

func bodyMass(height, weight float64) *vitals.Vitals {
	return &vitals.Vitals{
		PatientId: "patient",
		Type:      vitals.TypeGeneral,
		Height:    pointer.FromAny(height),
		Weight:    pointer.FromAny(weight),
	}
}

func names(factors []risk.Factor) []string {
	result := make([]string, 0, len(factors))
	for _, f := range factors {
		result = append(result, f.Name())
	}
	return result
}

var _ = Describe("Deriver", func() {
	var deriver *risk.Deriver

	BeforeEach(func() {
		deriver = risk.NewDeriver(risk.DefaultThresholds())
	})

	Describe("FromVitals", func() {
		It("returns an empty list when there are no vitals", func() {
			factors := deriver.FromVitals(nil)
			Expect(factors).ToNot(BeNil())
			Expect(factors).To(BeEmpty())
		})

		It("returns an empty list for normal vitals", func() {
			v := bodyMass(175, 70)
			v.BloodPressure = &vitals.BloodPressure{Systolic: pointer.FromAny(120.0), Diastolic: pointer.FromAny(80.0)}
			Expect(deriver.FromVitals(v)).To(BeEmpty())
		})

		Context("blood pressure", func() {
			It("does not produce a factor at exactly 140 systolic", func() {
				Expect(deriver.FromVitals(bloodPressure(pointer.FromAny(140.0), nil))).To(BeEmpty())
			})

			It("produces a moderate factor at 141 systolic", func() {
				factors := deriver.FromVitals(bloodPressure(pointer.FromAny(141.0), nil))
				Expect(factors).To(HaveLen(1))
				Expect(factors[0].Name()).To(Equal(risk.FactorBloodPressure))
				Expect(factors[0].Severity()).To(Equal(risk.SeverityModerate))
				Expect(factors[0].Source()).To(Equal(risk.SourceVitals))
				Expect(factors[0].Level()).To(BeNumerically("~", 21.0/80.0, 1e-9))
			})

			It("produces a high factor at 161 systolic", func() {
				factors := deriver.FromVitals(bloodPressure(pointer.FromAny(161.0), nil))
				Expect(factors).To(HaveLen(1))
				Expect(factors[0].Severity()).To(Equal(risk.SeverityHigh))
			})

			It("keeps a moderate severity at exactly 160 systolic", func() {
				factors := deriver.FromVitals(bloodPressure(pointer.FromAny(160.0), nil))
				Expect(factors).To(HaveLen(1))
				Expect(factors[0].Severity()).To(Equal(risk.SeverityModerate))
				Expect(factors[0].Level()).To(BeNumerically("~", 0.5, 1e-9))
			})

			It("clamps the level to the upper bound", func() {
				factors := deriver.FromVitals(bloodPressure(pointer.FromAny(250.0), nil))
				Expect(factors).To(HaveLen(1))
				Expect(factors[0].Level()).To(Equal(1.0))
			})

			It("is triggered by the diastolic pressure alone and clamps to the lower bound", func() {
				factors := deriver.FromVitals(bloodPressure(pointer.FromAny(110.0), pointer.FromAny(95.0)))
				Expect(factors).To(HaveLen(1))
				Expect(factors[0].Severity()).To(Equal(risk.SeverityModerate))
				Expect(factors[0].Level()).To(Equal(0.1))
			})

			It("uses the lower bound when the systolic pressure is missing", func() {
				factors := deriver.FromVitals(bloodPressure(nil, pointer.FromAny(100.0)))
				Expect(factors).To(HaveLen(1))
				Expect(factors[0].Level()).To(Equal(0.1))
				Expect(factors[0].Severity()).To(Equal(risk.SeverityModerate))
			})

			It("does not produce a factor at exactly 90 diastolic", func() {
				Expect(deriver.FromVitals(bloodPressure(nil, pointer.FromAny(90.0)))).To(BeEmpty())
			})
		})

		Context("bmi", func() {
			It("produces a high factor for an obese patient", func() {
				// 31.0
				factors := deriver.FromVitals(bodyMass(180, 100.44))
				Expect(factors).To(HaveLen(1))
				Expect(factors[0].Name()).To(Equal(risk.FactorBMI))
				Expect(factors[0].Severity()).To(Equal(risk.SeverityHigh))
				Expect(factors[0].Level()).To(BeNumerically("~", 9.0/15.0, 1e-6))
			})

			It("produces a moderate factor for an overweight patient", func() {
				// 27.0
				factors := deriver.FromVitals(bodyMass(200, 108))
				Expect(factors).To(HaveLen(1))
				Expect(factors[0].Severity()).To(Equal(risk.SeverityModerate))
				Expect(factors[0].Level()).To(BeNumerically("~", 5.0/15.0, 1e-9))
			})

			It("produces a moderate factor for an underweight patient", func() {
				// 17.0
				factors := deriver.FromVitals(bodyMass(200, 68))
				Expect(factors).To(HaveLen(1))
				Expect(factors[0].Severity()).To(Equal(risk.SeverityModerate))
				Expect(factors[0].Level()).To(BeNumerically("~", 5.0/15.0, 1e-9))
			})

			It("does not produce a factor at exactly 25", func() {
				Expect(deriver.FromVitals(bodyMass(200, 100))).To(BeEmpty())
			})

			It("skips the rule when the height is missing", func() {
				v := bodyMass(180, 120)
				v.Height = nil
				Expect(deriver.FromVitals(v)).To(BeEmpty())
			})

			It("skips the rule when the weight is missing", func() {
				v := bodyMass(180, 120)
				v.Weight = nil
				Expect(deriver.FromVitals(v)).To(BeEmpty())
			})

			It("skips the rule when the height is zero", func() {
				Expect(deriver.FromVitals(bodyMass(0, 120))).To(BeEmpty())
			})
		})

		It("evaluates both rules independently in a fixed order", func() {
			v := bodyMass(160, 90)
			v.BloodPressure = &vitals.BloodPressure{Systolic: pointer.FromAny(150.0)}
			Expect(names(deriver.FromVitals(v))).To(Equal([]string{risk.FactorBloodPressure, risk.FactorBMI}))
		})

		It("keeps every level within the clamp bounds", func() {
			for systolic := 0.0; systolic <= 300; systolic += 7 {
				for height := 50.0; height <= 220; height += 13 {
					v := bodyMass(height, 80)
					v.BloodPressure = &vitals.BloodPressure{Systolic: pointer.FromAny(systolic), Diastolic: pointer.FromAny(95.0)}
					for _, f := range deriver.FromVitals(v) {
						Expect(f.Level()).To(BeNumerically(">=", 0.1))
						Expect(f.Level()).To(BeNumerically("<=", 1.0))
					}
				}
			}
		})

		It("uses configured thresholds", func() {
			thresholds := risk.DefaultThresholds()
			thresholds.SystolicElevated = 130
			deriver = risk.NewDeriver(thresholds)
			Expect(deriver.FromVitals(bloodPressure(pointer.FromAny(135.0), nil))).To(HaveLen(1))
		})
	})

	Describe("MergePredictions", func() {
		It("maps prediction weights to severities", func() {
			preds := []predictions.Prediction{{
				Factors: []predictions.Factor{
					{Name: "Smoking", Weight: 0.71},
					{Name: "Family History", Weight: 0.7},
					{Name: "Age", Weight: 0.41},
					{Name: "Diet", Weight: 0.4},
				},
			}}

			factors := deriver.MergePredictions(nil, preds)
			Expect(names(factors)).To(Equal([]string{"Smoking", "Family History", "Age", "Diet"}))
			Expect(factors[0].Severity()).To(Equal(risk.SeverityHigh))
			Expect(factors[1].Severity()).To(Equal(risk.SeverityModerate))
			Expect(factors[2].Severity()).To(Equal(risk.SeverityModerate))
			Expect(factors[3].Severity()).To(Equal(risk.SeverityLow))
			Expect(factors[0].Level()).To(Equal(0.71))
			Expect(factors[0].Source()).To(Equal(risk.SourcePrediction))
		})

		It("keeps the vitals derived factor when a prediction has a factor with the same name", func() {
			seed := deriver.FromVitals(bodyMass(180, 100.44))
			preds := []predictions.Prediction{{
				Factors: []predictions.Factor{{Name: risk.FactorBMI, Weight: 0.2}},
			}}

			factors := deriver.MergePredictions(seed, preds)
			Expect(factors).To(HaveLen(1))
			Expect(factors[0].Name()).To(Equal(risk.FactorBMI))
			Expect(factors[0].Source()).To(Equal(risk.SourceVitals))
			Expect(factors[0].Severity()).To(Equal(risk.SeverityHigh))
		})

		It("keeps the first occurrence across predictions in caller order", func() {
			preds := []predictions.Prediction{
				{Factors: []predictions.Factor{{Name: "Smoking", Weight: 0.9}, {Name: "Age", Weight: 0.1}}},
				{Factors: []predictions.Factor{{Name: "Age", Weight: 0.8}, {Name: "Diet", Weight: 0.5}}},
			}

			factors := deriver.MergePredictions(nil, preds)
			Expect(names(factors)).To(Equal([]string{"Smoking", "Age", "Diet"}))
			Expect(factors[1].Level()).To(Equal(0.1))
			Expect(factors[1].Severity()).To(Equal(risk.SeverityLow))
		})

		It("produces unique names", func() {
			preds := []predictions.Prediction{
				{Factors: []predictions.Factor{{Name: "A", Weight: 0.5}, {Name: "A", Weight: 0.9}}},
				{Factors: []predictions.Factor{{Name: "B", Weight: 0.5}, {Name: "A", Weight: 0.3}}},
			}
			Expect(names(deriver.MergePredictions(nil, preds))).To(Equal([]string{"A", "B"}))
		})

		It("returns the seed when there are no predictions", func() {
			seed := deriver.FromVitals(bloodPressure(pointer.FromAny(150.0), nil))
			Expect(deriver.MergePredictions(seed, nil)).To(Equal(seed))
		})
	})

	Describe("Derive", func() {
		It("puts vitals factors before prediction factors", func() {
			v := bodyMass(180, 100.44)
			v.BloodPressure = &vitals.BloodPressure{Systolic: pointer.FromAny(165.0)}
			preds := []predictions.Prediction{{
				Factors: []predictions.Factor{{Name: "Smoking", Weight: 0.8}, {Name: risk.FactorBloodPressure, Weight: 0.1}},
			}}

			Expect(names(deriver.Derive(v, preds))).To(Equal([]string{risk.FactorBloodPressure, risk.FactorBMI, "Smoking"}))
		})
	})
})

var _ = Describe("BMI", func() {
	It("computes the index from centimeters and kilograms", func() {
		bmi, ok := risk.BMI(pointer.FromAny(200.0), pointer.FromAny(100.0))
		Expect(ok).To(BeTrue())
		Expect(bmi).To(BeNumerically("~", 25.0, 1e-9))
	})

	It("is undefined for a negative height", func() {
		_, ok := risk.BMI(pointer.FromAny(-1.0), pointer.FromAny(100.0))
		Expect(ok).To(BeFalse())
	})
})
