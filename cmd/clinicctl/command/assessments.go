package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wellspring-health/clinic/assessments"
	"github.com/wellspring-health/clinic/pointer"
)

var classifyParams = struct {
	Height        float64
	Weight        float64
	Smoking       string
	Alcohol       string
	FamilyHistory []string
}{}

var assessmentsCmd = &cobra.Command{
	Use:   "assessments",
	Short: "Intake assessments",
	Long:  "The assessments command is used to work with intake assessments",
}

var assessmentsClassifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify an intake without storing it",
	Long:  "The classify command prints the bmi, risk factor count and cancer risk level of an intake",
	RunE: func(cmd *cobra.Command, args []string) error {
		intake, err := newIntake(cmd)
		if err != nil {
			return err
		}
		cfg, err := assessments.NewClassifierConfig()
		if err != nil {
			return err
		}
		printRiskAssessment(assessments.NewClassifier(cfg).Classify(intake))
		return nil
	},
}

func newIntake(cmd *cobra.Command) (assessments.Intake, error) {
	intake := assessments.Intake{}

	smoking, err := assessments.ParseSmokingStatus(classifyParams.Smoking)
	if err != nil {
		return intake, err
	}
	alcohol, err := assessments.ParseAlcoholConsumption(classifyParams.Alcohol)
	if err != nil {
		return intake, err
	}
	intake.SmokingStatus = smoking
	intake.AlcoholConsumption = alcohol

	if cmd.Flags().Changed("height") {
		intake.Height = pointer.FromAny(classifyParams.Height)
	}
	if cmd.Flags().Changed("weight") {
		intake.Weight = pointer.FromAny(classifyParams.Weight)
	}

	for _, condition := range classifyParams.FamilyHistory {
		switch condition {
		case "cancer":
			intake.FamilyHistory.Cancer = true
		case "diabetes":
			intake.FamilyHistory.Diabetes = true
		case "heart-disease":
			intake.FamilyHistory.HeartDisease = true
		case "hypertension":
			intake.FamilyHistory.Hypertension = true
		default:
			return intake, fmt.Errorf("unknown family history condition %q", condition)
		}
	}

	return intake, nil
}

func printRiskAssessment(result assessments.RiskAssessment) {
	bmi := "n/a"
	if result.BMI != nil {
		bmi = fmt.Sprintf("%.1f", *result.BMI)
	}
	category := "n/a"
	if result.BMICategory != nil {
		category = string(*result.BMICategory)
	}

	fmt.Printf("BMI: %s (%s)\n", bmi, category)
	fmt.Printf("Risk factors: %d\n", result.RiskFactorCount)
	fmt.Printf("Cancer risk level: %s\n", result.CancerRiskLevel)
}

func init() {
	flags := assessmentsClassifyCmd.Flags()
	flags.Float64Var(&classifyParams.Height, "height", 0, "Height in centimeters")
	flags.Float64Var(&classifyParams.Weight, "weight", 0, "Weight in kilograms")
	flags.StringVar(&classifyParams.Smoking, "smoking", string(assessments.SmokingStatusNever), "Smoking status (never, former, current)")
	flags.StringVar(&classifyParams.Alcohol, "alcohol", string(assessments.AlcoholConsumptionNone), "Alcohol consumption (none, light, moderate, heavy)")
	flags.StringSliceVar(&classifyParams.FamilyHistory, "family-history", nil, "Family history conditions (cancer, diabetes, heart-disease, hypertension)")

	assessmentsCmd.AddCommand(assessmentsClassifyCmd)
	rootCmd.AddCommand(assessmentsCmd)
}
