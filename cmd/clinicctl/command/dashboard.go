package command

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/wellspring-health/clinic/api"
	"github.com/wellspring-health/clinic/dashboard"
	"github.com/wellspring-health/clinic/report"
)

var dashboardParams = struct {
	PatientId string
	Out       string
}{}

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Patient dashboards",
	Long:  "The dashboard command is used to inspect and export patient dashboards",
}

var dashboardShowCmd = &cobra.Command{
	Use:   "show {patientId}",
	Args:  cobra.ExactArgs(1),
	Short: "Print the dashboard of a patient",
	RunE: func(cmd *cobra.Command, args []string) error {
		dashboardParams.PatientId = args[0]
		return Run(showDashboard)
	},
}

var dashboardExportCmd = &cobra.Command{
	Use:   "export {patientId}",
	Args:  cobra.ExactArgs(1),
	Short: "Export the dashboard of a patient to a spreadsheet",
	RunE: func(cmd *cobra.Command, args []string) error {
		dashboardParams.PatientId = args[0]
		return Run(exportDashboard)
	},
}

func showDashboard(service dashboard.Service) error {
	d, err := service.Get(context.Background(), dashboardParams.PatientId)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(api.NewDashboardDto(d), "", "  ")
	if err != nil {
		return err
	}

	fmt.Println(string(out))
	return nil
}

func exportDashboard(service dashboard.Service) error {
	d, err := service.Get(context.Background(), dashboardParams.PatientId)
	if err != nil {
		return err
	}

	file, err := report.NewReport(dashboardParams.PatientId, *d, time.Now().UTC()).Generate()
	if err != nil {
		return err
	}
	if err := file.Save(dashboardParams.Out); err != nil {
		return fmt.Errorf("unable to save report: %w", err)
	}

	fmt.Printf("Dashboard of patient %s exported to %s\n", dashboardParams.PatientId, dashboardParams.Out)
	return nil
}

func init() {
	dashboardExportCmd.Flags().StringVarP(&dashboardParams.Out, "out", "o", "dashboard.xlsx", "Path of the exported spreadsheet")

	dashboardCmd.AddCommand(dashboardShowCmd)
	dashboardCmd.AddCommand(dashboardExportCmd)
	rootCmd.AddCommand(dashboardCmd)
}
