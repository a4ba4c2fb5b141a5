package main

import (
	"context"

	"leadfilter-service/internal/infrastructure/config"
	leadRepo "leadfilter-service/internal/interface/repository"
	"leadfilter-service/internal/usecase"
	"leadfilter-service/pkg/logger"
	"leadfilter-service/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Filter a leads file once and exit",
	Long: `Read the input document, keep the most recent lead per unique _id
and then per unique email, and write the survivors to the output file.
Without flags the paths default to leads.json and filtered_leads_output.json
(overridable with LEADS_INPUT and LEADS_OUTPUT).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		input, _ := cmd.Flags().GetString("input")
		output, _ := cmd.Flags().GetString("output")
		if input == "" {
			input = cfg.InputPath
		}
		if output == "" {
			output = cfg.OutputPath
		}

		log := logger.NewLogger()
		m := metrics.NewMetrics(cfg.MetricsNamespace, prometheus.NewRegistry())
		processor := usecase.NewLeadProcessor(leadRepo.NewJSONLeadRepository(log), m, log)

		return processor.ProcessLeads(context.Background(), input, output)
	},
}

func init() {
	processCmd.Flags().String("input", "", "path of the input leads document (default leads.json)")
	processCmd.Flags().String("output", "", "path of the filtered output document (default filtered_leads_output.json)")
	rootCmd.AddCommand(processCmd)
}
