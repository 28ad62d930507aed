package command

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/wellspring-health/clinic/outbox"
)

var outboxCmd = &cobra.Command{
	Use:   "outbox",
	Short: "Notification outbox",
	Long:  "The outbox command is used to deliver pending patient notifications",
}

var outboxRelayCmd = &cobra.Command{
	Use:   "relay",
	Short: "Publish pending notification events to kafka",
	RunE: func(cmd *cobra.Command, args []string) error {
		return Run(relayOutbox,
			fx.Provide(
				outbox.NewKafkaConfig,
				outbox.NewKafkaPublisher,
				outbox.NewRelayConfig,
				outbox.NewRelay,
			),
		)
	},
}

func relayOutbox(relay *outbox.Relay) error {
	published, err := relay.RelayPending(context.Background())
	fmt.Printf("Published %v events\n", published)
	return err
}

func init() {
	outboxCmd.AddCommand(outboxRelayCmd)
	rootCmd.AddCommand(outboxCmd)
}
