package event

import (
	"context"
	"sync"

	"hms/config"
	"hms/infras/kafka"
	billingService "hms/internal/domains/billing/service"

	"github.com/rs/zerolog/log"
)

// Consumer drives the kafka handlers of the domains that react to events.
type Consumer struct {
	Config  *config.Config
	Kafka   kafka.Client
	Billing billingService.Billing
}

func New(cfg *config.Config, client kafka.Client, billing billingService.Billing) *Consumer {
	return &Consumer{
		Config:  cfg,
		Kafka:   client,
		Billing: billing,
	}
}

// Run blocks until ctx is done and every consumer loop has returned.
func (c *Consumer) Run(ctx context.Context) {
	var wg sync.WaitGroup

	group := c.Config.Kafka.ConsumerGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		log.Info().Str("topic", c.Config.Kafka.Topics.Billing).Str("group", group).Msg("Starting ledger event consumer.")

		c.Kafka.Consume(ctx, group, c.Config.Kafka.Topics.Billing, c.Billing.HandleLedgerEvent)
	}()

	wg.Wait()

	if err := c.Kafka.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close Kafka client.")
	}
}
