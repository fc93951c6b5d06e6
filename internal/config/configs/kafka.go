package configs

// Kafka configures the lifecycle event publisher.
type Kafka struct {
	Brokers []string `env:"BROKERS" envSeparator:","`
	Topic   string   `env:"TOPIC" envDefault:"clip-market.ledger-events"`
}

// Enabled reports whether any broker was configured.
func (c Kafka) Enabled() bool {
	return len(c.Brokers) > 0
}
