package output

import (
	"fmt"

	"github.com/chrisdamba/ridehailsim/internal/models"
	"github.com/chrisdamba/ridehailsim/internal/output/producers"
)

// NewDestination selects the activity sink from the configuration. Kafka
// wins over file formats when enabled; the console is the fallback.
func NewDestination(cfg *models.Config) (Destination, error) {
	if cfg.KafkaEnabled {
		producer, err := producers.NewSaramaProducer(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
		}
		return producer, nil
	}

	switch cfg.OutputFormat {
	case "parquet":
		return NewParquetOutput(cfg)
	case "postgres":
		return NewPostgresOutput(&cfg.Database)
	case "json":
		if cfg.OutputPath == "" {
			return nil, fmt.Errorf("json output requires output_path")
		}
		return NewJSONOutput(cfg.OutputPath, cfg.OutputFolder), nil
	case "console":
		return &ConsoleOutput{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", cfg.OutputFormat)
	}
}
