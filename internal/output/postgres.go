package output

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/chrisdamba/ridehailsim/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresOutput inserts activity records into per-category fact tables.
type PostgresOutput struct {
	pool *pgxpool.Pool
}

func NewPostgresOutput(config *models.DatabaseConfig) (*PostgresOutput, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.Host, config.Port, config.User, config.Password, config.DBName, config.SSLMode,
	)

	pool, err := pgxpool.New(context.Background(), connStr)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}
	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		return nil, fmt.Errorf("error pinging database: %w", err)
	}

	return &PostgresOutput{pool: pool}, nil
}

func (p *PostgresOutput) WriteMessage(topic string, msg []byte) error {
	var record models.ActivityRecord
	if err := json.Unmarshal(msg, &record); err != nil {
		return err
	}

	table := topicToTable(topic)
	query := fmt.Sprintf(`
        INSERT INTO %s (timestamp, category, action, participant_id, row, col)
        VALUES ($1, $2, $3, $4, $5, $6)`, table)

	_, err := p.pool.Exec(context.Background(), query,
		record.Timestamp,
		record.Category,
		record.Action,
		record.ID,
		record.Row,
		record.Col,
	)
	if err != nil {
		return fmt.Errorf("failed to insert into %s: %w", table, err)
	}
	return nil
}

func (p *PostgresOutput) Close() error {
	p.pool.Close()
	return nil
}

func topicToTable(topic string) string {
	tableMap := map[string]string{
		"rider_activity_events":  "fact_rider_activity",
		"driver_activity_events": "fact_driver_activity",
	}
	if table, ok := tableMap[topic]; ok {
		return table
	}
	return "fact_" + strings.TrimSuffix(topic, "_events")
}
