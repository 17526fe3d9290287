package factories

import (
	"bytes"
	"testing"

	"github.com/chrisdamba/ridehailsim/internal/models"
	"github.com/chrisdamba/ridehailsim/internal/simulator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generatorConfig(seed int64) *models.Config {
	return &models.Config{
		Seed: seed,
		Generator: models.GeneratorConfig{
			Drivers:     4,
			Riders:      12,
			GridRows:    20,
			GridCols:    20,
			MaxSpeed:    5,
			MaxPatience: 30,
			Duration:    100,
		},
	}
}

func TestEventsAreSortedAndInBounds(t *testing.T) {
	g := NewScenarioGenerator(generatorConfig(1))
	events, err := g.Events()
	require.NoError(t, err)
	require.Len(t, events, 16)

	cfg := generatorConfig(1)
	var prev int64
	for _, event := range events {
		assert.GreaterOrEqual(t, event.Timestamp(), prev)
		assert.LessOrEqual(t, event.Timestamp(), cfg.Generator.Duration)
		prev = event.Timestamp()

		switch e := event.(type) {
		case *models.DriverRequest:
			assert.Less(t, e.Driver.Location.Row, cfg.Generator.GridRows)
			assert.Less(t, e.Driver.Location.Col, cfg.Generator.GridCols)
			assert.GreaterOrEqual(t, e.Driver.Speed, 1)
			assert.LessOrEqual(t, e.Driver.Speed, cfg.Generator.MaxSpeed)
		case *models.RiderRequest:
			assert.GreaterOrEqual(t, e.Rider.Patience, int64(1))
			assert.LessOrEqual(t, e.Rider.Patience, cfg.Generator.MaxPatience)
		default:
			t.Fatalf("unexpected event type %T", event)
		}
	}
}

func TestSameSeedSameScenario(t *testing.T) {
	var first, second bytes.Buffer
	require.NoError(t, NewScenarioGenerator(generatorConfig(42)).WriteScript(&first))
	require.NoError(t, NewScenarioGenerator(generatorConfig(42)).WriteScript(&second))
	assert.Equal(t, first.String(), second.String())

	var other bytes.Buffer
	require.NoError(t, NewScenarioGenerator(generatorConfig(43)).WriteScript(&other))
	assert.NotEqual(t, first.String(), other.String())
}

func TestWrittenScriptRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewScenarioGenerator(generatorConfig(7)).WriteScript(&buf))

	events, err := simulator.ParseEventScript(&buf)
	require.NoError(t, err)
	assert.Len(t, events, 16)
}
