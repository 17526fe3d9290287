// Package factories fabricates random but reproducible simulation
// scenarios: a seeded faker hands out drivers and riders, and the scenario
// generator turns them into a seed event list or a textual event script.
package factories

import (
	"fmt"
	"io"
	"math/rand"
	"sort"

	"github.com/chrisdamba/ridehailsim/internal/models"
	"github.com/jaswdr/faker"
)

type ScenarioGenerator struct {
	cfg  *models.Config
	fake faker.Faker
}

// NewScenarioGenerator seeds the generator from cfg.Seed; the same seed
// always produces the same scenario.
func NewScenarioGenerator(cfg *models.Config) *ScenarioGenerator {
	return &ScenarioGenerator{
		cfg:  cfg,
		fake: faker.NewWithSeed(rand.NewSource(cfg.Seed)),
	}
}

type scenarioEntry struct {
	timestamp int64
	line      string
	event     models.Event
}

func (g *ScenarioGenerator) generate() ([]scenarioEntry, error) {
	gen := g.cfg.Generator
	entries := make([]scenarioEntry, 0, gen.Drivers+gen.Riders)

	driverFactory := &DriverFactory{}
	for i := 0; i < gen.Drivers; i++ {
		driver, err := driverFactory.CreateDriver(g.cfg, g.fake)
		if err != nil {
			return nil, fmt.Errorf("failed to create driver: %w", err)
		}
		// drivers come online early so riders have someone to match with
		timestamp := int64(g.fake.IntBetween(0, int(gen.Duration/4)))
		entries = append(entries, scenarioEntry{
			timestamp: timestamp,
			line: fmt.Sprintf("%d %s %s %s %d",
				timestamp, models.EventDriverRequest, driver.ID, driver.Location, driver.Speed),
			event: models.NewDriverRequest(timestamp, driver),
		})
	}

	riderFactory := &RiderFactory{}
	for i := 0; i < gen.Riders; i++ {
		rider, err := riderFactory.CreateRider(g.cfg, g.fake)
		if err != nil {
			return nil, fmt.Errorf("failed to create rider: %w", err)
		}
		timestamp := int64(g.fake.IntBetween(0, int(gen.Duration)))
		entries = append(entries, scenarioEntry{
			timestamp: timestamp,
			line: fmt.Sprintf("%d %s %s %s %s %d",
				timestamp, models.EventRiderRequest, rider.ID, rider.Origin, rider.Destination, rider.Patience),
			event: models.NewRiderRequest(timestamp, rider),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].timestamp < entries[j].timestamp
	})
	return entries, nil
}

// Events returns the generated scenario as a seed event list.
func (g *ScenarioGenerator) Events() ([]models.Event, error) {
	entries, err := g.generate()
	if err != nil {
		return nil, err
	}
	events := make([]models.Event, len(entries))
	for i, entry := range entries {
		events[i] = entry.event
	}
	return events, nil
}

// WriteScript renders the generated scenario as an event script.
func (g *ScenarioGenerator) WriteScript(w io.Writer) error {
	entries, err := g.generate()
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "# generated scenario: seed=%d drivers=%d riders=%d\n",
		g.cfg.Seed, g.cfg.Generator.Drivers, g.cfg.Generator.Riders); err != nil {
		return err
	}
	for _, entry := range entries {
		if _, err := fmt.Fprintln(w, entry.line); err != nil {
			return err
		}
	}
	return nil
}
