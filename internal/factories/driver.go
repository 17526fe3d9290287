package factories

import (
	"strings"

	"github.com/chrisdamba/ridehailsim/internal/models"
	"github.com/jaswdr/faker"
)

type DriverFactory struct{}

func (f *DriverFactory) CreateDriver(cfg *models.Config, fake faker.Faker) (*models.Driver, error) {
	return models.NewDriver(
		participantID(fake),
		randomLocation(cfg, fake),
		fake.IntBetween(1, cfg.Generator.MaxSpeed),
	)
}

func randomLocation(cfg *models.Config, fake faker.Faker) models.Location {
	return models.NewLocation(
		fake.IntBetween(0, cfg.Generator.GridRows-1),
		fake.IntBetween(0, cfg.Generator.GridCols-1),
	)
}

// participantID combines a human-readable name with a short random suffix
// so that generated identifiers stay unique across large scenarios. Both
// parts come from the seeded faker, keeping scenarios reproducible.
func participantID(fake faker.Faker) string {
	name := strings.ToLower(fake.Person().FirstName())
	return name + "-" + fake.UUID().V4()[:8]
}
