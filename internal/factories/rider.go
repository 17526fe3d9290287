package factories

import (
	"github.com/chrisdamba/ridehailsim/internal/models"
	"github.com/jaswdr/faker"
)

type RiderFactory struct{}

func (f *RiderFactory) CreateRider(cfg *models.Config, fake faker.Faker) (*models.Rider, error) {
	origin := randomLocation(cfg, fake)
	destination := randomLocation(cfg, fake)
	patience := int64(fake.IntBetween(1, int(cfg.Generator.MaxPatience)))
	return models.NewRider(participantID(fake), origin, destination, patience)
}
