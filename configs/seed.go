package configs

import (
	"log"

	"github.com/Isaacjdv/futbolapp-backend/entity"
)

// SeedTeams loads the initial national teams on first boot. Skipped when
// the table already has rows, so restarts never duplicate or overwrite.
func SeedTeams() error {
	var count int64
	if err := db.Model(&entity.Team{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	teams := []entity.Team{
		{Name: "Argentina", Logo: "https://flagcdn.com/w320/ar.png"},
		{Name: "Brasil", Logo: "https://flagcdn.com/w320/br.png"},
		{Name: "Ecuador", Logo: "https://flagcdn.com/w320/ec.png"},
		{Name: "España", Logo: "https://flagcdn.com/w320/es.png"},
		{Name: "Francia", Logo: "https://flagcdn.com/w320/fr.png"},
		{Name: "Alemania", Logo: "https://flagcdn.com/w320/de.png"},
		{Name: "Italia", Logo: "https://flagcdn.com/w320/it.png"},
		{Name: "Portugal", Logo: "https://flagcdn.com/w320/pt.png"},
	}
	if err := db.Create(&teams).Error; err != nil {
		return err
	}

	products := []entity.Product{
		{Name: "Camiseta Argentina Titular 2024", Description: "Camiseta oficial de local", Price: 89.99, Image: "https://example.com/jerseys/arg-home.png", Stock: 25, TeamID: &teams[0].ID},
		{Name: "Camiseta Brasil Titular 2024", Description: "Camiseta oficial de local", Price: 84.99, Image: "https://example.com/jerseys/bra-home.png", Stock: 30, TeamID: &teams[1].ID},
		{Name: "Camiseta Ecuador Titular 2024", Description: "Camiseta oficial de local", Price: 69.99, Image: "https://example.com/jerseys/ecu-home.png", Stock: 40, TeamID: &teams[2].ID},
		{Name: "Camiseta España Alternativa 2024", Description: "Camiseta oficial de visitante", Price: 79.99, Image: "https://example.com/jerseys/esp-away.png", Stock: 15, TeamID: &teams[3].ID},
	}
	if err := db.Create(&products).Error; err != nil {
		return err
	}

	log.Printf("seeded %d teams and %d products", len(teams), len(products))
	return nil
}
