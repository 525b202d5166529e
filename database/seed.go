package database

import (
	"log"

	"wedding_manager/model"
	"wedding_manager/utils"

	"gorm.io/gorm"
)

// SeedData loads a starter guest list and gift registry. It only runs against
// empty tables so a restart never duplicates rows.
func SeedData(db *gorm.DB) {
	var guestCount, giftCount int64
	db.Model(&model.Guest{}).Count(&guestCount)
	db.Model(&model.Gift{}).Count(&giftCount)

	if guestCount == 0 {
		families := map[string][]model.Guest{
			"Família de Alexandre": {
				{Name: "Alexandre"},
				{Name: "Gilza"},
			},
			"Família de Clarisse": {
				{Name: "Clarisse"},
				{Name: "Sophie", IsChild: true},
			},
			"Família de João": {
				{Name: "João"},
				{Name: "Juli"},
				{Name: "Pedrinho", IsChild: true},
			},
			"Família de Lucas": {
				{Name: "Lucas"},
				{Name: "Emilly"},
				{Name: "Alice", IsChild: true},
				{Name: "Aylla", IsChild: true},
			},
		}

		for name, guests := range families {
			group := model.GuestGroup{Name: name}
			if err := db.Create(&group).Error; err != nil {
				log.Println("failed to seed guest group:", name, "error:", err)
				continue
			}
			for i := range guests {
				guests[i].GroupId = &group.ID
			}
			if err := db.Create(&guests).Error; err != nil {
				log.Println("failed to seed guests for group:", name, "error:", err)
			}
		}

		individuals := []model.Guest{
			{Name: "Padre Marcos"},
			{Name: "Dona Zefa"},
			{Name: "Seu Raimundo"},
		}
		if err := db.Create(&individuals).Error; err != nil {
			log.Println("failed to seed individual guests:", err)
		}
	}

	if giftCount == 0 {
		gifts := []model.Gift{
			{Title: "Jogo de Panelas", Description: "Conjunto com 5 panelas antiaderentes", Price: 299.99, Image: utils.Ptr("https://example.com/panelas.jpg")},
			{Title: "Liquidificador", Description: "Liquidificador 900W com jarra de vidro", Price: 189.90, Image: utils.Ptr("https://example.com/liquidificador.jpg")},
			{Title: "Jogo de Toalhas", Description: "Kit com 4 toalhas de banho", Price: 120.00, Image: utils.Ptr("https://example.com/toalhas.jpg")},
			{Title: "Cafeteira", Description: "Cafeteira elétrica programável", Price: 249.50, Image: utils.Ptr("https://example.com/cafeteira.jpg")},
		}
		if err := db.Create(&gifts).Error; err != nil {
			log.Println("failed to seed gifts:", err)
		}
	}

	log.Println("Seed finished")
}
