package helper

import (
	"errors"
	"math/rand"
	"sort"

	"wedding_manager/database"
	"wedding_manager/model"

	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

// ListGifts builds the public registry view. Purchased gifts always trail the
// unpurchased ones; inside each partition the order is by price when asked
// for, otherwise a fresh shuffle so attention spreads across the registry.
func ListGifts(sortByPrice string) ([]model.GiftResponse, error) {
	db := database.DB

	var gifts []model.Gift
	if err := db.Find(&gifts).Error; err != nil {
		return nil, err
	}

	available := []model.Gift{}
	purchased := []model.Gift{}
	for _, gift := range gifts {
		if gift.Purchased {
			purchased = append(purchased, gift)
		} else {
			available = append(available, gift)
		}
	}

	switch sortByPrice {
	case "asc":
		sortGiftsByPrice(available, true)
		sortGiftsByPrice(purchased, true)
	case "desc":
		sortGiftsByPrice(available, false)
		sortGiftsByPrice(purchased, false)
	default:
		rand.Shuffle(len(available), func(i, j int) { available[i], available[j] = available[j], available[i] })
		rand.Shuffle(len(purchased), func(i, j int) { purchased[i], purchased[j] = purchased[j], purchased[i] })
	}

	ordered := append(available, purchased...)
	responses := []model.GiftResponse{}
	copier.Copy(&responses, &ordered)
	return responses, nil
}

func sortGiftsByPrice(gifts []model.Gift, asc bool) {
	sort.SliceStable(gifts, func(i, j int) bool {
		if asc {
			return gifts[i].Price < gifts[j].Price
		}
		return gifts[i].Price > gifts[j].Price
	})
}

// ListGiftsAdmin is the flat admin listing: optional purchased filter,
// price order when asked for, id order otherwise. No purchased-last shuffle.
func ListGiftsAdmin(filter model.GiftFilter) ([]model.GiftResponse, error) {
	db := database.DB.Model(&model.Gift{})

	if filter.Purchased != nil {
		db = db.Where("purchased = ?", *filter.Purchased)
	}
	if filter.SortByPrice != nil && (*filter.SortByPrice == "asc" || *filter.SortByPrice == "desc") {
		db = db.Order("price " + *filter.SortByPrice)
	} else {
		db = db.Order("id asc")
	}

	var gifts []model.Gift
	if err := db.Find(&gifts).Error; err != nil {
		return nil, err
	}

	responses := []model.GiftResponse{}
	copier.Copy(&responses, &gifts)
	return responses, nil
}

// PurchaseGifts marks each id purchased independently, partitioning the
// input into purchased and notFound exactly like guest confirmation.
func PurchaseGifts(giftIds []uint) (purchased []uint, notFound []uint, err error) {
	db := database.DB
	purchased = []uint{}
	notFound = []uint{}

	for _, giftId := range giftIds {
		var gift model.Gift
		if err := db.First(&gift, giftId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				notFound = append(notFound, giftId)
				continue
			}
			return purchased, notFound, err
		}

		if err := db.Model(&gift).Update("purchased", true).Error; err != nil {
			return purchased, notFound, err
		}
		purchased = append(purchased, giftId)
	}

	return purchased, notFound, nil
}

// CollectCheckoutGifts resolves the checkout id list. Unknown ids land in
// notFound; gifts that are already purchased are silently skipped, they are
// neither eligible nor an error.
func CollectCheckoutGifts(giftIds []uint) (eligible []model.Gift, notFound []uint, err error) {
	db := database.DB
	eligible = []model.Gift{}
	notFound = []uint{}

	for _, giftId := range giftIds {
		var gift model.Gift
		if err := db.First(&gift, giftId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				notFound = append(notFound, giftId)
				continue
			}
			return eligible, notFound, err
		}

		if !gift.Purchased {
			eligible = append(eligible, gift)
		}
	}

	return eligible, notFound, nil
}

func GiftStats() (model.GiftStats, error) {
	db := database.DB
	var stats model.GiftStats

	if err := db.Model(&model.Gift{}).Count(&stats.Total).Error; err != nil {
		return stats, err
	}
	if err := db.Model(&model.Gift{}).Where("purchased = ?", true).Count(&stats.Purchased).Error; err != nil {
		return stats, err
	}
	if err := db.Model(&model.Gift{}).Select("COALESCE(SUM(price), 0)").Scan(&stats.TotalValue).Error; err != nil {
		return stats, err
	}
	if err := db.Model(&model.Gift{}).Where("purchased = ?", true).Select("COALESCE(SUM(price), 0)").Scan(&stats.PurchasedValue).Error; err != nil {
		return stats, err
	}

	stats.Available = stats.Total - stats.Purchased

	return stats, nil
}
