package helper

import (
	"errors"

	"wedding_manager/database"
	"wedding_manager/model"

	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

// SearchGuests resolves the public RSVP view. Without a name it returns every
// group with its full member list plus every ungrouped guest. With a name it
// matches guests by case-insensitive substring, then re-fetches the complete
// groups of the grouped matches so a family always shows up whole.
func SearchGuests(name string) (model.SearchGuestsResponse, error) {
	db := database.DB
	response := model.SearchGuestsResponse{
		Groups:           []model.GuestGroupResponse{},
		IndividualGuests: []model.GuestResponse{},
	}

	if name == "" {
		var groups []model.GuestGroup
		if err := db.Preload("Guests").Find(&groups).Error; err != nil {
			return response, err
		}

		var individuals []model.Guest
		if err := db.Where("group_id IS NULL").Find(&individuals).Error; err != nil {
			return response, err
		}

		copier.Copy(&response.Groups, &groups)
		copier.Copy(&response.IndividualGuests, &individuals)
		normalizeGroupMembers(response.Groups)
		return response, nil
	}

	var matches []model.Guest
	if err := db.Where("LOWER(name) LIKE LOWER(?)", "%"+name+"%").Find(&matches).Error; err != nil {
		return response, err
	}

	groupIds := []uint{}
	seen := map[uint]bool{}
	individuals := []model.Guest{}
	for _, guest := range matches {
		if guest.GroupId != nil {
			if !seen[*guest.GroupId] {
				seen[*guest.GroupId] = true
				groupIds = append(groupIds, *guest.GroupId)
			}
		} else {
			individuals = append(individuals, guest)
		}
	}

	if len(groupIds) > 0 {
		var groups []model.GuestGroup
		if err := db.Preload("Guests").Where("id IN ?", groupIds).Find(&groups).Error; err != nil {
			return response, err
		}
		copier.Copy(&response.Groups, &groups)
		normalizeGroupMembers(response.Groups)
	}
	copier.Copy(&response.IndividualGuests, &individuals)

	return response, nil
}

func normalizeGroupMembers(groups []model.GuestGroupResponse) {
	for i := range groups {
		if groups[i].Guests == nil {
			groups[i].Guests = []model.GuestResponse{}
		}
	}
}

// ConfirmGuests flips confirmed on each id independently. Misses go to
// notFound instead of failing the batch, and the two lists always partition
// the input in order, duplicates included.
func ConfirmGuests(guestIds []uint) (confirmed []uint, notFound []uint, err error) {
	db := database.DB
	confirmed = []uint{}
	notFound = []uint{}

	for _, guestId := range guestIds {
		var guest model.Guest
		if err := db.First(&guest, guestId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				notFound = append(notFound, guestId)
				continue
			}
			return confirmed, notFound, err
		}

		if err := db.Model(&guest).Update("confirmed", true).Error; err != nil {
			return confirmed, notFound, err
		}
		confirmed = append(confirmed, guestId)
	}

	return confirmed, notFound, nil
}

func GroupExists(groupId uint) (bool, error) {
	var count int64
	if err := database.DB.Model(&model.GuestGroup{}).Where("id = ?", groupId).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// DeleteGroup unlinks every member before removing the group row. Guests are
// never cascade-deleted with their group.
func DeleteGroup(groupId uint) error {
	db := database.DB

	var group model.GuestGroup
	if err := db.First(&group, groupId).Error; err != nil {
		return err
	}

	if err := db.Model(&model.Guest{}).Where("group_id = ?", groupId).Update("group_id", nil).Error; err != nil {
		return err
	}

	return db.Delete(&group).Error
}

func GuestStats() (model.GuestStats, error) {
	db := database.DB
	var stats model.GuestStats

	if err := db.Model(&model.Guest{}).Count(&stats.TotalGuests).Error; err != nil {
		return stats, err
	}
	if err := db.Model(&model.Guest{}).Where("confirmed = ?", true).Count(&stats.ConfirmedGuests).Error; err != nil {
		return stats, err
	}
	if err := db.Model(&model.Guest{}).Where("is_child = ?", true).Count(&stats.ChildrenCount).Error; err != nil {
		return stats, err
	}
	if err := db.Model(&model.GuestGroup{}).Count(&stats.TotalGroups).Error; err != nil {
		return stats, err
	}

	stats.PendingGuests = stats.TotalGuests - stats.ConfirmedGuests
	stats.AdultsCount = stats.TotalGuests - stats.ChildrenCount

	return stats, nil
}
