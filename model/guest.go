package model

type Guest struct {
	DTO
	Name      string `gorm:"size:255;not null" json:"name"`
	Confirmed bool   `gorm:"default:false" json:"confirmed"`
	IsChild   bool   `gorm:"default:false" json:"isChild"`
	GroupId   *uint  `gorm:"index" json:"groupId"`

	Group *GuestGroup `gorm:"foreignKey:GroupId" json:"-"`
}

type GuestGroup struct {
	DTO
	Name string `gorm:"size:255;not null" json:"name"`

	Guests []Guest `gorm:"foreignKey:GroupId" json:"guests"`
}

type GuestResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Confirmed bool   `json:"confirmed"`
	IsChild   bool   `json:"isChild"`
	GroupId   *uint  `json:"groupId"`
}

type GuestGroupResponse struct {
	ID     uint            `json:"id"`
	Name   string          `json:"name"`
	Guests []GuestResponse `json:"guests"`
}

type SearchGuestsResponse struct {
	Groups           []GuestGroupResponse `json:"groups"`
	IndividualGuests []GuestResponse      `json:"individualGuests"`
}

type CreateGuestInput struct {
	Name    string `json:"name" validate:"required,min=1,max=255"`
	IsChild *bool  `json:"isChild" validate:"omitempty"`
	GroupId *uint  `json:"groupId" validate:"omitempty,gt=0"`
}

type UpdateGuestInput struct {
	Name      *string `json:"name" validate:"omitempty,min=1,max=255"`
	Confirmed *bool   `json:"confirmed" validate:"omitempty"`
	IsChild   *bool   `json:"isChild" validate:"omitempty"`
	GroupId   *uint   `json:"groupId" validate:"omitempty,gt=0"`
}

type ConfirmGuestsInput struct {
	GuestIds []uint `json:"guestIds" validate:"required,min=1"`
}

type GuestFilter struct {
	Confirmed *bool `query:"confirmed"`
	GroupId   *uint `query:"groupId"`
}

type CreateGuestGroupInput struct {
	Name string `json:"name" validate:"required,min=1,max=255"`
}

type UpdateGuestGroupInput struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=255"`
}

type GuestStats struct {
	TotalGuests     int64 `json:"totalGuests"`
	ConfirmedGuests int64 `json:"confirmedGuests"`
	PendingGuests   int64 `json:"pendingGuests"`
	TotalGroups     int64 `json:"totalGroups"`
	AdultsCount     int64 `json:"adultsCount"`
	ChildrenCount   int64 `json:"childrenCount"`
}
