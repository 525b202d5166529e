package model

type Gift struct {
	DTO
	Title       string  `gorm:"size:255;not null" json:"title"`
	Description string  `gorm:"not null" json:"description"`
	Price       float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	Image       *string `json:"image"`
	Purchased   bool    `gorm:"default:false" json:"purchased"`
}

type GiftResponse struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       *string `json:"image"`
	Purchased   bool    `json:"purchased"`
}

type CreateGiftInput struct {
	Title       string  `json:"title" validate:"required,min=1,max=255"`
	Description string  `json:"description" validate:"required,min=1"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Image       string  `json:"image" validate:"required,url"`
}

type UpdateGiftInput struct {
	Title       *string  `json:"title" validate:"omitempty,min=1,max=255"`
	Description *string  `json:"description" validate:"omitempty,min=1"`
	Price       *float64 `json:"price" validate:"omitempty,gt=0"`
	Image       *string  `json:"image" validate:"omitempty,url"`
	Purchased   *bool    `json:"purchased" validate:"omitempty"`
}

type GiftIdsInput struct {
	GiftIds []uint `json:"giftIds" validate:"required,min=1"`
}

type GiftFilter struct {
	Purchased   *bool   `query:"purchased"`
	SortByPrice *string `query:"sortByPrice"`
}

type CheckoutResponse struct {
	CheckoutUrl string `json:"checkoutUrl"`
	NotFound    []uint `json:"notFound"`
}

type GiftStats struct {
	Total          int64   `json:"total"`
	Purchased      int64   `json:"purchased"`
	Available      int64   `json:"available"`
	TotalValue     float64 `json:"totalValue"`
	PurchasedValue float64 `json:"purchasedValue"`
}
