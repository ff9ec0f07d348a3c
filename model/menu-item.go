package model

type MenuItem struct {
	DTO
	Name        string  `gorm:"not null" json:"name"`
	Slug        string  `gorm:"uniqueIndex;size:120" json:"slug"`
	Price       float64 `gorm:"not null" json:"price"`
	Category    string  `gorm:"not null" json:"category"`
	Description string  `json:"description"`
	ImageUrl    string  `json:"image_url"`
	IsAvailable bool    `gorm:"not null" json:"is_available"`
}

type CreateMenuItemInput struct {
	Name        string  `json:"name" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Category    string  `json:"category" validate:"required"`
	Description string  `json:"description"`
	ImageUrl    string  `json:"image_url"`
	IsAvailable *bool   `json:"is_available,omitempty"`
}

type UpdateMenuItemInput struct {
	Name        *string  `json:"name,omitempty"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	Category    *string  `json:"category,omitempty"`
	Description *string  `json:"description,omitempty"`
	ImageUrl    *string  `json:"image_url,omitempty"`
	IsAvailable *bool    `json:"is_available,omitempty"`
}
