package model

type Table struct {
	DTO
	TableNumber string `gorm:"uniqueIndex;not null" json:"table_number"`
	Status      string `gorm:"not null;default:available" json:"status"` // available, occupied, reserved, out-of-service
}

type CreateTableInput struct {
	TableNumber string `json:"table_number" validate:"required"`
	Status      string `json:"status" validate:"omitempty,oneof=available occupied reserved out-of-service"`
}

type UpdateTableInput struct {
	TableNumber *string `json:"table_number,omitempty"`
	Status      *string `json:"status,omitempty" validate:"omitempty,oneof=available occupied reserved out-of-service"`
}
