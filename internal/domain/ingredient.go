package types

import (
	"github.com/google/uuid"
)

// Ingredient is immutable reference data administered out-of-band.
type Ingredient struct {
	ID              uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name            string    `gorm:"column:name;not null;index:,unique,composite:name_unit" json:"name"`
	MeasurementUnit string    `gorm:"column:measurement_unit;not null;index:,unique,composite:name_unit" json:"measurement_unit"`
}

func (Ingredient) TableName() string { return "ingredient" }
