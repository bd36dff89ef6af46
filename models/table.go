package models

import (
	"time"

	"gorm.io/gorm"
)

// Table is a small embedded spreadsheet attached to a BusinessModel.
// Columns and rows are reconciled wholesale on each update; every level
// is soft-deleted independently.
type Table struct {
	ID              uint           `json:"id" gorm:"primaryKey"`
	BusinessModelID uint           `json:"businessModelId" gorm:"not null;index"`
	Name            string         `json:"name" gorm:"not null"`
	Order           int            `json:"order" gorm:"not null;default:0"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
	DeletedAt       gorm.DeletedAt `json:"-" gorm:"index"`
	DeletedBy       *string        `json:"-" gorm:"default:null"`

	Columns []Column `json:"columns,omitempty" gorm:"foreignKey:TableID"`
	Rows    []Row    `json:"rows,omitempty" gorm:"foreignKey:TableID"`
}

// Column holds a stable key (referenced by cells) and a display label.
type Column struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	TableID   uint           `json:"tableId" gorm:"not null;index"`
	Key       string         `json:"key" gorm:"not null"`
	Label     string         `json:"label" gorm:"not null"`
	Order     int            `json:"order" gorm:"not null;default:0"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
	DeletedBy *string        `json:"-" gorm:"default:null"`
}

// Row owns at most one cell per column.
type Row struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	TableID   uint           `json:"tableId" gorm:"not null;index"`
	Order     int            `json:"order" gorm:"not null;default:0"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
	DeletedBy *string        `json:"-" gorm:"default:null"`

	Cells []Cell `json:"cells,omitempty" gorm:"foreignKey:RowID"`
}

// Cell references its column by id. Cells are recreated on every row
// update, never resurrected.
type Cell struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	RowID     uint           `json:"rowId" gorm:"not null;index:idx_cells_row_column"`
	ColumnID  uint           `json:"columnId" gorm:"not null;index:idx_cells_row_column"`
	Value     string         `json:"value" gorm:"type:text"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
	DeletedBy *string        `json:"-" gorm:"default:null"`
}
