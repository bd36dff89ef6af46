package repositories

import (
	"time"

	"gorm.io/gorm"

	"github.com/danakita/cms-backend/dto"
	"github.com/danakita/cms-backend/models"
)

// TableRepository reconciles the nested table tree (table -> columns ->
// rows -> cells) against persisted state. Every multi-step write runs
// inside one transaction; partial writes are never visible.
type TableRepository struct {
	db *gorm.DB
}

// NewTableRepository creates a new table repository instance
func NewTableRepository(db *gorm.DB) *TableRepository {
	return &TableRepository{db: db}
}

func orderAsc(db *gorm.DB) *gorm.DB {
	return db.Order(`"order" ASC`)
}

// FindByID retrieves a live table with its live columns, rows and cells,
// each level ordered by "order" ascending.
func (r *TableRepository) FindByID(id uint) (models.Table, error) {
	var table models.Table
	err := r.db.
		Preload("Columns", orderAsc).
		Preload("Rows", orderAsc).
		Preload("Rows.Cells").
		First(&table, "id = ?", id).Error
	return table, wrapNotFound(err, "table", id)
}

// FindByBusinessModel retrieves the live tables of a business model
// (all live tables when businessModelID is zero), fully preloaded.
func (r *TableRepository) FindByBusinessModel(businessModelID uint) ([]models.Table, error) {
	tables := []models.Table{}
	db := r.db.
		Preload("Columns", orderAsc).
		Preload("Rows", orderAsc).
		Preload("Rows.Cells").
		Order(`"order" ASC`)
	if businessModelID != 0 {
		db = db.Where("business_model_id = ?", businessModelID)
	}
	err := db.Find(&tables).Error
	return tables, err
}

// FindColumnByID retrieves a column regardless of deletion state. Used
// by the backoffice to inspect history of removed columns.
func (r *TableRepository) FindColumnByID(id uint) (models.Column, error) {
	var column models.Column
	err := r.db.Unscoped().First(&column, "id = ?", id).Error
	return column, wrapNotFound(err, "column", id)
}

// CreateWithTree inserts a table together with its columns, rows and
// cells in one transaction, then re-reads the live tree. Cells whose
// columnKey matches no inserted column are dropped without error.
func (r *TableRepository) CreateWithTree(req dto.CreateTableRequest) (models.Table, error) {
	var tableID uint
	err := r.db.Transaction(func(tx *gorm.DB) error {
		table := models.Table{
			BusinessModelID: req.BusinessModelID,
			Name:            req.Name,
			Order:           *req.Order,
		}
		if err := tx.Create(&table).Error; err != nil {
			return err
		}
		tableID = table.ID

		if len(req.Columns) > 0 {
			columns := make([]models.Column, 0, len(req.Columns))
			for _, c := range req.Columns {
				columns = append(columns, models.Column{
					TableID: table.ID,
					Key:     c.Key,
					Label:   c.Label,
					Order:   c.Order,
				})
			}
			if err := tx.Create(&columns).Error; err != nil {
				return err
			}
		}

		// Re-read for generated ids; the map is the only way cells can
		// reference columns.
		keyToID, err := liveColumnKeys(tx, table.ID)
		if err != nil {
			return err
		}

		for _, rp := range req.Rows {
			row := models.Row{TableID: table.ID, Order: rp.Order}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
			cells := buildCells(row.ID, rp.Cells, keyToID)
			if len(cells) > 0 {
				if err := tx.Create(&cells).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return models.Table{}, err
	}
	return r.FindByID(tableID)
}

// UpdateWithTree reconciles a submitted tree against persisted state in
// one transaction:
//
//   - table fields are updated in place
//   - every live column is soft-deleted, then columns submitted with an
//     id are updated and resurrected (primary keys stay stable for kept
//     columns); columns without an id are inserted; columns omitted from
//     the payload stay soft-deleted
//   - every live row is soft-deleted; rows submitted with an id are
//     updated and resurrected and all of their existing cells are
//     soft-deleted; rows without an id are inserted
//   - fresh cells are inserted by resolving columnKey against the live
//     columns re-read after reconciliation; unknown keys are dropped
//     silently and duplicate (rowId, columnId) pairs are skipped
//
// Cells of rows that stay soft-deleted are intentionally left untouched.
func (r *TableRepository) UpdateWithTree(req dto.UpdateTableRequest, actor string) (models.Table, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var table models.Table
		if err := tx.First(&table, "id = ?", req.ID).Error; err != nil {
			return wrapNotFound(err, "table", req.ID)
		}

		if err := tx.Model(&models.Table{}).Where("id = ?", req.ID).
			Updates(map[string]interface{}{"name": req.Name, "order": *req.Order}).Error; err != nil {
			return err
		}

		now := time.Now()
		if err := tx.Model(&models.Column{}).Where("table_id = ?", req.ID).
			Updates(map[string]interface{}{"deleted_at": now, "deleted_by": actor}).Error; err != nil {
			return err
		}

		for _, c := range req.Columns {
			if c.ID != 0 {
				result := tx.Unscoped().Model(&models.Column{}).
					Where("id = ? AND table_id = ?", c.ID, req.ID).
					Updates(map[string]interface{}{
						"key":        c.Key,
						"label":      c.Label,
						"order":      c.Order,
						"deleted_at": nil,
						"deleted_by": nil,
					})
				if result.Error != nil {
					return result.Error
				}
				if result.RowsAffected == 0 {
					return NotFoundError{Entity: "column", ID: c.ID}
				}
			} else {
				column := models.Column{TableID: req.ID, Key: c.Key, Label: c.Label, Order: c.Order}
				if err := tx.Create(&column).Error; err != nil {
					return err
				}
			}
		}

		keyToID, err := liveColumnKeys(tx, req.ID)
		if err != nil {
			return err
		}

		if err := tx.Model(&models.Row{}).Where("table_id = ?", req.ID).
			Updates(map[string]interface{}{"deleted_at": now, "deleted_by": actor}).Error; err != nil {
			return err
		}

		for _, rp := range req.Rows {
			rowID := rp.ID
			if rowID != 0 {
				result := tx.Unscoped().Model(&models.Row{}).
					Where("id = ? AND table_id = ?", rowID, req.ID).
					Updates(map[string]interface{}{
						"order":      rp.Order,
						"deleted_at": nil,
						"deleted_by": nil,
					})
				if result.Error != nil {
					return result.Error
				}
				if result.RowsAffected == 0 {
					return NotFoundError{Entity: "row", ID: rowID}
				}
				// cells are never resurrected: retire them all and insert fresh
				if err := tx.Model(&models.Cell{}).Where("row_id = ?", rowID).
					Updates(map[string]interface{}{"deleted_at": now, "deleted_by": actor}).Error; err != nil {
					return err
				}
			} else {
				row := models.Row{TableID: req.ID, Order: rp.Order}
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
				rowID = row.ID
			}

			cells := buildCells(rowID, rp.Cells, keyToID)
			if len(cells) > 0 {
				if err := tx.Create(&cells).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return models.Table{}, err
	}
	return r.FindByID(req.ID)
}

// SoftDelete marks the given tables deleted. Columns, rows and cells are
// left alone: table deletion does not cascade, unlike business-model
// deletion.
func (r *TableRepository) SoftDelete(ids []uint, actor string) (int64, error) {
	return softDeleteByIDs(r.db, &models.Table{}, ids, actor)
}

// liveColumnKeys re-reads the live columns of a table and returns the
// authoritative key -> id map for cell resolution.
func liveColumnKeys(tx *gorm.DB, tableID uint) (map[string]uint, error) {
	var columns []models.Column
	if err := tx.Where("table_id = ?", tableID).Find(&columns).Error; err != nil {
		return nil, err
	}
	keyToID := make(map[string]uint, len(columns))
	for _, c := range columns {
		keyToID[c.Key] = c.ID
	}
	return keyToID, nil
}

// buildCells resolves cell payloads against the column map. Cells with an
// unknown columnKey are dropped silently; duplicate (rowId, columnId)
// pairs are skipped, first occurrence wins.
func buildCells(rowID uint, payloads []dto.CellPayload, keyToID map[string]uint) []models.Cell {
	cells := make([]models.Cell, 0, len(payloads))
	seen := make(map[uint]bool, len(payloads))
	for _, cp := range payloads {
		columnID, ok := keyToID[cp.ColumnKey]
		if !ok {
			continue
		}
		if seen[columnID] {
			continue
		}
		seen[columnID] = true
		cells = append(cells, models.Cell{RowID: rowID, ColumnID: columnID, Value: cp.Value})
	}
	return cells
}
