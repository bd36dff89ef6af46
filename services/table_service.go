package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/danakita/cms-backend/dto"
	"github.com/danakita/cms-backend/models"
	"github.com/danakita/cms-backend/repositories"
)

// ErrDuplicateColumnKey is returned when a payload carries the same
// column key twice. The key is what cells resolve against, so duplicates
// would make cell placement ambiguous.
var ErrDuplicateColumnKey = errors.New("duplicate column key in payload")

// TableService validates nested-table payloads and delegates the
// transactional reconciliation to the repository.
type TableService struct {
	tables *repositories.TableRepository
}

// NewTableService creates a new table service instance
func NewTableService(db *gorm.DB) *TableService {
	return &TableService{tables: repositories.NewTableRepository(db)}
}

// List returns the live tables of a business model (all when id is zero).
func (s *TableService) List(businessModelID uint) ([]models.Table, error) {
	return s.tables.FindByBusinessModel(businessModelID)
}

// Get returns one live table fully preloaded.
func (s *TableService) Get(id uint) (models.Table, error) {
	return s.tables.FindByID(id)
}

// Create builds a table tree from scratch.
func (s *TableService) Create(req dto.CreateTableRequest) (models.Table, error) {
	if err := validateColumnKeys(req.Columns); err != nil {
		return models.Table{}, err
	}
	return s.tables.CreateWithTree(req)
}

// Update reconciles a submitted tree against the stored one.
func (s *TableService) Update(req dto.UpdateTableRequest, actor string) (models.Table, error) {
	if err := validateColumnKeys(req.Columns); err != nil {
		return models.Table{}, err
	}
	return s.tables.UpdateWithTree(req, actor)
}

// Delete soft-deletes the given tables; no cascade.
func (s *TableService) Delete(ids []uint, actor string) (int64, error) {
	return s.tables.SoftDelete(ids, actor)
}

// validateColumnKeys rejects payloads whose live column set would carry
// the same key twice.
func validateColumnKeys(columns []dto.ColumnPayload) error {
	seen := make(map[string]bool, len(columns))
	for _, c := range columns {
		if seen[c.Key] {
			return ErrDuplicateColumnKey
		}
		seen[c.Key] = true
	}
	return nil
}
