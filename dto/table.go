package dto

// CellPayload references its column by the stable key, not the id; ids
// are resolved server-side against the live columns of the table.
type CellPayload struct {
	ColumnKey string `json:"columnKey"`
	Value     string `json:"value"`
}

// ColumnPayload carries an id only when the client kept an existing column.
type ColumnPayload struct {
	ID    uint   `json:"id,omitempty"`
	Key   string `json:"key" binding:"required"`
	Label string `json:"label"`
	Order int    `json:"order"`
}

// RowPayload carries an id only when the client kept an existing row.
type RowPayload struct {
	ID    uint          `json:"id,omitempty"`
	Order int           `json:"order"`
	Cells []CellPayload `json:"cells"`
}

// CreateTableRequest is the POST /business-models/tables payload.
type CreateTableRequest struct {
	BusinessModelID uint            `json:"businessModelId" binding:"required"`
	Name            string          `json:"name" binding:"required"`
	Order           *int            `json:"order" binding:"required"`
	Columns         []ColumnPayload `json:"columns"`
	Rows            []RowPayload    `json:"rows"`
}

// UpdateTableRequest is the PUT /business-models/tables payload.
type UpdateTableRequest struct {
	ID      uint            `json:"id" binding:"required"`
	Name    string          `json:"name" binding:"required"`
	Order   *int            `json:"order" binding:"required"`
	Columns []ColumnPayload `json:"columns"`
	Rows    []RowPayload    `json:"rows"`
}
