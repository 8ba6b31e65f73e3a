package sqlite

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanTaskRow scans a single task row.
// Column order: collection, position, id, title, description, due_date, priority, completed.
func ScanTaskRow(scanner Scanner) (*TaskRow, error) {
	row := &TaskRow{}
	var completed int64

	err := scanner.Scan(
		&row.Collection,
		&row.Position,
		&row.ID,
		&row.Title,
		&row.Description,
		&row.DueDate,
		&row.Priority,
		&completed,
	)
	if err != nil {
		return nil, err
	}

	row.Completed = BoolFromDB(completed)
	return row, nil
}

// ScanTaskRows scans multiple task rows
func ScanTaskRows(rows Rows) ([]*TaskRow, error) {
	var result []*TaskRow
	for rows.Next() {
		row, err := ScanTaskRow(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
