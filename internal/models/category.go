package models

import "database/sql"

// Category is a row of the categories table.
type Category struct {
	CategoryID   string         `db:"category_id"`
	Name         string         `db:"name"`
	Icon         string         `db:"icon"`
	Type         string         `db:"type"`
	Description  sql.NullString `db:"description"`
	InvoiceCount int            `db:"invoice_count"`
	CreatorFields
}

// Department is a row of the departments table.
type Department struct {
	DepartmentID string         `db:"department_id"`
	Name         string         `db:"name"`
	Description  sql.NullString `db:"description"`
	InvoiceCount int            `db:"invoice_count"`
	CreatorFields
}
