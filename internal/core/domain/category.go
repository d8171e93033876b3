package domain

// Category groups invoices of one InvoiceType. The pair (Name, Type) is unique.
type Category struct {
	CategoryID   string      `json:"id"`
	Name         string      `json:"name"`
	Icon         string      `json:"icon"`
	Type         InvoiceType `json:"type"`
	Description  *string     `json:"description,omitempty"`
	InvoiceCount int         `json:"invoiceCount"`
	CreatorFields
}

// Department is an optional organizational unit attached to invoices.
type Department struct {
	DepartmentID string  `json:"id"`
	Name         string  `json:"name"`
	Description  *string `json:"description,omitempty"`
	InvoiceCount int     `json:"invoiceCount"`
	CreatorFields
}
