package model

const (
	TableName  = "departments"
	EntityName = "department"
)

const (
	FieldName        = "departmentname"
	FieldDescription = "description"
)

type Department struct {
	Name        string `db:"departmentname"`
	Description string `db:"description"`
}

// Defaults are registered by the seed command when absent.
var Defaults = []Department{
	{Name: "Cardiology", Description: "Heart and blood vessel care"},
	{Name: "Emergency", Description: "Urgent and trauma care"},
	{Name: "Pediatrics", Description: "Care for infants and children"},
	{Name: "Pharmacy", Description: "Medication dispensing and inventory"},
}
