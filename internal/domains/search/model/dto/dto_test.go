package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hms/internal/domains/search/model/dto"
	gDto "hms/shared/dto"
)

func TestSearchRequest_Filters(t *testing.T) {
	req := dto.SearchRequest{Query: "card"}

	tests := []struct {
		name      string
		filter    gDto.FilterGroup
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:   "staff excludes patients",
			filter: req.StaffFilter(),
			wantWhere: "(users.role != :role AND (LOWER(users.username) LIKE LOWER(:q_username) OR LOWER(users.role) LIKE LOWER(:q_role)" +
				" OR LOWER(users.profession) LIKE LOWER(:q_profession) OR LOWER(users.department) LIKE LOWER(:q_department)))",
			wantArgs: map[string]any{
				"role":         "patient",
				"q_username":   "%card%",
				"q_role":       "%card%",
				"q_profession": "%card%",
				"q_department": "%card%",
			},
		},
		{
			name:   "patients only",
			filter: req.PatientFilter(),
			wantWhere: "(users.role = :role AND (LOWER(users.username) LIKE LOWER(:q_username) OR LOWER(users.gender) LIKE LOWER(:q_gender)" +
				" OR LOWER(users.nationality) LIKE LOWER(:q_nationality)))",
			wantArgs: map[string]any{
				"role":          "patient",
				"q_username":    "%card%",
				"q_gender":      "%card%",
				"q_nationality": "%card%",
			},
		},
		{
			name:      "medications by name",
			filter:    req.MedicationFilter(),
			wantWhere: "(LOWER(pharmacyinventory.medicationname) LIKE LOWER(:q_medicationname))",
			wantArgs:  map[string]any{"q_medicationname": "%card%"},
		},
		{
			name:      "departments by name or description",
			filter:    req.DepartmentFilter(),
			wantWhere: "(LOWER(departments.departmentname) LIKE LOWER(:q_departmentname) OR LOWER(departments.description) LIKE LOWER(:q_description))",
			wantArgs:  map[string]any{"q_departmentname": "%card%", "q_description": "%card%"},
		},
		{
			name:   "transactions by type or patient",
			filter: req.TransactionFilter(),
			wantWhere: "(LOWER(financialtransactions.transactiontype) LIKE LOWER(:q_transactiontype)" +
				" OR LOWER(financialtransactions.patient) LIKE LOWER(:q_patient))",
			wantArgs: map[string]any{"q_transactiontype": "%card%", "q_patient": "%card%"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestSearchRequest_Normalize(t *testing.T) {
	req := dto.SearchRequest{Query: "  aspirin \t"}
	req.Normalize()

	assert.Equal(t, "aspirin", req.Query)
}
