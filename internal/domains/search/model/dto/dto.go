package dto

import (
	"strings"

	billingModel "hms/internal/domains/billing/model"
	billingDto "hms/internal/domains/billing/model/dto"
	departmentModel "hms/internal/domains/department/model"
	departmentDto "hms/internal/domains/department/model/dto"
	pharmacyModel "hms/internal/domains/pharmacy/model"
	pharmacyDto "hms/internal/domains/pharmacy/model/dto"
	userModel "hms/internal/domains/user/model"
	userDto "hms/internal/domains/user/model/dto"
	gDto "hms/shared/dto"
	"hms/shared/role"
)

type SearchRequest struct {
	Query string `json:"q"     validate:"required,min=2,max=100"`
	Limit int    `json:"limit" validate:"omitempty,gt=0,lte=100"`
}

// Normalize trims the query in place.
func (r *SearchRequest) Normalize() {
	r.Query = strings.TrimSpace(r.Query)
}

// like builds one case-insensitive substring match; arg names are prefixed so
// they never collide with an equality filter on the same column.
func like(field, table, query string) gDto.Filter {
	return gDto.Filter{ArgName: "q_" + field, Field: field, Value: query, Operator: gDto.FilterOperatorLike, Table: table}
}

func anyOf(filters ...gDto.Filter) gDto.FilterGroup {
	group := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorOr}
	for _, filter := range filters {
		group.Add(filter)
	}

	return group
}

// StaffFilter matches non-patient users by name, role, profession or department.
func (r SearchRequest) StaffFilter() gDto.FilterGroup {
	group := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}
	group.Add(gDto.Filter{Field: userModel.FieldRole, Value: string(role.Patient), Operator: gDto.FilterOperatorNotEq, Table: userModel.TableName})
	group.Add(anyOf(
		like(userModel.FieldUsername, userModel.TableName, r.Query),
		like(userModel.FieldRole, userModel.TableName, r.Query),
		like(userModel.FieldProfession, userModel.TableName, r.Query),
		like(userModel.FieldDepartment, userModel.TableName, r.Query),
	))

	return group
}

// PatientFilter matches patients by name, gender or nationality.
func (r SearchRequest) PatientFilter() gDto.FilterGroup {
	group := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}
	group.Add(gDto.Filter{Field: userModel.FieldRole, Value: string(role.Patient), Operator: gDto.FilterOperatorEq, Table: userModel.TableName})
	group.Add(anyOf(
		like(userModel.FieldUsername, userModel.TableName, r.Query),
		like(userModel.FieldGender, userModel.TableName, r.Query),
		like(userModel.FieldNationality, userModel.TableName, r.Query),
	))

	return group
}

func (r SearchRequest) MedicationFilter() gDto.FilterGroup {
	return anyOf(like(pharmacyModel.FieldName, pharmacyModel.TableName, r.Query))
}

func (r SearchRequest) DepartmentFilter() gDto.FilterGroup {
	return anyOf(
		like(departmentModel.FieldName, departmentModel.TableName, r.Query),
		like(departmentModel.FieldDescription, departmentModel.TableName, r.Query),
	)
}

func (r SearchRequest) TransactionFilter() gDto.FilterGroup {
	return anyOf(
		like(billingModel.FieldTransactionType, billingModel.LedgerTableName, r.Query),
		like(billingModel.FieldPatient, billingModel.LedgerTableName, r.Query),
	)
}

type SearchResponse struct {
	Staff        []userDto.UserResponse             `json:"staff"`
	Patients     []userDto.UserResponse             `json:"patients"`
	Medications  []pharmacyDto.MedicationResponse   `json:"medications"`
	Departments  []departmentDto.DepartmentResponse `json:"departments"`
	Transactions []billingDto.LedgerEntryResponse   `json:"transactions"`
}

func Users(models []userModel.User) []userDto.UserResponse {
	res := make([]userDto.UserResponse, len(models))
	for i, m := range models {
		res[i].FromModel(m)
	}

	return res
}

func Medications(models []pharmacyModel.Medication) []pharmacyDto.MedicationResponse {
	res := make([]pharmacyDto.MedicationResponse, len(models))
	for i, m := range models {
		res[i].FromModel(m)
	}

	return res
}

func Departments(models []departmentModel.Department) []departmentDto.DepartmentResponse {
	res := make([]departmentDto.DepartmentResponse, len(models))
	for i, m := range models {
		res[i].FromModel(m)
	}

	return res
}

func Transactions(models []billingModel.LedgerEntry) []billingDto.LedgerEntryResponse {
	res := make([]billingDto.LedgerEntryResponse, len(models))
	for i, m := range models {
		res[i].FromModel(m)
	}

	return res
}
