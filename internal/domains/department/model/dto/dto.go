package dto

import (
	"strings"

	"hms/internal/domains/department/model"
)

type AddDepartmentRequest struct {
	Name        string `json:"name"        validate:"required,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
}

func (r *AddDepartmentRequest) ToModel() model.Department {
	return model.Department{
		Name:        strings.TrimSpace(r.Name),
		Description: strings.TrimSpace(r.Description),
	}
}

type DepartmentResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (r *DepartmentResponse) FromModel(m model.Department) {
	r.Name = m.Name
	r.Description = m.Description
}

type GetDepartmentsResponse struct {
	Departments []DepartmentResponse `json:"departments"`
}

func (r *GetDepartmentsResponse) FromModels(models []model.Department) {
	r.Departments = make([]DepartmentResponse, len(models))
	for i, mod := range models {
		r.Departments[i].FromModel(mod)
	}
}
