package dto

import (
	"strings"
	"time"
	"unicode"

	"hms/internal/domains/user/model"
	"hms/shared"
	gDto "hms/shared/dto"

	"github.com/shopspring/decimal"
)

type CreateUserRequest struct {
	Username       string           `json:"username"        validate:"required,min=3,max=50"`
	Password       string           `json:"password"        validate:"required,min=8,max=72"`
	Role           string           `json:"role"            validate:"required,role"`
	PhoneNumber    string           `json:"phone_number"    validate:"required,phone11"`
	Age            *int             `json:"age,omitempty"   validate:"omitempty,gte=0,lte=150"`
	Gender         *string          `json:"gender,omitempty"          validate:"omitempty,max=20"`
	Salary         *decimal.Decimal `json:"salary,omitempty"          swaggertype:"string"`
	Profession     *string          `json:"profession,omitempty"      validate:"omitempty,max=100"`
	Department     *string          `json:"department,omitempty"      validate:"omitempty,max=100"`
	ChronicDisease *string          `json:"chronic_disease,omitempty" validate:"omitempty,max=200"`
	Nationality    *string          `json:"nationality,omitempty"     validate:"omitempty,max=100"`
}

// Normalize trims the username and keeps only the digits of the phone number.
func (r *CreateUserRequest) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
	r.Role = strings.ToLower(strings.TrimSpace(r.Role))
	r.PhoneNumber = strings.Map(func(c rune) rune {
		if unicode.IsDigit(c) {
			return c
		}

		return -1
	}, r.PhoneNumber)
}

func (r *CreateUserRequest) ToModel(hashedPassword string) model.User {
	user := model.User{
		Username:       r.Username,
		Password:       hashedPassword,
		Role:           r.Role,
		PhoneNumber:    r.PhoneNumber,
		Age:            r.Age,
		Gender:         r.Gender,
		Profession:     r.Profession,
		Department:     r.Department,
		ChronicDisease: r.ChronicDisease,
		Nationality:    r.Nationality,
		IsActive:       true,
	}

	if r.Salary != nil {
		user.Salary = decimal.NewNullDecimal(*r.Salary)
	}

	return user
}

// ListUsersFilter narrows a user listing by role and department.
type ListUsersFilter struct {
	Role       string
	Department string
}

func (f ListUsersFilter) ToFilterGroup() gDto.FilterGroup {
	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if f.Role != "" {
		filter.Add(gDto.Filter{Field: model.FieldRole, Value: f.Role, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	if f.Department != "" {
		filter.Add(gDto.Filter{Field: model.FieldDepartment, Value: f.Department, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	return filter
}

type UserResponse struct {
	Username       string           `json:"username"`
	Role           string           `json:"role"`
	PhoneNumber    string           `json:"phone_number"`
	Age            *int             `json:"age,omitempty"`
	Gender         *string          `json:"gender,omitempty"`
	Salary         *decimal.Decimal `json:"salary,omitempty"          swaggertype:"string"`
	Profession     *string          `json:"profession,omitempty"`
	Department     *string          `json:"department,omitempty"`
	ChronicDisease *string          `json:"chronic_disease,omitempty"`
	Nationality    *string          `json:"nationality,omitempty"`
	IsActive       bool             `json:"is_active"`
	LastLogin      *time.Time       `json:"last_login,omitempty"`
}

func (r *UserResponse) FromModel(user model.User) {
	r.Username = user.Username
	r.Role = user.Role
	r.PhoneNumber = user.PhoneNumber
	r.Age = user.Age
	r.Gender = user.Gender
	r.Profession = user.Profession
	r.Department = user.Department
	r.ChronicDisease = user.ChronicDisease
	r.Nationality = user.Nationality
	r.IsActive = user.IsActive
	r.LastLogin = user.LastLogin

	if user.Salary.Valid {
		salary := user.Salary.Decimal
		r.Salary = &salary
	}
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(users []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserResponse, len(users))
	for i, user := range users {
		r.Users[i].FromModel(user)
	}
}

type WorkforceEntry struct {
	Role       string `json:"role"`
	Department string `json:"department"`
	Total      int    `json:"total"`
}

type WorkforceResponse struct {
	Entries []WorkforceEntry `json:"entries"`
	Total   int              `json:"total"`
}

func (r *WorkforceResponse) FromModels(rows []model.WorkforceRow) {
	r.Entries = make([]WorkforceEntry, len(rows))
	r.Total = 0

	for i, row := range rows {
		r.Entries[i] = WorkforceEntry{Role: row.Role, Department: row.Department, Total: row.Total}
		r.Total += row.Total
	}
}
