package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldUsername       = "username"
	FieldPassword       = "password"
	FieldRole           = "role"
	FieldPhoneNumber    = "phonenumber"
	FieldAge            = "age"
	FieldGender         = "gender"
	FieldSalary         = "salary"
	FieldProfession     = "profession"
	FieldDepartment     = "department"
	FieldChronicDisease = "chronicdisease"
	FieldNationality    = "nationality"
	FieldIsActive       = "isactive"
	FieldLastLogin      = "lastlogin"
)

type User struct {
	Username       string              `db:"username"`
	Password       string              `db:"password"`
	Role           string              `db:"role"`
	PhoneNumber    string              `db:"phonenumber"`
	Age            *int                `db:"age"`
	Gender         *string             `db:"gender"`
	Salary         decimal.NullDecimal `db:"salary"`
	Profession     *string             `db:"profession"`
	Department     *string             `db:"department"`
	ChronicDisease *string             `db:"chronicdisease"`
	Nationality    *string             `db:"nationality"`
	IsActive       bool                `db:"isactive"`
	LastLogin      *time.Time          `db:"lastlogin"`
}

// WorkforceRow counts users sharing a role and department.
type WorkforceRow struct {
	Role       string `db:"role"`
	Department string `db:"department"`
	Total      int    `db:"total"`
}
