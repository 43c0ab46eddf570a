package validator_test

import (
	"strings"
	"testing"

	"hms/shared/failure"
	"hms/shared/validator"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type signupPayload struct {
	Username    string `json:"username"     validate:"required,max=50"`
	Role        string `json:"role"         validate:"required,role"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,phone11"`
	Age         int    `json:"age"          validate:"gte=0,lte=150"`
}

type slotPayload struct {
	Date   string          `json:"date"   validate:"required,date"`
	Time   string          `json:"time"   validate:"required,clock"`
	Amount decimal.Decimal `json:"amount" validate:"gt=0"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		data    signupPayload
		wantMsg string
	}{
		{
			name: "valid",
			data: signupPayload{Username: "drA", Role: "doctor", PhoneNumber: "01012345678", Age: 40},
		},
		{
			name:    "missing username",
			data:    signupPayload{Role: "doctor"},
			wantMsg: "Username is required",
		},
		{
			name:    "unknown role",
			data:    signupPayload{Username: "x", Role: "janitor"},
			wantMsg: "Role must be one of admin doctor patient receptionist nurse",
		},
		{
			name:    "ten digit phone",
			data:    signupPayload{Username: "x", Role: "nurse", PhoneNumber: "0101234567"},
			wantMsg: "PhoneNumber must be exactly 11 digits",
		},
		{
			name:    "phone with letters",
			data:    signupPayload{Username: "x", Role: "nurse", PhoneNumber: "0101234567a"},
			wantMsg: "PhoneNumber must be exactly 11 digits",
		},
		{
			name:    "age out of range",
			data:    signupPayload{Username: "x", Role: "patient", Age: 200},
			wantMsg: "Age must be less than or equal to 150",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)

			if tt.wantMsg == "" {
				assert.NoError(t, err)

				return
			}

			assert.EqualError(t, err, tt.wantMsg)
			assert.True(t, failure.IsKind(err, failure.KindBadRequest))
		})
	}
}

func TestValidateStruct_Slot(t *testing.T) {
	valid := slotPayload{Date: "2024-01-01", Time: "09:00", Amount: decimal.NewFromInt(200)}
	assert.NoError(t, validator.ValidateStruct(&valid))

	badDate := slotPayload{Date: "01/01/2024", Time: "09:00", Amount: decimal.NewFromInt(1)}
	assert.EqualError(t, validator.ValidateStruct(&badDate), "Date must be a date formatted as YYYY-MM-DD")

	badTime := slotPayload{Date: "2024-01-01", Time: "9am", Amount: decimal.NewFromInt(1)}
	assert.EqualError(t, validator.ValidateStruct(&badTime), "Time must be a time formatted as HH:MM")

	zero := slotPayload{Date: "2024-01-01", Time: "09:00", Amount: decimal.Zero}
	assert.EqualError(t, validator.ValidateStruct(&zero), "Amount must be greater than 0")
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("receptionist", "role"))
	assert.Error(t, validator.ValidateVar("", "required"))
	assert.Error(t, validator.ValidateVar(0, "gt=0"))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		jsonBody string
		wantErr  bool
	}{
		{name: "valid body", jsonBody: `{"username":"pat1","role":"patient","phone_number":"01112223334","age":30}`},
		{name: "invalid phone", jsonBody: `{"username":"pat1","role":"patient","phone_number":"123"}`, wantErr: true},
		{name: "malformed body", jsonBody: `{"username":`, wantErr: true},
		{name: "empty body", jsonBody: `{}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data signupPayload

			err := validator.Validate(strings.NewReader(tt.jsonBody), &data)

			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}

func TestDecode(t *testing.T) {
	var data signupPayload

	assert.NoError(t, validator.Decode(strings.NewReader(`{"username":"pat1","phone_number":"123"}`), &data))
	assert.Equal(t, "123", data.PhoneNumber)

	err := validator.Decode(strings.NewReader(`{"username":`), &data)
	assert.True(t, failure.IsKind(err, failure.KindBadRequest))
}
