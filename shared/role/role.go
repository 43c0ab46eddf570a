// Package role is the closed set of user roles and the capabilities each
// one resolves to. A role is resolved once at login and carried in the
// access token; handlers and middleware only ever ask for capabilities.
package role

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"hms/shared/constant"
)

type Role string

const (
	Admin        Role = "admin"
	Doctor       Role = "doctor"
	Patient      Role = "patient"
	Receptionist Role = "receptionist"
	Nurse        Role = "nurse"
)

// Capability names one operation group a role may invoke.
type Capability string

const (
	CanManageUsers        Capability = "manage_users"
	CanManageDepartments  Capability = "manage_departments"
	CanManageRooms        Capability = "manage_rooms"
	CanAllocateRoom       Capability = "allocate_room"
	CanBookAppointment    Capability = "book_appointment"
	CanCancelAppointment  Capability = "cancel_appointment"
	CanViewAppointments   Capability = "view_appointments"
	CanViewFinance        Capability = "view_finance"
	CanPay                Capability = "pay"
	CanManageInventory    Capability = "manage_inventory"
	CanDispenseMedication Capability = "dispense_medication"
	CanWriteClinical      Capability = "write_clinical"
	CanViewClinical       Capability = "view_clinical"
)

var capabilities = map[Role][]Capability{
	Admin: {
		CanManageUsers,
		CanManageDepartments,
		CanManageRooms,
		CanViewAppointments,
		CanViewFinance,
		CanManageInventory,
		CanDispenseMedication,
	},
	Doctor: {
		CanViewAppointments,
		CanWriteClinical,
		CanViewClinical,
	},
	Patient: {
		CanBookAppointment,
		CanViewAppointments,
		CanPay,
	},
	Receptionist: {
		CanManageRooms,
		CanAllocateRoom,
		CanBookAppointment,
		CanCancelAppointment,
		CanViewAppointments,
	},
	Nurse: {
		CanDispenseMedication,
		CanViewClinical,
	},
}

// All returns every role in a stable order.
func All() []Role {
	return []Role{Admin, Doctor, Patient, Receptionist, Nurse}
}

// Parse resolves a role name, case-insensitively.
func Parse(value string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(value)))
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q", value)
	}

	return r, nil
}

func (r Role) Valid() bool {
	_, ok := capabilities[r]

	return ok
}

func (r Role) String() string {
	return string(r)
}

// Can reports whether the role grants the capability.
func (r Role) Can(capability Capability) bool {
	return slices.Contains(capabilities[r], capability)
}

// Capabilities returns a copy of the role's capability set.
func (r Role) Capabilities() []Capability {
	return slices.Clone(capabilities[r])
}

// FromContext returns the role resolved by the auth middleware, if any.
func FromContext(ctx context.Context) (Role, bool) {
	r, ok := ctx.Value(constant.ContextKeyUserRole).(Role)

	return r, ok && r.Valid()
}

// WithContext stores a resolved role in the context.
func WithContext(ctx context.Context, r Role) context.Context {
	return context.WithValue(ctx, constant.ContextKeyUserRole, r)
}

// Actor is the authenticated caller as seen by services.
type Actor struct {
	Username string
	Role     Role
}

// ActorFromContext returns the caller stored by the auth middleware.
func ActorFromContext(ctx context.Context) Actor {
	username, _ := ctx.Value(constant.ContextKeyUsername).(string)
	r, _ := FromContext(ctx)

	return Actor{Username: username, Role: r}
}

// ActsFor reports whether the actor may act on behalf of the given patient:
// patients only for themselves, every other role for anyone.
func (a Actor) ActsFor(patient string) bool {
	if a.Role == Patient {
		return a.Username == patient
	}

	return true
}

// Sees reports whether the actor may read an appointment between doctor and
// patient. Patients and doctors only see their own.
func (a Actor) Sees(doctor, patient string) bool {
	switch a.Role {
	case Patient:
		return a.Username == patient
	case Doctor:
		return a.Username == doctor
	default:
		return true
	}
}
