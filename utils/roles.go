package utils

import "strings"

// Role is the closed set of staff roles. Raw role strings coming from tokens
// or the database are normalized exactly once via ParseRole at the
// authorization boundary.
type Role string

const (
	RoleOwner        Role = "owner"
	RoleManager      Role = "manager"
	RoleArtist       Role = "artist"
	RoleAcademy      Role = "academy"
	RoleReceptionist Role = "receptionist"
)

type Capability string

const (
	CapManageTeam         Capability = "manage_team"
	CapManageClients      Capability = "manage_clients"
	CapManageAppointments Capability = "manage_appointments"
	CapManageFinance      Capability = "manage_finance"
	CapManageAcademy      Capability = "manage_academy"
	CapManageMarketing    Capability = "manage_marketing"
	CapManageSettings     Capability = "manage_settings"
	CapViewReports        Capability = "view_reports"
)

var roleCapabilities = map[Role]map[Capability]bool{
	RoleOwner: {
		CapManageTeam:         true,
		CapManageClients:      true,
		CapManageAppointments: true,
		CapManageFinance:      true,
		CapManageAcademy:      true,
		CapManageMarketing:    true,
		CapManageSettings:     true,
		CapViewReports:        true,
	},
	RoleManager: {
		CapManageTeam:         true,
		CapManageClients:      true,
		CapManageAppointments: true,
		CapManageFinance:      true,
		CapManageMarketing:    true,
		CapViewReports:        true,
	},
	RoleArtist: {
		CapManageClients:      true,
		CapManageAppointments: true,
	},
	RoleAcademy: {
		CapManageAcademy: true,
	},
	RoleReceptionist: {
		CapManageClients:      true,
		CapManageAppointments: true,
	},
}

// ParseRole normalizes a raw role string into the closed enumeration.
func ParseRole(raw string) (Role, bool) {
	r := Role(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := roleCapabilities[r]; !ok {
		return "", false
	}
	return r, true
}

// Can reports whether the role carries the given capability.
func (r Role) Can(c Capability) bool {
	caps, ok := roleCapabilities[r]
	if !ok {
		return false
	}
	return caps[c]
}

func ValidRoles() []Role {
	return []Role{RoleOwner, RoleManager, RoleArtist, RoleAcademy, RoleReceptionist}
}
