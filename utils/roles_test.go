package utils

import "testing"

func TestParseRole(t *testing.T) {
	tests := []struct {
		raw    string
		want   Role
		wantOK bool
	}{
		{"owner", RoleOwner, true},
		{"Owner", RoleOwner, true},
		{"  MANAGER  ", RoleManager, true},
		{"artist", RoleArtist, true},
		{"academy", RoleAcademy, true},
		{"receptionist", RoleReceptionist, true},
		{"admin", "", false},
		{"", "", false},
		{"owner ", RoleOwner, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseRole(tt.raw)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ParseRole(%q) = (%q, %v), want (%q, %v)", tt.raw, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestRoleCapabilities(t *testing.T) {
	tests := []struct {
		role Role
		cap  Capability
		want bool
	}{
		{RoleOwner, CapManageTeam, true},
		{RoleOwner, CapManageSettings, true},
		{RoleManager, CapManageFinance, true},
		{RoleManager, CapManageSettings, false},
		{RoleManager, CapManageAcademy, false},
		{RoleArtist, CapManageAppointments, true},
		{RoleArtist, CapManageFinance, false},
		{RoleArtist, CapManageTeam, false},
		{RoleAcademy, CapManageAcademy, true},
		{RoleAcademy, CapManageClients, false},
		{RoleReceptionist, CapManageClients, true},
		{RoleReceptionist, CapViewReports, false},
		{Role("ghost"), CapManageClients, false},
	}

	for _, tt := range tests {
		if got := tt.role.Can(tt.cap); got != tt.want {
			t.Errorf("%s.Can(%s) = %v, want %v", tt.role, tt.cap, got, tt.want)
		}
	}
}

func TestOwnerHasEveryCapability(t *testing.T) {
	caps := []Capability{
		CapManageTeam, CapManageClients, CapManageAppointments, CapManageFinance,
		CapManageAcademy, CapManageMarketing, CapManageSettings, CapViewReports,
	}
	for _, c := range caps {
		if !RoleOwner.Can(c) {
			t.Errorf("owner missing capability %s", c)
		}
	}
}
