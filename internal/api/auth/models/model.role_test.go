// Package models - Test ánh xạ role sang collection và kiểm tra phòng ban.
package models

import (
	"testing"

	"task_manager/internal/global"
)

func TestCollectionForRole(t *testing.T) {
	cases := []struct {
		role string
		want string
	}{
		{RoleSuperAdmin, global.MongoDB_ColNames.SuperAdmins},
		{RoleAdmin, global.MongoDB_ColNames.Admins},
		{RoleEmployee, global.MongoDB_ColNames.Employees},
	}
	for _, tc := range cases {
		if got := CollectionForRole(tc.role); got != tc.want {
			t.Errorf("CollectionForRole(%q) = %q, muốn %q", tc.role, got, tc.want)
		}
	}
}

func TestCollectionForRole_Unknown(t *testing.T) {
	for _, role := range []string{"", "manager", "SuperAdmin"} {
		if got := CollectionForRole(role); got != "" {
			t.Errorf("role không hợp lệ %q phải trả về chuỗi rỗng, nhận %q", role, got)
		}
	}
}

func TestIsValidDepartment(t *testing.T) {
	for _, d := range AllDepartments {
		if !IsValidDepartment(d) {
			t.Errorf("phòng ban %q phải hợp lệ", d)
		}
	}
	for _, d := range []string{"", "hr", "Design"} {
		if IsValidDepartment(d) {
			t.Errorf("phòng ban %q không được coi là hợp lệ", d)
		}
	}
}
