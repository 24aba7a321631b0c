package authz

import (
	"testing"

	"github.com/staffhive/hrms-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
)

func TestCan_DepartmentHeadLeaveScoping(t *testing.T) {
	head := Actor{ID: "head-1", Role: user.RoleDepartmentHead, Department: "Sales"}

	sameDept := Resource{OwnerID: "emp-1", OwnerDepartment: "Sales"}
	otherDept := Resource{OwnerID: "emp-2", OwnerDepartment: "Engineering"}

	assert.True(t, Can(head, ActionDecideLeave, sameDept))
	assert.False(t, Can(head, ActionDecideLeave, otherDept))

	// Department heads never decide transfers or grievances
	assert.False(t, Can(head, ActionDecideTransfer, sameDept))
	assert.False(t, Can(head, ActionRespondGrievance, sameDept))
}

func TestCan_DepartmentHeadWithoutDepartment(t *testing.T) {
	// A head with no assigned department must not match resources whose
	// owner also has no department.
	head := Actor{ID: "head-1", Role: user.RoleDepartmentHead, Department: ""}
	res := Resource{OwnerID: "emp-1", OwnerDepartment: ""}

	assert.False(t, Can(head, ActionDecideLeave, res))
}

func TestCan_SelfDecisionDenied(t *testing.T) {
	// Even hr and admin cannot decide their own requests.
	for _, role := range []user.Role{user.RoleHR, user.RoleAdmin, user.RoleDepartmentHead} {
		actor := Actor{ID: "u-1", Role: role, Department: "HR"}
		own := Resource{OwnerID: "u-1", OwnerDepartment: "HR"}

		assert.False(t, Can(actor, ActionDecideLeave, own), "role %s", role)
		assert.False(t, Can(actor, ActionDecideTransfer, own), "role %s", role)
		assert.False(t, Can(actor, ActionRespondGrievance, own), "role %s", role)
	}
}

func TestCan_HRDecisions(t *testing.T) {
	hr := Actor{ID: "hr-1", Role: user.RoleHR, Department: "HR"}
	res := Resource{OwnerID: "emp-1", OwnerDepartment: "Engineering"}

	assert.True(t, Can(hr, ActionDecideLeave, res))
	assert.True(t, Can(hr, ActionDecideTransfer, res))
	assert.True(t, Can(hr, ActionRespondGrievance, res))
	assert.True(t, Can(hr, ActionListAttendance, res))
	assert.False(t, Can(hr, ActionManageUsers, res))
}

func TestCan_AdminManageUsers(t *testing.T) {
	admin := Actor{ID: "adm-1", Role: user.RoleAdmin}
	res := Resource{}

	assert.True(t, Can(admin, ActionManageUsers, res))
	assert.True(t, Can(admin, ActionListLeaves, res))
	assert.True(t, Can(admin, ActionReadAnyFile, res))
}

func TestCan_EmployeeAlwaysDenied(t *testing.T) {
	emp := Actor{ID: "emp-1", Role: user.RoleEmployee, Department: "Sales"}
	res := Resource{OwnerID: "emp-2", OwnerDepartment: "Sales"}

	for _, action := range []Action{
		ActionListLeaves, ActionDecideLeave,
		ActionListTransfers, ActionDecideTransfer,
		ActionListGrievances, ActionRespondGrievance,
		ActionListAttendance, ActionManageUsers, ActionReadAnyFile,
	} {
		assert.False(t, Can(emp, action, res), "action %s", action)
	}
}

func TestCan_UnknownActionDenied(t *testing.T) {
	admin := Actor{ID: "adm-1", Role: user.RoleAdmin}
	assert.False(t, Can(admin, Action("bogus"), Resource{}))
}

func TestCanRead(t *testing.T) {
	assert.True(t, CanRead(Actor{ID: "u-1", Role: user.RoleEmployee}, "u-1"))
	assert.False(t, CanRead(Actor{ID: "u-1", Role: user.RoleEmployee}, "u-2"))
	assert.False(t, CanRead(Actor{ID: "h-1", Role: user.RoleDepartmentHead}, "u-2"))
	assert.True(t, CanRead(Actor{ID: "hr-1", Role: user.RoleHR}, "u-2"))
	assert.True(t, CanRead(Actor{ID: "adm-1", Role: user.RoleAdmin}, "u-2"))
}
