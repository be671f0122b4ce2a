package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	marketingBrownW = Record{ID: "wbrown", LastName: "Brown", Department: "Marketing"}
	marketingBrownS = Record{ID: "sbrown", LastName: "Brown", Department: "Marketing"}
	supportBrownR   = Record{ID: "rbrown", LastName: "Brown", Department: "Support"}
)

func requester(role Role, rec Record) *Identity {
	return &Identity{UserID: rec.ID, Role: role, Record: rec}
}

func TestAuthorize_Anonymous(t *testing.T) {
	for _, c := range []Record{marketingBrownW, marketingBrownS, supportBrownR} {
		assert.Equal(t, VisibleWithDetail, Authorize(nil, c))
	}
}

func TestAuthorize_AdminSeesEverything(t *testing.T) {
	admin := requester(RoleAdmin, Record{ID: "mhernandez", Department: "Operations"})
	for _, c := range []Record{marketingBrownW, marketingBrownS, supportBrownR} {
		assert.Equal(t, VisibleWithDetail, Authorize(admin, c), c.ID)
	}
}

func TestAuthorize_EmployeeSameDepartment(t *testing.T) {
	emp := requester(RoleEmployee, Record{ID: "jsmith", Department: "Marketing"})

	assert.Equal(t, Visible, Authorize(emp, marketingBrownW))
	assert.Equal(t, Visible, Authorize(emp, marketingBrownS))
	assert.Equal(t, Hidden, Authorize(emp, supportBrownR))
}

func TestAuthorize_EmployeeSelfHasDetail(t *testing.T) {
	emp := requester(RoleEmployee, marketingBrownS)

	assert.Equal(t, VisibleWithDetail, Authorize(emp, marketingBrownS))
	assert.Equal(t, Visible, Authorize(emp, marketingBrownW))
}

func TestAuthorize_ManagerDepartmentWithDetail(t *testing.T) {
	mgr := requester(RoleManager, Record{ID: "rmiller", Department: "Marketing"})

	assert.Equal(t, VisibleWithDetail, Authorize(mgr, marketingBrownW))
	assert.Equal(t, VisibleWithDetail, Authorize(mgr, marketingBrownS))
	assert.Equal(t, Hidden, Authorize(mgr, supportBrownR))
}

func TestAuthorize_ContractorOnlySelf(t *testing.T) {
	con := requester(RoleContractor, marketingBrownW)

	assert.Equal(t, VisibleWithDetail, Authorize(con, marketingBrownW))
	assert.Equal(t, Hidden, Authorize(con, marketingBrownS))
	assert.Equal(t, Hidden, Authorize(con, supportBrownR))
}

func TestAuthorize_UnknownRoleHidden(t *testing.T) {
	who := requester(Role("intern"), marketingBrownW)
	assert.Equal(t, Hidden, Authorize(who, marketingBrownW))
}

func TestVisibility_String(t *testing.T) {
	assert.Equal(t, "hidden", Hidden.String())
	assert.Equal(t, "visible", Visible.String())
	assert.Equal(t, "visible+detail", VisibleWithDetail.String())
	assert.False(t, Hidden.IsVisible())
	assert.True(t, Visible.IsVisible())
}
