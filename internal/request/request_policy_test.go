package request_test

import (
	"testing"

	"go-hrms/internal/identity"
	"go-hrms/internal/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCanRespond(t *testing.T) {
	managerID := uuid.NewString()

	cases := []struct {
		name         string
		caller       identity.Caller
		ownerManager string
		want         bool
	}{
		{"manager of owner", identity.Caller{ID: managerID, Role: identity.RoleManager}, managerID, true},
		{"other manager", identity.Caller{ID: uuid.NewString(), Role: identity.RoleManager}, managerID, false},
		{"manager and owner without manager", identity.Caller{ID: managerID, Role: identity.RoleManager}, "", false},
		{"admin passes", identity.Caller{ID: uuid.NewString(), Role: identity.RoleAdmin}, managerID, true},
		{"super admin passes", identity.Caller{ID: uuid.NewString(), Role: identity.RoleSuperAdmin}, "", true},
		{"employee passes", identity.Caller{ID: uuid.NewString(), Role: identity.RoleEmployee}, managerID, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, request.CanRespond(tc.caller, tc.ownerManager))
		})
	}
}

func TestCanEditAndDelete(t *testing.T) {
	owner := uuid.New()
	r := request.Request{ID: uuid.New(), EmployeeID: owner, Status: request.StatusPending}

	ownerCaller := identity.Caller{ID: owner.String(), Role: identity.RoleEmployee}
	otherEmployee := identity.Caller{ID: uuid.NewString(), Role: identity.RoleEmployee}
	admin := identity.Caller{ID: uuid.NewString(), Role: identity.RoleAdmin}
	superAdmin := identity.Caller{ID: uuid.NewString(), Role: identity.RoleSuperAdmin}
	manager := identity.Caller{ID: uuid.NewString(), Role: identity.RoleManager}

	assert.True(t, request.CanEdit(ownerCaller, r))
	assert.False(t, request.CanEdit(otherEmployee, r))
	assert.False(t, request.CanEdit(admin, r))

	assert.True(t, request.CanDelete(ownerCaller, r))
	assert.True(t, request.CanDelete(admin, r))
	assert.True(t, request.CanDelete(superAdmin, r))
	assert.False(t, request.CanDelete(otherEmployee, r))
	assert.False(t, request.CanDelete(manager, r))

	assert.True(t, request.CanView(manager, r, manager.ID))
	assert.False(t, request.CanView(manager, r, ""))
	assert.True(t, request.CanView(ownerCaller, r, ""))
}

func TestIsEditable(t *testing.T) {
	assert.True(t, request.IsEditable(request.Request{Status: request.StatusPending}))
	assert.False(t, request.IsEditable(request.Request{Status: request.StatusApproved}))
	assert.False(t, request.IsEditable(request.Request{Status: request.StatusRejected}))
}

func TestValidStatus(t *testing.T) {
	assert.True(t, request.ValidStatus("approved"))
	assert.False(t, request.ValidStatus("APPROVED"))
	assert.False(t, request.ValidStatus("cancelled"))
}

func TestOwnerManagerFeedsPolicies(t *testing.T) {
	managerID := uuid.New()
	owner := request.Owner{ID: uuid.New(), ManagerID: &managerID}
	unmanaged := request.Owner{ID: uuid.New()}
	r := request.Request{EmployeeID: owner.ID}

	assert.Equal(t, managerID.String(), owner.Manager())
	assert.Equal(t, "", unmanaged.Manager())

	manager := identity.Caller{ID: managerID.String(), Role: identity.RoleManager}
	assert.True(t, request.CanRespond(manager, owner.Manager()))
	assert.True(t, request.CanView(manager, r, owner.Manager()))

	anonymousManager := identity.Caller{Role: identity.RoleManager}
	assert.False(t, request.CanRespond(anonymousManager, unmanaged.Manager()))
	assert.False(t, request.CanView(anonymousManager, request.Request{EmployeeID: unmanaged.ID}, unmanaged.Manager()))
}
