package request

import "go-hrms/internal/identity"

// CanRespond lets a manager act only on requests of their direct reports.
// ownerManager comes from Owner.Manager. Callers in every other role are let
// through here; route authorization decides who reaches it.
func CanRespond(caller identity.Caller, ownerManager string) bool {
	if caller.Role != identity.RoleManager {
		return true
	}
	return managedBy(ownerManager, caller)
}

func managedBy(ownerManager string, caller identity.Caller) bool {
	return ownerManager != "" && ownerManager == caller.ID
}

// CanEdit is true only for the request owner.
func CanEdit(caller identity.Caller, r Request) bool {
	return r.EmployeeID.String() == caller.ID
}

// IsEditable reports whether the payload may still change.
func IsEditable(r Request) bool {
	return r.Status == StatusPending
}

func CanDelete(caller identity.Caller, r Request) bool {
	return r.EmployeeID.String() == caller.ID || caller.Role.IsAdminTier()
}

// CanView covers the single-record read: owner, admin tier, or the owner's manager.
func CanView(caller identity.Caller, r Request, ownerManager string) bool {
	if CanDelete(caller, r) {
		return true
	}
	return managedBy(ownerManager, caller)
}

func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}
