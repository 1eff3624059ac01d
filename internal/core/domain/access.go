package domain

// Access control decisions are pure functions over (caller, action, target).
// The caller is always passed explicitly; a nil caller denies every write.
// Read paths require only an authenticated caller, which the HTTP middleware
// guarantees before any service code runs.

// CanCreateUser reports whether caller may create new accounts.
// Only callers whose role resolves to admin qualify.
func CanCreateUser(caller *User) bool {
	return caller.RoleName() == RoleAdmin
}

// CanModifyUser reports whether caller may update or delete the user with
// targetID. Admins may modify anyone; everyone else only themselves.
func CanModifyUser(caller *User, targetID int64) bool {
	if caller == nil {
		return false
	}
	return caller.RoleName() == RoleAdmin || caller.ID == targetID
}

// CanReadUsers reports whether caller may list and look up users.
func CanReadUsers(caller *User) bool {
	return caller != nil
}

// CanReadRoles reports whether caller may list and look up roles.
func CanReadRoles(caller *User) bool {
	return caller != nil
}
