package internal

// Scope names granted through the scopes and user_scopes tables. Write
// operations on each org resource are gated on the matching scope;
// reads only require a valid token.
const (
	ScopeManageDepartments  = "manage_departments"
	ScopeManageUnits        = "manage_units"
	ScopeManageDesignations = "manage_designations"
	ScopeManageLocations    = "manage_locations"
	ScopeManageHeadOfUnits  = "manage_headofunits"
)

// AllScopes is the full grant set, used by the seeder for the admin user.
var AllScopes = []string{
	ScopeManageDepartments,
	ScopeManageUnits,
	ScopeManageDesignations,
	ScopeManageLocations,
	ScopeManageHeadOfUnits,
}
