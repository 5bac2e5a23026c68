package member

type Permission string

const (
	// Self Management
	PermissionStatusViewOwn   Permission = "status.view_own"
	PermissionVacationRequest Permission = "vacation.request"

	// Attendance Management
	PermissionStatusViewAll Permission = "status.view_all"
	PermissionStatusManage  Permission = "status.manage"

	// Vacation Management
	PermissionVacationViewAll Permission = "vacation.view_all"
	PermissionVacationReview  Permission = "vacation.review"

	// Member Management
	PermissionMemberViewAll Permission = "member.view_all"
	PermissionMemberManage  Permission = "member.manage"
	PermissionManagerAssign Permission = "member.assign_manager"

	// Company Management
	PermissionCompanyManage Permission = "company.manage"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleOwner: {
		// Owner has all permissions
		PermissionStatusViewOwn,
		PermissionVacationRequest,
		PermissionStatusViewAll,
		PermissionStatusManage,
		PermissionVacationViewAll,
		PermissionVacationReview,
		PermissionMemberViewAll,
		PermissionMemberManage,
		PermissionManagerAssign,
		PermissionCompanyManage,
	},
	RoleManager: {
		PermissionStatusViewOwn,
		PermissionVacationRequest,
		PermissionStatusViewAll,
		PermissionStatusManage,
		PermissionVacationViewAll,
		PermissionVacationReview,
		PermissionMemberViewAll,
		PermissionMemberManage,
	},
	RoleWorker: {
		PermissionStatusViewOwn,
		PermissionVacationRequest,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
