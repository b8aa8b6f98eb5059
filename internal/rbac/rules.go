package rbac

// RolePermissions is the default policy.
var RolePermissions = map[string][]string{
	"candidate": {
		"exam:view",
		"session:start",
		"session:answer",
		"session:checkpoint",
		"session:restore",
		"session:view-own",
		"timer:view",
	},
	"proctor": {
		"exam:view",
		"exam:grade",
		"session:view-all",
		"timer:view",
	},
	"admin": {
		"*", // everything
	},
}
