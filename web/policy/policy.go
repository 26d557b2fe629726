// Package policy holds the static authorization table of the clubsite backend.
// Every protected route names a (resource, operation) pair; the table maps the
// pair to the set of roles allowed to perform it. Roles are never compared
// ordinally - admin is not a superset of editor by rank, the table spells out
// each set explicitly.
package policy

import "github.com/clubsite/server/database/model"

// Identity is the verified subject carried by a request token. Absence of an
// Identity in the request context means the caller is anonymous.
type Identity struct {
	Id       int    `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func (id Identity) IsAdmin() bool { return id.Role == model.RoleAdmin }

type Resource string

const (
	ResourceNews          Resource = "news"
	ResourceWorks         Resource = "works"
	ResourceMembers       Resource = "members"
	ResourceFriendLinks   Resource = "friend-links"
	ResourceFameMembers   Resource = "fame-members"
	ResourceHistory       Resource = "history"
	ResourceAdminHistory  Resource = "admin-history"
	ResourceMessages      Resource = "messages"
	ResourceUsers         Resource = "users"
	ResourceAnnouncements Resource = "announcements"
	ResourceUploads       Resource = "uploads"
)

type Operation string

const (
	// OpListAll is the privileged listing that bypasses public visibility
	// (all announcements, all messages). Public listings need no policy entry.
	OpListAll Operation = "list-all"
	OpCreate  Operation = "create"
	OpUpdate  Operation = "update"
	OpDelete  Operation = "delete"
	// OpReview covers status changes: news approval, message moderation,
	// the works featured flag.
	OpReview Operation = "review"
	OpImport Operation = "import"
)

var rules = map[Resource]map[Operation][]string{
	ResourceNews: {
		OpCreate: {model.RoleAdmin, model.RoleEditor, model.RoleMember},
		OpUpdate: {model.RoleAdmin, model.RoleEditor, model.RoleMember},
		OpReview: {model.RoleAdmin},
		OpDelete: {model.RoleAdmin},
	},
	ResourceWorks: {
		OpCreate: {model.RoleAdmin, model.RoleEditor, model.RoleMember},
		OpUpdate: {model.RoleAdmin, model.RoleEditor, model.RoleMember},
		OpReview: {model.RoleAdmin},
		OpDelete: {model.RoleAdmin},
	},
	ResourceMembers: {
		OpCreate: {model.RoleAdmin, model.RoleEditor},
		OpUpdate: {model.RoleAdmin, model.RoleEditor},
		OpDelete: {model.RoleAdmin},
	},
	ResourceFriendLinks: {
		OpCreate: {model.RoleAdmin},
		OpUpdate: {model.RoleAdmin},
		OpDelete: {model.RoleAdmin},
	},
	ResourceFameMembers: {
		OpCreate: {model.RoleAdmin, model.RoleEditor},
		OpUpdate: {model.RoleAdmin, model.RoleEditor},
		OpDelete: {model.RoleAdmin},
	},
	ResourceHistory: {
		OpCreate: {model.RoleAdmin, model.RoleEditor},
		OpUpdate: {model.RoleAdmin, model.RoleEditor},
		OpDelete: {model.RoleAdmin},
	},
	ResourceAdminHistory: {
		OpCreate: {model.RoleAdmin},
		OpUpdate: {model.RoleAdmin},
		OpDelete: {model.RoleAdmin},
	},
	ResourceMessages: {
		OpListAll: {model.RoleAdmin, model.RoleEditor},
		OpCreate:  {model.RoleAdmin, model.RoleEditor},
		OpUpdate:  {model.RoleAdmin, model.RoleEditor},
		OpReview:  {model.RoleAdmin, model.RoleEditor},
		OpDelete:  {model.RoleAdmin, model.RoleEditor},
		OpImport:  {model.RoleAdmin, model.RoleEditor},
	},
	ResourceUsers: {
		OpListAll: {model.RoleAdmin},
		OpCreate:  {model.RoleAdmin},
		OpUpdate:  {model.RoleAdmin},
		OpDelete:  {model.RoleAdmin},
		OpImport:  {model.RoleAdmin},
	},
	ResourceAnnouncements: {
		OpListAll: {model.RoleAdmin, model.RoleEditor},
		OpCreate:  {model.RoleAdmin, model.RoleEditor},
		OpUpdate:  {model.RoleAdmin, model.RoleEditor},
		OpDelete:  {model.RoleAdmin},
	},
	ResourceUploads: {
		OpCreate: {model.RoleAdmin, model.RoleEditor, model.RoleMember},
	},
}

// Allows reports whether role may perform op on resource. Unknown pairs deny.
func Allows(role string, resource Resource, op Operation) bool {
	ops, ok := rules[resource]
	if !ok {
		return false
	}
	for _, r := range ops[op] {
		if r == role {
			return true
		}
	}
	return false
}
