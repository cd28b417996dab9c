// Package policy is the single place access decisions are made. Handlers and
// middleware ask it "may this identity perform this action on this resource"
// instead of re-implementing role checks per endpoint.
package policy

import (
	"restaurant-api/models"

	"gorm.io/gorm"
)

// Action is a model-permission token in the view/add/change/delete family.
type Action string

const (
	ActionView   Action = "view"
	ActionAdd    Action = "add"
	ActionChange Action = "change"
	ActionDelete Action = "delete"
)

// Resources gated by model permissions.
const (
	ResourceMenuItem = "menuitem"
	ResourceCategory = "category"
	ResourceOrder    = "order"
	ResourceUser     = "user"
)

// Roles a grant can be attached to. "staff" is the User.IsStaff flag,
// "manager" is membership of the manager group.
const (
	roleStaff   = "staff"
	roleManager = "manager"
)

// Grant says: holders of Role may perform Action on Resource.
type Grant struct {
	Role     string
	Action   Action
	Resource string
}

// grants is the authoritative capability table. Staff users and managers
// hold the full token set over every gated resource; plain customers and
// delivery crew hold none.
var grants = func() []Grant {
	resources := []string{ResourceMenuItem, ResourceCategory, ResourceOrder, ResourceUser}
	actions := []Action{ActionView, ActionAdd, ActionChange, ActionDelete}
	var gs []Grant
	for _, role := range []string{roleStaff, roleManager} {
		for _, res := range resources {
			for _, act := range actions {
				gs = append(gs, Grant{Role: role, Action: act, Resource: res})
			}
		}
	}
	return gs
}()

type grantKey struct {
	Role     string
	Action   Action
	Resource string
}

// Build a lookup map for O(1) decisions
var grantMap = func() map[grantKey]bool {
	m := make(map[grantKey]bool)
	for _, g := range grants {
		m[grantKey{g.Role, g.Action, g.Resource}] = true
	}
	return m
}()

// verbActions maps an HTTP method to the permission token it requires.
// OPTIONS and HEAD require none.
var verbActions = map[string]Action{
	"GET":    ActionView,
	"POST":   ActionAdd,
	"PUT":    ActionChange,
	"PATCH":  ActionChange,
	"DELETE": ActionDelete,
}

// ActionForVerb returns the permission token an HTTP method maps to.
// The second return is false for verbs that need no token (OPTIONS, HEAD).
func ActionForVerb(method string) (Action, bool) {
	a, ok := verbActions[method]
	return a, ok
}

// Allowed decides whether the user holds the model-permission token for
// (action, resource).
func Allowed(user *models.User, action Action, resource string) bool {
	if user == nil {
		return false
	}
	for _, role := range rolesOf(user) {
		if grantMap[grantKey{role, action, resource}] {
			return true
		}
	}
	return false
}

func rolesOf(user *models.User) []string {
	var roles []string
	if user.IsStaff {
		roles = append(roles, roleStaff)
	}
	if user.InGroup(models.GroupManager) {
		roles = append(roles, roleManager)
	}
	return roles
}

// IsManager reports whether the user belongs to the manager group.
func IsManager(user *models.User) bool {
	return user != nil && user.InGroup(models.GroupManager)
}

// IsDeliveryCrew reports whether the user belongs to the delivery-crew group.
func IsDeliveryCrew(user *models.User) bool {
	return user != nil && user.InGroup(models.GroupDeliveryCrew)
}

// LoadUser fetches a user with group memberships. Memberships are always
// re-read from the store so a group add/remove takes effect on the next
// request rather than being frozen into a token.
func LoadUser(db *gorm.DB, userID uint) (*models.User, error) {
	var user models.User
	if err := db.Preload("Groups").First(&user, userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
