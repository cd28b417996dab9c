package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"restaurant-api/models"
)

func userWith(staff bool, groups ...string) *models.User {
	u := &models.User{Username: "u", IsStaff: staff}
	for _, name := range groups {
		u.Groups = append(u.Groups, models.Group{Name: name})
	}
	return u
}

func TestActionForVerb(t *testing.T) {
	cases := []struct {
		method string
		action Action
		needed bool
	}{
		{"GET", ActionView, true},
		{"POST", ActionAdd, true},
		{"PUT", ActionChange, true},
		{"PATCH", ActionChange, true},
		{"DELETE", ActionDelete, true},
		{"OPTIONS", "", false},
		{"HEAD", "", false},
	}
	for _, tc := range cases {
		action, needed := ActionForVerb(tc.method)
		assert.Equal(t, tc.needed, needed, tc.method)
		if tc.needed {
			assert.Equal(t, tc.action, action, tc.method)
		}
	}
}

func TestAllowed(t *testing.T) {
	resources := []string{ResourceMenuItem, ResourceCategory, ResourceOrder, ResourceUser}
	actions := []Action{ActionView, ActionAdd, ActionChange, ActionDelete}

	t.Run("Staff and managers hold every token", func(t *testing.T) {
		for _, user := range []*models.User{
			userWith(true),
			userWith(false, models.GroupManager),
		} {
			for _, res := range resources {
				for _, act := range actions {
					assert.True(t, Allowed(user, act, res), "%s %s", act, res)
				}
			}
		}
	})

	t.Run("Customers and delivery crew hold none", func(t *testing.T) {
		for _, user := range []*models.User{
			userWith(false),
			userWith(false, models.GroupDeliveryCrew),
		} {
			for _, res := range resources {
				for _, act := range actions {
					assert.False(t, Allowed(user, act, res), "%s %s", act, res)
				}
			}
		}
	})

	t.Run("Nil user is denied", func(t *testing.T) {
		assert.False(t, Allowed(nil, ActionView, ResourceMenuItem))
	})
}

func TestRoleHelpers(t *testing.T) {
	assert.True(t, IsManager(userWith(false, models.GroupManager)))
	assert.False(t, IsManager(userWith(true)))
	assert.False(t, IsManager(nil))

	assert.True(t, IsDeliveryCrew(userWith(false, models.GroupDeliveryCrew)))
	assert.False(t, IsDeliveryCrew(userWith(false, models.GroupManager)))
	assert.False(t, IsDeliveryCrew(nil))
}
