package auth

import (
	"testing"

	"github.com/atelierhub/atelier-orders/internal/models"
)

func TestIsStaffRole(t *testing.T) {
	testCases := []struct {
		Name     string
		User     *models.UserData
		Expected bool
	}{
		{
			Name:     "Anonymous user is not staff #1",
			User:     nil,
			Expected: false,
		},
		{
			Name:     "Customer without groups is not staff #2",
			User:     &models.UserData{Login: "customer"},
			Expected: false,
		},
		{
			Name:     "Superuser is staff #3",
			User:     &models.UserData{Login: "boss", IsSuperuser: true},
			Expected: true,
		},
		{
			Name: "Group member is staff #4",
			User: &models.UserData{
				Login:  "operator",
				Groups: []models.GroupData{{Name: "Order Operator"}},
			},
			Expected: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			if got := IsStaffRole(tc.User); got != tc.Expected {
				t.Errorf("IsStaffRole() = %v, expected %v", got, tc.Expected)
			}
		})
	}
}

func TestHasCapability(t *testing.T) {
	operator := &models.UserData{
		Login: "operator",
		Groups: []models.GroupData{
			{Name: "Order Operator", Capabilities: []string{"view_all_orders", "change_order_status"}},
		},
	}

	testCases := []struct {
		Name       string
		User       *models.UserData
		Capability Capability
		Expected   bool
	}{
		{
			Name:       "Anonymous user has nothing #1",
			User:       nil,
			Capability: CapViewAllOrders,
			Expected:   false,
		},
		{
			Name:       "Superuser has everything #2",
			User:       &models.UserData{Login: "boss", IsSuperuser: true},
			Capability: CapViewFinancialReports,
			Expected:   true,
		},
		{
			Name:       "Group grants capability #3",
			User:       operator,
			Capability: CapChangeOrderStatus,
			Expected:   true,
		},
		{
			Name:       "Group does not grant capability #4",
			User:       operator,
			Capability: CapSetPricing,
			Expected:   false,
		},
		{
			Name:       "Unknown capability fails closed #5",
			User:       operator,
			Capability: Capability("delete_everything"),
			Expected:   false,
		},
		{
			Name:       "Customer without groups has nothing #6",
			User:       &models.UserData{Login: "customer"},
			Capability: CapViewAllOrders,
			Expected:   false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			if got := HasCapability(tc.User, tc.Capability); got != tc.Expected {
				t.Errorf("HasCapability(%q) = %v, expected %v", tc.Capability, got, tc.Expected)
			}
		})
	}
}
