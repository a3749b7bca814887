// Package auth - правила доступа по ролям.
// Роль "сотрудник" не хранится отдельным полем, а выводится из снимка
// пользователя: суперпользователь или членство хотя бы в одной группе.
package auth

import "github.com/atelierhub/atelier-orders/internal/models"

// Capability - именованное разрешение, закрытый перечень
type Capability string

const (
	CapViewAllOrders        Capability = "view_all_orders"
	CapChangeOrderStatus    Capability = "change_order_status"
	CapSetPricing           Capability = "set_pricing"
	CapViewFinancialReports Capability = "view_financial_reports"
)

// IsStaffRole проверяет, является ли пользователь сотрудником.
// Анонимный пользователь (nil) сотрудником не бывает.
func IsStaffRole(user *models.UserData) bool {
	if user == nil {
		return false
	}
	return user.IsSuperuser || len(user.Groups) > 0
}

// HasCapability проверяет наличие разрешения у пользователя.
// Суперпользователь имеет все разрешения, неизвестные имена всегда запрещены.
func HasCapability(user *models.UserData, capability Capability) bool {
	if user == nil {
		return false
	}
	if user.IsSuperuser {
		return true
	}
	for _, group := range user.Groups {
		for _, granted := range group.Capabilities {
			if granted == string(capability) {
				return true
			}
		}
	}
	return false
}
