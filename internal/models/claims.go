package models

import "github.com/golang-jwt/jwt/v5"

// Application permissions
const (
	PermissionMarketRead   = "market:read"
	PermissionMarketWrite  = "market:write"
	PermissionVendorRead   = "vendor:read"
	PermissionVendorWrite  = "vendor:write"
	PermissionBillingRead  = "billing:read"
	PermissionBillingRun   = "billing:run"
	PermissionPaymentWrite = "payment:write"
	PermissionUserWrite    = "user:write"
)

type UserClaims struct {
	jwt.RegisteredClaims
	UserID       uint    `json:"user_id"`
	UserCode     string  `json:"user_code"`
	Email        string  `json:"email"`
	Role         string  `json:"role"`
	MarketCode   *string `json:"market_code,omitempty"`
	Permissions  []string `json:"permissions"`
	TokenVersion int      `json:"token_version"`
}

// HasPermission checks if the claims include a specific permission
func (c *UserClaims) HasPermission(permission string) bool {
	for _, p := range c.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}

// GetDefaultPermissions returns default permissions based on role
func GetDefaultPermissions(role string) []string {
	switch role {
	case RoleSuperAdmin:
		return []string{
			PermissionMarketRead,
			PermissionMarketWrite,
			PermissionVendorRead,
			PermissionVendorWrite,
			PermissionBillingRead,
			PermissionBillingRun,
			PermissionPaymentWrite,
			PermissionUserWrite,
		}
	case RoleMarketAdmin:
		return []string{
			PermissionMarketRead,
			PermissionVendorRead,
			PermissionVendorWrite,
			PermissionBillingRead,
			PermissionPaymentWrite,
		}
	default:
		return []string{}
	}
}
