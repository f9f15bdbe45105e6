package entity

// Permission identifica un área funcional protegida. Cada usuario porta un
// conjunto de permisos independientes en lugar de un rol.
type Permission string

const (
	PermSales          Permission = "sales"
	PermPurchase       Permission = "purchase"
	PermCreateProduct  Permission = "create_product"
	PermDeleteProduct  Permission = "delete_product"
	PermSalesLedger    Permission = "sales_ledger"
	PermPurchaseLedger Permission = "purchase_ledger"
	PermStockLedger    Permission = "stock_ledger"
	PermProfitLoss     Permission = "profit_loss"
	PermOpeningStock   Permission = "opening_stock"
	PermUserManagement Permission = "user_management"
)

// AllPermissions en orden canónico (orden de persistencia y de listado).
var AllPermissions = []Permission{
	PermSales,
	PermPurchase,
	PermCreateProduct,
	PermDeleteProduct,
	PermSalesLedger,
	PermPurchaseLedger,
	PermStockLedger,
	PermProfitLoss,
	PermOpeningStock,
	PermUserManagement,
}

// IsValidPermission verifica que el string corresponda a un permiso conocido.
func IsValidPermission(p Permission) bool {
	for _, known := range AllPermissions {
		if p == known {
			return true
		}
	}
	return false
}

// PermissionSet conjunto de permisos de un usuario.
type PermissionSet map[Permission]struct{}

// NewPermissionSet construye un set a partir de permisos sueltos.
func NewPermissionSet(perms ...Permission) PermissionSet {
	set := make(PermissionSet, len(perms))
	for _, p := range perms {
		set[p] = struct{}{}
	}
	return set
}

// Has indica si el permiso está presente.
func (s PermissionSet) Has(p Permission) bool {
	_, ok := s[p]
	return ok
}

// Grant agrega un permiso al set.
func (s PermissionSet) Grant(p Permission) {
	s[p] = struct{}{}
}

// Revoke quita un permiso del set.
func (s PermissionSet) Revoke(p Permission) {
	delete(s, p)
}

// List devuelve los permisos presentes en orden canónico.
func (s PermissionSet) List() []Permission {
	out := make([]Permission, 0, len(s))
	for _, p := range AllPermissions {
		if s.Has(p) {
			out = append(out, p)
		}
	}
	return out
}

// Strings devuelve los permisos presentes como []string (para respuestas API).
func (s PermissionSet) Strings() []string {
	perms := s.List()
	out := make([]string, len(perms))
	for i, p := range perms {
		out[i] = string(p)
	}
	return out
}
