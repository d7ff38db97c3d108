// config/security_config.go
package config

type SecurityLevel int

const (
	SecurityPublic SecurityLevel = iota // No authentication
	SecurityAccess                      // Access token required
	SecurityAdmin                       // Access token with ADMIN role required
)

// EndpointSecurityConfig maps route names to their required security level.
// Route names are the mux route names registered in the HTTP router.
var EndpointSecurityConfig = map[string]SecurityLevel{
	// Auth
	"auth.login":   SecurityPublic,
	"auth.refresh": SecurityPublic,

	// User administration
	"users.register": SecurityAdmin,

	// Orders
	"orders.list":          SecurityAccess,
	"orders.create":        SecurityAccess,
	"orders.get":           SecurityAccess,
	"orders.update":        SecurityAccess,
	"orders.update_status": SecurityAccess,

	// Worker tasks
	"tasks.list":           SecurityAccess,
	"tasks.create":         SecurityAccess,
	"tasks.get":            SecurityAccess,
	"tasks.update":         SecurityAccess,
	"tasks.delete":         SecurityAccess,
	"tasks.suggest_amount": SecurityAccess,
	"tasks.earnings":       SecurityAccess,

	// Workers
	"workers.list":       SecurityAccess,
	"workers.create":     SecurityAccess,
	"workers.get":        SecurityAccess,
	"workers.update":     SecurityAccess,
	"workers.attendance": SecurityAccess,

	// Clients
	"clients.list":   SecurityAccess,
	"clients.create": SecurityAccess,
	"clients.get":    SecurityAccess,
	"clients.update": SecurityAccess,

	// Products
	"products.list":         SecurityAccess,
	"products.create":       SecurityAccess,
	"products.get":          SecurityAccess,
	"products.update":       SecurityAccess,
	"products.availability": SecurityAccess,

	// Rates
	"rates.list":   SecurityAccess,
	"rates.create": SecurityAdmin,
	"rates.update": SecurityAdmin,
	"rates.delete": SecurityAdmin,
}

// GetSecurityLevel returns the security level for a given route name
func GetSecurityLevel(routeName string) SecurityLevel {
	if level, exists := EndpointSecurityConfig[routeName]; exists {
		return level
	}
	// Default to highest security for unknown endpoints
	return SecurityAdmin
}
