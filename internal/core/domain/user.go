package domain

import "time"

// Role names used by the admin dashboard and the RBAC middleware.
const (
	RoleSuperAdmin = "Superadministrador"
	RoleAdmin      = "Administrador"
	RoleEmployee   = "Empleado"
)

// User is a staff account as listed by the admin dashboard.
type User struct {
	ID           int64     `json:"id" bson:"_id"`
	Name         string    `json:"nombre" bson:"nombre"`
	Email        string    `json:"email" bson:"email"`
	Phone        string    `json:"telefono,omitempty" bson:"telefono,omitempty"`
	Roles        []string  `json:"roles" bson:"roles"`
	Status       string    `json:"estado" bson:"estado"`
	RestaurantID int64     `json:"restaurante_id,omitempty" bson:"restaurante_id,omitempty"`
	CreatedAt    time.Time `json:"fecha_creacion" bson:"fecha_creacion"`
}

// HasRole reports whether the user carries the given role.
func (u User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Role describes a permission group.
type Role struct {
	ID          int64  `json:"id" bson:"_id"`
	Name        string `json:"nombre" bson:"nombre"`
	Description string `json:"descripcion" bson:"descripcion"`
}

// AuthUser is the demo identity returned by the simulated login
// endpoint. It is intentionally separate from User: the credential set
// is fixed and the shape mirrors the simulator the frontend was built
// against.
type AuthUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Email    string `json:"email"`
}

// SimulatedTokenPrefix is the marker carried by placeholder session
// tokens. Verification is a prefix match only; the token is not a
// verifiable credential.
const SimulatedTokenPrefix = "simulated-jwt-token-"
