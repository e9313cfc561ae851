package domain

// Static fallback dataset. These records guarantee the frontend always
// has something renderable when both the store and the cache are
// unavailable (first run, cold cache, connectivity loss). They are
// constant: nothing written through the API mutates them.

var fallbackMenuItems = []MenuItem{
	{
		ID:          1,
		Name:        "Plato Margarita",
		Description: "Pizza clásica con tomate y queso mozzarella",
		Price:       8.99,
		Category:    "Pizzas",
		Available:   true,
	},
	{
		ID:          2,
		Name:        "Costillas Especiales",
		Description: "Costillas en salsa barbacoa con patatas fritas caseras",
		Price:       14.50,
		Category:    "Carnes",
		Available:   true,
	},
	{
		ID:          3,
		Name:        "Tiramisu",
		Description: "Postre tradicional italiano con café y mascarpone",
		Price:       6.75,
		Category:    "Postres",
		Available:   true,
	},
	{
		ID:          4,
		Name:        "Patatas Bravas",
		Description: "Patatas fritas con salsa picante y alioli",
		Price:       5.50,
		Category:    "Entrantes",
		Available:   true,
	},
}

var fallbackUsers = []User{
	{ID: 1, Name: "Administrador", Email: "admin@example.com", Roles: []string{RoleSuperAdmin}, Status: "activo"},
	{ID: 2, Name: "Juan Pérez", Email: "juan@example.com", Phone: "3001234567", Roles: []string{RoleAdmin}, Status: "activo"},
	{ID: 3, Name: "María López", Email: "maria@example.com", Phone: "3112345678", Roles: []string{RoleEmployee}, Status: "activo"},
	{ID: 4, Name: "Carlos Rodríguez", Email: "carlos@example.com", Roles: []string{RoleEmployee}, Status: "inactivo"},
}

var fallbackRoles = []Role{
	{ID: 1, Name: RoleSuperAdmin, Description: "Control total del sistema"},
	{ID: 2, Name: RoleAdmin, Description: "Gestión de usuarios y configuración"},
	{ID: 3, Name: RoleEmployee, Description: "Operaciones básicas"},
}

// FallbackMenuItems returns a copy of the static menu dataset.
func FallbackMenuItems() []MenuItem {
	out := make([]MenuItem, len(fallbackMenuItems))
	copy(out, fallbackMenuItems)
	return out
}

// FallbackUsers returns a copy of the static user dataset.
func FallbackUsers() []User {
	out := make([]User, len(fallbackUsers))
	copy(out, fallbackUsers)
	return out
}

// FallbackRoles returns a copy of the static role dataset.
func FallbackRoles() []Role {
	out := make([]Role, len(fallbackRoles))
	copy(out, fallbackRoles)
	return out
}
