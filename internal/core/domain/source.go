package domain

// Source identifies which tier produced a result set: the authoritative
// store, the local cache, or the static demo dataset.
type Source string

const (
	SourceAPI   Source = "api"
	SourceCache Source = "cache"
	SourceDummy Source = "dummy"
)

// Cache namespaces, one per entity type. Each namespace is keyed by the
// entity id.
const (
	StoreMenuItems = "menu_items"
	StoreUsers     = "users"
	StoreRoles     = "roles"
)
