package service

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/websap/websap-api/internal/api/metrics"
	"github.com/websap/websap-api/internal/core/domain"
	"github.com/websap/websap-api/internal/core/ports"
)

const defaultFetchTimeout = 8 * time.Second

// FetchService implements the tiered read path: primary store, then
// local cache, then the static fallback dataset. Tiers are attempted
// strictly in order, each at most once per call, and the winning tier
// is stamped on the result.
type FetchService struct {
	menuRepo ports.MenuRepository
	userRepo ports.UserRepository
	roleRepo ports.RoleRepository
	cache    ports.EntityCache
	timeout  time.Duration
	log      zerolog.Logger
}

func NewFetchService(
	menuRepo ports.MenuRepository,
	userRepo ports.UserRepository,
	roleRepo ports.RoleRepository,
	cache ports.EntityCache,
	timeout time.Duration,
	log zerolog.Logger,
) *FetchService {
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	return &FetchService{
		menuRepo: menuRepo,
		userRepo: userRepo,
		roleRepo: roleRepo,
		cache:    cache,
		timeout:  timeout,
		log:      log,
	}
}

// MenuItems returns the best-available menu.
func (s *FetchService) MenuItems(ctx context.Context, filter ports.MenuFilter) ports.MenuFetchResult {
	data, source, ok, msg := fetchTiered(ctx, s, tierSpec[domain.MenuItem]{
		entity: "menu",
		store:  domain.StoreMenuItems,
		remote: func(ctx context.Context) ([]domain.MenuItem, error) {
			return s.menuRepo.List(ctx, filter)
		},
		id:    func(m domain.MenuItem) string { return strconv.FormatInt(m.ID, 10) },
		match: func(m domain.MenuItem) bool { return matchMenuItem(m, filter) },
		dummy: domain.FallbackMenuItems,
		messages: tierMessages{
			api:   "Menú cargado desde API",
			cache: "Menú cargado desde almacenamiento local",
			dummy: "Usando datos de ejemplo",
		},
	})
	return ports.MenuFetchResult{Success: ok, Data: data, Source: source, Message: msg}
}

// Users returns the best-available staff list.
func (s *FetchService) Users(ctx context.Context, filter ports.UserFilter) ports.UserFetchResult {
	data, source, ok, msg := fetchTiered(ctx, s, tierSpec[domain.User]{
		entity: "users",
		store:  domain.StoreUsers,
		remote: func(ctx context.Context) ([]domain.User, error) {
			return s.userRepo.List(ctx, filter)
		},
		id:    func(u domain.User) string { return strconv.FormatInt(u.ID, 10) },
		match: func(u domain.User) bool { return matchUser(u, filter) },
		dummy: domain.FallbackUsers,
		messages: tierMessages{
			api:   "Usuarios cargados desde API",
			cache: "Usuarios cargados desde almacenamiento local",
			dummy: "Usando datos de ejemplo",
		},
	})
	return ports.UserFetchResult{Success: ok, Data: data, Source: source, Message: msg}
}

// Roles returns the best-available role list.
func (s *FetchService) Roles(ctx context.Context) ports.RoleFetchResult {
	data, source, ok, msg := fetchTiered(ctx, s, tierSpec[domain.Role]{
		entity: "roles",
		store:  domain.StoreRoles,
		remote: s.roleRepo.List,
		id:     func(r domain.Role) string { return strconv.FormatInt(r.ID, 10) },
		match:  func(domain.Role) bool { return true },
		dummy:  domain.FallbackRoles,
		messages: tierMessages{
			api:   "Roles cargados desde API",
			cache: "Roles cargados desde almacenamiento local",
			dummy: "Usando datos de ejemplo",
		},
	})
	return ports.RoleFetchResult{Success: ok, Data: data, Source: source, Message: msg}
}

type tierMessages struct {
	api   string
	cache string
	dummy string
}

// tierSpec bundles the per-entity pieces of the fallback sequence.
// The same match predicate filters both the cache and the dummy tier,
// so the two degraded paths can never disagree.
type tierSpec[T any] struct {
	entity   string
	store    string
	remote   func(ctx context.Context) ([]T, error)
	id       func(T) string
	match    func(T) bool
	dummy    func() []T
	messages tierMessages
}

func fetchTiered[T any](ctx context.Context, s *FetchService, spec tierSpec[T]) ([]T, domain.Source, bool, string) {
	// Tier 1: primary store, bounded by a single timeout. An empty
	// result is still a hit and is mirrored into the cache as-is.
	remoteCtx, cancel := context.WithTimeout(ctx, s.timeout)
	items, err := spec.remote(remoteCtx)
	cancel()
	if err == nil {
		s.mirror(ctx, spec.store, toRecords(items, spec.id))
		metrics.FetchResultsTotal.WithLabelValues(spec.entity, string(domain.SourceAPI)).Inc()
		return items, domain.SourceAPI, true, spec.messages.api
	}
	s.log.Warn().Err(err).Str("entity", spec.entity).Msg("primary store unavailable, trying cache")
	metrics.FetchTierFailuresTotal.WithLabelValues(spec.entity, "api").Inc()

	// Tier 2: local cache, filtered locally.
	cached, cerr := cacheGetAll[T](ctx, s.cache, spec.store)
	if cerr != nil {
		s.log.Warn().Err(cerr).Str("entity", spec.entity).Msg("cache unavailable, using fallback dataset")
		metrics.FetchTierFailuresTotal.WithLabelValues(spec.entity, "cache").Inc()
	} else if len(cached) > 0 {
		metrics.FetchResultsTotal.WithLabelValues(spec.entity, string(domain.SourceCache)).Inc()
		return filterSlice(cached, spec.match), domain.SourceCache, true, spec.messages.cache
	}

	// Tier 3: static fallback dataset.
	dummy := spec.dummy()
	metrics.FetchResultsTotal.WithLabelValues(spec.entity, string(domain.SourceDummy)).Inc()
	if len(dummy) == 0 {
		return []T{}, domain.SourceDummy, false, "Sin datos disponibles"
	}
	return filterSlice(dummy, spec.match), domain.SourceDummy, true, spec.messages.dummy
}

// mirror writes a fresh remote result into the cache. Failure to cache
// is logged, never propagated.
func (s *FetchService) mirror(ctx context.Context, store string, records []ports.CacheRecord) {
	if len(records) == 0 {
		return
	}
	if err := s.cache.Put(ctx, store, records); err != nil {
		s.log.Warn().Err(err).Str("store", store).Msg("failed to mirror result into cache")
	}
}

func toRecords[T any](items []T, id func(T) string) []ports.CacheRecord {
	records := make([]ports.CacheRecord, 0, len(items))
	for _, item := range items {
		data, err := json.Marshal(item)
		if err != nil {
			continue
		}
		records = append(records, ports.CacheRecord{ID: id(item), Data: data})
	}
	return records
}

func cacheGetAll[T any](ctx context.Context, cache ports.EntityCache, store string) ([]T, error) {
	raw, err := cache.GetAll(ctx, store)
	if err != nil {
		return nil, err
	}
	items := make([]T, 0, len(raw))
	for _, data := range raw {
		var item T
		if err := json.Unmarshal(data, &item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func filterSlice[T any](items []T, match func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if match(item) {
			out = append(out, item)
		}
	}
	return out
}

// matchUser applies the admin list filter: case-insensitive substring
// on name and email, exact match on role and status.
func matchUser(u domain.User, f ports.UserFilter) bool {
	if f.SearchTerm != "" {
		term := strings.ToLower(f.SearchTerm)
		if !strings.Contains(strings.ToLower(u.Name), term) &&
			!strings.Contains(strings.ToLower(u.Email), term) {
			return false
		}
	}
	if f.Role != "" && !u.HasRole(f.Role) {
		return false
	}
	if f.Status != "" && u.Status != f.Status {
		return false
	}
	return true
}

// matchMenuItem applies the public menu filter: case-insensitive
// substring on name and description, exact match on category and
// availability.
func matchMenuItem(m domain.MenuItem, f ports.MenuFilter) bool {
	if f.Search != "" {
		term := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(m.Name), term) &&
			!strings.Contains(strings.ToLower(m.Description), term) {
			return false
		}
	}
	if f.Category != "" && m.Category != f.Category {
		return false
	}
	if f.Available != nil && m.Available != *f.Available {
		return false
	}
	return true
}
