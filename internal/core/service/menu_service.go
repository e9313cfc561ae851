package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/websap/websap-api/internal/api/metrics"
	"github.com/websap/websap-api/internal/core/domain"
	"github.com/websap/websap-api/internal/core/ports"
)

// MenuService handles menu mutations against the primary store, with a
// cache-namespace fallback for bulk saves so the menu editor keeps
// working while the store is down.
type MenuService struct {
	repo  ports.MenuRepository
	cache ports.EntityCache
	log   zerolog.Logger
}

func NewMenuService(repo ports.MenuRepository, cache ports.EntityCache, log zerolog.Logger) *MenuService {
	return &MenuService{repo: repo, cache: cache, log: log}
}

// Save bulk-upserts the menu. When the primary store is unreachable
// the items are written to the local cache instead and the result is
// flagged as a fallback save. Only when both destinations fail does
// Save return an error (the original store error).
func (s *MenuService) Save(ctx context.Context, items []domain.MenuItem) (ports.SaveMenuResult, error) {
	storeErr := s.repo.SaveAll(ctx, items)
	if storeErr == nil {
		// Keep the cache mirror fresh; failure here is non-fatal.
		if err := s.cache.Put(ctx, domain.StoreMenuItems, menuRecords(items)); err != nil {
			s.log.Warn().Err(err).Msg("failed to refresh menu cache after save")
		}
		metrics.MenuSavesTotal.WithLabelValues("primary").Inc()
		return ports.SaveMenuResult{Success: true, Message: "Menú guardado correctamente"}, nil
	}

	s.log.Warn().Err(storeErr).Msg("primary store unavailable, saving menu to local cache")
	if err := s.cache.Put(ctx, domain.StoreMenuItems, menuRecords(items)); err != nil {
		s.log.Error().Err(err).Msg("fallback menu save failed")
		return ports.SaveMenuResult{}, fmt.Errorf("save menu: %w", storeErr)
	}

	metrics.MenuSavesTotal.WithLabelValues("fallback").Inc()
	return ports.SaveMenuResult{
		Success:  true,
		Fallback: true,
		Message:  "Menú guardado localmente (modo fallback)",
	}, nil
}

// Create inserts a new dish, assigning an id when none is provided.
func (s *MenuService) Create(ctx context.Context, item domain.MenuItem) (domain.MenuItem, error) {
	if item.ID == 0 {
		item.ID = time.Now().UnixMilli()
	}
	if err := s.repo.Upsert(ctx, item); err != nil {
		return domain.MenuItem{}, fmt.Errorf("create dish: %w", err)
	}
	s.log.Info().Int64("id", item.ID).Str("nombre", item.Name).Msg("dish created")
	return item, nil
}

// Update replaces an existing dish.
func (s *MenuService) Update(ctx context.Context, item domain.MenuItem) error {
	if err := s.repo.Upsert(ctx, item); err != nil {
		return fmt.Errorf("update dish: %w", err)
	}
	return nil
}

// Delete removes a dish from the store and from the cache mirror.
func (s *MenuService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete dish: %w", err)
	}
	if err := s.cache.Delete(ctx, domain.StoreMenuItems, strconv.FormatInt(id, 10)); err != nil {
		s.log.Warn().Err(err).Int64("id", id).Msg("failed to evict dish from cache")
	}
	return nil
}

func menuRecords(items []domain.MenuItem) []ports.CacheRecord {
	return toRecords(items, func(m domain.MenuItem) string {
		return strconv.FormatInt(m.ID, 10)
	})
}
