package service

import (
	"context"
	"errors"
	"testing"

	"github.com/websap/websap-api/internal/core/domain"
)

func TestMenuService_Save_Primary(t *testing.T) {
	repo := &stubMenuRepo{}
	cache := newMemCache()
	svc := NewMenuService(repo, cache, discardLogger)

	items := []domain.MenuItem{{ID: 1, Name: "Pizza"}, {ID: 2, Name: "Tacos"}}
	result, err := svc.Save(context.Background(), items)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !result.Success || result.Fallback {
		t.Errorf("expected primary save, got %+v", result)
	}
	if len(repo.saved) != 2 {
		t.Errorf("expected 2 items stored, got %d", len(repo.saved))
	}
	// The cache mirror must be refreshed on a primary save.
	if cache.size(domain.StoreMenuItems) != 2 {
		t.Errorf("expected 2 mirrored records, got %d", cache.size(domain.StoreMenuItems))
	}
}

func TestMenuService_Save_FallsBackToCache(t *testing.T) {
	repo := &stubMenuRepo{saveErr: errStoreDown}
	cache := newMemCache()
	svc := NewMenuService(repo, cache, discardLogger)

	result, err := svc.Save(context.Background(), []domain.MenuItem{{ID: 1, Name: "Pizza"}})
	if err != nil {
		t.Fatalf("fallback save must not error: %v", err)
	}

	if !result.Success || !result.Fallback {
		t.Errorf("expected fallback save, got %+v", result)
	}
	if cache.size(domain.StoreMenuItems) != 1 {
		t.Errorf("expected 1 cached record, got %d", cache.size(domain.StoreMenuItems))
	}
}

func TestMenuService_Save_BothDestinationsDown(t *testing.T) {
	repo := &stubMenuRepo{saveErr: errStoreDown}
	cache := newMemCache()
	cache.failing = true
	svc := NewMenuService(repo, cache, discardLogger)

	_, err := svc.Save(context.Background(), []domain.MenuItem{{ID: 1}})
	if err == nil {
		t.Fatal("expected error when both destinations fail")
	}
	// The store error is the root cause the caller should see.
	if !errors.Is(err, errStoreDown) {
		t.Errorf("expected wrapped store error, got %v", err)
	}
}

func TestMenuService_Save_CacheMirrorFailureIsNonFatal(t *testing.T) {
	repo := &stubMenuRepo{}
	cache := newMemCache()
	cache.failing = true
	svc := NewMenuService(repo, cache, discardLogger)

	result, err := svc.Save(context.Background(), []domain.MenuItem{{ID: 1}})
	if err != nil {
		t.Fatalf("primary save must survive a dead cache: %v", err)
	}
	if !result.Success || result.Fallback {
		t.Errorf("expected primary save, got %+v", result)
	}
}

func TestMenuService_Create_AssignsID(t *testing.T) {
	repo := &stubMenuRepo{}
	svc := NewMenuService(repo, newMemCache(), discardLogger)

	created, err := svc.Create(context.Background(), domain.MenuItem{Name: "Tiramisu"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == 0 {
		t.Error("expected a generated id")
	}
}

func TestMenuService_Create_KeepsProvidedID(t *testing.T) {
	repo := &stubMenuRepo{}
	svc := NewMenuService(repo, newMemCache(), discardLogger)

	created, err := svc.Create(context.Background(), domain.MenuItem{ID: 42, Name: "Tiramisu"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 42 {
		t.Errorf("expected id 42, got %d", created.ID)
	}
}

func TestMenuService_Delete_EvictsCache(t *testing.T) {
	repo := &stubMenuRepo{}
	cache := newMemCache()
	_ = cache.Put(context.Background(), domain.StoreMenuItems, nil)
	svc := NewMenuService(repo, cache, discardLogger)

	_, _ = svc.Create(context.Background(), domain.MenuItem{ID: 7, Name: "Bravas"})
	_, err := svc.Save(context.Background(), []domain.MenuItem{{ID: 7, Name: "Bravas"}})
	if err != nil {
		t.Fatalf("seed save: %v", err)
	}

	if err := svc.Delete(context.Background(), 7); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != 7 {
		t.Errorf("expected store delete of id 7, got %v", repo.deleted)
	}
	if cache.size(domain.StoreMenuItems) != 0 {
		t.Errorf("expected cache eviction, %d records remain", cache.size(domain.StoreMenuItems))
	}
}
