package kvstore_test

import (
	"context"
	"testing"

	"github.com/cinemood/cinemood/internal/kvstore"
	"github.com/cinemood/cinemood/internal/testutil"
)

func TestSQLite_GetAbsentKey(t *testing.T) {
	tdb := testutil.NewTestDB(t)
	defer tdb.Close()

	store := kvstore.NewSQLite(tdb.Conn)

	value, ok, err := store.Get(context.Background(), "missing")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if ok || value != "" {
		t.Errorf("Get(missing) = (%q, %v), want (\"\", false)", value, ok)
	}
}

func TestSQLite_SetAndGet(t *testing.T) {
	tdb := testutil.NewTestDB(t)
	defer tdb.Close()

	store := kvstore.NewSQLite(tdb.Conn)
	ctx := context.Background()

	if err := store.Set(ctx, "watchlist", `[{"id":"a"}]`); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	value, ok, err := store.Get(ctx, "watchlist")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !ok || value != `[{"id":"a"}]` {
		t.Errorf("Get() = (%q, %v), want stored value", value, ok)
	}
}

func TestSQLite_SetOverwrites(t *testing.T) {
	tdb := testutil.NewTestDB(t)
	defer tdb.Close()

	store := kvstore.NewSQLite(tdb.Conn)
	ctx := context.Background()

	store.Set(ctx, "key", "first")
	if err := store.Set(ctx, "key", "second"); err != nil {
		t.Fatalf("Set() overwrite error = %v", err)
	}

	value, _, err := store.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if value != "second" {
		t.Errorf("Get() = %q, want %q", value, "second")
	}
}

func TestMemory_Roundtrip(t *testing.T) {
	store := kvstore.NewMemory()
	ctx := context.Background()

	if _, ok, _ := store.Get(ctx, "key"); ok {
		t.Error("Get() on empty store reported a value")
	}

	store.Set(ctx, "key", "value")
	value, ok, _ := store.Get(ctx, "key")
	if !ok || value != "value" {
		t.Errorf("Get() = (%q, %v), want (value, true)", value, ok)
	}
}
