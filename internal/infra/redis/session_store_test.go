package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/kursadbilgin/notification-info/internal/auth"
	goredis "github.com/redis/go-redis/v9"
)

func TestSessionStoreRoundTrip(t *testing.T) {
	t.Parallel()

	mr, rdb := newTestRedis(t)
	store, err := NewSessionStore(rdb)
	if err != nil {
		t.Fatalf("NewSessionStore() error = %v", err)
	}

	ctx := context.Background()
	if err := store.Save(ctx, "abc", "customer-1", time.Minute); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if got, err := mr.Get("session:abc"); err != nil || got != "customer-1" {
		t.Fatalf("stored value = (%q, %v), want customer-1", got, err)
	}

	customerID, err := store.CustomerID(ctx, "abc")
	if err != nil {
		t.Fatalf("CustomerID() error = %v", err)
	}
	if customerID != "customer-1" {
		t.Fatalf("CustomerID() = %q, want customer-1", customerID)
	}

	mr.FastForward(2 * time.Minute)

	if _, err := store.CustomerID(ctx, "abc"); !errors.Is(err, auth.ErrSessionNotFound) {
		t.Fatalf("expired session error = %v, want ErrSessionNotFound", err)
	}
}

func TestSessionStoreUnknownAndDeleted(t *testing.T) {
	t.Parallel()

	_, rdb := newTestRedis(t)
	store, err := NewSessionStore(rdb)
	if err != nil {
		t.Fatalf("NewSessionStore() error = %v", err)
	}

	ctx := context.Background()
	if _, err := store.CustomerID(ctx, "missing"); !errors.Is(err, auth.ErrSessionNotFound) {
		t.Fatalf("CustomerID() error = %v, want ErrSessionNotFound", err)
	}

	if err := store.Save(ctx, "abc", "customer-1", 0); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := store.Delete(ctx, "abc"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := store.CustomerID(ctx, "abc"); !errors.Is(err, auth.ErrSessionNotFound) {
		t.Fatalf("deleted session error = %v, want ErrSessionNotFound", err)
	}
	if err := store.Save(ctx, " ", "customer-1", 0); err == nil {
		t.Fatal("expected error for blank session id")
	}
}

func TestSessionStoreBackendFailure(t *testing.T) {
	t.Parallel()

	mr, rdb := newTestRedis(t)
	store, err := NewSessionStore(rdb)
	if err != nil {
		t.Fatalf("NewSessionStore() error = %v", err)
	}

	mr.Close()

	_, err = store.CustomerID(context.Background(), "abc")
	if err == nil {
		t.Fatal("expected error when redis is down")
	}
	if errors.Is(err, auth.ErrSessionNotFound) {
		t.Fatal("backend failure must not look like a missing session")
	}
}

func TestNewRedis(t *testing.T) {
	t.Parallel()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis.Run() error = %v", err)
	}
	t.Cleanup(mr.Close)

	client, err := NewRedis(context.Background(), "redis://"+mr.Addr())
	if err != nil {
		t.Fatalf("NewRedis() error = %v", err)
	}
	_ = client.Close()

	if _, err := NewRedis(context.Background(), "://bad"); err == nil {
		t.Fatal("expected error for invalid url")
	}
}

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *goredis.Client) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis.Run() error = %v", err)
	}
	t.Cleanup(mr.Close)

	rdb := goredis.NewClient(&goredis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() {
		_ = rdb.Close()
	})

	return mr, rdb
}
