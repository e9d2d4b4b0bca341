package utils

import (
	"context"
	"testing"
	"time"
)

// A nil Redis client means caching is disabled; every helper must degrade
// to a no-op instead of panicking.
func TestNilClient(t *testing.T) {
	ctx := context.Background()

	t.Run("GetIsMiss", func(t *testing.T) {
		var dest []string
		found, err := GetCache(ctx, nil, "k", &dest)
		if err != nil || found {
			t.Errorf("GetCache(nil) = %v,%v, want miss with no error", found, err)
		}
	})

	t.Run("SetIsNoop", func(t *testing.T) {
		if err := SetCache(ctx, nil, "k", []string{"v"}, time.Minute); err != nil {
			t.Errorf("SetCache(nil) = %v, want nil", err)
		}
	})

	t.Run("DeleteIsNoop", func(t *testing.T) {
		if err := DeleteCache(ctx, nil, "k"); err != nil {
			t.Errorf("DeleteCache(nil) = %v, want nil", err)
		}
	})

	t.Run("DeleteByPrefixIsNoop", func(t *testing.T) {
		if err := DeleteCacheByPrefix(ctx, nil, "bookings:phone:"); err != nil {
			t.Errorf("DeleteCacheByPrefix(nil) = %v, want nil", err)
		}
	})
}
