package database

import (
	"context"
	"fmt"
	"sync"
	"testing"
)

func TestConcurrentSettingUpdates(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	var wg sync.WaitGroup
	errs := make(chan error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if err := db.SetSetting(ctx, "appTitle", fmt.Sprintf("Title %d", i)); err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent update failed: %v", err)
	}
	if _, ok, err := db.GetSetting(ctx, "appTitle"); err != nil || !ok {
		t.Fatalf("expected a title after concurrent writes, ok=%v err=%v", ok, err)
	}
}
