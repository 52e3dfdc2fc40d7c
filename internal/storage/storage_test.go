package storage

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

type testRecord struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Value int    `json:"value"`
}

func TestPutAndGet(t *testing.T) {
	s := New(t.TempDir())
	ctx := context.Background()

	in := testRecord{ID: "01J", Title: "test", Value: 42}
	if err := s.Put(ctx, []string{"todo", "01J"}, in); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(s.BasePath(), "todo", "01J.json")); err != nil {
		t.Fatalf("record file missing: %v", err)
	}

	var out testRecord
	if err := s.Get(ctx, []string{"todo", "01J"}, &out); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if out != in {
		t.Errorf("got %+v, want %+v", out, in)
	}
}

func TestGetNotFound(t *testing.T) {
	s := New(t.TempDir())

	var out testRecord
	err := s.Get(context.Background(), []string{"goal", "missing"}, &out)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestDelete(t *testing.T) {
	s := New(t.TempDir())
	ctx := context.Background()

	if err := s.Put(ctx, []string{"todo", "x"}, testRecord{ID: "x"}); err != nil {
		t.Fatal(err)
	}
	if err := s.Delete(ctx, []string{"todo", "x"}); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if s.Exists(ctx, []string{"todo", "x"}) {
		t.Error("record still exists after delete")
	}

	// Deleting again is not an error.
	if err := s.Delete(ctx, []string{"todo", "x"}); err != nil {
		t.Errorf("second delete failed: %v", err)
	}
}

func TestList(t *testing.T) {
	s := New(t.TempDir())
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		if err := s.Put(ctx, []string{"goal", id}, testRecord{ID: id}); err != nil {
			t.Fatal(err)
		}
	}

	items, err := s.List(ctx, []string{"goal"})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(items) != 3 {
		t.Errorf("got %d items, want 3", len(items))
	}

	empty, err := s.List(ctx, []string{"nothing"})
	if err != nil {
		t.Fatalf("List on missing dir failed: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("got %d items for missing dir, want 0", len(empty))
	}
}

func TestScan(t *testing.T) {
	s := New(t.TempDir())
	ctx := context.Background()

	for i, id := range []string{"a", "b"} {
		if err := s.Put(ctx, []string{"todo", id}, testRecord{ID: id, Value: i}); err != nil {
			t.Fatal(err)
		}
	}

	seen := map[string]int{}
	err := s.Scan(ctx, []string{"todo"}, func(key string, data json.RawMessage) error {
		var rec testRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			return err
		}
		seen[key] = rec.Value
		return nil
	})
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(seen) != 2 || seen["a"] != 0 || seen["b"] != 1 {
		t.Errorf("unexpected scan result: %v", seen)
	}
}

func TestConcurrentPuts(t *testing.T) {
	s := New(t.TempDir())
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_ = s.Put(ctx, []string{"todo", "shared"}, testRecord{ID: "shared", Value: n})
		}(i)
	}
	wg.Wait()

	// The record must be a complete document from one of the writers.
	var out testRecord
	if err := s.Get(ctx, []string{"todo", "shared"}, &out); err != nil {
		t.Fatalf("Get after concurrent puts failed: %v", err)
	}
	if out.ID != "shared" {
		t.Errorf("got corrupt record: %+v", out)
	}
}
