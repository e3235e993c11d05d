package catalog

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/barohub/barohub/internal/storage"
)

func yes(string) bool { return true }
func no(string) bool  { return false }

func adminStore(t *testing.T) (*Store, *storage.Memory) {
	t.Helper()
	kv := storage.NewMemory()
	s := Open(kv, nil)
	if err := s.SetAdmin(true); err != nil {
		t.Fatalf("SetAdmin: %v", err)
	}
	return s, kv
}

func TestOpen_EmptyStorageUsesSeeds(t *testing.T) {
	s := Open(storage.NewMemory(), nil)

	if s.IsAdmin() {
		t.Fatal("admin should default to false")
	}
	courses := s.List()
	if len(courses) != 3 || courses[0].ID != "c1" {
		t.Fatalf("List = %d courses starting %q, want 3 starting c1", len(courses), courses[0].ID)
	}
}

func TestOpen_ReadsPersistedState(t *testing.T) {
	kv := storage.NewMemory()
	if err := kv.Set("barohub_admin_mode", "true"); err != nil {
		t.Fatal(err)
	}
	saved, _ := json.Marshal([]Course{{ID: "x1", Title: "Saved"}})
	if err := kv.Set("barohub_courses_data", string(saved)); err != nil {
		t.Fatal(err)
	}

	s := Open(kv, nil)
	if !s.IsAdmin() {
		t.Fatal("admin flag should load from storage")
	}
	courses := s.List()
	if len(courses) != 1 || courses[0].ID != "x1" {
		t.Fatalf("List = %#v, want the saved catalog", courses)
	}
}

func TestOpen_MalformedCatalogFallsBackToSeeds(t *testing.T) {
	kv := storage.NewMemory()
	if err := kv.Set("barohub_courses_data", "{not json"); err != nil {
		t.Fatal(err)
	}

	s := Open(kv, nil)
	if len(s.List()) != 3 {
		t.Fatalf("malformed catalog should fall back to the seed set")
	}
}

func TestCreate_RequiresAdmin(t *testing.T) {
	s := Open(storage.NewMemory(), nil)

	_, err := s.Create(Draft{Title: "X", Price: "5"})
	if !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("Create = %v, want ErrPermissionDenied", err)
	}
	if len(s.List()) != 3 {
		t.Fatal("catalog must be unchanged after denied create")
	}
}

func TestCreate_PrependsWithDefaults(t *testing.T) {
	s, kv := adminStore(t)

	created, err := s.Create(Draft{Title: "New", Price: "49", CategoryID: "cat_code", Image: "img"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if created.Category != "CODE-KA" {
		t.Fatalf("Category = %q, want display name of cat_code", created.Category)
	}
	if created.Price != 49 || created.Rating != 5.0 || created.Duration != "12h 00m" {
		t.Fatalf("defaults wrong: %#v", created)
	}
	if len(created.Topics) != 3 {
		t.Fatalf("Topics = %d, want 3 placeholders", len(created.Topics))
	}

	courses := s.List()
	if courses[0].ID != created.ID {
		t.Fatal("new course must be first")
	}
	if len(courses) != 4 {
		t.Fatalf("List = %d courses, want 4", len(courses))
	}

	// Every mutation re-serializes the full catalog.
	raw, ok, _ := kv.Get("barohub_courses_data")
	if !ok {
		t.Fatal("catalog was not persisted")
	}
	var persisted []Course
	if err := json.Unmarshal([]byte(raw), &persisted); err != nil {
		t.Fatalf("persisted catalog not decodable: %v", err)
	}
	if len(persisted) != 4 || persisted[0].ID != created.ID {
		t.Fatalf("persisted catalog = %d courses starting %q", len(persisted), persisted[0].ID)
	}
}

func TestCreate_UnknownCategoryGetsFallbackLabel(t *testing.T) {
	s, _ := adminStore(t)

	created, err := s.Create(Draft{Title: "Orphan", Price: "1", CategoryID: "cat_gone"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Category != "GENERAL" {
		t.Fatalf("Category = %q, want GENERAL", created.Category)
	}
	if created.CategoryID != "cat_gone" {
		t.Fatalf("CategoryID = %q, the reference itself is kept", created.CategoryID)
	}
}

func TestCreate_IDsUniqueWithinSameMillisecond(t *testing.T) {
	s, _ := adminStore(t)
	frozen := time.UnixMilli(1700000000000)
	s.now = func() time.Time { return frozen }

	a, err := s.Create(Draft{Title: "A", Price: "1"})
	if err != nil {
		t.Fatal(err)
	}
	b, err := s.Create(Draft{Title: "B", Price: "1"})
	if err != nil {
		t.Fatal(err)
	}
	if a.ID == b.ID {
		t.Fatalf("ids collided: %s", a.ID)
	}
	if a.ID != "c1700000000000" {
		t.Fatalf("id = %q, want timestamp-derived", a.ID)
	}
}

func TestCreate_ValidationLeavesCatalogUnchanged(t *testing.T) {
	s, _ := adminStore(t)

	_, err := s.Create(Draft{Title: "", Price: "5"})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Create = %v, want ValidationError", err)
	}
	if len(s.List()) != 3 {
		t.Fatal("catalog must be unchanged after failed validation")
	}
}

func TestUpdate_PreservesCarriedFields(t *testing.T) {
	s, _ := adminStore(t)
	before, _ := s.Get("c1")

	updated, err := s.Update("c1", Draft{Title: "Renamed", Price: "10", CategoryID: "cat_design", Image: "new-img"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if updated.Title != "Renamed" || updated.Price != 10 || updated.CategoryID != "cat_design" || updated.Image != "new-img" {
		t.Fatalf("editable fields not applied: %#v", updated)
	}
	if updated.Category != "NAQSHADAYNTA" {
		t.Fatalf("Category = %q, want re-derived display name", updated.Category)
	}
	if updated.ID != before.ID || updated.Rating != before.Rating || updated.Duration != before.Duration {
		t.Fatalf("carried fields changed: %#v", updated)
	}
	if len(updated.Topics) != len(before.Topics) {
		t.Fatalf("Topics = %d, want %d carried over", len(updated.Topics), len(before.Topics))
	}

	// Position in the catalog is unchanged.
	if s.List()[0].ID != "c1" {
		t.Fatal("update must not reorder the catalog")
	}
}

func TestUpdate_UnknownID(t *testing.T) {
	s, _ := adminStore(t)
	if _, err := s.Update("nope", Draft{Title: "X", Price: "1"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Update = %v, want ErrNotFound", err)
	}
}

func TestUpdate_RequiresAdmin(t *testing.T) {
	s := Open(storage.NewMemory(), nil)
	if _, err := s.Update("c1", Draft{Title: "X", Price: "1"}); !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("Update = %v, want ErrPermissionDenied", err)
	}
}

func TestDelete_ContractSurface(t *testing.T) {
	t.Run("requires admin", func(t *testing.T) {
		s := Open(storage.NewMemory(), nil)
		if err := s.Delete("c1", yes); !errors.Is(err, ErrPermissionDenied) {
			t.Fatalf("Delete = %v, want ErrPermissionDenied", err)
		}
		if len(s.List()) != 3 {
			t.Fatal("catalog must be unchanged")
		}
	})

	t.Run("declined confirmation is a no-op", func(t *testing.T) {
		s, _ := adminStore(t)
		if err := s.Delete("c1", no); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if len(s.List()) != 3 {
			t.Fatal("declined delete must not remove anything")
		}
	})

	t.Run("confirmed removes exactly the target", func(t *testing.T) {
		s, _ := adminStore(t)
		if err := s.Delete("c2", yes); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		courses := s.List()
		if len(courses) != 2 {
			t.Fatalf("List = %d courses, want 2", len(courses))
		}
		for _, c := range courses {
			if c.ID == "c2" {
				t.Fatal("c2 should be gone")
			}
		}
	})

	t.Run("absent id is silent", func(t *testing.T) {
		s, _ := adminStore(t)
		if err := s.Delete("nope", yes); err != nil {
			t.Fatalf("Delete = %v, want nil", err)
		}
		if len(s.List()) != 3 {
			t.Fatal("catalog must be unchanged")
		}
	})
}

func TestRoundTrip_SimulatedRestart(t *testing.T) {
	kv := storage.NewMemory()
	s := Open(kv, nil)
	if err := s.SetAdmin(true); err != nil {
		t.Fatal(err)
	}
	created, err := s.Create(Draft{Title: "Persisted", Price: "7", CategoryID: "cat_lang"})
	if err != nil {
		t.Fatal(err)
	}
	want := s.List()

	reloaded := Open(kv, nil)
	if !reloaded.IsAdmin() {
		t.Fatal("admin flag must survive restart")
	}
	got := reloaded.List()
	if len(got) != len(want) {
		t.Fatalf("reloaded %d courses, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].ID != want[i].ID || got[i].Title != want[i].Title || got[i].Price != want[i].Price {
			t.Fatalf("course %d differs after restart: got %#v want %#v", i, got[i], want[i])
		}
	}
	if got[0].ID != created.ID {
		t.Fatal("insertion order must survive restart")
	}
}

func TestMutations_SurfaceWriteFailures(t *testing.T) {
	s, kv := adminStore(t)
	kv.SetErr = errors.New("quota exceeded")

	created, err := s.Create(Draft{Title: "X", Price: "1"})
	var werr *WriteError
	if !errors.As(err, &werr) {
		t.Fatalf("Create = %v, want WriteError", err)
	}
	// The in-memory mutation still applies; views may diverge until the
	// next successful write.
	if _, ok := s.Get(created.ID); !ok {
		t.Fatal("in-memory catalog should keep the new course")
	}
}

func TestList_ReturnsDefensiveCopies(t *testing.T) {
	s := Open(storage.NewMemory(), nil)

	courses := s.List()
	courses[0].Title = "mutated"
	courses[0].Topics[0].Title = "mutated topic"

	fresh := s.List()
	if fresh[0].Title == "mutated" || fresh[0].Topics[0].Title == "mutated topic" {
		t.Fatal("List must return copies, not shared slices")
	}
}
