package catalog

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/barohub/barohub/internal/storage"
)

// Persisted state lives under exactly two independent keys.
const (
	adminKey   = "barohub_admin_mode"
	catalogKey = "barohub_courses_data"
)

const (
	fallbackCategory = "GENERAL"
	defaultRating    = 5.0
	defaultDuration  = "12h 00m"
)

// confirmDeleteMessage is the prompt shown before a course is removed.
const confirmDeleteMessage = "Ma hubtaa inaad tirtirto koorsadan?"

// ConfirmFunc answers a yes/no confirmation prompt. Delete refuses to act
// without an affirmative answer.
type ConfirmFunc func(message string) bool

// WriteError wraps a persistence failure. The in-memory mutation it
// accompanies has already been applied; the stored and in-memory views
// diverge until the next successful write.
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string { return fmt.Sprintf("persist: %v", e.Err) }
func (e *WriteError) Unwrap() error { return e.Err }

// Store owns the mutable catalog and the admin flag, mirroring both to the
// injected KV on every change. All methods are safe for concurrent use,
// though the app drives it from a single event loop.
type Store struct {
	mu      sync.RWMutex
	kv      storage.KV
	logger  *slog.Logger
	courses []Course
	admin   bool
	now     func() time.Time
}

// Open builds a store from whatever the KV holds: a missing or undecodable
// catalog falls back to the seed set, a missing admin flag to false.
func Open(kv storage.KV, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Store{kv: kv, logger: logger, now: time.Now}

	if v, ok, err := kv.Get(adminKey); err != nil {
		logger.Warn("read admin flag", "error", err)
	} else if ok {
		s.admin = v == "true"
	}

	raw, ok, err := kv.Get(catalogKey)
	if err != nil {
		logger.Warn("read catalog", "error", err)
	}
	if ok && err == nil {
		var courses []Course
		if uerr := json.Unmarshal([]byte(raw), &courses); uerr != nil {
			logger.Warn("catalog value is not valid JSON, using seed data", "error", uerr)
		} else {
			s.courses = courses
			return s
		}
	}
	s.courses = seedCourses()
	return s
}

// List returns the current catalog in order, newest creations first.
func (s *Store) List() []Course {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneCourses(s.courses)
}

// Get returns the course with the given id, if present.
func (s *Store) Get(id string) (Course, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.courses {
		if c.ID == id {
			return c, true
		}
	}
	return Course{}, false
}

// IsAdmin reports whether admin mode is on.
func (s *Store) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.admin
}

// SetAdmin flips admin mode and persists the flag.
func (s *Store) SetAdmin(on bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.admin = on
	value := "false"
	if on {
		value = "true"
	}
	if err := s.kv.Set(adminKey, value); err != nil {
		s.logger.Warn("persist admin flag", "error", err)
		return &WriteError{Err: err}
	}
	s.logger.Info("admin mode changed", "enabled", on)
	return nil
}

// Create validates the draft and prepends a new course to the catalog.
func (s *Store) Create(d Draft) (Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.admin {
		return Course{}, ErrPermissionDenied
	}
	title, price, err := d.parse()
	if err != nil {
		return Course{}, err
	}

	course := Course{
		ID:         s.nextIDLocked(),
		Title:      title,
		Category:   displayCategory(d.CategoryID),
		CategoryID: d.CategoryID,
		Price:      price,
		Rating:     defaultRating,
		Duration:   defaultDuration,
		Image:      d.Image,
		Topics:     placeholderTopics(),
	}

	s.courses = append([]Course{course}, s.courses...)
	s.logger.Info("course created", "id", course.ID, "title", course.Title)
	return course, s.persistLocked()
}

// Update replaces the editable fields of an existing course. Rating,
// duration and topics carry over from the prior record, as does its
// position in the catalog.
func (s *Store) Update(id string, d Draft) (Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.admin {
		return Course{}, ErrPermissionDenied
	}
	title, price, err := d.parse()
	if err != nil {
		return Course{}, err
	}

	for i := range s.courses {
		if s.courses[i].ID != id {
			continue
		}
		s.courses[i].Title = title
		s.courses[i].Price = price
		s.courses[i].CategoryID = d.CategoryID
		s.courses[i].Category = displayCategory(d.CategoryID)
		s.courses[i].Image = d.Image
		s.logger.Info("course updated", "id", id)
		return s.courses[i], s.persistLocked()
	}
	return Course{}, ErrNotFound
}

// Delete removes the course with the given id after the confirm primitive
// answers yes. A declined prompt or an absent id is a no-op.
func (s *Store) Delete(id string, confirm ConfirmFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.admin {
		return ErrPermissionDenied
	}
	if confirm == nil || !confirm(confirmDeleteMessage) {
		return nil
	}

	for i := range s.courses {
		if s.courses[i].ID != id {
			continue
		}
		s.courses = append(s.courses[:i], s.courses[i+1:]...)
		s.logger.Info("course deleted", "id", id)
		return s.persistLocked()
	}
	return nil
}

// persistLocked serializes the full catalog to the KV. Callers hold the
// write lock. A failure leaves the in-memory state in place; there is no
// rollback.
func (s *Store) persistLocked() error {
	data, err := json.Marshal(s.courses)
	if err != nil {
		s.logger.Error("encode catalog", "error", err)
		return &WriteError{Err: err}
	}
	if err := s.kv.Set(catalogKey, string(data)); err != nil {
		s.logger.Warn("persist catalog", "error", err)
		return &WriteError{Err: err}
	}
	return nil
}

// nextIDLocked derives a fresh course id from the clock, bumping past any
// collision so ids stay unique for the store's lifetime.
func (s *Store) nextIDLocked() string {
	base := s.now().UnixMilli()
	for {
		id := fmt.Sprintf("c%d", base)
		if !s.hasIDLocked(id) {
			return id
		}
		base++
	}
}

func (s *Store) hasIDLocked(id string) bool {
	for _, c := range s.courses {
		if c.ID == id {
			return true
		}
	}
	return false
}

func displayCategory(categoryID string) string {
	if cat, ok := CategoryByID(categoryID); ok {
		return strings.ToUpper(cat.Name)
	}
	return fallbackCategory
}

func placeholderTopics() []Topic {
	return []Topic{
		{ID: "t1", Title: "Hordhaca Koorsada"},
		{ID: "t2", Title: "Qaybta 1aad ee Casharka"},
		{ID: "t3", Title: "Qaybta 2aad ee Casharka"},
	}
}
