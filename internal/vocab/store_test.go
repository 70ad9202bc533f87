package vocab

import (
	"database/sql"
	"errors"
	"path/filepath"
	"reflect"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "vocab.db"))
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStorePutGet(t *testing.T) {
	store := openTestStore(t)

	entry := &Entry{
		Word:         "飲む",
		Translations: []string{"to drink"},
		Sentences:    []Sentence{{JP: "水を飲む", Translation: "I drink water"}},
	}
	if err := store.Put(entry); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if entry.ID == 0 {
		t.Fatal("insert did not assign an id")
	}

	got, err := store.Get(entry.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !reflect.DeepEqual(got, entry) {
		t.Errorf("Get = %+v, want %+v", got, entry)
	}
}

func TestStoreUpdate(t *testing.T) {
	store := openTestStore(t)

	entry := &Entry{Word: "飲む", Translations: []string{"to drink"}}
	if err := store.Put(entry); err != nil {
		t.Fatalf("insert: %v", err)
	}

	entry.Translations = []string{"to drink", "to swallow"}
	if err := store.Put(entry); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := store.Get(entry.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !reflect.DeepEqual(got.Translations, entry.Translations) {
		t.Errorf("translations after update = %v", got.Translations)
	}
}

func TestStoreAllNewestFirst(t *testing.T) {
	store := openTestStore(t)

	for _, word := range []string{"一", "二", "三"} {
		if err := store.Put(&Entry{Word: word, Translations: []string{"n"}}); err != nil {
			t.Fatalf("insert %s: %v", word, err)
		}
	}

	entries, err := store.All()
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
	if entries[0].Word != "三" || entries[2].Word != "一" {
		t.Errorf("entries not newest first: %s, %s, %s",
			entries[0].Word, entries[1].Word, entries[2].Word)
	}
}

func TestStoreDelete(t *testing.T) {
	store := openTestStore(t)

	entry := &Entry{Word: "飲む", Translations: []string{"to drink"}}
	if err := store.Put(entry); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := store.Delete(entry.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := store.Get(entry.ID); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("get after delete err = %v, want sql.ErrNoRows", err)
	}

	// Deleting an unknown id is not an error.
	if err := store.Delete(999); err != nil {
		t.Errorf("delete unknown id: %v", err)
	}
}
