package localstore

import (
	"context"
	"encoding/json"
	"sort"
	"strconv"
	"time"

	"folio/internal/domain/entity"
	"folio/internal/domain/repository"

	"github.com/pkg/errors"
)

type noteRepository struct {
	store *Store
}

// NewNoteRepository creates the local note repository. IDs are
// timestamp-based and never reused after deletion.
func NewNoteRepository(store *Store) repository.NoteRepository {
	return &noteRepository{store: store}
}

func (r *noteRepository) load(ctx context.Context) ([]*entity.Note, error) {
	raw, ok, err := r.store.Get(ctx, KeyNotes)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []*entity.Note{}, nil
	}

	var notes []*entity.Note
	if err := json.Unmarshal([]byte(raw), &notes); err != nil {
		// Malformed stored JSON is treated as an empty list.
		return []*entity.Note{}, nil
	}

	return notes, nil
}

func (r *noteRepository) persist(ctx context.Context, notes []*entity.Note) error {
	data, err := json.Marshal(notes)
	if err != nil {
		return errors.Wrap(err, "failed to serialize notes")
	}

	return r.store.Put(ctx, KeyNotes, string(data))
}

// nextNoteID derives a nanosecond timestamp ID, bumped past any ID already
// in use so notes created at the same instant never share one.
func nextNoteID(notes []*entity.Note, timestamp time.Time) string {
	taken := make(map[string]struct{}, len(notes))
	for _, note := range notes {
		taken[note.ID] = struct{}{}
	}

	id := timestamp.UnixNano()
	for {
		candidate := strconv.FormatInt(id, 10)
		if _, exists := taken[candidate]; !exists {
			return candidate
		}
		id++
	}
}

// Add assigns a timestamp-based ID and persists the full list.
func (r *noteRepository) Add(ctx context.Context, note *entity.Note) (*entity.Note, error) {
	notes, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	stored := *note
	if stored.Timestamp.IsZero() {
		stored.Timestamp = time.Now()
	}
	stored.ID = nextNoteID(notes, stored.Timestamp)

	notes = append(notes, &stored)
	if err := r.persist(ctx, notes); err != nil {
		return nil, err
	}

	return &stored, nil
}

// List returns all notes, newest first.
func (r *noteRepository) List(ctx context.Context) ([]*entity.Note, error) {
	notes, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].Timestamp.After(notes[j].Timestamp)
	})

	return notes, nil
}

// Delete removes the note by value filter, preserving the relative order
// (and the IDs) of every surviving note.
func (r *noteRepository) Delete(ctx context.Context, id string) error {
	notes, err := r.load(ctx)
	if err != nil {
		return err
	}

	kept := notes[:0]
	found := false
	for _, n := range notes {
		if n.ID == id {
			found = true

			continue
		}
		kept = append(kept, n)
	}
	if !found {
		return repository.ErrNoteNotFound
	}

	return r.persist(ctx, kept)
}
