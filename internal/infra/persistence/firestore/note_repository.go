package firestore

import (
	"context"
	"time"

	"folio/internal/domain/entity"
	"folio/internal/domain/repository"

	cloudfirestore "cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type noteRepository struct {
	client *Client
}

// NewNoteRepository creates the Firestore note repository.
func NewNoteRepository(client *Client) repository.NoteRepository {
	return &noteRepository{client: client}
}

func (r *noteRepository) collection() *cloudfirestore.CollectionRef {
	return r.client.publicData().Collection("notes")
}

// Add persists a new note under an auto-assigned document ID.
func (r *noteRepository) Add(ctx context.Context, note *entity.Note) (*entity.Note, error) {
	stored := *note
	if stored.Timestamp.IsZero() {
		stored.Timestamp = time.Now()
	}

	docRef, _, err := r.collection().Add(ctx, &stored)
	if err != nil {
		return nil, errors.Wrap(err, "failed to add note")
	}
	stored.ID = docRef.ID

	return &stored, nil
}

// List returns all notes, newest first.
func (r *noteRepository) List(ctx context.Context) ([]*entity.Note, error) {
	iter := r.collection().OrderBy("timestamp", cloudfirestore.Desc).Documents(ctx)
	defer iter.Stop()

	notes := []*entity.Note{}
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to list notes")
		}

		var note entity.Note
		if err := snap.DataTo(&note); err != nil {
			return nil, errors.Wrap(err, "failed to decode note")
		}
		note.ID = snap.Ref.ID
		notes = append(notes, &note)
	}

	return notes, nil
}

// Delete removes one note.
func (r *noteRepository) Delete(ctx context.Context, id string) error {
	docRef := r.collection().Doc(id)

	snap, err := docRef.Get(ctx)
	if status.Code(err) == codes.NotFound {
		return repository.ErrNoteNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to look up note")
	}
	if !snap.Exists() {
		return repository.ErrNoteNotFound
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return errors.Wrap(err, "failed to delete note")
	}

	return nil
}
