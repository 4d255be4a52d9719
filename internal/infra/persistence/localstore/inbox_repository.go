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

type inboxRepository struct {
	store *Store
}

// NewInboxRepository creates the local contact-request repository, so
// local-backend deployments keep a working inbox.
func NewInboxRepository(store *Store) repository.InboxRepository {
	return &inboxRepository{store: store}
}

func (r *inboxRepository) load(ctx context.Context) ([]*entity.ContactRequest, error) {
	raw, ok, err := r.store.Get(ctx, KeyInbox)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []*entity.ContactRequest{}, nil
	}

	var requests []*entity.ContactRequest
	if err := json.Unmarshal([]byte(raw), &requests); err != nil {
		return []*entity.ContactRequest{}, nil
	}

	return requests, nil
}

func (r *inboxRepository) persist(ctx context.Context, requests []*entity.ContactRequest) error {
	data, err := json.Marshal(requests)
	if err != nil {
		return errors.Wrap(err, "failed to serialize contact requests")
	}

	return r.store.Put(ctx, KeyInbox, string(data))
}

// Add assigns a timestamp-based ID and persists the full list.
func (r *inboxRepository) Add(ctx context.Context, req *entity.ContactRequest) (*entity.ContactRequest, error) {
	requests, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	stored := *req
	if stored.Timestamp.IsZero() {
		stored.Timestamp = time.Now()
	}
	stored.ID = strconv.FormatInt(stored.Timestamp.UnixNano(), 10)
	stored.Read = false

	requests = append(requests, &stored)
	if err := r.persist(ctx, requests); err != nil {
		return nil, err
	}

	return &stored, nil
}

// List returns all contact requests, newest first.
func (r *inboxRepository) List(ctx context.Context) ([]*entity.ContactRequest, error) {
	requests, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(requests, func(i, j int) bool {
		return requests[i].Timestamp.After(requests[j].Timestamp)
	})

	return requests, nil
}

// SetRead sets the read flag on one request.
func (r *inboxRepository) SetRead(ctx context.Context, id string, read bool) error {
	requests, err := r.load(ctx)
	if err != nil {
		return err
	}

	for _, req := range requests {
		if req.ID == id {
			req.Read = read

			return r.persist(ctx, requests)
		}
	}

	return repository.ErrRequestNotFound
}

// Delete removes the request by value filter.
func (r *inboxRepository) Delete(ctx context.Context, id string) error {
	requests, err := r.load(ctx)
	if err != nil {
		return err
	}

	kept := requests[:0]
	found := false
	for _, req := range requests {
		if req.ID == id {
			found = true

			continue
		}
		kept = append(kept, req)
	}
	if !found {
		return repository.ErrRequestNotFound
	}

	return r.persist(ctx, kept)
}
