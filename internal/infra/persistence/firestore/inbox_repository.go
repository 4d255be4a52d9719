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

type inboxRepository struct {
	client *Client
}

// NewInboxRepository creates the Firestore contact-request repository.
func NewInboxRepository(client *Client) repository.InboxRepository {
	return &inboxRepository{client: client}
}

func (r *inboxRepository) collection() *cloudfirestore.CollectionRef {
	return r.client.publicData().Collection("contact_requests")
}

// Add persists a new request under an auto-assigned document ID. New
// submissions always start unread, whatever the payload claims.
func (r *inboxRepository) Add(ctx context.Context, req *entity.ContactRequest) (*entity.ContactRequest, error) {
	stored := *req
	if stored.Timestamp.IsZero() {
		stored.Timestamp = time.Now()
	}
	stored.Read = false

	docRef, _, err := r.collection().Add(ctx, &stored)
	if err != nil {
		return nil, errors.Wrap(err, "failed to add contact request")
	}
	stored.ID = docRef.ID

	return &stored, nil
}

// List returns all contact requests, newest first.
func (r *inboxRepository) List(ctx context.Context) ([]*entity.ContactRequest, error) {
	iter := r.collection().OrderBy("timestamp", cloudfirestore.Desc).Documents(ctx)
	defer iter.Stop()

	requests := []*entity.ContactRequest{}
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to list contact requests")
		}

		var req entity.ContactRequest
		if err := snap.DataTo(&req); err != nil {
			return nil, errors.Wrap(err, "failed to decode contact request")
		}
		req.ID = snap.Ref.ID
		requests = append(requests, &req)
	}

	return requests, nil
}

// SetRead sets the read flag on one request.
func (r *inboxRepository) SetRead(ctx context.Context, id string, read bool) error {
	_, err := r.collection().Doc(id).Update(ctx, []cloudfirestore.Update{
		{Path: "read", Value: read},
	})
	if status.Code(err) == codes.NotFound {
		return repository.ErrRequestNotFound
	}

	return errors.Wrap(err, "failed to update contact request")
}

// Delete removes one request.
func (r *inboxRepository) Delete(ctx context.Context, id string) error {
	docRef := r.collection().Doc(id)

	snap, err := docRef.Get(ctx)
	if status.Code(err) == codes.NotFound {
		return repository.ErrRequestNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to look up contact request")
	}
	if !snap.Exists() {
		return repository.ErrRequestNotFound
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return errors.Wrap(err, "failed to delete contact request")
	}

	return nil
}
