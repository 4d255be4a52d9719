package firestore

import (
	"context"

	"folio/internal/domain/entity"
	"folio/internal/domain/repository"

	cloudfirestore "cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type credentialRepository struct {
	client *Client
}

// NewCredentialRepository creates the Firestore credential repository.
// Credentials live under the private tree, keyed by email.
func NewCredentialRepository(client *Client) repository.CredentialRepository {
	return &credentialRepository{client: client}
}

func (r *credentialRepository) collection() *cloudfirestore.CollectionRef {
	return r.client.privateData().Collection("credentials")
}

// Find returns the credential stored for the given email.
func (r *credentialRepository) Find(ctx context.Context, email string) (*entity.AdminCredential, error) {
	snap, err := r.collection().Doc(email).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, repository.ErrCredentialNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up credential")
	}

	var cred entity.AdminCredential
	if err := snap.DataTo(&cred); err != nil {
		return nil, errors.Wrap(err, "failed to decode credential")
	}

	return &cred, nil
}

// Save persists a credential under its email.
func (r *credentialRepository) Save(ctx context.Context, cred *entity.AdminCredential) error {
	if _, err := r.collection().Doc(cred.Email).Set(ctx, cred); err != nil {
		return errors.Wrap(err, "failed to save credential")
	}

	return nil
}

// Rename moves the record under oldEmail to cred.Email inside one
// transaction, writing cred's contents, so a crash mid-rename cannot leave
// both records, neither, or the new email with the old record.
func (r *credentialRepository) Rename(ctx context.Context, oldEmail string, cred *entity.AdminCredential) error {
	oldRef := r.collection().Doc(oldEmail)
	newRef := r.collection().Doc(cred.Email)

	err := r.client.client.RunTransaction(ctx, func(_ context.Context, tx *cloudfirestore.Transaction) error {
		_, err := tx.Get(oldRef)
		if status.Code(err) == codes.NotFound {
			return repository.ErrCredentialNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to look up credential")
		}

		_, err = tx.Get(newRef)
		if err == nil {
			return repository.ErrCredentialExists
		}
		if status.Code(err) != codes.NotFound {
			return errors.Wrap(err, "failed to check target email")
		}

		if err := tx.Set(newRef, cred); err != nil {
			return errors.Wrap(err, "failed to write renamed credential")
		}

		return errors.Wrap(tx.Delete(oldRef), "failed to remove old credential")
	})

	return err
}
