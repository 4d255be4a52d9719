package localstore

import (
	"context"
	"encoding/json"

	"folio/internal/domain/entity"
	"folio/internal/domain/repository"

	"github.com/pkg/errors"
)

type credentialRepository struct {
	store *Store
}

// NewCredentialRepository creates the local credential repository.
func NewCredentialRepository(store *Store) repository.CredentialRepository {
	return &credentialRepository{store: store}
}

func (r *credentialRepository) load(ctx context.Context) (map[string]*entity.AdminCredential, error) {
	raw, ok, err := r.store.Get(ctx, KeyCredentials)
	if err != nil {
		return nil, err
	}
	if !ok {
		return map[string]*entity.AdminCredential{}, nil
	}

	creds := map[string]*entity.AdminCredential{}
	if err := json.Unmarshal([]byte(raw), &creds); err != nil {
		return map[string]*entity.AdminCredential{}, nil
	}

	return creds, nil
}

func (r *credentialRepository) persist(ctx context.Context, creds map[string]*entity.AdminCredential) error {
	data, err := json.Marshal(creds)
	if err != nil {
		return errors.Wrap(err, "failed to serialize credentials")
	}

	return r.store.Put(ctx, KeyCredentials, string(data))
}

// Find returns the credential stored for the given email.
func (r *credentialRepository) Find(ctx context.Context, email string) (*entity.AdminCredential, error) {
	creds, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	cred, ok := creds[email]
	if !ok {
		return nil, repository.ErrCredentialNotFound
	}

	return cred, nil
}

// Save persists a credential under its email.
func (r *credentialRepository) Save(ctx context.Context, cred *entity.AdminCredential) error {
	creds, err := r.load(ctx)
	if err != nil {
		return err
	}

	creds[cred.Email] = cred

	return r.persist(ctx, creds)
}

// Rename moves the record under oldEmail to cred.Email, writing cred's
// contents in the same write.
func (r *credentialRepository) Rename(ctx context.Context, oldEmail string, cred *entity.AdminCredential) error {
	creds, err := r.load(ctx)
	if err != nil {
		return err
	}

	if _, ok := creds[oldEmail]; !ok {
		return repository.ErrCredentialNotFound
	}
	if _, taken := creds[cred.Email]; taken {
		return repository.ErrCredentialExists
	}

	delete(creds, oldEmail)
	creds[cred.Email] = cred

	return r.persist(ctx, creds)
}
