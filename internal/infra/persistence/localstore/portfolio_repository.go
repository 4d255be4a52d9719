package localstore

import (
	"context"
	"encoding/json"
	"log/slog"

	"folio/config"
	"folio/internal/domain/entity"
	"folio/internal/domain/repository"

	"github.com/pkg/errors"
)

type portfolioRepository struct {
	store            *Store
	placeholderImage string
	logger           *slog.Logger
}

// NewPortfolioRepository creates the local portfolio repository.
func NewPortfolioRepository(store *Store, cfg *config.Config, logger *slog.Logger) repository.PortfolioRepository {
	return &portfolioRepository{
		store:            store,
		placeholderImage: cfg.Site.PlaceholderImage,
		logger:           logger,
	}
}

// Load returns the stored document. An absent or undecodable value is
// replaced by the default document, which is persisted immediately so the
// next load sees it.
func (r *portfolioRepository) Load(ctx context.Context) (*entity.PortfolioDocument, error) {
	raw, ok, err := r.store.Get(ctx, KeyPortfolio)
	if err != nil {
		return nil, err
	}

	if ok {
		var doc entity.PortfolioDocument
		if err := json.Unmarshal([]byte(raw), &doc); err == nil {
			doc.Normalize(r.placeholderImage)

			return &doc, nil
		}
		// Malformed stored JSON is treated as "none exists".
		r.logger.Warn("Stored portfolio document is undecodable, reseeding defaults")
	}

	doc := entity.DefaultDocument(r.placeholderImage)
	if err := r.Save(ctx, doc); err != nil {
		return nil, err
	}

	return doc, nil
}

// Save overwrites the whole document. The local backend has no merge
// semantics: the entire structure is re-serialized on every write.
func (r *portfolioRepository) Save(ctx context.Context, doc *entity.PortfolioDocument) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, "failed to serialize portfolio document")
	}

	return r.store.Put(ctx, KeyPortfolio, string(data))
}

// PatchField falls back to read-modify-write of the whole document.
func (r *portfolioRepository) PatchField(ctx context.Context, field string, value any) error {
	doc, err := r.Load(ctx)
	if err != nil {
		return err
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, "failed to serialize portfolio document")
	}

	var asMap map[string]any
	if err := json.Unmarshal(data, &asMap); err != nil {
		return errors.Wrap(err, "failed to decode portfolio document")
	}
	asMap[field] = value

	patched, err := json.Marshal(asMap)
	if err != nil {
		return errors.Wrap(err, "failed to serialize patched document")
	}

	return r.store.Put(ctx, KeyPortfolio, string(patched))
}

// Subscribe is unsupported: the local backend has no push updates and
// callers must re-Load after each mutation instead.
func (r *portfolioRepository) Subscribe(ctx context.Context, onChange func(*entity.PortfolioDocument)) (repository.Unsubscribe, error) {
	return nil, repository.ErrWatchUnsupported
}
