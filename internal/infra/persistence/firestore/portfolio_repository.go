package firestore

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"folio/config"
	"folio/internal/domain/entity"
	"folio/internal/domain/repository"

	cloudfirestore "cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// portfolioDocID is the single content document under the portfolio
// collection. Exactly one exists per namespace.
const portfolioDocID = "content"

type portfolioRepository struct {
	client           *Client
	placeholderImage string
	logger           *slog.Logger
}

// NewPortfolioRepository creates the Firestore portfolio repository.
func NewPortfolioRepository(client *Client, cfg *config.Config, logger *slog.Logger) repository.PortfolioRepository {
	return &portfolioRepository{
		client:           client,
		placeholderImage: cfg.Site.PlaceholderImage,
		logger:           logger,
	}
}

func (r *portfolioRepository) docRef() *cloudfirestore.DocumentRef {
	return r.client.publicData().Collection("portfolio").Doc(portfolioDocID)
}

// decodeDocument converts raw Firestore data into the document through its
// JSON form, so the legacy skill-string migration applies on this backend
// the same way it does on the local one.
func decodeDocument(data map[string]any, placeholderImage string) (*entity.PortfolioDocument, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to re-encode portfolio data")
	}

	var doc entity.PortfolioDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode portfolio document")
	}
	doc.Normalize(placeholderImage)

	return &doc, nil
}

// encodeDocument converts the document to the map form written to Firestore,
// keyed by the wire field names.
func encodeDocument(doc *entity.PortfolioDocument) (map[string]any, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(err, "failed to serialize portfolio document")
	}

	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, errors.Wrap(err, "failed to re-decode portfolio document")
	}

	return data, nil
}

// Load returns the stored document, seeding and persisting the default
// document when none exists or the stored one does not decode.
func (r *portfolioRepository) Load(ctx context.Context) (*entity.PortfolioDocument, error) {
	snap, err := r.docRef().Get(ctx)
	if err != nil && status.Code(err) != codes.NotFound {
		return nil, errors.Wrap(err, "failed to load portfolio document")
	}

	if err == nil && snap.Exists() {
		doc, decodeErr := decodeDocument(snap.Data(), r.placeholderImage)
		if decodeErr == nil {
			return doc, nil
		}
		r.logger.Warn("Stored portfolio document is undecodable, reseeding defaults", slog.Any("error", decodeErr))
	}

	doc := entity.DefaultDocument(r.placeholderImage)
	if err := r.Save(ctx, doc); err != nil {
		return nil, err
	}

	return doc, nil
}

// Save merge-writes the document: fields absent from doc's wire form are
// left untouched on the server.
func (r *portfolioRepository) Save(ctx context.Context, doc *entity.PortfolioDocument) error {
	data, err := encodeDocument(doc)
	if err != nil {
		return err
	}

	// Merge on the named top-level paths, not MergeAll: MergeAll recurses
	// into nested maps and would merge skills per category instead of
	// replacing the field.
	paths := make([]cloudfirestore.FieldPath, 0, len(data))
	for key := range data {
		paths = append(paths, cloudfirestore.FieldPath{key})
	}
	if _, err := r.docRef().Set(ctx, data, cloudfirestore.Merge(paths...)); err != nil {
		return errors.Wrap(err, "failed to save portfolio document")
	}

	return nil
}

// PatchField replaces a single top-level field without re-sending the rest
// of the document. Creates the document when it does not exist yet.
func (r *portfolioRepository) PatchField(ctx context.Context, field string, value any) error {
	merge := cloudfirestore.Merge(cloudfirestore.FieldPath{field})
	if _, err := r.docRef().Set(ctx, map[string]any{field: value}, merge); err != nil {
		return errors.Wrapf(err, "failed to patch field %s", field)
	}

	return nil
}

// Subscribe streams document snapshots to onChange. The Firestore watch
// delivers the current state as its first snapshot, so the callback fires
// once immediately and then on every subsequent change. A snapshot for a
// missing or undecodable document is delivered as the default document.
func (r *portfolioRepository) Subscribe(ctx context.Context, onChange func(*entity.PortfolioDocument)) (repository.Unsubscribe, error) {
	watchCtx, cancel := context.WithCancel(ctx)
	iter := r.docRef().Snapshots(watchCtx)

	go func() {
		for {
			snap, err := iter.Next()
			if err != nil {
				if status.Code(err) != codes.Canceled {
					r.logger.Error("Portfolio watch terminated", slog.Any("error", err))
				}

				return
			}

			if !snap.Exists() {
				onChange(entity.DefaultDocument(r.placeholderImage))

				continue
			}

			doc, decodeErr := decodeDocument(snap.Data(), r.placeholderImage)
			if decodeErr != nil {
				r.logger.Warn("Skipping undecodable portfolio snapshot", slog.Any("error", decodeErr))
				onChange(entity.DefaultDocument(r.placeholderImage))

				continue
			}
			onChange(doc)
		}
	}()

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			cancel()
			iter.Stop()
		})
	}

	return unsubscribe, nil
}
