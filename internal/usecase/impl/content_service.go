// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	deliverycontext "folio/internal/delivery/context"
	"folio/internal/domain/entity"
	domainerrors "folio/internal/domain/errors"
	"folio/internal/domain/repository"
	"folio/internal/domain/service"
	"folio/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// contentService implements the ContentUsecase interface.
type contentService struct {
	repo      repository.PortfolioRepository
	publisher service.EventPublisher
	logger    *slog.Logger
}

// NewContentService is the constructor for contentService.
func NewContentService(
	repo repository.PortfolioRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.ContentUsecase {
	return &contentService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *contentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// publish emits a content event after a committed mutation. Publish failures
// are logged and never fail the mutation that already committed.
func (srv *contentService) publish(ctx context.Context, kind, field string) {
	event := &service.ContentEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Kind:      kind,
		Field:     field,
	}
	if err := srv.publisher.PublishContentEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish content event", slog.Any("error", err), slog.String("kind", kind))
	}
}

// load fetches the current document, mapping backend failures to the
// storage-unavailable error the delivery layer knows how to render.
func (srv *contentService) load(ctx context.Context) (*entity.PortfolioDocument, error) {
	doc, err := srv.repo.Load(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to load portfolio document", slog.Any("error", err))

		return nil, domainerrors.ErrStorageUnavailable.WithDetails(err.Error())
	}

	return doc, nil
}

// patch writes one field, mapping backend failures the same way as load.
func (srv *contentService) patch(ctx context.Context, field string, value any) error {
	if err := srv.repo.PatchField(ctx, field, value); err != nil {
		srv.log(ctx).Error("Failed to patch portfolio field", slog.Any("error", err), slog.String("field", field))

		return domainerrors.ErrStorageUnavailable.WithDetails(err.Error())
	}

	return nil
}

// Get returns the current document.
func (srv *contentService) Get(ctx context.Context) (*entity.PortfolioDocument, error) {
	return srv.load(ctx)
}

// Projects returns the projects matching the given category label.
func (srv *contentService) Projects(ctx context.Context, category string) ([]entity.Project, error) {
	doc, err := srv.load(ctx)
	if err != nil {
		return nil, err
	}

	return doc.ProjectsByCategory(category), nil
}

// Replace overwrites the whole stored document. Last write wins.
func (srv *contentService) Replace(ctx context.Context, doc *entity.PortfolioDocument) error {
	doc.Normalize("")
	if err := srv.repo.Save(ctx, doc); err != nil {
		srv.log(ctx).Error("Failed to save portfolio document", slog.Any("error", err))

		return domainerrors.ErrStorageUnavailable.WithDetails(err.Error())
	}
	srv.log(ctx).Info("Replaced portfolio document")
	srv.publish(ctx, service.ContentEventSaved, "")

	return nil
}

// EditField parses the operator-typed text and replaces the field wholesale.
// A failed parse leaves the stored document untouched.
func (srv *contentService) EditField(ctx context.Context, field, rawText string) error {
	value, err := parseStructuredEdit(field, rawText)
	if err != nil {
		return err
	}

	if err := srv.patch(ctx, field, value); err != nil {
		return err
	}
	srv.log(ctx).Info("Replaced portfolio field", slog.String("field", field))
	srv.publish(ctx, service.ContentEventSaved, field)

	return nil
}

// EditSkillCategory replaces one skill category from a comma-joined list.
// An empty list removes the category.
func (srv *contentService) EditSkillCategory(ctx context.Context, category, rawText string) error {
	skills, err := parseSkillList(rawText)
	if err != nil {
		return err
	}

	doc, err := srv.load(ctx)
	if err != nil {
		return err
	}

	if len(skills) == 0 {
		delete(doc.Skills, category)
	} else {
		doc.Skills[category] = skills
	}

	if err := srv.patch(ctx, usecase.FieldSkills, doc.Skills); err != nil {
		return err
	}
	srv.log(ctx).Info("Replaced skill category", slog.String("category", category))
	srv.publish(ctx, service.ContentEventSaved, usecase.FieldSkills)

	return nil
}

// AddItem validates the fields for the kind and appends the new item.
func (srv *contentService) AddItem(ctx context.Context, kind string, fields map[string]string) error {
	if err := validateNewItem(kind, fields); err != nil {
		return err
	}

	doc, err := srv.load(ctx)
	if err != nil {
		return err
	}

	field, value, err := appendItem(doc, kind, fields)
	if err != nil {
		return err
	}

	if err := srv.patch(ctx, field, value); err != nil {
		return err
	}
	srv.log(ctx).Info("Added portfolio item", slog.String("kind", kind))
	srv.publish(ctx, service.ContentEventSaved, field)

	return nil
}

// appendItem builds the new item from its fields and returns the document
// field to patch together with its grown value.
func appendItem(doc *entity.PortfolioDocument, kind string, fields map[string]string) (string, any, error) {
	switch kind {
	case usecase.KindProject:
		project := entity.Project{
			Name:        fields["name"],
			Description: fields["description"],
			Category:    fields["category"],
			Images:      splitList(fields["images"], ","),
			TechUsed:    splitList(fields["techUsed"], ","),
			Challenges:  fields["challenges"],
			LiveLink:    fields["liveLink"],
			GithubLink:  fields["githubLink"],
		}

		return usecase.FieldProjects, append(doc.Projects, project), nil
	case usecase.KindCourse:
		course := entity.Course{
			Name:        fields["name"],
			Certificate: fields["certificate"],
			Description: fields["description"],
			Link:        fields["link"],
		}

		return usecase.FieldCourses, append(doc.Courses, course), nil
	case usecase.KindExperience:
		exp := entity.Experience{
			Title:       fields["title"],
			Company:     fields["company"],
			Years:       fields["years"],
			Description: fields["description"],
		}

		return usecase.FieldExperience, append(doc.Experience, exp), nil
	case usecase.KindSkill:
		skill := entity.Skill{Name: fields["name"], Level: defaultSkillLevel}
		if levelText := fields["level"]; levelText != "" {
			level, err := strconv.Atoi(levelText)
			if err != nil {
				return "", nil, domainerrors.ErrMalformedStructure.WithDetails("invalid skill level " + strconv.Quote(levelText))
			}
			skill.Level = level
		}
		category := fields["category"]
		doc.Skills[category] = append(doc.Skills[category], skill)

		return usecase.FieldSkills, doc.Skills, nil
	case usecase.KindTrackedInterest:
		interest := entity.TrackedInterest{
			Name:  fields["name"],
			Image: fields["image"],
			Link:  fields["link"],
		}

		return usecase.FieldTrackedInterests, append(doc.TrackedInterests, interest), nil
	case usecase.KindBlogPost:
		date := fields["date"]
		if date == "" {
			date = time.Now().Format("2006-01-02")
		}
		post := entity.BlogPost{
			ID:      uuid.New().String(),
			Title:   fields["title"],
			Date:    date,
			Tags:    splitList(fields["tags"], ","),
			Content: fields["content"],
		}

		return usecase.FieldBlogPosts, append(doc.BlogPosts, post), nil
	default:
		return "", nil, domainerrors.ErrUnknownField.WithDetails(kind)
	}
}

// DeleteItem removes the element at index from the named array field.
func (srv *contentService) DeleteItem(ctx context.Context, field string, index int) error {
	doc, err := srv.load(ctx)
	if err != nil {
		return err
	}

	var value any
	switch field {
	case usecase.FieldExperience:
		value, err = removeAt(doc.Experience, index)
	case usecase.FieldProjects:
		value, err = removeAt(doc.Projects, index)
	case usecase.FieldCourses:
		value, err = removeAt(doc.Courses, index)
	case usecase.FieldAchievements:
		value, err = removeAt(doc.Achievements, index)
	case usecase.FieldTrackedInterests:
		value, err = removeAt(doc.TrackedInterests, index)
	case usecase.FieldBlogPosts:
		value, err = removeAt(doc.BlogPosts, index)
	default:
		return domainerrors.ErrUnknownField.WithDetails(field)
	}
	if err != nil {
		return err
	}

	if err := srv.patch(ctx, field, value); err != nil {
		return err
	}
	srv.log(ctx).Info("Deleted portfolio item", slog.String("field", field), slog.Int("index", index))
	srv.publish(ctx, service.ContentEventSaved, field)

	return nil
}

// removeAt drops the element at index, preserving the relative order of all
// other elements.
func removeAt[T any](items []T, index int) ([]T, error) {
	if index < 0 || index >= len(items) {
		return nil, domainerrors.ErrItemNotFound.WithDetails("index " + strconv.Itoa(index) + " out of range")
	}

	kept := make([]T, 0, len(items)-1)
	kept = append(kept, items[:index]...)
	kept = append(kept, items[index+1:]...)

	return kept, nil
}

// UpdateProfileImage patches the profile image field only.
func (srv *contentService) UpdateProfileImage(ctx context.Context, image string) error {
	if err := srv.patch(ctx, usecase.FieldProfileImage, image); err != nil {
		return err
	}
	srv.log(ctx).Info("Updated profile image")
	srv.publish(ctx, service.ContentEventPatched, usecase.FieldProfileImage)

	return nil
}

// Watch subscribes onChange to document updates.
func (srv *contentService) Watch(ctx context.Context, onChange func(*entity.PortfolioDocument)) (repository.Unsubscribe, error) {
	unsubscribe, err := srv.repo.Subscribe(ctx, onChange)
	if err != nil {
		if errors.Is(err, repository.ErrWatchUnsupported) {
			return nil, domainerrors.ErrWatchUnsupported
		}

		return nil, domainerrors.ErrStorageUnavailable.WithDetails(err.Error())
	}

	return unsubscribe, nil
}
