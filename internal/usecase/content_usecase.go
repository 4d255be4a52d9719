// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"folio/internal/domain/entity"
	"folio/internal/domain/repository"
)

// Content field identifiers accepted by the edit operations. They match the
// wire field names of the portfolio document.
const (
	FieldAbout            = "about"
	FieldContact          = "contact"
	FieldExperience       = "experience"
	FieldProjects         = "projects"
	FieldCourses          = "courses"
	FieldSkills           = "skills"
	FieldAchievements     = "achievements"
	FieldTrackedInterests = "trackedInterests"
	FieldBlogPosts        = "blogPosts"
	FieldProfileImage     = "profileImage"
)

// Item kinds accepted by AddItem.
const (
	KindProject         = "project"
	KindCourse          = "course"
	KindExperience      = "experience"
	KindSkill           = "skill"
	KindTrackedInterest = "trackedInterest"
	KindBlogPost        = "blogPost"
)

// ContentUsecase defines the interface for reading and editing the portfolio
// document.
type ContentUsecase interface {
	// Get returns the current document, seeded with defaults on first run.
	Get(ctx context.Context) (*entity.PortfolioDocument, error)

	// Projects returns the projects matching the given category label. The
	// empty string and the "All" meta-category match everything.
	Projects(ctx context.Context, category string) ([]entity.Project, error)

	// Replace overwrites the whole stored document with the given one,
	// normalized. Last write wins; no merge with the prior value.
	Replace(ctx context.Context, doc *entity.PortfolioDocument) error

	// EditField parses operator-typed text for one field and replaces that
	// field wholesale. Array-valued fields are replaced in full; no element
	// of the prior value survives unless re-included in the text.
	EditField(ctx context.Context, field, rawText string) error

	// EditSkillCategory replaces one skill category from a comma-joined
	// list of names, each with an optional ":level" suffix.
	EditSkillCategory(ctx context.Context, category, rawText string) error

	// AddItem validates the given fields for the item kind and appends the
	// resulting item to the matching sequence.
	AddItem(ctx context.Context, kind string, fields map[string]string) error

	// DeleteItem removes the element at index from the named array field,
	// preserving the relative order of all other elements.
	DeleteItem(ctx context.Context, field string, index int) error

	// UpdateProfileImage patches the profile image without re-sending the
	// whole document.
	UpdateProfileImage(ctx context.Context, image string) error

	// Watch subscribes onChange to document updates. The callback fires
	// once immediately with the current state and again on every change.
	// Backends without push updates return repository.ErrWatchUnsupported.
	Watch(ctx context.Context, onChange func(*entity.PortfolioDocument)) (repository.Unsubscribe, error)
}
