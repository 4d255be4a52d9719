package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"folio/internal/domain/entity"
	domainerrors "folio/internal/domain/errors"
	"folio/internal/domain/repository"
	"folio/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newContentFixture() (*mockPortfolioRepo, *mockPublisher, usecase.ContentUsecase) {
	repo := new(mockPortfolioRepo)
	publisher := new(mockPublisher)

	return repo, publisher, NewContentService(repo, publisher, discardLogger())
}

func twoProjectDoc() *entity.PortfolioDocument {
	doc := entity.DefaultDocument("placeholder")
	doc.Projects = []entity.Project{
		{Name: "First", Description: "d1", Category: entity.CategoryAI},
		{Name: "Second", Description: "d2", Category: entity.CategoryFullStack},
	}

	return doc
}

func TestContentService_Get(t *testing.T) {
	repo, _, svc := newContentFixture()
	doc := twoProjectDoc()
	repo.On("Load", mock.Anything).Return(doc, nil)

	got, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, doc, got)
}

func TestContentService_Get_StorageFailure(t *testing.T) {
	repo, _, svc := newContentFixture()
	repo.On("Load", mock.Anything).Return(nil, assert.AnError)

	_, err := svc.Get(context.Background())
	assert.ErrorIs(t, err, domainerrors.ErrStorageUnavailable)
}

func TestContentService_Projects_FiltersByCategory(t *testing.T) {
	repo, _, svc := newContentFixture()
	repo.On("Load", mock.Anything).Return(twoProjectDoc(), nil)

	projects, err := svc.Projects(context.Background(), entity.CategoryAI)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "First", projects[0].Name)

	all, err := svc.Projects(context.Background(), entity.CategoryAll)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestContentService_Replace_OverwritesDocument(t *testing.T) {
	repo, publisher, svc := newContentFixture()

	var saved *entity.PortfolioDocument
	repo.On("Save", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*entity.PortfolioDocument)
		}).
		Return(nil)
	publisher.On("PublishContentEvent", mock.Anything, mock.Anything).Return(nil)

	doc := &entity.PortfolioDocument{About: "rewritten"}
	require.NoError(t, svc.Replace(context.Background(), doc))

	require.NotNil(t, saved)
	assert.Equal(t, "rewritten", saved.About)
	assert.NotNil(t, saved.Projects)
	assert.NotNil(t, saved.Skills)
}

func TestContentService_Replace_StorageFailure(t *testing.T) {
	repo, _, svc := newContentFixture()
	repo.On("Save", mock.Anything, mock.Anything).Return(assert.AnError)

	err := svc.Replace(context.Background(), &entity.PortfolioDocument{})
	assert.ErrorIs(t, err, domainerrors.ErrStorageUnavailable)
}

func TestContentService_EditField_WholeArrayReplace(t *testing.T) {
	repo, publisher, svc := newContentFixture()

	var patched []entity.Project
	repo.On("PatchField", mock.Anything, usecase.FieldProjects, mock.Anything).
		Run(func(args mock.Arguments) {
			patched = args.Get(2).([]entity.Project)
		}).
		Return(nil)
	publisher.On("PublishContentEvent", mock.Anything, mock.Anything).Return(nil)

	err := svc.EditField(context.Background(), usecase.FieldProjects, `[{"name":"A","description":"d","category":"AI"}]`)
	require.NoError(t, err)

	// The parsed array replaces the field wholesale; nothing is merged in.
	require.Len(t, patched, 1)
	assert.Equal(t, "A", patched[0].Name)
	publisher.AssertCalled(t, "PublishContentEvent", mock.Anything, mock.Anything)
}

func TestContentService_EditField_MalformedLeavesStoreUntouched(t *testing.T) {
	repo, publisher, svc := newContentFixture()

	err := svc.EditField(context.Background(), usecase.FieldProjects, `{"name":"A"}`)
	assert.ErrorIs(t, err, domainerrors.ErrMalformedStructure)

	repo.AssertNotCalled(t, "PatchField", mock.Anything, mock.Anything, mock.Anything)
	publisher.AssertNotCalled(t, "PublishContentEvent", mock.Anything, mock.Anything)
}

func TestContentService_EditField_PublishFailureDoesNotFailEdit(t *testing.T) {
	repo, publisher, svc := newContentFixture()
	repo.On("PatchField", mock.Anything, usecase.FieldAbout, "hi").Return(nil)
	publisher.On("PublishContentEvent", mock.Anything, mock.Anything).Return(assert.AnError)

	err := svc.EditField(context.Background(), usecase.FieldAbout, "hi")
	assert.NoError(t, err)
}

func TestContentService_EditSkillCategory(t *testing.T) {
	repo, publisher, svc := newContentFixture()
	doc := entity.DefaultDocument("placeholder")
	doc.Skills["Backend"] = []entity.Skill{{Name: "Go", Level: 80}}
	repo.On("Load", mock.Anything).Return(doc, nil)

	var patched map[string][]entity.Skill
	repo.On("PatchField", mock.Anything, usecase.FieldSkills, mock.Anything).
		Run(func(args mock.Arguments) {
			patched = args.Get(2).(map[string][]entity.Skill)
		}).
		Return(nil)
	publisher.On("PublishContentEvent", mock.Anything, mock.Anything).Return(nil)

	err := svc.EditSkillCategory(context.Background(), "Cloud", "AWS:70, GCP")
	require.NoError(t, err)

	assert.Equal(t, []entity.Skill{{Name: "AWS", Level: 70}, {Name: "GCP", Level: defaultSkillLevel}}, patched["Cloud"])
	// Existing categories survive.
	assert.Contains(t, patched, "Backend")
}

func TestContentService_EditSkillCategory_EmptyRemovesCategory(t *testing.T) {
	repo, publisher, svc := newContentFixture()
	doc := entity.DefaultDocument("placeholder")
	doc.Skills["Cloud"] = []entity.Skill{{Name: "AWS", Level: 70}}
	repo.On("Load", mock.Anything).Return(doc, nil)

	var patched map[string][]entity.Skill
	repo.On("PatchField", mock.Anything, usecase.FieldSkills, mock.Anything).
		Run(func(args mock.Arguments) {
			patched = args.Get(2).(map[string][]entity.Skill)
		}).
		Return(nil)
	publisher.On("PublishContentEvent", mock.Anything, mock.Anything).Return(nil)

	require.NoError(t, svc.EditSkillCategory(context.Background(), "Cloud", ""))
	assert.NotContains(t, patched, "Cloud")
}

func TestContentService_AddItem_GrowsByOne(t *testing.T) {
	repo, publisher, svc := newContentFixture()
	repo.On("Load", mock.Anything).Return(twoProjectDoc(), nil)

	var patched []entity.Project
	repo.On("PatchField", mock.Anything, usecase.FieldProjects, mock.Anything).
		Run(func(args mock.Arguments) {
			patched = args.Get(2).([]entity.Project)
		}).
		Return(nil)
	publisher.On("PublishContentEvent", mock.Anything, mock.Anything).Return(nil)

	err := svc.AddItem(context.Background(), usecase.KindProject, map[string]string{
		"name":        "X",
		"description": "Y",
		"category":    entity.CategoryAI,
		"techUsed":    "Go, Firestore",
	})
	require.NoError(t, err)

	require.Len(t, patched, 3)
	added := patched[2]
	assert.Equal(t, "X", added.Name)
	assert.Equal(t, entity.CategoryAI, added.Category)
	assert.Equal(t, []string{"Go", "Firestore"}, added.TechUsed)
}

func TestContentService_AddItem_MissingFieldRejected(t *testing.T) {
	repo, publisher, svc := newContentFixture()

	err := svc.AddItem(context.Background(), usecase.KindProject, map[string]string{"name": "X"})
	require.ErrorIs(t, err, domainerrors.ErrMissingField)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "description", appErr.Details())

	repo.AssertNotCalled(t, "Load", mock.Anything)
	publisher.AssertNotCalled(t, "PublishContentEvent", mock.Anything, mock.Anything)
}

func TestContentService_AddItem_Skill(t *testing.T) {
	repo, publisher, svc := newContentFixture()
	repo.On("Load", mock.Anything).Return(entity.DefaultDocument("placeholder"), nil)

	var patched map[string][]entity.Skill
	repo.On("PatchField", mock.Anything, usecase.FieldSkills, mock.Anything).
		Run(func(args mock.Arguments) {
			patched = args.Get(2).(map[string][]entity.Skill)
		}).
		Return(nil)
	publisher.On("PublishContentEvent", mock.Anything, mock.Anything).Return(nil)

	err := svc.AddItem(context.Background(), usecase.KindSkill, map[string]string{
		"category": "Backend",
		"name":     "Go",
		"level":    "95",
	})
	require.NoError(t, err)
	assert.Equal(t, []entity.Skill{{Name: "Go", Level: 95}}, patched["Backend"])
}

func TestContentService_DeleteItem_PreservesOrder(t *testing.T) {
	repo, publisher, svc := newContentFixture()
	doc := entity.DefaultDocument("placeholder")
	doc.Achievements = []string{"a", "b", "c", "d"}
	repo.On("Load", mock.Anything).Return(doc, nil)

	var patched []string
	repo.On("PatchField", mock.Anything, usecase.FieldAchievements, mock.Anything).
		Run(func(args mock.Arguments) {
			patched = args.Get(2).([]string)
		}).
		Return(nil)
	publisher.On("PublishContentEvent", mock.Anything, mock.Anything).Return(nil)

	require.NoError(t, svc.DeleteItem(context.Background(), usecase.FieldAchievements, 1))
	assert.Equal(t, []string{"a", "c", "d"}, patched)
}

func TestContentService_DeleteItem_OutOfRange(t *testing.T) {
	repo, _, svc := newContentFixture()
	repo.On("Load", mock.Anything).Return(twoProjectDoc(), nil)

	err := svc.DeleteItem(context.Background(), usecase.FieldProjects, 5)
	assert.ErrorIs(t, err, domainerrors.ErrItemNotFound)

	err = svc.DeleteItem(context.Background(), usecase.FieldProjects, -1)
	assert.ErrorIs(t, err, domainerrors.ErrItemNotFound)
}

func TestContentService_UpdateProfileImage(t *testing.T) {
	repo, publisher, svc := newContentFixture()
	repo.On("PatchField", mock.Anything, usecase.FieldProfileImage, "https://example.com/me.png").Return(nil)
	publisher.On("PublishContentEvent", mock.Anything, mock.Anything).Return(nil)

	err := svc.UpdateProfileImage(context.Background(), "https://example.com/me.png")
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestContentService_Watch_Unsupported(t *testing.T) {
	repo, _, svc := newContentFixture()
	repo.On("Subscribe", mock.Anything, mock.Anything).Return(nil, repository.ErrWatchUnsupported)

	_, err := svc.Watch(context.Background(), func(*entity.PortfolioDocument) {})
	assert.ErrorIs(t, err, domainerrors.ErrWatchUnsupported)
}

func TestContentService_Watch(t *testing.T) {
	repo, _, svc := newContentFixture()
	called := false
	repo.On("Subscribe", mock.Anything, mock.Anything).Return(repository.Unsubscribe(func() { called = true }), nil)

	unsubscribe, err := svc.Watch(context.Background(), func(*entity.PortfolioDocument) {})
	require.NoError(t, err)
	unsubscribe()
	assert.True(t, called)
}
