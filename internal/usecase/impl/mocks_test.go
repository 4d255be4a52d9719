package impl

import (
	"context"
	"time"

	"folio/internal/domain/entity"
	"folio/internal/domain/repository"
	"folio/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

type mockPortfolioRepo struct{ mock.Mock }

func (m *mockPortfolioRepo) Load(ctx context.Context) (*entity.PortfolioDocument, error) {
	args := m.Called(ctx)
	doc, _ := args.Get(0).(*entity.PortfolioDocument)

	return doc, args.Error(1)
}

func (m *mockPortfolioRepo) Save(ctx context.Context, doc *entity.PortfolioDocument) error {
	return m.Called(ctx, doc).Error(0)
}

func (m *mockPortfolioRepo) PatchField(ctx context.Context, field string, value any) error {
	return m.Called(ctx, field, value).Error(0)
}

func (m *mockPortfolioRepo) Subscribe(ctx context.Context, onChange func(*entity.PortfolioDocument)) (repository.Unsubscribe, error) {
	args := m.Called(ctx, onChange)
	unsub, _ := args.Get(0).(repository.Unsubscribe)

	return unsub, args.Error(1)
}

type mockInboxRepo struct{ mock.Mock }

func (m *mockInboxRepo) Add(ctx context.Context, req *entity.ContactRequest) (*entity.ContactRequest, error) {
	args := m.Called(ctx, req)
	stored, _ := args.Get(0).(*entity.ContactRequest)

	return stored, args.Error(1)
}

func (m *mockInboxRepo) List(ctx context.Context) ([]*entity.ContactRequest, error) {
	args := m.Called(ctx)
	requests, _ := args.Get(0).([]*entity.ContactRequest)

	return requests, args.Error(1)
}

func (m *mockInboxRepo) SetRead(ctx context.Context, id string, read bool) error {
	return m.Called(ctx, id, read).Error(0)
}

func (m *mockInboxRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockNoteRepo struct{ mock.Mock }

func (m *mockNoteRepo) Add(ctx context.Context, note *entity.Note) (*entity.Note, error) {
	args := m.Called(ctx, note)
	stored, _ := args.Get(0).(*entity.Note)

	return stored, args.Error(1)
}

func (m *mockNoteRepo) List(ctx context.Context) ([]*entity.Note, error) {
	args := m.Called(ctx)
	notes, _ := args.Get(0).([]*entity.Note)

	return notes, args.Error(1)
}

func (m *mockNoteRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockCredentialRepo struct{ mock.Mock }

func (m *mockCredentialRepo) Find(ctx context.Context, email string) (*entity.AdminCredential, error) {
	args := m.Called(ctx, email)
	cred, _ := args.Get(0).(*entity.AdminCredential)

	return cred, args.Error(1)
}

func (m *mockCredentialRepo) Save(ctx context.Context, cred *entity.AdminCredential) error {
	return m.Called(ctx, cred).Error(0)
}

func (m *mockCredentialRepo) Rename(ctx context.Context, oldEmail string, cred *entity.AdminCredential) error {
	return m.Called(ctx, oldEmail, cred).Error(0)
}

type mockHasher struct{ mock.Mock }

func (m *mockHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *mockHasher) Check(password, hash string) bool {
	return m.Called(password, hash).Bool(0)
}

type mockTokenService struct{ mock.Mock }

func (m *mockTokenService) GenerateAdminToken(email string, authTime time.Time) (string, error) {
	args := m.Called(email, authTime)

	return args.String(0), args.Error(1)
}

func (m *mockTokenService) ValidateToken(tokenString string) (*service.AdminClaims, error) {
	args := m.Called(tokenString)
	claims, _ := args.Get(0).(*service.AdminClaims)

	return claims, args.Error(1)
}

type mockPublisher struct{ mock.Mock }

func (m *mockPublisher) PublishContentEvent(ctx context.Context, event *service.ContentEvent) error {
	return m.Called(ctx, event).Error(0)
}

func (m *mockPublisher) Close() error {
	return m.Called().Error(0)
}
