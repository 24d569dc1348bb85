package impl

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"jobboard/internal/domain/entity"
	domainerrors "jobboard/internal/domain/errors"
	"jobboard/internal/domain/repository"
	"jobboard/internal/infra/auth"
	mockRepo "jobboard/internal/mocks/repository"
	mockService "jobboard/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type otpKey struct {
	userID  uuid.UUID
	purpose entity.OTPPurpose
}

// memoryOTPRepository keeps one entry per (user, purpose) like the unique index of user_otps.
type memoryOTPRepository struct {
	mu      sync.Mutex
	entries map[otpKey]entity.OTPEntry
}

func newMemoryOTPRepository() *memoryOTPRepository {
	return &memoryOTPRepository{entries: make(map[otpKey]entity.OTPEntry)}
}

func (r *memoryOTPRepository) Upsert(_ context.Context, entry *entity.OTPEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[otpKey{userID: entry.UserID, purpose: entry.Purpose}] = *entry

	return nil
}

func (r *memoryOTPRepository) Find(_ context.Context, userID uuid.UUID, purpose entity.OTPPurpose) (*entity.OTPEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.entries[otpKey{userID: userID, purpose: purpose}]
	if !ok {
		return nil, repository.ErrOTPNotFound
	}

	return &entry, nil
}

func (r *memoryOTPRepository) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var removed int64
	for key, entry := range r.entries {
		if entry.ExpiresAt.Before(now) {
			delete(r.entries, key)
			removed++
		}
	}

	return removed, nil
}

type otpServiceFixtures struct {
	service   *otpService
	repo      *memoryOTPRepository
	publisher *mockService.MockOTPPublisher
	limiter   *mockService.MockCooldownLimiter
	clock     *fixedClock
	published []*entity.OTPDeliveryEvent
}

func createTestOTPService(t *testing.T) *otpServiceFixtures {
	t.Helper()

	f := &otpServiceFixtures{
		repo:      newMemoryOTPRepository(),
		publisher: mockService.NewMockOTPPublisher(t),
		limiter:   mockService.NewMockCooldownLimiter(t),
		clock:     &fixedClock{t: time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)},
	}

	srv := NewOTPService(OTPServiceParams{
		OTPRepo:   f.repo,
		Hasher:    auth.NewBcryptHasher(newTestConfig()),
		Publisher: f.publisher,
		Limiter:   f.limiter,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	}).(*otpService)
	srv.now = f.clock.Now
	f.service = srv

	return f
}

// expectDelivery records every published event so tests can read the plaintext code.
func (f *otpServiceFixtures) expectDelivery() {
	f.limiter.EXPECT().Acquire(mock.Anything, mock.Anything, time.Minute).Return(true, nil).Maybe()
	f.publisher.EXPECT().Publish(mock.Anything, mock.Anything).
		Run(func(_ context.Context, event *entity.OTPDeliveryEvent) {
			f.published = append(f.published, event)
		}).
		Return(nil).Maybe()
}

func (f *otpServiceFixtures) lastCode(t *testing.T) string {
	t.Helper()
	require.NotEmpty(t, f.published)

	return f.published[len(f.published)-1].Code
}

func TestOTPService_Request_StoresHashAndPublishesCode(t *testing.T) {
	f := createTestOTPService(t)
	f.expectDelivery()
	ctx := context.Background()
	user := newTestUser(entity.RoleUser)

	require.NoError(t, f.service.Request(ctx, user, entity.OTPPurposeConfirmEmail))

	require.Len(t, f.published, 1)
	event := f.published[0]
	assert.Equal(t, user.ID, event.PrincipalID)
	assert.Equal(t, user.Email, event.Email)
	assert.Equal(t, "Jane Doe", event.Name)
	assert.Equal(t, entity.OTPPurposeConfirmEmail, event.Purpose)
	assert.Len(t, event.Code, 6)
	assert.Empty(t, strings.Trim(event.Code, "0123456789"))

	entry, err := f.repo.Find(ctx, user.ID, entity.OTPPurposeConfirmEmail)
	require.NoError(t, err)
	assert.NotEqual(t, event.Code, entry.CodeHash)
	assert.Equal(t, f.clock.Now().Add(10*time.Minute), entry.ExpiresAt)
}

func TestOTPService_Verify_Outcomes(t *testing.T) {
	f := createTestOTPService(t)
	f.expectDelivery()
	ctx := context.Background()
	user := newTestUser(entity.RoleUser)

	err := f.service.Verify(ctx, user, entity.OTPPurposeForgotPassword, "123456")
	require.ErrorIs(t, err, domainerrors.ErrNoSuchOTP)

	require.NoError(t, f.service.Request(ctx, user, entity.OTPPurposeForgotPassword))
	code := f.lastCode(t)

	require.NoError(t, f.service.Verify(ctx, user, entity.OTPPurposeForgotPassword, code))

	wrong := "000000"
	if code == wrong {
		wrong = "111111"
	}
	require.ErrorIs(t, f.service.Verify(ctx, user, entity.OTPPurposeForgotPassword, wrong), domainerrors.ErrOTPMismatch)

	// Purposes do not share codes.
	require.ErrorIs(t, f.service.Verify(ctx, user, entity.OTPPurposeConfirmEmail, code), domainerrors.ErrNoSuchOTP)

	f.clock.Advance(10 * time.Minute)
	require.NoError(t, f.service.Verify(ctx, user, entity.OTPPurposeForgotPassword, code))

	f.clock.Advance(time.Second)
	require.ErrorIs(t, f.service.Verify(ctx, user, entity.OTPPurposeForgotPassword, code), domainerrors.ErrExpiredOTP)

	// A wrong code on an expired entry still reports the mismatch first.
	require.ErrorIs(t, f.service.Verify(ctx, user, entity.OTPPurposeForgotPassword, wrong), domainerrors.ErrOTPMismatch)
}

func TestOTPService_Verify_DoesNotConsumeEntry(t *testing.T) {
	f := createTestOTPService(t)
	f.expectDelivery()
	ctx := context.Background()
	user := newTestUser(entity.RoleUser)

	require.NoError(t, f.service.Request(ctx, user, entity.OTPPurposeConfirmEmail))
	code := f.lastCode(t)

	require.NoError(t, f.service.Verify(ctx, user, entity.OTPPurposeConfirmEmail, code))
	require.NoError(t, f.service.Verify(ctx, user, entity.OTPPurposeConfirmEmail, code))
}

func TestOTPService_Request_SecondCodeReplacesFirst(t *testing.T) {
	f := createTestOTPService(t)
	f.expectDelivery()
	ctx := context.Background()
	user := newTestUser(entity.RoleUser)

	require.NoError(t, f.service.Request(ctx, user, entity.OTPPurposeForgotPassword))
	first := f.lastCode(t)
	f.clock.Advance(2 * time.Minute)
	require.NoError(t, f.service.Request(ctx, user, entity.OTPPurposeForgotPassword))
	second := f.lastCode(t)

	require.NoError(t, f.service.Verify(ctx, user, entity.OTPPurposeForgotPassword, second))
	if first != second {
		require.ErrorIs(t, f.service.Verify(ctx, user, entity.OTPPurposeForgotPassword, first), domainerrors.ErrOTPMismatch)
	}

	entry, err := f.repo.Find(ctx, user.ID, entity.OTPPurposeForgotPassword)
	require.NoError(t, err)
	assert.Equal(t, f.clock.Now().Add(10*time.Minute), entry.ExpiresAt)
}

func TestOTPService_Request_Throttled(t *testing.T) {
	f := createTestOTPService(t)
	ctx := context.Background()
	user := newTestUser(entity.RoleUser)

	key := "otp:confirm-email:" + user.ID.String()
	f.limiter.EXPECT().Acquire(ctx, key, time.Minute).Return(false, nil)

	err := f.service.Request(ctx, user, entity.OTPPurposeConfirmEmail)
	require.ErrorIs(t, err, domainerrors.ErrOTPRequestThrottled)

	_, err = f.repo.Find(ctx, user.ID, entity.OTPPurposeConfirmEmail)
	require.ErrorIs(t, err, repository.ErrOTPNotFound)
}

func TestOTPService_Request_LimiterOutageDoesNotBlock(t *testing.T) {
	f := createTestOTPService(t)
	ctx := context.Background()
	user := newTestUser(entity.RoleUser)

	f.limiter.EXPECT().Acquire(ctx, mock.Anything, time.Minute).Return(false, assert.AnError)
	f.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil)

	require.NoError(t, f.service.Request(ctx, user, entity.OTPPurposeConfirmEmail))
}

func TestOTPService_Request_PublishFailure(t *testing.T) {
	f := createTestOTPService(t)
	ctx := context.Background()
	user := newTestUser(entity.RoleUser)

	f.limiter.EXPECT().Acquire(ctx, mock.Anything, time.Minute).Return(true, nil)
	f.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(assert.AnError)

	err := f.service.Request(ctx, user, entity.OTPPurposeConfirmEmail)
	require.ErrorIs(t, err, domainerrors.ErrInternalError)
}

func TestOTPService_Request_PublishOutlivesRequest(t *testing.T) {
	f := createTestOTPService(t)
	ctx, cancel := context.WithCancel(context.Background())
	user := newTestUser(entity.RoleUser)

	f.limiter.EXPECT().Acquire(ctx, mock.Anything, time.Minute).Return(true, nil)
	f.publisher.EXPECT().Publish(mock.Anything, mock.Anything).
		Run(func(publishCtx context.Context, _ *entity.OTPDeliveryEvent) {
			cancel()
			assert.NoError(t, publishCtx.Err())
		}).
		Return(nil)

	require.NoError(t, f.service.Request(ctx, user, entity.OTPPurposeConfirmEmail))
}

func TestOTPService_Request_UnknownPurpose(t *testing.T) {
	f := createTestOTPService(t)

	err := f.service.Request(context.Background(), newTestUser(entity.RoleUser), entity.OTPPurpose("delete-account"))
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOTPService_Sweep_RemovesOnlyExpired(t *testing.T) {
	f := createTestOTPService(t)
	ctx := context.Background()
	now := f.clock.Now()

	alice, bob := uuid.New(), uuid.New()
	entries := []*entity.OTPEntry{
		{UserID: alice, Purpose: entity.OTPPurposeConfirmEmail, ExpiresAt: now.Add(-time.Minute)},
		{UserID: alice, Purpose: entity.OTPPurposeForgotPassword, ExpiresAt: now.Add(time.Minute)},
		{UserID: bob, Purpose: entity.OTPPurposeConfirmEmail, ExpiresAt: now.Add(5 * time.Minute)},
		{UserID: bob, Purpose: entity.OTPPurposeForgotPassword, ExpiresAt: now.Add(-time.Hour)},
	}
	for _, entry := range entries {
		require.NoError(t, f.repo.Upsert(ctx, entry))
	}

	removed, err := f.service.Sweep(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, removed)

	_, err = f.repo.Find(ctx, alice, entity.OTPPurposeConfirmEmail)
	require.ErrorIs(t, err, repository.ErrOTPNotFound)
	_, err = f.repo.Find(ctx, bob, entity.OTPPurposeForgotPassword)
	require.ErrorIs(t, err, repository.ErrOTPNotFound)

	_, err = f.repo.Find(ctx, alice, entity.OTPPurposeForgotPassword)
	require.NoError(t, err)
	_, err = f.repo.Find(ctx, bob, entity.OTPPurposeConfirmEmail)
	require.NoError(t, err)
}

func TestOTPService_Sweep_RepositoryFailure(t *testing.T) {
	otpRepo := mockRepo.NewMockOTPRepository(t)
	srv := NewOTPService(OTPServiceParams{
		OTPRepo: otpRepo,
		Config:  newTestConfig(),
		Logger:  newDiscardLogger(),
	})

	otpRepo.EXPECT().DeleteExpired(mock.Anything, mock.AnythingOfType("time.Time")).Return(int64(0), assert.AnError)

	_, err := srv.Sweep(context.Background())
	require.ErrorIs(t, err, assert.AnError)
}

func TestGenerateNumericCode(t *testing.T) {
	code, err := generateNumericCode(bytes.NewReader(bytes.Repeat([]byte{0}, 64)), 6)
	require.NoError(t, err)
	assert.Equal(t, "000000", code)

	_, err = generateNumericCode(bytes.NewReader(nil), 6)
	require.Error(t, err)
}
