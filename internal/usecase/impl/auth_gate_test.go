package impl

import (
	"context"
	"testing"
	"time"

	"jobboard/internal/domain/entity"
	domainerrors "jobboard/internal/domain/errors"
	"jobboard/internal/domain/repository"
	"jobboard/internal/domain/service"
	"jobboard/internal/errors"
	"jobboard/internal/infra/auth"
	mockRepo "jobboard/internal/mocks/repository"
	"jobboard/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authGateFixtures struct {
	gate     usecase.AuthGate
	tokens   service.TokenService
	userRepo *mockRepo.MockUserRepository
}

func createTestAuthGate(t *testing.T) authGateFixtures {
	t.Helper()

	tokens, err := auth.NewJWTService(newTestConfig())
	require.NoError(t, err)

	userRepo := mockRepo.NewMockUserRepository(t)
	gate := NewAuthGate(AuthGateParams{
		UserRepo:     userRepo,
		TokenService: tokens,
		Logger:       newDiscardLogger(),
	})

	return authGateFixtures{
		gate:     gate,
		tokens:   tokens,
		userRepo: userRepo,
	}
}

func TestAuthGate_Authenticate_IssuedPairAuthenticates(t *testing.T) {
	for _, role := range []entity.Role{entity.RoleUser, entity.RoleAdmin} {
		t.Run(role.String(), func(t *testing.T) {
			fx := createTestAuthGate(t)
			ctx := context.Background()
			user := newTestUser(role)

			pair, err := fx.tokens.IssueAuthPair(user)
			require.NoError(t, err)

			fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil).Twice()

			header := role.Realm().Scheme() + " " + pair.AccessToken
			got, err := fx.gate.Authenticate(ctx, header, entity.TokenPurposeAccess)
			require.NoError(t, err)
			assert.Equal(t, user.ID, got.ID)

			header = role.Realm().Scheme() + " " + pair.RefreshToken
			got, err = fx.gate.Authenticate(ctx, header, entity.TokenPurposeRefresh)
			require.NoError(t, err)
			assert.Equal(t, user.ID, got.ID)
		})
	}
}

func TestAuthGate_Authenticate_MissingHeader(t *testing.T) {
	fx := createTestAuthGate(t)

	for _, header := range []string{"", "   "} {
		_, err := fx.gate.Authenticate(context.Background(), header, entity.TokenPurposeAccess)
		require.ErrorIs(t, err, domainerrors.ErrMissingAuth)
	}
}

func TestAuthGate_Authenticate_MalformedHeader(t *testing.T) {
	fx := createTestAuthGate(t)
	user := newTestUser(entity.RoleUser)
	token, err := fx.tokens.Issue(user.ID, entity.RealmUser, entity.TokenPurposeAccess)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{name: "scheme only", header: "Bearer"},
		{name: "scheme with trailing space", header: "Bearer   "},
		{name: "token only", header: token},
		{name: "unknown scheme", header: "Token " + token},
		{name: "lowercase scheme", header: "bearer " + token},
		{name: "garbage token", header: "Bearer not-a-jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.gate.Authenticate(context.Background(), tt.header, entity.TokenPurposeAccess)
			require.ErrorIs(t, err, domainerrors.ErrInvalidToken)
		})
	}
}

func TestAuthGate_Authenticate_RealmAndPurposeMustMatch(t *testing.T) {
	fx := createTestAuthGate(t)
	user := newTestUser(entity.RoleUser)

	adminAccess, err := fx.tokens.Issue(user.ID, entity.RealmAdmin, entity.TokenPurposeAccess)
	require.NoError(t, err)
	userAccess, err := fx.tokens.Issue(user.ID, entity.RealmUser, entity.TokenPurposeAccess)
	require.NoError(t, err)
	userRefresh, err := fx.tokens.Issue(user.ID, entity.RealmUser, entity.TokenPurposeRefresh)
	require.NoError(t, err)

	tests := []struct {
		name    string
		header  string
		purpose entity.TokenPurpose
	}{
		{name: "admin token under bearer", header: "Bearer " + adminAccess, purpose: entity.TokenPurposeAccess},
		{name: "user token under admin", header: "Admin " + userAccess, purpose: entity.TokenPurposeAccess},
		{name: "refresh token used as access", header: "Bearer " + userRefresh, purpose: entity.TokenPurposeAccess},
		{name: "access token used as refresh", header: "Bearer " + userAccess, purpose: entity.TokenPurposeRefresh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.gate.Authenticate(context.Background(), tt.header, tt.purpose)
			require.ErrorIs(t, err, domainerrors.ErrInvalidToken)
		})
	}
}

func TestAuthGate_Authenticate_AccountState(t *testing.T) {
	past := time.Now().Add(-time.Hour)

	tests := []struct {
		name    string
		mutate  func(*entity.User)
		repoErr error
		wantErr error
	}{
		{name: "not found", repoErr: repository.ErrUserNotFound, wantErr: domainerrors.ErrUserNotFound},
		{name: "banned", mutate: func(u *entity.User) { u.BannedAt = &past }, wantErr: domainerrors.ErrAccountBanned},
		{name: "deleted", mutate: func(u *entity.User) { u.DeletedAt = &past }, wantErr: domainerrors.ErrUserNotFound},
		{
			name: "banned and deleted reports ban",
			mutate: func(u *entity.User) {
				u.BannedAt = &past
				u.DeletedAt = &past
			},
			wantErr: domainerrors.ErrAccountBanned,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthGate(t)
			ctx := context.Background()
			user := newTestUser(entity.RoleUser)
			token, err := fx.tokens.Issue(user.ID, entity.RealmUser, entity.TokenPurposeAccess)
			require.NoError(t, err)

			if tt.repoErr != nil {
				fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(nil, tt.repoErr)
			} else {
				tt.mutate(user)
				fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
			}

			_, err = fx.gate.Authenticate(ctx, "Bearer "+token, entity.TokenPurposeAccess)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthGate_Authenticate_BannedIsForbidden(t *testing.T) {
	fx := createTestAuthGate(t)
	ctx := context.Background()
	user := newTestUser(entity.RoleUser)
	now := time.Now()
	user.BannedAt = &now
	token, err := fx.tokens.Issue(user.ID, entity.RealmUser, entity.TokenPurposeAccess)
	require.NoError(t, err)

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	_, err = fx.gate.Authenticate(ctx, "Bearer "+token, entity.TokenPurposeAccess)

	appErr, ok := errors.AsType[domainerrors.AppError](err)
	require.True(t, ok)
	assert.Equal(t, 403, appErr.HTTPCode())
}

func TestAuthGate_Authenticate_CredentialFreshness(t *testing.T) {
	fx := createTestAuthGate(t)
	user := newTestUser(entity.RoleUser)

	token, err := fx.tokens.Issue(user.ID, entity.RealmUser, entity.TokenPurposeAccess)
	require.NoError(t, err)
	claims, err := fx.tokens.Verify(token, entity.RealmUser, entity.TokenPurposeAccess)
	require.NoError(t, err)
	issuedAt := claims.IssuedAt

	tests := []struct {
		name      string
		changedAt *time.Time
		wantErr   error
	}{
		{name: "never changed", changedAt: nil},
		{name: "changed before issue", changedAt: ptrTime(issuedAt.Add(-time.Second))},
		{name: "changed within the issue second", changedAt: ptrTime(issuedAt.Add(500 * time.Millisecond))},
		{name: "changed after issue", changedAt: ptrTime(issuedAt.Add(time.Second)), wantErr: domainerrors.ErrSessionExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			current := *user
			current.ChangeCredentialTime = tt.changedAt
			fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(&current, nil).Once()

			got, err := fx.gate.Authenticate(ctx, "Bearer "+token, entity.TokenPurposeAccess)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, user.ID, got.ID)
		})
	}
}

func TestAuthGate_Authenticate_RepositoryFailure(t *testing.T) {
	fx := createTestAuthGate(t)
	ctx := context.Background()
	user := newTestUser(entity.RoleUser)
	token, err := fx.tokens.Issue(user.ID, entity.RealmUser, entity.TokenPurposeAccess)
	require.NoError(t, err)

	dbErr := domainerrors.NewDatabaseExecuteError(assert.AnError, "failed to find user by id")
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(nil, dbErr)

	_, err = fx.gate.Authenticate(ctx, "Bearer "+token, entity.TokenPurposeAccess)
	require.ErrorIs(t, err, assert.AnError)

	appErr, ok := errors.AsType[domainerrors.AppError](err)
	require.True(t, ok)
	assert.Equal(t, 500, appErr.HTTPCode())
}

func TestAuthGate_Authorize(t *testing.T) {
	fx := createTestAuthGate(t)
	user := newTestUser(entity.RoleUser)
	admin := newTestUser(entity.RoleAdmin)

	require.NoError(t, fx.gate.Authorize(user, entity.RoleUser))
	require.NoError(t, fx.gate.Authorize(admin, entity.RoleAdmin))
	require.NoError(t, fx.gate.Authorize(admin, entity.RoleUser, entity.RoleAdmin))

	require.ErrorIs(t, fx.gate.Authorize(user, entity.RoleAdmin), domainerrors.ErrAccessDenied)
	// No hierarchy: an admin is not implicitly a user.
	require.ErrorIs(t, fx.gate.Authorize(admin, entity.RoleUser), domainerrors.ErrAccessDenied)
	require.ErrorIs(t, fx.gate.Authorize(user), domainerrors.ErrAccessDenied)
	require.ErrorIs(t, fx.gate.Authorize(nil, entity.RoleUser), domainerrors.ErrMissingAuth)
}

func ptrTime(t time.Time) *time.Time {
	return &t
}
