package command

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jbeshir/dream-journal/internal/datasources/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateAPIToken_Execute(t *testing.T) {
	name := "cli"
	cases := []struct {
		name        string
		count       int64
		countErr    error
		createErr   error
		expiresIn   time.Duration
		wantErr     error
		wantAnyErr  bool
		wantCreated bool
		wantExpiry  bool
	}{
		{name: "creates_token", count: 2, wantCreated: true},
		{name: "creates_expiring_token", count: 0, expiresIn: 24 * time.Hour, wantCreated: true, wantExpiry: true},
		{name: "limit_reached", count: MaxAPITokensPerUser, wantErr: ErrTokenLimitExceeded},
		{name: "count_error", countErr: errors.New("db down"), wantAnyErr: true},
		{name: "create_error", count: 0, createErr: errors.New("db down"), wantAnyErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			counter := mocks.NewMockUserAPITokenCounter(t)
			creator := mocks.NewMockAPITokenCreator(t)

			counter.EXPECT().CountUserActiveAPITokens(mock.Anything, "user-1", testNow).Return(tc.count, tc.countErr)
			if tc.countErr == nil && tc.count < MaxAPITokensPerUser {
				creator.EXPECT().CreateAPIToken(mock.Anything, mock.Anything).Return(tc.createErr)
			}

			cmd := &CreateAPIToken{TokenCounter: counter, TokenCreator: creator, Now: fixedNow}
			got, err := cmd.Execute(testContext(), CreateAPITokenRequest{UserID: "user-1", Name: &name, ExpiresIn: tc.expiresIn})

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			if tc.wantAnyErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			assert.True(t, strings.HasPrefix(got.FullToken, APITokenPrefix))
			assert.Len(t, got.FullToken, len(APITokenPrefix)+64)
			assert.Equal(t, HashAPIToken(got.FullToken), got.Token.TokenHash)
			assert.Equal(t, got.FullToken[len(APITokenPrefix):len(APITokenPrefix)+8], got.Token.Prefix)
			assert.Equal(t, "user-1", got.Token.UserID)
			assert.Equal(t, &name, got.Token.Name)
			assert.Equal(t, testNow, got.Token.CreatedAt)
			assert.True(t, got.Token.IsActiveAt(testNow))
			if tc.wantExpiry {
				require.NotNil(t, got.Token.ExpiresAt)
				assert.Equal(t, testNow.Add(tc.expiresIn), *got.Token.ExpiresAt)
			} else {
				assert.Nil(t, got.Token.ExpiresAt)
			}
		})
	}
}

func TestHashAPIToken(t *testing.T) {
	assert.Equal(t,
		"9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08",
		HashAPIToken("test"))
	assert.NotEqual(t, HashAPIToken("a"), HashAPIToken("b"))
}
