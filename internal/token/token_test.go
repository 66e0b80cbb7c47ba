package token

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_IssueVerify(t *testing.T) {
	svc := NewService("test-secret", time.Hour)
	userID := uuid.New()

	raw, err := svc.Issue(userID)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	got, err := svc.Verify(raw)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestService_Verify_Expired(t *testing.T) {
	svc := NewService("test-secret", -time.Minute)

	raw, err := svc.Issue(uuid.New())
	require.NoError(t, err)

	_, err = svc.Verify(raw)
	assert.ErrorIs(t, err, ErrExpired)
}

func TestService_Verify_Invalid(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	tests := []struct {
		name string
		raw  string
	}{
		{name: "garbage", raw: "not-a-token"},
		{name: "empty", raw: ""},
		{
			name: "wrong secret",
			raw: func() string {
				other := NewService("other-secret", time.Hour)
				raw, err := other.Issue(uuid.New())
				require.NoError(t, err)
				return raw
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Verify(tt.raw)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestService_Verify_TamperedSubject(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	raw, err := svc.Issue(uuid.New())
	require.NoError(t, err)

	// Flip a character in the payload segment; the signature no longer matches.
	tampered := []byte(raw)
	mid := len(tampered) / 2
	if tampered[mid] == 'a' {
		tampered[mid] = 'b'
	} else {
		tampered[mid] = 'a'
	}

	_, err = svc.Verify(string(tampered))
	assert.ErrorIs(t, err, ErrInvalid)
}
