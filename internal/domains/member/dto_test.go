package member

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateMemberRequestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		req     CreateMemberRequest
		wantErr bool
	}{
		{
			name: "valid",
			req:  CreateMemberRequest{Email: "alice@example.com", Nickname: "Alice"},
		},
		{
			name:    "missing email",
			req:     CreateMemberRequest{Nickname: "Alice"},
			wantErr: true,
		},
		{
			name:    "malformed email",
			req:     CreateMemberRequest{Email: "not-an-email", Nickname: "Alice"},
			wantErr: true,
		},
		{
			name:    "nickname too short",
			req:     CreateMemberRequest{Email: "alice@example.com", Nickname: "A"},
			wantErr: true,
		},
		{
			name:    "nickname too long",
			req:     CreateMemberRequest{Email: "alice@example.com", Nickname: strings.Repeat("a", 21)},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdateMemberRequestValidate(t *testing.T) {
	short := "A"
	valid := "Allie"

	assert.NoError(t, UpdateMemberRequest{}.Validate())
	assert.NoError(t, UpdateMemberRequest{Nickname: &valid}.Validate())
	assert.Error(t, UpdateMemberRequest{Nickname: &short}.Validate())
}

func TestApplyProfileUpdate(t *testing.T) {
	image := "https://img.example.com/a.png"
	m := Member{Nickname: "Alice", ProfileImageURL: &image}

	m.ApplyProfileUpdate(nil, nil)
	assert.Equal(t, "Alice", m.Nickname)
	assert.Equal(t, &image, m.ProfileImageURL)

	nickname := "Allie"
	m.ApplyProfileUpdate(&nickname, nil)
	assert.Equal(t, "Allie", m.Nickname)
	assert.Equal(t, &image, m.ProfileImageURL)
}
