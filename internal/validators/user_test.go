package validators

import (
	"context"
	"testing"

	"github.com/mkhayatov/go-user-manager/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDraft() models.UserDraft {
	return models.UserDraft{
		Name:     "Ana Lee",
		Email:    "ana@x.com",
		Password: "secret1",
		Birthday: "1999-03-04",
	}
}

func TestUserDraftValidator_ValidDraft(t *testing.T) {
	v := NewUserDraftValidator()

	err := v.Validate(context.Background(), validDraft())

	require.NoError(t, err)
}

func TestUserDraftValidator_PointerDraft(t *testing.T) {
	v := NewUserDraftValidator()
	draft := validDraft()

	err := v.Validate(context.Background(), &draft)

	require.NoError(t, err)
}

func TestUserDraftValidator_UnsupportedType(t *testing.T) {
	v := NewUserDraftValidator()

	err := v.Validate(context.Background(), models.User{})

	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestUserDraftValidator_UnknownField(t *testing.T) {
	v := NewUserDraftValidator()

	err := v.Validate(context.Background(), validDraft(), "no-such-field")

	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestUserDraftValidator_FieldRules(t *testing.T) {
	tests := []struct {
		name         string
		mutate       func(d *models.UserDraft)
		failedFields []string
	}{
		{
			name:         "name shorter than 2 runes",
			mutate:       func(d *models.UserDraft) { d.Name = "A" },
			failedFields: []string{FieldName},
		},
		{
			name:         "name of whitespace only",
			mutate:       func(d *models.UserDraft) { d.Name = "   " },
			failedFields: []string{FieldName},
		},
		{
			name:         "two-rune cyrillic name is enough",
			mutate:       func(d *models.UserDraft) { d.Name = "Ян" },
			failedFields: nil,
		},
		{
			name:         "email without at sign",
			mutate:       func(d *models.UserDraft) { d.Email = "ana.x.com" },
			failedFields: []string{FieldEmail},
		},
		{
			name:         "email with display name form",
			mutate:       func(d *models.UserDraft) { d.Email = "Ana <ana@x.com>" },
			failedFields: []string{FieldEmail},
		},
		{
			name:         "empty email",
			mutate:       func(d *models.UserDraft) { d.Email = "" },
			failedFields: []string{FieldEmail},
		},
		{
			name:         "password shorter than 6",
			mutate:       func(d *models.UserDraft) { d.Password = "12345" },
			failedFields: []string{FieldPassword},
		},
		{
			name:         "unparseable birthday",
			mutate:       func(d *models.UserDraft) { d.Birthday = "not-a-date" },
			failedFields: []string{FieldBirthday},
		},
		{
			name:         "birthday with impossible day",
			mutate:       func(d *models.UserDraft) { d.Birthday = "1999-02-30" },
			failedFields: []string{FieldBirthday},
		},
		{
			name:         "dotted birthday layout accepted",
			mutate:       func(d *models.UserDraft) { d.Birthday = "04.03.1999" },
			failedFields: nil,
		},
		{
			name: "avatar url never constrained",
			mutate: func(d *models.UserDraft) {
				d.AvatarURL = "definitely not a url \x00"
			},
			failedFields: nil,
		},
		{
			name: "all violations reported at once",
			mutate: func(d *models.UserDraft) {
				d.Name = "A"
				d.Email = "nope"
				d.Password = "123"
				d.Birthday = "yesterday"
			},
			failedFields: []string{FieldName, FieldEmail, FieldPassword, FieldBirthday},
		},
	}

	v := NewUserDraftValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := validDraft()
			tt.mutate(&draft)

			err := v.Validate(context.Background(), draft)

			if len(tt.failedFields) == 0 {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			fieldErrs, ok := AsFieldErrors(err)
			require.True(t, ok, "expected FieldErrors, got %T", err)
			assert.Len(t, fieldErrs, len(tt.failedFields))
			for _, field := range tt.failedFields {
				assert.Contains(t, fieldErrs, field)
			}
		})
	}
}

func TestUserDraftValidator_FieldScoping(t *testing.T) {
	v := NewUserDraftValidator()
	draft := validDraft()
	draft.Password = "123" // violates the password rule

	// only the name rule runs, so the short password goes unnoticed
	err := v.Validate(context.Background(), draft, FieldName)

	require.NoError(t, err)
}

func TestUserDraftValidator_Normalize(t *testing.T) {
	v := &UserDraftValidator{}

	got := v.Normalize(models.UserDraft{
		Name:      "  Ana Lee ",
		Email:     " ana@x.com ",
		Password:  " secret1 ",
		Birthday:  " 1999-03-04 ",
		AvatarURL: " /avatars/1.png ",
	})

	assert.Equal(t, models.UserDraft{
		Name:      "Ana Lee",
		Email:     "ana@x.com",
		Password:  "secret1",
		Birthday:  "1999-03-04",
		AvatarURL: "/avatars/1.png",
	}, got)
}
