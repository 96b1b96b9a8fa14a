package validators

import (
	"context"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/mkhayatov/go-user-manager/models"
)

// Field name constants used to specify which fields should be validated.
// They double as keys of the FieldErrors map rendered next to the form.
const (
	// FieldName targets the display name of a user draft.
	FieldName = "name"

	// FieldEmail targets the contact address of a user draft.
	FieldEmail = "email"

	// FieldPassword targets the plain-text password of a user draft.
	FieldPassword = "password"

	// FieldBirthday targets the textual birth date of a user draft.
	FieldBirthday = "birthday"
)

// birthdayLayouts lists the date forms accepted by the birthday rule.
var birthdayLayouts = []string{
	time.DateOnly,
	"02.01.2006",
}

// UserDraftValidator implements the Validator interface for [models.UserDraft].
//
// Rules:
//   - name: at least 2 characters after trimming;
//   - email: standard address grammar (a bare address, not a display-name form);
//   - password: at least 6 characters;
//   - birthday: parses as a calendar date in one of birthdayLayouts.
//
// The avatar URL is unconstrained: any text, including absent.
// Validation is pure and synchronous; all violations are surfaced at once as
// a [FieldErrors] value.
type UserDraftValidator struct {
}

// NewUserDraftValidator constructs a new UserDraftValidator.
func NewUserDraftValidator() *UserDraftValidator {
	return &UserDraftValidator{}
}

// Validate dispatches validation based on the dynamic type of obj. Both value
// and pointer forms of [models.UserDraft] are accepted. Optional fields
// restrict validation to the named subset; when omitted, every rule runs.
//
// Returns ErrUnsupportedType if obj is not a user draft, a [FieldErrors]
// value when at least one rule is violated, and nil otherwise.
func (v *UserDraftValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.UserDraft:
		return v.validateDraft(ctx, value, fields...)
	case *models.UserDraft:
		return v.validateDraft(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

// Normalize returns a copy of the draft with surrounding whitespace removed
// from every field. This is the normalized shape that a successful Validate
// call vouches for.
func (v *UserDraftValidator) Normalize(draft models.UserDraft) models.UserDraft {
	return models.UserDraft{
		Name:      strings.TrimSpace(draft.Name),
		Email:     strings.TrimSpace(draft.Email),
		Password:  strings.TrimSpace(draft.Password),
		Birthday:  strings.TrimSpace(draft.Birthday),
		AvatarURL: strings.TrimSpace(draft.AvatarURL),
	}
}

func (v *UserDraftValidator) validateDraft(_ context.Context, draft models.UserDraft, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldPassword, FieldBirthday}
	}

	draft = v.Normalize(draft)
	errs := FieldErrors{}

	for _, field := range fields {
		switch field {
		case FieldName:
			if utf8.RuneCountInString(draft.Name) < 2 {
				errs[FieldName] = "минимум 2 символа"
			}
		case FieldEmail:
			if !isValidEmail(draft.Email) {
				errs[FieldEmail] = "некорректный адрес"
			}
		case FieldPassword:
			if utf8.RuneCountInString(draft.Password) < 6 {
				errs[FieldPassword] = "минимум 6 символов"
			}
		case FieldBirthday:
			if !isValidBirthday(draft.Birthday) {
				errs[FieldBirthday] = "неверная дата"
			}
		default:
			return ErrUnknownField
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// isValidEmail accepts bare addresses only: "user@host" passes,
// "Name <user@host>" does not.
func isValidEmail(email string) bool {
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	return addr.Address == email
}

func isValidBirthday(birthday string) bool {
	if birthday == "" {
		return false
	}
	for _, layout := range birthdayLayouts {
		if _, err := time.Parse(layout, birthday); err == nil {
			return true
		}
	}
	return false
}
