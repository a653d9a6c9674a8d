package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-social-api/models"
	"github.com/google/uuid"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldTitle    = "title"
	FieldContent  = "content"
	FieldPostID   = "post_id"
	FieldUserID   = "user_id"
)

// SocialValidator implements [Validator] for the request models of the
// social API: RegisterRequest, LoginRequest, Post and PostUpdate.
//
// Both value and pointer forms are accepted. Optional field names restrict
// validation to the named subset; when omitted every field of the model is
// checked.
type SocialValidator struct{}

// NewSocialValidator constructs a new SocialValidator and returns it as the
// Validator interface.
func NewSocialValidator() Validator {
	return &SocialValidator{}
}

// Validate dispatches validation to the type-specific method matching obj.
// Returns ErrUnsupportedType if obj is not a supported model.
func (v *SocialValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(*value, fields...)
	case models.LoginRequest:
		return v.validateLoginRequest(value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(*value, fields...)
	case models.Post:
		return v.validatePost(value, fields...)
	case *models.Post:
		return v.validatePost(*value, fields...)
	case models.PostUpdate:
		return v.validatePostUpdate(value, fields...)
	case *models.PostUpdate:
		return v.validatePostUpdate(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *SocialValidator) validateRegisterRequest(request models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if isBlank(request.Name) {
				return ErrEmptyName
			}
		case FieldEmail:
			if isBlank(request.Email) {
				return ErrEmptyEmail
			}
		case FieldPassword:
			if request.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SocialValidator) validateLoginRequest(request models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if isBlank(request.Email) {
				return ErrEmptyEmail
			}
		case FieldPassword:
			if request.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SocialValidator) validatePost(post models.Post, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldTitle, FieldContent}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if post.UserID == uuid.Nil {
				return ErrInvalidUserID
			}
		case FieldTitle:
			if isBlank(post.Title) {
				return ErrEmptyTitle
			}
		case FieldContent:
			if isBlank(post.Content) {
				return ErrEmptyContent
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validatePostUpdate checks identifiers only. Title and content are optional
// in an update and may be set to any value, including empty strings.
func (v *SocialValidator) validatePostUpdate(update models.PostUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPostID, FieldUserID}
	}

	for _, f := range fields {
		switch f {
		case FieldPostID:
			if update.ID == uuid.Nil {
				return ErrInvalidPostID
			}
		case FieldUserID:
			if update.CallerID == uuid.Nil {
				return ErrInvalidUserID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
