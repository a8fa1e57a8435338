package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/ucip-keeper/internal/validators"
	"github.com/MKhiriev/ucip-keeper/models"
)

// ContextValidationService is a [ContextServiceWrapper] that rejects
// documents which must not be persisted before they reach the inner service.
//
// On the write path it requires a granted consent and binds the document to
// the owner: an empty userId is filled with the requested identity, a
// different one is rejected. The timestamp is stored as sent.
type ContextValidationService struct {
	inner     ContextService
	validator validators.Validator
}

func NewContextValidationService() ContextServiceWrapper {
	return &ContextValidationService{
		validator: validators.NewContextValidator(),
	}
}

func (v *ContextValidationService) GetContext(ctx context.Context, userID string) (models.Context, error) {
	if userID == "" {
		return models.Context{}, ErrEmptyUserID
	}

	return v.inner.GetContext(ctx, userID)
}

func (v *ContextValidationService) UpdateContext(ctx context.Context, userID string, doc models.Context) error {
	if userID == "" {
		return ErrEmptyUserID
	}

	if err := v.validator.Validate(ctx, doc, validators.FieldConsent); err != nil {
		return fmt.Errorf("error during context validation before saving: %w", mapValidationError(err))
	}

	switch doc.UserID {
	case "":
		doc.UserID = userID
	case userID:
	default:
		return ErrUserIDMismatch
	}

	return v.inner.UpdateContext(ctx, userID, doc)
}

func (v *ContextValidationService) Wrap(wrapper ContextService) ContextService {
	v.inner = wrapper
	return v
}

func mapValidationError(err error) error {
	switch {
	case errors.Is(err, validators.ErrConsentRequired):
		return ErrConsentRequired
	default:
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
}
