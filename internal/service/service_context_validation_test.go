package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/ucip-keeper/internal/mock"
	"github.com/MKhiriev/ucip-keeper/internal/validators"
	"github.com/MKhiriev/ucip-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestValidationSvc(t *testing.T, ctrl *gomock.Controller) (ContextService, *mock.MockContextService) {
	t.Helper()
	inner := mock.NewMockContextService(ctrl)
	return NewContextValidationService().Wrap(inner), inner
}

func TestContextValidationService_UpdateContext_PassesValidDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, inner := newTestValidationSvc(t, ctrl)

	inner.EXPECT().UpdateContext(gomock.Any(), "alice", sampleContext()).Return(nil)

	require.NoError(t, svc.UpdateContext(context.Background(), "alice", sampleContext()))
}

func TestContextValidationService_UpdateContext_FillsEmptyUserID(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, inner := newTestValidationSvc(t, ctrl)

	doc := sampleContext()
	doc.UserID = ""

	inner.EXPECT().UpdateContext(gomock.Any(), "alice", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, got models.Context) error {
			assert.Equal(t, "alice", got.UserID)
			return nil
		})

	require.NoError(t, svc.UpdateContext(context.Background(), "alice", doc))
}

func TestContextValidationService_UpdateContext_KeepsTimestampAsSent(t *testing.T) {
	timestamps := []string{
		"2025-07-21T12:00:00Z",
		"2025-07-21T12:00:00",
		"2025-07-21",
		"2025-07-21T12:00:00+0000",
		"20250721T120000Z",
	}

	for _, ts := range timestamps {
		t.Run(ts, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, inner := newTestValidationSvc(t, ctrl)

			doc := sampleContext()
			doc.Timestamp = ts
			inner.EXPECT().UpdateContext(gomock.Any(), "alice", doc).Return(nil)

			require.NoError(t, svc.UpdateContext(context.Background(), "alice", doc))
		})
	}
}

func TestContextValidationService_UpdateContext_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		userID  string
		mutate  func(doc *models.Context)
		wantErr error
	}{
		{
			name:    "consent not granted",
			userID:  "alice",
			mutate:  func(doc *models.Context) { doc.Consent.Granted = false },
			wantErr: ErrConsentRequired,
		},
		{
			name:    "consent absent",
			userID:  "alice",
			mutate:  func(doc *models.Context) { doc.Consent = models.Consent{} },
			wantErr: ErrConsentRequired,
		},
		{
			name:    "document owned by someone else",
			userID:  "alice",
			mutate:  func(doc *models.Context) { doc.UserID = "bob" },
			wantErr: ErrUserIDMismatch,
		},
		{
			name:    "empty path identity",
			userID:  "",
			mutate:  func(doc *models.Context) {},
			wantErr: ErrEmptyUserID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			// inner has no expectations: any call fails the test
			svc, _ := newTestValidationSvc(t, ctrl)

			doc := sampleContext()
			tt.mutate(&doc)

			err := svc.UpdateContext(context.Background(), tt.userID, doc)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrInvalidRequest)
		})
	}
}

func TestContextValidationService_GetContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, inner := newTestValidationSvc(t, ctrl)

	inner.EXPECT().GetContext(gomock.Any(), "alice").Return(sampleContext(), nil)
	inner.EXPECT().GetContext(gomock.Any(), "ghost").Return(models.Context{}, errors.New("boom"))

	doc, err := svc.GetContext(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, sampleContext(), doc)

	_, err = svc.GetContext(context.Background(), "ghost")
	assert.EqualError(t, err, "boom")

	_, err = svc.GetContext(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyUserID)
}

func TestMapValidationError(t *testing.T) {
	assert.ErrorIs(t, mapValidationError(validators.ErrConsentRequired), ErrConsentRequired)
	assert.ErrorIs(t, mapValidationError(validators.ErrInvalidPayload), ErrInvalidRequest)

	err := mapValidationError(validators.ErrUnknownField)
	assert.ErrorIs(t, err, ErrInvalidRequest)
	assert.ErrorIs(t, err, validators.ErrUnknownField)
}
