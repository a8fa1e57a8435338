package validators

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/MKhiriev/ucip-keeper/models"
)

// FieldConsent selects the rule requiring consent.granted to be true.
//
// The other document fields are stored as given: timestamp is an opaque
// ISO-8601 string and the owner identity comes from the request path.
const FieldConsent = "consent"

// ContextValidator implements [Validator] for context documents.
//
// Supported types:
//   - json.RawMessage / []byte: the raw JSON body of a write; only the
//     consent rule applies
//   - models.Context / *models.Context: a decoded document
type ContextValidator struct {
}

// NewContextValidator constructs a new ContextValidator
// and returns it as the Validator interface.
func NewContextValidator() Validator {
	return &ContextValidator{}
}

func (v *ContextValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case json.RawMessage:
		return v.validateRawPayload(value)
	case []byte:
		return v.validateRawPayload(value)

	case models.Context:
		return v.validateContext(value, fields...)
	case *models.Context:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateContext(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateRawPayload checks that payload is a JSON object whose "consent"
// member is an object whose "granted" member is the literal true.
func (v *ContextValidator) validateRawPayload(payload []byte) error {
	var document map[string]json.RawMessage
	if err := json.Unmarshal(payload, &document); err != nil || document == nil {
		return ErrInvalidPayload
	}

	var consent map[string]json.RawMessage
	if err := json.Unmarshal(document["consent"], &consent); err != nil || consent == nil {
		return ErrConsentRequired
	}

	if !bytes.Equal(bytes.TrimSpace(consent["granted"]), []byte("true")) {
		return ErrConsentRequired
	}

	return nil
}

// validateContext validates a decoded document. With no fields every rule
// runs.
func (v *ContextValidator) validateContext(doc models.Context, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldConsent}
	}

	for _, f := range fields {
		switch f {
		case FieldConsent:
			if !doc.Consent.Granted {
				return ErrConsentRequired
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
