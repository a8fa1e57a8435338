// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import (
	"fmt"

	"github.com/MKhiriev/ucip-keeper/models"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"
)

// UCIPCodec encodes and decodes [models.Context] documents.
//
// It is safe for concurrent use.
type UCIPCodec struct {
	strict bool
}

// NewUCIPCodec returns a codec. When strict is true, FromJSON rejects
// documents carrying keys that are not part of the schema.
func NewUCIPCodec(strict bool) *UCIPCodec {
	return &UCIPCodec{strict: strict}
}

// Encode returns the deterministic binary protobuf encoding of doc.
func (c *UCIPCodec) Encode(doc models.Context) ([]byte, error) {
	data, err := proto.MarshalOptions{Deterministic: true}.Marshal(c.ToMessage(doc))
	if err != nil {
		return nil, fmt.Errorf("error encoding context document: %w", err)
	}
	return data, nil
}

// Decode parses a binary protobuf encoding. Failures wrap ErrMalformedDocument.
func (c *UCIPCodec) Decode(data []byte) (models.Context, error) {
	msg := dynamicpb.NewMessage(UCIPDescriptor)
	if err := proto.Unmarshal(data, msg); err != nil {
		return models.Context{}, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}
	return c.FromMessage(msg)
}

// ToJSON renders doc in the protobuf JSON mapping: camelCase keys, default
// values omitted, multi-line output indented with two spaces.
func (c *UCIPCodec) ToJSON(doc models.Context) ([]byte, error) {
	data, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(c.ToMessage(doc))
	if err != nil {
		return nil, fmt.Errorf("error rendering context document: %w", err)
	}
	return data, nil
}

// FromJSON parses the protobuf JSON mapping of a document. Unset fields take
// their defaults. Unknown keys are ignored unless the codec is strict.
func (c *UCIPCodec) FromJSON(data []byte) (models.Context, error) {
	msg := dynamicpb.NewMessage(UCIPDescriptor)
	opts := protojson.UnmarshalOptions{DiscardUnknown: !c.strict}
	if err := opts.Unmarshal(data, msg); err != nil {
		return models.Context{}, fmt.Errorf("%w: %w", ErrInvalidDocumentJSON, err)
	}
	return c.FromMessage(msg)
}

// Validate checks that data is a well-formed binary UCIP document and
// returns its protobuf text rendering.
func (c *UCIPCodec) Validate(data []byte) (string, error) {
	msg := dynamicpb.NewMessage(UCIPDescriptor)
	if err := proto.Unmarshal(data, msg); err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}

	text, err := prototext.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(msg)
	if err != nil {
		return "", fmt.Errorf("error rendering context document: %w", err)
	}
	return string(text), nil
}

// ToMessage builds a dynamic UCIP message from doc. Only non-default values
// are set, so the result has the same presence as a message parsed from
// the document's encoding.
func (c *UCIPCodec) ToMessage(doc models.Context) *dynamicpb.Message {
	msg := dynamicpb.NewMessage(UCIPDescriptor)
	fields := UCIPDescriptor.Fields()

	setString(msg, fields.ByName("version"), doc.Version)
	setString(msg, fields.ByName("userId"), doc.UserID)
	setString(msg, fields.ByName("timestamp"), doc.Timestamp)

	if doc.Consent.Granted || len(doc.Consent.Scopes) > 0 {
		consent := msg.Mutable(fields.ByName("consent")).Message()
		consentFields := ConsentDescriptor.Fields()
		if doc.Consent.Granted {
			consent.Set(consentFields.ByName("granted"), protoreflect.ValueOfBool(true))
		}
		if len(doc.Consent.Scopes) > 0 {
			scopes := consent.Mutable(consentFields.ByName("scopes")).List()
			for _, scope := range doc.Consent.Scopes {
				scopes.Append(protoreflect.ValueOfString(scope))
			}
		}
	}

	if len(doc.Attributes) > 0 {
		attributes := msg.Mutable(fields.ByName("attributes")).Map()
		for k, v := range doc.Attributes {
			attributes.Set(protoreflect.ValueOfString(k).MapKey(), protoreflect.ValueOfString(v))
		}
	}

	return msg
}

// FromMessage converts a UCIP message into a document. Empty scopes and
// attributes are returned as nil.
func (c *UCIPCodec) FromMessage(msg protoreflect.Message) (models.Context, error) {
	if msg == nil || msg.Descriptor().FullName() != UCIPDescriptor.FullName() {
		return models.Context{}, fmt.Errorf("%w: not a %s message", ErrMalformedDocument, UCIPDescriptor.FullName())
	}

	fields := UCIPDescriptor.Fields()
	doc := models.Context{
		Version:   msg.Get(fields.ByName("version")).String(),
		UserID:    msg.Get(fields.ByName("userId")).String(),
		Timestamp: msg.Get(fields.ByName("timestamp")).String(),
	}

	if consentField := fields.ByName("consent"); msg.Has(consentField) {
		consent := msg.Get(consentField).Message()
		consentFields := ConsentDescriptor.Fields()
		doc.Consent.Granted = consent.Get(consentFields.ByName("granted")).Bool()

		scopes := consent.Get(consentFields.ByName("scopes")).List()
		if scopes.Len() > 0 {
			doc.Consent.Scopes = make([]string, 0, scopes.Len())
			for i := range scopes.Len() {
				doc.Consent.Scopes = append(doc.Consent.Scopes, scopes.Get(i).String())
			}
		}
	}

	attributes := msg.Get(fields.ByName("attributes")).Map()
	if attributes.Len() > 0 {
		doc.Attributes = make(map[string]string, attributes.Len())
		attributes.Range(func(k protoreflect.MapKey, v protoreflect.Value) bool {
			doc.Attributes[k.String()] = v.String()
			return true
		})
	}

	return doc, nil
}

func setString(msg *dynamicpb.Message, fd protoreflect.FieldDescriptor, value string) {
	if value != "" {
		msg.Set(fd, protoreflect.ValueOfString(value))
	}
}
