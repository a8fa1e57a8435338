package grpc

import (
	"context"
	"fmt"

	"github.com/MKhiriev/ucip-keeper/internal/codec"
	"github.com/MKhiriev/ucip-keeper/internal/service"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"
)

// GetContext returns the document of the user named in the request. The
// bearer token is read from the "authorization" metadata.
func (h *Handler) GetContext(ctx context.Context, req *dynamicpb.Message) (*dynamicpb.Message, error) {
	userID := req.Get(codec.GetContextRequestDescriptor.Fields().ByName("user_id")).String()

	if err := h.authorize(ctx, userID); err != nil {
		return nil, toStatus(ctx, err)
	}

	doc, err := h.services.ContextService.GetContext(ctx, userID)
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	return h.codec.ToMessage(doc), nil
}

// UpdateContext stores the document carried in the request. A missing
// document is treated as a document without consent. An empty user_id in
// the document is filled from the request; a different one is
// InvalidArgument.
func (h *Handler) UpdateContext(ctx context.Context, req *dynamicpb.Message) (*dynamicpb.Message, error) {
	fields := codec.UpdateContextRequestDescriptor.Fields()
	userID := req.Get(fields.ByName("user_id")).String()

	if err := h.authorize(ctx, userID); err != nil {
		return nil, toStatus(ctx, err)
	}

	if !req.Has(fields.ByName("context")) {
		return nil, toStatus(ctx, service.ErrConsentRequired)
	}

	doc, err := h.codec.FromMessage(req.Get(fields.ByName("context")).Message())
	if err != nil {
		return nil, toStatus(ctx, fmt.Errorf("%w: %w", service.ErrInvalidRequest, err))
	}

	if err = h.services.ContextService.UpdateContext(ctx, userID, doc); err != nil {
		return nil, toStatus(ctx, err)
	}

	resp := dynamicpb.NewMessage(codec.UpdateContextResponseDescriptor)
	resp.Set(codec.UpdateContextResponseDescriptor.Fields().ByName("message"), protoreflect.ValueOfString("Updated"))
	return resp, nil
}
