// Package codec converts context documents between their in-memory form
// ([models.Context]), the binary UCIP protobuf encoding that is encrypted
// and persisted, and the protobuf JSON mapping used at the HTTP boundary.
//
// The schema is described at runtime with descriptorpb and served through
// dynamicpb messages, so no generated code is needed. The same descriptors
// back the gRPC transport.
package codec
