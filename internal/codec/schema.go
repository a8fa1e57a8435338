// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
)

// Fully-qualified names of the schema elements.
const (
	PackageName         = "ucip"
	ContextServiceName  = "ucip.ContextService"
	GetContextMethod    = "GetContext"
	UpdateContextMethod = "UpdateContext"
)

// Descriptors of the UCIP schema, identical to api/proto/ucip.proto. They are
// immutable and built once when the package is loaded.
var (
	File                            protoreflect.FileDescriptor
	UCIPDescriptor                  protoreflect.MessageDescriptor
	ConsentDescriptor               protoreflect.MessageDescriptor
	GetContextRequestDescriptor     protoreflect.MessageDescriptor
	UpdateContextRequestDescriptor  protoreflect.MessageDescriptor
	UpdateContextResponseDescriptor protoreflect.MessageDescriptor
	ContextServiceDescriptor        protoreflect.ServiceDescriptor
)

func init() {
	fd, err := buildFile()
	if err != nil {
		panic(fmt.Sprintf("codec: building ucip schema: %v", err))
	}

	File = fd
	msgs := fd.Messages()
	UCIPDescriptor = msgs.ByName("UCIP")
	ConsentDescriptor = msgs.ByName("Consent")
	GetContextRequestDescriptor = msgs.ByName("GetContextRequest")
	UpdateContextRequestDescriptor = msgs.ByName("UpdateContextRequest")
	UpdateContextResponseDescriptor = msgs.ByName("UpdateContextResponse")
	ContextServiceDescriptor = fd.Services().ByName("ContextService")
}

var (
	optional = descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum()
	repeated = descriptorpb.FieldDescriptorProto_LABEL_REPEATED.Enum()

	typeString  = descriptorpb.FieldDescriptorProto_TYPE_STRING.Enum()
	typeBool    = descriptorpb.FieldDescriptorProto_TYPE_BOOL.Enum()
	typeMessage = descriptorpb.FieldDescriptorProto_TYPE_MESSAGE.Enum()
)

func scalar(name string, number int32, typ *descriptorpb.FieldDescriptorProto_Type) *descriptorpb.FieldDescriptorProto {
	return &descriptorpb.FieldDescriptorProto{
		Name:   proto.String(name),
		Number: proto.Int32(number),
		Label:  optional,
		Type:   typ,
	}
}

func message(name string, number int32, typeName string) *descriptorpb.FieldDescriptorProto {
	return &descriptorpb.FieldDescriptorProto{
		Name:     proto.String(name),
		Number:   proto.Int32(number),
		Label:    optional,
		Type:     typeMessage,
		TypeName: proto.String(typeName),
	}
}

func buildFile() (protoreflect.FileDescriptor, error) {
	consent := &descriptorpb.DescriptorProto{
		Name: proto.String("Consent"),
		Field: []*descriptorpb.FieldDescriptorProto{
			scalar("granted", 1, typeBool),
			{
				Name:   proto.String("scopes"),
				Number: proto.Int32(2),
				Label:  repeated,
				Type:   typeString,
			},
		},
	}

	ucip := &descriptorpb.DescriptorProto{
		Name: proto.String("UCIP"),
		Field: []*descriptorpb.FieldDescriptorProto{
			scalar("version", 1, typeString),
			scalar("userId", 2, typeString),
			scalar("timestamp", 3, typeString),
			message("consent", 4, ".ucip.Consent"),
			{
				Name:     proto.String("attributes"),
				Number:   proto.Int32(5),
				Label:    repeated,
				Type:     typeMessage,
				TypeName: proto.String(".ucip.UCIP.AttributesEntry"),
			},
		},
		NestedType: []*descriptorpb.DescriptorProto{{
			Name: proto.String("AttributesEntry"),
			Field: []*descriptorpb.FieldDescriptorProto{
				scalar("key", 1, typeString),
				scalar("value", 2, typeString),
			},
			Options: &descriptorpb.MessageOptions{MapEntry: proto.Bool(true)},
		}},
	}

	getRequest := &descriptorpb.DescriptorProto{
		Name:  proto.String("GetContextRequest"),
		Field: []*descriptorpb.FieldDescriptorProto{scalar("user_id", 1, typeString)},
	}

	updateRequest := &descriptorpb.DescriptorProto{
		Name: proto.String("UpdateContextRequest"),
		Field: []*descriptorpb.FieldDescriptorProto{
			scalar("user_id", 1, typeString),
			message("context", 2, ".ucip.UCIP"),
		},
	}

	updateResponse := &descriptorpb.DescriptorProto{
		Name:  proto.String("UpdateContextResponse"),
		Field: []*descriptorpb.FieldDescriptorProto{scalar("message", 1, typeString)},
	}

	service := &descriptorpb.ServiceDescriptorProto{
		Name: proto.String("ContextService"),
		Method: []*descriptorpb.MethodDescriptorProto{
			{
				Name:       proto.String(GetContextMethod),
				InputType:  proto.String(".ucip.GetContextRequest"),
				OutputType: proto.String(".ucip.UCIP"),
			},
			{
				Name:       proto.String(UpdateContextMethod),
				InputType:  proto.String(".ucip.UpdateContextRequest"),
				OutputType: proto.String(".ucip.UpdateContextResponse"),
			},
		},
	}

	return protodesc.NewFile(&descriptorpb.FileDescriptorProto{
		Name:        proto.String("ucip.proto"),
		Package:     proto.String(PackageName),
		Syntax:      proto.String("proto3"),
		MessageType: []*descriptorpb.DescriptorProto{consent, ucip, getRequest, updateRequest, updateResponse},
		Service:     []*descriptorpb.ServiceDescriptorProto{service},
	}, nil)
}
