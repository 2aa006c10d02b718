package visit

// Source-location path tags, mirroring the field numbers declared in
// descriptor.proto. These are the int32 tags protobuf uses to cite a
// location inside a FileDescriptorProto; protoident.JoinPath
// concatenates them into a full path.
const (
	FileTagPackage          = 2
	FileTagDependency       = 3
	FileTagMessageType      = 4
	FileTagEnumType         = 5
	FileTagService          = 6
	FileTagExtension        = 7
	FileTagPublicDependency = 10
	FileTagWeakDependency   = 11
	FileTagSyntax           = 12

	MessageTagName           = 1
	MessageTagField          = 2
	MessageTagNestedType     = 3
	MessageTagEnumType       = 4
	MessageTagExtensionRange = 5
	MessageTagExtension      = 6
	MessageTagOneofDecl      = 8
	MessageTagReservedRange  = 9

	FieldTagName          = 1
	FieldTagExtendee      = 2
	FieldTagNumber        = 3
	FieldTagType          = 5
	FieldTagTypeName      = 6
	FieldTagDefaultValue  = 7
	FieldTagOneofIndex    = 9

	OneofTagName = 1

	EnumTagName          = 1
	EnumTagValue         = 2
	EnumTagReservedRange = 4

	EnumValueTagName   = 1
	EnumValueTagNumber = 2

	ServiceTagName   = 1
	ServiceTagMethod = 2

	MethodTagName       = 1
	MethodTagInputType  = 2
	MethodTagOutputType = 3
)
