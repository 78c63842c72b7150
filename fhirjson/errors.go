package fhirjson

import (
	"fmt"
	"strconv"
	"strings"
)

// ErrorKind classifies decoding errors.
//
// ErrorKind implements error, so the kind of a decoding error can be tested
// with errors.Is:
//
//	if errors.Is(err, fhirjson.AmbiguousChoice) { ... }
type ErrorKind int

const (
	// InvalidJSON means the input is not well-formed JSON.
	InvalidJSON ErrorKind = iota + 1
	// MissingRequiredField means a non-optional field has no matching wire key.
	MissingRequiredField
	// AmbiguousChoice means more than one variant key of a value[x] field is present.
	AmbiguousChoice
	// TypeMismatch means the wire type of a value disagrees with the declared type.
	TypeMismatch
	// MalformedMetadata means a "_name" sibling is not an object of id and extension.
	MalformedMetadata
	// UnknownResourceKind means the resourceType tag names no kind of the catalog.
	UnknownResourceKind
	// UnexpectedField means a key is not declared by the schema (strict mode only).
	UnexpectedField
	// DuplicateField means a key occurs twice in the same object.
	DuplicateField
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidJSON:
		return "invalid JSON"
	case MissingRequiredField:
		return "missing required field"
	case AmbiguousChoice:
		return "ambiguous choice"
	case TypeMismatch:
		return "type mismatch"
	case MalformedMetadata:
		return "malformed metadata"
	case UnknownResourceKind:
		return "unknown resource kind"
	case UnexpectedField:
		return "unexpected field"
	case DuplicateField:
		return "duplicate field"
	default:
		return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
}

func (k ErrorKind) Error() string {
	return k.String()
}

// Error is a decoding error located by its path from the root object.
type Error struct {
	Kind ErrorKind
	Path Path
	// Detail describes the offending input, e.g. the conflicting keys of an ambiguous choice.
	Detail string
	Err    error
}

func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Kind.String())
	if len(e.Path) > 0 {
		sb.WriteString(" at ")
		sb.WriteString(e.Path.String())
	}
	if e.Detail != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Detail)
	}
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}
	return sb.String()
}

// Is reports whether target is the kind of e.
func (e *Error) Is(target error) bool {
	k, ok := target.(ErrorKind)
	return ok && k == e.Kind
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind ErrorKind, path Path, format string, args ...any) *Error {
	detail := format
	if len(args) > 0 {
		detail = fmt.Sprintf(format, args...)
	}
	return &Error{Kind: kind, Path: path, Detail: detail}
}

// PathSegment is one step of a Path: a field name or, when Field is empty,
// an array index.
type PathSegment struct {
	Field string
	Index int
}

// Path locates a value from the root object, e.g. entry[0].resource.active.
// The root itself has the empty path.
type Path []PathSegment

// Field returns the path extended by a field name. p is not modified.
func (p Path) Field(name string) Path {
	return append(p[:len(p):len(p)], PathSegment{Field: name})
}

// Index returns the path extended by an array index. p is not modified.
func (p Path) Index(i int) Path {
	return append(p[:len(p):len(p)], PathSegment{Index: i})
}

func (p Path) String() string {
	var sb strings.Builder
	for i, s := range p {
		if s.Field == "" {
			sb.WriteByte('[')
			sb.WriteString(strconv.Itoa(s.Index))
			sb.WriteByte(']')
			continue
		}
		if i > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(s.Field)
	}
	return sb.String()
}
