package errors

import "fmt"

const (
	CodeUnknownAPI       = "UNKNOWN_API"
	CodeUnknownProvider  = "UNKNOWN_PROVIDER"
	CodeConflictingImage = "CONFLICTING_IMAGE"
	CodeCatalogInvalid   = "CATALOG_INVALID"
)

// Types ////////////////////////////////////////

type CodedError interface {
	Code() string
}

type codedError struct {
	code string
	msg  string
}

func (e *codedError) Error() string {
	return e.msg
}

func (e *codedError) Code() string {
	return e.code
}

// Error Creators ///////////////////////////////

// The named API is not part of the stack
func UnknownAPI(api string) error {
	return &codedError{
		code: CodeUnknownAPI,
		msg:  fmt.Sprintf("API `%s` is not a known stack API", api),
	}
}

// The provider id is not registered for the given API
func UnknownProvider(api string, provider string) error {
	return &codedError{
		code: CodeUnknownProvider,
		msg:  fmt.Sprintf("Provider `%s` is not available for API `%s`", provider, api),
	}
}

// More than one provider in a merge declared a container base image
func ConflictingImage(msg string) error {
	return &codedError{
		code: CodeConflictingImage,
		msg:  msg,
	}
}

// The provider catalog file failed validation
func CatalogInvalid(msg string) error {
	return &codedError{
		code: CodeCatalogInvalid,
		msg:  msg,
	}
}

// Helpers //////////////////////////////////////

func IsUnknownAPI(err error) bool {
	return Code(err) == CodeUnknownAPI
}

func IsUnknownProvider(err error) bool {
	return Code(err) == CodeUnknownProvider
}

func IsConflictingImage(err error) bool {
	return Code(err) == CodeConflictingImage
}

func IsCatalogInvalid(err error) bool {
	return Code(err) == CodeCatalogInvalid
}

// Return the error code, or the empty string
func Code(err error) string {
	if cerr, ok := err.(CodedError); ok {
		return cerr.Code()
	}
	return ""
}
