// Package validators contains validators found throughout the application
// that have been abstracted away from the main code
package validators

// FieldError is a single schema-level failure. Handlers collect these
// into the "errors" array of a 400 response
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"msg"`
}

func fieldErr(field string, err error) FieldError {
	return FieldError{Field: field, Message: err.Error()}
}
