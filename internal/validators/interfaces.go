// Package validators checks user input before it reaches storage: project
// and environment names, variable keys, account credentials and blob uploads.
package validators

import "context"

// Validator checks v. When fields are given only those fields are checked,
// see the Field* constants.
type Validator interface {
	Validate(ctx context.Context, v any, fields ...string) error
}
