package validators

import (
	"context"
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-env-keeper/models"
)

// Field name constants used to specify which fields should be validated.
// They are passed to Validate to restrict validation to a subset of fields.
const (
	// FieldName targets the display name of a project or environment.
	FieldName = "name"

	// FieldEnvType targets the environment type.
	FieldEnvType = "env_type"

	// FieldProjectID targets the owning project of an environment.
	FieldProjectID = "project_id"

	// FieldKey targets the key of a variable.
	FieldKey = "key"

	// FieldEmail targets the login of an account.
	FieldEmail = "email"

	// FieldPassword targets the plaintext password of an auth request.
	FieldPassword = "password"

	// FieldBlobKey targets the key of an uploaded blob.
	FieldBlobKey = "blob_key"

	// FieldBlobData targets the ciphertext and nonce of an uploaded blob.
	FieldBlobData = "blob_data"

	// FieldBaseVersion targets the optimistic-locking version of an upload.
	FieldBaseVersion = "base_version"

	// FieldHash targets the integrity hash of an upload.
	FieldHash = "hash"
)

// MaxNameLength bounds project and environment names, in runes.
const MaxNameLength = 128

// variableKeyPattern accepts POSIX-style names plus dots and dashes, which
// many .env files use.
var variableKeyPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.\-]*$`)

var allowedEnvTypes = []models.EnvironmentType{
	models.EnvironmentDevelopment,
	models.EnvironmentStaging,
	models.EnvironmentProduction,
	models.EnvironmentCustom,
}

// VaultValidator implements Validator for the vault models and the
// requests of the sync server: Project, Environment, Record, User and
// BlobPutRequest.
//
// It supports both value and pointer receivers for every model type and
// allows optional field-level scoping via variadic field name arguments.
type VaultValidator struct{}

// NewVaultValidator constructs a new VaultValidator and returns it as the
// Validator interface.
func NewVaultValidator() Validator {
	return &VaultValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj.
//
// Returns ErrUnsupportedType if obj does not match any known model.
// Optional fields restrict validation to the named subset; when omitted,
// a default set of fields is validated.
func (v *VaultValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Project:
		return v.validateProject(value, fields...)
	case *models.Project:
		return v.validateProject(*value, fields...)

	case models.Environment:
		return v.validateEnvironment(value, fields...)
	case *models.Environment:
		return v.validateEnvironment(*value, fields...)

	case models.Record:
		return v.validateRecord(value, fields...)
	case *models.Record:
		return v.validateRecord(*value, fields...)

	case models.User:
		return v.validateUser(value, fields...)
	case *models.User:
		return v.validateUser(*value, fields...)

	case models.BlobPutRequest:
		return v.validateBlobPutRequest(value, fields...)
	case *models.BlobPutRequest:
		return v.validateBlobPutRequest(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return ErrNameTooLong
	}
	return nil
}

// validateProject checks FieldName by default.
func (v *VaultValidator) validateProject(project models.Project, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if err := validateName(project.Name); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

// validateEnvironment checks FieldProjectID, FieldName and FieldEnvType by
// default.
func (v *VaultValidator) validateEnvironment(env models.Environment, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldProjectID, FieldName, FieldEnvType}
	}

	for _, f := range fields {
		switch f {
		case FieldProjectID:
			if env.ProjectID == "" {
				return ErrEmptyProjectID
			}
		case FieldName:
			if err := validateName(env.Name); err != nil {
				return err
			}
		case FieldEnvType:
			if !isAllowedEnvType(env.Type) {
				return ErrInvalidEnvType
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func isAllowedEnvType(t models.EnvironmentType) bool {
	for _, allowed := range allowedEnvTypes {
		if t == allowed {
			return true
		}
	}
	return false
}

// validateRecord checks FieldKey by default. Values are free-form.
func (v *VaultValidator) validateRecord(record models.Record, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldKey}
	}

	for _, f := range fields {
		switch f {
		case FieldKey:
			if !variableKeyPattern.MatchString(record.Key) {
				return ErrInvalidKey
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

// validateUser checks FieldEmail and FieldPassword by default.
func (v *VaultValidator) validateUser(user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if strings.TrimSpace(user.Email) == "" {
				return ErrEmptyEmail
			}
			if _, err := mail.ParseAddress(user.Email); err != nil {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if user.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

// validateBlobPutRequest checks FieldBlobKey, FieldBlobData and
// FieldBaseVersion by default. FieldHash is only checked on request.
func (v *VaultValidator) validateBlobPutRequest(req models.BlobPutRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldBlobKey, FieldBlobData, FieldBaseVersion}
	}

	for _, f := range fields {
		switch f {
		case FieldBlobKey:
			if strings.TrimSpace(req.Key) == "" {
				return ErrEmptyBlobKey
			}
			if strings.ContainsAny(req.Key, "\x00\n\r") || strings.HasPrefix(req.Key, "/") {
				return ErrUnsupportedBlobValue
			}
		case FieldBlobData:
			if req.Data == "" || req.Nonce == "" {
				return ErrEmptyBlobData
			}
		case FieldBaseVersion:
			if req.BaseVersion < 0 {
				return ErrInvalidVersion
			}
		case FieldHash:
			if req.Hash == "" {
				return ErrEmptyHash
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}
