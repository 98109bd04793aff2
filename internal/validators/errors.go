package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName            = errors.New("name is required")
	ErrNameTooLong          = errors.New("name is too long")
	ErrInvalidEnvType       = errors.New("invalid environment type")
	ErrEmptyProjectID       = errors.New("project ID is required")
	ErrEmptyEnvironmentID   = errors.New("environment ID is required")
	ErrInvalidKey           = errors.New("invalid variable key")
	ErrEmptyEmail           = errors.New("email is required")
	ErrInvalidEmail         = errors.New("invalid email")
	ErrEmptyPassword        = errors.New("password is required")
	ErrEmptyBlobKey         = errors.New("blob key is required")
	ErrEmptyBlobData        = errors.New("blob data is required")
	ErrInvalidVersion       = errors.New("invalid version")
	ErrEmptyHash            = errors.New("hash is required")
	ErrUnsupportedBlobValue = errors.New("blob key contains unsupported characters")
)
