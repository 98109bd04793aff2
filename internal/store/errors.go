package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same email already exists in the database.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrBlobNotFound is returned when the requested blob key does not exist
	// for the user.
	ErrBlobNotFound = errors.New("blob was not found")

	// ErrVersionConflict is returned when an optimistic-locking check fails:
	// the base version supplied by the client does not match the stored one,
	// meaning another device has modified the blob since the client last
	// synchronized.
	ErrVersionConflict = errors.New("blob version conflict occurred")

	// ErrProjectNotFound is returned for unknown local project IDs or names.
	ErrProjectNotFound = errors.New("project was not found")

	// ErrEnvironmentNotFound is returned for unknown local environment IDs or names.
	ErrEnvironmentNotFound = errors.New("environment was not found")

	// ErrEnvironmentAlreadyExists is returned when a project already has an
	// environment with the same name.
	ErrEnvironmentAlreadyExists = errors.New("environment already exists")

	// ErrRecordNotFound is returned when a record does not exist in the
	// given environment.
	ErrRecordNotFound = errors.New("record was not found")

	// ErrRecordAlreadyExists is returned when the key is already used in the
	// environment.
	ErrRecordAlreadyExists = errors.New("record already exists")

	// ErrSyncMetadataNotFound is returned when a project was never tracked.
	ErrSyncMetadataNotFound = errors.New("sync metadata was not found")

	// ErrVaultNotInitialized is returned by [VaultKeyRepository.GetVaultKey]
	// before the vault key was created.
	ErrVaultNotInitialized = errors.New("vault is not initialized")

	// ErrSessionNotFound is returned by [SessionStore.Load] when no session
	// was saved.
	ErrSessionNotFound = errors.New("session not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
