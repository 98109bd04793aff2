package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-env-keeper/internal/logger"
	"github.com/MKhiriev/go-env-keeper/models"
)

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type builder func() (string, []any, error)

// execBuilt builds and executes a DML statement and returns the number of
// affected rows.
func execBuilt(ctx context.Context, q querier, build builder) (int64, error) {
	query, args, err := build()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return affected, nil
}

// queryBuilt builds a SELECT and scans every row with scan.
func queryBuilt[T any](ctx context.Context, q querier, build builder, scan func(*sql.Rows) (T, error)) ([]T, error) {
	query, args, err := build()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	result := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		result = append(result, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return result, nil
}

func scanProject(rows *sql.Rows) (models.Project, error) {
	var p models.Project
	err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func scanEnvironment(rows *sql.Rows) (models.Environment, error) {
	var (
		e       models.Environment
		envType string
	)
	err := rows.Scan(&e.ID, &e.ProjectID, &e.Name, &envType, &e.CreatedAt, &e.UpdatedAt)
	e.Type = models.EnvironmentType(envType)
	return e, err
}

// ── projects ─────────────────────────────────────────────────────────────────

type localProjectRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalProjectRepository(db *DB, logger *logger.Logger) LocalProjectRepository {
	return &localProjectRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localProjectRepository) CreateProject(ctx context.Context, project models.Project) error {
	log := logger.FromContext(ctx)

	if _, err := execBuilt(ctx, l.DB, func() (string, []any, error) { return buildInsertProjectQuery(project) }); err != nil {
		log.Err(err).
			Str("func", "*localProjectRepository.CreateProject").
			Str("project_id", project.ID).
			Msg("failed to insert project")
		return fmt.Errorf("failed to create project: %w", err)
	}

	return nil
}

func (l *localProjectRepository) GetProject(ctx context.Context, projectID string) (models.Project, error) {
	return l.findOne(ctx, sq.Eq{"id": projectID})
}

// FindProjectByName returns the oldest project with the given name.
func (l *localProjectRepository) FindProjectByName(ctx context.Context, name string) (models.Project, error) {
	return l.findOne(ctx, sq.Eq{"name": name})
}

func (l *localProjectRepository) findOne(ctx context.Context, where sq.Sqlizer) (models.Project, error) {
	projects, err := queryBuilt(ctx, l.DB, func() (string, []any, error) { return buildSelectProjectsQuery(where) }, scanProject)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*localProjectRepository.findOne").Msg("failed to query project")
		return models.Project{}, err
	}
	if len(projects) == 0 {
		return models.Project{}, ErrProjectNotFound
	}
	return projects[0], nil
}

func (l *localProjectRepository) ListProjects(ctx context.Context) ([]models.Project, error) {
	projects, err := queryBuilt(ctx, l.DB, func() (string, []any, error) { return buildSelectProjectsQuery(nil) }, scanProject)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*localProjectRepository.ListProjects").Msg("failed to list projects")
		return nil, err
	}
	return projects, nil
}

func (l *localProjectRepository) TouchProject(ctx context.Context, projectID string, at time.Time) error {
	affected, err := execBuilt(ctx, l.DB, func() (string, []any, error) { return buildTouchProjectQuery(projectID, at) })
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*localProjectRepository.TouchProject").Msg("failed to touch project")
		return err
	}
	if affected == 0 {
		return ErrProjectNotFound
	}
	return nil
}

func (l *localProjectRepository) DeleteProject(ctx context.Context, projectID string) error {
	log := logger.FromContext(ctx)

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*localProjectRepository.DeleteProject").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	affected, err := deleteProjectTree(ctx, tx, projectID)
	if err != nil {
		log.Err(err).
			Str("func", "*localProjectRepository.DeleteProject").
			Str("project_id", projectID).
			Msg("failed to delete project")
		return err
	}
	if affected == 0 {
		return ErrProjectNotFound
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*localProjectRepository.DeleteProject").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// deleteProjectTree removes records, environments and the project row and
// reports how many project rows were deleted.
func deleteProjectTree(ctx context.Context, q querier, projectID string) (int64, error) {
	if _, err := execBuilt(ctx, q, func() (string, []any, error) { return buildDeleteProjectRecordsQuery(projectID) }); err != nil {
		return 0, err
	}
	if _, err := execBuilt(ctx, q, func() (string, []any, error) { return buildDeleteProjectEnvironmentsQuery(projectID) }); err != nil {
		return 0, err
	}
	return execBuilt(ctx, q, func() (string, []any, error) { return buildDeleteProjectQuery(projectID) })
}

func (l *localProjectRepository) LoadProject(ctx context.Context, projectID string) (models.StoredProject, error) {
	log := logger.FromContext(ctx)

	project, err := l.GetProject(ctx, projectID)
	if err != nil {
		return models.StoredProject{}, err
	}

	envs, err := queryBuilt(ctx, l.DB, func() (string, []any, error) {
		return buildSelectEnvironmentsQuery(sq.Eq{"project_id": projectID})
	}, scanEnvironment)
	if err != nil {
		log.Err(err).Str("func", "*localProjectRepository.LoadProject").Msg("failed to load environments")
		return models.StoredProject{}, err
	}

	stored := models.StoredProject{Project: project, Environments: make([]models.StoredEnvironment, 0, len(envs))}
	for _, env := range envs {
		records, err := queryBuilt(ctx, l.DB, func() (string, []any, error) {
			return buildSelectRecordsQuery(sq.Eq{"environment_id": env.ID})
		}, scanRecord)
		if err != nil {
			log.Err(err).
				Str("func", "*localProjectRepository.LoadProject").
				Str("environment_id", env.ID).
				Msg("failed to load records")
			return models.StoredProject{}, err
		}
		stored.Environments = append(stored.Environments, models.StoredEnvironment{Environment: env, Records: records})
	}

	return stored, nil
}

// ReplaceProject wipes the subtree of the project and writes the given one
// inside a single transaction.
func (l *localProjectRepository) ReplaceProject(ctx context.Context, project models.StoredProject) error {
	log := logger.FromContext(ctx)
	projectID := project.Project.ID

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*localProjectRepository.ReplaceProject").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	steps := []builder{
		func() (string, []any, error) { return buildUpsertProjectQuery(project.Project) },
		func() (string, []any, error) { return buildDeleteProjectRecordsQuery(projectID) },
		func() (string, []any, error) { return buildDeleteProjectEnvironmentsQuery(projectID) },
	}
	for _, env := range project.Environments {
		steps = append(steps, func() (string, []any, error) { return buildInsertEnvironmentQuery(env.Environment) })
		for _, record := range env.Records {
			steps = append(steps, func() (string, []any, error) { return buildInsertRecordQuery(record) })
		}
	}

	for idx, step := range steps {
		if _, err = execBuilt(ctx, tx, step); err != nil {
			log.Err(err).
				Str("func", "*localProjectRepository.ReplaceProject").
				Str("project_id", projectID).
				Int("step", idx).
				Msg("failed to replace project")
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*localProjectRepository.ReplaceProject").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Debug().
		Str("func", "*localProjectRepository.ReplaceProject").
		Str("project_id", projectID).
		Int("environments", len(project.Environments)).
		Msg("project replaced")

	return nil
}

// ── environments ─────────────────────────────────────────────────────────────

type localEnvironmentRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalEnvironmentRepository(db *DB, logger *logger.Logger) LocalEnvironmentRepository {
	return &localEnvironmentRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localEnvironmentRepository) CreateEnvironment(ctx context.Context, env models.Environment) error {
	_, err := execBuilt(ctx, l.DB, func() (string, []any, error) { return buildInsertEnvironmentQuery(env) })
	if err != nil {
		if sqliteUniqueViolation(err) {
			return ErrEnvironmentAlreadyExists
		}
		logger.FromContext(ctx).Err(err).
			Str("func", "*localEnvironmentRepository.CreateEnvironment").
			Str("project_id", env.ProjectID).
			Msg("failed to insert environment")
		return fmt.Errorf("failed to create environment: %w", err)
	}
	return nil
}

func (l *localEnvironmentRepository) GetEnvironment(ctx context.Context, environmentID string) (models.Environment, error) {
	return l.findOne(ctx, sq.Eq{"id": environmentID})
}

func (l *localEnvironmentRepository) FindEnvironmentByName(ctx context.Context, projectID, name string) (models.Environment, error) {
	return l.findOne(ctx, sq.And{sq.Eq{"project_id": projectID}, sq.Expr("name = ? COLLATE NOCASE", name)})
}

func (l *localEnvironmentRepository) findOne(ctx context.Context, where sq.Sqlizer) (models.Environment, error) {
	envs, err := queryBuilt(ctx, l.DB, func() (string, []any, error) { return buildSelectEnvironmentsQuery(where) }, scanEnvironment)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*localEnvironmentRepository.findOne").Msg("failed to query environment")
		return models.Environment{}, err
	}
	if len(envs) == 0 {
		return models.Environment{}, ErrEnvironmentNotFound
	}
	return envs[0], nil
}

func (l *localEnvironmentRepository) ListEnvironments(ctx context.Context, projectID string) ([]models.Environment, error) {
	envs, err := queryBuilt(ctx, l.DB, func() (string, []any, error) {
		return buildSelectEnvironmentsQuery(sq.Eq{"project_id": projectID})
	}, scanEnvironment)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*localEnvironmentRepository.ListEnvironments").Msg("failed to list environments")
		return nil, err
	}
	return envs, nil
}

func (l *localEnvironmentRepository) DeleteEnvironment(ctx context.Context, environmentID string) error {
	log := logger.FromContext(ctx)

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = execBuilt(ctx, tx, func() (string, []any, error) { return buildDeleteEnvironmentRecordsQuery(environmentID) }); err != nil {
		log.Err(err).Str("func", "*localEnvironmentRepository.DeleteEnvironment").Msg("failed to delete records")
		return err
	}
	affected, err := execBuilt(ctx, tx, func() (string, []any, error) { return buildDeleteEnvironmentQuery(environmentID) })
	if err != nil {
		log.Err(err).Str("func", "*localEnvironmentRepository.DeleteEnvironment").Msg("failed to delete environment")
		return err
	}
	if affected == 0 {
		return ErrEnvironmentNotFound
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}
