package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-env-keeper/internal/crypto"
	"github.com/MKhiriev/go-env-keeper/internal/logger"
	"github.com/MKhiriev/go-env-keeper/internal/store"
	"github.com/MKhiriev/go-env-keeper/internal/utils"
	"github.com/MKhiriev/go-env-keeper/internal/validators"
	"github.com/MKhiriev/go-env-keeper/models"
)

// clientVaultService is the local vault. Values are stored encrypted with
// per-environment subkeys; every mutation bumps the owning project's sync
// metadata so the next sync pushes it.
type clientVaultService struct {
	projects     store.LocalProjectRepository
	environments store.LocalEnvironmentRepository
	records      store.LocalRecordRepository
	syncMetadata store.SyncMetadataRepository
	vaultKeys    store.VaultKeyRepository

	keyChain  crypto.KeyChainService
	cipher    ClientCryptoService
	promotion PromotionService
	validator validators.Validator

	ids *utils.UUIDGenerator
	now func() time.Time

	logger *logger.Logger
}

// NewClientVaultService wires the vault over the local storages. The
// returned service is locked until Unlock succeeds.
func NewClientVaultService(storages *store.ClientStorages, keyChain crypto.KeyChainService, cipher ClientCryptoService, logger *logger.Logger) ClientVaultService {
	v := &clientVaultService{
		projects:     storages.ProjectRepository,
		environments: storages.EnvironmentRepository,
		records:      storages.RecordRepository,
		syncMetadata: storages.SyncMetadataRepository,
		vaultKeys:    storages.VaultKeyRepository,
		keyChain:     keyChain,
		cipher:       cipher,
		validator:    validators.NewVaultValidator(),
		ids:          utils.NewUUIDGenerator(),
		now:          func() time.Time { return time.Now().UTC() },
		logger:       logger,
	}
	v.promotion = NewPromotionService(v, cipher)
	return v
}

// ── key management ──────────────────────────────────────────────────────────

// Unlock implements [ClientVaultService].
func (v *clientVaultService) Unlock(ctx context.Context, masterPassword string) error {
	log := logger.FromContext(ctx)

	if masterPassword == "" {
		return ErrInvalidDataProvided
	}

	vaultKey, err := v.vaultKeys.GetVaultKey(ctx)
	if errors.Is(err, store.ErrVaultNotInitialized) {
		return v.initVault(ctx, masterPassword)
	}
	if err != nil {
		log.Err(err).Str("func", "*clientVaultService.Unlock").Msg("error loading vault key")
		return fmt.Errorf("load vault key: %w", err)
	}

	KEK := v.keyChain.GenerateKEK(masterPassword, vaultKey.Salt)
	DEK, err := v.keyChain.UnwrapDEK(vaultKey.EncryptedDEK, KEK)
	if err != nil {
		if errors.Is(err, crypto.ErrDecryption) {
			return ErrWrongPassword
		}
		return fmt.Errorf("unwrap DEK: %w", err)
	}

	v.cipher.SetEncryptionKey(DEK)
	return nil
}

// initVault creates the key material of a new vault:
// salt + random DEK, wrapped by the Argon2id KEK of masterPassword.
func (v *clientVaultService) initVault(ctx context.Context, masterPassword string) error {
	log := logger.FromContext(ctx)

	salt, err := v.keyChain.GenerateEncryptionSalt()
	if err != nil {
		return fmt.Errorf("generate salt: %w", err)
	}
	DEK, err := v.keyChain.GenerateDEK()
	if err != nil {
		return fmt.Errorf("generate DEK: %w", err)
	}

	KEK := v.keyChain.GenerateKEK(masterPassword, salt)
	encryptedDEK, err := v.keyChain.WrapDEK(DEK, KEK)
	if err != nil {
		return fmt.Errorf("wrap DEK: %w", err)
	}

	if err = v.vaultKeys.SaveVaultKey(ctx, models.VaultKey{Salt: salt, EncryptedDEK: encryptedDEK, CreatedAt: v.now()}); err != nil {
		log.Err(err).Str("func", "*clientVaultService.initVault").Msg("error saving vault key")
		return fmt.Errorf("save vault key: %w", err)
	}

	log.Info().Msg("local vault initialised")
	v.cipher.SetEncryptionKey(DEK)
	return nil
}

func (v *clientVaultService) Lock() {
	v.cipher.ClearEncryptionKey()
}

func (v *clientVaultService) IsUnlocked() bool {
	return v.cipher.HasEncryptionKey()
}

// ── projects ────────────────────────────────────────────────────────────────

func (v *clientVaultService) CreateProject(ctx context.Context, name, description string) (models.Project, error) {
	log := logger.FromContext(ctx)

	now := v.now()
	project := models.Project{
		ID:          v.ids.Generate(),
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := v.validator.Validate(ctx, project); err != nil {
		return models.Project{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if _, err := v.projects.FindProjectByName(ctx, project.Name); err == nil {
		return models.Project{}, fmt.Errorf("%w: %s", ErrProjectAlreadyExists, project.Name)
	} else if !errors.Is(err, store.ErrProjectNotFound) {
		return models.Project{}, fmt.Errorf("find project: %w", err)
	}

	if err := v.projects.CreateProject(ctx, project); err != nil {
		log.Err(err).Str("func", "*clientVaultService.CreateProject").Str("name", project.Name).Msg("error creating project")
		return models.Project{}, fmt.Errorf("create project: %w", err)
	}
	if err := v.syncMetadata.MarkDirty(ctx, project.ID, now); err != nil {
		return models.Project{}, fmt.Errorf("mark project dirty: %w", err)
	}

	return project, nil
}

func (v *clientVaultService) ListProjects(ctx context.Context) ([]models.Project, error) {
	return v.projects.ListProjects(ctx)
}

func (v *clientVaultService) GetProject(ctx context.Context, projectID string) (models.Project, error) {
	return v.projects.GetProject(ctx, projectID)
}

func (v *clientVaultService) FindProject(ctx context.Context, idOrName string) (models.Project, error) {
	if utils.IsUUID(idOrName) {
		project, err := v.projects.GetProject(ctx, idOrName)
		if err == nil || !errors.Is(err, store.ErrProjectNotFound) {
			return project, err
		}
	}
	return v.projects.FindProjectByName(ctx, strings.TrimSpace(idOrName))
}

// DeleteProject removes the project locally and leaves its sync metadata
// dirty, so the next sync deletes the remote copy.
func (v *clientVaultService) DeleteProject(ctx context.Context, projectID string) error {
	log := logger.FromContext(ctx)

	if err := v.projects.DeleteProject(ctx, projectID); err != nil {
		log.Err(err).Str("func", "*clientVaultService.DeleteProject").Str("project_id", projectID).Msg("error deleting project")
		return fmt.Errorf("delete project: %w", err)
	}
	if err := v.syncMetadata.MarkDirty(ctx, projectID, v.now()); err != nil {
		return fmt.Errorf("mark project dirty: %w", err)
	}
	return nil
}

// ── environments ────────────────────────────────────────────────────────────

func (v *clientVaultService) CreateEnvironment(ctx context.Context, projectID, name, envType string) (models.Environment, error) {
	if _, err := v.projects.GetProject(ctx, projectID); err != nil {
		return models.Environment{}, err
	}

	now := v.now()
	env := models.Environment{
		ID:        v.ids.Generate(),
		ProjectID: projectID,
		Name:      strings.TrimSpace(name),
		Type:      models.ParseEnvironmentType(envType),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := v.validator.Validate(ctx, env); err != nil {
		return models.Environment{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err := v.environments.CreateEnvironment(ctx, env); err != nil {
		return models.Environment{}, fmt.Errorf("create environment: %w", err)
	}
	if err := v.markChanged(ctx, projectID); err != nil {
		return models.Environment{}, err
	}

	return env, nil
}

func (v *clientVaultService) ListEnvironments(ctx context.Context, projectID string) ([]models.Environment, error) {
	return v.environments.ListEnvironments(ctx, projectID)
}

func (v *clientVaultService) GetEnvironment(ctx context.Context, environmentID string) (models.Environment, error) {
	return v.environments.GetEnvironment(ctx, environmentID)
}

func (v *clientVaultService) FindEnvironment(ctx context.Context, projectName, environmentName string) (models.Environment, error) {
	project, err := v.FindProject(ctx, projectName)
	if err != nil {
		return models.Environment{}, err
	}
	return v.environments.FindEnvironmentByName(ctx, project.ID, strings.TrimSpace(environmentName))
}

func (v *clientVaultService) DeleteEnvironment(ctx context.Context, environmentID string) error {
	env, err := v.environments.GetEnvironment(ctx, environmentID)
	if err != nil {
		return err
	}
	if err = v.environments.DeleteEnvironment(ctx, environmentID); err != nil {
		return fmt.Errorf("delete environment: %w", err)
	}
	return v.markChanged(ctx, env.ProjectID)
}

// markChanged touches the project and flags it for the next push.
func (v *clientVaultService) markChanged(ctx context.Context, projectID string) error {
	now := v.now()
	if err := v.projects.TouchProject(ctx, projectID, now); err != nil {
		return fmt.Errorf("touch project: %w", err)
	}
	if err := v.syncMetadata.MarkDirty(ctx, projectID, now); err != nil {
		return fmt.Errorf("mark project dirty: %w", err)
	}
	return nil
}

// ── records ─────────────────────────────────────────────────────────────────

// ListRecords implements [RecordReader].
func (v *clientVaultService) ListRecords(ctx context.Context, environmentID string) ([]models.Record, error) {
	stored, err := v.records.ListRecords(ctx, environmentID)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}

	records := make([]models.Record, 0, len(stored))
	for _, s := range stored {
		value, err := v.cipher.Decrypt(environmentID, s.Value)
		if err != nil {
			return nil, fmt.Errorf("record %s: %w", s.Key, err)
		}
		records = append(records, models.Record{ID: s.ID, Key: s.Key, Value: value, Secret: s.Secret})
	}
	return records, nil
}

// CreateRecord implements [RecordWriter].
func (v *clientVaultService) CreateRecord(ctx context.Context, environmentID, key string, value models.EncryptedValue, secret bool) (models.StoredRecord, error) {
	env, err := v.environments.GetEnvironment(ctx, environmentID)
	if err != nil {
		return models.StoredRecord{}, err
	}

	now := v.now()
	record := models.StoredRecord{
		ID:            v.ids.Generate(),
		EnvironmentID: environmentID,
		Key:           key,
		Value:         value,
		Secret:        secret,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err = v.records.CreateRecord(ctx, record); err != nil {
		return models.StoredRecord{}, fmt.Errorf("create record: %w", err)
	}

	return record, v.markChanged(ctx, env.ProjectID)
}

// UpdateRecord implements [RecordWriter].
func (v *clientVaultService) UpdateRecord(ctx context.Context, environmentID, recordID, key string, value models.EncryptedValue, secret bool) (models.StoredRecord, error) {
	env, err := v.environments.GetEnvironment(ctx, environmentID)
	if err != nil {
		return models.StoredRecord{}, err
	}

	record, err := v.records.GetRecord(ctx, environmentID, recordID)
	if err != nil {
		return models.StoredRecord{}, err
	}
	record.Key = key
	record.Value = value
	record.Secret = secret
	record.UpdatedAt = v.now()

	if err = v.records.UpdateRecord(ctx, record); err != nil {
		return models.StoredRecord{}, fmt.Errorf("update record: %w", err)
	}

	return record, v.markChanged(ctx, env.ProjectID)
}

// DeleteRecord implements [RecordWriter].
func (v *clientVaultService) DeleteRecord(ctx context.Context, environmentID, recordID string) error {
	env, err := v.environments.GetEnvironment(ctx, environmentID)
	if err != nil {
		return err
	}
	if err = v.records.DeleteRecord(ctx, environmentID, recordID); err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	return v.markChanged(ctx, env.ProjectID)
}

// SetVariable implements [ClientVaultService].
func (v *clientVaultService) SetVariable(ctx context.Context, environmentID, key, value string, secret bool) (models.Record, error) {
	if err := v.validator.Validate(ctx, models.Record{Key: key}); err != nil {
		return models.Record{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	sealed, err := v.cipher.Encrypt(environmentID, value)
	if err != nil {
		return models.Record{}, err
	}

	existing, err := v.records.FindRecordByKey(ctx, environmentID, key)
	switch {
	case err == nil:
		stored, err := v.UpdateRecord(ctx, environmentID, existing.ID, key, sealed, secret)
		if err != nil {
			return models.Record{}, err
		}
		return models.Record{ID: stored.ID, Key: key, Value: value, Secret: secret}, nil

	case errors.Is(err, store.ErrRecordNotFound):
		stored, err := v.CreateRecord(ctx, environmentID, key, sealed, secret)
		if err != nil {
			return models.Record{}, err
		}
		return models.Record{ID: stored.ID, Key: key, Value: value, Secret: secret}, nil

	default:
		return models.Record{}, fmt.Errorf("find record: %w", err)
	}
}

func (v *clientVaultService) DeleteVariable(ctx context.Context, environmentID, key string) error {
	record, err := v.records.FindRecordByKey(ctx, environmentID, key)
	if err != nil {
		return err
	}
	return v.DeleteRecord(ctx, environmentID, record.ID)
}

// ── diff / promotion ────────────────────────────────────────────────────────

func (v *clientVaultService) Compare(ctx context.Context, leftEnvironmentID, rightEnvironmentID string) (models.DiffResult, error) {
	left, err := v.ListRecords(ctx, leftEnvironmentID)
	if err != nil {
		return models.DiffResult{}, err
	}
	right, err := v.ListRecords(ctx, rightEnvironmentID)
	if err != nil {
		return models.DiffResult{}, err
	}
	return Compute(left, right), nil
}

func (v *clientVaultService) PromoteEntry(ctx context.Context, entry models.DiffEntry, direction models.Direction, leftEnvironmentID, rightEnvironmentID string) (models.DiffResult, error) {
	log := logger.FromContext(ctx)

	if err := v.promotion.Promote(ctx, entry, direction, leftEnvironmentID, rightEnvironmentID); err != nil {
		log.Err(err).Str("func", "*clientVaultService.PromoteEntry").Str("key", entry.Key).Msg("promotion failed")
		return models.DiffResult{}, err
	}
	return v.Compare(ctx, leftEnvironmentID, rightEnvironmentID)
}

// ── snapshots ───────────────────────────────────────────────────────────────

// ExportSnapshot implements [SnapshotVault].
func (v *clientVaultService) ExportSnapshot(ctx context.Context, projectID string) (models.ProjectSnapshot, error) {
	stored, err := v.projects.LoadProject(ctx, projectID)
	if err != nil {
		return models.ProjectSnapshot{}, err
	}

	snapshot := models.ProjectSnapshot{
		Project:      stored.Project,
		Environments: make([]models.EnvironmentSnapshot, 0, len(stored.Environments)),
	}
	for _, env := range stored.Environments {
		records := make([]models.Record, 0, len(env.Records))
		for _, r := range env.Records {
			value, err := v.cipher.Decrypt(env.Environment.ID, r.Value)
			if err != nil {
				return models.ProjectSnapshot{}, fmt.Errorf("record %s: %w", r.Key, err)
			}
			records = append(records, models.Record{ID: r.ID, Key: r.Key, Value: value, Secret: r.Secret})
		}
		snapshot.Environments = append(snapshot.Environments, models.EnvironmentSnapshot{
			Environment: env.Environment,
			Records:     records,
		})
	}

	return snapshot, nil
}

// ImportSnapshot implements [SnapshotVault].
func (v *clientVaultService) ImportSnapshot(ctx context.Context, snapshot models.ProjectSnapshot) error {
	log := logger.FromContext(ctx)

	if snapshot.Project.ID == "" {
		return fmt.Errorf("%w: snapshot without project ID", ErrInvalidDataProvided)
	}

	now := v.now()
	stored := models.StoredProject{
		Project:      snapshot.Project,
		Environments: make([]models.StoredEnvironment, 0, len(snapshot.Environments)),
	}
	for _, env := range snapshot.Environments {
		environment := env.Environment
		environment.ProjectID = snapshot.Project.ID

		records := make([]models.StoredRecord, 0, len(env.Records))
		for _, r := range env.Records {
			sealed, err := v.cipher.Encrypt(environment.ID, r.Value)
			if err != nil {
				return err
			}
			id := r.ID
			if id == "" {
				id = v.ids.Generate()
			}
			records = append(records, models.StoredRecord{
				ID:            id,
				EnvironmentID: environment.ID,
				Key:           r.Key,
				Value:         sealed,
				Secret:        r.Secret,
				CreatedAt:     now,
				UpdatedAt:     now,
			})
		}
		stored.Environments = append(stored.Environments, models.StoredEnvironment{Environment: environment, Records: records})
	}

	if err := v.projects.ReplaceProject(ctx, stored); err != nil {
		log.Err(err).Str("func", "*clientVaultService.ImportSnapshot").Str("project_id", snapshot.Project.ID).Msg("error replacing project")
		return fmt.Errorf("replace project: %w", err)
	}
	return nil
}

func (v *clientVaultService) SealSnapshot(blobKey string, snapshot models.ProjectSnapshot) (models.EncryptedValue, error) {
	return v.cipher.SealSnapshot(blobKey, snapshot)
}

func (v *clientVaultService) OpenSnapshot(blobKey string, value models.EncryptedValue) (models.ProjectSnapshot, error) {
	return v.cipher.OpenSnapshot(blobKey, value)
}

// VaultKey implements [SnapshotVault].
func (v *clientVaultService) VaultKey(ctx context.Context) (models.VaultKey, error) {
	return v.vaultKeys.GetVaultKey(ctx)
}

// AdoptVaultKey implements [ClientVaultService].
func (v *clientVaultService) AdoptVaultKey(ctx context.Context, key models.VaultKey, masterPassword string) error {
	log := logger.FromContext(ctx)

	if !v.IsUnlocked() {
		return ErrVaultLocked
	}

	DEK, err := v.keyChain.UnwrapDEK(key.EncryptedDEK, v.keyChain.GenerateKEK(masterPassword, key.Salt))
	if err != nil {
		if errors.Is(err, crypto.ErrDecryption) {
			return ErrWrongPassword
		}
		return fmt.Errorf("unwrap DEK: %w", err)
	}

	projects, err := v.projects.ListProjects(ctx)
	if err != nil {
		return fmt.Errorf("list projects: %w", err)
	}
	snapshots := make([]models.ProjectSnapshot, 0, len(projects))
	for _, p := range projects {
		snapshot, err := v.ExportSnapshot(ctx, p.ID)
		if err != nil {
			return fmt.Errorf("export %s: %w", p.Name, err)
		}
		snapshots = append(snapshots, snapshot)
	}

	if err = v.vaultKeys.SaveVaultKey(ctx, key); err != nil {
		return fmt.Errorf("save vault key: %w", err)
	}
	v.cipher.SetEncryptionKey(DEK)

	for _, snapshot := range snapshots {
		if err = v.ImportSnapshot(ctx, snapshot); err != nil {
			log.Err(err).Str("func", "*clientVaultService.AdoptVaultKey").Str("project_id", snapshot.Project.ID).Msg("error re-encrypting project")
			return fmt.Errorf("re-encrypt %s: %w", snapshot.Project.Name, err)
		}
	}

	log.Info().Int("projects", len(snapshots)).Msg("vault key adopted")
	return nil
}
