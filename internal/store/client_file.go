package store

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-env-keeper/models"
)

// fileVault is the JSON-document backend of the local vault. It keeps the
// whole vault in memory and rewrites the file after every change; with an
// in-memory path nothing touches the disk.
//
// It implements every local repository interface, so a single value is
// shared by all fields of [ClientStorages].
type fileVault struct {
	path     string
	inMemory bool

	mu    sync.RWMutex
	state fileVaultState
}

type fileVaultState struct {
	Projects     map[string]models.Project      `json:"projects"`
	Environments map[string]models.Environment  `json:"environments"`
	Records      map[string]models.StoredRecord `json:"records"`
	SyncMetadata map[string]models.SyncMetadata `json:"sync_metadata"`
	VaultKey     *models.VaultKey               `json:"vault_key,omitempty"`
}

func isInMemoryDSN(dsn string) bool {
	return dsn == "" || dsn == ":memory:" || dsn == "memory"
}

// IsFileBackendDSN reports whether dsn selects the JSON/memory backend.
func IsFileBackendDSN(dsn string) bool {
	return isInMemoryDSN(dsn) || strings.EqualFold(filepath.Ext(dsn), ".json")
}

func newFileVault(path string) (*fileVault, error) {
	v := &fileVault{
		path:     path,
		inMemory: isInMemoryDSN(path),
	}
	v.state.init()

	if err := v.load(); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *fileVaultState) init() {
	if s.Projects == nil {
		s.Projects = make(map[string]models.Project)
	}
	if s.Environments == nil {
		s.Environments = make(map[string]models.Environment)
	}
	if s.Records == nil {
		s.Records = make(map[string]models.StoredRecord)
	}
	if s.SyncMetadata == nil {
		s.SyncMetadata = make(map[string]models.SyncMetadata)
	}
}

func (v *fileVault) load() error {
	if v.inMemory {
		return nil
	}

	data, err := os.ReadFile(v.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read local storage file: %w", err)
	}

	var st fileVaultState
	if err = json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("decode local storage file: %w", err)
	}
	st.init()
	v.state = st

	return nil
}

// persist must be called with the write lock held.
func (v *fileVault) persist() error {
	if v.inMemory {
		return nil
	}

	dir := filepath.Dir(v.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create local storage dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(v.state, "", "  ")
	if err != nil {
		return fmt.Errorf("encode local storage: %w", err)
	}

	tmp := v.path + ".tmp"
	if err = os.WriteFile(tmp, payload, 0o600); err != nil {
		return fmt.Errorf("write local storage file: %w", err)
	}
	if err = os.Rename(tmp, v.path); err != nil {
		return fmt.Errorf("replace local storage file: %w", err)
	}

	return nil
}

// ── projects ─────────────────────────────────────────────────────────────────

func (v *fileVault) CreateProject(_ context.Context, project models.Project) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if _, ok := v.state.Projects[project.ID]; ok {
		return fmt.Errorf("failed to create project: duplicate id %s", project.ID)
	}
	v.state.Projects[project.ID] = project
	return v.persist()
}

func (v *fileVault) GetProject(_ context.Context, projectID string) (models.Project, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	p, ok := v.state.Projects[projectID]
	if !ok {
		return models.Project{}, ErrProjectNotFound
	}
	return p, nil
}

func (v *fileVault) FindProjectByName(ctx context.Context, name string) (models.Project, error) {
	projects, _ := v.ListProjects(ctx)
	for _, p := range projects {
		if p.Name == name {
			return p, nil
		}
	}
	return models.Project{}, ErrProjectNotFound
}

func (v *fileVault) ListProjects(_ context.Context) ([]models.Project, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	projects := make([]models.Project, 0, len(v.state.Projects))
	for _, p := range v.state.Projects {
		projects = append(projects, p)
	}
	slices.SortFunc(projects, func(a, b models.Project) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), a.CreatedAt.Compare(b.CreatedAt))
	})
	return projects, nil
}

func (v *fileVault) TouchProject(_ context.Context, projectID string, at time.Time) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	p, ok := v.state.Projects[projectID]
	if !ok {
		return ErrProjectNotFound
	}
	p.UpdatedAt = at
	v.state.Projects[projectID] = p
	return v.persist()
}

func (v *fileVault) DeleteProject(_ context.Context, projectID string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if _, ok := v.state.Projects[projectID]; !ok {
		return ErrProjectNotFound
	}
	v.deleteProjectTree(projectID)
	return v.persist()
}

func (v *fileVault) deleteProjectTree(projectID string) {
	for envID, env := range v.state.Environments {
		if env.ProjectID == projectID {
			v.deleteEnvironmentTree(envID)
		}
	}
	delete(v.state.Projects, projectID)
}

func (v *fileVault) LoadProject(ctx context.Context, projectID string) (models.StoredProject, error) {
	project, err := v.GetProject(ctx, projectID)
	if err != nil {
		return models.StoredProject{}, err
	}

	envs, _ := v.ListEnvironments(ctx, projectID)
	stored := models.StoredProject{Project: project, Environments: make([]models.StoredEnvironment, 0, len(envs))}
	for _, env := range envs {
		records, _ := v.ListRecords(ctx, env.ID)
		stored.Environments = append(stored.Environments, models.StoredEnvironment{Environment: env, Records: records})
	}
	return stored, nil
}

func (v *fileVault) ReplaceProject(_ context.Context, project models.StoredProject) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.deleteProjectTree(project.Project.ID)
	v.state.Projects[project.Project.ID] = project.Project
	for _, env := range project.Environments {
		v.state.Environments[env.Environment.ID] = env.Environment
		for _, record := range env.Records {
			v.state.Records[record.ID] = record
		}
	}
	return v.persist()
}

// ── environments ─────────────────────────────────────────────────────────────

func (v *fileVault) CreateEnvironment(_ context.Context, env models.Environment) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	for _, existing := range v.state.Environments {
		if existing.ProjectID == env.ProjectID && existing.Name == env.Name {
			return ErrEnvironmentAlreadyExists
		}
	}
	v.state.Environments[env.ID] = env
	return v.persist()
}

func (v *fileVault) GetEnvironment(_ context.Context, environmentID string) (models.Environment, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	env, ok := v.state.Environments[environmentID]
	if !ok {
		return models.Environment{}, ErrEnvironmentNotFound
	}
	return env, nil
}

func (v *fileVault) FindEnvironmentByName(ctx context.Context, projectID, name string) (models.Environment, error) {
	envs, _ := v.ListEnvironments(ctx, projectID)
	for _, env := range envs {
		if strings.EqualFold(env.Name, name) {
			return env, nil
		}
	}
	return models.Environment{}, ErrEnvironmentNotFound
}

func (v *fileVault) ListEnvironments(_ context.Context, projectID string) ([]models.Environment, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	envs := make([]models.Environment, 0)
	for _, env := range v.state.Environments {
		if env.ProjectID == projectID {
			envs = append(envs, env)
		}
	}
	slices.SortFunc(envs, func(a, b models.Environment) int {
		return cmp.Or(a.CreatedAt.Compare(b.CreatedAt), cmp.Compare(a.Name, b.Name))
	})
	return envs, nil
}

func (v *fileVault) DeleteEnvironment(_ context.Context, environmentID string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if _, ok := v.state.Environments[environmentID]; !ok {
		return ErrEnvironmentNotFound
	}
	v.deleteEnvironmentTree(environmentID)
	return v.persist()
}

func (v *fileVault) deleteEnvironmentTree(environmentID string) {
	for id, record := range v.state.Records {
		if record.EnvironmentID == environmentID {
			delete(v.state.Records, id)
		}
	}
	delete(v.state.Environments, environmentID)
}

// ── records ──────────────────────────────────────────────────────────────────

func (v *fileVault) keyTaken(environmentID, key, exceptID string) bool {
	for id, record := range v.state.Records {
		if id != exceptID && record.EnvironmentID == environmentID && record.Key == key {
			return true
		}
	}
	return false
}

func (v *fileVault) CreateRecord(_ context.Context, record models.StoredRecord) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if _, ok := v.state.Records[record.ID]; ok || v.keyTaken(record.EnvironmentID, record.Key, "") {
		return ErrRecordAlreadyExists
	}
	v.state.Records[record.ID] = record
	return v.persist()
}

func (v *fileVault) UpdateRecord(_ context.Context, record models.StoredRecord) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	existing, ok := v.state.Records[record.ID]
	if !ok || existing.EnvironmentID != record.EnvironmentID {
		return ErrRecordNotFound
	}
	if v.keyTaken(record.EnvironmentID, record.Key, record.ID) {
		return ErrRecordAlreadyExists
	}
	record.CreatedAt = existing.CreatedAt
	v.state.Records[record.ID] = record
	return v.persist()
}

func (v *fileVault) DeleteRecord(_ context.Context, environmentID, recordID string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	existing, ok := v.state.Records[recordID]
	if !ok || existing.EnvironmentID != environmentID {
		return ErrRecordNotFound
	}
	delete(v.state.Records, recordID)
	return v.persist()
}

func (v *fileVault) GetRecord(_ context.Context, environmentID, recordID string) (models.StoredRecord, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	record, ok := v.state.Records[recordID]
	if !ok || record.EnvironmentID != environmentID {
		return models.StoredRecord{}, ErrRecordNotFound
	}
	return record, nil
}

func (v *fileVault) FindRecordByKey(_ context.Context, environmentID, key string) (models.StoredRecord, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	for _, record := range v.state.Records {
		if record.EnvironmentID == environmentID && record.Key == key {
			return record, nil
		}
	}
	return models.StoredRecord{}, ErrRecordNotFound
}

func (v *fileVault) ListRecords(_ context.Context, environmentID string) ([]models.StoredRecord, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	records := make([]models.StoredRecord, 0)
	for _, record := range v.state.Records {
		if record.EnvironmentID == environmentID {
			records = append(records, record)
		}
	}
	slices.SortFunc(records, func(a, b models.StoredRecord) int { return cmp.Compare(a.Key, b.Key) })
	return records, nil
}

// ── sync metadata ────────────────────────────────────────────────────────────

func (v *fileVault) GetSyncMetadata(_ context.Context, projectID string) (models.SyncMetadata, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	meta, ok := v.state.SyncMetadata[projectID]
	if !ok {
		return models.SyncMetadata{}, ErrSyncMetadataNotFound
	}
	return meta, nil
}

func (v *fileVault) ListSyncMetadata(_ context.Context) ([]models.SyncMetadata, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	metas := make([]models.SyncMetadata, 0, len(v.state.SyncMetadata))
	for _, meta := range v.state.SyncMetadata {
		metas = append(metas, meta)
	}
	slices.SortFunc(metas, func(a, b models.SyncMetadata) int { return cmp.Compare(a.ProjectID, b.ProjectID) })
	return metas, nil
}

func (v *fileVault) SaveSyncMetadata(_ context.Context, meta models.SyncMetadata) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.state.SyncMetadata[meta.ProjectID] = meta
	return v.persist()
}

func (v *fileVault) MarkDirty(_ context.Context, projectID string, at time.Time) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	meta, ok := v.state.SyncMetadata[projectID]
	if !ok {
		meta = models.SyncMetadata{ProjectID: projectID}
	}
	meta.LocalVersion++
	meta.Dirty = true
	meta.UpdatedAt = at
	v.state.SyncMetadata[projectID] = meta
	return v.persist()
}

func (v *fileVault) DeleteSyncMetadata(_ context.Context, projectID string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	delete(v.state.SyncMetadata, projectID)
	return v.persist()
}

// ── vault key ────────────────────────────────────────────────────────────────

func (v *fileVault) GetVaultKey(_ context.Context) (models.VaultKey, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	if v.state.VaultKey == nil {
		return models.VaultKey{}, ErrVaultNotInitialized
	}
	return *v.state.VaultKey, nil
}

func (v *fileVault) SaveVaultKey(_ context.Context, key models.VaultKey) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.state.VaultKey = &key
	return v.persist()
}
