package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-env-keeper/models"
)

// projectBlobPrefix is the key namespace of project snapshots on the sync
// server: envsync/projects/<project id>.
const projectBlobPrefix = "envsync/projects/"

func projectBlobKey(projectID string) string {
	return projectBlobPrefix + projectID
}

// projectIDFromBlobKey returns "" for keys outside the project namespace.
func projectIDFromBlobKey(key string) string {
	id, ok := strings.CutPrefix(key, projectBlobPrefix)
	if !ok || id == "" || strings.Contains(id, "/") {
		return ""
	}
	return id
}

// pushItem is a project to upload. BaseVersion is the remote version the
// upload is based on, 0 for a project the server has never seen.
type pushItem struct {
	Meta        models.SyncMetadata
	BaseVersion int64
}

// conflictItem pairs a dirty local project with a remote copy that moved.
type conflictItem struct {
	Meta   models.SyncMetadata
	Remote models.BlobInfo
}

// syncPlan is the outcome of comparing local sync metadata with the remote
// blob listing. Every project lands in at most one category.
type syncPlan struct {
	Push         []pushItem
	Pull         []models.BlobInfo
	Conflicts    []conflictItem
	DeleteRemote []models.SyncMetadata
	DeleteLocal  []models.SyncMetadata
	DropMetadata []models.SyncMetadata
}

// Empty reports whether the plan contains no actions.
func (p syncPlan) Empty() bool {
	return len(p.Push) == 0 && len(p.Pull) == 0 && len(p.Conflicts) == 0 &&
		len(p.DeleteRemote) == 0 && len(p.DeleteLocal) == 0 && len(p.DropMetadata) == 0
}

// buildSyncPlan classifies every project into one action category.
//
// It builds O(1) lookup indexes from the inputs, then makes three linear
// passes:
//
//   - Pass 1 (over remote blobs): projects present on the server, whether
//     or not the client has metadata for them.
//   - Pass 2 (over local metadata): projects the server does not have.
//   - Pass 3 (over local projects): projects that never got metadata.
//
// ctx cancellation is checked at the start of each iteration.
func buildSyncPlan(
	ctx context.Context,
	remote []models.BlobInfo,
	local []models.SyncMetadata,
	localProjects []models.Project,
) (syncPlan, error) {
	var plan syncPlan

	metaIndex := make(map[string]models.SyncMetadata, len(local))
	for _, m := range local {
		metaIndex[m.ProjectID] = m
	}

	projectIndex := make(map[string]struct{}, len(localProjects))
	for _, p := range localProjects {
		projectIndex[p.ID] = struct{}{}
	}

	remoteIndex := make(map[string]models.BlobInfo, len(remote))

	// ── Pass 1: remote blobs ────────────────────────────────────────────────
	for _, info := range remote {
		if err := ctx.Err(); err != nil {
			return syncPlan{}, err
		}

		projectID := projectIDFromBlobKey(info.Key)
		if projectID == "" {
			continue
		}
		remoteIndex[projectID] = info

		meta, known := metaIndex[projectID]
		if !known {
			// Never seen locally → download.
			plan.Pull = append(plan.Pull, info)
			continue
		}

		_, existsLocally := projectIndex[projectID]
		sameBase := meta.RemoteVersion != nil && *meta.RemoteVersion == info.Version

		switch {
		case !existsLocally:
			if sameBase && meta.Dirty {
				// Deleted locally after the last sync, remote untouched
				// → replicate the deletion.
				plan.DeleteRemote = append(plan.DeleteRemote, meta)
			} else {
				// Remote moved since the local delete (or the local row
				// vanished without a recorded change) → restore it.
				plan.Pull = append(plan.Pull, info)
			}

		case sameBase:
			if meta.Dirty {
				plan.Push = append(plan.Push, pushItem{Meta: meta, BaseVersion: info.Version})
			}
			// Clean and on the same version → in sync.

		case meta.Dirty:
			// Both sides changed since the last sync.
			plan.Conflicts = append(plan.Conflicts, conflictItem{Meta: meta, Remote: info})

		default:
			plan.Pull = append(plan.Pull, info)
		}
	}

	// ── Pass 2: metadata absent from the server ─────────────────────────────
	for _, meta := range local {
		if err := ctx.Err(); err != nil {
			return syncPlan{}, err
		}

		if _, onServer := remoteIndex[meta.ProjectID]; onServer {
			continue
		}

		_, existsLocally := projectIndex[meta.ProjectID]
		switch {
		case !existsLocally:
			// Gone on both sides.
			plan.DropMetadata = append(plan.DropMetadata, meta)

		case !meta.Dirty && meta.RemoteVersion != nil:
			// Pushed once, untouched since, and now gone from the server
			// → deleted on another device.
			plan.DeleteLocal = append(plan.DeleteLocal, meta)

		default:
			plan.Push = append(plan.Push, pushItem{Meta: meta, BaseVersion: 0})
		}
	}

	// ── Pass 3: local projects without metadata ─────────────────────────────
	for _, p := range localProjects {
		if err := ctx.Err(); err != nil {
			return syncPlan{}, err
		}

		if _, known := metaIndex[p.ID]; known {
			continue
		}
		if _, onServer := remoteIndex[p.ID]; onServer {
			continue
		}
		plan.Push = append(plan.Push, pushItem{Meta: models.SyncMetadata{ProjectID: p.ID, Dirty: true}})
	}

	return plan, nil
}
