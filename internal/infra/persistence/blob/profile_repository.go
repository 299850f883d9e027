// Package blob stores the whole profile collection as one JSON object in a
// gocloud.dev bucket (local directory, in-memory, S3 or GCS).
package blob

import (
	"context"
	"encoding/json"
	"log/slog"
	"slices"
	"sync"

	"profilemap/internal/domain/entity"
	domainerrors "profilemap/internal/domain/errors"
	"profilemap/internal/domain/repository"
	"profilemap/internal/errors"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	_ "gocloud.dev/blob/s3blob"   // s3:// buckets
	"gocloud.dev/gcerrors"
)

const snapshotVersion = 1

// snapshot is the stored document. Profiles are kept in insertion order.
type snapshot struct {
	Version  int               `json:"version"`
	Profiles []*entity.Profile `json:"profiles"`
}

// ProfileRepository implements repository.ProfileRepository by rewriting the
// whole snapshot object on every mutation.
type ProfileRepository struct {
	mu     sync.Mutex
	bucket *blob.Bucket
	key    string
	logger *slog.Logger
}

var _ repository.ProfileRepository = (*ProfileRepository)(nil)

// Open opens the bucket at bucketURL. The object at key is created on the first write.
func Open(ctx context.Context, bucketURL, key string, logger *slog.Logger) (*ProfileRepository, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", bucketURL)
	}

	return NewProfileRepository(bucket, key, logger), nil
}

// NewProfileRepository wraps an already opened bucket.
func NewProfileRepository(bucket *blob.Bucket, key string, logger *slog.Logger) *ProfileRepository {
	return &ProfileRepository{bucket: bucket, key: key, logger: logger}
}

// Close closes the bucket.
func (r *ProfileRepository) Close() error {
	return errors.WithStack(r.bucket.Close())
}

func (r *ProfileRepository) List(ctx context.Context) ([]*entity.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	snap, err := r.read(ctx)
	if err != nil {
		return nil, err
	}

	return snap.Profiles, nil
}

func (r *ProfileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	return r.mutate(ctx, func(snap *snapshot) error {
		if indexOf(snap.Profiles, profile.ID) >= 0 {
			return domainerrors.NewDatabaseExecuteError(errors.Errorf("duplicate profile id %s", profile.ID), "failed to create profile")
		}
		snap.Profiles = append(snap.Profiles, profile.Clone())

		return nil
	})
}

func (r *ProfileRepository) Update(ctx context.Context, profile *entity.Profile) error {
	return r.mutate(ctx, func(snap *snapshot) error {
		i := indexOf(snap.Profiles, profile.ID)
		if i < 0 {
			return repository.ErrProfileNotFound
		}
		snap.Profiles[i] = profile.Clone()

		return nil
	})
}

func (r *ProfileRepository) Delete(ctx context.Context, id string) error {
	return r.mutate(ctx, func(snap *snapshot) error {
		i := indexOf(snap.Profiles, id)
		if i < 0 {
			return repository.ErrProfileNotFound
		}
		snap.Profiles = slices.Delete(snap.Profiles, i, i+1)

		return nil
	})
}

// Initialized reports whether the snapshot object exists. A stored empty
// collection counts as initialized.
func (r *ProfileRepository) Initialized(ctx context.Context) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	exists, err := r.bucket.Exists(ctx, r.key)
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to stat profile snapshot")
	}

	return exists, nil
}

// MarkInitialized writes the current snapshot, creating the object if it is missing.
func (r *ProfileRepository) MarkInitialized(ctx context.Context) error {
	return r.mutate(ctx, func(*snapshot) error { return nil })
}

func (r *ProfileRepository) mutate(ctx context.Context, fn func(*snapshot) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	snap, err := r.read(ctx)
	if err != nil {
		return err
	}
	if err := fn(snap); err != nil {
		return err
	}

	return r.write(ctx, snap)
}

// read returns an empty snapshot when the object does not exist yet.
func (r *ProfileRepository) read(ctx context.Context) (*snapshot, error) {
	data, err := r.bucket.ReadAll(ctx, r.key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return &snapshot{Version: snapshotVersion}, nil
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to read profile snapshot")
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "profile snapshot is corrupt")
	}
	if snap.Version != snapshotVersion {
		r.logger.WarnContext(ctx, "[BlobRepository] Unexpected snapshot version",
			slog.String("key", r.key),
			slog.Int("version", snap.Version),
		)
		snap.Version = snapshotVersion
	}

	return &snap, nil
}

func (r *ProfileRepository) write(ctx context.Context, snap *snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to encode profile snapshot")
	}

	if err := r.bucket.WriteAll(ctx, r.key, data, &blob.WriterOptions{ContentType: "application/json"}); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to write profile snapshot")
	}

	return nil
}

func indexOf(profiles []*entity.Profile, id string) int {
	return slices.IndexFunc(profiles, func(p *entity.Profile) bool { return p != nil && p.ID == id })
}
