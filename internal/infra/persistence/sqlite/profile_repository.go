// Package sqlite stores profiles in a single-file SQLite database through the pure Go modernc driver.
package sqlite

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"profilemap/internal/domain/entity"
	domainerrors "profilemap/internal/domain/errors"
	"profilemap/internal/domain/repository"
	"profilemap/internal/errors"
	"profilemap/internal/infra/persistence/model"

	_ "modernc.org/sqlite" // registers the "sqlite" database/sql driver
)

//nolint:gochecknoglobals
var schema = []string{`CREATE TABLE IF NOT EXISTS profiles (
	seq        INTEGER PRIMARY KEY AUTOINCREMENT,
	id         TEXT    NOT NULL UNIQUE,
	name       TEXT    NOT NULL,
	picture    TEXT    NOT NULL DEFAULT '',
	location   TEXT    NOT NULL,
	intro      TEXT    NOT NULL DEFAULT '',
	lat        REAL    NOT NULL,
	lng        REAL    NOT NULL,
	created_at TEXT    NOT NULL,
	updated_at TEXT    NOT NULL
)`, `CREATE TABLE IF NOT EXISTS store_meta (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
)`}

const metaInitialized = "initialized"

// ProfileRepository implements repository.ProfileRepository on SQLite.
type ProfileRepository struct {
	db   *sql.DB
	path string
}

var _ repository.ProfileRepository = (*ProfileRepository)(nil)

// Open creates the parent directory and schema if needed. ":memory:" is accepted for tests.
func Open(ctx context.Context, path string) (*ProfileRepository, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			return nil, errors.Wrap(err, "create sqlite directory")
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite")
	}
	// SQLite serializes writers; one connection also keeps ":memory:" databases alive.
	db.SetMaxOpenConns(1)

	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			_ = db.Close()

			return nil, errors.Wrap(err, "create sqlite schema")
		}
	}

	return &ProfileRepository{db: db, path: path}, nil
}

// Close releases the database handle.
func (r *ProfileRepository) Close() error {
	return errors.WithStack(r.db.Close())
}

// Path returns the database file in use.
func (r *ProfileRepository) Path() string {
	return r.path
}

// List returns every profile ordered by seq.
func (r *ProfileRepository) List(ctx context.Context) ([]*entity.Profile, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT seq, id, name, picture, location, intro, lat, lng, created_at, updated_at FROM profiles ORDER BY seq ASC`)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list profiles")
	}
	defer func() { _ = rows.Close() }()

	var profiles []*entity.Profile
	for rows.Next() {
		var (
			m                    model.ProfileModel
			createdAt, updatedAt string
		)
		if err := rows.Scan(&m.Seq, &m.ID, &m.Name, &m.Picture, &m.Location, &m.Intro, &m.Lat, &m.Lng, &createdAt, &updatedAt); err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to scan profile")
		}
		if m.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "invalid created_at for profile "+m.ID)
		}
		if m.UpdatedAt, err = parseTime(updatedAt); err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "invalid updated_at for profile "+m.ID)
		}
		profiles = append(profiles, model.ToProfileDomain(&m))
	}
	if err := rows.Err(); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to iterate profiles")
	}

	return profiles, nil
}

// Create appends profile after all existing rows.
func (r *ProfileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	m := model.FromProfileDomain(profile)

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO profiles (id, name, picture, location, intro, lat, lng, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.Name, m.Picture, m.Location, m.Intro, m.Lat, m.Lng, formatTime(m.CreatedAt), formatTime(m.UpdatedAt))
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}

	return nil
}

// Update overwrites the stored fields of an existing profile in place.
func (r *ProfileRepository) Update(ctx context.Context, profile *entity.Profile) error {
	m := model.FromProfileDomain(profile)

	result, err := r.db.ExecContext(ctx,
		`UPDATE profiles SET name = ?, picture = ?, location = ?, intro = ?, lat = ?, lng = ?, updated_at = ? WHERE id = ?`,
		m.Name, m.Picture, m.Location, m.Intro, m.Lat, m.Lng, formatTime(m.UpdatedAt), m.ID)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update profile")
	}

	return checkAffected(result)
}

// Delete removes the row for id.
func (r *ProfileRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM profiles WHERE id = ?`, id)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete profile")
	}

	return checkAffected(result)
}

// Initialized reports whether the initialized marker row exists.
func (r *ProfileRepository) Initialized(ctx context.Context) (bool, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM store_meta WHERE key = ?`, metaInitialized).Scan(&n); err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to read store marker")
	}

	return n > 0, nil
}

// MarkInitialized inserts the initialized marker row once.
func (r *ProfileRepository) MarkInitialized(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO store_meta (key, value) VALUES (?, ?)`,
		metaInitialized, formatTime(time.Now()))
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to write store marker")
	}

	return nil
}

func checkAffected(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to read affected rows")
	}
	if n == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)

	return t, errors.WithStack(err)
}
