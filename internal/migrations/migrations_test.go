package migrations

import (
	"errors"
	"io"
	"io/fs"
	"strings"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/stretchr/testify/require"
)

func TestMigrationFiles_ArePaired(t *testing.T) {
	ups, err := fs.Glob(MigrationFiles, "*.up.sql")
	require.NoError(t, err)
	require.NotEmpty(t, ups)

	for _, up := range ups {
		down := strings.TrimSuffix(up, ".up.sql") + ".down.sql"
		_, err := fs.Stat(MigrationFiles, down)
		require.NoError(t, err, "missing down migration for %s", up)
	}
}

func TestMigrationFiles_ParseAsSource(t *testing.T) {
	src, err := iofs.New(MigrationFiles, ".")
	require.NoError(t, err)
	defer src.Close()

	first, err := src.First()
	require.NoError(t, err)
	require.Equal(t, uint(1), first)

	r, _, err := src.ReadUp(first)
	require.NoError(t, err)
	defer r.Close()

	body, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Contains(t, string(body), "CREATE TABLE IF NOT EXISTS events")
}

type fakeMigrator struct {
	version uint
	dirty   bool
	upErr   error

	forced []int
	ups    int
}

func (f *fakeMigrator) Version() (uint, bool, error) {
	if f.version == 0 && !f.dirty {
		return 0, false, migrate.ErrNilVersion
	}
	return f.version, f.dirty, nil
}

func (f *fakeMigrator) Force(version int) error {
	f.forced = append(f.forced, version)
	f.dirty = false
	if version < 0 {
		f.version = 0
	} else {
		f.version = uint(version)
	}
	return nil
}

func (f *fakeMigrator) Up() error {
	f.ups++
	if f.upErr == nil && f.version == 0 {
		f.version = 1
	}
	return f.upErr
}

func TestRun(t *testing.T) {
	tests := []struct {
		name           string
		migrator       *fakeMigrator
		autoMigrate    bool
		expectedForced []int
		expectedUps    int
		expectedErr    bool
	}{
		{
			name:        "fresh database",
			migrator:    &fakeMigrator{},
			autoMigrate: true,
			expectedUps: 1,
		},
		{
			name:        "up to date",
			migrator:    &fakeMigrator{version: 1, upErr: migrate.ErrNoChange},
			autoMigrate: true,
			expectedUps: 1,
		},
		{
			name:           "dirty first migration is forced to nil version",
			migrator:       &fakeMigrator{version: 1, dirty: true},
			autoMigrate:    true,
			expectedForced: []int{-1},
			expectedUps:    1,
		},
		{
			name:           "dirty later migration is forced to previous version",
			migrator:       &fakeMigrator{version: 3, dirty: true},
			autoMigrate:    true,
			expectedForced: []int{2},
			expectedUps:    1,
		},
		{
			name:        "dirty database with auto-migration disabled is left alone",
			migrator:    &fakeMigrator{version: 3, dirty: true},
			autoMigrate: false,
		},
		{
			name:        "up failure",
			migrator:    &fakeMigrator{upErr: errors.New("syntax error")},
			autoMigrate: true,
			expectedUps: 1,
			expectedErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := run(tc.migrator, tc.autoMigrate)
			if tc.expectedErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			require.Equal(t, tc.expectedForced, tc.migrator.forced)
			require.Equal(t, tc.expectedUps, tc.migrator.ups)
		})
	}
}
