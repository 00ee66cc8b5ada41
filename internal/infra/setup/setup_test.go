package setup_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"job-catalog/internal/domain"
	"job-catalog/internal/infra/setup"
)

func TestDBConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     setup.DBConfig
		wantErr string
	}{
		{"sqlite ok", setup.DBConfig{Driver: "sqlite", Path: "x.db"}, ""},
		{"sqlite without path", setup.DBConfig{Driver: "sqlite"}, "DB_PATH"},
		{"mysql ok", setup.DBConfig{Driver: "mysql", Host: "db", User: "app", Name: "catalog"}, ""},
		{"postgres missing user and name", setup.DBConfig{Driver: "postgres", Host: "db"}, "DB_USER, DB_NAME"},
		{"unknown driver", setup.DBConfig{Driver: "oracle"}, "unsupported DB_DRIVER"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDialector_PicksDriver(t *testing.T) {
	for _, driver := range []string{"sqlite", "mysql", "postgres"} {
		t.Run(driver, func(t *testing.T) {
			d, err := setup.Dialector(setup.DBConfig{
				Driver: driver, Path: "x.db", Host: "db", User: "app", Password: "p@ss", Name: "catalog",
			})
			require.NoError(t, err)
			assert.Equal(t, driver, d.Name())
		})
	}

	_, err := setup.Dialector(setup.DBConfig{Driver: "mysql"})
	assert.Error(t, err)
}

func TestInitDB_SQLiteAndMigrate(t *testing.T) {
	db, err := setup.InitDB(setup.DBConfig{
		Driver:       "sqlite",
		Path:         "file:setup_test?mode=memory&cache=shared",
		MaxOpenConns: 1,
	}, nil)
	require.NoError(t, err)
	defer func() { assert.NoError(t, setup.CloseDB(db)) }()

	require.NoError(t, setup.MigrateDB(db))
	// 再次迁移不应报错
	require.NoError(t, setup.MigrateDB(db))

	assert.True(t, db.Migrator().HasTable(&domain.Vacancy{}))
	assert.True(t, db.Migrator().HasTable(&domain.Resume{}))
	assert.True(t, db.Migrator().HasColumn(&domain.Vacancy{}, "experience"))
	assert.True(t, db.Migrator().HasIndex(&domain.Vacancy{}, "Location"))
	assert.True(t, db.Migrator().HasIndex(&domain.Resume{}, "Location"))
	assert.True(t, db.Migrator().HasColumn(&domain.Resume{}, "salary_expectation"))
}

func TestOpenSQLite_UnicodeLower(t *testing.T) {
	db, err := setup.InitDB(setup.DBConfig{
		Driver:       "sqlite",
		Path:         "file:unicode_lower_test?mode=memory&cache=shared",
		MaxOpenConns: 1,
	}, nil)
	require.NoError(t, err)
	defer func() { assert.NoError(t, setup.CloseDB(db)) }()

	var lowered string
	require.NoError(t, db.Raw("SELECT "+setup.SQLiteLowerFunc+"(?)", "Санкт-Петербург PYTHON").Scan(&lowered).Error)
	assert.Equal(t, "санкт-петербург python", lowered)

	// 内置 LOWER 只处理 ASCII
	var builtin string
	require.NoError(t, db.Raw("SELECT LOWER(?)", "МОСКВА").Scan(&builtin).Error)
	assert.Equal(t, "МОСКВА", builtin)
}

func TestMigrateDB_NilDB(t *testing.T) {
	assert.Error(t, setup.MigrateDB(nil))
}

func TestInitRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	addr := mr.Addr()

	client, err := setup.InitRedis(context.Background(), addr, "", 0)
	require.NoError(t, err)
	assert.NoError(t, client.Close())

	mr.Close()
	_, err = setup.InitRedis(context.Background(), addr, "", 0)
	assert.Error(t, err)
}
