// database/bootstrap.go
package database

import (
	"database/sql"
	"fmt"
	"time"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"krishi/config"
	"krishi/entities"
)

// Open builds the process-wide pool. The caller owns it and must Close it on
// shutdown.
func Open(cfg config.AppConfig, zl *zap.Logger) (*gorm.DB, error) {
	gcfg := &gorm.Config{
		TranslateError: true,
		Logger: gormlogger.New(zap.NewStdLog(zl.Named("gorm")), gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	}

	var (
		db  *gorm.DB
		err error
	)
	switch cfg.DBDriver {
	case "sqlite", "":
		db, err = gorm.Open(sqlite.Open(cfg.DBPath), gcfg)
	case "postgres":
		if cfg.DBURL == "" {
			return nil, fmt.Errorf("open postgres: DATABASE_URL is not set")
		}
		var conn *sql.DB
		conn, err = sql.Open("pgx", cfg.DBURL)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		db, err = gorm.Open(postgres.New(postgres.Config{Conn: conn}), gcfg)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.DBDriver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("db.DB(): %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.DBPoolSize)
	sqlDB.SetMaxIdleConns(cfg.DBPoolSize)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)
	return db, nil
}

// Migrate brings the schema up to date.
func Migrate(db *gorm.DB) error {
	// must run before AutoMigrate, otherwise AutoMigrate adds an empty NOT NULL password column
	if err := migrateUsersPasswordColumn(db); err != nil {
		return fmt.Errorf("migrate users.password: %w", err)
	}
	if err := db.AutoMigrate(
		&entities.User{},
		&entities.MarketPrice{},
		&entities.PestDetection{},
	); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return nil
}

// migrateUsersPasswordColumn renames the password_hash column written by the
// first version of the signup form to password.
func migrateUsersPasswordColumn(db *gorm.DB) error {
	m := db.Migrator()
	if !m.HasTable(&entities.User{}) {
		return nil
	}
	if !m.HasColumn(&entities.User{}, "password_hash") || m.HasColumn(&entities.User{}, "password") {
		return nil
	}
	return m.RenameColumn(&entities.User{}, "password_hash", "password")
}

// Close releases the pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
