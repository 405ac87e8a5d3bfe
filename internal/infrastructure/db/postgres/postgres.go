// Package postgres implements the repository ports on top of gorm with
// the postgres driver. Transactions travel in the context: every
// repository joins the transaction opened by InTx, so a mutation and its
// audit entry commit or roll back together.
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/partnerhub/admin-api/internal/infrastructure/config"
)

const (
	connectAttempts = 10
	connectBackoff  = 2 * time.Second
)

type DB struct {
	gorm *gorm.DB
}

// Connect opens the database, retrying while postgres comes up, and runs
// the schema migration. TranslateError turns unique-constraint
// violations into gorm.ErrDuplicatedKey so repositories can surface
// typed conflicts instead of racing check-then-insert sequences.
func Connect(cfg config.PostgresConfig, log zerolog.Logger) (*DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	for attempt := 1; attempt <= connectAttempts; attempt++ {
		db, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
			TranslateError: true,
			Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		})
		if err == nil {
			break
		}
		log.Warn().Err(err).Int("attempt", attempt).Int("max_attempts", connectAttempts).Msg("database connection failed")
		time.Sleep(connectBackoff)
	}
	if err != nil {
		return nil, fmt.Errorf("connect postgres after %d attempts: %w", connectAttempts, err)
	}

	if err := db.AutoMigrate(
		&userAdminRecord{},
		&companyRecord{},
		&categoryRecord{},
		&associationRecord{},
		&userAdminLogRecord{},
		&companyLogRecord{},
		&categoryLogRecord{},
		&associationLogRecord{},
	); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Info().Str("database", cfg.Database).Msg("connected to postgres")
	return &DB{gorm: db}, nil
}

// Ping verifies connectivity for the readiness probe.
func (d *DB) Ping(ctx context.Context) error {
	sqlDB, err := d.gorm.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

type txKey struct{}

// InTx runs fn inside a transaction carried by the context. Nested calls
// join the outer transaction.
func (d *DB) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}
	return d.gorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// conn returns the ambient transaction when present, the base handle
// otherwise.
func (d *DB) conn(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return d.gorm.WithContext(ctx)
}

// SeedDefaultAdmin creates the bootstrap administrator when no active
// admin exists yet. Skipped when no seed password is configured.
func (d *DB) SeedDefaultAdmin(cfg config.AdminSeedConfig, log zerolog.Logger) error {
	if cfg.Password == "" {
		log.Warn().Msg("ADMIN_PASSWORD not set, skipping default admin seed")
		return nil
	}

	var count int64
	if err := d.gorm.Model(&userAdminRecord{}).Where("role = ? AND active", "admin").Count(&count).Error; err != nil {
		return fmt.Errorf("count admins: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	admin := userAdminRecord{
		Name:         cfg.Name,
		Username:     cfg.Username,
		PasswordHash: string(hash),
		Email:        cfg.Email,
		Role:         "admin",
		Active:       true,
	}
	if err := d.gorm.Create(&admin).Error; err != nil {
		return fmt.Errorf("create seed admin: %w", err)
	}

	log.Info().Str("username", cfg.Username).Msg("seeded default admin user")
	return nil
}
