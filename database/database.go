package database

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rpupo63/ideaboard-backend/config"
	"github.com/rpupo63/ideaboard-backend/errs"
	"github.com/rpupo63/ideaboard-backend/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/dbresolver"
)

type Database struct {
	db             *gorm.DB
	boardRepo      *BoardRepo
	ideaRepo       *IdeaRepo
	tagRepo        *TagRepo
	groupRepo      *GroupRepo
	connectionRepo *ConnectionRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		db:             db,
		boardRepo:      NewBoardRepo(db),
		ideaRepo:       NewIdeaRepo(db),
		tagRepo:        NewTagRepo(db),
		groupRepo:      NewGroupRepo(db),
		connectionRepo: NewConnectionRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) BoardRepo() *BoardRepo {
	return d.boardRepo
}

func (d Database) IdeaRepo() *IdeaRepo {
	return d.ideaRepo
}

func (d Database) TagRepo() *TagRepo {
	return d.tagRepo
}

func (d Database) GroupRepo() *GroupRepo {
	return d.groupRepo
}

func (d Database) ConnectionRepo() *ConnectionRepo {
	return d.connectionRepo
}

// Ping checks that the primary database answers
func (d Database) Ping(ctx context.Context) error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Open connects to postgres and, when replica URLs are configured, routes reads to them
func Open(settings config.Settings) (*gorm.DB, error) {
	logLevel := logger.Warn
	if settings.Debug {
		logLevel = logger.Info
	}

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logLevel,
			IgnoreRecordNotFoundError: true,
			Colorful:                  settings.Debug,
		},
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  settings.DatabaseURL,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		PrepareStmt:    false,
		Logger:         gormLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	if len(settings.DatabaseReplicaURLs) > 0 {
		replicas := make([]gorm.Dialector, 0, len(settings.DatabaseReplicaURLs))
		for _, url := range settings.DatabaseReplicaURLs {
			replicas = append(replicas, postgres.New(postgres.Config{DSN: url, PreferSimpleProtocol: true}))
		}
		if err := db.Use(dbresolver.Register(dbresolver.Config{
			Replicas:          replicas,
			Policy:            dbresolver.RandomPolicy{},
			TraceResolverMode: settings.Debug,
		})); err != nil {
			return nil, err
		}
	}

	return db, nil
}

// Migrate creates or updates every table, index and constraint of the board schema
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(models.All()...)
}

// notFound turns gorm's missing-record error into the entity's NotFound error
func notFound(err error, message string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewNotFoundError(message)
	}
	return err
}

// conflict turns a storage-level uniqueness violation into a Conflict error
func conflict(err error, message string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.NewConflictError(message)
	}
	return err
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
