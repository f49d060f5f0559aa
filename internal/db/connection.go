package db

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"

	multitenancy "github.com/bartventer/gorm-multitenancy/v8"

	"github.com/agenthub/hub/internal/config"
	"github.com/agenthub/hub/internal/db/dialect"
	"github.com/agenthub/hub/internal/db/dsn"
	"github.com/agenthub/hub/internal/errs"
	"github.com/agenthub/hub/internal/model"
)

var (
	ErrStartingDBCon = errors.New("error starting db connection")
	ErrDBResolver    = errors.New("error starting db resolver")
)

// StartDBConnection opens DB connection using data from `config.Database`.
func StartDBConnection(
	ctx context.Context,
	conf config.Database,
	replicas []config.Database,
) (*multitenancy.DB, error) {
	dialector := dialect.NewFrom(dsn.FromDBConfig(conf))

	db, err := multitenancy.Open(dialector, &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, errs.Wrap(ErrStartingDBCon, err)
	}

	db = db.WithContext(ctx)

	err = prepareMultitenancy(ctx, db)
	if err != nil {
		return nil, err
	}

	if len(replicas) == 0 {
		return db, nil
	}

	err = db.Use(dbresolver.Register(dbresolver.Config{
		Sources:  []gorm.Dialector{dialector},
		Replicas: replicaDialectors(replicas),
		Policy:   dbresolver.RandomPolicy{},
	}))
	if err != nil {
		return nil, errs.Wrap(ErrDBResolver, err)
	}

	return db, nil
}

// prepareMultitenancy registers all shared and tenant-scoped models.
func prepareMultitenancy(ctx context.Context, db *multitenancy.DB) error {
	return db.RegisterModels(
		ctx,
		&model.Tenant{},
		&model.User{},
		&model.Workshop{},
		&model.LibraryResource{},
	)
}

func replicaDialectors(replicas []config.Database) []gorm.Dialector {
	dialects := make([]gorm.Dialector, 0, len(replicas))

	for _, r := range replicas {
		dialects = append(dialects, dialect.NewFrom(dsn.FromDBConfig(r)))
	}

	return dialects
}
