// Package mongodb stores chat conversations as documents in MongoDB.
package mongodb

import (
	"context"
	"log/slog"

	"jobboard/config"
	"jobboard/internal/domain/lifecycle"
	"jobboard/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the MongoDB client and returns the configured database.
func New(params Params) (*mongo.Database, error) {
	if params.Config.Mongo == nil || params.Config.Mongo.URI == "" {
		return nil, errors.New("mongo configuration is required")
	}

	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(params.Config.Mongo.URI))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}
	db := client.Database(params.Config.Mongo.Database)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, nil); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			return ensureIndexes(ctx, db)
		},
		OnStop: func(stopCtx context.Context) error {
			params.Logger.Info("Disconnecting MongoDB client")

			return errors.WithStack(client.Disconnect(stopCtx))
		},
	})

	return db, nil
}

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(chatCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "senderId", Value: 1}, {Key: "receiverId", Value: 1}},
	})
	if err != nil {
		return errors.Wrap(err, "create chat participant index")
	}

	return nil
}
