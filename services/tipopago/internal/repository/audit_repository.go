// services/tipopago/internal/repository/audit_repository.go
package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"carniceria-admin/services/tipopago/internal/models"
)

const auditCollection = "tipopago_events"

// AuditRepository appends catalog events to MongoDB.
type AuditRepository struct {
	client     *mongo.Client
	collection *mongo.Collection
}

func NewAuditRepository(ctx context.Context, uri, database string) (*AuditRepository, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	return &AuditRepository{
		client:     client,
		collection: client.Database(database).Collection(auditCollection),
	}, nil
}

func (r *AuditRepository) Publish(ctx context.Context, event *models.Event) error {
	_, err := r.collection.InsertOne(ctx, event)
	return err
}

func (r *AuditRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}
