package repository

import (
	"context"
	"time"

	"mebelstore/internal/app/admin/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const auditCollection = "admin_audit"

type auditRepository struct {
	collection *mongo.Collection
}

// NewAuditRepository создает репозиторий журнала действий в MongoDB
// и заводит индекс по admin_id для выборок по администратору
func NewAuditRepository(db *mongo.Database) (AuditRepository, error) {
	collection := db.Collection(auditCollection)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexModel := mongo.IndexModel{
		Keys: bson.D{
			{Key: "admin_id", Value: 1},
			{Key: "created_at", Value: -1},
		},
	}
	if _, err := collection.Indexes().CreateOne(ctx, indexModel); err != nil {
		return nil, err
	}

	return &auditRepository{collection: collection}, nil
}

func (r *auditRepository) Record(ctx context.Context, record *entity.AuditRecord) error {
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, record)
	return err
}

func (r *auditRepository) ListByAdmin(ctx context.Context, adminID uint, limit int64) ([]entity.AuditRecord, error) {
	if limit <= 0 {
		limit = 100
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.M{"admin_id": adminID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []entity.AuditRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
