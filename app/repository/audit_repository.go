package repository

import (
	"context"
	"time"

	"evoting-backend/app/model"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AuditRepository menangani jejak aktivitas (audit trail) di MongoDB.
// Seluruh penulisan bersifat best-effort dari sisi pemanggil: error cukup
// di-log, tidak pernah menggagalkan operasi utama.
type AuditRepository interface {
	// Log menyimpan satu entry audit. EntryID dan CreatedAt diisi di sini
	// kalau belum di-set pemanggil.
	Log(ctx context.Context, entry *model.AuditLog) error

	// FindRecent mengambil entry terbaru (limit baris, terbaru duluan).
	FindRecent(ctx context.Context, limit int64) ([]model.AuditLog, error)

	// CountByAction mengagregasi jumlah entry per action (untuk dashboard).
	CountByAction(ctx context.Context) (map[string]int64, error)
}

// auditRepository implementasi konkrit AuditRepository di atas MongoDB.
type auditRepository struct {
	mongo *mongo.Database
}

// NewAuditRepository membuat instance baru auditRepository.
func NewAuditRepository(mongoDB *mongo.Database) AuditRepository {
	return &auditRepository{mongo: mongoDB}
}

func (r *auditRepository) collection() *mongo.Collection {
	return r.mongo.Collection("audit_logs")
}

func (r *auditRepository) Log(ctx context.Context, entry *model.AuditLog) error {
	if entry.EntryID == "" {
		entry.EntryID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	_, err := r.collection().InsertOne(ctx, entry)
	return err
}

func (r *auditRepository) FindRecent(ctx context.Context, limit int64) ([]model.AuditLog, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)

	cur, err := r.collection().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	entries := []model.AuditLog{}
	if err := cur.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *auditRepository) CountByAction(ctx context.Context) (map[string]int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   "$action",
			"count": bson.M{"$sum": 1},
		}}},
	}

	cur, err := r.collection().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	result := make(map[string]int64)
	for cur.Next(ctx) {
		var row struct {
			ID    string `bson:"_id"`
			Count int64  `bson:"count"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, err
		}
		if row.ID == "" {
			row.ID = "unknown"
		}
		result[row.ID] = row.Count
	}
	return result, cur.Err()
}
