package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/zorepad/influencer-hub/backend/internal/models"
	"github.com/zorepad/influencer-hub/backend/pkg/cache"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const (
	catalogCacheKey = "influencers:catalog"
	catalogCacheTTL = 5 * time.Minute
)

// InfluencerRepository defines read access to the influencer catalog.
// The catalog is ingested externally; this service never writes it.
type InfluencerRepository interface {
	GetAll(ctx context.Context) ([]models.Influencer, error)
	GetByID(ctx context.Context, id string) (*models.Influencer, error)
}

// MongoInfluencerRepository implements InfluencerRepository over MongoDB
// with an optional redis cache-aside for the full catalog list.
type MongoInfluencerRepository struct {
	collection *mongo.Collection
	cache      *cache.Cache
	logger     *zap.Logger
}

// NewMongoInfluencerRepository creates a new MongoInfluencerRepository.
// cache may be nil, in which case every read goes to MongoDB.
func NewMongoInfluencerRepository(db *mongo.Database, c *cache.Cache, logger *zap.Logger) *MongoInfluencerRepository {
	return &MongoInfluencerRepository{
		collection: db.Collection("influencers"),
		cache:      c,
		logger:     logger,
	}
}

// GetAll retrieves the full catalog, serving from cache when possible.
// Cache failures fall back to MongoDB rather than surfacing an error.
func (r *MongoInfluencerRepository) GetAll(ctx context.Context) ([]models.Influencer, error) {
	if r.cache != nil {
		var cached []models.Influencer
		err := r.cache.Get(ctx, catalogCacheKey, &cached)
		if err == nil {
			return cached, nil
		}
		if err != cache.ErrMiss {
			r.logger.Warn("catalog cache read failed, falling back to mongo", zap.Error(err))
		}
	}

	var influencers []models.Influencer
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.D{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &influencers); err != nil {
		return nil, err
	}

	if r.cache != nil {
		if err := r.cache.Set(ctx, catalogCacheKey, influencers, catalogCacheTTL); err != nil {
			r.logger.Warn("catalog cache write failed", zap.Error(err))
		}
	}

	return influencers, nil
}

// GetByID retrieves a single catalog entry from MongoDB
func (r *MongoInfluencerRepository) GetByID(ctx context.Context, id string) (*models.Influencer, error) {
	var influencer models.Influencer
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&influencer)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("influencer not found")
		}
		return nil, err
	}
	return &influencer, nil
}
