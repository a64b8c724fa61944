package mongo

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/avc/orderchat/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// CollectionName коллекция значений клиента
const CollectionName = "client_store"

type entry struct {
	Profile   string    `bson:"profile"`
	Key       string    `bson:"key"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// ClientStore реализует domain.ClientStore в коллекции MongoDB.
// Один документ на пару (profile, key).
type ClientStore struct {
	db         *mongo.Database
	collection *mongo.Collection
	profile    string
}

// NewClientStore создает новый ClientStore
func NewClientStore(db *mongo.Database, profile string) *ClientStore {
	return &ClientStore{
		db:         db,
		collection: db.Collection(CollectionName),
		profile:    profile,
	}
}

// EnsureIndexes создает уникальный индекс (profile, key)
func (r *ClientStore) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "profile", Value: 1}, {Key: "key", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("mongo store: cannot create index: %w", err)
	}
	return nil
}

// Get возвращает значение по ключу
func (r *ClientStore) Get(ctx context.Context, key string) (string, error) {
	var doc entry
	err := r.collection.FindOne(ctx, r.filter(key)).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", domain.ErrKeyNotFound
		}
		return "", fmt.Errorf("mongo store: cannot get %q: %w", key, err)
	}
	return doc.Value, nil
}

// Set сохраняет значение
func (r *ClientStore) Set(ctx context.Context, key, value string) error {
	_, err := r.collection.UpdateOne(ctx, r.filter(key), r.update(value), options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("mongo store: cannot set %q: %w", key, err)
	}
	return nil
}

// SetMany сохраняет несколько значений одним упорядоченным BulkWrite
func (r *ClientStore) SetMany(ctx context.Context, values map[string]string) error {
	if len(values) == 0 {
		return nil
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	models := make([]mongo.WriteModel, 0, len(keys))
	for _, key := range keys {
		models = append(models, mongo.NewUpdateOneModel().
			SetFilter(r.filter(key)).
			SetUpdate(r.update(values[key])).
			SetUpsert(true))
	}

	if _, err := r.collection.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(true)); err != nil {
		return fmt.Errorf("mongo store: cannot set values: %w", err)
	}
	return nil
}

// Ping проверяет соединение с сервером
func (r *ClientStore) Ping(ctx context.Context) error {
	if err := r.db.Client().Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongo store: cannot ping: %w", err)
	}
	return nil
}

func (r *ClientStore) filter(key string) bson.M {
	return bson.M{"profile": r.profile, "key": key}
}

func (r *ClientStore) update(value string) bson.M {
	return bson.M{"$set": bson.M{"value": value, "updated_at": time.Now().UTC()}}
}
