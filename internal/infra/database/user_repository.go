package database

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/profitlens/roi-master-api/internal/entity"
)

// UserRepository opera a coleção "usuarios" chaveada por uid.
type UserRepository struct {
	Collection *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	if db == nil {
		return &UserRepository{}
	}
	return &UserRepository{Collection: db.Collection(CollectionUsers)}
}

func (r *UserRepository) FindByUID(ctx context.Context, uid string) (*entity.User, error) {
	if r.Collection == nil {
		return nil, entity.ErrStorageUnavailable
	}

	var user entity.User
	err := r.Collection.FindOne(ctx, bson.M{"uid": uid}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar usuário %s: %w", uid, err)
	}
	return &user, nil
}

func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	if r.Collection == nil {
		return entity.ErrStorageUnavailable
	}

	if _, err := r.Collection.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("erro ao criar usuário %s: %w", user.UID, err)
	}
	return nil
}
