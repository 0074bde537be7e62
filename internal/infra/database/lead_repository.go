package database

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/profitlens/roi-master-api/internal/entity"
)

// LeadRepository opera a coleção "leads" chaveada por id_unico.
// Collection nil significa que o boot não conseguiu conectar no Mongo:
// toda operação devolve entity.ErrStorageUnavailable e o processo segue
// de pé em modo degradado.
type LeadRepository struct {
	Collection *mongo.Collection
}

func NewLeadRepository(db *mongo.Database) *LeadRepository {
	if db == nil {
		return &LeadRepository{}
	}
	return &LeadRepository{Collection: db.Collection(CollectionLeads)}
}

func (r *LeadRepository) Upsert(ctx context.Context, lead *entity.Lead) error {
	if r.Collection == nil {
		return entity.ErrStorageUnavailable
	}

	opts := options.Replace().SetUpsert(true)
	_, err := r.Collection.ReplaceOne(ctx, bson.M{"id_unico": lead.UniqueID}, lead, opts)
	if err != nil {
		return fmt.Errorf("erro ao gravar lead %s: %w", lead.UniqueID, err)
	}
	return nil
}

func (r *LeadRepository) FindByID(ctx context.Context, uniqueID string) (*entity.Lead, error) {
	if r.Collection == nil {
		return nil, entity.ErrStorageUnavailable
	}

	var lead entity.Lead
	err := r.Collection.FindOne(ctx, bson.M{"id_unico": uniqueID}).Decode(&lead)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar lead %s: %w", uniqueID, err)
	}
	return &lead, nil
}

func (r *LeadRepository) UpdateFields(ctx context.Context, uniqueID string, fields map[string]any) error {
	if r.Collection == nil {
		return entity.ErrStorageUnavailable
	}

	_, err := r.Collection.UpdateOne(ctx, bson.M{"id_unico": uniqueID}, bson.M{"$set": bson.M(fields)})
	if err != nil {
		return fmt.Errorf("erro ao atualizar lead %s: %w", uniqueID, err)
	}
	return nil
}

func (r *LeadRepository) FindAll(ctx context.Context) ([]*entity.Lead, error) {
	if r.Collection == nil {
		return nil, entity.ErrStorageUnavailable
	}

	cursor, err := r.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("erro ao listar leads: %w", err)
	}

	var leads []*entity.Lead
	if err := cursor.All(ctx, &leads); err != nil {
		return nil, fmt.Errorf("erro ao ler cursor de leads: %w", err)
	}
	return leads, nil
}
