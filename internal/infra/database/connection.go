package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

const (
	CollectionLeads = "leads"
	CollectionUsers = "usuarios"

	pingTimeout = 5 * time.Second
)

// NewMongoConnection abre o client e testa o Ping.
func NewMongoConnection(uri string) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(10).
		SetConnectTimeout(pingTimeout)

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, err
	}

	// O Ping: a prova de fogo. Sem ele o Connect aceita qualquer URI.
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	return client, nil
}
