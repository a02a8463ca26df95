package es

import (
	"context"
	"fmt"

	"github.com/elastic/go-elasticsearch/v8"
)

type ClientConfig struct {
	Addresses []string
	IndexName string
	Username  string
	Password  string
}

func NewClient(config ClientConfig) (*elasticsearch.TypedClient, error) {
	cfg := elasticsearch.Config{
		Addresses: config.Addresses,
	}

	if config.Username != "" && config.Password != "" {
		cfg.Username = config.Username
		cfg.Password = config.Password
	}

	return elasticsearch.NewTypedClient(cfg)
}

// IndexProbe reports an error unless the company index the built queries
// target exists. It only reads cluster metadata.
func IndexProbe(client *elasticsearch.TypedClient, indexName string) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		exists, err := client.Indices.Exists(indexName).Do(ctx)
		if err != nil {
			return fmt.Errorf("failed to check if index exists: %w", err)
		}
		if !exists {
			return fmt.Errorf("index %q does not exist", indexName)
		}
		return nil
	}
}
