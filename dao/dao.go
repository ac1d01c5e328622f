package dao

import (
	"context"

	"github.com/companieshouse/paypal.api.ch.gov.uk/config"
	"github.com/companieshouse/paypal.api.ch.gov.uk/models"
)

// DAO is an interface for accessing checkout order records from a backend store
type DAO interface {
	CreateOrderRecord(ctx context.Context, record *models.OrderRecordDB) error
	// GetOrderRecord returns nil and no error when no record exists.
	GetOrderRecord(ctx context.Context, paypalOrderID string) (*models.OrderRecordDB, error)
	UpdateOrderStatus(ctx context.Context, paypalOrderID string, status models.OrderStatus, links models.Links) error
}

// NewDAO returns the mongo backed DAO for the given config.
func NewDAO(cfg *config.Config) DAO {
	return &MongoService{
		db:             getMongoDatabase(cfg.MongoDBURL, cfg.Database),
		CollectionName: cfg.Collection,
	}
}
