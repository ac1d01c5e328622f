package dao

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/paypal.api.ch.gov.uk/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var client *mongo.Client

// ErrOrderRecordNotFound is returned when an update matches no record.
var ErrOrderRecordNotFound = errors.New("order record not found")

func getMongoClient(mongoDBURL string) *mongo.Client {
	if client != nil {
		return client
	}

	ctx := context.Background()

	clientOptions := options.Client().ApplyURI(mongoDBURL)
	mongoClient, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Error(fmt.Errorf("failed to connect to mongodb: [%w]", err))
		os.Exit(1)
	}

	// check we can connect to the mongodb instance
	pingContext, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err = mongoClient.Ping(pingContext, nil); err != nil {
		log.Error(fmt.Errorf("ping to mongodb timed out: [%w]", err), log.Data{"mongo_db_url": mongoDBURL})
		os.Exit(1)
	}

	log.Info("connected to mongodb successfully")
	client = mongoClient
	return client
}

// MongoDatabaseInterface is an interface that describes the mongodb driver
type MongoDatabaseInterface interface {
	Collection(name string, opts ...*options.CollectionOptions) *mongo.Collection
}

func getMongoDatabase(mongoDBURL, databaseName string) MongoDatabaseInterface {
	return getMongoClient(mongoDBURL).Database(databaseName)
}

// MongoService is an implementation of the DAO interface using the mongo driver
type MongoService struct {
	db             MongoDatabaseInterface
	CollectionName string
}

// CreateOrderRecord writes a new order record to the DB
func (m *MongoService) CreateOrderRecord(ctx context.Context, record *models.OrderRecordDB) error {
	collection := m.db.Collection(m.CollectionName)

	_, err := collection.InsertOne(ctx, record)
	if err != nil {
		return fmt.Errorf("error inserting order record [%s]: [%w]", record.ID, err)
	}
	return nil
}

// GetOrderRecord gets the record for a PayPal order from the DB
func (m *MongoService) GetOrderRecord(ctx context.Context, paypalOrderID string) (*models.OrderRecordDB, error) {
	var record models.OrderRecordDB
	collection := m.db.Collection(m.CollectionName)

	err := collection.FindOne(ctx, bson.M{"paypal_order_id": paypalOrderID}).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			log.Debug("no order record found", log.Data{"paypal_order_id": paypalOrderID})
			return nil, nil
		}
		return nil, err
	}

	return &record, nil
}

// UpdateOrderStatus sets the status and links of the record for a PayPal order
func (m *MongoService) UpdateOrderStatus(ctx context.Context, paypalOrderID string, status models.OrderStatus, links models.Links) error {
	collection := m.db.Collection(m.CollectionName)

	set := bson.M{
		"status":     status,
		"updated_at": time.Now().UTC(),
	}
	if len(links) > 0 {
		set["links"] = links
	}

	result, err := collection.UpdateOne(ctx, bson.M{"paypal_order_id": paypalOrderID}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("error updating order record for paypal order [%s]: [%w]", paypalOrderID, err)
	}
	if result.MatchedCount == 0 {
		return ErrOrderRecordNotFound
	}
	return nil
}
