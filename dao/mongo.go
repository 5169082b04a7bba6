package dao

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/photonow/orders.api.photonow.io/config"
	"github.com/photonow/orders.api.photonow.io/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var client *mongo.Client

func getMongoClient(mongoDBURL string) *mongo.Client {
	if client != nil {
		return client
	}

	ctx := context.Background()

	clientOptions := options.Client().ApplyURI(mongoDBURL)

	var err error
	client, err = mongo.Connect(ctx, clientOptions)

	// Assume the caller of this func cannot handle the case where there is
	// no database connection, so the service must crash here as it cannot
	// continue.
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}

	// Check we can connect to the mongodb instance. Failure here should
	// result in a crash.
	pingContext, cancel := context.WithDeadline(ctx, time.Now().Add(5*time.Second))
	defer cancel()
	err = client.Ping(pingContext, nil)
	if err != nil {
		log.Error(errors.New("ping to mongodb timed out. please check the connection to mongodb and that it is running"))
		os.Exit(1)
	}

	log.Info("connected to mongodb successfully")

	return client
}

// MongoDatabaseInterface is an interface that describes the mongodb driver
type MongoDatabaseInterface interface {
	Collection(name string, opts ...*options.CollectionOptions) *mongo.Collection
}

func getMongoDatabase(mongoDBURL, databaseName string) MongoDatabaseInterface {
	return getMongoClient(mongoDBURL).Database(databaseName)
}

// MongoService is an implementation of the DAO interface using MongoDB as
// the backend driver
type MongoService struct {
	db     MongoDatabaseInterface
	Config config.Config
}

// NewMongoService constructs a MongoService connected to the configured
// database
func NewMongoService(cfg config.Config) *MongoService {
	return &MongoService{
		db:     getMongoDatabase(cfg.MongoDBURL, cfg.Database),
		Config: cfg,
	}
}

// CreateOrderResource writes a new order to the DB
func (m *MongoService) CreateOrderResource(order *models.OrderResourceDB) error {
	collection := m.db.Collection(m.Config.OrdersCollection)
	_, err := collection.InsertOne(context.Background(), order)

	return err
}

// GetOrderResource gets an order from the DB. If no order is found, nil is
// returned
func (m *MongoService) GetOrderResource(id string) (*models.OrderResourceDB, error) {
	var resource models.OrderResourceDB

	collection := m.db.Collection(m.Config.OrdersCollection)
	dbResource := collection.FindOne(context.Background(), bson.M{"_id": id})

	err := dbResource.Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	err = dbResource.Decode(&resource)
	if err != nil {
		return nil, err
	}

	return &resource, nil
}

// GetOrderResourceByPaymentIntentID gets the order referencing the given
// payment intent. If no order is found, nil is returned
func (m *MongoService) GetOrderResourceByPaymentIntentID(paymentIntentID string) (*models.OrderResourceDB, error) {
	var resource models.OrderResourceDB

	collection := m.db.Collection(m.Config.OrdersCollection)
	dbResource := collection.FindOne(context.Background(), bson.M{"payment_intent_id": paymentIntentID})

	err := dbResource.Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	err = dbResource.Decode(&resource)
	if err != nil {
		return nil, err
	}

	return &resource, nil
}

// FulfillOrderResource marks the order referencing the given payment intent
// as fulfilled. The filter on the fulfilled flag makes the transition happen
// at most once, no matter how many notifications arrive for the intent
func (m *MongoService) FulfillOrderResource(paymentIntentID string, receiptEmail string) (*models.OrderResourceDB, bool, error) {
	collection := m.db.Collection(m.Config.OrdersCollection)

	// To match the format time is saved to mongo, e.g. "2018-11-22T08:39:16.782Z", truncate the time
	update := bson.M{"$set": bson.M{
		"fulfilled":    true,
		"fulfilled_at": time.Now().Truncate(time.Millisecond),
	}}
	if receiptEmail != "" {
		update["$set"].(bson.M)["receipt_email"] = receiptEmail
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var resource models.OrderResourceDB
	err := collection.FindOneAndUpdate(
		context.Background(),
		bson.M{"payment_intent_id": paymentIntentID, "fulfilled": false},
		update,
		opts,
	).Decode(&resource)

	if err == nil {
		return &resource, true, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, false, err
	}

	// The order is either already fulfilled or does not exist
	order, err := m.GetOrderResourceByPaymentIntentID(paymentIntentID)
	if err != nil {
		return nil, false, err
	}

	return order, false, nil
}

// GetMomentResources gets the moments with the given ids
func (m *MongoService) GetMomentResources(ids []string) ([]models.MomentResourceDB, error) {
	collection := m.db.Collection(m.Config.MomentsCollection)

	cursor, err := collection.Find(context.Background(), bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}

	var resources []models.MomentResourceDB
	err = cursor.All(context.Background(), &resources)
	if err != nil {
		return nil, err
	}

	return resources, nil
}

// GetCollectionResource gets a photo collection from the DB. If no
// collection is found, nil is returned
func (m *MongoService) GetCollectionResource(id string) (*models.CollectionResourceDB, error) {
	var resource models.CollectionResourceDB

	collection := m.db.Collection(m.Config.GalleriesCollection)
	dbResource := collection.FindOne(context.Background(), bson.M{"_id": id})

	err := dbResource.Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	err = dbResource.Decode(&resource)
	if err != nil {
		return nil, err
	}

	return &resource, nil
}

// GetUserResource gets a user from the DB. If no user is found, nil is
// returned
func (m *MongoService) GetUserResource(id string) (*models.UserResourceDB, error) {
	var resource models.UserResourceDB

	collection := m.db.Collection(m.Config.UsersCollection)
	dbResource := collection.FindOne(context.Background(), bson.M{"_id": id})

	err := dbResource.Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	err = dbResource.Decode(&resource)
	if err != nil {
		return nil, err
	}

	return &resource, nil
}

// UpdateUserStripeConnect merges Stripe Express credentials into the user
// record
func (m *MongoService) UpdateUserStripeConnect(userID string, connect *models.StripeConnectDB) error {
	collection := m.db.Collection(m.Config.UsersCollection)

	result, err := collection.UpdateByID(
		context.Background(),
		userID,
		bson.M{"$set": bson.M{"stripe_connect": connect}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return errors.New("not found")
	}

	return nil
}

// CreateConnectStateResource writes a new single-use onboarding state token
// to the DB
func (m *MongoService) CreateConnectStateResource(state *models.ConnectStateDB) error {
	collection := m.db.Collection(m.Config.StateTokensCollection)
	_, err := collection.InsertOne(context.Background(), state)

	return err
}

// ConsumeConnectStateResource deletes the state token and returns the
// deleted document. The delete-on-read keeps the token single use, and the
// returned document carries the user it was issued to
func (m *MongoService) ConsumeConnectStateResource(state string) (*models.ConnectStateDB, error) {
	collection := m.db.Collection(m.Config.StateTokensCollection)

	var resource models.ConnectStateDB
	err := collection.FindOneAndDelete(context.Background(), bson.M{"_id": state}).Decode(&resource)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &resource, nil
}
