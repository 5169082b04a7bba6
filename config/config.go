// Package config defines the environment variable and command-line flags
// supported by this service and includes default values for particular
// fields.
package config

import (
	"sync"

	"github.com/companieshouse/gofigure"
)

var cfg *Config
var mtx sync.Mutex

// DevelopmentEnv is the environment in which platform fees and payout
// destinations are omitted, so that payments can be tested without a
// connected Stripe account.
const DevelopmentEnv = "development"

// Config defines the configuration options for this service.
type Config struct {
	BindAddr              string   `env:"BIND_ADDR"                    flag:"bind-addr"                    flagDesc:"Bind address"`
	MongoDBURL            string   `env:"MONGODB_URL"                  flag:"mongodb-url"                  flagDesc:"MongoDB server URL"`
	Database              string   `env:"MONGODB_DATABASE"             flag:"mongodb-database"             flagDesc:"MongoDB database for data"`
	OrdersCollection      string   `env:"MONGODB_ORDERS_COLLECTION"    flag:"mongodb-orders-collection"    flagDesc:"MongoDB collection for orders"`
	MomentsCollection     string   `env:"MONGODB_MOMENTS_COLLECTION"   flag:"mongodb-moments-collection"   flagDesc:"MongoDB collection for moments"`
	GalleriesCollection   string   `env:"MONGODB_GALLERIES_COLLECTION" flag:"mongodb-galleries-collection" flagDesc:"MongoDB collection for photo collections"`
	UsersCollection       string   `env:"MONGODB_USERS_COLLECTION"     flag:"mongodb-users-collection"     flagDesc:"MongoDB collection for users"`
	StateTokensCollection string   `env:"MONGODB_STATE_COLLECTION"     flag:"mongodb-state-collection"     flagDesc:"MongoDB collection for connect state tokens"`
	PaymentsWebURL        string   `env:"PAYMENTS_WEB_URL"             flag:"payments-web-url"             flagDesc:"Base URL for the PhotoNow web app, used in redirects and email links"`
	StripeSecretKey       string   `env:"STRIPE_SECRET_KEY"            flag:"stripe-secret-key"            flagDesc:"Secret key used to authenticate API calls with Stripe"`
	StripeWebhookSecret   string   `env:"STRIPE_WEBHOOK_SECRET"        flag:"stripe-webhook-secret"        flagDesc:"Signing secret used to verify Stripe webhook notifications"`
	ExpressAuthorizeURL   string   `env:"STRIPE_EXPRESS_REGISTER_URL"  flag:"stripe-express-register-url"  flagDesc:"Stripe Express onboarding URL template, contains a {STATE_VALUE} placeholder"`
	ExpressTokenURL       string   `env:"STRIPE_EXPRESS_CREATE_TOKEN_URL" flag:"stripe-express-create-token-url" flagDesc:"Stripe Connect authorization code exchange URL"`
	BrokerAddr            []string `env:"KAFKA_BROKER_ADDR"            flag:"broker-addr"                  flagDesc:"Kafka broker address"`
	SchemaRegistryURL     string   `env:"SCHEMA_REGISTRY_URL"          flag:"schema-registry-url"          flagDesc:"Schema registry URL"`
	Environment           string   `env:"ENVIRONMENT"                  flag:"environment"                  flagDesc:"Execution environment, fee and payout rules are relaxed in development"`
	RetryDelayMillis      string   `env:"ORDER_STATUS_RETRY_DELAY_MILLIS" flag:"order-status-retry-delay-millis" flagDesc:"Delay between order status poll attempts in milliseconds"`
	RetryAttempts         string   `env:"ORDER_STATUS_RETRY_ATTEMPTS"  flag:"order-status-retry-attempts"  flagDesc:"Maximum number of order status poll attempts"`
}

// IsDevelopment returns true when the service runs with development fee and
// polling rules.
func (c *Config) IsDevelopment() bool {
	return c.Environment == DevelopmentEnv
}

// DefaultConfig returns a pointer to a Config instance that has been populated
// with default values.
func DefaultConfig() *Config {
	return &Config{
		Database:              "photonow",
		OrdersCollection:      "orders",
		MomentsCollection:     "moments",
		GalleriesCollection:   "collections",
		UsersCollection:       "users",
		StateTokensCollection: "stripecsrftokens",
		Environment:           DevelopmentEnv,
		RetryDelayMillis:      "1000",
		RetryAttempts:         "30",
	}
}

// Get returns a pointer to a Config instance that has been populated with
// values provided by the environment or command-line flags, or with default
// values if none are provided.
func Get() (*Config, error) {
	mtx.Lock()
	defer mtx.Unlock()

	if cfg != nil {
		return cfg, nil
	}

	cfg = DefaultConfig()

	err := gofigure.Gofigure(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
