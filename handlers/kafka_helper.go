package handlers

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/photonow/orders.api.photonow.io/config"
	"github.com/photonow/orders.api.photonow.io/models"
	"github.com/photonow/orders.api.photonow.io/transformers"

	"github.com/companieshouse/chs.go/avro"
	"github.com/companieshouse/chs.go/avro/schema"
	"github.com/companieshouse/chs.go/kafka/producer"
	"github.com/google/uuid"
)

// ProducerTopic is the topic to which the order confirmation kafka message is sent
const ProducerTopic = "email-send"

// ProducerSchemaName is the schema which will be used to send the order confirmation kafka message with
const ProducerSchemaName = "email-send"

// orderConfirmationMessageType identifies the email template for the downstream email sender
const orderConfirmationMessageType = "order-confirmation"

// emailSend represents the avro schema the email sender consumes
type emailSend struct {
	AppID        string `avro:"app_id"`
	MessageID    string `avro:"message_id"`
	MessageType  string `avro:"message_type"`
	Data         string `avro:"data"`
	EmailAddress string `avro:"email_address"`
	CreatedAt    string `avro:"created_at"`
}

// orderConfirmation is the data payload within the email, carrying the link
// to the customer's confirmation page
type orderConfirmation struct {
	To              string `json:"to"`
	OrderID         string `json:"orderId"`
	ConfirmationURL string `json:"confirmationUrl"`
}

// produceEmailMessage handles creating a producer, marshalling the order confirmation into the correct avro schema and
// sending the message to the topic defined in ProducerTopic
func produceEmailMessage(order *models.OrderResourceDB) error {
	cfg, err := config.Get()
	if err != nil {
		err = fmt.Errorf("error getting config for kafka message production: [%v]", err)
		return err
	}

	// Get a producer
	kafkaProducer, err := producer.New(&producer.Config{Acks: &producer.WaitForAll, BrokerAddrs: cfg.BrokerAddr})
	if err != nil {
		err = fmt.Errorf("error creating kafka producer: [%v]", err)
		return err
	}
	emailSendSchema, err := schema.Get(cfg.SchemaRegistryURL, ProducerSchemaName)
	if err != nil {
		err = fmt.Errorf("error getting schema from schema registry: [%v]", err)
		return err
	}
	producerSchema := &avro.Schema{
		Definition: emailSendSchema,
	}

	// Prepare a message with the avro schema
	message, err := prepareKafkaMessage(order, cfg.PaymentsWebURL, *producerSchema)
	if err != nil {
		err = fmt.Errorf("error preparing kafka message with schema: [%v]", err)
		return err
	}

	// Send the message
	partition, offset, err := kafkaProducer.Send(message)
	if err != nil {
		err = fmt.Errorf("failed to send message in partition: %d at offset %d", partition, offset)
		return err
	}
	return nil
}

// prepareKafkaMessage is pulled out of produceEmailMessage() to allow unit testing of non-kafka portion of code
func prepareKafkaMessage(order *models.OrderResourceDB, webURL string, emailSendSchema avro.Schema) (*producer.Message, error) {
	confirmation := orderConfirmation{
		To:              order.ReceiptEmail,
		OrderID:         order.ID,
		ConfirmationURL: transformers.ConfirmationURL(webURL, order.ID),
	}

	dataBytes, err := json.Marshal(confirmation)
	if err != nil {
		err = fmt.Errorf("error marshalling order confirmation data: [%v]", err)
		return nil, err
	}

	emailSendMessage := emailSend{
		AppID:        "orders.api.photonow.io",
		MessageID:    uuid.NewString(),
		MessageType:  orderConfirmationMessageType,
		Data:         string(dataBytes),
		EmailAddress: order.ReceiptEmail,
		CreatedAt:    time.Now().Format(time.RFC3339),
	}

	messageBytes, err := emailSendSchema.Marshal(emailSendMessage)
	if err != nil {
		err = fmt.Errorf("error marshalling order confirmation message: [%v]", err)
		return nil, err
	}

	producerMessage := &producer.Message{
		Value: messageBytes,
		Topic: ProducerTopic,
	}
	return producerMessage, nil
}
