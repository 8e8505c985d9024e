package produce

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	ProductExchange          = "product.exchange"
	ProductCreatedQueue      = "product.created"
	ProductCreatedRoutingKey = "product.created"
	ProductDeletedQueue      = "product.deleted"
	ProductDeletedRoutingKey = "product.deleted"
)

type ProductService struct {
	channel *amqp.Channel
}

type ProductCreatedMessage struct {
	ProductID  string `json:"product_id"`
	SKU        string `json:"sku"`
	FolderName string `json:"folder_name"`
	Timestamp  int64  `json:"timestamp"`
}

type ProductDeletedMessage struct {
	FolderName     string `json:"folder_name"`
	CorrelationID  string `json:"correlation_id"`
	StorageCleaned bool   `json:"storage_cleaned"`
	Timestamp      int64  `json:"timestamp"`
}

func InitProductService(channel *amqp.Channel) *ProductService {
	service := &ProductService{
		channel: channel,
	}

	// Declare exchange
	err := channel.ExchangeDeclare(
		ProductExchange,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		panic("Failed to declare Product exchange: " + err.Error())
	}

	for queue, routingKey := range map[string]string{
		ProductCreatedQueue: ProductCreatedRoutingKey,
		ProductDeletedQueue: ProductDeletedRoutingKey,
	} {
		_, err = channel.QueueDeclare(
			queue,
			true,  // durable
			false, // auto-delete
			false, // exclusive
			false, // no-wait
			nil,
		)
		if err != nil {
			panic("Failed to declare Product queue: " + err.Error())
		}

		err = channel.QueueBind(
			queue,
			routingKey,
			ProductExchange,
			false,
			nil,
		)
		if err != nil {
			panic("Failed to bind Product queue: " + err.Error())
		}
	}

	return service
}

func (s *ProductService) PublishProductCreated(ctx context.Context, productID, sku, folderName string) error {
	message := ProductCreatedMessage{
		ProductID:  productID,
		SKU:        sku,
		FolderName: folderName,
		Timestamp:  time.Now().Unix(),
	}

	return s.publish(ctx, ProductCreatedRoutingKey, message)
}

func (s *ProductService) PublishProductDeleted(ctx context.Context, folderName, correlationID string, storageCleaned bool) error {
	message := ProductDeletedMessage{
		FolderName:     folderName,
		CorrelationID:  correlationID,
		StorageCleaned: storageCleaned,
		Timestamp:      time.Now().Unix(),
	}

	return s.publish(ctx, ProductDeletedRoutingKey, message)
}

func (s *ProductService) publish(ctx context.Context, routingKey string, message interface{}) error {
	body, err := json.Marshal(message)
	if err != nil {
		return err
	}

	return s.channel.PublishWithContext(
		ctx,
		ProductExchange,
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		},
	)
}
