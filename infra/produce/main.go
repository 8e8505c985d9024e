package produce

import amqp "github.com/rabbitmq/amqp091-go"

type Produce struct {
	ProductService *ProductService
}

var produceInstance *Produce

func InitProduce(channel *amqp.Channel) *Produce {
	if produceInstance != nil {
		return produceInstance
	}

	productService := InitProductService(channel)
	if productService == nil {
		panic("Failed to initialize Product produce service")
	}

	produceInstance = &Produce{
		ProductService: productService,
	}

	return produceInstance
}

func GetProduce() *Produce {
	if produceInstance == nil {
		panic("Produce not initialized. Call InitProduce() first.")
	}
	return produceInstance
}
