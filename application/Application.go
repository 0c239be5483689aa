package application

import (
	mqttCl "github.com/eclipse/paho.mqtt.golang"
	"go.uber.org/zap"

	"vouchers-system/domain/repositories"
	"vouchers-system/infrastructure/database_mgo"
	"vouchers-system/infrastructure/database_mgo/issues"
	"vouchers-system/infrastructure/database_mgo/orders"
	"vouchers-system/infrastructure/database_mgo/products"
	"vouchers-system/infrastructure/database_mgo/templates"
	"vouchers-system/infrastructure/kafka"
	"vouchers-system/infrastructure/mailer"
	"vouchers-system/infrastructure/mqtt"
	"vouchers-system/infrastructure/pdfrender"
	"vouchers-system/infrastructure/rabbitmq"
	"vouchers-system/utils/configs"
	"vouchers-system/utils/gpooling"
	"vouchers-system/utils/saga"
	"vouchers-system/utils/telegram"
)

type VoucherApplication struct {
	Config             *configs.Config
	Queue              repositories.IQueue
	Logger             *zap.Logger
	TemplateRepository repositories.TemplateRepository
	OrderRepository    repositories.OrderRepository
	ProductRepository  repositories.ProductRepository
	IssueRepository    repositories.IssueRepository
	Renderer           *pdfrender.Renderer
	Mailer             repositories.IMailer
	MQTT               repositories.IMqtt
	Notifier           repositories.INotifier
	IPool              gpooling.IPool
	LogSaga            saga.Store
	KafkaConnection    kafka.Storage
}

func NewVoucherApplication(config *configs.Config, logger *zap.Logger, pool gpooling.IPool) *VoucherApplication {
	opts := rabbitmq.NewOptions().WithUri(config.QueueUri)

	queue, _ := rabbitmq.NewRabbitMQ(*opts, *config, logger, pool)
	db := database_mgo.NewMongoDBconnection(config.MongoURI)

	kafkaConn, _ := kafka.NewConnection(config.KafkaConfig.Zookeepers, config.KafkaConfig.Brokers)

	var mqttObjClient = []mqttCl.Client{
		mqtt.Connection(config.MQTTShopUri, "admin", "admin"),
		mqtt.Connection(config.MQTTOpsUri.Uri, config.MQTTOpsUri.Username, config.MQTTOpsUri.Password),
	}

	application := &VoucherApplication{
		Config: config,
		Logger: logger,
		TemplateRepository: templates.NewTemplateCollectionImpl(db, config),
		OrderRepository:    orders.NewOrderCollectionImpl(db, config),
		ProductRepository:  products.NewProductCollectionImpl(db, config),
		IssueRepository:    issues.NewIssueCollectionImpl(db, config),
		Renderer:           pdfrender.NewRenderer(logger),
		Mailer:             mailer.NewMailer(config.SMTP, logger),
		MQTT:               mqtt.NewMQTTRepositoryImpl(mqttObjClient, logger),
		Notifier:           telegram.NewBot(config.Telegram.Token, logger),
		IPool:              pool,
		LogSaga:            saga.New(),
		KafkaConnection:    kafkaConn,
	}

	// typed-nil guard: a failed broker connection must leave Queue nil
	if queue != nil {
		application.Queue = queue
	}

	application.RegisterConsumers()

	return application
}
