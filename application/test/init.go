package test

import (
	"vouchers-system/application"
	"vouchers-system/domain/repositories/mocks"
	"vouchers-system/infrastructure/pdfrender"
	"vouchers-system/utils/configs"
	logger2 "vouchers-system/utils/logger"
	"vouchers-system/utils/saga"
)

type MockService struct {
	VoucherApplication *application.VoucherApplication
	TemplateRepository *mocks.TemplateRepository
	OrderRepository    *mocks.OrderRepository
	ProductRepository  *mocks.ProductRepository
	IssueRepository    *mocks.IssueRepository
	Queue              *mocks.IQueue
	Mailer             *mocks.IMailer
	Mqtt               *mocks.IMqtt
	Notifier           *mocks.INotifier
}

// syncPool runs submitted tasks inline so tests can assert on work that the
// service fires through the worker pool.
type syncPool struct{}

func (p syncPool) Submit(task func()) { task() }
func (p syncPool) Release()           {}
func (p syncPool) Running() int       { return 0 }

func NewTestVoucherApplication() *MockService {
	config, err := configs.LoadTestConfig("../../")

	if err != nil {
		panic(err)
	}

	logger, err := logger2.NewLogger(config.ENV)

	if err != nil {
		panic(err)
	}

	templateRepoMock := &mocks.TemplateRepository{}
	orderRepoMock := &mocks.OrderRepository{}
	productRepoMock := &mocks.ProductRepository{}
	issueRepoMock := &mocks.IssueRepository{}
	queueMock := &mocks.IQueue{}
	mailerMock := &mocks.IMailer{}
	mqttMock := &mocks.IMqtt{}
	notifierMock := &mocks.INotifier{}

	return &MockService{
		VoucherApplication: &application.VoucherApplication{
			Config:             config,
			Logger:             logger,
			TemplateRepository: templateRepoMock,
			OrderRepository:    orderRepoMock,
			ProductRepository:  productRepoMock,
			IssueRepository:    issueRepoMock,
			Queue:              queueMock,
			Renderer:           pdfrender.NewRenderer(logger),
			Mailer:             mailerMock,
			MQTT:               mqttMock,
			Notifier:           notifierMock,
			IPool:              syncPool{},
			LogSaga:            saga.New(),
		},
		TemplateRepository: templateRepoMock,
		OrderRepository:    orderRepoMock,
		ProductRepository:  productRepoMock,
		IssueRepository:    issueRepoMock,
		Queue:              queueMock,
		Mailer:             mailerMock,
		Mqtt:               mqttMock,
		Notifier:           notifierMock,
	}
}
