package rabbitmq

import (
	"encoding/json"

	"github.com/streadway/amqp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"vouchers-system/utils/configs"
	"vouchers-system/utils/gpooling"
)

type options struct {
	Uri        string
	AutoAck    bool
	AutoDelete bool
	Durable    bool
	Exclusive  bool
	NoWait     bool
}

func NewOptions() *options {
	return &options{}
}

func (o *options) WithUri(uri string) *options {
	o.Uri = uri
	return o
}

func (o *options) WithAutoAck(ack bool) *options {
	o.AutoAck = ack
	return o
}

type RabbitMQ struct {
	Connection *amqp.Connection
	IPool      gpooling.IPool
	options
	configs.Config
	*zap.Logger
}

func NewRabbitMQ(o options, conf configs.Config, log *zap.Logger, pool gpooling.IPool) (*RabbitMQ, error) {
	conn, err := amqp.Dial(o.Uri)

	if err != nil {
		panic(err)
	}

	return &RabbitMQ{
		IPool:      pool,
		Connection: conn,
		options:    o,
		Config:     conf,
		Logger:     log,
	}, nil
}

func (r *RabbitMQ) PublishToExchange(msg interface{}, topic string) error {
	ch, err := r.Connection.Channel()

	if err != nil {
		return err
	}

	send_data, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	err = ch.Publish(
		topic, // exchange
		topic, // routing key
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        send_data,
		})

	return err

}

func (r *RabbitMQ) WithConsumerQueue(fn func(msg []byte) error, queue_name string, retry bool) error {
	r.IPool.Submit(func() {
		ch, err := r.Connection.Channel()
		defer ch.Close()
		if err != nil {
			r.Logger.With(zap.Field{
				Key:       "err-msg-queue-" + queue_name,
				Type:      zapcore.ReflectType,
				Interface: err,
			}).Info("err queue ")
			return
		}
		q, err := ch.QueueDeclare(
			queue_name,   // name
			true,         // durable
			r.AutoDelete, // delete when unused
			r.Exclusive,  // exclusive
			r.NoWait,     // no-wait
			nil,          // arguments
		)
		if err != nil {
			r.Logger.With(zap.Field{
				Key:       "err-msg-queue-" + queue_name,
				Type:      zapcore.ReflectType,
				Interface: err,
			}).Info("err queue ")
			return
		}

		msgs, err := ch.Consume(
			q.Name,      // queue
			"",          // consumer
			r.AutoAck,   // auto-ack
			r.Exclusive, // exclusive
			false,       // no-local
			false,       // no-wait
			nil,         // args
		)

		if err != nil {
			r.Logger.With(zap.Field{
				Key:       "err-msg-queue-" + queue_name,
				Type:      zapcore.ReflectType,
				Interface: err,
			}).Info("err queue ")
			return
		}

		for d := range msgs {
			fn(d.Body)
			if retry {
				_ = d.Ack(false)
			} else {
				_ = d.Ack(true)
			}

		}

		return
	})

	return nil
}
