package application

import (
	"encoding/json"

	"github.com/Shopify/sarama"
	"go.uber.org/zap"

	"vouchers-system/domain/constants"
	"vouchers-system/utils/saga"
)

// kafkaAuditSink streams every saga log entry to the fulfillment audit topic,
// keyed by execution id so one pipeline run stays in one partition.
type kafkaAuditSink struct {
	producer sarama.SyncProducer
	logger   *zap.Logger
}

func (us *VoucherApplication) auditSink() saga.Sink {
	return &kafkaAuditSink{producer: us.KafkaConnection.SyncProducer, logger: us.Logger}
}

func (k *kafkaAuditSink) Append(log *saga.Log) {
	if k.producer == nil {
		return
	}

	payload, err := json.Marshal(log)
	if err != nil {
		return
	}

	_, _, err = k.producer.SendMessage(&sarama.ProducerMessage{
		Topic: constants.TopicFulfillmentLog,
		Key:   sarama.StringEncoder(log.ExecutionID),
		Value: sarama.ByteEncoder(payload),
	})
	if err != nil {
		k.logger.Error("fulfillment_audit_err", zap.Error(err))
	}
}
