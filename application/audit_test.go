package application

import (
	"encoding/json"
	"testing"

	"github.com/Shopify/sarama/mocks"
	"github.com/stretchr/testify/assert"

	logger2 "vouchers-system/utils/logger"
	"vouchers-system/utils/saga"
)

func TestKafkaAuditSink_Append(t *testing.T) {
	lg, _ := logger2.NewLogger("test")

	t.Run("test-case-1 log entry lands on the audit topic keyed by execution", func(t *testing.T) {
		producer := mocks.NewSyncProducer(t, nil)
		producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(value []byte) error {
			var entry saga.Log
			return json.Unmarshal(value, &entry)
		})

		sink := &kafkaAuditSink{producer: producer, logger: lg}
		sink.Append(&saga.Log{ExecutionID: "exec-1", SagaName: "FulfillVoucherOrder", State: saga.LogTypeStartSaga})

		assert.NoError(t, producer.Close())
	})

	t.Run("test-case-2 missing producer is a silent no-op", func(t *testing.T) {
		sink := &kafkaAuditSink{logger: lg}

		sink.Append(&saga.Log{ExecutionID: "exec-2", State: saga.LogTypeSagaComplete})
	})
}
