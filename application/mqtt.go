package application

import (
	"context"
	"encoding/json"

	"vouchers-system/domain/constants"
)

func (us *VoucherApplication) CreateMessageMqtt(ctx context.Context, topic, event, key string,
	data interface{}, retain bool) error {
	message := new(constants.Message)

	message.Event = event
	message.Key = key
	message.MessageData = data

	prefix := us.Config.MQTTOpsUri.Prefix
	json_send, err := json.Marshal(message)

	if err != nil {
		return err
	}

	return us.MQTT.Publish(topic, string(json_send), retain, prefix)
}
