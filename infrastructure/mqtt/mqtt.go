package mqtt

import (
	"fmt"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"go.uber.org/zap"
)

func Connection(uri, user, password string) mqtt.Client {

	opts := mqtt.NewClientOptions().AddBroker(uri)
	opts.SetUsername(user)
	opts.SetPassword(password)
	opts.SetClientID(fmt.Sprint(time.Now().Unix()))

	client_mqtt := mqtt.NewClient(opts)

	if token := client_mqtt.Connect(); token.Wait() && token.Error() != nil {
		panic(token.Error())
	}

	return client_mqtt
}

type repositoryImpl struct {
	client []mqtt.Client
	zap.Logger
}

// NewMQTTRepositoryImpl - client[0] feeds the storefront broker, client[1]
// the internal ops broker.
func NewMQTTRepositoryImpl(client []mqtt.Client, logger *zap.Logger) *repositoryImpl {
	return &repositoryImpl{client, *logger}
}

func (r repositoryImpl) Publish(topic, message string, retain bool, prefix string) (err error) {
	var wg sync.WaitGroup
	wg.Add(len(r.client))

	for index, client := range r.client {
		go func(index int, client mqtt.Client) {
			publish := client.Publish(prefix+"/topic/"+topic+"/", byte(2), retain, message)
			if publish.Error() != nil {
				r.Logger.With(zap.Any("message", message)).
					With(zap.Any("topic", topic)).
					With(zap.Int("client", index)).
					Error("MQTT_PUBLISH")
			}
			wg.Done()
		}(index, client)
	}

	wg.Wait()

	return nil
}
