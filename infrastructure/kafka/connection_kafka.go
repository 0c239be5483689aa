package kafka

import (
	"strings"
	"time"

	"github.com/Shopify/sarama"
	"github.com/lysu/kazoo-go"
)

type Storage struct {
	sarama.SyncProducer
	*kazoo.Kazoo
}

// NewConnection resolves the broker list from ZooKeeper and keeps the
// configured brokers as a fallback for clusters not registered there.
func NewConnection(zkAddrs, brokers string) (storage Storage, err error) {

	conf := kazoo.NewConfig()
	conf.Timeout = time.Minute

	kz, err := kazoo.NewKazoo(strings.Split(zkAddrs, ","), conf)

	if err != nil {
		panic(err)
	}

	brokerList, err := kz.BrokerList()
	if err != nil || len(brokerList) == 0 {
		brokerList = strings.Split(brokers, ",")
	}

	producer, err := sarama.NewSyncProducer(brokerList, nil)

	if err != nil {
		panic(err)
	}

	return Storage{
		Kazoo:        kz,
		SyncProducer: producer,
	}, nil
}

func (s Storage) Close() {
	if s.SyncProducer != nil {
		_ = s.SyncProducer.Close()
	}
	if s.Kazoo != nil {
		_ = s.Kazoo.Close()
	}
}
