package configs

import (
	"github.com/spf13/viper"
)

type Config struct {
	Prefix        string     `json:"prefix" mapstructure:"prefix"`
	Port          string     `json:"port" mapstructure:"port"`
	ENV           string     `json:"env" mapstructure:"env"`
	Job           bool       `json:"job" mapstructure:"job"`
	MaxPoolSize   int        `json:"max_pool_size" mapstructure:"max_pool_size"`
	MongoURI      string     `json:"mongo_uri" mapstructure:"mongo_uri"`
	MongoDatabase string     `json:"mongo_database" mapstructure:"mongo_database"`
	QueueUri      string     `json:"queue_uri" mapstructure:"queue_uri"`
	KafkaConfig   Kafka      `json:"kafka_config" mapstructure:"kafka_config"`
	MQTTShopUri   string     `json:"mqtt_shop_uri" mapstructure:"mqtt_shop_uri"`
	MQTTOpsUri    MQTTOpsUri `json:"mqtt_ops_uri" mapstructure:"mqtt_ops_uri"`
	SMTP          SMTP       `json:"smtp" mapstructure:"smtp"`
	Telegram      Telegram   `json:"telegram" mapstructure:"telegram"`
	Shop          Shop       `json:"shop" mapstructure:"shop"`
}

type Kafka struct {
	Zookeepers string `json:"zookeepers" mapstructure:"zookeepers"`
	Brokers    string `json:"brokers" mapstructure:"brokers"`
	Partitions int    `json:"partitions" mapstructure:"partitions"`
	Replicas   int    `json:"replicas" mapstructure:"replicas"`
}

type MQTTOpsUri struct {
	Uri      string `json:"uri" mapstructure:"uri"`
	Username string `json:"username" mapstructure:"username"`
	Password string `json:"password" mapstructure:"password"`
	Prefix   string `json:"prefix" mapstructure:"prefix"`
}

type SMTP struct {
	Host     string `json:"host" mapstructure:"host"`
	Port     int    `json:"port" mapstructure:"port"`
	Username string `json:"username" mapstructure:"username"`
	Password string `json:"password" mapstructure:"password"`
	From     string `json:"from" mapstructure:"from"`
}

type Telegram struct {
	Token     string            `json:"token" mapstructure:"token"`
	ChannelId TelegramChannelId `json:"channel_id" mapstructure:"channel_id"`
}

type TelegramChannelId struct {
	Fulfillment int64 `json:"fulfillment" mapstructure:"fulfillment"`
	Ops         int64 `json:"ops" mapstructure:"ops"`
}

type Shop struct {
	Name    string `json:"name" mapstructure:"name"`
	BaseUri string `json:"base_uri" mapstructure:"base_uri"`
}

func LoadConfig() (*Config, error) {
	viper.AddConfigPath("./")
	viper.SetConfigType("json")
	viper.SetConfigName("config.json")
	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}
	result := &Config{}
	err = viper.Unmarshal(result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// LoadTestConfig load config for running tests
func LoadTestConfig(configPath string) (*Config, error) {
	viper.AddConfigPath(configPath)
	viper.SetConfigType("json")
	viper.SetConfigName("config_test.json")
	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}
	result := &Config{}
	err = viper.Unmarshal(result)
	if err != nil {
		return nil, err
	}
	return result, nil
}
