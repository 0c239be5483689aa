package constants

// Message is the envelope every MQTT payload is wrapped in.
type Message struct {
	Event       string      `json:"event"`
	Key         string      `json:"key"`
	MessageData interface{} `json:"message_data"`
}
