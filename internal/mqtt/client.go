package mqtt

// Client is the publishing surface other packages depend on.
type Client interface {
	Prefix() string
	Topics() *Topics
	Publish(topic string, payload interface{}, retain bool)
}
