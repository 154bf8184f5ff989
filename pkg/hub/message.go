// Package hub fans telemetry out to websocket clients through channels.
package hub

// MessageType indicates the websocket message format
type MessageType int

const (
	JSONMessage MessageType = iota
	BinaryMessage
)

type Message struct {
	Type MessageType
	Data []byte
}

func NewJSONMessage(data []byte) Message {
	return Message{Type: JSONMessage, Data: data}
}
