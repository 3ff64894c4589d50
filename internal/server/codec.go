package server

import (
	"encoding/json"
	"fmt"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

// jsonCodec serializes the plain Go messages of this package for the Connect protocol.
// Protobuf messages are still encoded with protojson.
type jsonCodec struct{}

var _ connect.Codec = jsonCodec{}

// Codec returns the codec shared by the handlers and clients of this package.
func Codec() connect.Codec {
	return jsonCodec{}
}

func (jsonCodec) Name() string {
	return "json"
}

func (jsonCodec) Marshal(message any) ([]byte, error) {
	if pm, ok := message.(proto.Message); ok {
		data, err := protojson.Marshal(pm)
		if err != nil {
			return nil, fmt.Errorf("protojson.Marshal(%T) > %w", message, err)
		}
		return data, nil
	}
	data, err := json.Marshal(message)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal(%T) > %w", message, err)
	}
	return data, nil
}

func (jsonCodec) Unmarshal(data []byte, message any) error {
	// an empty message may arrive as an empty body
	if len(data) == 0 {
		return nil
	}
	if pm, ok := message.(proto.Message); ok {
		if err := (protojson.UnmarshalOptions{DiscardUnknown: true}).Unmarshal(data, pm); err != nil {
			return fmt.Errorf("protojson.Unmarshal(%T) > %w", message, err)
		}
		return nil
	}
	if err := json.Unmarshal(data, message); err != nil {
		return fmt.Errorf("json.Unmarshal(%T) > %w", message, err)
	}
	return nil
}
