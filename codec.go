package ogmeta

import (
	"encoding/json"
	"fmt"
)

// envelope is the JSON form of a Metadata value.
type envelope struct {
	Kind   Kind            `json:"kind"`
	Record json.RawMessage `json:"record"`
}

// MarshalMetadata encodes m with its kind so that UnmarshalMetadata can
// restore the concrete record type.
func MarshalMetadata(m Metadata) ([]byte, error) {
	if m == nil {
		return nil, Errorf(EINVALID, "metadata required")
	}
	record, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encode %s record: %w", m.Kind(), err)
	}
	return json.Marshal(envelope{Kind: m.Kind(), Record: record})
}

// UnmarshalMetadata decodes a record written by MarshalMetadata.
func UnmarshalMetadata(data []byte) (Metadata, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decode metadata envelope: %w", err)
	}
	if !env.Kind.Valid() {
		return nil, Errorf(EINVALID, "unknown metadata kind %q", env.Kind)
	}

	m := NewMetadata(env.Kind, "")
	if err := json.Unmarshal(env.Record, m); err != nil {
		return nil, fmt.Errorf("decode %s record: %w", env.Kind, err)
	}
	return m, nil
}
