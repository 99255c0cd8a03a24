package drag

import (
	json "github.com/goccy/go-json"
)

// Payload is the data carried by a drag gesture from pick-up to drop.
// Both fields are required: a payload missing either is malformed and the
// transition is aborted.
type Payload struct {
	RecordID    string `json:"record_id"`
	SourceStage string `json:"source_stage"`
}

// Encode serializes the payload for the gesture transport.
func (p Payload) Encode() ([]byte, error) {
	if p.RecordID == "" || p.SourceStage == "" {
		return nil, ErrMalformedPayload
	}
	return json.Marshal(p)
}

// DecodePayload parses an encoded drag payload, returning
// ErrMalformedPayload when the data cannot be parsed or a required field is
// missing.
func DecodePayload(data []byte) (Payload, error) {
	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return Payload{}, ErrMalformedPayload
	}
	if p.RecordID == "" || p.SourceStage == "" {
		return Payload{}, ErrMalformedPayload
	}
	return p, nil
}
