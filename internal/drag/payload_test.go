package drag

import (
	"errors"
	"testing"
)

func TestPayload_EncodeDecode(t *testing.T) {
	p := Payload{RecordID: "rec-1", SourceStage: "interview"}

	encoded, err := p.Encode()
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	decoded, err := DecodePayload(encoded)
	if err != nil {
		t.Fatalf("DecodePayload failed: %v", err)
	}
	if decoded != p {
		t.Errorf("round trip = %+v, want %+v", decoded, p)
	}
}

func TestPayload_EncodeRejectsIncomplete(t *testing.T) {
	for _, p := range []Payload{
		{},
		{RecordID: "rec-1"},
		{SourceStage: "interview"},
	} {
		if _, err := p.Encode(); !errors.Is(err, ErrMalformedPayload) {
			t.Errorf("Encode(%+v) err = %v, want ErrMalformedPayload", p, err)
		}
	}
}

func TestDecodePayload_Malformed(t *testing.T) {
	cases := map[string][]byte{
		"empty":          nil,
		"not json":       []byte("definitely not json"),
		"missing record": []byte(`{"source_stage":"interview"}`),
		"missing source": []byte(`{"record_id":"rec-1"}`),
		"empty fields":   []byte(`{"record_id":"","source_stage":""}`),
	}
	for name, data := range cases {
		if _, err := DecodePayload(data); !errors.Is(err, ErrMalformedPayload) {
			t.Errorf("%s: err = %v, want ErrMalformedPayload", name, err)
		}
	}
}
