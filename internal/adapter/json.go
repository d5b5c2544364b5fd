package adapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
)

// JSON encodes and decodes API payloads. Untyped numbers decode as
// json.Number so token features keep their exact text ("1000000", not "1e+06").
//
//go:generate mockgen -source=json.go -destination=../mocks/json.go -package=mocks -mock_names=JSON=MockJSON
type JSON interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

type numberJSON struct{}

// NewJSON creates the JSON codec used for API payloads
func NewJSON() JSON {
	return numberJSON{}
}

func (numberJSON) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (numberJSON) Unmarshal(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errors.New("invalid character after top-level value")
	}
	return nil
}
