package event

import (
	"encoding/json"
	"errors"
	"fmt"
)

var errNilPayload = errors.New(ErrMsgNilPayload)

// DecodePayload returns the payload as T.
// Payloads published in-process already have the concrete type; payloads read
// back from the dead-letter file arrive as generic JSON maps and are converted.
func DecodePayload[T any](input interface{}) (T, error) {
	var result T
	if input == nil {
		return result, errNilPayload
	}
	if v, ok := input.(T); ok {
		return v, nil
	}
	data, err := json.Marshal(input)
	if err != nil {
		return result, fmt.Errorf("%s into %T: %w", ErrMsgDecodePayload, result, err)
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return result, fmt.Errorf("%s into %T: %w", ErrMsgDecodePayload, result, err)
	}
	return result, nil
}
