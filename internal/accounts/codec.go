package accounts

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Encode serializes the list as a JSON array. A nil list encodes as [].
func Encode(list Users) ([]byte, error) {
	if list == nil {
		list = Users{}
	}
	b, err := json.Marshal(list)
	if err != nil {
		return nil, fmt.Errorf("failed to encode users: %w", err)
	}
	return b, nil
}

// Decode parses a stored value. An absent, blank or null value is an empty
// list.
func Decode(b []byte) (Users, error) {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return Users{}, nil
	}

	var list Users
	if err := json.Unmarshal(trimmed, &list); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptRecords, err)
	}
	if list == nil {
		list = Users{}
	}
	return list, nil
}
