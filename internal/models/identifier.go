package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

var ErrInvalidID = errors.New("identifier must be an integer")

// ID accepts both 6 and "6" on the wire and always encodes as a number.
type ID int64

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return ErrInvalidID
		}
		v, err := ParseID(s)
		if err != nil {
			return err
		}
		*id = v
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return ErrInvalidID
	}
	v, err := ParseID(n.String())
	if err != nil {
		return err
	}
	*id = v
	return nil
}

func ParseID(s string) (ID, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, ErrInvalidID
	}
	return ID(v), nil
}
