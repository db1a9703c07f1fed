package models

import "encoding/json"

// EncodeMandates serializes mandates into the blob stored in the mandates column.
// A nil list is stored as an empty JSON array.
func EncodeMandates(mandates []string) (string, error) {
	if mandates == nil {
		mandates = []string{}
	}
	data, err := json.Marshal(mandates)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// DecodeMandates parses a mandates blob. Anything that is not a JSON array of
// strings decodes to an empty list; callers always get a non-nil slice.
func DecodeMandates(blob string) []string {
	var mandates []string
	if err := json.Unmarshal([]byte(blob), &mandates); err != nil || mandates == nil {
		return []string{}
	}
	return mandates
}
