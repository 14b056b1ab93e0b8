package common

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ParseObjectID turns a hex id into an ObjectID, failing with ErrInvalidInput.
func ParseObjectID(field, hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(strings.TrimSpace(hex))
	if err != nil {
		return primitive.NilObjectID, NewInvalidInputError(field, "must be a 24 character hex object id")
	}
	return id, nil
}

// ParseObjectIDs parses every id in the list. An empty list is valid.
func ParseObjectIDs(field string, hexes []string) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(hexes))
	for _, h := range hexes {
		id, err := ParseObjectID(field, h)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// ValidateTag only rejects the empty tag; tags are otherwise opaque and
// compared byte for byte, so no trimming or case folding happens here.
func ValidateTag(tag string) error {
	if tag == "" {
		return NewInvalidInputError("tag", "must not be empty")
	}
	return nil
}
