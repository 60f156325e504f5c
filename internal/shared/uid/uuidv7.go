package uid

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

var _ Generator = uuidv7Generator{}

type uuidv7Generator struct{}

func NewUUIDv7() Generator {
	return uuidv7Generator{}
}

func (uuidv7Generator) Generate(ctx context.Context) (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("uid: failed to generate uuid v7: %w", err)
	}
	return id.String(), nil
}
