package redis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpenRequiresHost(t *testing.T) {
	_, err := Open(context.Background(), Config{Port: 6379})
	assert.Error(t, err)
}
