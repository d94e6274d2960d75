package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextRoundTrip(t *testing.T) {
	sess := &Session{UserID: 42, IsFarmer: true}

	ctx := NewContext(context.Background(), sess)

	got := FromContext(ctx)
	assert.Equal(t, sess, got)
}

func TestFromContext_Anonymous(t *testing.T) {
	assert.Nil(t, FromContext(context.Background()))
}
