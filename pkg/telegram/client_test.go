package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewClient_RejectsBadPollTimeout(t *testing.T) {
	for _, timeout := range []int{0, -5} {
		client, err := NewClient("token", timeout)
		assert.Error(t, err)
		assert.Nil(t, client)
	}
}
