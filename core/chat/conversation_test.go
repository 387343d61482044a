package chat

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestConversation_SendReply(t *testing.T) {
	now := time.Date(2025, 1, 15, 14, 30, 0, 0, time.UTC)
	c := NewConversation(WithReplyDelay(0), WithClock(func() time.Time { return now }))
	defer c.Close()

	userMsg, err := c.Send("Tell me about recycling")
	require.NoError(t, err)
	assert.Equal(t, 1, userMsg.ID)
	assert.Equal(t, SenderUser, userMsg.Sender)

	c.Wait()

	msgs := c.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, 1, msgs[0].ID)
	assert.Equal(t, 2, msgs[1].ID)
	assert.Equal(t, SenderAssistant, msgs[1].Sender)
	assert.Equal(t, response("recycling"), msgs[1].Text)
	assert.Equal(t, now, msgs[1].SentAt)
	assert.Equal(t, 0, c.Pending())
}

func TestConversation_Append(t *testing.T) {
	c := NewConversation()
	defer c.Close()

	greeting, err := c.Append(SenderAssistant, Greeting("Emma"))
	require.NoError(t, err)
	assert.Equal(t, 1, greeting.ID)
	assert.Contains(t, greeting.Text, "Hello Emma!")

	msg, err := c.Append(SenderUser, "hi")
	require.NoError(t, err)
	assert.Equal(t, 2, msg.ID)
	assert.Equal(t, 0, c.Pending(), "Append never schedules a reply")
}

func TestConversation_MessagesIsACopy(t *testing.T) {
	c := NewConversation()
	defer c.Close()

	_, _ = c.Append(SenderUser, "first")
	msgs := c.Messages()
	msgs[0].Text = "changed"
	assert.Equal(t, "first", c.Messages()[0].Text)
	assert.Equal(t, c.Messages(), c.Messages())
}

func TestConversation_overlappingSendsLoseNothing(t *testing.T) {
	var mu sync.Mutex
	var replies []Message
	c := NewConversation(WithReplyDelay(time.Millisecond), WithOnReply(func(m Message) {
		mu.Lock()
		replies = append(replies, m)
		mu.Unlock()
	}))
	defer c.Close()

	texts := []string{"plastic?", "water?", "recycle?", "hello?"}
	for _, text := range texts {
		_, err := c.Send(text)
		require.NoError(t, err)
	}
	c.Wait()

	msgs := c.Messages()
	require.Len(t, msgs, 2*len(texts))

	var users, assistants int
	for i, m := range msgs {
		assert.Equal(t, i+1, m.ID, "ids strictly increasing in send order")
		if m.Sender == SenderUser {
			users++
		} else {
			assistants++
		}
	}
	assert.Equal(t, len(texts), users)
	assert.Equal(t, len(texts), assistants)
	assert.Len(t, replies, len(texts))
}

func TestConversation_Close(t *testing.T) {
	c := NewConversation(WithReplyDelay(time.Hour))

	_, err := c.Send("What about plastic?")
	require.NoError(t, err)
	assert.Equal(t, 1, c.Pending())

	c.Close()
	c.Close() // idempotent
	c.Wait()  // returns once the pending reply is discarded

	assert.True(t, c.Closed())
	assert.Equal(t, 0, c.Pending())
	assert.Len(t, c.Messages(), 1)

	_, err = c.Append(SenderUser, "anyone?")
	assert.ErrorIs(t, err, ErrClosed)
	_, err = c.Send("anyone?")
	assert.ErrorIs(t, err, ErrClosed)
	assert.Len(t, c.Messages(), 1)
}

func TestConversation_customResponder(t *testing.T) {
	c := NewConversation(WithReplyDelay(0), WithResponder(func(s string) string { return "echo: " + s }))
	defer c.Close()

	_, _ = c.Send("ping")
	c.Wait()
	msgs := c.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, "echo: ping", msgs[1].Text)
}
