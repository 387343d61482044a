package chat

import (
	"sync"
	"time"

	"github.com/pkg/errors"
)

// DefaultReplyDelay is the assistant's simulated "thinking" time.
const DefaultReplyDelay = 1500 * time.Millisecond

// ErrClosed is returned when appending to a conversation that has been closed.
var ErrClosed = errors.New("conversation closed")

type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

type Message struct {
	ID     int       `json:"id"`
	Sender Sender    `json:"sender"`
	Text   string    `json:"text"`
	SentAt time.Time `json:"sent_at"`
}

type Option func(*Conversation)

func WithReplyDelay(d time.Duration) Option {
	return func(c *Conversation) {
		if d >= 0 {
			c.delay = d
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(c *Conversation) { c.now = now }
}

// WithResponder replaces Classify as the source of assistant replies.
func WithResponder(respond func(string) string) Option {
	return func(c *Conversation) { c.respond = respond }
}

// WithOnReply registers fn to be called, outside the conversation lock, after each assistant reply lands.
func WithOnReply(fn func(Message)) Option {
	return func(c *Conversation) { c.onReply = fn }
}

// Conversation is the append-only transcript of one chat session.
// Each user message sent through Send gets exactly one deferred assistant reply.
type Conversation struct {
	mu       sync.Mutex
	messages []Message
	pending  map[int]*time.Timer // keyed by the id of the user message being answered
	closed   bool
	wg       sync.WaitGroup

	delay   time.Duration
	respond func(string) string
	now     func() time.Time
	onReply func(Message)
}

func NewConversation(opts ...Option) *Conversation {
	c := &Conversation{
		pending: make(map[int]*time.Timer),
		delay:   DefaultReplyDelay,
		respond: Classify,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Append adds a message to the end of the transcript with the next sequential id.
func (c *Conversation) Append(sender Sender, text string) (Message, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return Message{}, ErrClosed
	}
	return c.append(sender, text), nil
}

// Send appends a user message and schedules the assistant's reply to it.
func (c *Conversation) Send(text string) (Message, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return Message{}, ErrClosed
	}

	msg := c.append(SenderUser, text)
	c.schedule(msg.ID, c.respond(text))
	return msg, nil
}

// must hold c.mu
func (c *Conversation) append(sender Sender, text string) Message {
	msg := Message{
		ID:     len(c.messages) + 1,
		Sender: sender,
		Text:   text,
		SentAt: c.now().UTC(),
	}
	c.messages = append(c.messages, msg)
	return msg
}

// must hold c.mu
func (c *Conversation) schedule(key int, reply string) {
	c.wg.Add(1)
	c.pending[key] = time.AfterFunc(c.delay, func() {
		defer c.wg.Done()

		c.mu.Lock()
		delete(c.pending, key)
		if c.closed {
			c.mu.Unlock()
			return
		}
		msg := c.append(SenderAssistant, reply)
		c.mu.Unlock()

		if c.onReply != nil {
			c.onReply(msg)
		}
	})
}

// Messages returns a copy of the transcript in send order.
func (c *Conversation) Messages() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append(make([]Message, 0, len(c.messages)), c.messages...)
}

// Pending is the number of replies still being "thought about".
func (c *Conversation) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}

// Wait blocks until every scheduled reply has landed or been discarded.
// It must not be called concurrently with Send.
func (c *Conversation) Wait() {
	c.wg.Wait()
}

// Close cancels pending replies; later appends fail with ErrClosed. Close is idempotent.
func (c *Conversation) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	for key, timer := range c.pending {
		if timer.Stop() {
			c.wg.Done()
		}
		delete(c.pending, key)
	}
}

func (c *Conversation) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}
