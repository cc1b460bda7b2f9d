package mail

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSendgridPrepareUsesBcc(t *testing.T) {
	m := NewSendgridMailer("key", Address{Name: "School", Email: "school@example.com"}, "PTA")
	msg := m.prepare(Message{
		Bcc:     []Address{{Name: "A", Email: "a@example.com"}, {Name: "B", Email: "b@example.com"}},
		Subject: "Quiz",
		Text:    "Friday",
	})

	require.Len(t, msg.Personalizations, 1)
	p := msg.Personalizations[0]
	assert.Equal(t, "[PTA] Quiz", p.Subject)
	assert.Len(t, p.BCC, 2)
	require.Len(t, p.To, 1)
	assert.Equal(t, "school@example.com", p.To[0].Address)
	require.Len(t, msg.Content, 1)
	assert.Equal(t, "Friday", msg.Content[0].Value)
}

func TestSendgridSkipsEmptyMessages(t *testing.T) {
	m := NewSendgridMailer("key", Address{Email: "school@example.com"}, "PTA")
	assert.NoError(t, m.Send(context.Background(), Message{Subject: "nobody"}))
}

func TestLogMailer(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	m := NewLogMailer(zap.New(core))

	require.NoError(t, m.Send(context.Background(), Message{
		Bcc:     []Address{{Email: "a@example.com"}},
		Subject: "Quiz",
		Text:    "Friday",
	}))
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "email", entry.Message)
	assert.Equal(t, "a@example.com", entry.ContextMap()["recipients"])
}
