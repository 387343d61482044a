package emailsvc

import (
	"bytes"
	"net/mail"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/ecoquest/core"
)

var conf = &core.Config{
	AppName:          "EcoQuest",
	FrontendBaseURL:  "http://front.test",
	DefaultFromEmail: mail.Address{Name: "EcoQuest", Address: "noreply@ecoquest.test"},
}

func invitation() *core.EmailMessage {
	return &core.EmailMessage{
		To:           []mail.Address{{Name: "Emma", Address: "emma@school.edu"}},
		Subject:      "Welcome",
		TemplateName: "student_invitation",
		TemplateData: struct{ Name, Email, TeacherName, ClassCode string }{"Emma", "emma@school.edu", "Ms Green", "ECO2025"},
	}
}

func TestConsoleServiceMock_SendMessages(t *testing.T) {
	ResetSentMessages()
	svc := NewConsoleServiceMock(conf)

	svc.SendMessages(
		invitation(),
		&core.EmailMessage{Subject: "nobody to send to", BodyStr: "hi"},
		&core.EmailMessage{To: []mail.Address{{Address: "a@school.edu"}}, Subject: "empty"},
	)

	sent := Sent()
	require.Len(t, sent, 1, "messages without recipients or content are dropped")
	assert.Contains(t, sent[0].TextContent, "Ms Green added you")
	assert.Contains(t, sent[0].HTMLContent, "<strong>ECO2025</strong>")
}

func TestConsoleService_send(t *testing.T) {
	var out bytes.Buffer
	svc := consoleService{
		defaultFromEmail: conf.DefaultFromEmail,
		subjPrefix:       "[EcoQuest] ",
		frontendBaseURL:  conf.FrontendBaseURL,
		out:              &out,
		logger:           core.NewNopLogger(),
	}
	msg := invitation()
	require.NoError(t, msg.Render(svc.frontendBaseURL))
	require.NoError(t, svc.send(*msg))

	s := out.String()
	assert.Contains(t, s, "Subject: [EcoQuest] Welcome")
	assert.Contains(t, s, `To: "Emma" <emma@school.edu>`)
	assert.Contains(t, s, "Content-Type: multipart/alternative; boundary=")
	assert.Contains(t, s, "text/html")
}

func TestSendgridService_prepare(t *testing.T) {
	svc := NewSendgridService(conf, core.NewNopLogger()).(*sendgridService)
	msg := invitation()
	msg.Cc = []mail.Address{{Address: "ms.green@school.edu"}}
	require.NoError(t, msg.Render(conf.FrontendBaseURL))

	m := svc.prepare(*msg)
	require.Len(t, m.Personalizations, 1)
	p := m.Personalizations[0]
	assert.Equal(t, "[EcoQuest] Welcome", p.Subject)
	require.Len(t, p.To, 1)
	assert.Equal(t, "emma@school.edu", p.To[0].Address)
	require.Len(t, p.CC, 1)
	assert.Equal(t, "noreply@ecoquest.test", m.From.Address)
	require.Len(t, m.Content, 2)
	assert.Equal(t, "text/plain", m.Content[0].Type)
	assert.Equal(t, "text/html", m.Content[1].Type)
}
