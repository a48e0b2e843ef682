package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"taskdeck-cli/internal/chat"
)

type botReplyMsg struct {
	seq  int
	text string
}

type chatMessage struct {
	fromBot bool
	text    string
}

// chatState is the assistant overlay. Replies arrive after chat.ReplyDelay
// via a tea.Tick so typing stays responsive; seq guards against a reply from
// a dismissed conversation landing after the widget was reopened.
type chatState struct {
	open     bool
	seq      int
	waiting  bool
	messages []chatMessage
	input    textinput.Model
}

func newChatState() chatState {
	in := textinput.New()
	in.Prompt = "> "
	in.Placeholder = "ask the assistant"
	in.CharLimit = 300
	in.Focus()
	return chatState{
		messages: []chatMessage{{fromBot: true, text: chat.Welcome}},
		input:    in,
	}
}

func (c *chatState) ask(text string) tea.Cmd {
	c.messages = append(c.messages, chatMessage{text: text})
	c.waiting = true
	seq := c.seq
	reply := chat.Respond(text)
	return tea.Tick(chat.ReplyDelay, func(time.Time) tea.Msg {
		return botReplyMsg{seq: seq, text: reply}
	})
}

func (c *chatState) deliver(msg botReplyMsg) {
	if msg.seq != c.seq {
		return
	}
	c.waiting = false
	c.messages = append(c.messages, chatMessage{fromBot: true, text: msg.text})
}

func (m appModel) updateChat(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		m.chat.open = false
		m.chat.seq++ // drop any in-flight reply
		m.chat.waiting = false
		return m, nil
	case "enter":
		text := strings.TrimSpace(m.chat.input.Value())
		if text == "" || m.chat.waiting {
			return m, nil
		}
		m.chat.input.SetValue("")
		return m, m.chat.ask(text)
	}

	var cmd tea.Cmd
	m.chat.input, cmd = m.chat.input.Update(key)
	return m, cmd
}

const chatHistory = 6

func (m appModel) viewChat() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Assistant"))
	b.WriteString("\n")

	msgs := m.chat.messages
	if len(msgs) > chatHistory {
		msgs = msgs[len(msgs)-chatHistory:]
	}
	w := m.bodyWidth() - 8
	for _, msg := range msgs {
		if msg.fromBot {
			b.WriteString(renderMarkdown(msg.text, w))
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(colorAccent).Render("you: " + msg.text))
		}
		b.WriteString("\n")
	}
	if m.chat.waiting {
		b.WriteString(footerStyle.Render("typing" + glyphBullet() + glyphBullet() + glyphBullet()))
		b.WriteString("\n")
	}
	b.WriteString(m.chat.input.View())
	return cardStyle.Width(m.bodyWidth() - 4).Render(b.String())
}
