package dashtui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/entremotivator/linkup/internal/chat"
	"github.com/entremotivator/linkup/internal/data"
)

type threadView struct {
	resolver *chat.Resolver
	snapshot *data.Snapshot
	key      string
	scroll   int // lines from the bottom
}

func newThreadView(resolver *chat.Resolver) *threadView {
	return &threadView{resolver: resolver}
}

func (v *threadView) setSnapshot(snapshot *data.Snapshot) {
	v.snapshot = snapshot
}

func (v *threadView) setContact(key string) {
	v.key = key
	v.scroll = 0
}

func (v *threadView) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch keyMsg.String() {
	case "esc", "backspace":
		return popViewCmd()
	case "up", "k":
		v.scroll++
	case "down", "j":
		if v.scroll > 0 {
			v.scroll--
		}
	case "g":
		v.scroll = 1 << 20
	case "G":
		v.scroll = 0
	}
	return nil
}

func (v *threadView) View(width, height int, styles Styles) string {
	conv := v.conversation()
	if conv == nil {
		return styles.Muted.Render("no conversation selected")
	}

	header := fmt.Sprintf("%s · %d msgs (%d sent, %d received) · %s",
		conv.Name, len(conv.Messages), conv.SentCount, conv.ReceivedCount, conv.URL)
	lines := []string{styles.Stat.Render(truncate(header, width)), ""}

	for _, record := range chat.SortChronological(conv.Messages, true) {
		lines = append(lines, v.renderMessage(record, width, styles)...)
	}

	body := clampScroll(lines, height, v.scroll, &v.scroll)
	return strings.Join(body, "\n")
}

func (v *threadView) renderMessage(record chat.Record, width int, styles Styles) []string {
	headerStyle := styles.ContactHeader
	name := record.SenderName
	if v.resolver.IsOwner(record.SenderName, record.SenderURL) {
		headerStyle = styles.OwnerHeader
	}
	if name == "" {
		name = "unknown"
	}

	header := headerStyle.Render(name) + " " + styles.Timestamp.Render(record.Timestamp())
	lines := []string{header}

	bodyStyle := styles.Body
	if width > 0 {
		bodyStyle = bodyStyle.Width(width)
	}
	if record.Message != "" {
		lines = append(lines, strings.Split(bodyStyle.Render(record.Message), "\n")...)
	}
	if record.HasSharedContent() {
		lines = append(lines, styles.Shared.Render("shared: "+record.SharedContent))
	}
	lines = append(lines, "")
	return lines
}

func (v *threadView) conversation() *chat.Conversation {
	if v.snapshot == nil || v.key == "" {
		return nil
	}
	return v.snapshot.Conversations[v.key]
}

// clampScroll windows lines to the viewport, anchored at the bottom,
// with scroll counting lines back up. The scroll pointer is clamped in
// place so repeated scrolling past the top is a no-op.
func clampScroll(lines []string, height, scroll int, clamped *int) []string {
	if height <= 0 || len(lines) <= height {
		if clamped != nil {
			*clamped = 0
		}
		return lines
	}
	maxScroll := len(lines) - height
	if scroll > maxScroll {
		scroll = maxScroll
	}
	if clamped != nil {
		*clamped = scroll
	}
	end := len(lines) - scroll
	return lines[end-height : end]
}
