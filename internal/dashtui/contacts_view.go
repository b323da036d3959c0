package dashtui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/entremotivator/linkup/internal/chat"
	"github.com/entremotivator/linkup/internal/data"
)

var contactOrderCycle = []chat.ContactOrder{
	chat.ContactsByName,
	chat.ContactsByCount,
	chat.ContactsByRecent,
}

type contactsView struct {
	order    chat.ContactOrder
	contacts []*chat.Conversation
	sel      int
}

func newContactsView() *contactsView {
	return &contactsView{order: chat.ContactsByName}
}

func (v *contactsView) setSnapshot(snapshot *data.Snapshot) {
	v.contacts = chat.Contacts(snapshot.Conversations, v.order)
	v.clampSelection()
}

func (v *contactsView) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if v.sel > 0 {
			v.sel--
		}
	case "down", "j":
		if v.sel < len(v.contacts)-1 {
			v.sel++
		}
	case "s":
		v.cycleOrder()
	case "enter":
		if v.sel < len(v.contacts) {
			return openThreadCmd(v.contacts[v.sel].URL)
		}
	}
	return nil
}

func (v *contactsView) View(width, height int, styles Styles) string {
	if len(v.contacts) == 0 {
		return styles.Muted.Render("no contacts")
	}

	var b strings.Builder
	b.WriteString(styles.Muted.Render(fmt.Sprintf("contacts · sorted by %s", v.order)))
	b.WriteString("\n")

	rows := height - 2
	if rows < 1 {
		rows = 1
	}
	start := windowStart(v.sel, rows, len(v.contacts))

	for i := start; i < len(v.contacts) && i < start+rows; i++ {
		conv := v.contacts[i]
		line := fmt.Sprintf("%-28s %4d msgs  %s", truncate(conv.Name, 28), len(conv.Messages), conv.LastContact())
		line = truncate(line, width)
		if i == v.sel {
			line = styles.Selected.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (v *contactsView) cycleOrder() {
	for i, order := range contactOrderCycle {
		if order == v.order {
			v.order = contactOrderCycle[(i+1)%len(contactOrderCycle)]
			break
		}
	}
	v.resort()
}

func (v *contactsView) resort() {
	conversations := make(map[string]*chat.Conversation, len(v.contacts))
	for _, conv := range v.contacts {
		conversations[conv.URL] = conv
	}
	v.contacts = chat.Contacts(conversations, v.order)
	v.clampSelection()
}

func (v *contactsView) clampSelection() {
	if v.sel >= len(v.contacts) {
		v.sel = len(v.contacts) - 1
	}
	if v.sel < 0 {
		v.sel = 0
	}
}

func windowStart(sel, rows, total int) int {
	if total <= rows {
		return 0
	}
	start := sel - rows/2
	if start < 0 {
		start = 0
	}
	if start > total-rows {
		start = total - rows
	}
	return start
}

func truncate(s string, width int) string {
	if width <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
