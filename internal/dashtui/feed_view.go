package dashtui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/entremotivator/linkup/internal/chat"
	"github.com/entremotivator/linkup/internal/data"
)

var directionCycle = []chat.Direction{
	chat.DirectionAll,
	chat.DirectionSent,
	chat.DirectionReceived,
}

type feedView struct {
	resolver *chat.Resolver

	records  []chat.Record
	filtered []chat.Record

	query      string
	searching  bool
	direction  chat.Direction
	sharedOnly bool
	ascending  bool

	scroll int
}

func newFeedView(resolver *chat.Resolver) *feedView {
	return &feedView{
		resolver:  resolver,
		direction: chat.DirectionAll,
	}
}

func (v *feedView) setSnapshot(snapshot *data.Snapshot) {
	v.records = snapshot.Records
	v.recompute()
}

func (v *feedView) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	if v.searching {
		return v.updateSearch(keyMsg)
	}

	switch keyMsg.String() {
	case "esc", "backspace":
		if v.query != "" {
			v.query = ""
			v.recompute()
			return nil
		}
		return popViewCmd()
	case "/":
		v.searching = true
	case "d":
		v.cycleDirection()
	case "a":
		v.sharedOnly = !v.sharedOnly
		v.recompute()
	case "o":
		v.ascending = !v.ascending
		v.recompute()
	case "up", "k":
		v.scroll++
	case "down", "j":
		if v.scroll > 0 {
			v.scroll--
		}
	}
	return nil
}

func (v *feedView) updateSearch(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc:
		v.searching = false
	case tea.KeyBackspace:
		if v.query != "" {
			runes := []rune(v.query)
			v.query = string(runes[:len(runes)-1])
			v.recompute()
		}
	case tea.KeySpace:
		v.query += " "
		v.recompute()
	case tea.KeyRunes:
		v.query += string(msg.Runes)
		v.recompute()
	}
	return nil
}

func (v *feedView) recompute() {
	filter := chat.Filter{
		Query:        v.query,
		SearchSender: true,
		Direction:    v.direction,
		SharedOnly:   v.sharedOnly,
	}
	filtered := chat.ApplyFilter(v.records, filter, v.resolver)
	v.filtered = chat.SortChronological(filtered, v.ascending)
	v.scroll = 0
}

func (v *feedView) cycleDirection() {
	for i, direction := range directionCycle {
		if direction == v.direction {
			v.direction = directionCycle[(i+1)%len(directionCycle)]
			break
		}
	}
	v.recompute()
}

func (v *feedView) View(width, height int, styles Styles) string {
	status := fmt.Sprintf("feed · %d of %d · %s", len(v.filtered), len(v.records), v.direction)
	if v.sharedOnly {
		status += " · shared only"
	}
	if v.ascending {
		status += " · oldest first"
	}

	search := ""
	switch {
	case v.searching:
		search = styles.Selected.Render("/" + v.query + "▌")
	case v.query != "":
		search = styles.Muted.Render("/" + v.query)
	}

	lines := []string{styles.Stat.Render(truncate(status, width))}
	if search != "" {
		lines = append(lines, search)
	}
	lines = append(lines, "")

	if len(v.filtered) == 0 {
		lines = append(lines, styles.Muted.Render("no messages"))
		return strings.Join(lines, "\n")
	}

	headerLines := len(lines)
	var body []string
	for _, record := range v.filtered {
		body = append(body, v.renderMessage(record, width, styles)...)
	}
	body = clampScroll(body, height-headerLines, v.scroll, &v.scroll)
	return strings.Join(append(lines, body...), "\n")
}

func (v *feedView) renderMessage(record chat.Record, width int, styles Styles) []string {
	headerStyle := styles.ContactHeader
	if v.resolver.IsOwner(record.SenderName, record.SenderURL) {
		headerStyle = styles.OwnerHeader
	}
	name := record.SenderName
	if name == "" {
		name = "unknown"
	}

	header := headerStyle.Render(name) + " " + styles.Timestamp.Render(record.Timestamp())
	line := truncate(record.Message, width)
	out := []string{header}
	if line != "" {
		out = append(out, line)
	}
	if record.HasSharedContent() {
		out = append(out, styles.Shared.Render("shared: "+record.SharedContent))
	}
	return append(out, "")
}
