package renderer

import (
	"fmt"
	"strings"

	"github.com/mvezin/finstate"
)

// Notifications renders the notification list, unread ones first flagged
// with a dot.
func Notifications(notifications []finstate.Notification) string {
	if len(notifications) == 0 {
		return "No notifications.\n"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d unread\n\n", finstate.UnreadCount(notifications))
	for _, n := range notifications {
		marker := " "
		if !n.IsRead {
			marker = "●"
		}
		fmt.Fprintf(&b, "- %s **%s**: %s\n", marker, n.Title, n.Message)
	}
	return b.String()
}
