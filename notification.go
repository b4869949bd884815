package finstate

// Notification is an in-app message for the user. Notifications are seeded,
// never created by mutations; only their read flag changes.
type Notification struct {
	ID      string
	Type    string
	Title   string
	Message string
	Time    string
	IsRead  bool
	Route   string // optional screen the notification points at
	Icon    string
}

// UnreadCount counts the notifications not yet read.
func UnreadCount(notifications []Notification) int {
	n := 0
	for _, notif := range notifications {
		if !notif.IsRead {
			n++
		}
	}
	return n
}

func (n Notification) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", n.ID)
	w.Append("type", n.Type)
	w.Append("title", n.Title)
	w.Append("message", n.Message)
	w.Optional("time", n.Time)
	w.Append("isRead", n.IsRead)
	w.Optional("route", n.Route)
	w.Optional("icon", n.Icon)
	return w.MarshalJSON()
}
