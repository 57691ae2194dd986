package ui

// View names one screen in the navigation state machine. Navigation is a
// pointer reassignment on the root model, never structural.
type View int

const (
	ViewList View = iota
	ViewDetail
	ViewDashboard
	ViewAuth
	ViewProfileEdit
	ViewChat
	ViewPurchase
	ViewComplete
)

func (v View) String() string {
	switch v {
	case ViewList:
		return "list"
	case ViewDetail:
		return "detail"
	case ViewDashboard:
		return "dashboard"
	case ViewAuth:
		return "auth"
	case ViewProfileEdit:
		return "profile_edit"
	case ViewChat:
		return "chat"
	case ViewPurchase:
		return "purchase"
	case ViewComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// RequiresSelection reports whether the view operates on a selected profile.
// Entering one of these without a selection is a caller contract violation;
// the router answers it with a redirect to the list instead of rendering a
// nil reference.
func (v View) RequiresSelection() bool {
	switch v {
	case ViewDetail, ViewChat, ViewPurchase:
		return true
	default:
		return false
	}
}
