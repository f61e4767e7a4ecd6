package swipeview

// SwipeViewAction is how the user left a SwipeView.
type SwipeViewAction int

const (
	SwipeViewActionSelected  SwipeViewAction = iota // User chose the current page (A button)
	SwipeViewActionConfirmed                        // User confirmed via Start
	SwipeViewActionMenu                             // User opened the menu on the current page
)

func (a SwipeViewAction) String() string {
	switch a {
	case SwipeViewActionConfirmed:
		return "confirmed"
	case SwipeViewActionMenu:
		return "menu"
	default:
		return "selected"
	}
}

// SwipeViewResult is returned when a SwipeView exits without cancelling.
type SwipeViewResult struct {
	Index  int             // Committed page index
	Page   Page            // The page at Index
	Action SwipeViewAction // What ended the view
}
