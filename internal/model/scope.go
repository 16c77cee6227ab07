package model

// View selects which slice of the organization's tasks a request is about.
// Ownership filtering happens upstream; the view is forwarded as a query
// parameter and never re-applied locally.
type View string

const (
	ViewMine      View = "mine"
	ViewDelegated View = "delegated"
	ViewAll       View = "all"
)

// Scope carries per-request identity and the requested task view.
type Scope struct {
	UserID string
	View   View
}
