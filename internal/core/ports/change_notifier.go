package ports

// Scope names a slice of application data whose consumers should refresh
// after a change. Notifications carry no payload: subscribers re-query the
// API, so a lost-then-recovered connection never leaves them with stale
// partial state.
type Scope string

const (
	// ScopeOrders covers order lifecycle changes: creation, status
	// transitions, cancellation flow, notes.
	ScopeOrders Scope = "orders"
	// ScopeCatalog covers menu item and category changes.
	ScopeCatalog Scope = "catalog"
	// ScopeSettings covers operator-editable settings.
	ScopeSettings Scope = "settings"
)

// ChangeNotifier broadcasts payload-less change hints to interested
// subscribers. Delivery is at-least-once and best-effort per subscriber; a
// subscriber that cannot keep up may be dropped.
type ChangeNotifier interface {
	// Publish notifies all subscribers of the scope that its data changed.
	// Never blocks on slow subscribers.
	Publish(scope Scope)
}
