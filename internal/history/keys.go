// internal/history/keys.go
package history

// Key identifies the physical keys history recall shares with the
// completion popup.
type Key int

const (
	KeyOlder Key = iota // up arrow
	KeyNewer            // down arrow
)

// NavResult is the outcome of one key dispatch. When Handled is false the
// key belongs to someone else (the popup, or the editor itself) and Buffer
// is meaningless.
type NavResult struct {
	Handled bool
	Buffer  string
}

// Navigator is the single dispatcher for the arrow keys. History recall and
// popup list navigation share those keys, so visibility of the popup is
// checked here, once, before a key is interpreted as recall. Two
// independently subscribed handlers would race.
type Navigator struct {
	ring  *Ring
	draft string
}

// NewNavigator wraps a ring.
func NewNavigator(ring *Ring) *Navigator {
	return &Navigator{ring: ring}
}

// Handle interprets key against the ring. live is the current buffer text,
// saved as the draft when browsing starts and restored when it ends. While
// the popup is visible every key is left unhandled so the popup can use it.
func (n *Navigator) Handle(key Key, live string, popupVisible bool) NavResult {
	if popupVisible {
		return NavResult{}
	}

	switch key {
	case KeyOlder:
		if !n.ring.Browsing() {
			n.draft = live
		}
		entry, ok := n.ring.RecallOlder()
		if !ok {
			return NavResult{}
		}
		return NavResult{Handled: true, Buffer: entry}

	case KeyNewer:
		if !n.ring.Browsing() {
			return NavResult{}
		}
		if entry, ok := n.ring.RecallNewer(); ok {
			return NavResult{Handled: true, Buffer: entry}
		}
		return NavResult{Handled: true, Buffer: n.draft}
	}

	return NavResult{}
}
