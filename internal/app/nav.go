package app

// pageSize is the jump distance for paged cursor movement.
const pageSize = 10

// Tab indices for the two entity lists.
const (
	tabPilots = iota
	tabControllers
	tabCount
)

// nav holds all mutable view state: the active tab, one cursor per
// tab, and the detail popup flag. Every operation is a plain state
// transition; list lengths are passed in by the caller.
type nav struct {
	tab       int
	cursors   [tabCount]int
	popupOpen bool
}

// switchTab flips to the other tab and resets both cursors to the top.
func (n *nav) switchTab() {
	n.tab = (n.tab + 1) % tabCount
	for i := range n.cursors {
		n.cursors[i] = 0
	}
}

// moveDown advances the active cursor by one row, wrapping to the
// first row past the end. Empty lists are left untouched.
func (n *nav) moveDown(length int) {
	if length == 0 {
		return
	}
	n.cursors[n.tab] = (n.cursors[n.tab] + 1) % length
}

// moveUp retreats the active cursor by one row, wrapping to the last
// row from the top. Empty lists are left untouched.
func (n *nav) moveUp(length int) {
	if length == 0 {
		return
	}
	if n.cursors[n.tab] == 0 {
		n.cursors[n.tab] = length - 1
		return
	}
	n.cursors[n.tab]--
}

// pageDown jumps the cursor forward by a page, stopping on the last
// row. It never wraps.
func (n *nav) pageDown(length int) {
	if length == 0 {
		return
	}
	next := n.cursors[n.tab] + pageSize
	if next >= length {
		next = length - 1
	}
	n.cursors[n.tab] = next
}

// pageUp jumps the cursor back by a page, stopping on the first row.
// It never wraps.
func (n *nav) pageUp() {
	if n.cursors[n.tab] <= pageSize {
		n.cursors[n.tab] = 0
		return
	}
	n.cursors[n.tab] -= pageSize
}

// openPopup shows the detail popup.
func (n *nav) openPopup() {
	n.popupOpen = true
}

// closePopup hides the detail popup.
func (n *nav) closePopup() {
	n.popupOpen = false
}

// cursor returns the active cursor clamped to the list, or -1 when
// the list is empty.
func (n *nav) cursor(length int) int {
	if length == 0 {
		return -1
	}
	if n.cursors[n.tab] >= length {
		return length - 1
	}
	return n.cursors[n.tab]
}
