package app

import "testing"

// ============================================================================
// Cursor movement
// ============================================================================

func TestNav_MoveDown_WrapsAroundList(t *testing.T) {
	n := nav{}
	length := 5

	for i := 0; i < length; i++ {
		if got := n.cursor(length); got != i {
			t.Fatalf("after %d moves cursor = %d, want %d", i, got, i)
		}
		n.moveDown(length)
	}

	// a full pass lands back on the first row
	if got := n.cursor(length); got != 0 {
		t.Errorf("cursor after full cycle = %d, want 0", got)
	}
}

func TestNav_MoveUp_WrapsToBottom(t *testing.T) {
	n := nav{}
	length := 4

	n.moveUp(length)
	if got := n.cursor(length); got != length-1 {
		t.Errorf("cursor = %d, want %d", got, length-1)
	}

	n.moveUp(length)
	if got := n.cursor(length); got != length-2 {
		t.Errorf("cursor = %d, want %d", got, length-2)
	}
}

func TestNav_MoveOnEmptyList_NoOp(t *testing.T) {
	n := nav{}

	n.moveDown(0)
	n.moveUp(0)
	n.pageDown(0)
	n.pageUp()

	if n.cursors[n.tab] != 0 {
		t.Errorf("stored cursor = %d, want 0", n.cursors[n.tab])
	}
	if got := n.cursor(0); got != -1 {
		t.Errorf("cursor(0) = %d, want -1", got)
	}
}

// ============================================================================
// Paged movement
// ============================================================================

func TestNav_PageDown_ClampsToLastRow(t *testing.T) {
	tests := []struct {
		name   string
		start  int
		length int
		want   int
	}{
		{"full page", 0, 25, 10},
		{"second page", 10, 25, 20},
		{"partial page", 20, 25, 24},
		{"already at end", 24, 25, 24},
		{"short list", 0, 5, 4},
		{"lands exactly past end", 3, 11, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := nav{}
			n.cursors[n.tab] = tt.start
			n.pageDown(tt.length)
			if got := n.cursor(tt.length); got != tt.want {
				t.Errorf("pageDown from %d in %d rows = %d, want %d",
					tt.start, tt.length, got, tt.want)
			}
		})
	}
}

func TestNav_PageUp_ClampsToFirstRow(t *testing.T) {
	tests := []struct {
		name  string
		start int
		want  int
	}{
		{"at top", 0, 0},
		{"within first page", 5, 0},
		{"exactly one page", 10, 0},
		{"just past one page", 11, 1},
		{"mid list", 15, 5},
		{"deep in list", 30, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := nav{}
			n.cursors[n.tab] = tt.start
			n.pageUp()
			if got := n.cursors[n.tab]; got != tt.want {
				t.Errorf("pageUp from %d = %d, want %d", tt.start, got, tt.want)
			}
		})
	}
}

// ============================================================================
// Tab switching
// ============================================================================

func TestNav_SwitchTab_ResetsBothCursors(t *testing.T) {
	n := nav{}
	n.cursors[tabPilots] = 7
	n.cursors[tabControllers] = 3

	n.switchTab()

	if n.tab != tabControllers {
		t.Errorf("tab = %d, want %d", n.tab, tabControllers)
	}
	if n.cursors[tabPilots] != 0 {
		t.Errorf("pilots cursor = %d, want 0", n.cursors[tabPilots])
	}
	if n.cursors[tabControllers] != 0 {
		t.Errorf("controllers cursor = %d, want 0", n.cursors[tabControllers])
	}
}

func TestNav_SwitchTab_RoundTrip(t *testing.T) {
	n := nav{}
	n.switchTab()
	n.switchTab()
	if n.tab != tabPilots {
		t.Errorf("tab after two switches = %d, want %d", n.tab, tabPilots)
	}
}

// ============================================================================
// Popup flag
// ============================================================================

func TestNav_PopupFlags_Idempotent(t *testing.T) {
	n := nav{}

	n.openPopup()
	n.openPopup()
	if !n.popupOpen {
		t.Error("popup should be open")
	}

	n.closePopup()
	n.closePopup()
	if n.popupOpen {
		t.Error("popup should be closed")
	}
}

// ============================================================================
// Cursor clamping
// ============================================================================

func TestNav_Cursor_ClampsToShorterList(t *testing.T) {
	n := nav{}
	n.cursors[n.tab] = 10

	if got := n.cursor(4); got != 3 {
		t.Errorf("cursor(4) = %d, want 3", got)
	}
	if got := n.cursor(0); got != -1 {
		t.Errorf("cursor(0) = %d, want -1", got)
	}
}
