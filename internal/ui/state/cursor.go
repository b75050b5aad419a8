package state

// Next moves down one row, wrapping from the last row to the first.
func (l *List) Next() {
	if len(l.Items) == 0 {
		return
	}
	l.Cursor = (l.Cursor + 1) % len(l.Items)
}

// Previous moves up one row, wrapping from the first row to the last.
func (l *List) Previous() {
	if len(l.Items) == 0 {
		return
	}
	if l.Cursor > 0 {
		l.Cursor--
		return
	}
	l.Cursor = len(l.Items) - 1
}

// JumpTo moves the cursor to index, clamped to the list bounds.
func (l *List) JumpTo(index int) {
	if len(l.Items) == 0 {
		return
	}
	if index < 0 {
		index = 0
	}
	if index > len(l.Items)-1 {
		index = len(l.Items) - 1
	}
	l.Cursor = index
}

// JumpToTop moves the cursor to the first row.
func (l *List) JumpToTop() {
	l.JumpTo(0)
}

// JumpToBottom moves the cursor to the last row.
func (l *List) JumpToBottom() {
	l.JumpTo(len(l.Items) - 1)
}

// PageUp moves the cursor up by PageSize rows, stopping at the first row.
func (l *List) PageUp() {
	l.moveCursorBy(-PageSize)
}

// PageDown moves the cursor down by PageSize rows, stopping at the last row.
func (l *List) PageDown() {
	l.moveCursorBy(PageSize)
}

func (l *List) moveCursorBy(delta int) {
	if len(l.Items) == 0 {
		return
	}
	l.JumpTo(l.Cursor + delta)
}

// EnsureCursorVisible adjusts the viewport offset so the cursor stays within
// the maxVisible rows being drawn.
func (l *List) EnsureCursorVisible(maxVisible int) {
	if len(l.Items) == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= len(l.Items) {
		l.Cursor = len(l.Items) - 1
	}
	if maxVisible <= 0 {
		l.ViewportOffset = 0
		return
	}
	maxOffset := len(l.Items) - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if l.ViewportOffset > maxOffset {
		l.ViewportOffset = maxOffset
	}
	if l.ViewportOffset < 0 {
		l.ViewportOffset = 0
	}
	if l.Cursor < l.ViewportOffset {
		l.ViewportOffset = l.Cursor
	}
	if l.Cursor > l.ViewportOffset+maxVisible-1 {
		l.ViewportOffset = l.Cursor - maxVisible + 1
	}
}
