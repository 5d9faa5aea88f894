package dirty

// DirtyTracker is the minimal interface for components that only report
// modified ranges and never consume them.
type DirtyTracker interface {
	// Add marks [off, off+length) as dirty.
	Add(off, length int)
}

var _ DirtyTracker = (*Tracker)(nil)
