package palette

import "log/slog"

// Manager owns the two palette banks of the display: sprites and
// backgrounds.
type Manager struct {
	Sprites     *Bank
	Backgrounds *Bank
}

// NewManager creates both banks. A nil logger uses the process-wide logger.
func NewManager(logger *slog.Logger) *Manager {
	sprites := DefaultOptions(KindSprite)
	sprites.Logger = logger
	backgrounds := DefaultOptions(KindBackground)
	backgrounds.Logger = logger

	return &Manager{
		Sprites:     NewBank(sprites),
		Backgrounds: NewBank(backgrounds),
	}
}

// Banks returns both banks, backgrounds first (palette RAM order).
func (m *Manager) Banks() []*Bank {
	return []*Bank{m.Backgrounds, m.Sprites}
}

// Update updates both banks.
func (m *Manager) Update() {
	for _, b := range m.Banks() {
		b.Update()
	}
}

// Stop stops both banks.
func (m *Manager) Stop() {
	for _, b := range m.Banks() {
		b.Stop()
	}
}
