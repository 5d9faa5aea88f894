package action

import (
	"math"

	"github.com/joshuapare/palettekit/palette"
	"github.com/joshuapare/palettekit/pkg/types"
)

func checkDuration(duration int) error {
	if duration <= 0 || duration > math.MaxUint16 {
		return types.Errorf(types.ErrKindInvalidParameter, "invalid duration updates: %d", duration)
	}
	return nil
}

// To moves a property from its current value to a final value in a fixed
// number of updates. The last update sets the final value exactly.
type To struct {
	prop     Property
	initial  types.Fixed
	final    types.Fixed
	delta    types.Fixed
	duration int
	current  int
}

// NewTo creates a To action. final must be a valid value for the property.
func NewTo(prop Property, duration int, final types.Fixed) (*To, error) {
	if err := checkDuration(duration); err != nil {
		return nil, err
	}
	if err := types.CheckUnit("final value", final); err != nil {
		return nil, err
	}
	initial := prop.Get()
	return &To{
		prop:     prop,
		initial:  initial,
		final:    final,
		delta:    (final - initial) / types.Fixed(duration),
		duration: duration,
	}, nil
}

// Update advances the action by one step. It is a no-op once Done.
func (a *To) Update() error {
	if a.Done() {
		return nil
	}
	a.current++
	if a.current == a.duration {
		return a.prop.Set(a.final)
	}
	return a.prop.Set(a.prop.Get() + a.delta)
}

// Done reports whether the final value has been reached.
func (a *To) Done() bool { return a.current == a.duration }

// Reset restores the initial value and restarts the action.
func (a *To) Reset() error {
	a.current = 0
	return a.prop.Set(a.initial)
}

// Loop moves a property from its initial value to a final value and back,
// forever, spending duration updates in each direction.
type Loop struct {
	prop     Property
	initial  types.Fixed
	final    types.Fixed
	delta    types.Fixed
	duration int
	current  int
	reverse  bool
}

// NewLoop creates a Loop action.
func NewLoop(prop Property, duration int, final types.Fixed) (*Loop, error) {
	if err := checkDuration(duration); err != nil {
		return nil, err
	}
	if err := types.CheckUnit("final value", final); err != nil {
		return nil, err
	}
	initial := prop.Get()
	return &Loop{
		prop:     prop,
		initial:  initial,
		final:    final,
		delta:    (final - initial) / types.Fixed(duration),
		duration: duration,
	}, nil
}

// Update advances the action by one step.
func (a *Loop) Update() error {
	a.current++
	if a.current == a.duration {
		a.current = 0
		target := a.final
		if a.reverse {
			target = a.initial
		}
		a.reverse = !a.reverse
		return a.prop.Set(target)
	}
	if a.reverse {
		return a.prop.Set(a.prop.Get() - a.delta)
	}
	return a.prop.Set(a.prop.Get() + a.delta)
}

// Reset restores the initial value and restarts the action.
func (a *Loop) Reset() error {
	a.current = 0
	a.reverse = false
	return a.prop.Set(a.initial)
}

// Toggle swaps a property between its initial value and another value every
// duration updates.
type Toggle struct {
	prop     Property
	initial  types.Fixed
	other    types.Fixed
	duration int
	current  int
	reverse  bool
}

// NewToggle creates a Toggle action.
func NewToggle(prop Property, duration int, other types.Fixed) (*Toggle, error) {
	if err := checkDuration(duration); err != nil {
		return nil, err
	}
	if err := types.CheckUnit("toggle value", other); err != nil {
		return nil, err
	}
	return &Toggle{prop: prop, initial: prop.Get(), other: other, duration: duration}, nil
}

// Update advances the action by one step.
func (a *Toggle) Update() error {
	a.current++
	if a.current < a.duration {
		return nil
	}
	a.current = 0
	target := a.other
	if a.reverse {
		target = a.initial
	}
	a.reverse = !a.reverse
	return a.prop.Set(target)
}

// Reset restores the initial value and restarts the action.
func (a *Toggle) Reset() error {
	a.current = 0
	a.reverse = false
	return a.prop.Set(a.initial)
}

// BoolToggle flips a boolean property every duration updates.
type BoolToggle struct {
	prop     BoolProperty
	initial  bool
	duration int
	current  int
	reverse  bool
}

// NewBoolToggle creates a BoolToggle action.
func NewBoolToggle(prop BoolProperty, duration int) (*BoolToggle, error) {
	if err := checkDuration(duration); err != nil {
		return nil, err
	}
	return &BoolToggle{prop: prop, initial: prop.Get(), duration: duration}, nil
}

// Update advances the action by one step.
func (a *BoolToggle) Update() error {
	a.current++
	if a.current < a.duration {
		return nil
	}
	a.current = 0
	a.reverse = !a.reverse
	return a.prop.Set(a.initial != a.reverse)
}

// Reset restores the initial value and restarts the action.
func (a *BoolToggle) Reset() error {
	a.current = 0
	a.reverse = false
	return a.prop.Set(a.initial)
}

// RotateBy adds delta to a palette's rotate count every duration updates,
// wrapping within [0, rotate range size).
type RotateBy struct {
	h        *palette.Handle
	initial  int
	delta    int
	duration int
	current  int
}

// NewRotateBy creates a RotateBy action. |delta| must be lower than the
// palette's rotate range size.
func NewRotateBy(h *palette.Handle, duration, delta int) (*RotateBy, error) {
	if err := checkDuration(duration); err != nil {
		return nil, err
	}
	size := h.RotateRangeSize()
	if delta <= -size || delta >= size {
		return nil, types.Errorf(types.ErrKindInvalidParameter, "invalid delta count: %d - %d", delta, size)
	}
	return &RotateBy{h: h, initial: h.RotateCount(), delta: delta, duration: duration}, nil
}

// Update advances the action by one step.
func (a *RotateBy) Update() error {
	if a.current < a.duration-1 {
		a.current++
		return nil
	}
	a.current = 0

	size := a.h.RotateRangeSize()
	count := a.h.RotateCount() + a.delta
	if count < 0 {
		count += size
	} else if count >= size {
		count -= size
	}
	return a.h.SetRotateCount(count)
}

// Reset restores the initial rotate count.
func (a *RotateBy) Reset() error {
	a.current = 0
	return a.h.SetRotateCount(a.initial)
}
