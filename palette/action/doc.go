// Package action animates palette effects over a number of updates.
//
// An action is bound to one property (a Fixed strength, a rotate count or a
// boolean flag) and changes it every time Update is called, typically once
// per frame before the bank update:
//
//	fade, err := action.NewTo(action.FadeIntensity(h), 30, types.FixedOne)
//	for !fade.Done() {
//	    fade.Update()
//	    bank.Update()
//	}
//
// Kinds:
//   - To: moves a property to a final value in a fixed number of updates
//   - Loop: moves it back and forth between its initial and final values
//   - Toggle: swaps between its initial and another value every N updates
//   - BoolToggle: flips a boolean property every N updates
//   - RotateBy: adds a delta to a palette's rotate count every N updates,
//     wrapping around the rotate range
package action
