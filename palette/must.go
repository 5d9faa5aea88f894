package palette

// Must panics when err is not nil and returns h otherwise. It is meant for
// palettes whose absence is a content budget bug:
//
//	h := palette.Must(bank.Create(item))
func Must(h *Handle, err error) *Handle {
	if err != nil {
		panic(err)
	}
	return h
}
