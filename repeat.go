package cats

// RepeatFormat renders a [Show] value Count times back to back. A
// count of zero or less renders nothing.
type RepeatFormat struct {
	Count int
}

// Len implements [Format] for Show.
func (f RepeatFormat) Len(v Show) int {
	if f.Count <= 0 {
		return 0
	}
	return f.Count * v.Len()
}

// Write implements [Format] for Show. A failing iteration propagates
// immediately; output already flushed to the sink stays flushed.
func (f RepeatFormat) Write(v Show, s Sink) (int, error) {
	n := 0
	for i := 0; i < f.Count; i++ {
		w, err := v.Write(s)
		n += w
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// Repeat renders v count times.
func Repeat(count int, v Show) Show {
	return Fmt[Show](RepeatFormat{Count: count}, v)
}
