package styled

import "slices"

// Stack is a last-in-first-out list of values.
// The zero value is an empty stack ready to use.
type Stack[T any] struct {
	items []T
}

// Push puts v on top of the stack.
func (s *Stack[T]) Push(v T) {
	s.items = append(s.items, v)
}

// Pop removes the topmost value. ok is false for an empty stack.
func (s *Stack[T]) Pop() (v T, ok bool) {
	if len(s.items) == 0 {
		return v, false
	}
	v = s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return v, true
}

// Top returns the topmost value without removing it.
func (s *Stack[T]) Top() (v T, ok bool) {
	if len(s.items) == 0 {
		return v, false
	}
	return s.items[len(s.items)-1], true
}

// Len returns the number of values on the stack.
func (s *Stack[T]) Len() int {
	return len(s.items)
}

// StyleStack remembers prior values of the style attributes which may be
// changed by nested open/close pairs of markup, e.g.
//
//	<color red> … <color blue> … </color> … </color>
//
// Every attribute class has its own stack. A StyleStack is meant to live for
// the duration of a single rendering call.
type StyleStack struct {
	colors Stack[Color]
	sizes  Stack[float64]
}

// PushColor switches the color of sty to c, remembering the previous color.
func (ss *StyleStack) PushColor(sty Style, c Color) Style {
	ss.colors.Push(sty.Color)
	return sty.WithColor(c)
}

// PopColor restores the color of sty to the previously active one. If there
// is no color to restore, sty is returned unchanged and ok is false.
func (ss *StyleStack) PopColor(sty Style) (Style, bool) {
	c, ok := ss.colors.Pop()
	if !ok {
		return sty, false
	}
	return sty.WithColor(c), true
}

// PushSize switches the size of sty, remembering the previous size.
func (ss *StyleStack) PushSize(sty Style, size float64) Style {
	ss.sizes.Push(sty.Size)
	return sty.WithSize(size)
}

// PopSize restores the size of sty to the previously active one. If there
// is no size to restore, sty is returned unchanged and ok is false.
func (ss *StyleStack) PopSize(sty Style) (Style, bool) {
	size, ok := ss.sizes.Pop()
	if !ok {
		return sty, false
	}
	return sty.WithSize(size), true
}

// Clone returns an independent copy of ss.
func (ss *StyleStack) Clone() StyleStack {
	return StyleStack{
		colors: Stack[Color]{items: slices.Clone(ss.colors.items)},
		sizes:  Stack[float64]{items: slices.Clone(ss.sizes.items)},
	}
}

// Depth returns the number of remembered colors and sizes.
func (ss *StyleStack) Depth() (colors, sizes int) {
	return ss.colors.Len(), ss.sizes.Len()
}
