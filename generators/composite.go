package generators

import (
	"github.com/darianmavgo/foodmart/generators/common"
)

// Composite concatenates a list of sources into a single iterator.
//
// Sources are opened lazily and strictly in order: source n+1 is not opened
// until source n is exhausted and closed. Empty sources contribute nothing.
type Composite[E any] struct {
	sources  []common.Source[E]
	pos      int
	current  common.Iterator[E]
	next     E
	buffered bool
	done     bool
	err      error
}

// Ensure Composite implements Iterator
var _ common.Iterator[string] = (*Composite[string])(nil)

// Concat returns an iterator over the elements of every source, in order.
func Concat[E any](sources ...common.Source[E]) *Composite[E] {
	return &Composite[E]{sources: sources}
}

// HasNext reports whether another element is available. It may open sources.
func (c *Composite[E]) HasNext() bool {
	if !c.buffered && !c.done {
		c.advance()
	}
	return c.buffered
}

// Next returns the next element in overall order.
func (c *Composite[E]) Next() (E, error) {
	if !c.HasNext() {
		var zero E
		if c.err != nil {
			return zero, c.err
		}
		return zero, common.ErrExhausted
	}
	result := c.next
	var zero E
	c.next, c.buffered = zero, false
	return result, nil
}

// Err returns the error that stopped the iteration, if any.
func (c *Composite[E]) Err() error {
	return c.err
}

// Close closes the source in progress. Sources not yet opened are never opened.
func (c *Composite[E]) Close() error {
	var zero E
	c.next, c.buffered = zero, false
	c.done = true
	if c.current == nil {
		return nil
	}
	err := c.current.Close()
	c.current = nil
	return err
}

func (c *Composite[E]) advance() {
	for {
		if c.current != nil {
			if c.current.HasNext() {
				v, err := c.current.Next()
				if err != nil {
					c.fail(err)
					return
				}
				c.next, c.buffered = v, true
				return
			}

			// Current source exhausted. Move to the next one.
			if err := c.current.Err(); err != nil {
				c.fail(err)
				return
			}
			err := c.current.Close()
			c.current = nil
			if err != nil {
				c.fail(err)
				return
			}
		}

		if c.pos >= len(c.sources) {
			c.done = true
			return
		}
		open := c.sources[c.pos]
		c.pos++
		it, err := open()
		if err != nil {
			c.fail(err)
			return
		}
		c.current = it
	}
}

func (c *Composite[E]) fail(err error) {
	c.err = err
	c.Close()
}
