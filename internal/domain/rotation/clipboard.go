package rotation

import "github.com/cockroachdb/errors"

// Clipboard holds one copied inning between a copy and a paste.
type Clipboard struct {
	source int
	data   Inning
}

// Stage copies inning source of r. Later edits to r do not change what gets pasted.
func (c *Clipboard) Stage(r *Rotation, source int) error {
	in, ok := r.Inning(source)
	if !ok {
		return errors.Wrapf(ErrInningNotFound, "source inning %d", source)
	}
	c.source = source
	c.data = in
	return nil
}

func (c *Clipboard) Staged() bool {
	return c.data != nil
}

// Source is the inning the staged data came from, 0 when nothing is staged.
func (c *Clipboard) Source() int {
	if !c.Staged() {
		return 0
	}
	return c.source
}

func (c *Clipboard) Clear() {
	c.source = 0
	c.data = nil
}

// PasteInto writes the staged inning into every destination and leaves copy mode.
// On error nothing is written and the clipboard keeps its data.
func (c *Clipboard) PasteInto(r *Rotation, destinations []int) error {
	if !c.Staged() {
		return ErrNoCopiedData
	}
	if err := r.paste(c.data, destinations); err != nil {
		return err
	}
	c.Clear()
	return nil
}
