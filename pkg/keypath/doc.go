/*
Package keypath applies typed mutations to a field of a model addressed by a domain.Keypath.

Assign replaces a field value. Filter, RemoveAt and Push treat the field as an ordered
sequence: the value is checked with AsSequence, copied into a fresh buffer, transformed,
and written back through the same keypath variant used to read it.

	type Cart struct {
		Items []string
		Notes *[]string
	}

	items := domain.Required("items",
		func(c *Cart) []string { return c.Items },
		func(c *Cart, v []string) { c.Items = v },
	)

	_ = keypath.Push(&cart, items, "apple")

Failures never touch the model. They are returned as errors wrapping
domain.ErrUnsupportedCollection so that callers (the action layer) can log them
and carry on.
*/
package keypath
