/*
Package mapmodel provides a dynamic model (map[string]any) and keypaths addressed by dotted paths.

It is the model used by plan files, where the shape of the state is only known at runtime.
Collection actions against a value that is not a slice surface as unsupported-collection
diagnostics instead of compile errors.

	m := mapmodel.Model{"cart": map[string]any{"items": []any{"apple"}}}
	items := mapmodel.Required("cart.items")
	_ = keypath.Push(&m, items, any("pear"))
*/
package mapmodel
