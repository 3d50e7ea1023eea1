// Package schema validates the shape of a dynamic model.
//
// A Schema maps dotted paths to types. Types are written as names in plans:
//
//	schema:
//	  cart.items: "[string]"
//	  cart.owner: string
//	  cart.notes: "[string]?"
//
// Built-in names are string, int, float, bool, map and any. A name in brackets
// is a list of that type and a trailing "?" makes the path optional.
//
//	s, err := schema.ParseTypeMap(p.Schema)
//	if err != nil {
//	    return err
//	}
//	if err := schema.Validate(s, model); err != nil {
//	    // every failing path is listed
//	}
package schema
