package schema

import (
	"fmt"
	"sort"

	"github.com/aretw0/lattice/pkg/domain"
	"github.com/aretw0/lattice/pkg/mapmodel"
)

// Schema maps dotted model paths to their expected types.
// Example: {"cart.items": List(String()), "cart.owner": String()}
type Schema map[string]Type

// Validate checks model against s and returns every failure found, ordered by path.
// A missing non-optional path wraps domain.ErrPathNotFound.
func Validate(s Schema, model mapmodel.Model) error {
	if len(s) == 0 {
		return nil
	}

	paths := make([]string, 0, len(s))
	for path := range s {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	var errs []error
	for _, path := range paths {
		typ := s[path]
		value, ok := mapmodel.Get(model, path)
		if !ok {
			if IsOptional(typ) {
				continue
			}
			errs = append(errs, &ValidationError{
				Path:   path,
				Reason: "required",
				Err:    domain.ErrPathNotFound,
			})
			continue
		}

		if err := typ.Validate(value); err != nil {
			errs = append(errs, &ValidationError{
				Path:   path,
				Reason: err.Error(),
				Value:  value,
			})
		}
	}

	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}
	return nil
}

// MustParse is ParseTypeMap for literals known to be valid.
func MustParse(typeMap map[string]string) Schema {
	s, err := ParseTypeMap(typeMap)
	if err != nil {
		panic(fmt.Sprintf("schema: %v", err))
	}
	return s
}
