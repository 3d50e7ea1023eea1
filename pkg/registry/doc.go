// Package registry maps action names to factories that build actions for dynamic models.
package registry
