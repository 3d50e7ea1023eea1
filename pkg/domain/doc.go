/*
Package domain contains the core types shared by every layer of the Lattice store.

It defines how a field of a model is addressed (Keypath), the sentinel errors
returned or logged by the mutation and transaction layers, and the lifecycle
events emitted while transactions run. This package is kept pure and free of
I/O, following Hexagonal Architecture principles.

# Key Entities

  - Keypath: Addresses a Required or Optional field of a model through a get/set pair.
  - LifecycleHooks: Callbacks fired when transactions start, reduce, fulfill or report diagnostics.
  - Errors: Sentinels such as ErrUnsupportedCollection and ErrCycle, matched with errors.Is.
*/
package domain
