/*
Package action provides general-purpose actions that can be applied to any store.

Each action carries a domain.Keypath and an operation payload. Its Reduce method
mutates the model through ports.TransactionContext.ReduceModel and always fulfills
the transaction, even when the mutation degrades to a no-op.

  - Assign: replaces the field value.
  - Filter: keeps only the elements matching a predicate.
  - RemoveAt: removes the element at an index.
  - Push: appends an element.

Failures (e.g. the field is not a sequence of the expected type) are absorbed:
they are reported as diagnostics and the model is left unchanged.
*/
package action
