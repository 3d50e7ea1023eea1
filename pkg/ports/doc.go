/*
Package ports defines the interfaces between actions and the store that runs them.

These interfaces decouple the mutation logic from the container that owns the model,
so actions can be reduced by the in-memory store or by any host that grants exclusive
access to a model.

# Key Interfaces

  - TransactionContext: Grants scoped, exclusive access to the model and a one-shot completion signal.
  - Action: A unit of model mutation reduced inside a TransactionContext.
  - Dispatcher: Accepts actions and runs each one as a transaction.
*/
package ports
