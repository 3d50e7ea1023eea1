/*
Package plan loads declarative transaction plans and compiles them against a dynamic model.

A plan names an initial model and a list of stages. Each stage is a list of steps;
a stage with several steps runs them concurrently, and every step of a stage depends
on all steps of the previous one.

	name: checkout
	model:
	  cart:
	    items: [apple]
	stages:
	  - - {id: add-pear, action: push, path: cart.items, value: pear}
	  - - {id: drop-first, action: remove_at, path: cart.items, index: 0}
	    - {id: owner, action: assign, path: cart.owner, value: ada}
	schema:
	  cart.items: "[string]"
	  cart.owner: string

The optional schema section lists the types the model must have after the last stage.
Plans are read as YAML or JSON depending on the file extension.
*/
package plan
