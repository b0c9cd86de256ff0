// Package definition loads declarative form definitions from JSON or YAML
// files and compiles them into form specs.
//
// A definition file lists forms by id. Each form declares its fields in
// order, the rules applied to each field and optional cross-field
// dependencies:
//
//	forms:
//	  signup:
//	    fields:
//	      - name: username
//	        rules:
//	          - {kind: required}
//	          - {kind: minLength, value: 3}
//	      - name: password
//	      - name: passwordConfirm
//	    dependencies:
//	      - {kind: sameValue, source: password, target: passwordConfirm}
//
// Rules are compiled while loading, so malformed patterns, unknown formats
// and unknown kinds surface as load errors that name the offending file.
package definition
