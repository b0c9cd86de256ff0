// Package validation defines the primitive field rules and the closed set of
// error variants they produce.
//
// A Rule maps a field's raw string input to either nil (the input passes) or
// one Error value. Rules are total: unparsable numbers, empty strings and
// other odd input are reported as validation failures, never as panics or Go
// errors. Error variants carry only the parameters needed to describe the
// failure; turning them into human-readable text is the job of the render
// package, so messages can be localized without touching rule logic.
//
//	rules := []validation.Rule{
//	    validation.Existence(),
//	    validation.MinLen(3),
//	    validation.MustPattern("^[a-z]+$"),
//	}
//	for _, rule := range rules {
//	    if err := rule("ab"); err != nil {
//	        fmt.Println(err.Code())
//	    }
//	}
package validation
