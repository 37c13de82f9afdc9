// Package profile loads named validation chains from YAML documents, so
// form definitions can live in configuration instead of code.
//
// A profile file maps chain names to ordered rule lists:
//
//	profiles:
//	  username:
//	    - rule: length_between
//	      min: 3
//	      max: 16
//	    - rule: contains_special
//	      count: 0
//	      message: no special characters allowed
//	  age:
//	    - rule: integer
//
// Every rule name corresponds to a constructor in the validators package
// and takes the same parameters. Loading fails fast on the first unknown
// rule, missing parameter or constructor error, wrapping the profile name
// and rule position so misconfiguration is easy to locate.
package profile
