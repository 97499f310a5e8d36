package rmatch

import "net/url"

// valuesCondition reports whether values contain the name, and, when
// required, the expected value among the values of the name.
type valuesCondition struct {
	name     string
	value    string
	hasValue bool
}

func (p valuesCondition) check(values url.Values) bool {
	vs, ok := values[p.name]
	if !ok {
		return false
	}
	return !p.hasValue || matchInArray(vs, p.value)
}

// matchInArray returns true if the given string value is in the array.
func matchInArray(arr []string, value string) bool {
	for _, v := range arr {
		if v == value {
			return true
		}
	}
	return false
}

type searchParamMatcher struct {
	valuesCondition
}

// SearchParam returns a matcher that requires the route query to contain
// the named parameter.
//
// It is zero-width and also matches after the end of the route.
func SearchParam(name string) Matcher {
	return searchParamMatcher{valuesCondition{name: name}}
}

// SearchParamValue returns a matcher that requires the named query
// parameter to have the given value among its values.
func SearchParamValue(name, value string) Matcher {
	return searchParamMatcher{valuesCondition{name: name, value: value, hasValue: true}}
}

func (m searchParamMatcher) Test(c Context) (Match, bool) {
	return Match{}, m.check(c.Route.Query)
}

func (m searchParamMatcher) Tail(c Context) bool {
	return m.check(c.Route.Query)
}

type matrixAttrMatcher struct {
	valuesCondition
}

// MatrixAttr returns a matcher that requires the current entry to have
// the named matrix attribute.
//
// It is zero-width and never matches after the end of the route.
func MatrixAttr(name string) Matcher {
	return matrixAttrMatcher{valuesCondition{name: name}}
}

// MatrixAttrValue returns a matcher that requires the named matrix
// attribute of the current entry to have the given value among its
// values.
func MatrixAttrValue(name, value string) Matcher {
	return matrixAttrMatcher{valuesCondition{name: name, value: value, hasValue: true}}
}

func (m matrixAttrMatcher) Test(c Context) (Match, bool) {
	return Match{}, m.check(c.Entry().Attrs)
}
