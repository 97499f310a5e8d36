package rmatch

// patternMacros maps macro names to regular expressions used in capture
// definitions: {name:macro}.
var patternMacros = map[string]string{
	"uuid":     `[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`,
	"int":      `[0-9]+`,
	"float":    `[0-9]*\.?[0-9]+`,
	"slug":     `[a-zA-Z0-9]+(?:-[a-zA-Z0-9]+)*`,
	"alpha":    `[a-zA-Z]+`,
	"alphanum": `[a-zA-Z0-9]+`,
	"date":     `[0-9]{4}-[0-9]{2}-[0-9]{2}`,
	"hex":      `[0-9a-fA-F]+`,
	// RFC 1035/1123 labels of 1-63 chars.
	"domain": `(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)*[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?`,
}

// expandMacro returns the expression of the named macro.
func expandMacro(name string) (string, bool) {
	src, ok := patternMacros[name]
	return src, ok
}

// captureMacro returns a matcher capturing a part of an entry name
// matching the named macro, or nil if there is no such macro. When whole
// is set, the match must extend to the end of the entry name.
func captureMacro(macro, name string, whole bool) Matcher {
	src, ok := expandMacro(macro)
	if !ok {
		return nil
	}
	if whole {
		src = `(?:` + src + `)$`
	}
	return newRegExpMatcher(mustCompileRegexp(src), name, false)
}
