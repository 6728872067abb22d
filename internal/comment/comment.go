// Package comment parses documentation comments (docblocks) into a description and a list of tags.
//
// Both decorated docblocks:
//
//	/**
//	 * Saves the user.
//	 *
//	 * @param bool $force Skip dirty checks.
//	 * @return bool
//	 */
//
// and bare comment text are accepted.
// Parsing never fails, malformed input degrades to a description.
package comment

import (
	"regexp"
	"strings"
)

// Doc is a parsed documentation comment.
type Doc struct {
	Description string
	Tags        []Tag
}

// Tag is a single "@name value" annotation.
// Value spans continuation lines, joined with newlines.
type Tag struct {
	Name  string
	Value string
}

// Param is a parsed "@param" tag.
type Param struct {
	// Name is the parameter name without the "$" sigil.
	Name        string
	Type        string
	Description string
}

// Throw is a parsed "@throws" tag.
type Throw struct {
	Type        string
	Description string
}

var (
	openingRegex = regexp.MustCompile(`^\s*/\*+`)
	closingRegex = regexp.MustCompile(`\*+/\s*$`)
	gutterRegex  = regexp.MustCompile(`^\s*\*( ?)`)
	tagRegex     = regexp.MustCompile(`^@([\w-]+)\s*(.*)$`)
)

// Parse parses the raw documentation comment.
func Parse(raw string) Doc {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	raw = openingRegex.ReplaceAllString(raw, "")
	raw = closingRegex.ReplaceAllString(raw, "")

	var (
		doc         Doc
		description []string
	)
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimRight(gutterRegex.ReplaceAllString(line, ""), " \t")
		if matches := tagRegex.FindStringSubmatch(strings.TrimSpace(line)); matches != nil {
			doc.Tags = append(doc.Tags, Tag{Name: matches[1], Value: matches[2]})
			continue
		}
		if len(doc.Tags) == 0 {
			description = append(description, line)
			continue
		}
		// Continuation of the previous tag.
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		last := &doc.Tags[len(doc.Tags)-1]
		if last.Value == "" {
			last.Value = line
		} else {
			last.Value += "\n" + line
		}
	}
	doc.Description = strings.Trim(strings.Join(description, "\n"), "\n\t ")
	return doc
}

// Lookup returns all tags with the given name, in declaration order.
func (d Doc) Lookup(name string) []Tag {
	var tags []Tag
	for _, tag := range d.Tags {
		if tag.Name == name {
			tags = append(tags, tag)
		}
	}
	return tags
}

// Var returns the type and description of the first "@var" tag.
// A variable name following the type is skipped.
func (d Doc) Var() (typ, description string) {
	tags := d.Lookup("var")
	if len(tags) == 0 {
		return "", ""
	}
	typ, rest := splitWord(tags[0].Value)
	if strings.HasPrefix(typ, "$") {
		return "", rest
	}
	if name, afterName := splitWord(rest); strings.HasPrefix(name, "$") {
		rest = afterName
	}
	return typ, rest
}

// Return returns the type and description of the first "@return" or "@returns" tag.
func (d Doc) Return() (typ, description string) {
	tags := d.Lookup("return")
	if len(tags) == 0 {
		tags = d.Lookup("returns")
	}
	if len(tags) == 0 {
		return "", ""
	}
	return splitWord(tags[0].Value)
}

// Params returns all "@param" tags.
// Both "@param Type $name desc" and "@param $name desc" forms are recognized.
func (d Doc) Params() []Param {
	tags := d.Lookup("param")
	params := make([]Param, 0, len(tags))
	for _, tag := range tags {
		first, rest := splitWord(tag.Value)
		var param Param
		if strings.HasPrefix(first, "$") {
			param.Name = first
			param.Description = rest
		} else {
			param.Type = first
			param.Name, param.Description = splitWord(rest)
		}
		param.Name = strings.TrimPrefix(strings.TrimPrefix(param.Name, "..."), "$")
		params = append(params, param)
	}
	return params
}

// Param returns the "@param" tag describing the named parameter.
func (d Doc) Param(name string) (Param, bool) {
	name = strings.TrimPrefix(name, "$")
	for _, param := range d.Params() {
		if param.Name == name {
			return param, true
		}
	}
	return Param{}, false
}

// Throws returns all "@throws" tags.
func (d Doc) Throws() []Throw {
	tags := d.Lookup("throws")
	throws := make([]Throw, 0, len(tags))
	for _, tag := range tags {
		typ, description := splitWord(tag.Value)
		throws = append(throws, Throw{Type: typ, Description: description})
	}
	return throws
}

func splitWord(s string) (word, rest string) {
	s = strings.TrimSpace(s)
	idx := strings.IndexAny(s, " \t\n")
	if idx == -1 {
		return s, ""
	}
	return s[:idx], strings.TrimSpace(s[idx+1:])
}
