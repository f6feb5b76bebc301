package descriptor

import (
	"strings"

	"github.com/kn3ll/jui/errors"
)

// Parse scans a single type descriptor from the wire grammar, e.g. "I",
// "Ljava/lang/String;" or "[[D".
func Parse(s string) (Descriptor, error) {
	d, rest, err := scanOne(s)
	if err != nil {
		return Descriptor{}, err
	}
	if rest != "" {
		return Descriptor{}, errors.ParseFailed(s, "trailing characters after descriptor")
	}
	return d, nil
}

// ParseMethod scans a full method signature, e.g. "(ILjava/lang/String;)V".
func ParseMethod(s string) (Method, error) {
	if len(s) == 0 || s[0] != '(' {
		return Method{}, errors.ParseFailed(s, "method descriptor must start with '('")
	}
	rest := s[1:]

	var params []Descriptor
	for {
		if rest == "" {
			return Method{}, errors.ParseFailed(s, "unterminated parameter list")
		}
		if rest[0] == ')' {
			rest = rest[1:]
			break
		}
		d, r, err := scanOne(rest)
		if err != nil {
			return Method{}, err
		}
		if d.Kind() == KindVoid {
			return Method{}, errors.ParseFailed(s, "void parameter")
		}
		params = append(params, d)
		rest = r
	}

	ret, rest, err := scanOne(rest)
	if err != nil {
		return Method{}, err
	}
	if rest != "" {
		return Method{}, errors.ParseFailed(s, "trailing characters after return type")
	}
	return Method{params: params, ret: ret}, nil
}

var letterKinds = map[byte]Kind{
	'B': KindByte,
	'C': KindChar,
	'I': KindInt,
	'J': KindLong,
	'S': KindShort,
	'F': KindFloat,
	'D': KindDouble,
	'Z': KindBoolean,
	'V': KindVoid,
}

func scanOne(s string) (Descriptor, string, error) {
	if s == "" {
		return Descriptor{}, "", errors.ParseFailed(s, "empty descriptor")
	}
	switch c := s[0]; c {
	case 'L':
		end := strings.IndexByte(s, ';')
		if end < 0 {
			return Descriptor{}, "", errors.ParseFailed(s, "object descriptor missing ';'")
		}
		name := s[1:end]
		if name == "" {
			return Descriptor{}, "", errors.ParseFailed(s, "object descriptor with empty class name")
		}
		return ObjectOf(name), s[end+1:], nil
	case '[':
		elem, rest, err := scanOne(s[1:])
		if err != nil {
			return Descriptor{}, "", err
		}
		if elem.Kind() == KindVoid {
			return Descriptor{}, "", errors.ParseFailed(s, "array of void")
		}
		return ArrayOf(elem), rest, nil
	default:
		k, ok := letterKinds[c]
		if !ok {
			return Descriptor{}, "", errors.ParseFailed(s, "unknown type letter "+string(c))
		}
		return Descriptor{kind: k}, s[1:], nil
	}
}
