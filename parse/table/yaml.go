package table

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
)

// MarshalYAML renders the subtree under label as a YAML document, keeping the
// canonical key order. Leaf payloads are unquoted.
func MarshalYAML(root *Table, label string) ([]byte, error) {
	n, err := Lookup(root, label)
	if err != nil {
		return nil, err
	}
	v, err := toYAML(n)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(yaml.MapSlice{{Key: label, Value: v}})
}

func toYAML(n Node) (any, error) {
	switch v := n.(type) {
	case *Leaf:
		return unquote(v.Value), nil
	case *Table:
		keys := Keys(v)
		out := make(yaml.MapSlice, 0, len(keys))
		for _, k := range keys {
			child, err := toYAML(v.Items[k])
			if err != nil {
				return nil, err
			}
			out = append(out, yaml.MapItem{Key: k, Value: child})
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unexpected node %T", n)
	}
}

// unquote decodes a payload as a double-quoted Lua string literal. Payloads
// it cannot decode are returned as written, quotes included.
func unquote(s string) string {
	if u, ok := decodeLuaString(s); ok {
		return u
	}
	return s
}

// decodeLuaString handles the escapes \a \b \f \n \r \t \v \\ \" \' \ddd
// (decimal, at most 255) and \xXX.
func decodeLuaString(s string) (string, bool) {
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return "", false
	}
	body := s[1 : len(s)-1]
	var b strings.Builder
	b.Grow(len(body))
	for i := 0; i < len(body); i++ {
		ch := body[i]
		if ch == '"' {
			return "", false
		}
		if ch != '\\' {
			b.WriteByte(ch)
			continue
		}
		i++
		if i >= len(body) {
			return "", false
		}
		switch c := body[i]; c {
		case 'a':
			b.WriteByte('\a')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'v':
			b.WriteByte('\v')
		case '\\', '"', '\'':
			b.WriteByte(c)
		case 'x':
			if i+2 >= len(body) {
				return "", false
			}
			v, err := strconv.ParseUint(body[i+1:i+3], 16, 8)
			if err != nil {
				return "", false
			}
			b.WriteByte(byte(v))
			i += 2
		default:
			if c < '0' || c > '9' {
				return "", false
			}
			j := i
			for j < len(body) && j < i+3 && body[j] >= '0' && body[j] <= '9' {
				j++
			}
			v, err := strconv.ParseUint(body[i:j], 10, 8)
			if err != nil {
				return "", false
			}
			b.WriteByte(byte(v))
			i = j - 1
		}
	}
	return b.String(), true
}
