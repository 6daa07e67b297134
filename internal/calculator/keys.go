package calculator

import (
	"fmt"
	"strings"
)

// Key identifies one calculator button.
type Key string

const (
	KeyDecimal    Key = "."
	KeyEquals     Key = "="
	KeyClear      Key = "AC"
	KeyDelete     Key = "DEL"
	KeyToggleSign Key = "toggleSign"
)

// KeyKind groups keys for metrics and dispatch.
type KeyKind string

const (
	KindDigit    KeyKind = "digit"
	KindDecimal  KeyKind = "decimal"
	KindOperator KeyKind = "operator"
	KindEquals   KeyKind = "equals"
	KindClear    KeyKind = "clear"
	KindDelete   KeyKind = "delete"
	KindSign     KeyKind = "toggle_sign"
)

var aliases = map[string]Key{
	"x":   Key(Multiply),
	"X":   Key(Multiply),
	"×":   Key(Multiply),
	"÷":   Key(Divide),
	"−":   Key(Subtract),
	"C":   KeyClear,
	"+/-": KeyToggleSign,
	"±":   KeyToggleSign,
	"neg": KeyToggleSign,
	"MOD": Key(Modulo),
}

// Kind reports which group k belongs to, or "" for an unknown key.
func (k Key) Kind() KeyKind {
	switch k {
	case KeyDecimal:
		return KindDecimal
	case KeyEquals:
		return KindEquals
	case KeyClear:
		return KindClear
	case KeyDelete:
		return KindDelete
	case KeyToggleSign:
		return KindSign
	case Key(Add), Key(Subtract), Key(Multiply), Key(Divide), Key(Modulo):
		return KindOperator
	}
	if len(k) == 1 && k[0] >= '0' && k[0] <= '9' {
		return KindDigit
	}
	return ""
}

// ParseKey resolves a button identifier or one of its aliases.
func ParseKey(s string) (Key, error) {
	if k, ok := aliases[s]; ok {
		return k, nil
	}
	k := Key(s)
	if k.Kind() == "" {
		return "", fmt.Errorf("unknown key %q", s)
	}
	return k, nil
}

// ParseKeys resolves every identifier in ids.
func ParseKeys(ids []string) ([]Key, error) {
	keys := make([]Key, 0, len(ids))
	for _, id := range ids {
		k, err := ParseKey(id)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// Tokenize splits a typed word into keys: "12.5" becomes 1 2 . 5, while
// named keys such as "AC" or "+/-" stay whole.
func Tokenize(word string) ([]Key, error) {
	if k, err := ParseKey(word); err == nil {
		return []Key{k}, nil
	}

	var keys []Key
	for _, r := range strings.TrimSpace(word) {
		k, err := ParseKey(string(r))
		if err != nil {
			return nil, fmt.Errorf("tokenize %q: %w", word, err)
		}
		keys = append(keys, k)
	}
	if len(keys) == 0 {
		return nil, fmt.Errorf("tokenize %q: no keys", word)
	}
	return keys, nil
}
