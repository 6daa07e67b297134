package counter

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseAction reads a typed action: "inc", "dec", their long forms, or a
// signed amount such as "+5" or "-3".
func ParseAction(word string) (Action, error) {
	switch strings.ToLower(word) {
	case "inc", "increment", "+":
		return Action{Type: Increment}, nil
	case "dec", "decrement", "-":
		return Action{Type: Decrement}, nil
	}

	if strings.HasPrefix(word, "+") || strings.HasPrefix(word, "-") {
		n, err := strconv.Atoi(word)
		if err != nil {
			return Action{}, fmt.Errorf("parse amount %q: %w", word, err)
		}
		return ByAmount(n), nil
	}

	return Action{}, fmt.Errorf("unknown action %q", word)
}
