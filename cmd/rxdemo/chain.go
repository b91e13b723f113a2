package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kbukum/rxkit/eventsource"
	"github.com/kbukum/rxkit/observable"
)

// numberChain parses each value, divides it by Divisor, drops Exclude and
// delays the rest by Delay on s.
func numberChain(src *observable.Observable, c StreamConfig, s observable.Scheduler) *observable.Observable {
	return src.
		Map(func(v any) (any, error) {
			n, err := parseValue(v)
			if err != nil {
				return nil, err
			}
			return n / c.Divisor, nil
		}).
		Filter(func(v any) (bool, error) {
			return v != c.exclude(), nil
		}).
		DelayOn(c.delay(), s)
}

// parseValue reads a number from a string, a JSON number or the "value"
// field of an event payload.
func parseValue(v any) (float64, error) {
	switch x := v.(type) {
	case int:
		return float64(x), nil
	case float64:
		return x, nil
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, fmt.Errorf("parsing %q: %w", x, err)
		}
		return n, nil
	case eventsource.Event:
		raw, ok := x.Payload["value"]
		if !ok {
			return 0, fmt.Errorf("event %s has no value", x.Name)
		}
		return parseValue(raw)
	default:
		return 0, fmt.Errorf("unsupported value type %T", v)
	}
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
