package merger

// DeepEqual reports structural equality of two JSON-compatible values
// (mappings, sequences, strings, booleans, numbers, null).
//
// Numbers compare numerically across representations, so a YAML-decoded
// int 1 equals a JSON-decoded float64 1.0. This is the duplicate-tolerance
// predicate used by the definition and security-definition mergers; it is
// deliberately independent of reflect.DeepEqual.
func DeepEqual(left, right any) bool {
	switch l := left.(type) {
	case nil:
		return right == nil
	case map[string]any:
		r, ok := right.(map[string]any)
		if !ok || len(l) != len(r) {
			return false
		}
		for key, lv := range l {
			rv, present := r[key]
			if !present || !DeepEqual(lv, rv) {
				return false
			}
		}
		return true
	case []any:
		r, ok := right.([]any)
		if !ok || len(l) != len(r) {
			return false
		}
		for i := range l {
			if !DeepEqual(l[i], r[i]) {
				return false
			}
		}
		return true
	case string:
		r, ok := right.(string)
		return ok && l == r
	case bool:
		r, ok := right.(bool)
		return ok && l == r
	default:
		if lf, lok := toFloat(left); lok {
			rf, rok := toFloat(right)
			return rok && lf == rf
		}
		return left == right
	}
}

// toFloat normalizes the numeric types YAML and JSON decoders produce.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
