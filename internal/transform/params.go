package transform

// Parameter maps come from UI widgets and tests with mixed numeric types,
// so lookups coerce int and float values interchangeably.

func floatParam(params map[string]interface{}, key string, def float64) (float64, bool) {
	val, ok := params[key]
	if !ok {
		return def, false
	}
	switch v := val.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return def, false
}

func intParam(params map[string]interface{}, key string, def int) (int, bool) {
	v, ok := floatParam(params, key, float64(def))
	return int(v), ok
}
