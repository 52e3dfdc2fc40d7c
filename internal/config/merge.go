package config

// deepMerge merges src into dst, mutating and returning dst. Nested objects
// merge key by key; arrays and scalars from src replace the accumulated
// value outright. Arrays are deliberately never merged element-wise: a later
// source's list wins whole, which keeps precedence observable. Nil values in
// src are treated as "not present" and never overwrite.
func deepMerge(dst, src map[string]any) map[string]any {
	if dst == nil {
		dst = make(map[string]any)
	}
	for key, srcVal := range src {
		if srcVal == nil {
			continue
		}
		srcMap, srcIsMap := srcVal.(map[string]any)
		dstMap, dstIsMap := dst[key].(map[string]any)
		if srcIsMap && dstIsMap {
			dst[key] = deepMerge(dstMap, srcMap)
			continue
		}
		dst[key] = srcVal
	}
	return dst
}
