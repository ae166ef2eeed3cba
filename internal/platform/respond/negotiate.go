package respond

import (
	"strconv"
	"strings"
)

// mediaPreference is the best (quality, specificity) seen for one format.
type mediaPreference struct {
	q           float64
	specificity int
}

func (p mediaPreference) beats(o mediaPreference) bool {
	if p.q != o.q {
		return p.q > o.q
	}
	return p.specificity > o.specificity
}

// prefersCBOR reports whether the Accept header ranks a CBOR media type above
// every JSON-compatible one. Ranking follows RFC 9110: q-value first, then
// specificity. Ties, wildcards and unknown types resolve to JSON.
func prefersCBOR(accept string) bool {
	if strings.TrimSpace(accept) == "" {
		return false
	}

	var jsonPref, cborPref mediaPreference
	for part := range strings.SplitSeq(accept, ",") {
		mediaType, q := parseMediaRange(part)
		if q <= 0 {
			continue
		}
		var (
			target      *mediaPreference
			specificity int
		)
		switch mediaType {
		case "application/problem+cbor":
			target, specificity = &cborPref, 3
		case "application/cbor":
			target, specificity = &cborPref, 2
		case "application/problem+json":
			target, specificity = &jsonPref, 3
		case "application/json":
			target, specificity = &jsonPref, 2
		case "application/*":
			target, specificity = &jsonPref, 1
		case "*/*":
			target, specificity = &jsonPref, 0
		default:
			continue
		}
		if cand := (mediaPreference{q: q, specificity: specificity}); cand.beats(*target) {
			*target = cand
		}
	}
	return cborPref.q > 0 && cborPref.beats(jsonPref)
}

// parseMediaRange returns the lower-cased media type and its q-value.
// A missing or malformed q parameter counts as 1.
func parseMediaRange(s string) (string, float64) {
	params := strings.Split(s, ";")
	mediaType := strings.ToLower(strings.TrimSpace(params[0]))
	q := 1.0
	for _, p := range params[1:] {
		key, value, ok := strings.Cut(strings.TrimSpace(p), "=")
		if !ok || !strings.EqualFold(strings.TrimSpace(key), "q") {
			continue
		}
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil {
			q = parsed
		}
	}
	return mediaType, q
}
