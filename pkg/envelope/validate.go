package envelope

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"krishi/pkg/apperr"
)

// Missing returns the required fields, in order, that are absent from payload
// or hold null or an empty string. Types and ranges are not checked.
func Missing(payload map[string]any, required ...string) []string {
	missing := []string{}
	for _, f := range required {
		v, ok := payload[f]
		if !ok || v == nil {
			missing = append(missing, f)
			continue
		}
		if s, isStr := v.(string); isStr && s == "" {
			missing = append(missing, f)
		}
	}
	return missing
}

func MissingMessage(missing []string) string {
	return "Missing fields: " + strings.Join(missing, ", ")
}

// Float reads a numeric field. JSON numbers and numeric strings are accepted;
// anything else, and NaN or infinities, is a validation error.
func Float(payload map[string]any, field string) (float64, error) {
	var (
		f   float64
		err error
	)
	switch v := payload[field].(type) {
	case float64:
		f = v
	case json.Number:
		f, err = v.Float64()
	case string:
		f, err = strconv.ParseFloat(strings.TrimSpace(v), 64)
	default:
		err = fmt.Errorf("unsupported type %T", v)
	}
	if err == nil && (math.IsNaN(f) || math.IsInf(f, 0)) {
		err = errors.New("not a finite number")
	}
	if err != nil {
		return 0, fmt.Errorf("field %s: %w", field, apperr.ErrValidation)
	}
	return f, nil
}

// Text reads a string field. An absent or null field reads as ""; any other
// non-string value is a validation error.
func Text(payload map[string]any, field string) (string, error) {
	switch v := payload[field].(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	default:
		return "", fmt.Errorf("field %s: %T is not a string: %w", field, v, apperr.ErrValidation)
	}
}

// Texts reads several string fields, stopping at the first bad one. The
// returned name is that field's, so callers can report it.
func Texts(payload map[string]any, fields ...string) (map[string]string, string, error) {
	out := make(map[string]string, len(fields))
	for _, f := range fields {
		v, err := Text(payload, f)
		if err != nil {
			return nil, f, err
		}
		out[f] = v
	}
	return out, "", nil
}

// Payload decodes the request body into a map. An empty body or a content type
// the binder does not understand gives an empty map; malformed JSON is a
// validation error.
func Payload(c echo.Context) (map[string]any, error) {
	payload := map[string]any{}
	if err := (&echo.DefaultBinder{}).BindBody(c, &payload); err != nil {
		var he *echo.HTTPError
		if errors.As(err, &he) && he.Code == http.StatusUnsupportedMediaType {
			return map[string]any{}, nil
		}
		return nil, fmt.Errorf("decode body: %w", apperr.ErrValidation)
	}
	if payload == nil {
		payload = map[string]any{}
	}
	return payload, nil
}
