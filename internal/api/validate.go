package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"
)

type ValidationKind int

const (
	MissingField ValidationKind = iota + 1
	WrongType
)

type ValidationError struct {
	Kind    ValidationKind
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func missingField(field string) error {
	return &ValidationError{
		Kind:    MissingField,
		Field:   field,
		Message: fmt.Sprintf("O campo %s é obrigatório", field),
	}
}

func wrongType(field, expected string) error {
	return &ValidationError{
		Kind:    WrongType,
		Field:   field,
		Message: fmt.Sprintf("O campo %s deve ser %s", field, expected),
	}
}

type RequestBody map[string]json.RawMessage

func ParseRequest(r *http.Request) (RequestBody, error) {
	var body RequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, CodedErrorf(http.StatusRequestEntityTooLarge, "O corpo da requisição excede o limite de %d bytes", maxErr.Limit)
		}
		slog.Error("error parsing request body", "error", err)
		return nil, CodedErrorf(http.StatusBadRequest, "Não foi possível interpretar o corpo da requisição como JSON")
	}
	if body == nil {
		// a literal null body
		body = RequestBody{}
	}
	return body, nil
}

func isAbsent(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}

// RequireString returns the field as a string. Absent, null and empty values count as missing.
func (b RequestBody) RequireString(field string) (string, error) {
	raw, ok := b[field]
	if !ok || isAbsent(raw) {
		return "", missingField(field)
	}

	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return "", wrongType(field, "uma string")
	}
	if value == "" {
		return "", missingField(field)
	}
	return value, nil
}

// number reads a JSON number or a numeric string.
func (b RequestBody) number(field string) (float64, bool, error) {
	raw, ok := b[field]
	if !ok || isAbsent(raw) {
		return 0, false, nil
	}

	var value float64
	if err := json.Unmarshal(raw, &value); err == nil {
		return value, true, nil
	}

	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(text), 64); err == nil {
			return parsed, true, nil
		}
	}

	return 0, false, errors.New("not a number")
}

func (b RequestBody) OptionalPositiveInt(field string, fallback int) (int, error) {
	value, ok, err := b.number(field)
	if err != nil {
		return 0, wrongType(field, "um número inteiro positivo")
	}
	if !ok {
		return fallback, nil
	}
	if value < 1 || value != math.Trunc(value) || value > math.MaxInt32 {
		return 0, wrongType(field, "um número inteiro positivo")
	}
	return int(value), nil
}

// OptionalPositiveFloat returns the field as a number in (0, max], or fallback when absent.
func (b RequestBody) OptionalPositiveFloat(field string, fallback, max float64) (float64, error) {
	expected := fmt.Sprintf("um número positivo até %g", max)

	value, ok, err := b.number(field)
	if err != nil {
		return 0, wrongType(field, expected)
	}
	if !ok {
		return fallback, nil
	}
	if value <= 0 || value > max || math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, wrongType(field, expected)
	}
	return value, nil
}

// OptionalEnum returns the string field if it is one of allowed, or fallback when absent.
func (b RequestBody) OptionalEnum(field string, fallback string, allowed ...string) (string, error) {
	raw, ok := b[field]
	if !ok || isAbsent(raw) {
		return fallback, nil
	}

	expected := "um de: " + strings.Join(allowed, ", ")

	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return "", wrongType(field, expected)
	}
	for _, option := range allowed {
		if value == option {
			return value, nil
		}
	}
	return "", wrongType(field, expected)
}
