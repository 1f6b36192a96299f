package validator

import (
	"bytes"
	"encoding/json"

	"github.com/Jamolkhon5/blackrock-ai/internal/ai/project/models"
)

const (
	ErrTypeMissing    = "missing"
	ErrTypeJSON       = "json_invalid"
	ErrTypeObject     = "model_attributes_type"
	ErrTypeString     = "string_type"
	msgFieldRequired  = "Field required"
	msgJSONDecode     = "JSON decode error"
	msgObjectExpected = "Input should be a valid dictionary or object to extract fields from"
	msgStringExpected = "Input should be a valid string"
)

// ValidateGenerateRequest разбирает тело запроса /v1/generate.
// title обязателен, summary может отсутствовать или быть null.
func ValidateGenerateRequest(body []byte) (models.GenerateRequest, []models.FieldError) {
	return validate(body, true)
}

// ValidatePlanRequest разбирает тело запроса /plan, где оба поля необязательны
func ValidatePlanRequest(body []byte) (models.GenerateRequest, []models.FieldError) {
	return validate(body, false)
}

func validate(body []byte, titleRequired bool) (models.GenerateRequest, []models.FieldError) {
	var req models.GenerateRequest

	if len(bytes.TrimSpace(body)) == 0 {
		return req, []models.FieldError{{
			Type: ErrTypeMissing, Loc: []string{"body"}, Msg: msgFieldRequired,
		}}
	}

	var raw any
	if err := json.Unmarshal(body, &raw); err != nil {
		return req, []models.FieldError{{
			Type: ErrTypeJSON, Loc: []string{"body"}, Msg: msgJSONDecode, Input: err.Error(),
		}}
	}

	obj, ok := raw.(map[string]any)
	if !ok {
		return req, []models.FieldError{{
			Type: ErrTypeObject, Loc: []string{"body"}, Msg: msgObjectExpected, Input: raw,
		}}
	}

	errs := make([]models.FieldError, 0)

	title, present := obj["title"]
	switch {
	case !present && titleRequired:
		errs = append(errs, models.FieldError{
			Type: ErrTypeMissing, Loc: []string{"body", "title"}, Msg: msgFieldRequired, Input: obj,
		})
	case !present, title == nil && !titleRequired:
	default:
		s, isString := title.(string)
		if !isString {
			errs = append(errs, stringError("title", title))
		} else {
			req.Title = s
		}
	}

	if summary, present := obj["summary"]; present && summary != nil {
		s, isString := summary.(string)
		if !isString {
			errs = append(errs, stringError("summary", summary))
		} else {
			req.Summary = &s
		}
	}

	if len(errs) > 0 {
		return models.GenerateRequest{}, errs
	}
	return req, nil
}

func stringError(field string, input any) models.FieldError {
	return models.FieldError{
		Type: ErrTypeString, Loc: []string{"body", field}, Msg: msgStringExpected, Input: input,
	}
}
