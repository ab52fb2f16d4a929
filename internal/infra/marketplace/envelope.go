package marketplace

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"

	domainerrors "marketdash/internal/domain/errors"
	"marketdash/internal/domain/service"
)

// rawEnvelope accepts both conventions the API uses:
// {success, data, message} and {status: "success"|"error", data, message}.
type rawEnvelope struct {
	Success    *bool           `json:"success"`
	Status     string          `json:"status"`
	Data       json.RawMessage `json:"data"`
	Message    string          `json:"message"`
	Error      json.RawMessage `json:"error"`
	Errors     json.RawMessage `json:"errors"`
	Pagination *paginationDTO  `json:"pagination"`
	Total      *int            `json:"total"`
	Page       *int            `json:"page"`
	Limit      *int            `json:"limit"`
}

type paginationDTO struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// envelope is the single normalized shape the rest of the client works with.
type envelope struct {
	Data       json.RawMessage
	Message    string
	Pagination *service.Pagination
}

// hasData reports whether the payload is present and not JSON null.
func (e *envelope) hasData() bool {
	trimmed := bytes.TrimSpace(e.Data)

	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}

// normalizeEnvelope turns an HTTP status and body into either a normalized
// envelope or an *UpstreamError. A 2xx body that carries no envelope markers
// is treated as a bare payload.
func normalizeEnvelope(statusCode int, body []byte) (*envelope, error) {
	trimmed := bytes.TrimSpace(body)
	success2xx := statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices

	if len(trimmed) == 0 {
		if success2xx {
			return &envelope{}, nil
		}

		return nil, &domainerrors.UpstreamError{StatusCode: statusCode, Msg: http.StatusText(statusCode)}
	}

	var raw rawEnvelope
	if trimmed[0] != '{' || json.Unmarshal(trimmed, &raw) != nil {
		if success2xx && json.Valid(trimmed) {
			return &envelope{Data: json.RawMessage(trimmed)}, nil
		}

		msg := "malformed response body"
		if !success2xx {
			msg = http.StatusText(statusCode)
		}

		return nil, &domainerrors.UpstreamError{StatusCode: statusCode, Msg: msg}
	}

	status := strings.ToLower(raw.Status)
	flaggedFailure := (raw.Success != nil && !*raw.Success) || status == "error" || status == "fail"
	marked := raw.Success != nil || status == "success" || flaggedFailure

	if !success2xx || flaggedFailure {
		return nil, &domainerrors.UpstreamError{
			StatusCode: statusCode,
			Msg:        failureMessage(&raw, statusCode),
			Fields:     fieldErrors(raw.Errors),
		}
	}

	env := &envelope{Data: raw.Data, Message: raw.Message, Pagination: pagination(&raw)}
	if !marked && len(raw.Data) == 0 {
		env.Data = json.RawMessage(trimmed)
	}

	return env, nil
}

func failureMessage(raw *rawEnvelope, statusCode int) string {
	if raw.Message != "" {
		return raw.Message
	}

	if len(raw.Error) > 0 {
		var s string
		if json.Unmarshal(raw.Error, &s) == nil && s != "" {
			return s
		}

		var obj struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(raw.Error, &obj) == nil && obj.Message != "" {
			return obj.Message
		}
	}

	if statusCode >= http.StatusBadRequest {
		return http.StatusText(statusCode)
	}

	return "request was not successful"
}

// fieldErrors reads validation errors in any of the forms the API emits:
// {"name": "msg"}, {"name": ["msg", ...]} or [{"field"|"path"|"param": "name", "message"|"msg": "msg"}].
func fieldErrors(raw json.RawMessage) map[string]string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil
	}

	fields := map[string]string{}

	switch trimmed[0] {
	case '{':
		var byField map[string]json.RawMessage
		if json.Unmarshal(trimmed, &byField) != nil {
			return nil
		}
		for name, value := range byField {
			var s string
			if json.Unmarshal(value, &s) == nil {
				fields[name] = s

				continue
			}

			var list []string
			if json.Unmarshal(value, &list) == nil {
				fields[name] = strings.Join(list, ", ")
			}
		}
	case '[':
		var items []struct {
			Field   string `json:"field"`
			Path    string `json:"path"`
			Param   string `json:"param"`
			Message string `json:"message"`
			Msg     string `json:"msg"`
		}
		if json.Unmarshal(trimmed, &items) != nil {
			return nil
		}
		for _, item := range items {
			name := firstNonEmpty(item.Field, item.Path, item.Param)
			msg := firstNonEmpty(item.Message, item.Msg)
			if name == "" || msg == "" {
				continue
			}
			if existing, ok := fields[name]; ok {
				msg = existing + ", " + msg
			}
			fields[name] = msg
		}
	}

	if len(fields) == 0 {
		return nil
	}

	return fields
}

func pagination(raw *rawEnvelope) *service.Pagination {
	if raw.Pagination != nil {
		return &service.Pagination{Total: raw.Pagination.Total, Page: raw.Pagination.Page, Limit: raw.Pagination.Limit}
	}

	if raw.Total == nil {
		return nil
	}

	p := &service.Pagination{Total: *raw.Total}
	if raw.Page != nil {
		p.Page = *raw.Page
	}
	if raw.Limit != nil {
		p.Limit = *raw.Limit
	}

	return p
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
