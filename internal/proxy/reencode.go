package proxy

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime"
	"mime/multipart"
	"net/url"
	"strings"
)

// Reencode parses the request body once and re-serializes it to the wire
// format the backend expects. Form-encoded bodies stay form-encoded,
// multipart text fields are forwarded as JSON, and any other body is
// forwarded as JSON. It returns the bytes to send and the content type to
// send them with.
func Reencode(body []byte, contentType string) ([]byte, string, error) {
	if strings.Contains(contentType, "application/x-www-form-urlencoded") {
		values, err := url.ParseQuery(string(body))
		if err != nil {
			return nil, "", err
		}
		return []byte(values.Encode()), "application/x-www-form-urlencoded", nil
	}

	if strings.Contains(contentType, "multipart/form-data") {
		fields, err := multipartFields(body, contentType)
		if err != nil {
			return nil, "", err
		}
		encoded, err := json.Marshal(fields)
		if err != nil {
			return nil, "", err
		}
		return encoded, "application/json", nil
	}

	if contentType == "" {
		contentType = "application/json"
	}
	if len(body) == 0 {
		return nil, contentType, nil
	}

	var parsed interface{}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, "", err
	}
	encoded, err := json.Marshal(parsed)
	if err != nil {
		return nil, "", err
	}
	return encoded, contentType, nil
}

// multipartFields extracts the text fields of a multipart body. File parts
// are dropped; the proxied routes only carry form fields.
func multipartFields(body []byte, contentType string) (map[string]interface{}, error) {
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, err
	}
	boundary := params["boundary"]
	if boundary == "" {
		return nil, errors.New("multipart body without boundary")
	}

	form, err := multipart.NewReader(bytes.NewReader(body), boundary).ReadForm(10 << 20)
	if err != nil {
		return nil, err
	}
	defer form.RemoveAll()

	fields := make(map[string]interface{}, len(form.Value))
	for name, values := range form.Value {
		if len(values) == 1 {
			fields[name] = values[0]
		} else {
			fields[name] = values
		}
	}
	return fields, nil
}
