package proxy

import (
	"bytes"
	"mime/multipart"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReencode_FormBody(t *testing.T) {
	body, ct, err := Reencode([]byte("order_id=42&status=shipped"), "application/x-www-form-urlencoded")
	require.NoError(t, err)
	assert.Equal(t, "application/x-www-form-urlencoded", ct)

	values, err := url.ParseQuery(string(body))
	require.NoError(t, err)
	assert.Equal(t, "42", values.Get("order_id"))
	assert.Equal(t, "shipped", values.Get("status"))
}

func TestReencode_FormBodyWithCharset(t *testing.T) {
	_, ct, err := Reencode([]byte("a=1"), "application/x-www-form-urlencoded; charset=utf-8")
	require.NoError(t, err)
	assert.Equal(t, "application/x-www-form-urlencoded", ct)
}

func TestReencode_InvalidForm(t *testing.T) {
	_, _, err := Reencode([]byte("a=%zz"), "application/x-www-form-urlencoded")
	assert.Error(t, err)
}

func TestReencode_MultipartFields(t *testing.T) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("order_id", "42"))
	require.NoError(t, mw.WriteField("status", "shipped"))
	require.NoError(t, mw.Close())

	body, ct, err := Reencode(buf.Bytes(), mw.FormDataContentType())
	require.NoError(t, err)
	assert.Equal(t, "application/json", ct)
	assert.JSONEq(t, `{"order_id":"42","status":"shipped"}`, string(body))
}

func TestReencode_MultipartRepeatedField(t *testing.T) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("tag", "one"))
	require.NoError(t, mw.WriteField("tag", "two"))
	require.NoError(t, mw.Close())

	body, _, err := Reencode(buf.Bytes(), mw.FormDataContentType())
	require.NoError(t, err)
	assert.JSONEq(t, `{"tag":["one","two"]}`, string(body))
}

func TestReencode_MultipartWithoutBoundary(t *testing.T) {
	_, _, err := Reencode([]byte("anything"), "multipart/form-data")
	assert.Error(t, err)
}

func TestReencode_JSONBody(t *testing.T) {
	body, ct, err := Reencode([]byte(`{"feedback": "great"}`), "application/json")
	require.NoError(t, err)
	assert.Equal(t, "application/json", ct)
	assert.JSONEq(t, `{"feedback":"great"}`, string(body))
}

func TestReencode_DefaultsToJSON(t *testing.T) {
	body, ct, err := Reencode([]byte(`{"a":1}`), "")
	require.NoError(t, err)
	assert.Equal(t, "application/json", ct)
	assert.JSONEq(t, `{"a":1}`, string(body))
}

func TestReencode_EmptyBody(t *testing.T) {
	body, ct, err := Reencode(nil, "")
	require.NoError(t, err)
	assert.Empty(t, body)
	assert.Equal(t, "application/json", ct)
}

func TestReencode_InvalidJSON(t *testing.T) {
	_, _, err := Reencode([]byte("{broken"), "application/json")
	assert.Error(t, err)
}
