package sms

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"callping/internal/common"
	"callping/internal/domain/call"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMessage() *call.Message {
	return &call.Message{
		To:   "+15551234567",
		From: "+15550001111",
		Body: "Sorry we missed you!",
	}
}

func TestTwilioSend_Success(t *testing.T) {
	var gotPath, gotUser, gotPass string
	var gotForm map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUser, gotPass, _ = r.BasicAuth()

		require.NoError(t, r.ParseForm())
		gotForm = map[string]string{
			"To":   r.PostFormValue("To"),
			"From": r.PostFormValue("From"),
			"Body": r.PostFormValue("Body"),
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"sid": "SM900abc", "status": "queued"}`))
	}))
	defer srv.Close()

	p := NewTwilioProvider("AC123", "token")
	p.baseURL = srv.URL

	sid, err := p.Send(context.Background(), testMessage())
	require.NoError(t, err)

	assert.Equal(t, "SM900abc", sid)
	assert.Equal(t, "/2010-04-01/Accounts/AC123/Messages.json", gotPath)
	assert.Equal(t, "AC123", gotUser)
	assert.Equal(t, "token", gotPass)
	assert.Equal(t, map[string]string{
		"To":   "+15551234567",
		"From": "+15550001111",
		"Body": "Sorry we missed you!",
	}, gotForm)
}

func TestTwilioSend_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"code": 21211, "message": "The 'To' number is not a valid phone number."}`))
	}))
	defer srv.Close()

	p := NewTwilioProvider("AC123", "token")
	p.baseURL = srv.URL

	_, err := p.Send(context.Background(), testMessage())
	require.Error(t, err)

	var perr *common.ProviderError
	require.ErrorAs(t, err, &perr)
	assert.Contains(t, err.Error(), "not a valid phone number")
	assert.Contains(t, err.Error(), "twilio")
}

func TestTwilioSend_ErrorWithoutBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	p := NewTwilioProvider("AC123", "token")
	p.baseURL = srv.URL

	_, err := p.Send(context.Background(), testMessage())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 503")
}

func TestTwilioSend_MalformedSuccessBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	p := NewTwilioProvider("AC123", "token")
	p.baseURL = srv.URL

	_, err := p.Send(context.Background(), testMessage())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing twilio response")
}

func TestTwilioSend_MissingSID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status": "queued"}`))
	}))
	defer srv.Close()

	p := NewTwilioProvider("AC123", "token")
	p.baseURL = srv.URL

	_, err := p.Send(context.Background(), testMessage())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing message sid")
}

func TestTwilioSend_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // closed immediately so the dial fails

	p := NewTwilioProvider("AC123", "token")
	p.baseURL = srv.URL

	_, err := p.Send(context.Background(), testMessage())
	require.Error(t, err)
}
