// Package http provides the response envelope, return-style handlers and the chi backed router
package http

import (
	"encoding/json"
	stdhttp "net/http"

	perr "moodroom/internal/platform/errors"
	pnet "moodroom/internal/platform/net"
)

// Envelope is the JSON body of every non-binary response
type Envelope struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       any            `json:"data,omitempty"`
}

// JSON writes v as application/json with the given status
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func envelope(r *stdhttp.Request, status int, data any) Envelope {
	return Envelope{
		StatusCode: status,
		Status:     stdhttp.StatusText(status),
		RequestID:  pnet.RequestID(r.Context()),
		Data:       data,
	}
}

func errorEnvelope(r *stdhttp.Request, err error) (int, Envelope) {
	status, wr := perr.HTTP(err)
	env := envelope(r, status, nil)
	env.Code = wr.Code
	env.Error = wr.Message
	return status, env
}

// RespondOK writes a 200 envelope with data
func RespondOK(w stdhttp.ResponseWriter, r *stdhttp.Request, data any) {
	JSON(w, stdhttp.StatusOK, envelope(r, stdhttp.StatusOK, data))
}

// RespondError maps err to its status and writes an error envelope
func RespondError(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	status, env := errorEnvelope(r, err)
	JSON(w, status, env)
}

// Response is what return-style handlers produce
// Blob bodies are written raw with ContentType; Location turns the response into a redirect
type Response struct {
	Status      int
	Body        any
	Header      stdhttp.Header
	Blob        []byte
	ContentType string
	Location    string
}

// Handle adapts a Response returning func to a platform Handler
func Handle(h func(r *stdhttp.Request) Response) Handler {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		h(r).write(w, r)
	}
}

func (resp Response) write(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	for k, vv := range resp.Header {
		for _, v := range vv {
			w.Header().Add(k, v)
		}
	}
	if err, ok := resp.Body.(error); ok && err != nil {
		RespondError(w, r, err)
		return
	}

	status := resp.Status
	if status == 0 {
		status = stdhttp.StatusOK
	}
	switch {
	case resp.Location != "":
		stdhttp.Redirect(w, r, resp.Location, status)
	case status == stdhttp.StatusNoContent:
		w.WriteHeader(status)
	case resp.Blob != nil:
		w.Header().Set("Content-Type", resp.ContentType)
		w.WriteHeader(status)
		_, _ = w.Write(resp.Blob)
	default:
		JSON(w, status, envelope(r, status, resp.Body))
	}
}

// OK returns a 200 response
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// Created returns a 201 response
func Created(data any) Response { return Response{Status: stdhttp.StatusCreated, Body: data} }

// NoContent returns a 204 response
func NoContent() Response { return Response{Status: stdhttp.StatusNoContent} }

// Error returns a response that maps err to status and envelope
func Error(err error) Response { return Response{Body: err} }

// Redirect returns a 302 to location
func Redirect(location string) Response {
	return Response{Status: stdhttp.StatusFound, Location: location}
}

// Binary returns a 200 with a raw body of the given content type
func Binary(contentType string, data []byte) Response {
	if data == nil {
		data = []byte{}
	}
	return Response{Status: stdhttp.StatusOK, Blob: data, ContentType: contentType}
}
