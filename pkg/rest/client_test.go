package rest

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestGetDecodesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/tables" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`[{"id":"1","number":1}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, nil)
	var out []map[string]any
	if err := c.Get(context.Background(), "/tables", nil, &out); err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(out) != 1 || out[0]["id"] != "1" {
		t.Fatalf("unexpected payload: %v", out)
	}
}

func TestNotFoundMapsToNotFoundError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, nil)
	err := c.Get(context.Background(), "/orders/999", nil, &struct{}{})

	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("want NotFoundError, got %T: %v", err, err)
	}
}

func TestServerErrorCarriesStatusAndBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, nil)
	err := c.Get(context.Background(), "/orders", nil, &struct{}{})

	var se *ServerError
	if !errors.As(err, &se) {
		t.Fatalf("want ServerError, got %T: %v", err, err)
	}
	if se.Status != http.StatusInternalServerError || se.Body != "boom" {
		t.Fatalf("unexpected error detail: %+v", se)
	}
}

func TestUnreachableHostMapsToNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // now nothing listens there

	c := NewClient(srv.URL, time.Second, nil)
	err := c.Get(context.Background(), "/tables", nil, &struct{}{})

	var ne *NetworkError
	if !errors.As(err, &ne) {
		t.Fatalf("want NetworkError, got %T: %v", err, err)
	}
}

func TestMalformedPayloadMapsToServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, nil)
	err := c.Get(context.Background(), "/tables", nil, &struct{}{})

	var se *ServerError
	if !errors.As(err, &se) {
		t.Fatalf("want ServerError for malformed payload, got %T: %v", err, err)
	}
}

func TestGetWithHeaderExposesTotalCount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Total-Count", "42")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, nil)
	var out []struct{}
	hdr, err := c.GetWithHeader(context.Background(), "/reservations", nil, &out)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if hdr.Get("X-Total-Count") != "42" {
		t.Fatalf("missing total count header")
	}
}
