package network

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	Name string `json:"name"`
}

func newTestSession(t *testing.T, handler http.HandlerFunc) *Session {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewSession(Development(server.URL), server.Client(), zerolog.Nop())
}

func TestSend_CallsEndpointOnce(t *testing.T) {
	var (
		calls    atomic.Int32
		gotPath  string
		gotQuery string
		gotCT    string
	)
	session := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotCT = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusInternalServerError)
	})

	res, err := session.Send(context.Background(), GetAccounts("a1"))
	require.NoError(t, err)

	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, "/accounts", gotPath)
	assert.Empty(t, gotQuery)
	assert.Equal(t, "application/json", gotCT)
	assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
	assert.Equal(t, "getAccounts(a1)", res.Request.String())
}

func TestSend_InvalidRequest(t *testing.T) {
	session := NewSession(Development("not a url"), nil, zerolog.Nop())

	_, err := session.Send(context.Background(), GetAdvisors())
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestSend_CancellationIsUnknown(t *testing.T) {
	release := make(chan struct{})
	session := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err := session.Send(ctx, GetAdvisors())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknown)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSend_ConnectionRefusedIsUnknown(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	session := NewSession(Development(url), nil, zerolog.Nop())
	_, err := session.Send(context.Background(), GetAdvisors())
	assert.Equal(t, KindUnknown, KindOf(err))
}

func TestSend_DebugLoggingDoesNotAlterRequest(t *testing.T) {
	var gotBody int64
	session := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		gotBody = r.ContentLength
		w.Write([]byte(`[]`))
	})
	session.log = zerolog.New(zerolog.NewTestWriter(t)).Level(zerolog.DebugLevel)

	res, err := session.Send(context.Background(), GetAdvisors().WithBody(item{Name: "x"}))
	require.NoError(t, err)
	assert.Equal(t, int64(len(`{"name":"x"}`)), gotBody)
	assert.Equal(t, []byte(`[]`), res.Body)
}

func TestDecode_StatusBoundaries(t *testing.T) {
	tests := []struct {
		status  int
		wantErr bool
	}{
		{status: 199, wantErr: true},
		{status: 200},
		{status: 204},
		{status: 299},
		{status: 300, wantErr: true},
		{status: 404, wantErr: true},
		{status: 500, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.status), func(t *testing.T) {
			res := &Response{Request: GetAdvisors(), StatusCode: tt.status, Body: []byte(`[{"name":"a"}]`)}

			items, err := Decode[[]item](res, nil)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, HTTPError(tt.status))
				assert.Nil(t, items)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, []item{{Name: "a"}}, items)
		})
	}
}

func TestDecode_OverHTTP(t *testing.T) {
	for _, status := range []int{200, 299, 300} {
		session := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			w.Write([]byte(`[]`))
		})

		items, err := Decode[[]item](session.Send(context.Background(), GetAdvisors()))
		if status == 200 || status == 299 {
			require.NoError(t, err, "status %d", status)
			assert.Empty(t, items)
			continue
		}
		assert.ErrorIs(t, err, ErrHTTP, "status %d", status)
	}
}

func TestDecode_Failures(t *testing.T) {
	t.Run("propagates network error", func(t *testing.T) {
		_, err := Decode[[]item](nil, newError(KindInvalidRequest, nil))
		assert.Equal(t, KindInvalidRequest, KindOf(err))
	})

	t.Run("foreign error becomes unknown", func(t *testing.T) {
		cause := errors.New("boom")
		_, err := Decode[[]item](nil, cause)
		assert.ErrorIs(t, err, ErrUnknown)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("missing response", func(t *testing.T) {
		_, err := Decode[[]item](nil, nil)
		assert.ErrorIs(t, err, ErrInvalidResponse)
	})

	t.Run("malformed body", func(t *testing.T) {
		_, err := Decode[[]item](&Response{StatusCode: 200, Body: []byte(`{"name":`)}, nil)
		assert.ErrorIs(t, err, ErrDecoding)
	})

	t.Run("empty body", func(t *testing.T) {
		_, err := Decode[[]item](&Response{StatusCode: 200}, nil)
		assert.ErrorIs(t, err, ErrDecoding)
	})

	t.Run("null body", func(t *testing.T) {
		_, err := Decode[[]item](&Response{StatusCode: 200, Body: []byte(" null\n")}, nil)
		assert.ErrorIs(t, err, ErrDecoding)
	})

	t.Run("wrong shape", func(t *testing.T) {
		_, err := Decode[[]item](&Response{StatusCode: 200, Body: []byte(`{"name":"a"}`)}, nil)
		assert.ErrorIs(t, err, ErrDecoding)
	})
}
