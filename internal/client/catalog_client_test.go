package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchTutorsSendsKeysAndUnwrapsEnvelope(t *testing.T) {
	var gotQuery, gotReqID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tutors/search", r.URL.Path)
		gotQuery = r.URL.RawQuery
		gotReqID = r.Header.Get("X-Request-ID")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"id":"t1","user":{"firstName":"Asha","lastName":"Rao"},"subjects":["Maths"],"hourlyRate":1.5,"yearsExperience":4,"rating":4.8,"isTopRated":true}],"meta":{"count":1}}`))
	}))
	defer srv.Close()

	c := NewCatalogClient(srv.URL+"/", "/api", time.Second, nil)
	ctx := WithRequestID(context.Background(), "req-1")

	tutors, err := c.SearchTutors(ctx, "Maths", "Pune West")
	require.NoError(t, err)
	require.Len(t, tutors, 1)
	assert.Equal(t, "t1", tutors[0].ID)
	require.NotNil(t, tutors[0].User)
	assert.Equal(t, "Asha", tutors[0].User.FirstName)
	assert.Equal(t, 1.5, tutors[0].HourlyRate)
	assert.True(t, tutors[0].IsTopRated)
	assert.Equal(t, "location=Pune+West&subject=Maths", gotQuery)
	assert.Equal(t, "req-1", gotReqID)
}

func TestSearchTutorsAcceptsBareArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":"t1"},{"id":"t2"}]`))
	}))
	defer srv.Close()

	tutors, err := NewCatalogClient(srv.URL, "/api", time.Second, nil).SearchTutors(context.Background(), "", "")
	require.NoError(t, err)
	assert.Len(t, tutors, 2)
	assert.Nil(t, tutors[0].User)
}

func TestSearchTutorsFailsOnNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewCatalogClient(srv.URL, "/api", time.Second, nil).SearchTutors(context.Background(), "Maths", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnexpectedStatus))
	assert.Contains(t, err.Error(), "500")
}

func TestListSubjects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/subjects/list", r.URL.Path)
		_, _ = w.Write([]byte(`{"data":["Biology","Chemistry"]}`))
	}))
	defer srv.Close()

	subjects, err := NewCatalogClient(srv.URL, "/api", time.Second, nil).ListSubjects(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Biology", "Chemistry"}, subjects)
}

func TestListSubjectsEmptyEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"meta":{}}`))
	}))
	defer srv.Close()

	subjects, err := NewCatalogClient(srv.URL, "/api", time.Second, nil).ListSubjects(context.Background())
	require.NoError(t, err)
	assert.Empty(t, subjects)
}

func TestDecodePayloadRejectsGarbage(t *testing.T) {
	var out []string
	assert.Error(t, decodePayload([]byte(`{"data": 12}`), &out))
	assert.Error(t, decodePayload([]byte(`not json`), &out))
}

func TestCatalogClientUsesConfiguredPrefix(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer srv.Close()

	c := NewCatalogClient(srv.URL, "v2/catalog/", time.Second, nil)
	_, err := c.SearchTutors(context.Background(), "", "")
	require.NoError(t, err)
	_, err = c.ListSubjects(context.Background())
	require.NoError(t, err)

	bare := NewCatalogClient(srv.URL, "", time.Second, nil)
	_, err = bare.ListSubjects(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"/v2/catalog/tutors/search", "/v2/catalog/subjects/list", "/subjects/list"}, paths)
}
