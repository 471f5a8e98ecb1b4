package smlgo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/select", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req queryRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "SELECT 1 as test", req.Query)

		_, _ = w.Write([]byte(`{
			"success": true,
			"data": [{"test": 1}],
			"row_count": 1,
			"duration_ms": 2.3
		}`))
	}))
	defer server.Close()

	result := newTestClient(server).ExecuteQuery(context.Background(), "SELECT 1 as test")

	assert.True(t, result.Success)
	assert.Empty(t, result.Error)
	assert.Equal(t, 1, result.RowCount)
	assert.Equal(t, 2.3, result.ServerDuration)

	records := result.Records()
	require.Len(t, records, 1)
	assert.Equal(t, float64(1), records[0]["test"])
}

func TestExecuteQueryServiceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"success": false, "error": "relation \"nope\" does not exist"}`))
	}))
	defer server.Close()

	result := newTestClient(server).ExecuteQuery(context.Background(), "SELECT * FROM nope")

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "does not exist")
	assert.Nil(t, result.Data)
}

func TestExecuteQueryErrorWithoutMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"success": false}`))
	}))
	defer server.Close()

	result := newTestClient(server).ExecuteQuery(context.Background(), "SELECT 1")

	assert.False(t, result.Success)
	assert.Equal(t, "operation failed", result.Error)
}

func TestExecuteQueryUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	result := newTestClient(server).ExecuteQuery(context.Background(), "SELECT 1")

	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Error)
}

func TestExecuteQueryNullData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"success": true, "data": null, "row_count": 0}`))
	}))
	defer server.Close()

	result := newTestClient(server).ExecuteQuery(context.Background(), "SELECT 1 WHERE false")

	assert.True(t, result.Success)
	assert.Nil(t, result.Data)
	assert.Empty(t, result.Records())
}

func TestExecuteCommand(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/command", r.URL.Path)

		var req queryRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "SHOW TABLES", req.Query)

		_, _ = w.Write([]byte(`{"success": true, "message": "command executed"}`))
	}))
	defer server.Close()

	result := newTestClient(server).ExecuteCommand(context.Background(), "SHOW TABLES")

	assert.True(t, result.Success)
	assert.Equal(t, "command executed", result.Message)
}

func TestSearch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)

		var req searchRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "coffee", req.Query)
		assert.Equal(t, 2, req.Limit)

		_, _ = w.Write([]byte(`{
			"success": true,
			"data": [
				{"product_code": "C001", "product_name": "Coffee Beans"},
				{"product_code": "C002", "product_name": "Coffee Filter"}
			],
			"metadata": {"total_found": 9, "duration_ms": 4.1}
		}`))
	}))
	defer server.Close()

	result := newTestClient(server).Search(context.Background(), "coffee", 2)

	assert.True(t, result.Success)
	assert.Len(t, result.Records(), 2)
	// The limit bounds the page, not the server-side match count.
	assert.Equal(t, 9, result.TotalFound)
	assert.Equal(t, 4.1, result.ServerDuration)
}

func TestTablesEnvelopeShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/tables", r.URL.Path)

		_, _ = w.Write([]byte(`{
			"success": true,
			"data": [{"name": "ar_customers"}, {"name": "ic_products"}]
		}`))
	}))
	defer server.Close()

	result := newTestClient(server).Tables(context.Background())

	assert.True(t, result.Success)
	records := result.Records()
	require.Len(t, records, 2)
	assert.Equal(t, "ar_customers", records[0]["name"])
}

func TestTablesBareArrayShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"name": "ar_customers"}, {"name": "ic_products"}]`))
	}))
	defer server.Close()

	result := newTestClient(server).Tables(context.Background())

	assert.True(t, result.Success)
	assert.Len(t, result.Records(), 2)
}

func TestTablesEnvelopeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"success": false, "error": "database unavailable"}`))
	}))
	defer server.Close()

	result := newTestClient(server).Tables(context.Background())

	assert.False(t, result.Success)
	assert.Equal(t, "database unavailable", result.Error)
}
