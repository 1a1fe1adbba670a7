package hr

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClient_ActiveWorkers(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/workers", r.URL.Path)
		require.Equal(t, "true", r.URL.Query().Get("active"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"workers": [
				{"employeeId": "EMP001", "fullName": "Иванов Иван", "department": "Монтажный участок", "active": true},
				{"employeeId": "EMP002", "fullName": "Петров Пётр", "department": "Сварочный участок", "active": true}
			]
		}`))
	}))
	t.Cleanup(server.Close)

	client := NewClient(server.URL)

	workers, err := client.ActiveWorkers(context.Background())
	require.NoError(t, err)
	require.Len(t, workers, 2)
	require.Equal(t, "EMP001", workers[0].EmployeeID)
	require.Equal(t, "Иванов Иван", workers[0].FullName)
	require.True(t, workers[0].Active)
}

func TestClient_ActiveWorkers_RetriesServerErrors(t *testing.T) {
	t.Parallel()

	var attempts int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++

		if attempts < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"workers": []}`))
	}))
	t.Cleanup(server.Close)

	client := NewClient(server.URL)

	workers, err := client.ActiveWorkers(context.Background())
	require.NoError(t, err)
	require.Empty(t, workers)
	require.Equal(t, 3, attempts)
}

func TestClient_ActiveWorkers_BadGateway(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(server.Close)

	client := NewClient(server.URL)

	_, err := client.ActiveWorkers(context.Background())
	require.Error(t, err)
}
