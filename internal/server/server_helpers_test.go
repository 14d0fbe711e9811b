package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func createGame(t *testing.T, ts *httptest.Server, payload any) string {
	t.Helper()
	resp := doRequest(t, ts, http.MethodPost, "/api/games", payload)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected status %d, got %d", http.StatusCreated, resp.StatusCode)
	}
	body := decodeBody(t, resp)
	return body["game_id"].(string)
}

func addPlayer(t *testing.T, ts *httptest.Server, gameID, name, avatar string) string {
	t.Helper()
	resp := doRequest(t, ts, http.MethodPost, "/api/games/"+gameID+"/players", map[string]string{
		"name":   name,
		"avatar": avatar,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected status %d, got %d", http.StatusCreated, resp.StatusCode)
	}
	body := decodeBody(t, resp)
	player := body["player"].(map[string]any)
	return player["id"].(string)
}

func startGame(t *testing.T, ts *httptest.Server, gameID string) map[string]any {
	t.Helper()
	resp := doRequest(t, ts, http.MethodPost, "/api/games/"+gameID+"/start", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
	return decodeBody(t, resp)
}

func postAction(t *testing.T, ts *httptest.Server, gameID, action string, payload any, wantStatus int) map[string]any {
	t.Helper()
	resp := doRequest(t, ts, http.MethodPost, "/api/games/"+gameID+"/"+action, payload)
	if resp.StatusCode != wantStatus {
		t.Fatalf("%s: expected status %d, got %d", action, wantStatus, resp.StatusCode)
	}
	return decodeBody(t, resp)
}

func fetchSnapshot(t *testing.T, ts *httptest.Server, gameID string) map[string]any {
	t.Helper()
	resp := doRequest(t, ts, http.MethodGet, "/api/games/"+gameID, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
	return decodeBody(t, resp)
}

func doRequest(t *testing.T, ts *httptest.Server, method, path string, payload any) *http.Response {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, ts.URL+path, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	t.Cleanup(func() {
		_ = resp.Body.Close()
	})
	return resp
}

func doRequestNoRedirect(t *testing.T, ts *httptest.Server, method, path string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, ts.URL+path, nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	client := &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	t.Cleanup(func() {
		_ = resp.Body.Close()
	})
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return body
}

func assertString(t *testing.T, value any) string {
	t.Helper()
	s, ok := value.(string)
	if !ok {
		t.Fatalf("expected string, got %T", value)
	}
	return s
}

func playerScore(t *testing.T, snap map[string]any, playerID string) int {
	t.Helper()
	for _, raw := range snap["players"].([]any) {
		player := raw.(map[string]any)
		if player["id"] == playerID {
			return int(player["score"].(float64))
		}
	}
	t.Fatalf("player %s not in snapshot", playerID)
	return 0
}
