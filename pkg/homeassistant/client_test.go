package homeassistant_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"ha-ai-bridge/pkg/homeassistant"
)

func TestClient(t *testing.T) {
	var cameraHits atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("/api/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"API running."}`))
	})
	mux.HandleFunc("/api/states", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte(`[
			{"entity_id":"light.living_room","state":"off","attributes":{"friendly_name":"Living Room"}},
			{"entity_id":"cover.blinds","state":"open","attributes":{}}
		]`))
	})
	mux.HandleFunc("/api/services/light/turn_on", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		if body["entity_id"] != "light.living_room" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Write([]byte(`[]`))
	})
	mux.HandleFunc("/api/services/cover/close_cover", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	})
	mux.HandleFunc("/api/camera_proxy/camera.front_door", func(w http.ResponseWriter, r *http.Request) {
		cameraHits.Add(1)
		w.Header().Set("Content-Type", "image/jpeg")
		w.Write([]byte{0xff, 0xd8, 0xff})
	})

	ts := httptest.NewServer(mux)
	defer ts.Close()

	client, err := homeassistant.New(homeassistant.Config{
		URL:            ts.URL + "/",
		Token:          "test-token",
		Timeout:        2 * time.Second,
		CameraCacheTTL: time.Minute,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx := context.Background()

	t.Run("Ping", func(t *testing.T) {
		if err := client.Ping(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("GetStates", func(t *testing.T) {
		states, err := client.GetStates(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(states) != 2 {
			t.Fatalf("expected 2 states, got %d", len(states))
		}
		if states[0].EntityID != "light.living_room" || states[0].Attributes["friendly_name"] != "Living Room" {
			t.Errorf("unexpected first state: %+v", states[0])
		}
	})

	t.Run("CallService", func(t *testing.T) {
		err := client.CallService(ctx, "light", "turn_on", map[string]any{"entity_id": "light.living_room"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("CallService non-2xx", func(t *testing.T) {
		err := client.CallService(ctx, "cover", "close_cover", map[string]any{"entity_id": "cover.blinds"})
		var apiErr *homeassistant.APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected APIError, got %v", err)
		}
		if apiErr.StatusCode != http.StatusInternalServerError || apiErr.Body != "boom" {
			t.Errorf("unexpected APIError: %+v", apiErr)
		}
	})

	t.Run("CallService missing domain", func(t *testing.T) {
		err := client.CallService(ctx, "", "turn_on", nil)
		if !errors.Is(err, homeassistant.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument, got %v", err)
		}
	})

	t.Run("CameraSnapshot is cached", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			img, err := client.CameraSnapshot(ctx, "camera.front_door")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if img.MIMEType != "image/jpeg" || len(img.Data) != 3 {
				t.Errorf("unexpected image: %+v", img)
			}
		}
		if hits := cameraHits.Load(); hits != 1 {
			t.Errorf("expected 1 upstream camera fetch, got %d", hits)
		}
	})

	t.Run("CameraSnapshot rejects non-camera", func(t *testing.T) {
		_, err := client.CameraSnapshot(ctx, "light.living_room")
		if !errors.Is(err, homeassistant.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument, got %v", err)
		}
	})
}

func TestGetStates_Malformed(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not":"a list"}`))
	}))
	defer ts.Close()

	client, _ := homeassistant.New(homeassistant.Config{URL: ts.URL, Token: "t"})
	_, err := client.GetStates(context.Background())
	if !errors.Is(err, homeassistant.ErrDecodeResponse) {
		t.Errorf("expected ErrDecodeResponse, got %v", err)
	}
}

func TestCameraSnapshot_FrameTooLarge(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
		w.Write(bytes.Repeat([]byte{0xff}, homeassistant.MaxCameraFrameSize+1))
	}))
	defer ts.Close()

	client, _ := homeassistant.New(homeassistant.Config{URL: ts.URL, Token: "t"})
	_, err := client.CameraSnapshot(context.Background(), "camera.front_door")
	if !errors.Is(err, homeassistant.ErrFrameTooLarge) {
		t.Errorf("expected ErrFrameTooLarge, got %v", err)
	}
}

func TestNew_Validation(t *testing.T) {
	if _, err := homeassistant.New(homeassistant.Config{Token: "t"}); !errors.Is(err, homeassistant.ErrMissingURL) {
		t.Errorf("expected ErrMissingURL, got %v", err)
	}
	if _, err := homeassistant.New(homeassistant.Config{URL: "http://ha"}); !errors.Is(err, homeassistant.ErrMissingToken) {
		t.Errorf("expected ErrMissingToken, got %v", err)
	}
}
