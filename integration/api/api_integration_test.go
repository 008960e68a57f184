//go:build integration

package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	app "github.com/Flarenzy/subnetsplit/internal/app"
	"github.com/Flarenzy/subnetsplit/internal/domain"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	postgresPort   = "5432/tcp"
	containerReady = 2 * time.Minute
	httpReady      = 30 * time.Second
)

type splitResponse struct {
	RunID    string   `json:"run_id"`
	Rejected int      `json:"rejected"`
	Count    int      `json:"count"`
	Subnets  []string `json:"subnets"`
}

type runResponse struct {
	ID       string   `json:"id"`
	Inputs   []string `json:"inputs"`
	Rejected int      `json:"rejected"`
	Subnets  []string `json:"subnets"`
}

func startPostgres(t *testing.T) string {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), containerReady)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{postgresPort},
			Env: map[string]string{
				"POSTGRES_USER":     "split",
				"POSTGRES_PASSWORD": "split",
				"POSTGRES_DB":       "split",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(containerReady),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("start postgres: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("terminate postgres: %v", err)
		}
	})

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("postgres host: %v", err)
	}
	port, err := container.MappedPort(ctx, postgresPort)
	if err != nil {
		t.Fatalf("postgres port: %v", err)
	}
	return fmt.Sprintf("postgres://split:split@%s:%s/split?sslmode=disable", host, port.Port())
}

func startAPI(t *testing.T, dsn string) string {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Serve(ctx, app.Config{
			DSN:          dsn,
			TargetBits:   domain.DefaultTargetBits,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		}, slog.New(slog.NewTextHandler(io.Discard, nil)), listener)
	}()
	t.Cleanup(func() {
		cancel()
		if err := <-errCh; err != nil {
			t.Errorf("serve: %v", err)
		}
	})

	baseURL := "http://" + listener.Addr().String()
	deadline := time.Now().Add(httpReady)
	for time.Now().Before(deadline) {
		resp, err := http.Get(baseURL + "/readyz")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return baseURL
			}
		}
		time.Sleep(200 * time.Millisecond)
	}
	t.Fatalf("api did not become ready within %s", httpReady)
	return ""
}

func TestSplitJourney(t *testing.T) {
	baseURL := startAPI(t, startPostgres(t))

	payload, _ := json.Marshal(map[string]any{
		"cidrs": []string{"10.0.10.0/24", "10.0.0.0/23", "10.0.0.5/24", "not-a-cidr"},
	})
	resp, err := http.Post(baseURL+"/api/v1/splits", "application/json", bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("create split: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("expected 201, got %d: %s", resp.StatusCode, body)
	}

	var created splitResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode split: %v", err)
	}
	want := "10.0.0.0/24,10.0.1.0/24,10.0.10.0/24"
	if strings.Join(created.Subnets, ",") != want {
		t.Fatalf("expected %s, got %v", want, created.Subnets)
	}

	getResp, err := http.Get(baseURL + "/api/v1/splits/" + created.RunID)
	if err != nil {
		t.Fatalf("get run: %v", err)
	}
	defer getResp.Body.Close()
	if getResp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 reading run, got %d", getResp.StatusCode)
	}

	var run runResponse
	if err := json.NewDecoder(getResp.Body).Decode(&run); err != nil {
		t.Fatalf("decode run: %v", err)
	}
	if run.ID != created.RunID || run.Rejected != 1 || strings.Join(run.Subnets, ",") != want {
		t.Fatalf("unexpected stored run: %+v", run)
	}

	metricsResp, err := http.Get(baseURL + "/metrics")
	if err != nil {
		t.Fatalf("metrics: %v", err)
	}
	defer metricsResp.Body.Close()
	body, _ := io.ReadAll(metricsResp.Body)
	if !strings.Contains(string(body), `subnetsplit_runs_total{outcome="ok"} 1`) {
		t.Fatalf("expected run counter in metrics output")
	}
}
