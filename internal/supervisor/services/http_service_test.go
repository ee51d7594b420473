// CareerPath - Skill-Based Career Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careerpath

package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"
)

var _ suture.Service = (*HTTPServerService)(nil)

// stubServer returns serveErr from Serve at once, or blocks until Shutdown
// when serveErr is nil.
type stubServer struct {
	serveErr    error
	shutdownErr error
	stopped     chan struct{}
}

func newStubServer() *stubServer {
	return &stubServer{stopped: make(chan struct{})}
}

func (s *stubServer) Serve(l net.Listener) error {
	defer l.Close()
	if s.serveErr != nil {
		return s.serveErr
	}
	<-s.stopped
	return http.ErrServerClosed
}

func (s *stubServer) Shutdown(context.Context) error {
	close(s.stopped)
	return s.shutdownErr
}

func newLoopbackService(server HTTPServer) *HTTPServerService {
	return NewHTTPServerService(server, "127.0.0.1:0", time.Second, zerolog.Nop())
}

// waitForAddr polls until the service has bound its listener.
func waitForAddr(t *testing.T, svc *HTTPServerService) net.Addr {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if addr := svc.Addr(); addr != nil {
			return addr
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("service never bound a listener")
	return nil
}

func TestNewHTTPServerService_ShutdownTimeout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		timeout time.Duration
		want    time.Duration
	}{
		{"explicit", 5 * time.Second, 5 * time.Second},
		{"zero uses default", 0, defaultShutdownTimeout},
		{"negative uses default", -time.Second, defaultShutdownTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := NewHTTPServerService(newStubServer(), ":0", tt.timeout, zerolog.Nop())
			if svc.shutdownTimeout != tt.want {
				t.Errorf("shutdownTimeout = %v, want %v", svc.shutdownTimeout, tt.want)
			}
			if svc.Addr() != nil {
				t.Error("Addr() should be nil before Serve")
			}
			if svc.String() != "http-server" {
				t.Errorf("String() = %q", svc.String())
			}
		})
	}
}

func TestHTTPServerService_ServesAndDrains(t *testing.T) {
	t.Parallel()

	server := &http.Server{
		Handler: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, "ok")
		}),
		ReadHeaderTimeout: time.Second,
	}
	svc := newLoopbackService(server)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()

	addr := waitForAddr(t, svc)
	resp, err := http.Get("http://" + addr.String() + "/")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if string(body) != "ok" {
		t.Errorf("body = %q, want ok", body)
	}

	cancel()
	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve() = %v, want context.Canceled", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("Serve did not return after cancellation")
	}
}

func TestHTTPServerService_ListenFailure(t *testing.T) {
	t.Parallel()

	svc := newLoopbackService(newStubServer())
	bindErr := errors.New("bind: address already in use")
	svc.listenFn = func(string, string) (net.Listener, error) { return nil, bindErr }

	err := svc.Serve(context.Background())
	if !errors.Is(err, bindErr) {
		t.Errorf("Serve() = %v, want wrapped bind error", err)
	}
}

func TestHTTPServerService_ServeFailure(t *testing.T) {
	t.Parallel()

	stub := newStubServer()
	stub.serveErr = errors.New("accept: too many open files")
	svc := newLoopbackService(stub)

	err := svc.Serve(context.Background())
	if !errors.Is(err, stub.serveErr) {
		t.Errorf("Serve() = %v, want wrapped serve error", err)
	}
}

func TestHTTPServerService_ShutdownFailure(t *testing.T) {
	t.Parallel()

	stub := newStubServer()
	stub.shutdownErr = errors.New("context deadline exceeded")
	svc := newLoopbackService(stub)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()

	waitForAddr(t, svc)
	cancel()

	select {
	case err := <-errCh:
		if !errors.Is(err, stub.shutdownErr) {
			t.Errorf("Serve() = %v, want shutdown error", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return")
	}
}

func TestHTTPServerService_RestartedBySupervisor(t *testing.T) {
	t.Parallel()

	attempts := 0
	stub := newStubServer()
	svc := newLoopbackService(stub)
	svc.listenFn = func(network, address string) (net.Listener, error) {
		attempts++
		if attempts == 1 {
			return nil, errors.New("bind: address already in use")
		}
		return net.Listen(network, address)
	}

	sup := suture.New("test-api", suture.Spec{
		FailureThreshold: 3,
		FailureBackoff:   10 * time.Millisecond,
		Timeout:          2 * time.Second,
	})
	sup.Add(svc)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := sup.ServeBackground(ctx)

	waitForAddr(t, svc)
	cancel()
	<-errCh

	if attempts < 2 {
		t.Errorf("listen attempts = %d, want a retry after the first failure", attempts)
	}
}
