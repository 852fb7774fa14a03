package main

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/jask/votechain/internal/api"
	"github.com/jask/votechain/internal/config"
	"github.com/jask/votechain/internal/tui"
)

func newServer(t *testing.T, voteStatus int, voteBody string, chainStatus int, chainBody string) *httptest.Server {
	t.Helper()
	r := chi.NewRouter()
	r.Post(api.SubmitVotePath, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(voteStatus)
		_, _ = io.WriteString(w, voteBody)
	})
	r.Get(api.GetChainPath, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(chainStatus)
		_, _ = io.WriteString(w, chainBody)
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("VOTECHAIN_CONFIG", "")
	var stdout, stderr bytes.Buffer
	c := rootCommand()
	c.SetOut(&stdout)
	c.SetErr(&stderr)
	c.SetArgs(args)
	err := c.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestVoteCommandSuccess(t *testing.T) {
	srv := newServer(t, http.StatusCreated, `{"message":"Vote added and block mined successfully"}`, http.StatusOK, `{"chain":[]}`)
	out, _, err := run(t, "--server", srv.URL, "vote", "--voter-id", " v1 ", "--candidate", "Alice")
	if err != nil {
		t.Fatalf("vote: %v", err)
	}
	if strings.TrimSpace(out) != "Vote added and block mined successfully" {
		t.Errorf("stdout = %q", out)
	}
}

func TestVoteCommandRejected(t *testing.T) {
	srv := newServer(t, http.StatusBadRequest, `{"message":"Duplicate vote detected. You have already voted."}`, http.StatusOK, `{"chain":[]}`)
	_, errOut, err := run(t, "--server", srv.URL, "vote", "--voter-id", "v1", "--candidate", "Alice")
	if err == nil {
		t.Fatal("expected error for rejected vote")
	}
	if strings.TrimSpace(errOut) != "Duplicate vote detected. You have already voted." {
		t.Errorf("stderr = %q", errOut)
	}
}

func TestVoteCommandIncomplete(t *testing.T) {
	_, errOut, err := run(t, "--server", "http://127.0.0.1:1", "vote", "--voter-id", "v1")
	if err == nil {
		t.Fatal("expected error for missing candidate")
	}
	if strings.TrimSpace(errOut) != tui.MsgIncompleteVote {
		t.Errorf("stderr = %q", errOut)
	}
}

func TestChainCommand(t *testing.T) {
	srv := newServer(t, http.StatusCreated, `{}`, http.StatusOK, `{"chain":[1,2,3]}`)
	out, _, err := run(t, "--server", srv.URL, "chain")
	if err != nil {
		t.Fatalf("chain: %v", err)
	}
	if out != "[\n    1,\n    2,\n    3\n]\n" {
		t.Errorf("stdout = %q", out)
	}
}

func TestChainCommandFailure(t *testing.T) {
	srv := newServer(t, http.StatusCreated, `{}`, http.StatusServiceUnavailable, `{"message":"Blockchain service unavailable."}`)
	_, errOut, err := run(t, "--server", srv.URL, "chain")
	if err == nil {
		t.Fatal("expected error")
	}
	if strings.TrimSpace(errOut) != tui.MsgChainFailed {
		t.Errorf("stderr = %q", errOut)
	}
}

func TestConfigSaveWritesOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "config.toml")
	out, _, err := run(t, "--config", path, "--server", "http://votes.example:7000", "--debug", "config", "save")
	if err != nil {
		t.Fatalf("config save: %v", err)
	}
	if strings.TrimSpace(out) != path {
		t.Errorf("stdout = %q, want %q", out, path)
	}

	cfg, err := config.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Server.URL != "http://votes.example:7000" {
		t.Errorf("server.url = %q, want flag override", cfg.Server.URL)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log.level = %q, want debug", cfg.Log.Level)
	}
}

func TestConfigSaveDefaultPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("VOTECHAIN_CONFIG", "")
	var stdout bytes.Buffer
	c := rootCommand()
	c.SetOut(&stdout)
	c.SetErr(&bytes.Buffer{})
	c.SetArgs([]string{"--server", "http://saved:5001", "config", "save"})
	if err := c.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("config save: %v", err)
	}
	want := filepath.Join(home, ".config", "votechain", "config.toml")
	if strings.TrimSpace(stdout.String()) != want {
		t.Errorf("stdout = %q, want %q", stdout.String(), want)
	}
	if _, err := os.Stat(want); err != nil {
		t.Errorf("config file not written: %v", err)
	}
}

func TestUnwritableLogFileDoesNotBlockCommands(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("write blocker: %v", err)
	}
	srv := newServer(t, http.StatusCreated, `{}`, http.StatusOK, `{"chain":[]}`)
	out, _, err := run(t, "--server", srv.URL, "--log-file", filepath.Join(blocker, "votechain.log"), "chain")
	if err != nil {
		t.Fatalf("chain: %v", err)
	}
	if strings.TrimSpace(out) != "[]" {
		t.Errorf("stdout = %q, want []", out)
	}
}
