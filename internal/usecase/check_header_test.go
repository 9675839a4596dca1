package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aalvaropc/fwkit/internal/app/template"
	"github.com/aalvaropc/fwkit/internal/domain"
)

func TestCheckHeader_Missing(t *testing.T) {
	store := newFakeHeaderStore()
	uc := NewCheckHeader(&fakeEnvLoader{env: validEnv()}, store)

	res, err := uc.Execute(context.Background(), ".env", "Secrets.h", false)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if res.Status != HeaderMissing {
		t.Fatalf("expected missing, got %s", res.Status)
	}
	if !strings.Contains(res.Diff, "+#pragma once") {
		t.Fatalf("expected additions in diff, got:\n%s", res.Diff)
	}
	if store.writes != 0 {
		t.Fatalf("expected check to never write")
	}
}

func TestCheckHeader_UpToDate(t *testing.T) {
	store := newFakeHeaderStore()
	content, err := template.RenderHeader(domain.ApplyDefaults(validEnv()))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	store.files["Secrets.h"] = content

	res, err := NewCheckHeader(&fakeEnvLoader{env: validEnv()}, store).Execute(context.Background(), ".env", "Secrets.h", false)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if res.Status != HeaderUpToDate || res.Diff != "" {
		t.Fatalf("expected up to date with empty diff, got %s:\n%s", res.Status, res.Diff)
	}
}

func TestCheckHeader_StaleMasksSecrets(t *testing.T) {
	old := validEnv()
	old.Set("MQTT_HOST", "old.broker")
	old.Set("WIFI_PASSWORD", "old-pass")

	store := newFakeHeaderStore()
	content, err := template.RenderHeader(domain.ApplyDefaults(old))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	store.files["Secrets.h"] = content

	res, err := NewCheckHeader(&fakeEnvLoader{env: validEnv()}, store).Execute(context.Background(), ".env", "Secrets.h", false)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if res.Status != HeaderStale {
		t.Fatalf("expected stale, got %s", res.Status)
	}
	if !strings.Contains(res.Diff, `-static const char *MQTT_HOST = "old.broker";`) ||
		!strings.Contains(res.Diff, `+static const char *MQTT_HOST = "broker.local";`) {
		t.Fatalf("expected host change in diff, got:\n%s", res.Diff)
	}
	if strings.Contains(res.Diff, "old-pass") || strings.Contains(res.Diff, "hunter2") {
		t.Fatalf("expected passwords masked, got:\n%s", res.Diff)
	}
}

func TestCheckHeader_Reveal(t *testing.T) {
	old := validEnv()
	old.Set("WIFI_PASSWORD", "old-pass")

	store := newFakeHeaderStore()
	content, err := template.RenderHeader(domain.ApplyDefaults(old))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	store.files["Secrets.h"] = content

	res, err := NewCheckHeader(&fakeEnvLoader{env: validEnv()}, store).Execute(context.Background(), ".env", "Secrets.h", true)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(res.Diff, "old-pass") || !strings.Contains(res.Diff, "hunter2") {
		t.Fatalf("expected revealed values, got:\n%s", res.Diff)
	}
}

func TestCheckHeader_InvalidEnv(t *testing.T) {
	env := validEnv()
	env.Set("MQTT_PORT", "abc")

	_, err := NewCheckHeader(&fakeEnvLoader{env: env}, newFakeHeaderStore()).Execute(context.Background(), ".env", "Secrets.h", false)
	if !domain.IsKind(err, domain.KindInvalidValue) {
		t.Fatalf("expected KindInvalidValue, got %v", err)
	}
}

func TestMaskHeader(t *testing.T) {
	in := "static const char *WIFI_PASSWORD = \"a\\\"b\";\nstatic const char *WIFI_SSID = \"home\";\n"
	got := maskHeader(in)
	want := "static const char *WIFI_PASSWORD = \"********\";\nstatic const char *WIFI_SSID = \"home\";\n"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestInitProject_PassesSpec(t *testing.T) {
	fi := &fakeInitializer{}
	cfg := domain.DefaultConfig()

	if err := NewInitProject(fi).Execute("/p", cfg, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fi.spec.Root != "/p" || fi.spec.Config != cfg || !fi.force {
		t.Fatalf("unexpected spec %+v force=%v", fi.spec, fi.force)
	}

	fi.err = errors.New("boom")
	if err := NewInitProject(fi).Execute("/p", cfg, false); !errors.Is(err, fi.err) {
		t.Fatalf("expected initializer error, got %v", err)
	}
}
