package cli

import (
	"bytes"
	"context"
	"errors"
	"midpoint-service/internal/adapters/maps"
	"midpoint-service/internal/app"
	"midpoint-service/internal/ports"
	"midpoint-service/internal/services"
	"runtime/debug"
	"strings"
	"testing"
)

func testDeps() Dependencies {
	g := maps.NewMockGeocoder().
		WithAddress("A", maps.Found(40, -74)).
		WithAddress("B", maps.Found(41, -73)).
		WithAddress("Nowhere", ports.GeocodeResponse{Status: ports.StatusZeroResults})

	svc := services.NewMidpointService(
		services.Settings{Configured: true},
		services.Providers{Geocoder: g, Places: maps.NewMockPlacesSearcher(), Matrix: &maps.MockTravelMatrix{}},
	)

	return Dependencies{
		Open: func(context.Context) (*app.App, error) {
			return &app.App{Midpoint: svc}, nil
		},
		Version: "v1.0.0",
	}
}

func run(t *testing.T, deps Dependencies, args ...string) (string, error) {
	t.Helper()

	root := NewRootCommand(deps)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestFindCommandJSON(t *testing.T) {
	out, err := run(t, testDeps(), "find", "--address1", "A", "--address2", "B", "--type", "cafe")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, `"midpoint": {`) || !strings.Contains(out, `"lat": 40.5`) {
		t.Fatalf("unexpected json output:\n%s", out)
	}
	if !strings.Contains(out, `"places": []`) {
		t.Fatalf("expected empty places list:\n%s", out)
	}
}

func TestFindCommandYAML(t *testing.T) {
	out, err := run(t, testDeps(), "find", "--address1", "A", "--address2", "B", "--type", "cafe", "--format", "yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "midpoint:") || !strings.Contains(out, "lat: 40.5") {
		t.Fatalf("unexpected yaml output:\n%s", out)
	}
	if !strings.Contains(out, "address: A") {
		t.Fatalf("expected origin address in yaml output:\n%s", out)
	}
}

func TestFindCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"bad format", []string{"find", "--address1", "A", "--address2", "B", "--type", "cafe", "--format", "xml"}, "unsupported format"},
		{"validation", []string{"find", "--address1", "A"}, "please provide"},
		{"geocode", []string{"find", "--address1", "A", "--address2", "Nowhere", "--type", "cafe"}, `"address_status":"ZERO_RESULTS"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, testDeps(), tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestCacheCommandsRequireDatabase(t *testing.T) {
	for _, name := range []string{"migrate", "prune"} {
		_, err := run(t, testDeps(), name)
		if !errors.Is(err, errNoDatabase) {
			t.Fatalf("%s: expected errNoDatabase, got %v", name, err)
		}
	}
}

func TestOpenFailurePropagates(t *testing.T) {
	boom := errors.New("boom")
	deps := Dependencies{Open: func(context.Context) (*app.App, error) { return nil, boom }}

	_, err := run(t, deps, "migrate")
	if !errors.Is(err, boom) {
		t.Fatalf("expected open error, got %v", err)
	}
}

func TestResolvedVersion(t *testing.T) {
	orig := readBuildInfo
	t.Cleanup(func() {
		readBuildInfo = orig
	})
	readBuildInfo = func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{
			Main:     debug.Module{Version: "(devel)"},
			Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "0123456789abcdef"}},
		}, true
	}

	if got := resolvedVersion("v1.2.3"); got != "v1.2.3" {
		t.Fatalf("expected injected version, got %q", got)
	}
	if got := resolvedVersion(""); got != "0123456789ab" {
		t.Fatalf("expected revision prefix, got %q", got)
	}
}
