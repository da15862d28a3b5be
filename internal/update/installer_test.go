package update

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/457992195/BGmi/internal/config"
	"github.com/457992195/BGmi/internal/console"
)

// buildTarball assembles a gzip-compressed tar archive in memory,
// shaped like an npm package tarball.
func buildTarball(t *testing.T, files map[string]string) []byte {
	t.Helper()

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gz)

	for name, content := range files {
		header := &tar.Header{
			Name:     name,
			Mode:     0644,
			Size:     int64(len(content)),
			Typeflag: tar.TypeReg,
		}
		if err := tw.WriteHeader(header); err != nil {
			t.Fatal(err)
		}
		if _, err := tw.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	}

	if err := tw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := gz.Close(); err != nil {
		t.Fatal(err)
	}

	return buf.Bytes()
}

// frontendServer serves a minimal npm registry: a package document, a
// versions index and the tarball itself.
func frontendServer(t *testing.T, version string, tarball []byte) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	var srv *httptest.Server

	mux.HandleFunc("/package", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"version":%q,"name":"bgmi-frontend"}`, version)
	})
	mux.HandleFunc("/registry", func(w http.ResponseWriter, r *http.Request) {
		payload := map[string]any{
			"versions": map[string]any{
				version: map[string]any{
					"dist": map[string]any{"tarball": srv.URL + "/tarball"},
				},
			},
		}
		json.NewEncoder(w).Encode(payload)
	})
	mux.HandleFunc("/tarball", func(w http.ResponseWriter, r *http.Request) {
		w.Write(tarball)
	})

	srv = httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func testInstaller(t *testing.T, srv *httptest.Server) (*Installer, *config.Settings) {
	t.Helper()

	cfg := config.DefaultSettings()
	cfg.FrontStaticPath = filepath.Join(t.TempDir(), "front_static")
	cfg.StatePath = t.TempDir()

	installer := NewInstaller(cfg, console.NewPrinter(&bytes.Buffer{}))
	installer.registryURL = srv.URL + "/registry"
	installer.packageURL = srv.URL + "/package"

	return installer, cfg
}

func TestInstallerInstall(t *testing.T) {
	tarball := buildTarball(t, map[string]string{
		"package/dist/index.html":    "<html>frontend</html>",
		"package/dist/static/app.js": "console.log('hi')",
		"package/README.md":          "not part of dist",
	})
	srv := frontendServer(t, "1.2.4", tarball)
	installer, cfg := testInstaller(t, srv)

	// Seed a stale bundle that must disappear wholesale.
	if err := os.MkdirAll(cfg.FrontStaticPath, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(cfg.FrontStaticPath, "stale.txt"), []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := installer.InstallLatest(context.Background()); err != nil {
		t.Fatalf("InstallLatest returned error: %v", err)
	}

	// dist contents are flattened to the bundle root.
	wantFiles := map[string]string{
		"index.html":    "<html>frontend</html>",
		"static/app.js": "console.log('hi')",
	}
	for name, want := range wantFiles {
		data, err := os.ReadFile(filepath.Join(cfg.FrontStaticPath, name))
		if err != nil {
			t.Errorf("expected %s at bundle root: %v", name, err)
			continue
		}
		if string(data) != want {
			t.Errorf("%s = %q, want %q", name, data, want)
		}
	}

	// The wrapper directory and the previous bundle are gone.
	if _, err := os.Stat(filepath.Join(cfg.FrontStaticPath, "package")); !os.IsNotExist(err) {
		t.Error("package/ wrapper directory should have been removed")
	}
	if _, err := os.Stat(filepath.Join(cfg.FrontStaticPath, "stale.txt")); !os.IsNotExist(err) {
		t.Error("previous bundle contents should have been removed")
	}

	// The manifest records the installed version.
	manifest, err := os.ReadFile(filepath.Join(cfg.FrontStaticPath, "package.json"))
	if err != nil {
		t.Fatalf("expected package.json manifest: %v", err)
	}
	var m struct {
		Version string `json:"version"`
	}
	if err := json.Unmarshal(manifest, &m); err != nil {
		t.Fatalf("manifest is not JSON: %v", err)
	}
	if m.Version != "1.2.4" {
		t.Errorf("manifest version = %q, want %q", m.Version, "1.2.4")
	}
}

func TestInstallerFailsBeforeMutation(t *testing.T) {
	// The registry answers but the tarball endpoint does not; the
	// bundle directory must be left untouched.
	mux := http.NewServeMux()
	var srv *httptest.Server
	mux.HandleFunc("/package", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"version":"1.2.4"}`)
	})
	mux.HandleFunc("/registry", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"versions":{"1.2.4":{"dist":{"tarball":%q}}}}`, srv.URL+"/tarball")
	})
	mux.HandleFunc("/tarball", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusBadGateway)
	})
	srv = httptest.NewServer(mux)
	defer srv.Close()

	installer, cfg := testInstaller(t, srv)

	if err := os.MkdirAll(cfg.FrontStaticPath, 0755); err != nil {
		t.Fatal(err)
	}
	sentinel := filepath.Join(cfg.FrontStaticPath, "installed.txt")
	if err := os.WriteFile(sentinel, []byte("keep"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := installer.InstallLatest(context.Background()); err == nil {
		t.Fatal("InstallLatest should fail when the tarball cannot be fetched")
	}

	if _, err := os.Stat(sentinel); err != nil {
		t.Errorf("bundle must be untouched after a pre-extraction failure: %v", err)
	}
}

func TestInstallerRejectsBadGzip(t *testing.T) {
	srv := frontendServer(t, "1.2.4", []byte("definitely not gzip"))
	installer, cfg := testInstaller(t, srv)

	if err := os.MkdirAll(cfg.FrontStaticPath, 0755); err != nil {
		t.Fatal(err)
	}
	sentinel := filepath.Join(cfg.FrontStaticPath, "installed.txt")
	if err := os.WriteFile(sentinel, []byte("keep"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := installer.InstallLatest(context.Background()); err == nil {
		t.Fatal("InstallLatest should fail on a corrupt gzip stream")
	}

	// Decompression happens before the bundle is removed.
	if _, err := os.Stat(sentinel); err != nil {
		t.Errorf("bundle must be untouched after a decompression failure: %v", err)
	}
}

func TestExtractTarRejectsEscape(t *testing.T) {
	var buf bytes.Buffer
	tw := tar.NewWriter(&buf)
	header := &tar.Header{Name: "../escape.txt", Mode: 0644, Size: 4, Typeflag: tar.TypeReg}
	if err := tw.WriteHeader(header); err != nil {
		t.Fatal(err)
	}
	tw.Write([]byte("evil"))
	tw.Close()

	if err := extractTar(&buf, t.TempDir()); err == nil {
		t.Error("extractTar should reject entries escaping the destination")
	}
}
