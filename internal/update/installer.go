package update

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/457992195/BGmi/internal/config"
	"github.com/457992195/BGmi/internal/console"
	bgmihttp "github.com/457992195/BGmi/internal/http"
	ioutils "github.com/457992195/BGmi/internal/io"
)

// Installer downloads a frontend release tarball and replaces the
// installed bundle with it.
//
// The replacement is wholesale: the bundle directory is removed,
// recreated and refilled. Readers that start after Install returns
// see either the old bundle or the new one, never a mix. The window
// between the remove and the extract is a known gap: a crash there
// leaves the bundle deleted, and a tarball that turns out to be
// corrupt mid-extract leaves it partially filled. Failures before the
// remove perform no filesystem mutation at all.
type Installer struct {
	cfg    *config.Settings
	client *bgmihttp.Client
	out    *console.Printer

	registryURL string
	packageURL  string
}

// NewInstaller creates an Installer reporting through out.
func NewInstaller(cfg *config.Settings, out *console.Printer) *Installer {
	return &Installer{
		cfg:         cfg,
		client:      bgmihttp.NewClient(),
		out:         out,
		registryURL: frontendRegistryURL,
		packageURL:  frontendPackageURL,
	}
}

// FetchPackage retrieves the registry document for the pinned
// frontend release line.
func (i *Installer) FetchPackage(ctx context.Context) (*FrontendPackage, error) {
	body, err := i.client.Fetch(ctx, i.packageURL)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Version string `json:"version"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: decoding frontend package: %v", bgmihttp.ErrMalformedResponse, err)
	}
	if payload.Error != "" {
		return nil, fmt.Errorf("%w: npm error: %s", bgmihttp.ErrMalformedResponse, payload.Error)
	}

	return &FrontendPackage{Version: payload.Version, Manifest: body}, nil
}

// InstallLatest fetches the current frontend package metadata and
// installs it, regardless of what is on disk. This backs the explicit
// `bgmi install` command.
func (i *Installer) InstallLatest(ctx context.Context) error {
	pkg, err := i.FetchPackage(ctx)
	if err != nil {
		return err
	}
	return i.Install(ctx, pkg)
}

// Install fetches the tarball for pkg and installs it under
// cfg.FrontStaticPath.
//
// npm tarballs contain a single top-level "package" directory whose
// "dist" subdirectory holds the built frontend; every entry under
// dist is moved up to the bundle root, and the registry document is
// written next to them as package.json so later update checks can
// compare versions.
func (i *Installer) Install(ctx context.Context, pkg *FrontendPackage) error {
	i.out.Info("Installing BGmi frontend, version %s", pkg.Version)

	tarball, err := i.fetchTarball(ctx, pkg.Version)
	if err != nil {
		return err
	}

	// Decompress fully before touching the bundle directory so a
	// truncated download cannot leave it empty.
	gz, err := gzip.NewReader(bytes.NewReader(tarball))
	if err != nil {
		return fmt.Errorf("%w: bad gzip stream: %v", bgmihttp.ErrMalformedResponse, err)
	}
	archive, err := io.ReadAll(gz)
	if err != nil {
		return fmt.Errorf("%w: bad gzip stream: %v", bgmihttp.ErrMalformedResponse, err)
	}

	front := i.cfg.FrontStaticPath
	if err := os.RemoveAll(front); err != nil {
		return err
	}
	if err := ioutils.EnsureDir(front); err != nil {
		return err
	}

	if err := extractTar(bytes.NewReader(archive), front); err != nil {
		return fmt.Errorf("%w: bad tar archive: %v", bgmihttp.ErrMalformedResponse, err)
	}

	if err := i.flattenDist(front); err != nil {
		return err
	}

	if err := ioutils.WriteFile(filepath.Join(front, "package.json"), pkg.Manifest); err != nil {
		return err
	}

	i.out.Success("Web admin page installed successfully. version: %s", pkg.Version)
	return nil
}

// fetchTarball resolves the exact tarball URL for version from the
// registry index and downloads it. Nothing on disk is touched here.
func (i *Installer) fetchTarball(ctx context.Context, version string) ([]byte, error) {
	var registry struct {
		Versions map[string]struct {
			Dist struct {
				Tarball string `json:"tarball"`
			} `json:"dist"`
		} `json:"versions"`
	}
	if err := i.client.FetchJSON(ctx, i.registryURL, &registry); err != nil {
		return nil, err
	}

	entry, ok := registry.Versions[version]
	if !ok || entry.Dist.Tarball == "" {
		return nil, fmt.Errorf("%w: registry has no tarball for version %s", bgmihttp.ErrMalformedResponse, version)
	}

	return i.client.Fetch(ctx, entry.Dist.Tarball)
}

// flattenDist moves everything under <front>/package/dist up to the
// bundle root and removes the now-empty wrapper directory.
func (i *Installer) flattenDist(front string) error {
	distDir := filepath.Join(front, "package", "dist")

	entries, err := os.ReadDir(distDir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		src := filepath.Join(distDir, entry.Name())
		dst := filepath.Join(front, entry.Name())

		if entry.IsDir() {
			if err := os.Rename(src, dst); err != nil {
				return err
			}
			continue
		}
		if err := ioutils.MoveFile(src, dst); err != nil {
			return err
		}
	}

	return os.RemoveAll(filepath.Join(front, "package"))
}

// extractTar unpacks a tar stream into dest, refusing entries that
// would escape it.
func extractTar(r io.Reader, dest string) error {
	tr := tar.NewReader(r)

	for {
		header, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		target := filepath.Join(dest, filepath.Clean(header.Name))
		if !strings.HasPrefix(target, filepath.Clean(dest)+string(os.PathSeparator)) {
			return fmt.Errorf("archive entry %q escapes destination", header.Name)
		}

		switch header.Typeflag {
		case tar.TypeDir:
			if err := ioutils.EnsureDir(target); err != nil {
				return err
			}
		case tar.TypeReg:
			if err := ioutils.EnsureDir(filepath.Dir(target)); err != nil {
				return err
			}
			file, err := os.OpenFile(target, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
			if err != nil {
				return err
			}
			if _, err := io.Copy(file, tr); err != nil {
				file.Close()
				return err
			}
			if err := file.Close(); err != nil {
				return err
			}
		default:
			// Symlinks and special files are not expected in npm
			// tarballs; skip them.
		}
	}
}
