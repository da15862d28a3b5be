package update

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/457992195/BGmi/internal/config"
	"github.com/457992195/BGmi/internal/console"
	bgmihttp "github.com/457992195/BGmi/internal/http"
	ioutils "github.com/457992195/BGmi/internal/io"
)

// Remote endpoints. Tests override the unexported fields on
// Reconciler and Installer with httptest servers.
const (
	packageIndexURL     = "https://pypi.org/pypi/bgmi/json"
	frontendRegistryURL = "https://registry.npmjs.com/bgmi-frontend/"
	frontendPackageURL  = frontendRegistryURL + FrontendVersion
)

// checkInterval is how long a marker stays fresh before the next
// startup triggers another remote check.
const checkInterval = 7 * 24 * time.Hour

// ErrCheckedExit tells the CLI layer that an explicitly requested
// update check has finished and the command should exit now, as
// opposed to a check that ran as part of normal startup.
var ErrCheckedExit = errors.New("update check finished")

// FrontendPackage describes one published release of the web
// frontend. Manifest holds the registry document verbatim; the
// installer writes it to the bundle root as package.json.
type FrontendPackage struct {
	Version  string
	Manifest []byte
}

// Reconciler decides when a remote version check is due and runs it.
//
// The decision is driven by a single marker file,
// <state_path>/version, holding the Unix timestamp of the last check.
// Remote failures never propagate: the worst outcome of a check is a
// warning on the console.
type Reconciler struct {
	cfg       *config.Settings
	client    *bgmihttp.Client
	out       *console.Printer
	installer *Installer

	indexURL string
}

// NewReconciler creates a Reconciler reporting through out.
func NewReconciler(cfg *config.Settings, out *console.Printer) *Reconciler {
	return &Reconciler{
		cfg:       cfg,
		client:    bgmihttp.NewClient(),
		out:       out,
		installer: NewInstaller(cfg, out),
		indexURL:  packageIndexURL,
	}
}

// CheckUpdate runs the marker state machine and, when a check is due,
// the remote check itself.
//
// Marker states:
//   - missing: write the current timestamp, then check
//   - older than seven days: rewrite the timestamp, then check
//   - fresh or malformed: do nothing
//
// When force is false the caller asked for the check explicitly
// (`bgmi update`): the check runs once regardless of the marker and
// ErrCheckedExit is returned so the CLI exits afterwards. When force
// is true the reconciler is part of normal startup and returns nil.
func (r *Reconciler) CheckUpdate(ctx context.Context, force bool) error {
	checked := r.reconcileMarker(ctx)

	if !force {
		if !checked {
			r.runCheck(ctx)
		}
		return ErrCheckedExit
	}

	return nil
}

// reconcileMarker reads the marker file, updates it when stale or
// missing, and reports whether a remote check was run.
func (r *Reconciler) reconcileMarker(ctx context.Context) bool {
	marker := filepath.Join(r.cfg.StatePath, "version")

	data, err := os.ReadFile(marker)
	if err != nil {
		r.writeMarker(marker)
		r.runCheck(ctx)
		return true
	}

	stored, err := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		// A malformed marker is left alone rather than treated as
		// stale; it will not re-trigger a check on every startup.
		return false
	}

	if time.Since(time.Unix(stored, 0)) > checkInterval {
		r.writeMarker(marker)
		r.runCheck(ctx)
		return true
	}

	return false
}

func (r *Reconciler) writeMarker(path string) {
	_ = ioutils.EnsureDir(filepath.Dir(path))
	_ = ioutils.WriteFile(path, []byte(strconv.FormatInt(time.Now().Unix(), 10)))
}

// runCheck reduces any failure of the remote check to a warning. The
// command must never crash solely because a registry was unreachable.
func (r *Reconciler) runCheck(ctx context.Context) {
	if err := r.check(ctx); err != nil {
		r.out.Warning("Error occurs when checking update, %v", err)
	}
}

func (r *Reconciler) check(ctx context.Context) error {
	r.out.Info("Checking update ...")

	var index struct {
		Info struct {
			Version string `json:"version"`
		} `json:"info"`
	}
	if err := r.client.FetchJSON(ctx, r.indexURL, &index); err != nil {
		return err
	}

	if err := ioutils.WriteFile(filepath.Join(r.cfg.StatePath, "latest"), []byte(index.Info.Version)); err != nil {
		return err
	}

	remote, err := ParseVersion(index.Info.Version)
	if err != nil {
		return fmt.Errorf("%w: %v", bgmihttp.ErrMalformedResponse, err)
	}

	if remote.Compare(MustParseVersion(CurrentVersion)) > 0 {
		// The tool itself is never auto-updated, only announced.
		r.out.Warning("Please update bgmi to the latest version %s.\nThen execute `bgmi upgrade` to migrate database", index.Info.Version)
	} else {
		r.out.Success("Your BGmi is the latest version.")
	}

	return r.checkFrontend(ctx)
}

// checkFrontend compares the published frontend version against the
// locally installed bundle and installs the newer one. A host without
// an installed bundle only gets a hint; installation stays an
// explicit user action.
func (r *Reconciler) checkFrontend(ctx context.Context) error {
	pkg, err := r.installer.FetchPackage(ctx)
	if err != nil {
		return err
	}

	manifestPath := filepath.Join(r.cfg.FrontStaticPath, "package.json")
	manifest, err := os.ReadFile(manifestPath)
	if err != nil {
		r.out.Info("Use 'bgmi install' to install BGmi frontend / download delegate")
		return nil
	}

	var local struct {
		Version string `json:"version"`
	}
	if err := json.Unmarshal(manifest, &local); err != nil {
		return fmt.Errorf("%w: reading installed frontend manifest: %v", bgmihttp.ErrMalformedResponse, err)
	}

	remoteVersion, err := ParseVersion(pkg.Version)
	if err != nil {
		return fmt.Errorf("%w: %v", bgmihttp.ErrMalformedResponse, err)
	}
	localVersion, err := ParseVersion(local.Version)
	if err != nil {
		return fmt.Errorf("%w: %v", bgmihttp.ErrMalformedResponse, err)
	}

	if remoteVersion.Compare(localVersion) > 0 {
		return r.installer.Install(ctx, pkg)
	}

	return nil
}
