package version

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/sirupsen/logrus"
)

const (
	// ReleasesURL is the GitHub API endpoint for the latest release
	ReleasesURL = "https://api.github.com/repos/young1lin/consolegrid/releases/latest"
	// checkInterval is how often to check for updates
	checkInterval = 24 * time.Hour
)

// Release represents a GitHub release.
type Release struct {
	TagName     string    `json:"tag_name"`
	Name        string    `json:"name"`
	PublishedAt time.Time `json:"published_at"`
	HTMLURL     string    `json:"html_url"`
}

// checkState tracks the last update check.
type checkState struct {
	LastCheck     time.Time `json:"last_check"`
	LatestVersion string    `json:"latest_version"`
}

// Checker checks for newer releases, at most once per day.
type Checker struct {
	current    string
	url        string
	stateFile  string
	httpClient *http.Client
	log        logrus.FieldLogger
	now        func() time.Time
}

// NewChecker creates a checker for the given current version. The last
// check is remembered under the user cache directory.
func NewChecker(current string, log logrus.FieldLogger) *Checker {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		cacheDir = os.TempDir()
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &Checker{
		current:   current,
		url:       ReleasesURL,
		stateFile: filepath.Join(cacheDir, "gridview", "update-state.json"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		log: log,
		now: time.Now,
	}
}

// Check returns the latest release when it is newer than the running
// version, or nil when up to date or checked recently. force skips the
// once-a-day limit.
func (c *Checker) Check(ctx context.Context, force bool) (*Release, error) {
	state := c.loadState()
	if !force && c.now().Sub(state.LastCheck) < checkInterval {
		c.log.WithField("last_check", state.LastCheck).Debug("update check skipped")
		return nil, nil
	}

	release, err := c.fetchLatest(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch latest release: %w", err)
	}

	latest := strings.TrimPrefix(release.TagName, "v")
	state.LastCheck = c.now()
	state.LatestVersion = latest
	if err := c.saveState(state); err != nil {
		c.log.WithError(err).Warn("failed to save update state")
	}

	if c.needsUpdate(latest) {
		return release, nil
	}
	return nil, nil
}

// fetchLatest fetches the latest release from GitHub.
func (c *Checker) fetchLatest(ctx context.Context) (*Release, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", "gridview/"+c.current)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GitHub API returned status %d", resp.StatusCode)
	}

	var release Release
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, err
	}
	return &release, nil
}

// needsUpdate returns true if the current version is older than latest.
func (c *Checker) needsUpdate(latest string) bool {
	// Dev builds always report the latest release
	if c.current == "dev" {
		return true
	}

	currentV, err := semver.NewVersion(c.current)
	if err != nil {
		return false
	}
	latestV, err := semver.NewVersion(latest)
	if err != nil {
		return false
	}
	return latestV.GreaterThan(currentV)
}

func (c *Checker) loadState() checkState {
	var state checkState
	data, err := os.ReadFile(c.stateFile)
	if err != nil {
		return state
	}
	// A corrupt state file only means checking again
	_ = json.Unmarshal(data, &state)
	return state
}

func (c *Checker) saveState(state checkState) error {
	if err := os.MkdirAll(filepath.Dir(c.stateFile), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(c.stateFile, data, 0644)
}
