package version

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"runtime"
	"strings"
	"time"
)

// DefaultFeedURL is the GitHub releases feed checked when the config does
// not name another one
const DefaultFeedURL = "https://api.github.com/repos/quadodev/quado/releases/latest"

// Release describes the newest published version
type Release struct {
	Version     string
	Name        string
	Notes       string
	PublishedAt string
	DownloadURL string
	PageURL     string
}

// CheckResult is the outcome of one update check
type CheckResult struct {
	HasUpdate      bool
	CurrentVersion string
	Latest         *Release
}

// UpdateChecker is a stateless HTTP client against a release feed. It holds
// no connection and touches no local state, so a zero-interest user never
// pays for it.
type UpdateChecker struct {
	FeedURL string
	Timeout time.Duration

	current string
}

// NewUpdateChecker creates a checker against feedURL, falling back to the
// default feed when it is empty
func NewUpdateChecker(feedURL string) *UpdateChecker {
	if feedURL == "" {
		feedURL = DefaultFeedURL
	}
	return &UpdateChecker{
		FeedURL: feedURL,
		Timeout: 10 * time.Second,
		current: Version,
	}
}

// Check fetches the latest release and compares it to the running version
func (uc *UpdateChecker) Check(ctx context.Context) (*CheckResult, error) {
	result := &CheckResult{CurrentVersion: uc.current}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uc.FeedURL, nil)
	if err != nil {
		return result, fmt.Errorf("failed to create update request: %w", err)
	}
	req.Header.Set("User-Agent", fmt.Sprintf("%s/%s (%s)", Name, uc.current, runtime.GOOS))

	client := &http.Client{Timeout: uc.Timeout}
	resp, err := client.Do(req)
	if err != nil {
		return result, fmt.Errorf("failed to fetch update feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return result, fmt.Errorf("update feed returned status %d", resp.StatusCode)
	}

	var feed struct {
		TagName     string `json:"tag_name"`
		Name        string `json:"name"`
		Body        string `json:"body"`
		PublishedAt string `json:"published_at"`
		HTMLURL     string `json:"html_url"`
		Assets      []struct {
			Name               string `json:"name"`
			BrowserDownloadURL string `json:"browser_download_url"`
		} `json:"assets"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return result, fmt.Errorf("failed to parse update feed: %w", err)
	}

	latest := strings.TrimPrefix(feed.TagName, "v")
	if compareVersion(latest, uc.current) <= 0 {
		return result, nil
	}

	result.HasUpdate = true
	release := &Release{
		Version:     latest,
		Name:        feed.Name,
		Notes:       feed.Body,
		PublishedAt: feed.PublishedAt,
		PageURL:     feed.HTMLURL,
	}
	for _, asset := range feed.Assets {
		if matchesPlatform(asset.Name) {
			release.DownloadURL = asset.BrowserDownloadURL
			break
		}
	}
	result.Latest = release

	return result, nil
}

// matchesPlatform reports whether an asset name targets the running OS and
// architecture
func matchesPlatform(name string) bool {
	name = strings.ToLower(name)
	return strings.Contains(name, runtime.GOOS) && strings.Contains(name, runtime.GOARCH)
}

// compareVersion compares two x.y.z version strings. It returns 1 when v1 is
// newer, -1 when older, 0 when equal.
func compareVersion(v1, v2 string) int {
	var major1, minor1, patch1 int
	var major2, minor2, patch2 int

	fmt.Sscanf(v1, "%d.%d.%d", &major1, &minor1, &patch1)
	fmt.Sscanf(v2, "%d.%d.%d", &major2, &minor2, &patch2)

	for _, pair := range [][2]int{{major1, major2}, {minor1, minor2}, {patch1, patch2}} {
		if pair[0] > pair[1] {
			return 1
		}
		if pair[0] < pair[1] {
			return -1
		}
	}
	return 0
}
