package shared

import (
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/Masterminds/semver/v3"
)

// IsPrerelease returns true if the version string contains a prerelease tag.
// Uses semver parsing to properly detect prereleases.
func IsPrerelease(version string) bool {
	v, err := semver.NewVersion(version)
	if err != nil {
		// Fall back to string check if semver parsing fails
		return strings.Contains(version, "-")
	}
	return v.Prerelease() != ""
}

// normalizeForComparison converts SNAPSHOT to lowercase so it sorts after
// rc/alpha/beta. Semver sorts prereleases alphabetically, so
// "snapshot" > "rc" > "beta" > "alpha". Only used for comparison; actual
// version strings remain unchanged.
func normalizeForComparison(version string) string {
	return strings.Replace(version, "SNAPSHOT", "snapshot", 1)
}

// NewVersionForComparison creates a semver.Version with SNAPSHOT normalized
// for proper ordering.
func NewVersionForComparison(version string) (*semver.Version, error) {
	return semver.NewVersion(normalizeForComparison(version))
}

// CompareVersions compares two version strings and returns true if v1 > v2.
// SNAPSHOT prereleases are considered more recent than other prereleases
// (rc, alpha, beta) because SNAPSHOT is normalized to lowercase for
// comparison.
func CompareVersions(v1Str, v2Str string) bool {
	v1, err1 := NewVersionForComparison(v1Str)
	v2, err2 := NewVersionForComparison(v2Str)
	if err1 != nil || err2 != nil {
		return v1Str > v2Str
	}
	return v1.GreaterThan(v2)
}

// SortVersions orders version strings most recent first, falling back to
// string order for names semver cannot parse.
func SortVersions(names []string) {
	sort.Slice(names, func(i, j int) bool {
		return CompareVersions(names[i], names[j])
	})
}

// NewerRelease returns the most recent release that is newer than current.
// Prereleases are only offered when the current version is itself a
// prerelease. Empty result means current is up to date.
func NewerRelease(current string, releases []string) string {
	for _, release := range releases {
		if !CompareVersions(release, current) {
			continue
		}
		if IsPrerelease(release) && !IsPrerelease(current) {
			continue
		}
		return release
	}
	return ""
}

type release struct {
	Name string `json:"name"`
}

// FetchReleaseNames downloads the release feed (GitHub releases API shape)
// and returns the release names, most recent first.
func FetchReleaseNames(url string) ([]string, error) {
	client := http.Client{Timeout: 10 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("network error: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var releases []release
	if err := json.Unmarshal(body, &releases); err != nil {
		return nil, fmt.Errorf("invalid response format: %w", err)
	}
	if len(releases) == 0 {
		return nil, fmt.Errorf("no releases found")
	}

	names := make([]string, 0, len(releases))
	for _, r := range releases {
		names = append(names, r.Name)
	}
	SortVersions(names)
	return names, nil
}

// CreateUpdateNotification creates a notification message box with a warning
// icon, message text, and an optional release notes link.
func CreateUpdateNotification(releaseVersion string, releaseNotesLink *widget.Hyperlink) fyne.CanvasObject {
	messageLabel := widget.NewLabel(fmt.Sprintf("A more recent version %s is available.", releaseVersion))
	messageLabel.TextStyle = fyne.TextStyle{Bold: true}
	warningIcon := canvas.NewText("⚠️", color.Black)
	warningIcon.TextSize = 20
	if releaseNotesLink == nil {
		return container.NewHBox(warningIcon, messageLabel)
	}
	return container.NewHBox(warningIcon, messageLabel, releaseNotesLink)
}
