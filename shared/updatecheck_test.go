package shared

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		name string
		v1   string
		v2   string
		want bool
	}{
		{"newer patch", "1.2.1", "1.2.0", true},
		{"older patch", "1.2.0", "1.2.1", false},
		{"equal", "1.2.0", "1.2.0", false},
		{"stable beats rc", "2.0.0", "2.0.0-rc1", true},
		{"rc loses to stable", "2.0.0-rc1", "2.0.0", false},
		{"snapshot beats rc", "2.0.0-SNAPSHOT", "2.0.0-rc1", true},
		{"rc beats beta", "2.0.0-rc1", "2.0.0-beta2", true},
		{"unparsable falls back to string order", "zz", "aa", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CompareVersions(tt.v1, tt.v2); got != tt.want {
				t.Errorf("CompareVersions(%q, %q) = %v, want %v", tt.v1, tt.v2, got, tt.want)
			}
		})
	}
}

func TestIsPrerelease(t *testing.T) {
	tests := []struct {
		version string
		want    bool
	}{
		{"1.2.0", false},
		{"1.2.0-rc1", true},
		{"1.2.0-SNAPSHOT", true},
		{"2.0.0-beta.1", true},
		{"not-semver-but-dashed", true},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			if got := IsPrerelease(tt.version); got != tt.want {
				t.Errorf("IsPrerelease(%q) = %v, want %v", tt.version, got, tt.want)
			}
		})
	}
}

func TestNewerRelease(t *testing.T) {
	releases := []string{"2.1.0", "2.1.0-rc2", "2.0.0", "1.9.3"}

	tests := []struct {
		name    string
		current string
		want    string
	}{
		{"behind stable", "2.0.0", "2.1.0"},
		{"up to date", "2.1.0", ""},
		{"ahead of feed", "3.0.0", ""},
		{"prerelease user offered rc", "2.1.0-rc1", "2.1.0"},
		{"stable user skips rc", "2.0.5", "2.1.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewerRelease(tt.current, releases); got != tt.want {
				t.Errorf("NewerRelease(%q) = %q, want %q", tt.current, got, tt.want)
			}
		})
	}
}

func TestSortVersions(t *testing.T) {
	names := []string{"1.9.3", "2.1.0", "2.1.0-rc2", "2.0.0"}
	SortVersions(names)

	want := []string{"2.1.0", "2.1.0-rc2", "2.0.0", "1.9.3"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("SortVersions = %v, want %v", names, want)
		}
	}
}

func TestFetchReleaseNames(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"name":"1.9.3"},{"name":"2.1.0"},{"name":"2.0.0"}]`))
	}))
	defer srv.Close()

	names, err := FetchReleaseNames(srv.URL)
	if err != nil {
		t.Fatalf("FetchReleaseNames returned error: %v", err)
	}
	if len(names) != 3 || names[0] != "2.1.0" {
		t.Errorf("FetchReleaseNames = %v, want most recent first", names)
	}
}

func TestFetchReleaseNamesEmptyFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	if _, err := FetchReleaseNames(srv.URL); err == nil {
		t.Error("expected an error for an empty release feed")
	}
}
