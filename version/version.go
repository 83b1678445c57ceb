// Package version checks whether a newer release of eztv is published.
package version

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/eztv-cli/eztv/constant"
	"github.com/eztv-cli/eztv/filesystem"
	"github.com/eztv-cli/eztv/network"
	"github.com/eztv-cli/eztv/util"
	"github.com/eztv-cli/eztv/where"
	"github.com/metafates/gache"
)

var versionCacher = gache.New[string](&gache.Options{
	Path:       where.VersionCache(),
	Lifetime:   time.Hour * 24 * 2,
	FileSystem: &filesystem.GacheFs{},
})

// releasesURL points at the latest release of the GitHub releases API.
var releasesURL = constant.ReleasesURL

// Latest returns the newest released version, without the "v" prefix.
// The answer is cached for two days.
func Latest() (string, error) {
	cached, expired, err := versionCacher.Get()
	if err != nil {
		return "", err
	}

	if !expired && cached != "" {
		return cached, nil
	}

	latest, err := fetchLatest(network.NewClient())
	if err != nil {
		return "", err
	}

	_ = versionCacher.Set(latest)
	return latest, nil
}

func fetchLatest(client *http.Client) (string, error) {
	resp, err := client.Get(releasesURL)
	if err != nil {
		return "", err
	}

	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode != http.StatusOK {
		return "", &network.StatusError{URL: releasesURL, Code: resp.StatusCode}
	}

	var release struct {
		TagName string `json:"tag_name"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", fmt.Errorf("decode release: %w", err)
	}

	if release.TagName == "" {
		return "", errors.New("empty tag name")
	}

	return strings.TrimPrefix(release.TagName, "v"), nil
}
