package dataset

import (
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"net/http"
	"os"
	"path/filepath"

	spooky "github.com/dgryski/go-spooky"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
)

// Fetch downloads the edges CSV at url into cacheDir and returns the
// local path. The cache is keyed by a hash of the url, so subsequent
// calls are served from disk without touching the network.
func Fetch(cacheDir, url string) (string, error) {
	if err := os.MkdirAll(cacheDir, 0777); err != nil {
		return "", errors.Wrapf(err, "creating cache dir %s", cacheDir)
	}

	path := filepath.Join(cacheDir, fmt.Sprintf("%016x.csv", spooky.Hash64([]byte(url))))
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	resp, err := http.Get(url)
	if err != nil {
		return "", errors.Wrapf(err, "fetching %s", url)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("fetching %s: status %s", url, resp.Status)
	}

	tmp, err := ioutil.TempFile(cacheDir, "fetch-")
	if err != nil {
		return "", errors.Wrapf(err, "creating temp file")
	}
	n, err := io.Copy(tmp, resp.Body)
	if err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", errors.Wrapf(err, "downloading %s", url)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", errors.Wrapf(err, "closing temp file")
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return "", errors.Wrapf(err, "caching %s", url)
	}

	log.Printf("fetched %s (%s)", url, humanize.Bytes(uint64(n)))
	return path, nil
}
