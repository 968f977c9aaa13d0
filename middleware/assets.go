package middleware

import (
	"crypto/md5"
	"encoding/hex"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// StaticAssets are the files under the static root that pages link to
var StaticAssets = []string{
	"css/style.css",
	"images/favicon.svg",
}

var (
	assetVersions   = map[string]string{}
	assetVersionsMu sync.RWMutex
)

// InitAssetVersions hashes each asset under root for cache busting.
// Missing files fall back to version "1".
func InitAssetVersions(root string, files ...string) {
	versions := make(map[string]string, len(files))
	for _, file := range files {
		version := computeFileHash(filepath.Join(root, file))
		if version == "" {
			version = "1"
		}
		versions[file] = version
	}

	assetVersionsMu.Lock()
	assetVersions = versions
	assetVersionsMu.Unlock()

	log.Printf("[INFO] Asset versions initialized: %d files", len(versions))
}

// computeFileHash returns the first 8 characters of the MD5 hash of a file
func computeFileHash(path string) string {
	file, err := os.Open(path)
	if err != nil {
		log.Printf("[WARNING] Failed to open file for hashing %s: %v", path, err)
		return ""
	}
	defer file.Close()

	hash := md5.New()
	if _, err := io.Copy(hash, file); err != nil {
		log.Printf("[WARNING] Failed to hash file %s: %v", path, err)
		return ""
	}

	return hex.EncodeToString(hash.Sum(nil))[:8]
}

// AssetVersion returns the cache-busting version of a static file
func AssetVersion(file string) string {
	assetVersionsMu.RLock()
	defer assetVersionsMu.RUnlock()
	if version, ok := assetVersions[file]; ok {
		return version
	}
	return "1"
}

// AssetURL returns the versioned public URL of a static file
func AssetURL(file string) string {
	return "/static/" + file + "?v=" + AssetVersion(file)
}
