package config

import (
	"crypto/sha256"
	"encoding/hex"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/sitecfg/internal/site"
)

// Snapshot computes a stable hash of a resolved configuration. Two documents
// that normalize to the same SiteConfig share a snapshot, so reformatting the
// file or switching between alias keys does not count as a change.
func Snapshot(cfg *site.SiteConfig) string {
	if cfg == nil {
		return ""
	}
	// yaml.v3 emits mapping keys in sorted order, so the encoding is canonical.
	data, err := yaml.Marshal(cfg.ToRaw())
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
