// Package session manages the transient working area for uploaded
// documents: per-session directories under a base work dir, created on
// demand and removed once they outlive their TTL.
package session

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/aleister1102/rtfcompare/internal/common"
	"github.com/aleister1102/rtfcompare/internal/config"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// Manager creates and cleans up session directories
type Manager struct {
	baseDir     string
	dirPrefix   string
	ttl         time.Duration
	fileManager *common.FileManager
	logger      zerolog.Logger
}

// NewManager creates a session manager. An empty WorkDir falls back to the
// OS temp directory.
func NewManager(cfg config.SessionConfig, logger zerolog.Logger) *Manager {
	baseDir := cfg.WorkDir
	if baseDir == "" {
		baseDir = os.TempDir()
	}

	prefix := cfg.DirPrefix
	if prefix == "" {
		prefix = config.DefaultSessionDirPrefix
	}

	ttlHours := cfg.TTLHours
	if ttlHours <= 0 {
		ttlHours = config.DefaultSessionTTLHours
	}

	return &Manager{
		baseDir:     baseDir,
		dirPrefix:   prefix,
		ttl:         time.Duration(ttlHours) * time.Hour,
		fileManager: common.NewFileManager(logger),
		logger:      logger.With().Str("component", "SessionManager").Logger(),
	}
}

// NewSession allocates a fresh session ID and its working directory
func (m *Manager) NewSession() (string, string, error) {
	sessionID := uuid.NewString()
	dir, err := m.SessionDir(sessionID)
	if err != nil {
		return "", "", err
	}
	m.logger.Debug().Str("session_id", sessionID).Str("dir", dir).Msg("Created session directory")
	return sessionID, dir, nil
}

// SessionDir returns (and creates if needed) the directory for a session ID
func (m *Manager) SessionDir(sessionID string) (string, error) {
	if sessionID == "" {
		return "", common.NewValidationError("session_id", sessionID, "session ID cannot be empty")
	}

	dir := filepath.Join(m.baseDir, m.dirPrefix+SanitizeFilename(sessionID))
	if err := m.fileManager.EnsureDirectory(dir, 0o755); err != nil {
		return "", common.WrapError(err, "failed to create session directory")
	}
	return dir, nil
}

// CleanupStale removes session directories whose modification time is older
// than the TTL. Errors on individual directories are logged, not fatal.
func (m *Manager) CleanupStale() error {
	entries, err := os.ReadDir(m.baseDir)
	if err != nil {
		return common.WrapError(err, "failed to read session base directory")
	}

	cutoff := time.Now().Add(-m.ttl)
	removed := 0

	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasPrefix(entry.Name(), m.dirPrefix) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		if info.ModTime().Before(cutoff) {
			path := filepath.Join(m.baseDir, entry.Name())
			if err := os.RemoveAll(path); err != nil {
				m.logger.Warn().Err(err).Str("dir", path).Msg("Failed to remove stale session directory")
				continue
			}
			removed++
		}
	}

	if removed > 0 {
		m.logger.Info().Int("removed", removed).Msg("Cleaned up stale session directories")
	}
	return nil
}

// Remove deletes a session directory and its contents
func (m *Manager) Remove(sessionID string) error {
	dir := filepath.Join(m.baseDir, m.dirPrefix+SanitizeFilename(sessionID))
	if err := os.RemoveAll(dir); err != nil {
		return common.WrapError(err, "failed to remove session directory")
	}
	return nil
}

// SanitizeFilename strips path separators and other unsafe characters from
// an uploaded filename so it is safe to join onto the session directory.
func SanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = unsafeFilenameChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	if name == "" {
		name = "unnamed"
	}
	return name
}
