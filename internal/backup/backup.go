package backup

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"listpad/internal/config"

	"github.com/rs/zerolog"
)

// Service copies the catalog file into a backup directory before the
// editor rewrites it, and prunes copies older than the retention window.
type Service struct {
	catalogPath string
	config      config.BackupConfig
	logger      *zerolog.Logger
}

func NewService(catalogPath string, cfg config.BackupConfig, logger *zerolog.Logger) *Service {
	return &Service{
		catalogPath: catalogPath,
		config:      cfg,
		logger:      logger,
	}
}

// PerformBackup writes a timestamped copy of the catalog file and returns
// its path. A missing catalog file is not an error: there is nothing to
// back up yet, and the empty path signals that.
func (s *Service) PerformBackup() (string, error) {
	source, err := os.Open(s.catalogPath)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Info().Str("path", s.catalogPath).Msg("no catalog file yet, skipping backup")
			return "", nil
		}
		return "", fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer source.Close()

	if err := os.MkdirAll(s.config.StoragePath, 0o755); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	backupPath := filepath.Join(s.config.StoragePath, fmt.Sprintf("listings_%s.json", timestamp))

	destination, err := os.Create(backupPath)
	if err != nil {
		return "", fmt.Errorf("failed to create backup file: %w", err)
	}
	defer destination.Close()

	if _, err := io.Copy(destination, source); err != nil {
		return "", fmt.Errorf("failed to copy catalog file: %w", err)
	}

	s.logger.Info().Str("path", backupPath).Msg("Backup completed successfully")
	return backupPath, nil
}

// CleanupOldBackups removes backups older than the retention window.
func (s *Service) CleanupOldBackups() {
	if s.config.RetentionDays <= 0 {
		return
	}

	files, err := os.ReadDir(s.config.StoragePath)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to read backup directory for cleanup")
		return
	}

	cutoff := time.Now().AddDate(0, 0, -s.config.RetentionDays)

	for _, file := range files {
		if file.IsDir() {
			continue
		}

		info, err := file.Info()
		if err != nil {
			continue
		}

		if info.ModTime().Before(cutoff) {
			s.logger.Info().Str("file", file.Name()).Msg("Deleting old backup")
			os.Remove(filepath.Join(s.config.StoragePath, file.Name()))
		}
	}
}
