// SPDX-License-Identifier: GPL-3.0-or-later
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const DefaultMaxDays = 30

type Config struct {
	Database string

	ImapHost string
	User     string
	Password string

	// CacheFile is the single-slot reference cache mirror. It defaults to a
	// fixed path in the temporary directory so handles survive restarts.
	CacheFile string

	AttachmentDir string
	ExportDir     string

	MaxDays int

	Loglevel *string
}

func ReadConfig(filename string) (*Config, error) {
	config := &Config{
		Database:      "outlookmaster.db",
		CacheFile:     filepath.Join(os.TempDir(), "outlook_email_cache.json"),
		AttachmentDir: "attachments",
		ExportDir:     ".",
		MaxDays:       DefaultMaxDays,
	}

	_, err := toml.DecodeFile(filename, config)
	if err != nil {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}

	err = config.validate()
	if err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	if err := validateNonEmptyStringField(c.Database, "Database name must not be empty, set to a filename for the sqlite database"); err != nil {
		return err
	}

	if err := validateNonEmptyStringField(c.ImapHost, "ImapHost must not be empty, set to host:port of the imap server"); err != nil {
		return err
	}

	if err := validateNonEmptyStringField(c.User, "User must not be empty, set to username on the imap server"); err != nil {
		return err
	}

	if err := validateNonEmptyStringField(c.Password, "Password must not be empty, set to password of User on the imap server"); err != nil {
		return err
	}

	if err := validateNonEmptyStringField(c.CacheFile, "CacheFile must not be empty, set to the path of the reference cache file"); err != nil {
		return err
	}

	if c.MaxDays < 1 {
		return fmt.Errorf("MaxDays must be at least 1, got %d", c.MaxDays)
	}

	return nil
}

func validateNonEmptyStringField(field string, err string) error {
	if len(strings.TrimSpace(field)) == 0 {
		return errors.New(err)
	}

	return nil
}
