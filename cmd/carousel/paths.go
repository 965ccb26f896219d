package main

import (
	"os"
	"path/filepath"
)

func defaultGalleryPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".carousel", "gallery.json"), nil
}

func defaultResumePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".carousel", "resume.json"), nil
}

// defaultLogPath is where the player writes its log. It cannot log to
// stdout while the alternate screen is active.
func defaultLogPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".carousel", "player.log"), nil
}
