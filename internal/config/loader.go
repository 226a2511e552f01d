package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/temirov/ia-coding/internal/fsops"
)

const (
	// EmbeddedRootConfigurationReference identifies the embedded fallback configuration source.
	EmbeddedRootConfigurationReference          = "embedded default configuration"
	explicitConfigurationReadErrorFormat        = "read explicit configuration %s: %w"
	loaderInitializationWorkingDirectoryError   = "determine working directory: %w"
	workingDirectoryConfigurationFileName       = "config.yaml"
	homeDirectoryConfigurationRelativeDirectory = ".ia-coding"
	homeDirectoryConfigurationFileName          = "config.yaml"
)

var (
	//go:embed default_root_configuration.yaml
	embeddedRootConfigurationBytes []byte
)

// RootConfigurationSource holds the raw configuration data and its origin.
type RootConfigurationSource struct {
	Reference string
	Content   []byte
}

// EmbeddedRootConfigurationSource returns the configuration compiled into the binary.
func EmbeddedRootConfigurationSource() RootConfigurationSource {
	return RootConfigurationSource{Reference: EmbeddedRootConfigurationReference, Content: embeddedRootConfigurationBytes}
}

// RootConfigurationLoader locates configuration files across supported search paths:
// an explicit path, the working directory, then ~/.ia-coding.
type RootConfigurationLoader struct {
	workingDirectory string
	homeDirectory    string
	filesystem       fsops.FS
}

// NewRootConfigurationLoader constructs a loader reading from filesystem with the provided directories.
func NewRootConfigurationLoader(filesystem fsops.FS, workingDirectory string, homeDirectory string) RootConfigurationLoader {
	return RootConfigurationLoader{
		workingDirectory: workingDirectory,
		homeDirectory:    homeDirectory,
		filesystem:       filesystem,
	}
}

// NewDefaultRootConfigurationLoader builds a loader over the OS filesystem using the process
// working directory and the user's home directory. A missing home directory disables that candidate.
func NewDefaultRootConfigurationLoader() (RootConfigurationLoader, error) {
	workingDirectory, workingDirectoryError := os.Getwd()
	if workingDirectoryError != nil {
		return RootConfigurationLoader{}, fmt.Errorf(loaderInitializationWorkingDirectoryError, workingDirectoryError)
	}
	homeDirectory, homeDirectoryError := os.UserHomeDir()
	if homeDirectoryError != nil {
		homeDirectory = ""
	}
	return NewRootConfigurationLoader(fsops.NewOS(), workingDirectory, homeDirectory), nil
}

type configurationCandidate struct {
	path       string
	isExplicit bool
}

// Load resolves the configuration source using the preferred search order.
// An explicit path must be readable. Searched locations that are missing or unreadable fall through.
func (loader RootConfigurationLoader) Load(explicitPath string) (RootConfigurationSource, error) {
	for _, candidate := range loader.candidates(explicitPath) {
		if candidate.path == "" {
			continue
		}
		content, readError := loader.filesystem.ReadFile(candidate.path)
		if readError != nil {
			if candidate.isExplicit {
				return RootConfigurationSource{}, fmt.Errorf(explicitConfigurationReadErrorFormat, candidate.path, readError)
			}
			continue
		}
		return RootConfigurationSource{Reference: candidate.path, Content: content}, nil
	}
	return EmbeddedRootConfigurationSource(), nil
}

func (loader RootConfigurationLoader) candidates(explicitPath string) []configurationCandidate {
	candidates := []configurationCandidate{{path: explicitPath, isExplicit: explicitPath != ""}}
	if loader.workingDirectory != "" {
		candidates = append(candidates, configurationCandidate{
			path: filepath.Join(loader.workingDirectory, workingDirectoryConfigurationFileName),
		})
	}
	if loader.homeDirectory != "" {
		candidates = append(candidates, configurationCandidate{
			path: filepath.Join(loader.homeDirectory, homeDirectoryConfigurationRelativeDirectory, homeDirectoryConfigurationFileName),
		})
	}
	return candidates
}
