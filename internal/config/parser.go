package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	erperrors "github.com/IES-git/integratedentrysystems-erp-sub001/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseManifest loads a batch manifest from disk, assigns ids to unnamed
// documents, validates the result and returns the manifest.
func ParseManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, erperrors.NewParseError(path, 0, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, erperrors.NewParseError(path, extractLine(err), err)
	}

	m.assignIDs()

	if err := ValidateManifest(&m); err != nil {
		return nil, err
	}

	return &m, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
