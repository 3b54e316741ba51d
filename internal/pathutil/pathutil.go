// Package pathutil manages application file paths and locations
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

const envName = "STUDYTIMER_ENV"

// Paths holds all application path configurations.
type Paths struct {
	configDir       string
	configFileName  string
	sessionFileName string
	dbFileName      string
	logFileName     string

	// Computed absolute paths
	configFilePath  string
	sessionFilePath string
	dbFilePath      string
	logFilePath     string
}

// Resolve computes the location of every file used by studytimer. Files live
// under the XDG config and data directories and are suffixed with the value
// of STUDYTIMER_ENV when it is set.
func Resolve() (*Paths, error) {
	p := &Paths{
		configDir:       "studytimer",
		configFileName:  "settings.json",
		sessionFileName: "sessions.json",
		dbFileName:      "state.db",
		logFileName:     "studytimer.log",
	}

	p.applyEnvironmentOverrides()

	if err := p.computePaths(); err != nil {
		return nil, err
	}

	return p, nil
}

// ConfigFilePath is the path to the settings file.
func (p *Paths) ConfigFilePath() string {
	return p.configFilePath
}

// SessionFilePath is the path to the session log.
func (p *Paths) SessionFilePath() string {
	return p.sessionFilePath
}

// DBFilePath is the path to the timer snapshot database.
func (p *Paths) DBFilePath() string {
	return p.dbFilePath
}

// LogFilePath is the path to the application log.
func (p *Paths) LogFilePath() string {
	return p.logFilePath
}

func (p *Paths) applyEnvironmentOverrides() {
	env := strings.TrimSpace(os.Getenv(envName))
	if env != "" {
		p.configFileName = fmt.Sprintf("settings_%s.json", env)
		p.sessionFileName = fmt.Sprintf("sessions_%s.json", env)
		p.dbFileName = fmt.Sprintf("state_%s.db", env)
		p.logFileName = fmt.Sprintf("studytimer_%s.log", env)
	}
}

func (p *Paths) computePaths() error {
	var err error

	relPath := filepath.Join(p.configDir, p.configFileName)

	p.configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		return fmt.Errorf("resolving config path: %w", err)
	}

	dataDir, err := xdg.DataFile(p.configDir)
	if err != nil {
		return fmt.Errorf("resolving data dir: %w", err)
	}

	p.sessionFilePath = filepath.Join(dataDir, p.sessionFileName)

	p.dbFilePath = filepath.Join(dataDir, p.dbFileName)

	p.logFilePath = filepath.Join(dataDir, "log", p.logFileName)

	return nil
}

// StripExtension returns the input file name without its extension.
func StripExtension(fileName string) string {
	return fileName[:len(fileName)-len(filepath.Ext(fileName))]
}
