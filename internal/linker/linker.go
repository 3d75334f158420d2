package linker

import (
	"os"
	"path/filepath"

	"github.com/rcargo-labs/rcargo/internal/config"
	"github.com/rcargo-labs/rcargo/internal/platform"
	"github.com/rs/zerolog"
)

// Outcome describes what EnsureTargetLink did.
type Outcome int

const (
	// Disabled means RCARGO_NO_TARGET_LINK switched the link off.
	Disabled Outcome = iota
	// Created means a new link was made where nothing existed.
	Created
	// Unchanged means the link already pointed at the target.
	Unchanged
	// Replaced means a stale link was retargeted.
	Replaced
	// Skipped means a real file or directory occupies the link path.
	Skipped
	// Failed means the link could not be created; a warning was logged.
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Disabled:
		return "disabled"
	case Created:
		return "created"
	case Unchanged:
		return "unchanged"
	case Replaced:
		return "replaced"
	case Skipped:
		return "skipped"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Manager creates target links through a platform linker.
type Manager struct {
	linker platform.Linker
	log    zerolog.Logger
}

// New returns a manager using linker and logging warnings to log.
func New(linker platform.Linker, log zerolog.Logger) *Manager {
	return &Manager{linker: linker, log: log}
}

// LinkPath returns where the convenience link lives for projectPath.
func LinkPath(cfg *config.Config, projectPath string) string {
	return filepath.Join(projectPath, cfg.LinkName)
}

// EnsureTargetLink makes <projectPath>/<cfg.LinkName> a symlink to target.
// Existing files and directories are never touched.
func (m *Manager) EnsureTargetLink(cfg *config.Config, projectPath, target string) Outcome {
	if cfg.NoTargetLink {
		m.log.Debug().Msg("target link disabled")
		return Disabled
	}

	link := LinkPath(cfg, projectPath)
	info, err := os.Lstat(link)
	switch {
	case os.IsNotExist(err):
		return m.create(target, link, Created)

	case err != nil:
		m.log.Warn().Err(err).Msgf("could not inspect %s, trying to create the target link anyway", link)
		return m.create(target, link, Created)

	case info.Mode()&os.ModeSymlink != 0:
		current, readErr := m.linker.Readlink(link)
		if readErr == nil && current == target {
			m.log.Debug().Str("link", link).Msg("target link already up to date")
			return Unchanged
		}
		if removeErr := m.linker.Remove(link); removeErr != nil {
			m.log.Warn().Err(removeErr).Msgf("could not remove stale target link %s", link)
		}
		return m.create(target, link, Replaced)

	case info.Mode().IsRegular() || info.IsDir():
		m.log.Warn().Msgf("%s exists and is not a symlink, leaving it alone", link)
		return Skipped

	default:
		m.log.Warn().Msgf("%s has unexpected file type %s, leaving it alone", link, info.Mode().Type())
		return Skipped
	}
}

func (m *Manager) create(target, link string, success Outcome) Outcome {
	if err := m.linker.SymlinkDir(target, link); err != nil {
		m.log.Warn().Err(err).Msgf("could not create target link %s", link)
		return Failed
	}
	m.log.Info().Msgf("target link %s -> %s", link, target)
	return success
}
