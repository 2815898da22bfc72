package update

import (
	"context"
	"log/slog"
	"runtime"

	"github.com/Masterminds/semver/v3"
	"github.com/bornholm/zerohost/internal/core/model"
	"github.com/bornholm/zerohost/internal/core/port"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/pkg/errors"
)

const DefaultRepository = "Bornholm/zerohost"

// Checker looks up the published releases of the client. It never downloads
// nor replaces the running binary.
type Checker struct {
	updater    *selfupdate.Updater
	repository selfupdate.Repository
}

// LatestRelease implements port.UpdateChecker.
func (c *Checker) LatestRelease(ctx context.Context, current string) (*model.Release, error) {
	currentVersion, err := semver.NewVersion(current)
	if err != nil {
		slog.DebugContext(ctx, "not a released version, skipping update check", slog.String("version", current))
		return nil, nil
	}

	latest, found, err := c.updater.DetectLatest(ctx, c.repository)
	if err != nil {
		return nil, errors.Wrap(err, "could not detect latest version")
	}

	if !found {
		return nil, nil
	}

	latestVersion, err := semver.NewVersion(latest.Version())
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse latest version '%s'", latest.Version())
	}

	if !latestVersion.GreaterThan(currentVersion) {
		return nil, nil
	}

	return &model.Release{
		Version: latest.Version(),
		URL:     latest.URL,
	}, nil
}

func NewChecker(source selfupdate.Source, repository string) (*Checker, error) {
	updater, err := selfupdate.NewUpdater(selfupdate.Config{
		Source:    source,
		Validator: &selfupdate.ChecksumValidator{UniqueFilename: "checksums.txt"},
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &Checker{
		updater:    updater,
		repository: selfupdate.ParseSlug(repository),
	}, nil
}

func NewGitHubChecker(repository string) (*Checker, error) {
	source, err := selfupdate.NewGitHubSource(selfupdate.GitHubConfig{})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	checker, err := NewChecker(source, repository)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return checker, nil
}

var _ port.UpdateChecker = &Checker{}
