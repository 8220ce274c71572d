package orchestrator

import (
	"context"
	"fmt"
	"strings"

	"github.com/FloatyJellyfish/mod-updater/internal/core/domain"
	"github.com/FloatyJellyfish/mod-updater/internal/core/ports"
	"go.trai.ch/zerr"
)

// download installs a release matching the task's loader and game version.
// With several candidates the chooser decides unless the task selects the latest.
func (o *Orchestrator) download(ctx context.Context, task domain.Task) (domain.Outcome, error) {
	releases, err := o.listMatching(ctx, task)
	if err != nil {
		return domain.Outcome{}, err
	}

	release := releases[0]
	if len(releases) > 1 && !task.SelectLatest {
		labels := make([]string, len(releases))
		for i, r := range releases {
			labels[i] = releaseLabel(r)
		}
		index, err := o.choose(ctx, task.Item, "version", labels)
		if err != nil {
			return domain.Outcome{}, err
		}
		release = releases[index]
	}

	file, err := o.pickFile(ctx, task, release)
	if err != nil {
		return domain.Outcome{}, err
	}

	return o.install(ctx, task, release, file, domain.StatusInstalled)
}

// update installs the newest matching release unless its primary file is already present.
// An older tracked file with a different name is deleted in both cases, before any fetch.
func (o *Orchestrator) update(ctx context.Context, task domain.Task) (domain.Outcome, error) {
	releases, err := o.listMatching(ctx, task)
	if err != nil {
		return domain.Outcome{}, err
	}

	newest := releases[0]
	file, ok := newest.PrimaryFile()
	if !ok {
		return domain.Outcome{}, noFiles(task.Item, newest)
	}

	present, err := o.present(file.Filename)
	if err != nil {
		return domain.Outcome{}, err
	}

	removed, err := o.removeStale(task, file.Filename)
	if err != nil {
		return domain.Outcome{}, err
	}

	if present {
		return domain.Outcome{
			Item:      task.Item,
			Kind:      task.Kind,
			Status:    domain.StatusUpToDate,
			Version:   newest.Name,
			VersionID: newest.ID,
			Filename:  file.Filename,
			Removed:   removed,
		}, nil
	}

	fresh := task
	fresh.Installed = nil
	outcome, err := o.install(ctx, fresh, newest, file, domain.StatusInstalled)
	if err != nil {
		return domain.Outcome{}, err
	}
	outcome.Removed = removed
	return outcome, nil
}

// removeStale deletes the tracked file when it differs from current and reports its name if it existed.
func (o *Orchestrator) removeStale(task domain.Task, current string) (string, error) {
	old := task.Installed
	if old == nil || old.Filename == "" || old.Filename == current {
		return "", nil
	}
	ok, err := o.removeFile(old.Filename)
	if err != nil || !ok {
		return "", err
	}
	return old.Filename, nil
}

// remove deletes the tracked file. Untracked items and missing files are not errors.
func (o *Orchestrator) remove(task domain.Task) (domain.Outcome, error) {
	outcome := domain.Outcome{Item: task.Item, Kind: task.Kind, Status: domain.StatusRemoved}
	if task.Installed == nil || task.Installed.Filename == "" {
		return outcome, nil
	}

	outcome.Version = task.Installed.Version
	outcome.VersionID = task.Installed.VersionID
	outcome.Filename = task.Installed.Filename

	removed, err := o.removeFile(task.Installed.Filename)
	if err != nil {
		return domain.Outcome{}, err
	}
	if removed {
		outcome.Removed = task.Installed.Filename
	}
	return outcome, nil
}

// rollback reinstalls the release recorded as previous for the item.
func (o *Orchestrator) rollback(ctx context.Context, task domain.Task) (domain.Outcome, error) {
	if task.Installed == nil || task.Installed.Previous == nil {
		return domain.Outcome{}, zerr.With(zerr.Wrap(domain.ErrNothingToRollback, "rollback"), "item", task.Item)
	}
	prev := task.Installed.Previous

	releases, err := o.registry.ListVersions(ctx, task.Item, domain.VersionFilter{})
	if err != nil {
		return domain.Outcome{}, err
	}

	release, ok := findRelease(releases, prev)
	if !ok {
		err := zerr.With(zerr.Wrap(domain.ErrNoVersionsFound, "previous release no longer listed"), "item", task.Item)
		return domain.Outcome{}, zerr.With(err, "version_id", prev.VersionID)
	}

	file, ok := release.FileNamed(prev.Filename)
	if !ok {
		file, ok = release.PrimaryFile()
	}
	if !ok {
		return domain.Outcome{}, noFiles(task.Item, release)
	}

	return o.install(ctx, task, release, file, domain.StatusRolledBack)
}

// listMatching lists releases for the task's loader and game version and rejects an empty result.
func (o *Orchestrator) listMatching(ctx context.Context, task domain.Task) ([]domain.Release, error) {
	releases, err := o.registry.ListVersions(ctx, task.Item, domain.VersionFilter{
		Loader:          task.Loader,
		PlatformVersion: task.PlatformVersion,
	})
	if err != nil {
		return nil, err
	}
	if len(releases) == 0 {
		err := zerr.With(zerr.Wrap(domain.ErrNoVersionsFound, task.Kind.String()), "item", task.Item)
		err = zerr.With(err, "loader", task.Loader.String())
		return nil, zerr.With(err, "game_version", task.PlatformVersion)
	}
	return releases, nil
}

func (o *Orchestrator) pickFile(ctx context.Context, task domain.Task, release domain.Release) (domain.File, error) {
	switch {
	case len(release.Files) == 0:
		return domain.File{}, noFiles(task.Item, release)
	case len(release.Files) == 1:
		return release.Files[0], nil
	case task.SelectLatest:
		file, _ := release.PrimaryFile()
		return file, nil
	}

	labels := make([]string, len(release.Files))
	for i, f := range release.Files {
		labels[i] = f.Filename
	}
	index, err := o.choose(ctx, task.Item, "file", labels)
	if err != nil {
		return domain.File{}, err
	}
	return release.Files[index], nil
}

func (o *Orchestrator) choose(ctx context.Context, item, subject string, options []string) (int, error) {
	index, err := o.chooser.Choose(ctx, ports.Choice{Item: item, Subject: subject, Options: options})
	if err != nil {
		return 0, err
	}
	if index < 0 || index >= len(options) {
		err := zerr.With(zerr.Wrap(domain.ErrInvalidSelection, "out of range"), "item", item)
		return 0, zerr.With(err, "index", index)
	}
	return index, nil
}

// install fetches file, writes it into the directory and deletes the previously tracked file
// when its name differs, so two versions never sit side by side.
func (o *Orchestrator) install(
	ctx context.Context,
	task domain.Task,
	release domain.Release,
	file domain.File,
	status domain.OutcomeStatus,
) (domain.Outcome, error) {
	data, err := o.registry.Download(ctx, file)
	if err != nil {
		return domain.Outcome{}, err
	}

	if err := o.writeFile(file.Filename, data); err != nil {
		return domain.Outcome{}, err
	}

	outcome := domain.Outcome{
		Item:      task.Item,
		Kind:      task.Kind,
		Status:    status,
		Version:   release.Name,
		VersionID: release.ID,
		Filename:  file.Filename,
	}

	outcome.Removed, err = o.removeStale(task, file.Filename)
	if err != nil {
		return domain.Outcome{}, err
	}
	return outcome, nil
}

func findRelease(releases []domain.Release, prev *domain.PreviousEntry) (domain.Release, bool) {
	for _, r := range releases {
		if prev.VersionID != "" && r.ID == prev.VersionID {
			return r, true
		}
	}
	for _, r := range releases {
		if r.Name == prev.Version {
			return r, true
		}
	}
	return domain.Release{}, false
}

func releaseLabel(r domain.Release) string {
	if len(r.GameVersions) == 0 {
		return r.Name
	}
	return fmt.Sprintf("%s (%s)", r.Name, strings.Join(r.GameVersions, ", "))
}

func noFiles(item string, release domain.Release) error {
	err := zerr.With(zerr.Wrap(domain.ErrNoFilesFound, "select file"), "item", item)
	return zerr.With(err, "version", release.Name)
}
