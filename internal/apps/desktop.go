package apps

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/xdg"
	"github.com/rkoesters/xdg/desktop"
)

var errSkipEntry = errors.New("skip desktop entry")

// DefaultDirs returns the freedesktop application directories in precedence order
func DefaultDirs() []string {
	dirs := make([]string, 0, len(xdg.DataDirs)+1)
	for _, dir := range append([]string{xdg.DataHome}, xdg.DataDirs...) {
		dirs = append(dirs, filepath.Join(dir, "applications"))
	}
	return dirs
}

// List scans dirs for .desktop files and returns the launchable applications.
// Earlier directories shadow later ones for the same desktop file ID.
// Parse failures are collected and returned alongside whatever was parsed.
func List(dirs []string) ([]Application, error) {
	seenIDs := make(map[string]struct{})
	apps := make([]Application, 0, 128) //nolint:mnd // rough estimate
	var errs []error

	for _, dir := range dirs {
		paths, err := desktopFiles(dir)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			errs = append(errs, fmt.Errorf("read dir %s: %w", dir, err))
			continue
		}

		for _, path := range paths {
			id := desktopID(dir, path)
			if _, ok := seenIDs[id]; ok {
				continue
			}
			seenIDs[id] = struct{}{}

			app, err := ParseDesktopFile(path)
			if err != nil {
				if errors.Is(err, errSkipEntry) {
					continue
				}
				errs = append(errs, fmt.Errorf("parse %s: %w", path, err))
				continue
			}
			apps = append(apps, app)
		}
	}

	sort.SliceStable(apps, func(i, j int) bool {
		nameI := strings.ToLower(apps[i].Name)
		nameJ := strings.ToLower(apps[j].Name)
		if nameI == nameJ {
			return apps[i].Exec < apps[j].Exec
		}
		return nameI < nameJ
	})

	return apps, errors.Join(errs...)
}

// desktopFiles returns every .desktop file below dir, sorted by path
func desktopFiles(dir string) ([]string, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, err
	}

	var paths []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			// Unreadable subdirectories are skipped, the root was checked above
			if d != nil && d.IsDir() && path != dir {
				return filepath.SkipDir
			}
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".desktop") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(paths)
	return paths, nil
}

// desktopID derives the desktop file ID: the path relative to dir with "/" replaced by "-"
func desktopID(dir, path string) string {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return path
	}
	return strings.ReplaceAll(filepath.ToSlash(rel), "/", "-")
}

// ParseDesktopFile reads the [Desktop Entry] group of a .desktop file.
// Name and Comment are resolved for the current locale.
// Non-application, hidden, and NoDisplay entries are reported as errSkipEntry.
func ParseDesktopFile(path string) (Application, error) {
	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return Application{}, err
	}
	defer func() { _ = file.Close() }()

	entry, err := desktop.New(file)
	if err != nil {
		return Application{}, err
	}

	if entry.Type != desktop.Application || entry.Hidden || entry.NoDisplay {
		return Application{}, errSkipEntry
	}
	if entry.Name == "" || entry.Exec == "" {
		return Application{}, errSkipEntry
	}

	description := entry.Comment
	if description == "" {
		description = entry.GenericName
	}

	return Application{
		Name:        entry.Name,
		Description: description,
		Exec:        entry.Exec,
		Terminal:    entry.Terminal,
		Icon:        entry.Icon,
		Path:        path,
	}, nil
}
