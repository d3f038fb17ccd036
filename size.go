package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	kb uint64 = 1024
	mb        = kb * 1024
	gb        = mb * 1024
)

// calculateFolderSize returns the total size in bytes of every regular file
// under root, skipping hidden directories at any depth below root.
// Symbolic links are followed. Entries that cannot be read contribute nothing.
func calculateFolderSize(root string) uint64 {
	return folderSize(root, currentSettings().HiddenPrefix)
}

func folderSize(dir, prefix string) uint64 {
	// ReadDir may return the entries it read before failing; count those.
	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Debug("skipping unreadable directory", "path", dir, "error", err)
	}

	var total uint64
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		// os.Stat follows links, so a linked directory is walked like a real one.
		info, err := os.Stat(path)
		if err != nil {
			// Removed since listing, or a dangling or looping link
			log.Debug("could not stat entry", "path", path, "error", err)
			continue
		}

		if info.IsDir() {
			if isHidden(entry.Name(), prefix) {
				continue
			}
			total += folderSize(path, prefix)
			continue
		}

		if info.Mode().IsRegular() {
			total += uint64(info.Size())
		}
	}
	return total
}

// isHidden reports whether a base name starts with the hidden marker.
func isHidden(name, prefix string) bool {
	if name == "." || name == ".." {
		return false
	}
	return strings.HasPrefix(name, prefix)
}

// formatSize renders a byte count using 1024-based units.
func formatSize(size uint64) string {
	switch {
	case size >= gb:
		return fmt.Sprintf("%.2f GB", float64(size)/float64(gb))
	case size >= mb:
		return fmt.Sprintf("%.2f MB", float64(size)/float64(mb))
	case size >= kb:
		return fmt.Sprintf("%.2f KB", float64(size)/float64(kb))
	default:
		return fmt.Sprintf("%d B", size)
	}
}
