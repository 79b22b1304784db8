/*
 * Copyright 2025 Daniel C. Brotsky. All rights reserved.
 * All the copyrighted work in this repository is licensed under the
 * GNU Affero General Public License v3, reproduced in the LICENSE file.
 */

package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/whisper-project/donna.server.golang/platform"
)

const (
	recordingSuffix     = ".webm"
	recordingTimeLayout = "20060102_150405"
)

// RecordingInfo describes one captured recording on disk.
type RecordingInfo struct {
	Filename string
	UserId   string
	Size     int64
	ModTime  time.Time
}

// SaveRecording writes the recording bytes verbatim to the recordings
// directory under a name encoding the owner and the capture time at
// second resolution. The file is write-once and never read back by the
// server. A second capture by the same user within the same second
// overwrites the first.
func SaveRecording(userId string, content []byte) (filename, timestamp string, err error) {
	dir := platform.GetConfig().RecordingsDir
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return "", "", fmt.Errorf("can't create recordings directory: %w", err)
	}
	timestamp = time.Now().Format(recordingTimeLayout)
	filename = userId + "_" + timestamp + recordingSuffix
	if err = os.WriteFile(filepath.Join(dir, filename), content, 0o644); err != nil {
		return "", "", fmt.Errorf("can't save recording: %w", err)
	}
	return filename, timestamp, nil
}

// ListRecordings enumerates the recordings directory. A missing directory
// means no recordings have been captured yet.
func ListRecordings() ([]RecordingInfo, error) {
	dir := platform.GetConfig().RecordingsDir
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var infos []RecordingInfo
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), recordingSuffix) {
			continue
		}
		fi, err := entry.Info()
		if err != nil {
			return nil, err
		}
		infos = append(infos, RecordingInfo{
			Filename: entry.Name(),
			UserId:   recordingOwner(entry.Name()),
			Size:     fi.Size(),
			ModTime:  fi.ModTime(),
		})
	}
	return infos, nil
}

// CleanRecordings removes recordings last modified before the cutoff and
// reports how many were removed.
func CleanRecordings(olderThan time.Time) (int, error) {
	infos, err := ListRecordings()
	if err != nil {
		return 0, err
	}
	dir := platform.GetConfig().RecordingsDir
	removed := 0
	for _, info := range infos {
		if info.ModTime.Before(olderThan) {
			if err := os.Remove(filepath.Join(dir, info.Filename)); err != nil {
				return removed, err
			}
			removed++
		}
	}
	return removed, nil
}

// recordingOwner recovers the user id from a recording filename. The
// trailing two underscore-separated fields are the capture date and time;
// everything before them is the id.
func recordingOwner(filename string) string {
	name := strings.TrimSuffix(filename, recordingSuffix)
	parts := strings.Split(name, "_")
	if len(parts) < 3 {
		return name
	}
	return strings.Join(parts[:len(parts)-2], "_")
}
