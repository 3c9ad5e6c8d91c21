/*
 * This code is based on roseduan's original work, which is
 * licensed under the Apache License, Version 2.0. The original code can be
 * found at https://github.com/flower-corp/lotusdb/blob/main/flock/flock.go.
 *
 * Copyright 2022 roseduan
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *    http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

/*
 * Portions of this code are licensed under the MIT License.
 * A copy of the License can be obtained at https://opensource.org/licenses/MIT
 */

package flock

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// FileLockGuard holds a lock of file on a directory.
// The output directory of a dataset is guarded by one, so two generators
// never interleave writes into the same load files.
type FileLockGuard struct {
	// file descriptor on directory.
	fd *os.File
}

// AcquireFileLock acquire the lock on the directory by syscall.Flock.
// Return a FileLockGuard or an error, if any.
func AcquireFileLock(path string, readOnly bool) (*FileLockGuard, error) {
	var flag = os.O_RDWR
	if readOnly {
		flag = os.O_RDONLY
	}
	file, err := os.OpenFile(path, flag|os.O_CREATE, 0644)
	if err != nil {
		return nil, err
	}

	var how = unix.LOCK_EX | unix.LOCK_NB
	if readOnly {
		how = unix.LOCK_SH | unix.LOCK_NB
	}
	if err := unix.Flock(int(file.Fd()), how); err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("flock %s: %w", path, err)
	}
	return &FileLockGuard{fd: file}, nil
}

// SyncDir commits the current contents of the directory to stable storage.
func SyncDir(path string) error {
	fd, err := os.Open(path)
	if err != nil {
		return err
	}
	err = fd.Sync()
	closeErr := fd.Close()
	if err != nil {
		return err
	}
	return closeErr
}

// Release release the file lock.
func (fl *FileLockGuard) Release() error {
	how := unix.LOCK_UN | unix.LOCK_NB
	if err := unix.Flock(int(fl.fd.Fd()), how); err != nil {
		return err
	}
	return fl.fd.Close()
}
