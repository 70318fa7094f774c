// File: watch.go
// Title: Configuration File Watching Implementation
// Description: Watches the configuration file with fsnotify and reloads it
//              on change, notifying registered change and error handlers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of file watching
// - 2026-10-18 v0.2.0: Replaced the polling loop with fsnotify, added
//                      StopWatching synchronisation and error handlers

package config

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	mdwerror "github.com/msto63/strutil/foundation/core/error"
	mdwstringx "github.com/msto63/strutil/foundation/utils/stringx"
)

// Watch starts monitoring the configuration file. The parent directory is
// watched so editors that replace the file by rename are picked up too.
// Calling Watch on a config that is already watching is a no-op.
func (c *Config) Watch() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if mdwstringx.IsBlank(c.filePath) {
		return mdwerror.New("file path required for watching").
			WithCode(mdwerror.CodeValidationFailed).
			WithOperation("config.Watch")
	}
	if c.watcher != nil {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return mdwerror.Wrap(err, "failed to create file watcher").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Watch")
	}

	target := filepath.Clean(c.filePath)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		watcher.Close()
		return mdwerror.Wrap(err, "failed to watch config directory").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Watch").
			WithDetail("filePath", c.filePath)
	}

	c.watcher = watcher
	c.done = make(chan struct{})
	c.wg.Add(1)
	go c.watchLoop(watcher, c.done, target)

	return nil
}

func (c *Config) watchLoop(watcher *fsnotify.Watcher, done <-chan struct{}, target string) {
	defer c.wg.Done()

	for {
		select {
		case <-done:
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if err := c.reload(); err != nil {
				c.notifyError(err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			c.notifyError(mdwerror.Wrap(err, "config watcher error").
				WithCode(mdwerror.CodeConfigError).
				WithOperation("config.Watch"))
		}
	}
}

// reload re-reads the file, reapplies defaults and notifies change handlers.
// Handlers run on the watcher goroutine and must not call StopWatching.
func (c *Config) reload() error {
	c.mu.RLock()
	filePath, format := c.filePath, c.format
	c.mu.RUnlock()

	data, err := readFile(filePath, format)
	if err != nil {
		return err
	}

	c.mu.Lock()
	applyDefaults(data, c.defaults)
	oldConfig := c.snapshot()
	c.data = data
	newConfig := c.snapshot()
	handlers := append([]ChangeHandler(nil), c.handlers...)
	c.mu.Unlock()

	for _, handler := range handlers {
		if handler != nil {
			handler(oldConfig, newConfig)
		}
	}

	return nil
}

func (c *Config) notifyError(err error) {
	c.mu.RLock()
	handlers := append([]ErrorHandler(nil), c.errorHandlers...)
	c.mu.RUnlock()

	for _, handler := range handlers {
		if handler != nil {
			handler(err)
		}
	}
}

// StopWatching stops file monitoring and waits for the watcher goroutine to exit
func (c *Config) StopWatching() error {
	c.mu.Lock()
	watcher, done := c.watcher, c.done
	c.watcher, c.done = nil, nil
	c.mu.Unlock()

	if watcher == nil {
		return nil
	}

	close(done)
	err := watcher.Close()
	c.wg.Wait()
	return err
}

// IsWatching returns whether file monitoring is active
func (c *Config) IsWatching() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.watcher != nil
}
