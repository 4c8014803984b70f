// Package testutil provides test doubles shared by package tests.
package testutil

import (
	"fmt"
	"sync"
	"time"

	"github.com/runoshun/recur/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// Advance moves the clock forward by d.
func (m *MockClock) Advance(d time.Duration) {
	m.NowTime = m.NowTime.Add(d)
}

// AdvanceDays moves the clock forward by n calendar days.
func (m *MockClock) AdvanceDays(n int) {
	m.NowTime = m.NowTime.AddDate(0, 0, n)
}

// SequenceIDs is a test double for domain.IDGenerator that returns
// Prefix-1, Prefix-2, ... in call order.
type SequenceIDs struct {
	Prefix string
	mu     sync.Mutex
	n      int
}

// NewID returns the next ID in the sequence.
func (s *SequenceIDs) NewID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	prefix := s.Prefix
	if prefix == "" {
		prefix = "task"
	}
	return fmt.Sprintf("%s-%d", prefix, s.n)
}

// LogEntry is one call recorded by MockLogger.
type LogEntry struct {
	Level    string
	TaskID   string
	Category string
	Msg      string
}

// MockLogger is a test double for domain.Logger that records every call.
type MockLogger struct {
	Entries []LogEntry
	mu      sync.Mutex
}

func (m *MockLogger) record(level, taskID, category, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, LogEntry{Level: level, TaskID: taskID, Category: category, Msg: msg})
}

// Info records an info message.
func (m *MockLogger) Info(taskID, category, msg string) { m.record("info", taskID, category, msg) }

// Debug records a debug message.
func (m *MockLogger) Debug(taskID, category, msg string) { m.record("debug", taskID, category, msg) }

// Warn records a warning message.
func (m *MockLogger) Warn(taskID, category, msg string) { m.record("warn", taskID, category, msg) }

// Error records an error message.
func (m *MockLogger) Error(taskID, category, msg string) { m.record("error", taskID, category, msg) }

// Messages returns the recorded messages in order.
func (m *MockLogger) Messages() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	msgs := make([]string, 0, len(m.Entries))
	for _, e := range m.Entries {
		msgs = append(msgs, e.Msg)
	}
	return msgs
}

// MockConfigLoader is a test double for domain.ConfigLoader.
// Fields are ordered to minimize memory padding.
type MockConfigLoader struct {
	Config       *domain.Config
	GlobalConfig *domain.Config
	LoadErr      error
	GlobalErr    error
}

// Load returns the configured config, or the default config when none is set.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Config == nil {
		return domain.NewDefaultConfig(), nil
	}
	return m.Config, nil
}

// LoadGlobal returns the configured global config.
func (m *MockConfigLoader) LoadGlobal() (*domain.Config, error) {
	if m.GlobalErr != nil {
		return nil, m.GlobalErr
	}
	return m.GlobalConfig, nil
}

// MockConfigManager is a test double for domain.ConfigManager.
// Fields are ordered to minimize memory padding.
type MockConfigManager struct {
	InitErr        error
	InitCfg        *domain.Config
	GlobalInfo     domain.ConfigInfo
	ExplicitInfo   domain.ConfigInfo
	InitGlobalCall bool
}

// GetGlobalConfigInfo returns the configured global info.
func (m *MockConfigManager) GetGlobalConfigInfo() domain.ConfigInfo {
	return m.GlobalInfo
}

// GetExplicitConfigInfo returns the configured explicit info.
func (m *MockConfigManager) GetExplicitConfigInfo() domain.ConfigInfo {
	return m.ExplicitInfo
}

// InitGlobalConfig records the call and returns the configured error.
func (m *MockConfigManager) InitGlobalConfig(cfg *domain.Config) error {
	m.InitGlobalCall = true
	m.InitCfg = cfg
	return m.InitErr
}
