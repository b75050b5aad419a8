// Package prefs persists the sort preference between sessions.
package prefs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/mbwilding/steam-achievement-manager/internal/achievement"
	"github.com/mbwilding/steam-achievement-manager/internal/logging/events"
	"gopkg.in/yaml.v3"
)

// Store loads and saves the sort preference. Load never fails: any problem
// yields the default for the affected field.
type Store interface {
	Load() achievement.SortConfig
	Save(achievement.SortConfig) error
}

type document struct {
	SortColumn string `yaml:"sort_column"`
	SortOrder  string `yaml:"sort_order"`
}

func encode(cfg achievement.SortConfig) document {
	return document{SortColumn: cfg.Column.String(), SortOrder: cfg.Order.String()}
}

func decode(doc document) achievement.SortConfig {
	cfg := achievement.DefaultSortConfig()
	if doc.SortColumn != "" {
		if col, err := achievement.ParseColumn(doc.SortColumn); err == nil {
			cfg.Column = col
		} else {
			events.Prefs.LoadFailed(err)
		}
	}
	if doc.SortOrder != "" {
		if order, err := achievement.ParseOrder(doc.SortOrder); err == nil {
			cfg.Order = order
		} else {
			events.Prefs.LoadFailed(err)
		}
	}
	return cfg
}

// FileStore keeps the preference in a YAML file.
type FileStore struct {
	Path string
}

// NewFileStore returns a store backed by path.
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

func (s *FileStore) Load() achievement.SortConfig {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			events.Prefs.LoadFailed(err)
		}
		return achievement.DefaultSortConfig()
	}
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		events.Prefs.LoadFailed(fmt.Errorf("parse %s: %w", s.Path, err))
		return achievement.DefaultSortConfig()
	}
	cfg := decode(doc)
	events.Prefs.Load(cfg.Column.String(), cfg.Order.String())
	return cfg
}

func (s *FileStore) Save(cfg achievement.SortConfig) error {
	data, err := yaml.Marshal(encode(cfg))
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return err
	}
	tmp := s.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.Path)
}

// KV is an opaque keyed string store, such as the ledger settings table.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

const (
	keyColumn = "sort_column"
	keyOrder  = "sort_order"
)

// KVStore keeps the preference as two keys in a KV.
type KVStore struct {
	KV KV
}

// NewKVStore returns a store backed by kv.
func NewKVStore(kv KV) *KVStore {
	return &KVStore{KV: kv}
}

func (s *KVStore) Load() achievement.SortConfig {
	var doc document
	for key, dst := range map[string]*string{keyColumn: &doc.SortColumn, keyOrder: &doc.SortOrder} {
		v, ok, err := s.KV.Get(key)
		if err != nil {
			events.Prefs.LoadFailed(err)
			continue
		}
		if ok {
			*dst = v
		}
	}
	cfg := decode(doc)
	events.Prefs.Load(cfg.Column.String(), cfg.Order.String())
	return cfg
}

func (s *KVStore) Save(cfg achievement.SortConfig) error {
	doc := encode(cfg)
	if err := s.KV.Set(keyColumn, doc.SortColumn); err != nil {
		return err
	}
	return s.KV.Set(keyOrder, doc.SortOrder)
}

// Memory is an in-process store. The zero value starts at the default.
type Memory struct {
	mu    sync.Mutex
	cfg   *achievement.SortConfig
	Saves int
	Err   error
}

func (m *Memory) Load() achievement.SortConfig {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cfg == nil {
		return achievement.DefaultSortConfig()
	}
	return *m.cfg
}

func (m *Memory) Save(cfg achievement.SortConfig) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Saves++
	if m.Err != nil {
		return m.Err
	}
	m.cfg = &cfg
	return nil
}
