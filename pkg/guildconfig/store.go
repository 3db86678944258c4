package guildconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/MythicStudios/MythicBotGo/pkg/logger"
	"github.com/goccy/go-json"
)

// Store provides serialized access to one JSON document per guild.
//
// Each Store owns its own lock registry, so independent instances (for
// example under test) never contend with each other. For a given guild ID,
// Get and Save are mutually exclusive; different guilds proceed in parallel.
type Store struct {
	dir string

	locksMu sync.Mutex
	locks   map[string]*sync.Mutex
}

var (
	store     *Store
	storeOnce sync.Once
)

// Init initializes the global store backed by the given directory.
func Init(dir string) (*Store, error) {
	var err error
	storeOnce.Do(func() {
		store, err = NewStore(dir)
	})
	return store, err
}

// Get returns the global store instance.
func Get() *Store {
	return store
}

// NewStore creates a Store backed by dir, creating the directory if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creando directorio de configuración %s: %w", dir, err)
	}
	return &Store{
		dir:   dir,
		locks: make(map[string]*sync.Mutex),
	}, nil
}

// Dir returns the directory holding the guild documents.
func (s *Store) Dir() string {
	return s.dir
}

// guildLock returns the exclusion primitive for a guild, creating it on
// first access. The registry itself is guarded only for the create-if-absent
// instant.
func (s *Store) guildLock(guildID string) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()

	mu, ok := s.locks[guildID]
	if !ok {
		mu = &sync.Mutex{}
		s.locks[guildID] = mu
	}
	return mu
}

func (s *Store) path(guildID string) string {
	return filepath.Join(s.dir, guildID+".json")
}

// Get loads the configuration for a guild. A missing or malformed document
// degrades to DefaultConfig; a corrupt file must never take the bot down.
func (s *Store) Get(guildID string) *GuildConfig {
	mu := s.guildLock(guildID)
	mu.Lock()
	defer mu.Unlock()

	return s.readLocked(guildID)
}

// Save serializes the configuration and replaces the guild's document.
// Errors are returned for logging but callers treat the write as
// best-effort; the in-memory mutation already happened.
func (s *Store) Save(guildID string, cfg *GuildConfig) error {
	mu := s.guildLock(guildID)
	mu.Lock()
	defer mu.Unlock()

	return s.writeLocked(guildID, cfg)
}

// Update runs fn over the guild's current configuration and persists the
// result, all under the guild's lock so concurrent read-modify-write
// sequences are fully serialized and no mutation is lost.
func (s *Store) Update(guildID string, fn func(cfg *GuildConfig)) (*GuildConfig, error) {
	mu := s.guildLock(guildID)
	mu.Lock()
	defer mu.Unlock()

	cfg := s.readLocked(guildID)
	fn(cfg)
	return cfg, s.writeLocked(guildID, cfg)
}

func (s *Store) readLocked(guildID string) *GuildConfig {
	data, err := os.ReadFile(s.path(guildID))
	if err != nil {
		return DefaultConfig()
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		logger.Warn(fmt.Sprintf("Configuración corrupta para el servidor %s, usando valores por defecto: %v", guildID, err), "GuildConfig")
		return DefaultConfig()
	}
	if cfg.Warnings == nil {
		cfg.Warnings = make(map[string][]Warning)
	}
	return cfg
}

// writeLocked replaces the guild's document via temp file plus rename so a
// concurrent reader never observes a partial document.
func (s *Store) writeLocked(guildID string, cfg *GuildConfig) error {
	data, err := json.MarshalIndent(cfg, "", "    ")
	if err != nil {
		return fmt.Errorf("serializando configuración del servidor %s: %w", guildID, err)
	}

	tmp, err := os.CreateTemp(s.dir, guildID+"-*.tmp")
	if err != nil {
		return fmt.Errorf("creando archivo temporal para %s: %w", guildID, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("escribiendo configuración de %s: %w", guildID, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("cerrando archivo temporal de %s: %w", guildID, err)
	}

	if err := os.Rename(tmpName, s.path(guildID)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("reemplazando configuración de %s: %w", guildID, err)
	}
	return nil
}
