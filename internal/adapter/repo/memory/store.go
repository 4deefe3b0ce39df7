package memory

import (
	"sync"

	"xiuverse/internal/domain/cultivation"
)

// Store is the shared backing state for the in-memory repositories. The
// TxManager serializes access through mu, which doubles as the per-store
// transaction boundary in tests.
type Store struct {
	mu       sync.Mutex
	players  map[string]cultivation.PlayerProfile
	events   map[string][]cultivation.CultivationEvent
	equipped map[string][]cultivation.EquipmentBonus
}

func NewStore() *Store {
	return &Store{
		players:  make(map[string]cultivation.PlayerProfile),
		events:   make(map[string][]cultivation.CultivationEvent),
		equipped: make(map[string][]cultivation.EquipmentBonus),
	}
}

func (s *Store) SeedPlayer(profile cultivation.PlayerProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players[profile.PlayerID] = profile
}

func (s *Store) SeedEquipped(playerID string, equipped []cultivation.EquipmentBonus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.equipped[playerID] = equipped
}

// Player returns the stored aggregate outside any transaction, for test
// assertions.
func (s *Store) Player(playerID string) (cultivation.PlayerProfile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.players[playerID]
	return p, ok
}

// Events returns a copy of the stored log for assertions.
func (s *Store) Events(playerID string) []cultivation.CultivationEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]cultivation.CultivationEvent, len(s.events[playerID]))
	copy(out, s.events[playerID])
	return out
}
