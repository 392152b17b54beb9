package wallet

import (
	"context"
	"time"
)

// Store provides read-only access to a fixed set of wallets.
type Store interface {
	ListAll(ctx context.Context) []Wallet
	FindByAddress(ctx context.Context, address string) (Wallet, bool)
	First(ctx context.Context) (Wallet, bool)
}

type memoryStore struct {
	wallets []Wallet
	index   map[string]int
}

// NewMemoryStore builds an immutable store over a copy of wallets. The insertion
// order of wallets is the order every read observes.
func NewMemoryStore(wallets []Wallet) Store {
	s := &memoryStore{
		wallets: make([]Wallet, len(wallets)),
		index:   make(map[string]int, len(wallets)),
	}
	copy(s.wallets, wallets)
	for i, w := range s.wallets {
		// first occurrence wins
		if _, exists := s.index[w.Address]; !exists {
			s.index[w.Address] = i
		}
	}
	return s
}

// DefaultWallets returns the demonstration dataset, each record dated today.
func DefaultWallets(today time.Time) []Wallet {
	date := DateOf(today)
	return []Wallet{
		{Address: "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa", Balance: "0.001 BTC", Date: date},
		{Address: "3J98t1WpEZ73CNmQviecrnyiWrnqRhWNLy", Balance: "0.005 BTC", Date: date},
		{Address: "bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kygt080", Balance: "0.010 BTC", Date: date},
	}
}

func (s *memoryStore) ListAll(_ context.Context) []Wallet {
	out := make([]Wallet, len(s.wallets))
	copy(out, s.wallets)
	return out
}

func (s *memoryStore) FindByAddress(_ context.Context, address string) (Wallet, bool) {
	i, ok := s.index[address]
	if !ok {
		return Wallet{}, false
	}
	return s.wallets[i], true
}

func (s *memoryStore) First(_ context.Context) (Wallet, bool) {
	if len(s.wallets) == 0 {
		return Wallet{}, false
	}
	return s.wallets[0], true
}
