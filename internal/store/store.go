// internal/store/store.go
package store

import (
	"sync"
	"time"

	"github.com/productfindr/backend/internal/models"
)

// Store holds the entire registry-plus-ledgers state behind one exclusive
// lock. Every operation, read or write, runs to completion inside Update or
// View with no other mutation interleaved, and sees a single clock sample
// taken when the operation began.
type Store struct {
	mu  sync.Mutex
	now func() time.Time

	products    map[uint64]*models.Product
	order       []uint64
	nextID      uint64
	betaDetails map[uint64]*models.BetaTestingDetails
	comments    map[uint64][]models.Comment
	reviews     map[uint64][]models.Review
	reviewIndex map[uint64]map[string]int
	users       map[string]*models.User
	emailIndex  map[string]string
	nameIndex   map[string]string
}

func New() *Store {
	return NewWithClock(time.Now)
}

// NewWithClock builds a store that samples time from now. Tests inject a
// controllable clock here.
func NewWithClock(now func() time.Time) *Store {
	return &Store{
		now:         now,
		products:    make(map[uint64]*models.Product),
		nextID:      1,
		betaDetails: make(map[uint64]*models.BetaTestingDetails),
		comments:    make(map[uint64][]models.Comment),
		reviews:     make(map[uint64][]models.Review),
		reviewIndex: make(map[uint64]map[string]int),
		users:       make(map[string]*models.User),
		emailIndex:  make(map[string]string),
		nameIndex:   make(map[string]string),
	}
}

// Tx is the state handle passed to a single serialized operation. Now is
// sampled once per operation and never re-read mid-operation. The maps are
// the live state; services validate before mutating so that a failed
// operation leaves no partial writes behind.
type Tx struct {
	Now         time.Time
	Products    map[uint64]*models.Product
	Beta        map[uint64]*models.BetaTestingDetails
	Comments    map[uint64][]models.Comment
	Reviews     map[uint64][]models.Review
	ReviewIndex map[uint64]map[string]int
	Users       map[string]*models.User
	EmailIndex  map[string]string
	NameIndex   map[string]string

	s *Store
}

// Update runs fn under the store lock.
func (s *Store) Update(fn func(tx *Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.tx())
}

// View is Update by another name: the single-lock execution model serializes
// reads the same way it serializes writes, which is what makes composed reads
// consistent.
func (s *Store) View(fn func(tx *Tx) error) error {
	return s.Update(fn)
}

func (s *Store) tx() *Tx {
	return &Tx{
		Now:         s.now(),
		Products:    s.products,
		Beta:        s.betaDetails,
		Comments:    s.comments,
		Reviews:     s.reviews,
		ReviewIndex: s.reviewIndex,
		Users:       s.users,
		EmailIndex:  s.emailIndex,
		NameIndex:   s.nameIndex,
		s:           s,
	}
}

// InsertProduct assigns the next sequential id, records the product and
// preserves registration order. Ids are never reused, even after deletion.
func (tx *Tx) InsertProduct(p *models.Product) uint64 {
	id := tx.s.nextID
	tx.s.nextID++
	p.ID = id
	tx.s.products[id] = p
	tx.s.order = append(tx.s.order, id)
	return id
}

// RemoveProduct drops the product from the live set. The id counter is left
// alone and engagement logs are retained; they become unreachable through the
// API because every read path re-checks product existence.
func (tx *Tx) RemoveProduct(id uint64) {
	delete(tx.s.products, id)
	for i, pid := range tx.s.order {
		if pid == id {
			tx.s.order = append(tx.s.order[:i], tx.s.order[i+1:]...)
			break
		}
	}
}

// ProductIDs returns the live ids in original registration order.
func (tx *Tx) ProductIDs() []uint64 {
	ids := make([]uint64, len(tx.s.order))
	copy(ids, tx.s.order)
	return ids
}
