package memory

import (
	"context"
	"sync"

	"animal-shelter/internal/domain/adoptions"
	"animal-shelter/internal/domain/animals"
	"animal-shelter/internal/domain/users"
	"animal-shelter/internal/domain/walks"
)

// state es todo lo que guarda el store. Se clona entero para las transacciones:
// para el volumen de dev/tests alcanza.
type state struct {
	users     map[string]users.User
	types     map[string]animals.AnimalType
	animals   map[string]animals.Animal
	walks     map[string]walks.Walk
	adoptions map[string]adoptions.Adoption
}

func newState() *state {
	return &state{
		users:     make(map[string]users.User),
		types:     make(map[string]animals.AnimalType),
		animals:   make(map[string]animals.Animal),
		walks:     make(map[string]walks.Walk),
		adoptions: make(map[string]adoptions.Adoption),
	}
}

func (s *state) clone() *state {
	c := newState()
	for k, v := range s.users {
		c.users[k] = v
	}
	for k, v := range s.types {
		c.types[k] = v
	}
	for k, v := range s.animals {
		c.animals[k] = v
	}
	for k, v := range s.walks {
		c.walks[k] = v
	}
	for k, v := range s.adoptions {
		c.adoptions[k] = v
	}
	return c
}

// db abstrae "store con locks" vs "tx en curso" para que los repos
// sean los mismos en ambos casos.
type db interface {
	read(fn func(st *state) error) error
	write(fn func(st *state) error) error
}

// Store es el entity store in-memory. Seguro para uso concurrente.
type Store struct {
	mu sync.RWMutex
	st *state
}

func NewStore() *Store {
	return &Store{st: newState()}
}

func (s *Store) read(fn func(st *state) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.st)
}

// write aplica fn sobre una copia y la publica solo si no hubo error,
// así una cascada a medias nunca queda visible.
func (s *Store) write(fn func(st *state) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	staged := s.st.clone()
	if err := fn(staged); err != nil {
		return err
	}
	s.st = staged
	return nil
}

func (s *Store) Users() *UsersRepo { return &UsersRepo{db: s} }
func (s *Store) Animals() *AnimalsRepo { return &AnimalsRepo{db: s} }
func (s *Store) Walks() *WalksRepo { return &WalksRepo{db: s} }
func (s *Store) Adoptions() *AdoptionsRepo { return &AdoptionsRepo{db: s} }

// WithinTx serializa fn con el resto de escrituras. fn solo debe usar los
// repos de tx: los del Store bloquearían.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, tx adoptions.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := &tx{st: s.st.clone()}
	if err := fn(ctx, t); err != nil {
		return err
	}
	s.st = t.st
	return nil
}

type tx struct {
	st *state
}

func (t *tx) read(fn func(st *state) error) error { return fn(t.st) }
func (t *tx) write(fn func(st *state) error) error { return fn(t.st) }

func (t *tx) Adoptions() adoptions.Repository { return &AdoptionsRepo{db: t} }
func (t *tx) Animals() adoptions.AnimalStatusWriter { return &AnimalsRepo{db: t} }

var (
	_ users.Repository       = (*UsersRepo)(nil)
	_ animals.Repository     = (*AnimalsRepo)(nil)
	_ animals.TypeRepository = (*AnimalsRepo)(nil)
	_ walks.Repository       = (*WalksRepo)(nil)
	_ adoptions.Repository   = (*AdoptionsRepo)(nil)
	_ adoptions.UnitOfWork   = (*Store)(nil)
)
