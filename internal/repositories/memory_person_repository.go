package repositories

import (
	"sync"

	"github.com/alimgiray/elus/internal/models"
)

// MemoryPersonRepository keeps persons in a slice for the lifetime of the process
type MemoryPersonRepository struct {
	mu     sync.Mutex
	items  []models.Person
	nextID int64
}

func NewMemoryPersonRepository() *MemoryPersonRepository {
	return &MemoryPersonRepository{nextID: 1}
}

// List returns copies of all persons in insertion order
func (r *MemoryPersonRepository) List() ([]*models.Person, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	people := make([]*models.Person, 0, len(r.items))
	for i := range r.items {
		person := r.items[i]
		people = append(people, &person)
	}
	return people, nil
}

// GetByEmail looks up a person by exact email
func (r *MemoryPersonRepository) GetByEmail(email string) (*models.Person, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range r.items {
		if item.Email == email {
			person := item
			return &person, nil
		}
	}
	return nil, ErrPersonNotFound
}

func (r *MemoryPersonRepository) EmailExists(email string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range r.items {
		if item.Email == email {
			return true
		}
	}
	return false
}

func (r *MemoryPersonRepository) NameExists(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range r.items {
		if item.Name == name {
			return true
		}
	}
	return false
}

// Insert appends a person with the next id. Ids are never reused.
func (r *MemoryPersonRepository) Insert(name, email, mandates string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, models.Person{
		ID:       r.nextID,
		Name:     name,
		Email:    email,
		Mandates: mandates,
	})
	r.nextID++
	return nil
}

// Ping always succeeds
func (r *MemoryPersonRepository) Ping() error {
	return nil
}
