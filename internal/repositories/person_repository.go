package repositories

import (
	"database/sql"
	"errors"
	"sync"

	"github.com/alimgiray/elus/internal/models"
	"github.com/alimgiray/elus/pkg/logger"
)

// ErrPersonNotFound is returned when no person matches the lookup
var ErrPersonNotFound = errors.New("person not found")

// PersonStore is the persistence contract used by the person service
type PersonStore interface {
	List() ([]*models.Person, error)
	GetByEmail(email string) (*models.Person, error)
	EmailExists(email string) bool
	NameExists(name string) bool
	Insert(name, email, mandates string) error
}

// PersonRepository stores persons in the elus table. Every call holds mu
// for its whole duration, so at most one statement runs at a time.
type PersonRepository struct {
	mu sync.Mutex
	db *sql.DB
}

func NewPersonRepository(db *sql.DB) *PersonRepository {
	return &PersonRepository{db: db}
}

// List retrieves all persons in insertion order
func (r *PersonRepository) List() ([]*models.Person, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	query := `SELECT id, name, email, mandates FROM elus ORDER BY id`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	people := []*models.Person{}
	for rows.Next() {
		person := &models.Person{}
		if err := rows.Scan(&person.ID, &person.Name, &person.Email, &person.Mandates); err != nil {
			return nil, err
		}
		people = append(people, person)
	}

	return people, rows.Err()
}

// GetByEmail retrieves a person by exact email
func (r *PersonRepository) GetByEmail(email string) (*models.Person, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	query := `SELECT id, name, email, mandates FROM elus WHERE email = ?`

	person := &models.Person{}
	err := r.db.QueryRow(query, email).Scan(&person.ID, &person.Name, &person.Email, &person.Mandates)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPersonNotFound
	}
	if err != nil {
		return nil, err
	}

	return person, nil
}

// EmailExists reports whether a person has this email. Query failures count as absent.
func (r *PersonRepository) EmailExists(email string) bool {
	return r.exists(`SELECT COUNT(*) FROM elus WHERE email = ?`, "email", email)
}

// NameExists reports whether a person has this name. Query failures count as absent.
func (r *PersonRepository) NameExists(name string) bool {
	return r.exists(`SELECT COUNT(*) FROM elus WHERE name = ?`, "name", name)
}

func (r *PersonRepository) exists(query, field, value string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	var count int
	if err := r.db.QueryRow(query, value).Scan(&count); err != nil {
		logger.WithError(err).WithField("field", field).Warn("Uniqueness check failed, treating as absent")
		return false
	}
	return count > 0
}

// Insert creates a new person; the id is assigned by the database
func (r *PersonRepository) Insert(name, email, mandates string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	query := `INSERT INTO elus (name, email, mandates) VALUES (?, ?, ?)`

	_, err := r.db.Exec(query, name, email, mandates)
	return err
}

// Ping checks the database connection
func (r *PersonRepository) Ping() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.db.Ping()
}
