package services

import (
	"errors"
	"fmt"

	"github.com/alimgiray/elus/internal/models"
	"github.com/alimgiray/elus/internal/repositories"
	"github.com/alimgiray/elus/pkg/logger"
	"github.com/alimgiray/elus/pkg/metrics"
	"github.com/sirupsen/logrus"
)

var (
	// ErrConflict is wrapped by every uniqueness violation
	ErrConflict   = errors.New("conflict")
	ErrEmailTaken = fmt.Errorf("email already exists: %w", ErrConflict)
	ErrNameTaken  = fmt.Errorf("name already exists: %w", ErrConflict)
)

type PersonService struct {
	store repositories.PersonStore
}

func NewPersonService(store repositories.PersonStore) *PersonService {
	return &PersonService{
		store: store,
	}
}

// ListPersons retrieves all persons in store order
func (s *PersonService) ListPersons() ([]models.Elu, error) {
	people, err := s.store.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list persons: %w", err)
	}

	elus := make([]models.Elu, 0, len(people))
	for _, person := range people {
		elus = append(elus, person.ToElu())
	}
	return elus, nil
}

// GetPersonByEmail retrieves a person by email
func (s *PersonService) GetPersonByEmail(email string) (*models.Elu, error) {
	person, err := s.store.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to get person: %w", err)
	}

	elu := person.ToElu()
	return &elu, nil
}

// CreatePerson checks email and name uniqueness, inserts the person and reads
// it back. The steps are separate store calls and are not atomic: two creates
// with the same email or name can both pass the checks.
func (s *PersonService) CreatePerson(request *models.CreatePersonRequest) (*models.Elu, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	if s.store.EmailExists(request.Email) {
		metrics.PersonConflicts.WithLabelValues("email").Inc()
		return nil, ErrEmailTaken
	}

	if s.store.NameExists(request.Name) {
		metrics.PersonConflicts.WithLabelValues("name").Inc()
		return nil, ErrNameTaken
	}

	mandates, err := models.EncodeMandates(request.Mandates)
	if err != nil {
		return nil, fmt.Errorf("failed to encode mandates: %w", err)
	}

	if err := s.store.Insert(request.Name, request.Email, mandates); err != nil {
		return nil, fmt.Errorf("failed to insert person: %w", err)
	}

	person, err := s.store.GetByEmail(request.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to reload person: %w", err)
	}

	metrics.PersonsCreated.Inc()
	logger.WithFields(logrus.Fields{
		"id":    person.ID,
		"email": person.Email,
	}).Info("Person created")

	elu := person.ToElu()
	return &elu, nil
}
