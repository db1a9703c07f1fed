package handlers

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/alimgiray/elus/internal/models"
	"github.com/alimgiray/elus/internal/repositories"
	"github.com/alimgiray/elus/internal/services"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type PersonHandler struct {
	personService *services.PersonService
	exportService *services.ExportService
}

func NewPersonHandler(personService *services.PersonService, exportService *services.ExportService) *PersonHandler {
	return &PersonHandler{
		personService: personService,
		exportService: exportService,
	}
}

// ListPersons returns every person
func (h *PersonHandler) ListPersons(c *gin.Context) {
	elus, err := h.personService.ListPersons()
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, elus)
}

// GetPerson returns the person with the given email
func (h *PersonHandler) GetPerson(c *gin.Context) {
	elu, err := h.personService.GetPersonByEmail(c.Param("email"))
	if err != nil {
		if errors.Is(err, repositories.ErrPersonNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Person not found"})
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, elu)
}

// CreatePerson creates a person; it serves both /elus/new and /elus/create
func (h *PersonHandler) CreatePerson(c *gin.Context) {
	var request models.CreatePersonRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data: " + err.Error()})
		return
	}

	elu, err := h.personService.CreatePerson(&request)
	if err != nil {
		var validationErr *models.ValidationError
		switch {
		case errors.As(err, &validationErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
		case errors.Is(err, services.ErrConflict):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			internalError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, elu)
}

// ExportPersons sends all persons as an XLSX workbook
func (h *PersonHandler) ExportPersons(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.exportService.WriteWorkbook(&buf); err != nil {
		internalError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="elus.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// internalError hides the cause from the client; the request logger reports it
func internalError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
