package catalog

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"tender-board/internal/biddingerrors"
	model "tender-board/internal/models"
	"tender-board/internal/repository"

	"github.com/go-playground/validator/v10"
)

// CatalogService is the admin-side tender catalog: create, update, delete and list tenders
type CatalogService struct {
	store    repository.TenderStore
	validate *validator.Validate
}

// NewCatalogService creates a new CatalogService instance
func NewCatalogService(store repository.TenderStore) *CatalogService {
	validate := validator.New()
	// report fields by their JSON names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &CatalogService{
		store:    store,
		validate: validate,
	}
}

// ListTenders returns the catalog in the store's natural order
func (s *CatalogService) ListTenders(ctx context.Context) ([]model.Tender, error) {
	tenders, err := s.store.ListTenders(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list tenders: %w", err)
	}
	return tenders, nil
}

// CreateTender validates and persists a new tender
func (s *CatalogService) CreateTender(ctx context.Context, fields model.TenderFields) (model.Tender, error) {
	if err := s.validateTender(fields); err != nil {
		return model.Tender{}, err
	}

	tender, err := s.store.CreateTender(ctx, fields)
	if err != nil {
		return model.Tender{}, fmt.Errorf("service: failed to create tender %q: %w", fields.Name, err)
	}
	return tender, nil
}

// UpdateTender validates and replaces every field of an existing tender
func (s *CatalogService) UpdateTender(ctx context.Context, id string, fields model.TenderFields) (model.Tender, error) {
	if id == "" {
		return model.Tender{}, fmt.Errorf("service: %w - empty tender ID", biddingerrors.ErrTenderNotFound)
	}
	if err := s.validateTender(fields); err != nil {
		return model.Tender{}, err
	}

	tender, err := s.store.UpdateTender(ctx, id, fields)
	if err != nil {
		return model.Tender{}, fmt.Errorf("service: failed to update tender %s: %w", id, err)
	}
	return tender, nil
}

// DeleteTender removes a tender. Unknown ids are not an error.
func (s *CatalogService) DeleteTender(ctx context.Context, id string) error {
	if err := s.store.DeleteTender(ctx, id); err != nil {
		return fmt.Errorf("service: failed to delete tender %s: %w", id, err)
	}
	return nil
}

// validateTender reports the first failing rule in field declaration order
func (s *CatalogService) validateTender(fields model.TenderFields) error {
	err := s.validate.Struct(fields)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("service: %w - %v", biddingerrors.ErrInvalidTender, err)
	}

	first := verrs[0]
	switch first.Tag() {
	case "required":
		return fmt.Errorf("service: %w - %s is a required field", biddingerrors.ErrInvalidTender, first.Field())
	case "datetime":
		return fmt.Errorf("service: %w - %s must be a date in YYYY-MM-DD format", biddingerrors.ErrInvalidTender, first.Field())
	default:
		return fmt.Errorf("service: %w - %s failed %s", biddingerrors.ErrInvalidTender, first.Field(), first.Tag())
	}
}
