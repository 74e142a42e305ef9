package postgres

import (
	"context"
	"time"

	"loyallink/internal/domain/entity"
	domainerrors "loyallink/internal/domain/errors"
	"loyallink/internal/domain/repository"
	"loyallink/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// customerRepository implements the repository.CustomerRepository interface.
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository is the constructor for customerRepository.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{
		db: db,
	}
}

// FindByID retrieves a customer by ID, scoped to the given business.
func (repo *customerRepository) FindByID(ctx context.Context, businessID, customerID uuid.UUID) (*entity.Customer, error) {
	var customerM model.CustomerModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND business_id = ?", customerID, businessID).
		First(&customerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer by ID")
	}

	return toCustomerDomain(&customerM), nil
}

// FindByBusiness retrieves all customers of a business, most recent visit first.
func (repo *customerRepository) FindByBusiness(ctx context.Context, businessID uuid.UUID, limit, offset int) ([]*entity.Customer, error) {
	var customerModels []*model.CustomerModel

	if err := repo.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("last_visit DESC NULLS LAST").
		Limit(limit).
		Offset(offset).
		Find(&customerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find customers by business")
	}

	customers := make([]*entity.Customer, 0, len(customerModels))
	for _, customerM := range customerModels {
		customers = append(customers, toCustomerDomain(customerM))
	}

	return customers, nil
}

// Create persists a new customer entity to the storage.
func (repo *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	customerM := fromCustomerDomain(customer)

	if err := repo.db.WithContext(ctx).Create(customerM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateCustomer
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrBusinessNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required customer information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create customer")
	}

	// Update the entity with generated values
	customer.ID = customerM.ID
	customer.CreatedAt = customerM.CreatedAt
	customer.UpdatedAt = customerM.UpdatedAt

	return nil
}

// IncrementVisits atomically adds one visit and stamps last_visit, returning
// the updated customer. The increment runs in the database so concurrent
// check-ins cannot lose updates.
func (repo *customerRepository) IncrementVisits(ctx context.Context, businessID, customerID uuid.UUID) (*entity.Customer, error) {
	now := time.Now().UTC()

	result := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("id = ? AND business_id = ?", customerID, businessID).
		Updates(map[string]any{
			"visits":     gorm.Expr("visits + 1"),
			"last_visit": now,
		})

	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to increment customer visits")
	}

	if result.RowsAffected == 0 {
		return nil, repository.ErrCustomerNotFound
	}

	return repo.FindByID(ctx, businessID, customerID)
}

// ResetVisits sets the visit counter back to zero after a redemption.
func (repo *customerRepository) ResetVisits(ctx context.Context, businessID, customerID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("id = ? AND business_id = ?", customerID, businessID).
		Update("visits", 0)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to reset customer visits")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCustomerNotFound
	}

	return nil
}

// CountByBusiness returns the number of customers registered to a business.
func (repo *customerRepository) CountByBusiness(ctx context.Context, businessID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("business_id = ?", businessID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count customers by business")
	}

	return count, nil
}

// toCustomerDomain converts a GORM model to a domain entity.
func toCustomerDomain(customerM *model.CustomerModel) *entity.Customer {
	customer := &entity.Customer{
		ID:         customerM.ID,
		BusinessID: customerM.BusinessID,
		Name:       customerM.Name,
		Visits:     customerM.Visits,
		LastVisit:  customerM.LastVisit,
		CreatedAt:  customerM.CreatedAt,
		UpdatedAt:  customerM.UpdatedAt,
	}
	if customerM.Email != nil {
		customer.Email = *customerM.Email
	}
	if customerM.Phone != nil {
		customer.Phone = *customerM.Phone
	}

	return customer
}

// fromCustomerDomain converts a domain entity to a GORM model. Empty contact
// fields become NULL so the partial unique index on email ignores them.
func fromCustomerDomain(customer *entity.Customer) *model.CustomerModel {
	customerM := &model.CustomerModel{
		ID:         customer.ID,
		BusinessID: customer.BusinessID,
		Name:       customer.Name,
		Visits:     customer.Visits,
		LastVisit:  customer.LastVisit,
		CreatedAt:  customer.CreatedAt,
		UpdatedAt:  customer.UpdatedAt,
	}
	if customer.Email != "" {
		email := customer.Email
		customerM.Email = &email
	}
	if customer.Phone != "" {
		phone := customer.Phone
		customerM.Phone = &phone
	}

	return customerM
}
