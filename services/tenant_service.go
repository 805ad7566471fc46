package services

import (
	"errors"
	"strings"

	"orderweb/entity"
	"orderweb/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type TenantService struct {
	DB    *gorm.DB
	Repo  *repository.TenantRepository
	Users *repository.UserRepository
}

func NewTenantService(db *gorm.DB, repo *repository.TenantRepository, users *repository.UserRepository) *TenantService {
	return &TenantService{DB: db, Repo: repo, Users: users}
}

type CreateTenantIn struct {
	Name      string `json:"name" binding:"required"`
	Slug      string `json:"slug" binding:"required"`
	Currency  string `json:"currency"`
	TaxRateBP int64  `json:"taxRateBp" binding:"min=0"`

	OwnerEmail    string `json:"ownerEmail" binding:"required,email"`
	OwnerPassword string `json:"ownerPassword" binding:"required,min=8"`
}

// Create provisions a tenant with its owner account and empty settings rows
// in one transaction.
func (s *TenantService) Create(in *CreateTenantIn) (*entity.Tenant, error) {
	slug := strings.ToLower(strings.TrimSpace(in.Slug))
	if _, err := s.Repo.GetBySlug(slug); err == nil {
		return nil, errors.New("slug already taken")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(in.OwnerEmail))
	cnt, err := s.Users.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if cnt > 0 {
		return nil, errors.New("owner email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.OwnerPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	currency := strings.ToUpper(strings.TrimSpace(in.Currency))
	if currency == "" {
		currency = "GBP"
	}

	var tenant entity.Tenant
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		owner := entity.User{Email: email, Password: string(hashed), Role: "owner"}
		if err := tx.Create(&owner).Error; err != nil {
			return err
		}

		tenant = entity.Tenant{
			Name:      strings.TrimSpace(in.Name),
			Slug:      slug,
			Currency:  currency,
			TaxRateBP: in.TaxRateBP,
			OwnerID:   owner.ID,
		}
		if err := tx.Create(&tenant).Error; err != nil {
			return err
		}

		defaults := []any{
			&entity.EmailSetting{TenantID: tenant.ID, SenderName: tenant.Name},
			&entity.BrandingSetting{TenantID: tenant.ID, DisplayName: tenant.Name},
			&entity.GatewaySetting{TenantID: tenant.ID},
		}
		for _, d := range defaults {
			if err := tx.Create(d).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &tenant, nil
}

func (s *TenantService) List() ([]entity.Tenant, error) {
	return s.Repo.List()
}

type UpdateTenantIn struct {
	Name              *string `json:"name"`
	TaxRateBP         *int64  `json:"taxRateBp"`
	DeliveryEnabled   *bool   `json:"deliveryEnabled"`
	CollectionEnabled *bool   `json:"collectionEnabled"`
	AdvanceEnabled    *bool   `json:"advanceEnabled"`
}

func (s *TenantService) Update(id uint, in *UpdateTenantIn) error {
	updates := map[string]any{}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.TaxRateBP != nil {
		updates["tax_rate_bp"] = *in.TaxRateBP
	}
	if in.DeliveryEnabled != nil {
		updates["delivery_enabled"] = *in.DeliveryEnabled
	}
	if in.CollectionEnabled != nil {
		updates["collection_enabled"] = *in.CollectionEnabled
	}
	if in.AdvanceEnabled != nil {
		updates["advance_enabled"] = *in.AdvanceEnabled
	}
	if len(updates) == 0 {
		return nil
	}
	return s.Repo.Update(id, updates)
}
