package services

import (
	"errors"
	"strings"
	"time"

	"orderweb/entity"
	"orderweb/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrGiftCardNotFound = errors.New("gift card not found")
	ErrGiftCardInactive = errors.New("gift card is not active")
	ErrGiftCardExpired  = errors.New("gift card has expired")
	ErrGiftCardEmpty    = errors.New("gift card has no remaining balance")
)

type GiftCardService struct {
	DB   *gorm.DB
	Repo *repository.GiftCardRepository
}

func NewGiftCardService(db *gorm.DB, repo *repository.GiftCardRepository) *GiftCardService {
	return &GiftCardService{DB: db, Repo: repo}
}

type IssueGiftCardIn struct {
	InitialBalance int64      `json:"initialBalance" binding:"required,min=1"`
	ExpiresAt      *time.Time `json:"expiresAt"`
}

func (s *GiftCardService) Issue(tenantID uint, in *IssueGiftCardIn) (*entity.GiftCard, error) {
	g := &entity.GiftCard{
		TenantID:       tenantID,
		Code:           newGiftCardCode(),
		InitialBalance: in.InitialBalance,
		Balance:        in.InitialBalance,
		Active:         true,
		ExpiresAt:      in.ExpiresAt,
	}
	if err := s.Repo.Create(g); err != nil {
		return nil, err
	}
	return g, nil
}

func newGiftCardCode() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "GC-" + raw[:4] + "-" + raw[4:8] + "-" + raw[8:12]
}

func (s *GiftCardService) List(tenantID uint) ([]entity.GiftCard, error) {
	return s.Repo.List(tenantID)
}

func (s *GiftCardService) Deactivate(tenantID, id uint) error {
	return s.Repo.SetActive(tenantID, id, false)
}

// Check looks a card up without touching the balance.
func (s *GiftCardService) Check(tenantID uint, code string) (*entity.GiftCard, error) {
	g, err := s.Repo.FindByCode(tenantID, strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGiftCardNotFound
		}
		return nil, err
	}
	if err := s.usable(g); err != nil {
		return nil, err
	}
	return g, nil
}

// Apply deducts amount from the card inside the caller's transaction, so a
// failed order insert rolls the balance back too. The guarded update loses
// when the balance changed under us.
func (s *GiftCardService) Apply(tx *gorm.DB, cardID uint, amount int64) error {
	if amount <= 0 {
		return nil
	}
	affected, err := s.Repo.Deduct(tx, cardID, amount)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrGiftCardEmpty
	}
	return nil
}

func (s *GiftCardService) usable(g *entity.GiftCard) error {
	if !g.Active {
		return ErrGiftCardInactive
	}
	if g.ExpiresAt != nil && time.Now().After(*g.ExpiresAt) {
		return ErrGiftCardExpired
	}
	if g.Balance <= 0 {
		return ErrGiftCardEmpty
	}
	return nil
}
