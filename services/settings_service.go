package services

import (
	"errors"

	"orderweb/entity"
	"orderweb/repository"
)

type SettingsService struct {
	Repo *repository.SettingsRepository
}

func NewSettingsService(repo *repository.SettingsRepository) *SettingsService {
	return &SettingsService{Repo: repo}
}

func (s *SettingsService) GetEmail(tenantID uint) (*entity.EmailSetting, error) {
	return s.Repo.GetEmail(tenantID)
}

type EmailSettingIn struct {
	SenderName       string `json:"senderName"`
	SenderEmail      string `json:"senderEmail" binding:"omitempty,email"`
	ReplyTo          string `json:"replyTo" binding:"omitempty,email"`
	SendConfirmation bool   `json:"sendConfirmation"`
}

func (s *SettingsService) UpdateEmail(tenantID uint, in *EmailSettingIn) (*entity.EmailSetting, error) {
	setting := &entity.EmailSetting{
		TenantID:         tenantID,
		SenderName:       in.SenderName,
		SenderEmail:      in.SenderEmail,
		ReplyTo:          in.ReplyTo,
		SendConfirmation: in.SendConfirmation,
	}
	if err := s.Repo.UpsertEmail(setting); err != nil {
		return nil, err
	}
	return setting, nil
}

func (s *SettingsService) GetBranding(tenantID uint) (*entity.BrandingSetting, error) {
	return s.Repo.GetBranding(tenantID)
}

type BrandingIn struct {
	DisplayName    string `json:"displayName"`
	LogoURL        string `json:"logoUrl" binding:"omitempty,url"`
	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor"`
	Tagline        string `json:"tagline"`
}

func (s *SettingsService) UpdateBranding(tenantID uint, in *BrandingIn) (*entity.BrandingSetting, error) {
	setting := &entity.BrandingSetting{
		TenantID:       tenantID,
		DisplayName:    in.DisplayName,
		LogoURL:        in.LogoURL,
		PrimaryColor:   in.PrimaryColor,
		SecondaryColor: in.SecondaryColor,
		Tagline:        in.Tagline,
	}
	if err := s.Repo.UpsertBranding(setting); err != nil {
		return nil, err
	}
	return setting, nil
}

func (s *SettingsService) GetGateway(tenantID uint) (*entity.GatewaySetting, error) {
	return s.Repo.GetGateway(tenantID)
}

type GatewaySettingIn struct {
	StripeEnabled  bool   `json:"stripeEnabled"`
	StripeEndpoint string `json:"stripeEndpoint" binding:"omitempty,url"`
	StripeKey      string `json:"stripeKey"`

	GlobalPaymentsEnabled  bool   `json:"globalPaymentsEnabled"`
	GlobalPaymentsEndpoint string `json:"globalPaymentsEndpoint" binding:"omitempty,url"`
	GlobalPaymentsKey      string `json:"globalPaymentsKey"`

	WorldpayEnabled  bool   `json:"worldpayEnabled"`
	WorldpayEndpoint string `json:"worldpayEndpoint" binding:"omitempty,url"`
	WorldpayKey      string `json:"worldpayKey"`
}

func (s *SettingsService) UpdateGateway(tenantID uint, in *GatewaySettingIn) (*entity.GatewaySetting, error) {
	if in.StripeEnabled && in.StripeEndpoint == "" {
		return nil, errors.New("stripe endpoint is required when enabled")
	}
	if in.GlobalPaymentsEnabled && in.GlobalPaymentsEndpoint == "" {
		return nil, errors.New("globalpayments endpoint is required when enabled")
	}
	if in.WorldpayEnabled && in.WorldpayEndpoint == "" {
		return nil, errors.New("worldpay endpoint is required when enabled")
	}

	setting := &entity.GatewaySetting{
		TenantID:       tenantID,
		StripeEnabled:  in.StripeEnabled,
		StripeEndpoint: in.StripeEndpoint,
		StripeKey:      in.StripeKey,

		GlobalPaymentsEnabled:  in.GlobalPaymentsEnabled,
		GlobalPaymentsEndpoint: in.GlobalPaymentsEndpoint,
		GlobalPaymentsKey:      in.GlobalPaymentsKey,

		WorldpayEnabled:  in.WorldpayEnabled,
		WorldpayEndpoint: in.WorldpayEndpoint,
		WorldpayKey:      in.WorldpayKey,
	}
	if err := s.Repo.UpsertGateway(setting); err != nil {
		return nil, err
	}
	return setting, nil
}

func (s *SettingsService) GetHours(tenantID uint) ([]entity.OpeningHour, error) {
	rows, err := s.Repo.ListHours(tenantID)
	if err != nil {
		return nil, err
	}
	SortHours(rows)
	return rows, nil
}

type OpeningHourIn struct {
	Weekday int    `json:"weekday" binding:"min=0,max=6"`
	Opens   string `json:"opens"`
	Closes  string `json:"closes"`
	Closed  bool   `json:"closed"`
}

func (s *SettingsService) ReplaceHours(tenantID uint, in []OpeningHourIn) error {
	rows := make([]entity.OpeningHour, 0, len(in))
	for _, h := range in {
		if !h.Closed {
			if _, err := parseClock(h.Opens); err != nil {
				return errors.New("opens must be HH:MM")
			}
			if _, err := parseClock(h.Closes); err != nil {
				return errors.New("closes must be HH:MM")
			}
		}
		rows = append(rows, entity.OpeningHour{
			Weekday: h.Weekday, Opens: h.Opens, Closes: h.Closes, Closed: h.Closed,
		})
	}
	return s.Repo.ReplaceHours(tenantID, rows)
}
