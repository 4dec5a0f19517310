package domain

import "time"

type AdAccountStatus string

const (
	AdAccountActive   AdAccountStatus = "active"
	AdAccountInactive AdAccountStatus = "inactive"
)

// MetaAdAccount representa uma conta de anúncios do Meta vinculada a um cliente.
// O AccessToken é o token de longa duração usado nas chamadas à Graph API.
type MetaAdAccount struct {
	ID             string          `json:"id"`
	ClientID       string          `json:"client_id"`
	AdAccountID    string          `json:"ad_account_id"`
	Name           string          `json:"name"`
	AccessToken    string          `json:"-"`
	Status         AdAccountStatus `json:"status"`
	TokenExpiresAt *time.Time      `json:"token_expires_at,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// GoogleAdAccount representa uma conta do Google Ads vinculada a um cliente
type GoogleAdAccount struct {
	ID         string          `json:"id"`
	ClientID   string          `json:"client_id"`
	CustomerID string          `json:"customer_id"`
	Name       string          `json:"name"`
	Status     AdAccountStatus `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
