package integrating

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aiatende/marketing-dashboard-api/infrastructure/integrator/kommo"
	"github.com/aiatende/marketing-dashboard-api/infrastructure/repository"
	"github.com/aiatende/marketing-dashboard-api/internal/domain"
	"github.com/sirupsen/logrus"
)

var (
	ErrConfigNotFound    = errors.New("configuração de integração não encontrada")
	ErrUnknownProvider   = errors.New("provider de integração desconhecido")
	ErrMissingSubdomain  = errors.New("o subdomínio é obrigatório para a integração com o Kommo")
	ErrEmptyStageName    = errors.New("o mapa de jornada não pode conter estágios vazios")
	ErrTooManyStages     = errors.New("o mapa de jornada excede o número máximo de estágios")
	ErrDuplicatedStage   = errors.New("o mapa de jornada não pode conter estágios repetidos")
	ErrNoKommoConnection = errors.New("não foi possível conectar ao Kommo com o subdomínio configurado")
)

// maxJourneyStages limita a profundidade do funil aceita na configuração,
// alinhado ao que o agregador do Kommo consegue somar posicionalmente.
const maxJourneyStages = 5

type Integrator interface {
	GetConfig(clientID string, provider domain.Provider) (*domain.IntegrationConfig, error)
	SaveConfig(clientID string, provider domain.Provider, req *UpdateConfigRequest) (*domain.IntegrationConfig, error)
	CheckKommoConnection(ctx context.Context, clientID string) (bool, error)
}

// UpdateConfigRequest carrega os campos editáveis da configuração de uma
// integração. O JourneyMap substitui o anterior por inteiro.
type UpdateConfigRequest struct {
	IsActive   bool              `json:"is_active"`
	Subdomain  string            `json:"subdomain"`
	JourneyMap domain.JourneyMap `json:"journey_map"`
}

type Service struct {
	configRepo   repository.IntegrationConfigRepository
	kommoService kommo.KommoIntegrator
}

func NewService(configRepo repository.IntegrationConfigRepository, kommoService kommo.KommoIntegrator) Integrator {
	return &Service{
		configRepo:   configRepo,
		kommoService: kommoService,
	}
}

func (s *Service) GetConfig(clientID string, provider domain.Provider) (*domain.IntegrationConfig, error) {
	if err := validateProvider(provider); err != nil {
		return nil, err
	}

	config, err := s.configRepo.GetByClientAndProvider(clientID, provider)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar configuração de integração: %w", err)
	}

	if config == nil {
		return nil, ErrConfigNotFound
	}

	return config, nil
}

func (s *Service) SaveConfig(clientID string, provider domain.Provider, req *UpdateConfigRequest) (*domain.IntegrationConfig, error) {
	if err := validateProvider(provider); err != nil {
		return nil, err
	}

	journeyMap, err := normalizeJourneyMap(req.JourneyMap)
	if err != nil {
		return nil, err
	}

	subdomain := strings.TrimSpace(req.Subdomain)
	if provider == domain.ProviderKommo && subdomain == "" {
		return nil, ErrMissingSubdomain
	}

	config := &domain.IntegrationConfig{
		ClientID:   clientID,
		Provider:   provider,
		IsActive:   req.IsActive,
		Subdomain:  subdomain,
		JourneyMap: journeyMap,
	}

	if err := s.configRepo.SaveOrUpdate(config); err != nil {
		return nil, fmt.Errorf("erro ao salvar configuração de integração: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"client_id": clientID,
		"provider":  provider,
		"stages":    len(journeyMap),
	}).Info("Configuração de integração salva")

	return config, nil
}

// CheckKommoConnection valida se o subdomínio configurado para o cliente
// responde no Kommo. Exige uma configuração KOMMO ativa.
func (s *Service) CheckKommoConnection(ctx context.Context, clientID string) (bool, error) {
	config, err := s.configRepo.GetActiveByClientAndProvider(clientID, domain.ProviderKommo)
	if err != nil {
		return false, fmt.Errorf("erro ao buscar configuração do Kommo: %w", err)
	}

	if config == nil || config.Subdomain == "" {
		return false, ErrConfigNotFound
	}

	ok, err := s.kommoService.CheckConnection(ctx, config.Subdomain)
	if err != nil {
		logrus.WithError(err).WithField("subdomain", config.Subdomain).Warn("Falha ao verificar conexão com o Kommo")
		return false, ErrNoKommoConnection
	}

	return ok, nil
}

func validateProvider(provider domain.Provider) error {
	switch provider {
	case domain.ProviderKommo, domain.ProviderMeta:
		return nil
	default:
		return ErrUnknownProvider
	}
}

// normalizeJourneyMap remove espaços ao redor dos nomes e valida os estágios.
// Um mapa vazio é válido: o dashboard fica sem colunas de funil.
func normalizeJourneyMap(journeyMap domain.JourneyMap) (domain.JourneyMap, error) {
	if len(journeyMap) > maxJourneyStages {
		return nil, ErrTooManyStages
	}

	normalized := make(domain.JourneyMap, 0, len(journeyMap))
	seen := make(map[string]bool, len(journeyMap))

	for _, stage := range journeyMap {
		name := strings.TrimSpace(stage)
		if name == "" {
			return nil, ErrEmptyStageName
		}
		if seen[name] {
			return nil, ErrDuplicatedStage
		}
		seen[name] = true
		normalized = append(normalized, name)
	}

	return normalized, nil
}
