package authenticating

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/aiatende/marketing-dashboard-api/infrastructure/repository"
	"github.com/aiatende/marketing-dashboard-api/internal/config"
	"github.com/aiatende/marketing-dashboard-api/internal/domain"
	"github.com/aiatende/marketing-dashboard-api/pkg/apiErrors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type Authenticator interface {
	CreateClient(client *domain.Client) (*domain.Client, error)
	UpdateClient(client *domain.UpdateClientRequest) error
	ListClients() ([]*domain.Client, error)
	LoginClient(email, password string) (string, error)
	GetClientProfile(clientID string) (*domain.Client, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
	GenerateStrongPassword(requestClientID, targetClientID string) (string, error)
	ChangePassword(clientID, currentPassword, newPassword string) error
	ValidatePasswordStrength(password string) error
}

type Service struct {
	clientRepo repository.ClientRepository
	cfg        *config.Config
}

func NewService(clientRepo repository.ClientRepository, cfg *config.Config) Authenticator {
	return &Service{
		clientRepo: clientRepo,
		cfg:        cfg,
	}
}

func (s *Service) UpdateClient(client *domain.UpdateClientRequest) error {
	if client.ID == "" {
		return errors.New("ID is required")
	}

	clientDatabase, err := s.clientRepo.GetClientByID(client.ID)
	if clientDatabase == nil || err != nil {
		if err == nil {
			return fmt.Errorf("cliente não encontrado para o ID: %s", client.ID)
		}
		return err
	}

	if client.Name != nil {
		clientDatabase.Name = *client.Name
	}

	if client.Email != nil {
		clientDatabase.Email = handleEmail(*client.Email)
	}

	if client.Active != nil {
		clientDatabase.Active = *client.Active
	}

	if client.Role != nil {
		clientDatabase.Role = *client.Role
	}

	err = s.clientRepo.UpdateClient(clientDatabase)
	if err != nil {
		return err
	}

	return nil
}

func (s *Service) CreateClient(client *domain.Client) (*domain.Client, error) {
	if client.Email == "" || client.Name == "" || client.PasswordHash == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email, nome e senha são obrigatórios")
	}

	client.Email = handleEmail(client.Email)

	clientDatabase, _ := s.clientRepo.GetClientByEmail(client.Email)
	if clientDatabase != nil {
		return nil, NewAuthError(ErrClientAlreadyExists, apiErrors.ErrUserAlreadyExists, "Email já cadastrado")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(client.PasswordHash), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	if client.Role == "" {
		client.Role = domain.RoleUser
	}

	client.PasswordHash = string(hashedPassword)
	client.Active = false

	err = s.clientRepo.CreateClient(client)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao criar cliente")
	}

	return client, nil
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}

func (s *Service) ListClients() ([]*domain.Client, error) {
	clients, err := s.clientRepo.ListClients()
	if err != nil {
		return nil, err
	}

	return clients, nil
}

func (s *Service) LoginClient(email, password string) (string, error) {
	// Validação de entrada
	if email == "" || password == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email e senha são obrigatórios")
	}

	email = handleEmail(email)

	client, err := s.clientRepo.GetClientByEmail(email)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar cliente no banco de dados")
	}

	// Verificar se o cliente existe
	if client == nil {
		return "", NewAuthError(ErrClientNotFound, apiErrors.ErrUserNotFound, "Cliente não encontrado")
	}

	// Verificar se o cliente está ativo
	if !client.Active {
		return "", NewClientAuthError(ErrClientDisabled, apiErrors.ErrUserDisabled, client.ID, "Conta desativada")
	}

	// Verificar senha
	if err := bcrypt.CompareHashAndPassword([]byte(client.PasswordHash), []byte(password)); err != nil {
		return "", NewClientAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, client.ID, "Senha incorreta")
	}

	// Gerar token JWT
	token, err := generateJWT(client, s.cfg.Auth.Secret)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	return token, nil
}

func (s *Service) GetClientProfile(clientID string) (*domain.Client, error) {
	client, err := s.clientRepo.GetClientByID(clientID)
	if err != nil {
		logrus.Error(err)
		return nil, err
	}

	if client == nil {
		return nil, ErrClientNotFound
	}

	client.PasswordHash = ""
	return client, nil
}

func generateJWT(client *domain.Client, secretKey string) (string, error) {
	claims := domain.Claims{
		ClientID: client.ID,
		Email:    client.Email,
		Role:     client.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secretKey))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.Secret), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*domain.Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}

// GenerateStrongPassword gera uma senha forte para o cliente alvo.
// Verifica se o cliente solicitante tem perfil de administrador antes de prosseguir.
func (s *Service) GenerateStrongPassword(requestClientID, targetClientID string) (string, error) {
	// Verificar se o cliente solicitante é um administrador
	requestClient, err := s.clientRepo.GetClientByID(requestClientID)
	if err != nil {
		return "", err
	}
	if requestClient == nil {
		return "", errors.New("cliente solicitante não encontrado")
	}
	if !requestClient.IsAdmin() {
		return "", ErrNoAdminPrivileges
	}

	// Verificar se o cliente alvo existe
	targetClient, err := s.clientRepo.GetClientByID(targetClientID)
	if err != nil {
		return "", err
	}
	if targetClient == nil {
		return "", errors.New("cliente alvo não encontrado")
	}

	// Gerar senha forte
	newPassword, err := generateStrongPassword(12)
	if err != nil {
		return "", err
	}

	// Hash da nova senha
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	// Atualizar senha do cliente alvo
	targetClient.PasswordHash = string(hashedPassword)
	err = s.clientRepo.UpdateClient(targetClient)
	if err != nil {
		return "", err
	}

	return newPassword, nil
}

// generateStrongPassword gera uma senha forte com o comprimento especificado
// incluindo letras maiúsculas, minúsculas, números e caracteres especiais
func generateStrongPassword(length int) (string, error) {
	if length < 8 {
		length = 8 // Comprimento mínimo para senhas fortes
	}

	const (
		lowerChars   = "abcdefghijklmnopqrstuvwxyz"
		upperChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
		numberChars  = "0123456789"
		specialChars = "!@#$%^&*()-_=+[]{}|;:,.<>?"
		allChars     = lowerChars + upperChars + numberChars + specialChars
	)

	// Garantir que a senha tenha pelo menos um caractere de cada tipo
	password := make([]byte, length)

	// Adicionar um caractere minúsculo
	randomChar, err := getRandomChar(lowerChars)
	if err != nil {
		return "", err
	}
	password[0] = randomChar

	// Adicionar um caractere maiúsculo
	randomChar, err = getRandomChar(upperChars)
	if err != nil {
		return "", err
	}
	password[1] = randomChar

	// Adicionar um número
	randomChar, err = getRandomChar(numberChars)
	if err != nil {
		return "", err
	}
	password[2] = randomChar

	// Adicionar um caractere especial
	randomChar, err = getRandomChar(specialChars)
	if err != nil {
		return "", err
	}
	password[3] = randomChar

	// Preencher o resto com caracteres aleatórios
	for i := 4; i < length; i++ {
		randomChar, err = getRandomChar(allChars)
		if err != nil {
			return "", err
		}
		password[i] = randomChar
	}

	// Embaralhar a senha para que os caracteres não fiquem em ordem previsível
	for i := range password {
		j, err := randomInt(int64(len(password)))
		if err != nil {
			return "", err
		}
		password[i], password[j] = password[j], password[i]
	}

	return string(password), nil
}

// getRandomChar retorna um caractere aleatório do conjunto fornecido
func getRandomChar(charset string) (byte, error) {
	n, err := randomInt(int64(len(charset)))
	if err != nil {
		return 0, err
	}
	return charset[n], nil
}

// randomInt gera um número aleatório seguro entre 0 e max-1
func randomInt(max int64) (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(max))
	if err != nil {
		return 0, err
	}
	return int(n.Int64()), nil
}

// ValidatePasswordStrength verifica se a senha atende aos requisitos de segurança
// Senha deve conter pelo menos 8 caracteres, incluindo maiúsculas, minúsculas, números e caracteres especiais
func (s *Service) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return errors.New("a senha deve conter pelo menos 8 caracteres")
	}

	var (
		hasUpper   bool
		hasLower   bool
		hasNumber  bool
		hasSpecial bool
	)

	const (
		lowerChars   = "abcdefghijklmnopqrstuvwxyz"
		upperChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
		numberChars  = "0123456789"
		specialChars = "!@#$%^&*()-_=+[]{}|;:,.<>?"
	)

	for _, char := range password {
		switch {
		case strings.ContainsRune(lowerChars, char):
			hasLower = true
		case strings.ContainsRune(upperChars, char):
			hasUpper = true
		case strings.ContainsRune(numberChars, char):
			hasNumber = true
		case strings.ContainsRune(specialChars, char):
			hasSpecial = true
		}
	}

	if !hasUpper {
		return errors.New("a senha deve conter pelo menos uma letra maiúscula")
	}
	if !hasLower {
		return errors.New("a senha deve conter pelo menos uma letra minúscula")
	}
	if !hasNumber {
		return errors.New("a senha deve conter pelo menos um número")
	}
	if !hasSpecial {
		return errors.New("a senha deve conter pelo menos um caractere especial")
	}

	return nil
}

// ChangePassword permite que um cliente altere sua própria senha
// Verifica se a senha atual está correta e se a nova senha atende aos requisitos de segurança
func (s *Service) ChangePassword(clientID, currentPassword, newPassword string) error {
	// Obter o cliente pelo ID
	client, err := s.clientRepo.GetClientByID(clientID)
	if err != nil {
		return err
	}

	if client == nil {
		return errors.New("cliente não encontrado")
	}

	// Verificar se a senha atual está correta
	if err := bcrypt.CompareHashAndPassword([]byte(client.PasswordHash), []byte(currentPassword)); err != nil {
		return errors.New("senha atual incorreta")
	}

	// Validar se a nova senha atende aos requisitos de segurança
	if err := s.ValidatePasswordStrength(newPassword); err != nil {
		return err
	}

	// Gerar hash da nova senha
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	// Atualizar a senha do cliente
	client.PasswordHash = string(hashedPassword)
	err = s.clientRepo.UpdateClient(client)
	if err != nil {
		return err
	}

	return nil
}
