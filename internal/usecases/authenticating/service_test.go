package authenticating

import (
	"testing"

	"github.com/aiatende/marketing-dashboard-api/infrastructure/repository/mocks"
	"github.com/aiatende/marketing-dashboard-api/internal/config"
	"github.com/aiatende/marketing-dashboard-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService(t *testing.T) (Authenticator, *mocks.MockClientRepository, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockClientRepository(ctrl)

	cfg := &config.Config{
		Auth: config.Auth{Secret: "segredo-de-teste"},
	}

	return NewService(mockRepo, cfg), mockRepo, ctrl
}

func activeClient(t *testing.T, password string) *domain.Client {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)

	return &domain.Client{
		ID:           "client-1",
		Name:         "Loja Acme",
		Email:        "acme@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		Active:       true,
	}
}

func TestLoginClient(t *testing.T) {
	t.Run("Login com credenciais válidas gera token com as claims do cliente", func(t *testing.T) {
		service, mockRepo, ctrl := newAuthService(t)
		defer ctrl.Finish()

		client := activeClient(t, "Senha@Forte1")

		mockRepo.EXPECT().
			GetClientByEmail("acme@example.com").
			Return(client, nil)

		token, err := service.LoginClient("Acme@Example.com ", "Senha@Forte1")

		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := service.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "client-1", claims.ClientID)
		assert.Equal(t, "acme@example.com", claims.Email)
		assert.Equal(t, domain.RoleUser, claims.Role)
	})

	t.Run("Senha incorreta retorna erro de credenciais", func(t *testing.T) {
		service, mockRepo, ctrl := newAuthService(t)
		defer ctrl.Finish()

		mockRepo.EXPECT().
			GetClientByEmail("acme@example.com").
			Return(activeClient(t, "Senha@Forte1"), nil)

		_, err := service.LoginClient("acme@example.com", "senha-errada")

		assert.True(t, IsCredentialsError(err))
	})

	t.Run("Cliente desativado não consegue entrar", func(t *testing.T) {
		service, mockRepo, ctrl := newAuthService(t)
		defer ctrl.Finish()

		client := activeClient(t, "Senha@Forte1")
		client.Active = false

		mockRepo.EXPECT().
			GetClientByEmail("acme@example.com").
			Return(client, nil)

		_, err := service.LoginClient("acme@example.com", "Senha@Forte1")

		assert.ErrorIs(t, err, ErrClientDisabled)
	})

	t.Run("Cliente inexistente retorna erro específico", func(t *testing.T) {
		service, mockRepo, ctrl := newAuthService(t)
		defer ctrl.Finish()

		mockRepo.EXPECT().
			GetClientByEmail("nada@example.com").
			Return(nil, nil)

		_, err := service.LoginClient("nada@example.com", "qualquer")

		assert.ErrorIs(t, err, ErrClientNotFound)
	})

	t.Run("Email e senha são obrigatórios", func(t *testing.T) {
		service, _, ctrl := newAuthService(t)
		defer ctrl.Finish()

		_, err := service.LoginClient("", "")

		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})
}

func TestValidateToken(t *testing.T) {
	service, _, ctrl := newAuthService(t)
	defer ctrl.Finish()

	_, err := service.ValidateToken("token-invalido")
	assert.Error(t, err)
}

func TestCreateClient(t *testing.T) {
	t.Run("Criação com sucesso faz hash da senha e inativa a conta", func(t *testing.T) {
		service, mockRepo, ctrl := newAuthService(t)
		defer ctrl.Finish()

		mockRepo.EXPECT().
			GetClientByEmail("nova@example.com").
			Return(nil, nil)

		mockRepo.EXPECT().
			CreateClient(gomock.Any()).
			DoAndReturn(func(client *domain.Client) error {
				assert.NotEqual(t, "Senha@Forte1", client.PasswordHash)
				assert.False(t, client.Active)
				assert.Equal(t, domain.RoleUser, client.Role)
				return nil
			})

		created, err := service.CreateClient(&domain.Client{
			Name:         "Loja Nova",
			Email:        "Nova@Example.com",
			PasswordHash: "Senha@Forte1",
		})

		require.NoError(t, err)
		assert.Equal(t, "nova@example.com", created.Email)
	})

	t.Run("Email já cadastrado é rejeitado", func(t *testing.T) {
		service, mockRepo, ctrl := newAuthService(t)
		defer ctrl.Finish()

		mockRepo.EXPECT().
			GetClientByEmail("acme@example.com").
			Return(activeClient(t, "Senha@Forte1"), nil)

		_, err := service.CreateClient(&domain.Client{
			Name:         "Loja Acme",
			Email:        "acme@example.com",
			PasswordHash: "Senha@Forte1",
		})

		assert.ErrorIs(t, err, ErrClientAlreadyExists)
	})

	t.Run("Dados obrigatórios ausentes", func(t *testing.T) {
		service, _, ctrl := newAuthService(t)
		defer ctrl.Finish()

		_, err := service.CreateClient(&domain.Client{Email: "x@example.com"})

		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})
}

func TestValidatePasswordStrength(t *testing.T) {
	service, _, ctrl := newAuthService(t)
	defer ctrl.Finish()

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"Senha forte passa na validação", "Senha@Forte1", false},
		{"Senha curta é rejeitada", "Ab1!", true},
		{"Sem maiúscula é rejeitada", "senha@forte1", true},
		{"Sem número é rejeitada", "Senha@Forte", true},
		{"Sem caractere especial é rejeitada", "SenhaForte1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.ValidatePasswordStrength(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGenerateStrongPassword(t *testing.T) {
	t.Run("Apenas administradores podem gerar novas senhas", func(t *testing.T) {
		service, mockRepo, ctrl := newAuthService(t)
		defer ctrl.Finish()

		requester := activeClient(t, "Senha@Forte1")

		mockRepo.EXPECT().
			GetClientByID("client-1").
			Return(requester, nil)

		_, err := service.GenerateStrongPassword("client-1", "client-2")

		assert.ErrorIs(t, err, ErrNoAdminPrivileges)
	})

	t.Run("Administrador gera senha forte e persiste o novo hash", func(t *testing.T) {
		service, mockRepo, ctrl := newAuthService(t)
		defer ctrl.Finish()

		admin := activeClient(t, "Senha@Forte1")
		admin.Role = domain.RoleAdmin

		target := activeClient(t, "Outra@Senha2")
		target.ID = "client-2"

		mockRepo.EXPECT().GetClientByID("client-1").Return(admin, nil)
		mockRepo.EXPECT().GetClientByID("client-2").Return(target, nil)
		mockRepo.EXPECT().UpdateClient(gomock.Any()).Return(nil)

		password, err := service.GenerateStrongPassword("client-1", "client-2")

		require.NoError(t, err)
		assert.NoError(t, service.ValidatePasswordStrength(password))
	})
}
