package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/stockpeak/stock-analytics-api/infrastructure/repository/mocks"
	"github.com/stockpeak/stock-analytics-api/internal/config"
	"github.com/stockpeak/stock-analytics-api/internal/domain"
)

func testConfig() *config.Config {
	return &config.Config{SecretKey: "test-secret-key"}
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestLoginUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockRepo, testConfig())

	activeUser := &domain.User{
		ID:           1,
		Name:         "Ana",
		Email:        "ana@exemplo.com",
		PasswordHash: hashOf(t, "Senha@123"),
		Active:       true,
		RoleID:       2,
	}

	t.Run("login válido devolve token verificável", func(t *testing.T) {
		mockRepo.EXPECT().GetUserByEmail("ana@exemplo.com").Return(activeUser, nil)

		token, err := service.LoginUser("Ana@Exemplo.com ", "Senha@123")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := service.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, 1, claims.UserID)
		assert.Equal(t, "ana@exemplo.com", claims.UserEmail)
		assert.Equal(t, 2, claims.UserRoleID)
	})

	t.Run("senha incorreta", func(t *testing.T) {
		mockRepo.EXPECT().GetUserByEmail("ana@exemplo.com").Return(activeUser, nil)

		_, err := service.LoginUser("ana@exemplo.com", "senha-errada")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.True(t, IsCredentialsError(err))
	})

	t.Run("conta desativada", func(t *testing.T) {
		disabled := *activeUser
		disabled.Active = false
		mockRepo.EXPECT().GetUserByEmail("ana@exemplo.com").Return(&disabled, nil)

		_, err := service.LoginUser("ana@exemplo.com", "Senha@123")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUserDisabled)
	})

	t.Run("usuário inexistente", func(t *testing.T) {
		mockRepo.EXPECT().GetUserByEmail("ninguem@exemplo.com").Return(nil, nil)

		_, err := service.LoginUser("ninguem@exemplo.com", "Senha@123")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("campos obrigatórios", func(t *testing.T) {
		_, err := service.LoginUser("", "")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})
}

func TestValidateToken_RejectsForeignSignature(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)

	issuer := NewService(mockRepo, &config.Config{SecretKey: "outra-chave"})
	verifier := NewService(mockRepo, testConfig())

	user := &domain.User{
		ID:           1,
		Email:        "ana@exemplo.com",
		PasswordHash: hashOf(t, "Senha@123"),
		Active:       true,
	}
	mockRepo.EXPECT().GetUserByEmail("ana@exemplo.com").Return(user, nil)

	token, err := issuer.LoginUser("ana@exemplo.com", "Senha@123")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestCreateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockRepo, testConfig())

	t.Run("normaliza email, aplica hash e papel padrão", func(t *testing.T) {
		mockRepo.EXPECT().GetUserByEmail("ana@exemplo.com").Return(nil, nil)

		var saved *domain.User
		mockRepo.EXPECT().
			CreateUser(gomock.Any()).
			DoAndReturn(func(user *domain.User) (*domain.User, error) {
				saved = user
				user.ID = 10
				return user, nil
			})

		created, err := service.CreateUser(&domain.User{
			Name:         "Ana",
			Lastname:     "Silva",
			Email:        " Ana@Exemplo.COM ",
			PasswordHash: "Senha@123",
		})

		require.NoError(t, err)
		assert.Equal(t, 10, created.ID)
		assert.Equal(t, "ana@exemplo.com", saved.Email)
		assert.Equal(t, 2, saved.RoleID)
		assert.False(t, saved.Active)

		// A senha nunca é persistida em claro
		assert.NotEqual(t, "Senha@123", saved.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.PasswordHash), []byte("Senha@123")))
	})

	t.Run("email já cadastrado", func(t *testing.T) {
		mockRepo.EXPECT().GetUserByEmail("ana@exemplo.com").Return(&domain.User{ID: 10}, nil)

		_, err := service.CreateUser(&domain.User{
			Name:         "Ana",
			Lastname:     "Silva",
			Email:        "ana@exemplo.com",
			PasswordHash: "Senha@123",
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})

	t.Run("dados obrigatórios ausentes", func(t *testing.T) {
		_, err := service.CreateUser(&domain.User{Name: "Ana"})

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})
}

func TestGenerateStrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockRepo, testConfig())

	t.Run("administrador gera senha forte para o alvo", func(t *testing.T) {
		admin := &domain.User{ID: 1, RoleID: 1}
		target := &domain.User{ID: 2, RoleID: 2, PasswordHash: "antigo"}

		mockRepo.EXPECT().GetUserByID(1).Return(admin, nil)
		mockRepo.EXPECT().GetUserByID(2).Return(target, nil)
		mockRepo.EXPECT().UpdateUser(target).Return(nil)

		password, err := service.GenerateStrongPassword(1, 2)
		require.NoError(t, err)

		// A senha gerada tem de passar na própria validação de força
		assert.NoError(t, service.ValidatePasswordStrength(password))
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(target.PasswordHash), []byte(password)))
	})

	t.Run("não administrador é recusado", func(t *testing.T) {
		mockRepo.EXPECT().GetUserByID(3).Return(&domain.User{ID: 3, RoleID: 2}, nil)

		_, err := service.GenerateStrongPassword(3, 2)
		assert.ErrorIs(t, err, ErrNoAdminPrivileges)
	})
}

func TestValidatePasswordStrength(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(mocks.NewMockUserRepository(ctrl), testConfig())

	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{"senha forte", "Senha@123", true},
		{"curta demais", "S@1a", false},
		{"sem maiúscula", "senha@123", false},
		{"sem minúscula", "SENHA@123", false},
		{"sem número", "Senha@abc", false},
		{"sem caractere especial", "Senha1234", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.ValidatePasswordStrength(tt.password)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockRepo, testConfig())

	t.Run("troca de senha com credenciais corretas", func(t *testing.T) {
		user := &domain.User{ID: 1, PasswordHash: hashOf(t, "Antiga@123")}

		mockRepo.EXPECT().GetUserByID(1).Return(user, nil)
		mockRepo.EXPECT().UpdateUser(user).Return(nil)

		err := service.ChangePassword(1, "Antiga@123", "Nova@Senha1")
		require.NoError(t, err)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Nova@Senha1")))
	})

	t.Run("senha atual incorreta", func(t *testing.T) {
		user := &domain.User{ID: 1, PasswordHash: hashOf(t, "Antiga@123")}
		mockRepo.EXPECT().GetUserByID(1).Return(user, nil)

		err := service.ChangePassword(1, "errada", "Nova@Senha1")
		assert.Error(t, err)
	})

	t.Run("nova senha fraca", func(t *testing.T) {
		user := &domain.User{ID: 1, PasswordHash: hashOf(t, "Antiga@123")}
		mockRepo.EXPECT().GetUserByID(1).Return(user, nil)

		err := service.ChangePassword(1, "Antiga@123", "fraca")
		assert.Error(t, err)
	})
}
