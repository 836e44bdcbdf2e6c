package application

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/kaiwenliu/careconnect-go/internal/api/middleware"
	"github.com/kaiwenliu/careconnect-go/internal/domain/user"
	"github.com/kaiwenliu/careconnect-go/internal/repository"
	"github.com/kaiwenliu/careconnect-go/internal/repository/mock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func setupUserServiceMocks(t *testing.T) (*UserService, *mock.MockUserRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })
	muteAudit(t)

	mockUser := mock.NewMockUserRepo(ctrl)
	repos := &repository.Repos{
		User: mockUser,
	}
	return NewUserService(repos), mockUser
}

func stubToken(t *testing.T) {
	old := middleware.GenerateToken
	middleware.GenerateToken = func(uint, string, string, time.Duration) (string, error) {
		return "token123", nil
	}
	t.Cleanup(func() { middleware.GenerateToken = old })
}

// --------------------- Login ---------------------

func TestLogin_Success(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)
	stubToken(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.DefaultCost)
	mockUser.EXPECT().GetUserByRoleAndUsername(user.RolePIN, "pin_user1").
		Return(user.User{ID: 1, Role: user.RolePIN, Username: "pin_user1", Password: string(hashed), IsActive: true}, nil)

	u, token, err := svc.Login(user.LoginInput{Role: user.RolePIN, Username: "pin_user1", Password: "secret"})
	assert.NoError(t, err)
	assert.Equal(t, "token123", token)
	assert.Equal(t, uint(1), u.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.DefaultCost)
	mockUser.EXPECT().GetUserByRoleAndUsername(user.RolePIN, "pin_user1").
		Return(user.User{ID: 1, Password: string(hashed), IsActive: true}, nil)

	_, _, err := svc.Login(user.LoginInput{Role: user.RolePIN, Username: "pin_user1", Password: "wrong"})
	assert.Equal(t, ErrInvalidCredentials, err)
}

// The same username under a different role is a different account, so a
// role mismatch fails like unknown credentials.
func TestLogin_RoleMismatch(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByRoleAndUsername(user.RoleCSR, "pin_user1").
		Return(user.User{}, gorm.ErrRecordNotFound)

	_, _, err := svc.Login(user.LoginInput{Role: user.RoleCSR, Username: "pin_user1", Password: "secret"})
	assert.Equal(t, ErrInvalidCredentials, err)
}

func TestLogin_Suspended(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.DefaultCost)
	mockUser.EXPECT().GetUserByRoleAndUsername(user.RolePIN, "pin_user1").
		Return(user.User{ID: 1, Password: string(hashed), IsActive: false}, nil)

	_, _, err := svc.Login(user.LoginInput{Role: user.RolePIN, Username: "pin_user1", Password: "secret"})
	assert.Equal(t, ErrInvalidCredentials, err)
}

// --------------------- Register ---------------------

func TestRegister_Success(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByUsername("csr_user9").Return(user.User{}, gorm.ErrRecordNotFound)
	mockUser.EXPECT().CreateUser(gomock.Any()).DoAndReturn(func(u *user.User) error {
		u.ID = 9
		return nil
	})
	mockUser.EXPECT().SaveProfile(gomock.Any()).DoAndReturn(func(p *user.Profile) error {
		assert.Equal(t, uint(9), p.UserID)
		assert.Equal(t, "Carla", p.FullName)
		return nil
	})

	u, err := svc.Register(nil, user.CreateUserInput{
		Role:     user.RoleCSR,
		Username: "csr_user9",
		Password: "secret9",
		FullName: ptrString("Carla"),
	})
	assert.NoError(t, err)
	assert.Equal(t, uint(9), u.ID)
	assert.True(t, u.IsActive)
	assert.NotEqual(t, "secret9", u.Password)
}

func TestRegister_UsernameTaken(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByUsername("admin1").Return(user.User{ID: 1}, nil)

	_, err := svc.Register(nil, user.CreateUserInput{Role: user.RoleUserAdmin, Username: "admin1", Password: "secret"})
	assert.Equal(t, ErrUsernameTaken, err)
}

// --------------------- Suspend / Activate ---------------------

func TestSuspendUser(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByID(uint(5)).Return(user.User{ID: 5, IsActive: true}, nil)
	mockUser.EXPECT().SaveUser(gomock.Any()).DoAndReturn(func(u *user.User) error {
		assert.False(t, u.IsActive)
		return nil
	})

	assert.NoError(t, svc.Suspend(nil, 5))
}

func TestActivateUser_NotFound(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByID(uint(5)).Return(user.User{}, gorm.ErrRecordNotFound)

	assert.Equal(t, ErrUserNotFound, svc.Activate(nil, 5))
}

// --------------------- Update ---------------------

func TestUpdateUser_ProfileUpsert(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByID(uint(5)).Return(user.User{ID: 5, Username: "pin_user1", IsActive: true}, nil)
	mockUser.EXPECT().SaveUser(gomock.Any()).Return(nil)
	mockUser.EXPECT().SaveProfile(gomock.Any()).DoAndReturn(func(p *user.Profile) error {
		assert.Equal(t, uint(5), p.UserID)
		assert.Equal(t, "new@careconnect.local", p.Email)
		return nil
	})

	u, err := svc.Update(nil, 5, user.UpdateUserInput{Email: ptrString("new@careconnect.local")})
	assert.NoError(t, err)
	assert.Equal(t, "new@careconnect.local", u.Profile.Email)
}

func TestUpdateUser_UsernameConflict(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByID(uint(5)).Return(user.User{ID: 5, Username: "pin_user1"}, nil)
	mockUser.EXPECT().GetUserByUsername("csr_user1").Return(user.User{ID: 2}, nil)

	_, err := svc.Update(nil, 5, user.UpdateUserInput{Username: ptrString("csr_user1")})
	assert.Equal(t, ErrUsernameTaken, err)
}

// --------------------- Search ---------------------

func TestSearchUsers_Paginates(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	items := []user.User{{ID: 1}, {ID: 2}}
	mockUser.EXPECT().SearchUsers("carl", 1, 2).Return(items, int64(3), nil)

	page, err := svc.Search(" carl ", 1, 2)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), page.Total)
	assert.Equal(t, 2, page.Pages)
	assert.Len(t, page.Items, 2)
}
