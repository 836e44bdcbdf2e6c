package application

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/kaiwenliu/careconnect-go/internal/api/middleware"
	"github.com/kaiwenliu/careconnect-go/internal/config"
	"github.com/kaiwenliu/careconnect-go/internal/domain/user"
	"github.com/kaiwenliu/careconnect-go/internal/repository"
	"github.com/kaiwenliu/careconnect-go/pkg/types"
	"github.com/kaiwenliu/careconnect-go/pkg/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidCredentials  = errors.New("invalid credentials or suspended account")
	ErrUsernameTaken       = errors.New("username already taken")
	ErrPasswordHashFailure = errors.New("failed to hash password")
)

// UserService is the account directory: login resolves an actor id and
// role, the admin endpoints manage accounts and profiles.
type UserService struct {
	Repos *repository.Repos
}

func NewUserService(repos *repository.Repos) *UserService {
	return &UserService{
		Repos: repos,
	}
}

// Login authenticates by role, username and password. Suspended
// accounts fail the same way bad credentials do.
func (s *UserService) Login(input user.LoginInput) (user.User, string, error) {
	u, err := s.Repos.User.GetUserByRoleAndUsername(input.Role, input.Username)
	if err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}
	if !u.IsActive {
		return user.User{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(input.Password)); err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}

	token, err := middleware.GenerateToken(u.ID, u.Username, u.Role, config.SessionTTL)
	if err != nil {
		return user.User{}, "", err
	}

	return u, token, nil
}

func (s *UserService) Register(c *gin.Context, input user.CreateUserInput) (*user.User, error) {
	_, err := s.Repos.User.GetUserByUsername(input.Username)
	if err == nil {
		return nil, ErrUsernameTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrPasswordHashFailure
	}

	u := &user.User{
		Role:     input.Role,
		Username: input.Username,
		Password: string(hashed),
		IsActive: true,
	}
	if input.Active != nil {
		u.IsActive = *input.Active
	}

	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.User.CreateUser(u); err != nil {
			return err
		}
		profile := &user.Profile{UserID: u.ID}
		applyProfile(profile, input.FullName, input.Email, input.Phone)
		if err := tx.User.SaveProfile(profile); err != nil {
			return err
		}
		u.Profile = profile
		return nil
	})
	if err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(c, "create", "user", fmt.Sprintf("id=%d", u.ID), nil, u, "", s.Repos.Audit)

	return u, nil
}

func (s *UserService) Update(c *gin.Context, id uint, input user.UpdateUserInput) (*user.User, error) {
	u, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		return nil, ErrUserNotFound
	}

	oldUser := u

	if input.Role != nil {
		u.Role = *input.Role
	}
	if input.Username != nil {
		username := strings.TrimSpace(*input.Username)
		if username != u.Username {
			if _, err := s.Repos.User.GetUserByUsername(username); err == nil {
				return nil, ErrUsernameTaken
			}
			u.Username = username
		}
	}
	if input.Password != nil && *input.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, ErrPasswordHashFailure
		}
		u.Password = string(hashed)
	}
	if input.Active != nil {
		u.IsActive = *input.Active
	}

	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.User.SaveUser(&u); err != nil {
			return err
		}
		profile := u.Profile
		if profile == nil {
			profile = &user.Profile{UserID: u.ID}
		}
		applyProfile(profile, input.FullName, input.Email, input.Phone)
		if err := tx.User.SaveProfile(profile); err != nil {
			return err
		}
		u.Profile = profile
		return nil
	})
	if err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(c, "update", "user", fmt.Sprintf("id=%d", u.ID), oldUser, u, "", s.Repos.Audit)

	return &u, nil
}

func (s *UserService) Suspend(c *gin.Context, id uint) error {
	return s.setActive(c, id, false, "suspend")
}

func (s *UserService) Activate(c *gin.Context, id uint) error {
	return s.setActive(c, id, true, "activate")
}

func (s *UserService) setActive(c *gin.Context, id uint, active bool, action string) error {
	u, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		return ErrUserNotFound
	}
	u.IsActive = active
	if err := s.Repos.User.SaveUser(&u); err != nil {
		return err
	}

	utils.LogAuditWithConsole(c, action, "user", fmt.Sprintf("id=%d", u.ID), nil, nil, "", s.Repos.Audit)

	return nil
}

func (s *UserService) Get(id uint) (*user.User, error) {
	u, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return &u, nil
}

func (s *UserService) Search(text string, page, perPage int) (types.Page[user.User], error) {
	items, total, err := s.Repos.User.SearchUsers(strings.TrimSpace(text), page, perPage)
	if err != nil {
		return types.Page[user.User]{}, err
	}
	return types.NewPage(items, total, page, perPage), nil
}

func applyProfile(p *user.Profile, fullName, email, phone *string) {
	if fullName != nil {
		p.FullName = *fullName
	}
	if email != nil {
		p.Email = *email
	}
	if phone != nil {
		p.Phone = *phone
	}
}
