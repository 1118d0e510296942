// service/user_service.go
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/clinova/api/dao"
	logger "github.com/clinova/api/logging"
	"github.com/clinova/api/model"
)

// IUserService is the staff-administration surface: list, inspect and
// hard-delete identities. There is deliberately no password-change or
// role-change operation.
type IUserService interface {
	GetUser(ctx context.Context, userID string) (*model.User, error)
	ListUsers(ctx context.Context, limit, offset int) ([]*model.User, error)
	DeleteUser(ctx context.Context, userID string, deleterID string) error
}

type UserService struct {
	userDAO dao.UserDAO
}

var _ IUserService = &UserService{}

func NewUserService(userDAO dao.UserDAO) *UserService {
	return &UserService{userDAO: userDAO}
}

func (s *UserService) GetUser(ctx context.Context, userID string) (*model.User, error) {
	return s.userDAO.GetByID(ctx, userID)
}

func (s *UserService) ListUsers(ctx context.Context, limit, offset int) ([]*model.User, error) {
	return s.userDAO.List(ctx, limit, offset)
}

func (s *UserService) DeleteUser(ctx context.Context, userID string, deleterID string) error {
	if err := s.userDAO.Delete(ctx, userID); err != nil {
		return err
	}
	logger.Info("User deleted by administrator",
		zap.String("userID", userID),
		zap.String("deletedBy", deleterID))
	return nil
}
