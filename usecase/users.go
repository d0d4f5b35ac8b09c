package usecase

import (
	"context"
	"errors"
	"time"

	"main/model"
	"main/repository"
	"main/services"
	"main/utils"
)

type UserService struct {
	UsersRepo *repository.UserRepo
}

// CreateUser registers a new account. The username must be unused; the
// password arrives plain and is stored as an argon2id hash.
func (svc *UserService) CreateUser(ctx context.Context, user *model.User, plainPassword string) error {
	if user.Username == "" {
		return errors.New("username is required")
	}

	existing, err := svc.UsersRepo.FindUserByUsername(ctx, user.Username)
	if err != nil {
		return err
	}
	if existing != nil {
		return errors.New("username already exists")
	}

	hashed, err := services.HashPassword(plainPassword)
	if err != nil {
		return err
	}

	user.UserID = utils.GenerateUserID()
	user.Password = hashed
	user.CreatedAt = time.Now()

	_, err = svc.UsersRepo.AddUser(ctx, user)
	return err
}

func (svc *UserService) FindUserByUsername(ctx context.Context, username string) (*model.User, error) {
	return svc.UsersRepo.FindUserByUsername(ctx, username)
}

func (svc *UserService) FindUser(ctx context.Context, userID string) (*model.User, error) {
	return svc.UsersRepo.FindUser(ctx, userID)
}

// ChangePassword verifies the current password before storing a new hash.
func (svc *UserService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	user, err := svc.UsersRepo.FindUser(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return errors.New("user not found")
	}

	match, err := services.VerifyPassword(user.Password, currentPassword)
	if err != nil {
		return err
	}
	if !match {
		return errors.New("incorrect password")
	}

	hashed, err := services.HashPassword(newPassword)
	if err != nil {
		return err
	}

	_, err = svc.UsersRepo.UpdateUserPassword(ctx, userID, hashed)
	return err
}
