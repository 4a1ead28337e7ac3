package service

import (
	"corralsnake_backend/internal/model"
	"corralsnake_backend/internal/repository"
	"corralsnake_backend/internal/util"
	"context"
	"fmt"
	"io"

	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	UserRepo *repository.UserRepository
	Storage  *StorageService
}

func NewUserService(userRepo *repository.UserRepository, storage *StorageService) *UserService {
	return &UserService{
		UserRepo: userRepo,
		Storage:  storage,
	}
}

// UserUpdate 账号可更新的字段 邮箱/用户名/角色注册后不可变
type UserUpdate struct {
	FirstName *string
	LastName  *string
	Password  *string
}

func (s *UserService) GetByID(id uint) (*model.User, error) {
	return s.UserRepo.FindByID(id)
}

// Update 更新当前用户资料 partial为false时要求全部字段齐备
func (s *UserService) Update(userID uint, update UserUpdate, partial bool) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, util.ErrUserNotFound
	}

	if !partial && (update.FirstName == nil || update.LastName == nil) {
		return nil, fmt.Errorf("%w: first_name and last_name are required", util.ErrValidation)
	}

	if update.FirstName != nil {
		user.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		user.LastName = *update.LastName
	}
	if update.Password != nil {
		if err := util.ValidatePassword(*update.Password); err != nil {
			return nil, err
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*update.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hashed)
	}

	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete 删除当前用户 头像非默认时一并从存储移除
func (s *UserService) Delete(ctx context.Context, userID uint) error {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return util.ErrUserNotFound
	}

	if err := s.UserRepo.Delete(user.ID); err != nil {
		return err
	}

	if user.Pfp != "" && user.Pfp != model.DefaultPfp {
		s.Storage.Delete(ctx, user.Pfp)
	}
	return nil
}

// UploadPfp 上传头像 统一归一为256x256后入库
func (s *UserService) UploadPfp(ctx context.Context, userID uint, reader io.Reader) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, util.ErrUserNotFound
	}

	resized, err := util.ResizeSquare(reader, util.PfpSize)
	if err != nil {
		return nil, err
	}

	filename := fmt.Sprintf("pfps/%s.png", model.GenerateUUID())
	if _, err := s.Storage.Upload(ctx, filename, resized, int64(resized.Len()), "image/png"); err != nil {
		return nil, err
	}

	old := user.Pfp
	user.Pfp = filename
	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}

	if old != "" && old != model.DefaultPfp {
		s.Storage.Delete(ctx, old)
	}
	return user, nil
}
