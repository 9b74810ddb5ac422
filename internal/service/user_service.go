package service

import (
	"context"
	log "log/slog"
	"strconv"

	"github.com/Sani1189/the-daily-sunrise-sub000/internal/api/dto"
	"github.com/Sani1189/the-daily-sunrise-sub000/internal/model"
	"github.com/Sani1189/the-daily-sunrise-sub000/internal/pkg/consts"
	"github.com/Sani1189/the-daily-sunrise-sub000/internal/pkg/redis"
	"github.com/Sani1189/the-daily-sunrise-sub000/internal/pkg/security"
	"github.com/Sani1189/the-daily-sunrise-sub000/internal/repository"
	"github.com/jinzhu/copier"
)

type UserService interface {
	// Register 管理员创建后台账号（编辑或管理员）
	Register(ctx context.Context, req *dto.RegisterDTO) (*dto.UserDTO, error)
	Login(ctx context.Context, req *dto.CredentialDTO) (*dto.LoginResultDTO, error)
	Logout(ctx context.Context, userID uint64) error
	GetProfile(ctx context.Context, userID uint64) (*dto.UserDTO, error)
	ChangePassword(ctx context.Context, userID uint64, req *dto.ChangePasswordDTO) error
}

type userServiceImpl struct {
	userRepo repository.UserRepo
	roleRepo repository.RoleRepo
}

func NewUserService(userRepo repository.UserRepo, roleRepo repository.RoleRepo) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
		roleRepo: roleRepo,
	}
}

func (s *userServiceImpl) Register(ctx context.Context, req *dto.RegisterDTO) (*dto.UserDTO, error) {
	existing, err := s.userRepo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, wrapStorage(err)
	}
	if existing != nil {
		return nil, ErrUserExist
	}
	existing, err = s.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, wrapStorage(err)
	}
	if existing != nil {
		return nil, ErrUserExist
	}

	hashed, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, UnExpectedError
	}

	user := &model.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hashed,
		Nickname: req.Nickname,
	}
	if err = s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, wrapStorage(err)
	}

	roleName := req.Role
	if roleName == "" {
		roleName = consts.RoleEditor
	}
	role, err := s.roleRepo.GetRoleByName(ctx, roleName)
	if err != nil {
		return nil, wrapStorage(err)
	}
	if role != nil {
		if err = s.roleRepo.AddUserRole(ctx, user.ID, role.ID); err != nil {
			return nil, wrapStorage(err)
		}
	}

	return s.GetProfile(ctx, user.ID)
}

func (s *userServiceImpl) Login(ctx context.Context, req *dto.CredentialDTO) (*dto.LoginResultDTO, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, wrapStorage(err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if user.IsBanned {
		return nil, ErrUserBan
	}

	if err = security.CheckPasswordHash(req.Password, user.Password); err != nil {
		return nil, ErrPasswordIncorrect
	}

	roles, err := s.roleRepo.GetUserRoles(ctx, user.ID)
	if err != nil {
		return nil, wrapStorage(err)
	}

	token, err := security.GenerateToken(user.ID, roles)
	if err != nil {
		return nil, UnExpectedError
	}

	// 只保存签名部分作为有效凭证，登出即失效
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return nil, UnExpectedError
	}
	if err = redis.SetWithExpiration(ctx, consts.LoginTokenKey+strconv.FormatUint(user.ID, 10), signature, security.JWTExpirationTime); err != nil {
		return nil, wrapStorage(err)
	}

	userDTO := toUserDTO(user, roles)
	return &dto.LoginResultDTO{Token: token, User: userDTO}, nil
}

func (s *userServiceImpl) Logout(ctx context.Context, userID uint64) error {
	if err := redis.DeleteKey(ctx, consts.LoginTokenKey+strconv.FormatUint(userID, 10)); err != nil {
		log.WarnContext(ctx, "清除登录态失败", "user_id", userID, "error", err.Error())
		return wrapStorage(err)
	}
	return nil
}

func (s *userServiceImpl) GetProfile(ctx context.Context, userID uint64) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, wrapStorage(err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	roles, err := s.roleRepo.GetUserRoles(ctx, userID)
	if err != nil {
		return nil, wrapStorage(err)
	}
	return toUserDTO(user, roles), nil
}

func (s *userServiceImpl) ChangePassword(ctx context.Context, userID uint64, req *dto.ChangePasswordDTO) error {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return wrapStorage(err)
	}
	if user == nil {
		return ErrUserNotFound
	}

	if err = security.CheckPasswordHash(req.OldPassword, user.Password); err != nil {
		return ErrPasswordIncorrect
	}

	hashed, err := security.HashPassword(req.NewPassword)
	if err != nil {
		return UnExpectedError
	}
	user.Password = hashed
	if err = s.userRepo.UpdateUser(ctx, user); err != nil {
		return wrapStorage(err)
	}

	// 改密后强制重新登录
	return s.Logout(ctx, userID)
}

func toUserDTO(user *model.User, roles []string) *dto.UserDTO {
	res := &dto.UserDTO{}
	_ = copier.Copy(res, user)
	res.UserID = user.ID
	res.Roles = roles
	return res
}
