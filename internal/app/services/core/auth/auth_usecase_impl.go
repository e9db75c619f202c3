package auth

import (
	"context"

	"clinicore-service/internal/app/contracts"
	"clinicore-service/internal/app/models"
	"clinicore-service/internal/pkg/dto/requests"
	"clinicore-service/internal/pkg/dto/responses"
	"clinicore-service/internal/pkg/exceptions"
	"clinicore-service/internal/pkg/utils"
)

type authUsecase struct {
	UserRepository contracts.UserRepository
	SessionService contracts.SessionService
}

func NewAuthUsecase(
	userMongoRepository contracts.UserRepository,
	sessionService contracts.SessionService,
) contracts.AuthUsecase {
	return &authUsecase{
		UserRepository: userMongoRepository,
		SessionService: sessionService,
	}
}

func (uc *authUsecase) Register(ctx context.Context, request *requests.Register) (*responses.Register, error) {
	utils.SanitizeRegisterRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	if request.Password != request.RetypePassword {
		return nil, exceptions.ErrPasswordsDoNotMatch()
	}

	existingUser, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, exceptions.ErrEmailAlreadyExist()
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	// The original sign-up form uses the email address as the username.
	user := &models.User{
		Email:    request.Email,
		Username: request.Email,
		Password: hashedPassword,
	}

	userID, err := uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = userID

	_, token, err := uc.SessionService.CreateSession(ctx, user)
	if err != nil {
		return nil, err
	}

	response := &responses.Register{
		UserID: userID,
		Token:  token,
	}
	return response, nil
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	utils.SanitizeLoginRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	if !utils.CheckPasswordHash(request.Password, user.Password) {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	_, token, err := uc.SessionService.CreateSession(ctx, user)
	if err != nil {
		return nil, err
	}

	response := &responses.Login{
		Token: token,
	}
	return response, nil
}

func (uc *authUsecase) Logout(ctx context.Context, session *models.Session) error {
	if session == nil {
		return exceptions.ErrUnauthenticated(nil)
	}
	return uc.SessionService.RevokeSession(ctx, session.SessionID)
}
