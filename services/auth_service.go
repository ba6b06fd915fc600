package services

import (
	"errors"
	"strings"

	"github.com/Mamora-sema/Food-diary/config"
	"github.com/Mamora-sema/Food-diary/models"
	"github.com/Mamora-sema/Food-diary/utils"
)

func RegisterUser(username, password, passwordConfirm string) (*models.User, error) {
	username = strings.TrimSpace(username)

	if username == "" || password == "" {
		return nil, errors.New("username and password are required")
	}
	if len(username) < 3 {
		return nil, errors.New("username must be at least 3 characters")
	}
	if len(password) < 4 {
		return nil, errors.New("password must be at least 4 characters")
	}
	if password != passwordConfirm {
		return nil, errors.New("passwords do not match")
	}

	var existing models.User
	if err := config.DB.Where("username = ?", username).First(&existing).Error; err == nil {
		return nil, errors.New("username already taken")
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{Username: username, Password: hashed}
	if err := config.DB.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func AuthenticateUser(username, password string) (string, error) {
	var user models.User
	result := config.DB.Where("username = ?", strings.TrimSpace(username)).First(&user)
	if result.Error != nil {
		return "", errors.New("invalid username or password")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", errors.New("invalid username or password")
	}

	return utils.GenerateJWT(user.ID, user.Username)
}
