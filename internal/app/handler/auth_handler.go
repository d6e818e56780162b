package handler

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/sirupsen/logrus"

	"serviapp/internal/app/config"
	"serviapp/internal/app/ds"
	"serviapp/internal/app/dto"
	"serviapp/internal/app/redis"
	"serviapp/internal/app/repository"
	"serviapp/internal/app/role"
)

type AuthHandler struct {
	Repository  *repository.Repository
	RedisClient *redis.Client
	Config      *config.Config
}

func NewAuthHandler(r *repository.Repository, redisClient *redis.Client, config *config.Config) *AuthHandler {
	return &AuthHandler{
		Repository:  r,
		RedisClient: redisClient,
		Config:      config,
	}
}

// generateHashString genera un hash SHA-1 de la cadena
func generateHashString(s string) string {
	h := sha1.New()
	h.Write([]byte(s))
	return hex.EncodeToString(h.Sum(nil))
}

func (h *AuthHandler) generateToken(user *ds.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(h.Config.JWT.SigningMethod, ds.JWTClaims{
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: now.Add(h.Config.JWT.ExpiresIn).Unix(),
			IssuedAt:  now.Unix(),
			Issuer:    "serviapp",
		},
		UserID: user.ID,
		Role:   role.Role(user.Role),
	})

	return token.SignedString([]byte(h.Config.JWT.Token))
}

func userResponse(user *ds.User) dto.UserResponse {
	return dto.UserResponse{
		ID:       user.ID,
		Login:    user.Login,
		FullName: user.FullName,
		Email:    user.Email,
		Telefono: user.Telefono,
		Role:     user.Role,
	}
}

// RegisterUser registra un usuario nuevo
// @Summary Registro de usuario
// @Description Crea un usuario nuevo (cliente o proveedor) y devuelve un token JWT
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Datos de registro"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/auth/register [post]
func (h *AuthHandler) RegisterUser(ctx *gin.Context) {
	var request dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	exists, _ := h.Repository.UserExistsByLogin(request.Login)
	if exists {
		h.errorHandler(ctx, http.StatusBadRequest, errors.New("ya existe un usuario con ese login"))
		return
	}

	hashedPassword := generateHashString(request.Password)

	// El registro solo admite cliente o proveedor; admin se crea aparte
	userRole := request.Role
	if userRole != int(role.Cliente) && userRole != int(role.Proveedor) {
		userRole = int(role.Cliente)
	}

	user, err := h.Repository.CreateUser(request.Login, hashedPassword, request.FullName, request.Email, request.Telefono, userRole)
	if err != nil {
		logrus.Error("Error creating user: ", err)
		h.errorHandler(ctx, http.StatusInternalServerError, errors.New("error al registrar el usuario"))
		return
	}

	accessToken, err := h.generateToken(user)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "usuario registrado correctamente",
		"user":    userResponse(user),
		"data":    accessToken, // token JWT
	})
}

// LoginUser autentica un usuario
// @Summary Inicio de sesión
// @Description Autentica al usuario y devuelve un token JWT
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credenciales"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/auth/login [post]
func (h *AuthHandler) LoginUser(ctx *gin.Context) {
	var request dto.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	hashedPassword := generateHashString(request.Password)

	user, err := h.Repository.GetUserByLogin(request.Login)
	if err != nil || user.Password != hashedPassword {
		h.errorHandler(ctx, http.StatusUnauthorized, errors.New("login o contraseña incorrectos"))
		return
	}

	accessToken, err := h.generateToken(user)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Token: accessToken,
		User:  userResponse(user),
	})
}

// LogoutUser cierra la sesión revocando el token
// @Summary Cierre de sesión
// @Description Agrega el token JWT actual a la blacklist de Redis hasta que expire
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/auth/logout [post]
func (h *AuthHandler) LogoutUser(ctx *gin.Context) {
	jwtStr := ctx.GetHeader("Authorization")
	if len(jwtStr) > 7 && jwtStr[:7] == "Bearer " {
		jwtStr = jwtStr[7:]
	}
	if jwtStr == "" {
		h.errorHandler(ctx, http.StatusBadRequest, errors.New("falta el token"))
		return
	}

	token, err := jwt.ParseWithClaims(jwtStr, &ds.JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(h.Config.JWT.Token), nil
	})
	if err != nil || !token.Valid {
		h.errorHandler(ctx, http.StatusBadRequest, errors.New("token inválido"))
		return
	}

	claims := token.Claims.(*ds.JWTClaims)

	// TTL restante del token: después de eso Redis lo descarta solo
	ttl := time.Until(time.Unix(claims.ExpiresAt, 0))
	if ttl < 0 {
		ttl = time.Second
	}

	if err = h.RedisClient.WriteJWTToBlacklist(context.Background(), jwtStr, ttl); err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{
		Status:  "success",
		Message: "sesión cerrada",
	})
}

// GetUserProfile devuelve el perfil del usuario autenticado
// @Summary Perfil del usuario
// @Description Devuelve los datos del usuario autenticado
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/auth/profile [get]
func (h *AuthHandler) GetUserProfile(ctx *gin.Context) {
	userID, exists := ctx.Get("userID")
	if !exists {
		h.errorHandler(ctx, http.StatusUnauthorized, errors.New("usuario no autenticado"))
		return
	}

	id, _ := userID.(uint)
	user, err := h.Repository.GetUserByID(id)
	if err != nil {
		h.errorHandler(ctx, http.StatusNotFound, errors.New("usuario no encontrado"))
		return
	}

	ctx.JSON(http.StatusOK, userResponse(user))
}

// UpdateProfile actualiza el perfil del usuario autenticado
// @Summary Actualización de perfil
// @Description Modifica nombre, email, teléfono o contraseña del usuario
// @Tags Authentication
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateProfileRequest true "Campos a actualizar"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/auth/profile [put]
func (h *AuthHandler) UpdateProfile(ctx *gin.Context) {
	userID, exists := ctx.Get("userID")
	if !exists {
		h.errorHandler(ctx, http.StatusUnauthorized, errors.New("usuario no autenticado"))
		return
	}
	id, _ := userID.(uint)

	var request dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	user, err := h.Repository.GetUserByID(id)
	if err != nil {
		h.errorHandler(ctx, http.StatusNotFound, errors.New("usuario no encontrado"))
		return
	}

	if request.FullName != "" {
		user.FullName = request.FullName
	}
	if request.Email != "" {
		user.Email = request.Email
	}
	if request.Telefono != "" {
		user.Telefono = request.Telefono
	}
	if request.Password != "" {
		user.Password = generateHashString(request.Password)
	}

	if err := h.Repository.UpdateUser(user); err != nil {
		logrus.Error("Error updating user: ", err)
		h.errorHandler(ctx, http.StatusInternalServerError, errors.New("error al actualizar el perfil"))
		return
	}

	ctx.JSON(http.StatusOK, userResponse(user))
}

// errorHandler manejo centralizado de errores de autenticación
func (h *AuthHandler) errorHandler(ctx *gin.Context, errorStatusCode int, err error) {
	logrus.Error(err.Error())
	ctx.JSON(errorStatusCode, dto.ErrorResponse{
		Status:  "fail",
		Message: err.Error(),
	})
}
