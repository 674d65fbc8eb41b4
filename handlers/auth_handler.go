package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Rashmika-Bandara/Save2Serve/identity"
	"github.com/Rashmika-Bandara/Save2Serve/models"
	"github.com/Rashmika-Bandara/Save2Serve/utils"
)

type AuthHandler struct {
	DB       *gorm.DB
	Provider identity.Provider
	TokenTTL time.Duration
}

func NewAuthHandler(db *gorm.DB, provider identity.Provider, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{DB: db, Provider: provider, TokenTTL: tokenTTL}
}

// SignupRequest defines the payload for registration
type SignupRequest struct {
	FullName string `json:"full_name"`
	GoodName string `json:"good_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	DOB      string `json:"dob"` // date only, e.g. "2000-01-31"
	Role     string `json:"role"`
}

// LoginRequest defines the payload for login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	if req.FullName == "" || req.GoodName == "" || req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Full name, good name, email and password are required"})
	}
	if req.Role != models.RoleSeller && req.Role != models.RoleBuyer {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Role must be Seller or Buyer"})
	}

	var dob time.Time
	if req.DOB != "" {
		var err error
		dob, err = time.Parse("2006-01-02", req.DOB)
		if err != nil {
			dob, err = time.Parse(time.RFC3339, req.DOB)
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid date of birth"})
			}
		}
	}

	var existing models.User
	if err := h.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Email already exists"})
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not hash password"})
	}

	user := models.User{
		FullName: req.FullName,
		GoodName: req.GoodName,
		Email:    req.Email,
		Password: hashedPassword,
		Phone:    req.Phone,
		DOB:      dob,
		Role:     req.Role,
	}

	if err := h.DB.Create(&user).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Email already exists"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "User registered successfully"})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	var user models.User
	if err := h.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
	}

	if !utils.CheckPasswordHash(req.Password, user.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
	}

	token, err := h.Provider.Issue(identity.Identity{
		UserID: user.ID,
		Name:   user.GoodName,
		Role:   user.Role,
	}, h.TokenTTL)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not login"})
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user": fiber.Map{
			"id":        user.ID,
			"full_name": user.FullName,
			"good_name": user.GoodName,
			"email":     user.Email,
			"role":      user.Role,
		},
	})
}
