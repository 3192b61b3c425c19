package settings

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"vidyalaya/app/config"
	"vidyalaya/app/database"
	"vidyalaya/app/models"
)

var validate = validator.New()

func GetSchoolDetailsAPI(c *fiber.Ctx) error {
	details, err := database.GetSchoolDetails(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch school details"})
	}
	if details == nil {
		return c.Status(404).JSON(fiber.Map{"error": "School details not set up yet"})
	}
	return c.JSON(fiber.Map{"school": details})
}

func UpsertSchoolDetailsAPI(c *fiber.Ctx) error {
	type SchoolRequest struct {
		Name        string `json:"name" validate:"required"`
		Address     string `json:"address"`
		Phone       string `json:"phone"`
		Email       string `json:"email" validate:"omitempty,email"`
		Affiliation string `json:"affiliation"`
		LogoURL     string `json:"logo_url"`
	}

	var req SchoolRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed: " + err.Error()})
	}

	details := &models.SchoolDetails{
		Name:        req.Name,
		Address:     req.Address,
		Phone:       req.Phone,
		Email:       req.Email,
		Affiliation: req.Affiliation,
		LogoURL:     req.LogoURL,
	}
	if err := database.UpsertSchoolDetails(config.GetDB(), details); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save school details"})
	}

	return c.JSON(fiber.Map{
		"message": "School details saved",
		"school":  details,
	})
}

func GetClassesAPI(c *fiber.Ctx) error {
	classes, err := database.GetAllClasses(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch classes"})
	}
	return c.JSON(fiber.Map{
		"classes": classes,
		"count":   len(classes),
	})
}

type ClassRequest struct {
	Name     string `json:"name" validate:"required"`
	Section  string `json:"section"`
	Position int    `json:"position" validate:"gte=0"`
}

func CreateClassAPI(c *fiber.Ctx) error {
	var req ClassRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Class name is required"})
	}

	class := &models.Class{Name: req.Name, Section: req.Section, Position: req.Position}
	if err := database.CreateClass(config.GetDB(), class); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create class"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Class created",
		"class":   class,
	})
}

func UpdateClassAPI(c *fiber.Ctx) error {
	var req ClassRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Class name is required"})
	}

	class := &models.Class{ID: c.Params("classId"), Name: req.Name, Section: req.Section, Position: req.Position}
	if err := database.UpdateClass(config.GetDB(), class); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update class"})
	}

	return c.JSON(fiber.Map{
		"message": "Class updated",
		"class":   class,
	})
}

func DeleteClassAPI(c *fiber.Ctx) error {
	if err := database.SoftDeleteClass(config.GetDB(), c.Params("classId")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete class"})
	}
	return c.JSON(fiber.Map{"message": "Class deleted"})
}

func GetClassSubjectsAPI(c *fiber.Ctx) error {
	subjects, err := database.GetClassSubjectMap(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch subjects"})
	}
	return c.JSON(fiber.Map{"subjects": subjects})
}

func SetClassSubjectsAPI(c *fiber.Ctx) error {
	type SubjectsRequest struct {
		Subjects []string `json:"subjects" validate:"required,min=1,dive,required"`
	}

	var req SubjectsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "At least one subject is required"})
	}

	if err := database.SetClassSubjects(config.GetDB(), c.Params("classId"), req.Subjects); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save subjects"})
	}

	return c.JSON(fiber.Map{"message": "Subjects saved"})
}

func SearchParentsAPI(c *fiber.Ctx) error {
	term := c.Query("q")
	if term == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Search term is required"})
	}
	limit := c.QueryInt("limit", 25)

	parents, err := database.SearchParents(config.GetDB(), term, limit)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to search parents"})
	}

	return c.JSON(fiber.Map{
		"parents": parents,
		"count":   len(parents),
	})
}
