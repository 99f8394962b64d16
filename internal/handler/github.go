package handler

import (
	"log"
	"strings"

	"github.com/DarkTheory001/DevNest/internal/model"
	"github.com/DarkTheory001/DevNest/internal/service"

	"github.com/gofiber/fiber/v2"
)

type GitHubHandler struct {
	githubSvc *service.GitHubService
}

func NewGitHubHandler(githubSvc *service.GitHubService) *GitHubHandler {
	return &GitHubHandler{githubSvc: githubSvc}
}

func (h *GitHubHandler) ListRepos(c *fiber.Ctx) error {
	repos, err := h.githubSvc.ListRepositories(c.Context())
	if err != nil {
		log.Printf("[GitHub] ListRepos error: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to fetch repositories"})
	}

	if repos == nil {
		repos = []model.GitHubRepo{}
	}
	return c.JSON(repos)
}

func (h *GitHubHandler) GetContents(c *fiber.Ctx) error {
	owner := c.Params("owner")
	repo := c.Params("repo")
	path := c.Query("path")

	content, err := h.githubSvc.GetContents(c.Context(), owner, repo, path)
	if err != nil {
		log.Printf("[GitHub] GetContents error: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to fetch repository content"})
	}

	c.Set("Content-Type", "application/json")
	return c.Send(content)
}

func (h *GitHubHandler) CreateRepo(c *fiber.Ctx) error {
	var req model.CreateRepoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "name is required"})
	}

	repo, err := h.githubSvc.CreateRepository(c.Context(), req.Name, req.Description, req.IsPrivate)
	if err != nil {
		log.Printf("[GitHub] CreateRepo error: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to create repository"})
	}

	return c.Status(201).JSON(repo)
}
