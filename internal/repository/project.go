package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/DarkTheory001/DevNest/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProjectRepository struct {
	pool *pgxpool.Pool
}

func NewProjectRepository(pool *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{pool: pool}
}

const projectColumns = `id, user_id, name, description, type, status, repository_url, deployment_url,
       webhook_secret, env_variables, files, last_deployed, created_at, updated_at`

func scanProject(row pgx.Row) (*model.Project, error) {
	p := &model.Project{}
	var envRaw, filesRaw []byte
	err := row.Scan(
		&p.ID, &p.UserID, &p.Name, &p.Description, &p.Type, &p.Status,
		&p.RepositoryURL, &p.DeploymentURL, &p.WebhookSecret,
		&envRaw, &filesRaw, &p.LastDeployed, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.EnvVariables = map[string]string{}
	p.Files = map[string]string{}
	if len(envRaw) > 0 {
		_ = json.Unmarshal(envRaw, &p.EnvVariables)
	}
	if len(filesRaw) > 0 {
		_ = json.Unmarshal(filesRaw, &p.Files)
	}
	return p, nil
}

func (r *ProjectRepository) Create(ctx context.Context, userID, webhookSecret string, req *model.CreateProjectRequest) (*model.Project, error) {
	if req.EnvVariables == nil {
		req.EnvVariables = map[string]string{}
	}
	if req.Files == nil {
		req.Files = map[string]string{}
	}
	envRaw, err := json.Marshal(req.EnvVariables)
	if err != nil {
		return nil, fmt.Errorf("marshal env_variables: %w", err)
	}
	filesRaw, err := json.Marshal(req.Files)
	if err != nil {
		return nil, fmt.Errorf("marshal files: %w", err)
	}

	return scanProject(r.pool.QueryRow(ctx, `
		INSERT INTO projects (user_id, name, description, type, repository_url, webhook_secret, env_variables, files)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+projectColumns+`
	`, userID, req.Name, req.Description, req.Type, req.RepositoryURL, webhookSecret, envRaw, filesRaw))
}

func (r *ProjectRepository) GetByID(ctx context.Context, id string) (*model.Project, error) {
	return scanProject(r.pool.QueryRow(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = $1`, id))
}

func (r *ProjectRepository) ListByUser(ctx context.Context, userID string) ([]model.Project, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+projectColumns+` FROM projects WHERE user_id = $1 ORDER BY updated_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []model.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *p)
	}
	return projects, rows.Err()
}

// Update applies the non-nil fields of req to a project owned by userID.
// Returns pgx.ErrNoRows when the project does not exist or belongs to
// someone else.
func (r *ProjectRepository) Update(ctx context.Context, id, userID string, req *model.UpdateProjectRequest) (*model.Project, error) {
	sets := []string{"updated_at = NOW()"}
	var args []interface{}
	argIdx := 1

	add := func(col string, val interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, argIdx))
		args = append(args, val)
		argIdx++
	}

	if req.Name != nil {
		add("name", *req.Name)
	}
	if req.Description != nil {
		add("description", *req.Description)
	}
	if req.Status != nil {
		add("status", *req.Status)
	}
	if req.RepositoryURL != nil {
		add("repository_url", *req.RepositoryURL)
	}
	if req.DeploymentURL != nil {
		add("deployment_url", *req.DeploymentURL)
	}
	if req.LastDeployed != nil {
		add("last_deployed", *req.LastDeployed)
	}
	if req.EnvVariables != nil {
		raw, err := json.Marshal(*req.EnvVariables)
		if err != nil {
			return nil, fmt.Errorf("marshal env_variables: %w", err)
		}
		add("env_variables", raw)
	}
	if req.Files != nil {
		raw, err := json.Marshal(*req.Files)
		if err != nil {
			return nil, fmt.Errorf("marshal files: %w", err)
		}
		add("files", raw)
	}

	query := fmt.Sprintf(`
		UPDATE projects SET %s
		WHERE id = $%d AND user_id = $%d
		RETURNING %s
	`, strings.Join(sets, ", "), argIdx, argIdx+1, projectColumns)
	args = append(args, id, userID)

	return scanProject(r.pool.QueryRow(ctx, query, args...))
}

// Delete removes a project owned by userID. Returns pgx.ErrNoRows when no
// matching row was deleted.
func (r *ProjectRepository) Delete(ctx context.Context, id, userID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
